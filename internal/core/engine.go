package core

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"EqCore/internal/aggregates"
	"EqCore/internal/assets"
	"EqCore/internal/bailsman"
	"EqCore/internal/balance"
	"EqCore/internal/dex"
	"EqCore/internal/event"
	"EqCore/internal/margin"
	"EqCore/internal/numeric"
	"EqCore/internal/observability"
	"EqCore/internal/pricing"
	"EqCore/internal/rate"

	"github.com/google/uuid"
)

// Oracle quotes older than this (against block time) are refused by the
// margin and pool valuations.
const defaultPriceStaleness = 600

var (
	ErrNotOrderOwner = fmt.Errorf("order belongs to another account")
	ErrAdvisoryStale = fmt.Errorf("advisory condition no longer holds")
)

// DeterministicCore is the single-threaded extrinsic processor. It owns
// every engine and is the only writer of their state.
type DeterministicCore struct {
	sequence          int64
	hasher            *StateHasher
	idempotency       *IdempotencyChecker
	sequenceValidator *SequenceValidator
	metrics           *observability.Metrics

	balances *balance.Store
	agg      *aggregates.Store
	recorder *balanceRecorder
	registry *assets.Registry
	prices   *pricing.Store
	margin   *margin.Calculator
	bailsmen *bailsman.Engine
	rate     *rate.Engine
	dex      *dex.Engine

	blockNumber    uint64
	blockTime      int64 // unix seconds, advanced only by BlockFinalize
	validatorCount uint32

	persistChan    chan<- CoreOutput
	projectionChan chan<- CoreOutput
}

// CoreOutput is one processed extrinsic plus the balance rows it touched
// and the order-book mutations it caused.
type CoreOutput struct {
	Envelope    *event.EventEnvelope
	Deltas      []BalanceDelta
	BookChanges []dex.BookChange
	StateDelta  []byte
}

// BalanceDelta is the post-event value of one touched balance row.
type BalanceDelta struct {
	Account uuid.UUID
	Asset   assets.Asset
	Balance balance.SignedBalance
}

func NewDeterministicCore(
	startSequence int64,
	persistChan, projectionChan chan<- CoreOutput,
	dbChecker DBIdempotencyChecker,
	metrics *observability.Metrics,
) *DeterministicCore {
	c := &DeterministicCore{
		sequence:          startSequence,
		hasher:            NewStateHasher(),
		idempotency:       NewIdempotencyChecker(1_000_000, dbChecker),
		sequenceValidator: NewSequenceValidator(),
		metrics:           metrics,
		persistChan:       persistChan,
		projectionChan:    projectionChan,
	}

	clock := func() int64 { return c.blockTime }

	c.balances = balance.NewStore()
	c.agg = aggregates.NewStore()
	c.recorder = newBalanceRecorder(c.agg, c.balances)
	c.balances.SetGroupUpdater(c.recorder)
	c.registry = assets.DefaultRegistry()
	c.prices = pricing.NewStore(defaultPriceStaleness)
	c.margin = margin.NewCalculator(margin.DefaultConfig(), c.balances, c.prices, c.registry, clock)
	c.bailsmen = bailsman.NewEngine(bailsman.DefaultConfig(), c.balances, c.agg, c.prices, c.registry, c.margin)
	c.rate = rate.NewEngine(rate.DefaultConfig(), c.balances, c.agg, c.prices, c.registry, c.margin,
		c.bailsmen, rate.TestPrimeRate(), clock)
	c.dex = dex.NewEngine(dex.DefaultConfig(), c.balances, c.prices, c.registry, c.margin, clock)
	c.margin.SetOrderWeightSource(c.dex)
	c.balances.RegisterChecker(c.bailsmen)

	return c
}

// ProcessEvent is the main processing pipeline
func (c *DeterministicCore) ProcessEvent(evt event.Event) error {
	start := time.Now()
	eventType := evt.EventType().String()
	idempotencyKey := evt.IdempotencyKey()

	// Step 1: Idempotency check (two-tier)
	isDuplicate := c.idempotency.IsDuplicate(eventType, idempotencyKey)

	// Step 2: Sequence validation
	partition := c.getPartition(evt)

	// Oracle feeds tolerate gaps; a stale quote is ignored, not an error
	if _, ok := evt.(*event.PriceUpdate); ok {
		if stale := c.sequenceValidator.ValidatePriceSequence(partition, evt.SourceSequence()); stale {
			if c.metrics != nil {
				c.metrics.CoreEventsRejected.WithLabelValues(eventType, "stale").Inc()
			}
			return nil
		}
	} else {
		if err := c.sequenceValidator.ValidateSequence(partition, evt.SourceSequence(), idempotencyKey, isDuplicate); err != nil {
			return fmt.Errorf("sequence validation failed: %w", err)
		}
	}

	if isDuplicate {
		if c.metrics != nil {
			c.metrics.CoreEventsRejected.WithLabelValues(eventType, "duplicate").Inc()
		}
		return nil
	}

	// Step 3: Dispatch. The recorder captures every balance row the
	// handlers touch, in the same atomic step as the group totals.
	c.recorder.reset()
	c.dex.DrainBookChanges()
	if err := c.dispatchEvent(evt); err != nil {
		if c.metrics != nil {
			c.metrics.CoreEventsRejected.WithLabelValues(eventType, "dispatch").Inc()
		}
		return fmt.Errorf("dispatch failed: %w", err)
	}

	// Step 4: State digest over the touched rows, then hash chain
	deltas := c.recorder.deltas()
	bookChanges := c.dex.DrainBookChanges()
	stateDigest := c.computeStateDigest(deltas)
	prevHash := c.hasher.GetPrevHash()
	stateHash := c.hasher.ComputeHash(c.sequence, stateDigest)

	// Step 5: Envelope. Timestamps are versioned inputs; the block clock
	// is the only time source.
	payload, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}
	envelope := &event.EventEnvelope{
		Sequence:       c.sequence,
		IdempotencyKey: idempotencyKey,
		EventType:      evt.EventType(),
		PartitionKey:   evt.PartitionKey(),
		Timestamp:      c.getEventTimestamp(evt),
		SourceSequence: evt.SourceSequence(),
		Payload:        payload,
		StateHash:      stateHash,
		PrevHash:       prevHash,
	}

	output := CoreOutput{
		Envelope:    envelope,
		Deltas:      deltas,
		BookChanges: bookChanges,
		StateDelta:  stateDigest,
	}
	c.sequence++

	// Step 6: Post-checks
	if err := c.postCheckInvariants(); err != nil {
		panic(fmt.Sprintf("FATAL: invariant violated: %v", err))
	}

	// Step 7: Emit. Persistence uses a BLOCKING send (backpressure, no
	// event loss); projections use a NON-BLOCKING send with silent drop.
	c.persistChan <- output

	select {
	case c.projectionChan <- output:
	default:
		// Dropped; projections rebuild from the event log
	}

	// Step 8: Mark as processed (add to LRU)
	c.idempotency.MarkProcessed(eventType, idempotencyKey)

	if c.metrics != nil {
		c.metrics.CoreEventsApplied.WithLabelValues(eventType).Inc()
		c.metrics.CoreEventDuration.WithLabelValues(eventType).Observe(time.Since(start).Seconds())
		c.metrics.CoreSequence.Set(float64(c.sequence))
		c.metrics.CoreBalanceChanges.Add(float64(len(deltas)))
	}

	return nil
}

// getPartition determines the partition key for sequence validation
func (c *DeterministicCore) getPartition(evt event.Event) string {
	if key := evt.PartitionKey(); key != nil {
		return *key
	}
	return "global"
}

// getEventTimestamp returns the versioned timestamp for the envelope. The
// core never calls the wall clock; everything is stamped with the block
// time, and BlockFinalize carries its own.
func (c *DeterministicCore) getEventTimestamp(evt event.Event) time.Time {
	if b, ok := evt.(*event.BlockFinalize); ok {
		return b.BlockTime.UTC()
	}
	return time.Unix(c.blockTime, 0).UTC()
}

func (c *DeterministicCore) dispatchEvent(evt event.Event) error {
	switch e := evt.(type) {
	case *event.Transfer:
		return c.balances.Transfer(e.From, e.To, e.Asset, e.Amount)
	case *event.Deposit:
		return c.balances.Deposit(e.Who, e.Asset, e.Amount)
	case *event.Withdraw:
		return c.balances.Withdraw(e.Who, e.Asset, e.Amount)
	case *event.RegisterBailsman:
		return c.handleRegisterBailsman(e)
	case *event.UnregisterBailsman:
		return c.bailsmen.UnregisterBailsman(e.Who)
	case *event.Redistribute:
		return c.handleRedistribute(e)
	case *event.CreateOrder:
		return c.handleCreateOrder(e)
	case *event.DeleteOrder:
		return c.handleDeleteOrder(e)
	case *event.Reinit:
		return c.handleReinit(e)
	case *event.PriceUpdate:
		return c.prices.SetPrice(e.Asset, e.Price)
	case *event.AssetUpdate:
		return c.handleAssetUpdate(e)
	case *event.BlockFinalize:
		return c.handleBlockFinalize(e)
	default:
		return fmt.Errorf("unknown event type: %T", evt)
	}
}

func (c *DeterministicCore) handleRegisterBailsman(evt *event.RegisterBailsman) error {
	if err := c.bailsmen.RegisterBailsman(evt.Who); err != nil {
		return err
	}
	if c.metrics != nil {
		c.metrics.BailsmenRegistered.Set(float64(c.bailsmen.BailsmenCount()))
	}
	return nil
}

func (c *DeterministicCore) handleRedistribute(evt *event.Redistribute) error {
	if err := c.bailsmen.Redistribute(evt.Who); err != nil {
		return err
	}
	if c.metrics != nil {
		c.metrics.DistributionsApplied.Inc()
	}
	return nil
}

func (c *DeterministicCore) handleCreateOrder(evt *event.CreateOrder) error {
	var side dex.Side
	switch evt.Side {
	case event.OrderSideBuy:
		side = dex.SideBuy
	case event.OrderSideSell:
		side = dex.SideSell
	default:
		return fmt.Errorf("unknown order side: %d", evt.Side)
	}
	var kind dex.Kind
	switch evt.Kind {
	case event.OrderKindLimit:
		kind = dex.KindLimit
	case event.OrderKindMarket:
		kind = dex.KindMarket
	default:
		return fmt.Errorf("unknown order kind: %d", evt.Kind)
	}

	if err := c.dex.CreateOrder(evt.Who, evt.Asset, kind, side, evt.LimitPrice, evt.Amount, evt.ExpiresAt); err != nil {
		return err
	}
	if c.metrics != nil {
		c.metrics.OrdersCreated.WithLabelValues(evt.Asset.String()).Inc()
	}
	return nil
}

// handleDeleteOrder removes a resting order. User cancels are gated on
// ownership; advisory deletions re-check their cause against current state,
// so a stale sweep submission cannot kill a healthy order.
func (c *DeterministicCore) handleDeleteOrder(evt *event.DeleteOrder) error {
	order, ok := c.dex.FindOrder(evt.Asset, evt.OrderID, evt.Price)
	if !ok {
		return dex.ErrOrderNotFound
	}

	var reason dex.DeleteReason
	switch evt.Reason {
	case event.DeleteReasonCancel:
		if order.Account != evt.Who {
			return ErrNotOrderOwner
		}
		reason = dex.DeleteReasonCancel

	case event.DeleteReasonExpired:
		if order.ExpiresAt == 0 || c.blockTime < order.ExpiresAt {
			return ErrAdvisoryStale
		}
		reason = dex.DeleteReasonExpired

	case event.DeleteReasonOutOfCorridor:
		data, err := c.registry.Get(evt.Asset)
		if err != nil {
			return err
		}
		switch {
		case !data.DexEnabled:
			reason = dex.DeleteReasonDisabled
		case c.dex.EnsureOrderInCorridor(evt.Asset, order.Price) != nil:
			reason = dex.DeleteReasonOutOfCorridor
		default:
			return ErrAdvisoryStale
		}

	case event.DeleteReasonMarginCall:
		state, _, err := c.margin.CheckMarginWithChange(order.Account, nil)
		if err != nil {
			return err
		}
		if state == margin.MarginStateGood || state == margin.MarginStateSubGood {
			return ErrAdvisoryStale
		}
		reason = dex.DeleteReasonMarginCall

	default:
		return fmt.Errorf("unknown delete reason: %d", evt.Reason)
	}

	if err := c.dex.DeleteOrder(evt.Asset, evt.OrderID, evt.Price, reason); err != nil {
		return err
	}
	if c.metrics != nil {
		c.metrics.OrdersDeleted.WithLabelValues(evt.Asset.String(), reason.String()).Inc()
	}
	return nil
}

func (c *DeterministicCore) handleReinit(evt *event.Reinit) error {
	if err := c.rate.DoReinit(evt.Who); err != nil {
		return err
	}
	if c.metrics != nil {
		c.metrics.ReinitsProcessed.WithLabelValues("applied").Inc()
	}
	return nil
}

// handleAssetUpdate rewrites the tradable parameters of one asset. Identity
// fields (name, kind, buyout priority) are not updatable over the wire.
func (c *DeterministicCore) handleAssetUpdate(evt *event.AssetUpdate) error {
	data, err := c.registry.Get(evt.Asset)
	if err != nil {
		return err
	}
	data.LotSize = evt.LotSize
	data.PriceStep = evt.PriceStep
	data.MakerFeePPM = evt.MakerFeePPM
	data.TakerFeePPM = evt.TakerFeePPM
	data.CollateralDiscount = evt.CollateralDiscount
	data.DexEnabled = evt.DexEnabled
	c.registry.Update(data)
	return nil
}

// handleBlockFinalize closes a block: advance the deterministic clock, then
// run the pool hooks that snapshot bad debt into queued distributions.
func (c *DeterministicCore) handleBlockFinalize(evt *event.BlockFinalize) error {
	c.blockNumber = evt.BlockNumber
	c.blockTime = evt.BlockTime.Unix()
	c.validatorCount = evt.ValidatorCount
	c.prices.SetBlockTime(c.blockTime)

	if err := c.bailsmen.OnInitialize(); err != nil {
		return fmt.Errorf("bailsman block hook: %w", err)
	}
	c.bailsmen.OnFinalize()

	if c.metrics != nil {
		c.metrics.CoreBlockHeight.Set(float64(evt.BlockNumber))
	}
	return nil
}

// computeStateDigest builds canonical bytes over the touched balance rows.
func (c *DeterministicCore) computeStateDigest(deltas []BalanceDelta) []byte {
	digest := make([]byte, 0, len(deltas)*64)

	for _, d := range deltas {
		path := d.Account.String() + ":" + d.Asset.String()
		digest = append(digest, byte(len(path)))
		digest = append(digest, []byte(path)...)

		if d.Balance.Negative {
			digest = append(digest, 1)
		} else {
			digest = append(digest, 0)
		}
		hi, lo := d.Balance.Amount.Inner()
		digest = appendUint64LE(digest, hi)
		digest = appendUint64LE(digest, lo)
	}

	return digest
}

func appendUint64LE(buf []byte, v uint64) []byte {
	return append(buf,
		byte(v),
		byte(v>>8),
		byte(v>>16),
		byte(v>>24),
		byte(v>>32),
		byte(v>>40),
		byte(v>>48),
		byte(v>>56),
	)
}

// postCheckInvariants re-derives the group totals from raw balances every
// thousand events and compares them against the incrementally maintained
// aggregates.
func (c *DeterministicCore) postCheckInvariants() error {
	if c.sequence == 0 || c.sequence%1000 != 0 {
		return nil
	}

	groups := []aggregates.UserGroup{
		aggregates.GroupBalances,
		aggregates.GroupBailsmen,
		aggregates.GroupBorrowers,
	}
	for _, group := range groups {
		collateral := make(map[assets.Asset]numeric.Value)
		debt := make(map[assets.Asset]numeric.Value)
		for _, who := range c.agg.Members(group) {
			for _, row := range c.balances.AccountBalances(who) {
				if row.Balance.Negative {
					debt[row.Asset] = debt[row.Asset].SaturatingAdd(row.Balance.Amount)
				} else {
					collateral[row.Asset] = collateral[row.Asset].SaturatingAdd(row.Balance.Amount)
				}
			}
		}
		for _, data := range c.registry.List() {
			total := c.agg.Total(group, data.Asset)
			if total.Collateral.Cmp(collateral[data.Asset]) != 0 {
				return fmt.Errorf("group %d collateral drift on %s: have %s, derived %s (at seq %d)",
					group, data.Asset, total.Collateral, collateral[data.Asset], c.sequence)
			}
			if total.Debt.Cmp(debt[data.Asset]) != 0 {
				return fmt.Errorf("group %d debt drift on %s: have %s, derived %s (at seq %d)",
					group, data.Asset, total.Debt, debt[data.Asset], c.sequence)
			}
		}
	}
	return nil
}

// --- engine access for query and offchain consumers ---

func (c *DeterministicCore) Balances() *balance.Store      { return c.balances }
func (c *DeterministicCore) Aggregates() *aggregates.Store { return c.agg }
func (c *DeterministicCore) Registry() *assets.Registry    { return c.registry }
func (c *DeterministicCore) Prices() *pricing.Store        { return c.prices }
func (c *DeterministicCore) Margin() *margin.Calculator    { return c.margin }
func (c *DeterministicCore) Bailsmen() *bailsman.Engine    { return c.bailsmen }
func (c *DeterministicCore) Rate() *rate.Engine            { return c.rate }
func (c *DeterministicCore) Dex() *dex.Engine              { return c.dex }
func (c *DeterministicCore) BlockNumber() uint64           { return c.blockNumber }
func (c *DeterministicCore) BlockTime() int64              { return c.blockTime }
func (c *DeterministicCore) ValidatorCount() uint32        { return c.validatorCount }

// --- balance change capture ---

// balanceRecorder chains the aggregates store behind the balance hooks. It
// keeps the usergroup memberships current (any balance joins Balances, any
// debt joins Borrowers) and remembers every row an event touched, keyed to
// its final value.
type balanceRecorder struct {
	agg      *aggregates.Store
	balances *balance.Store
	touched  map[balance.AccountKey]balance.SignedBalance
	order    []balance.AccountKey
}

func newBalanceRecorder(agg *aggregates.Store, balances *balance.Store) *balanceRecorder {
	return &balanceRecorder{
		agg:      agg,
		balances: balances,
		touched:  make(map[balance.AccountKey]balance.SignedBalance),
	}
}

func (r *balanceRecorder) OnBalanceChanged(who uuid.UUID, asset assets.Asset, old, next balance.SignedBalance) error {
	// Membership moves happen before the delta lands in the totals: the
	// store has not committed this row yet, so SetUserGroup replays the
	// pre-change balances as the baseline.
	if !r.balances.IsSystemAccount(who) {
		if !next.IsZero() {
			if err := r.agg.SetUserGroup(who, aggregates.GroupBalances, true, r.balances); err != nil {
				return err
			}
		}
		if next.IsNegative() {
			if err := r.agg.SetUserGroup(who, aggregates.GroupBorrowers, true, r.balances); err != nil {
				return err
			}
		}
		if old.IsNegative() && !next.IsNegative() && !r.hasOther(who, asset, true) {
			if err := r.agg.SetUserGroup(who, aggregates.GroupBorrowers, false, r.balances); err != nil {
				return err
			}
		}
		if !old.IsZero() && next.IsZero() && !r.hasOther(who, asset, false) {
			if err := r.agg.SetUserGroup(who, aggregates.GroupBalances, false, r.balances); err != nil {
				return err
			}
		}
	}

	if err := r.agg.OnBalanceChanged(who, asset, old, next); err != nil {
		return err
	}
	key := balance.AccountKey{Account: who, Asset: asset}
	if _, seen := r.touched[key]; !seen {
		r.order = append(r.order, key)
	}
	r.touched[key] = next
	return nil
}

// hasOther reports whether the account holds any other row beside the one
// being changed; debtOnly restricts the scan to negative rows.
func (r *balanceRecorder) hasOther(who uuid.UUID, exclude assets.Asset, debtOnly bool) bool {
	for _, ab := range r.balances.AccountBalances(who) {
		if ab.Asset == exclude {
			continue
		}
		if !debtOnly || ab.Balance.IsNegative() {
			return true
		}
	}
	return false
}

func (r *balanceRecorder) reset() {
	if len(r.touched) > 0 {
		r.touched = make(map[balance.AccountKey]balance.SignedBalance)
		r.order = r.order[:0]
	}
}

// deltas returns the touched rows sorted by (account, asset).
func (r *balanceRecorder) deltas() []BalanceDelta {
	keys := make([]balance.AccountKey, len(r.order))
	copy(keys, r.order)
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Account != keys[j].Account {
			return keys[i].Account.String() < keys[j].Account.String()
		}
		return keys[i].Asset < keys[j].Asset
	})

	out := make([]BalanceDelta, 0, len(keys))
	for _, key := range keys {
		out = append(out, BalanceDelta{
			Account: key.Account,
			Asset:   key.Asset,
			Balance: r.touched[key],
		})
	}
	return out
}

// --- Snapshot Restore & Startup Methods ---

// SnapshotState holds the serializable in-memory state for restore.
type SnapshotState struct {
	Sequence  int64
	StateHash [32]byte

	Balances     map[balance.AccountKey]balance.SignedBalance
	GroupTotals  []aggregates.GroupTotalSnapshot
	GroupMembers []aggregates.MembershipSnapshot
	Assets       []assets.Data
	Prices       []pricing.AssetPrice
	MarginTimers []margin.TimerSnapshot
	Bailsman     bailsman.State
	RateCursors  []rate.UpdateSnapshot
	Dex          dex.State

	BlockNumber    uint64
	BlockTime      int64
	ValidatorCount uint32

	SequenceState   map[string]int64
	IdempotencyKeys []string
}

// RestoreFromSnapshot rebuilds the core's in-memory state. On warm restart
// the caller loads the latest snapshot here, then replays newer events.
func (c *DeterministicCore) RestoreFromSnapshot(snap *SnapshotState) error {
	c.sequence = snap.Sequence + 1
	c.hasher.SetPrevHash(snap.StateHash)

	c.blockNumber = snap.BlockNumber
	c.blockTime = snap.BlockTime
	c.validatorCount = snap.ValidatorCount

	for _, d := range snap.Assets {
		c.registry.Update(d)
	}
	c.balances.Restore(snap.Balances)
	c.agg.Restore(snap.GroupTotals, snap.GroupMembers)
	c.prices.Restore(snap.Prices)
	c.prices.SetBlockTime(snap.BlockTime)
	c.margin.Restore(snap.MarginTimers)
	c.bailsmen.Restore(snap.Bailsman)
	c.rate.Restore(snap.RateCursors)
	if err := c.dex.Restore(snap.Dex); err != nil {
		return fmt.Errorf("dex restore: %w", err)
	}

	for partition, nextSeq := range snap.SequenceState {
		c.sequenceValidator.RestorePartition(partition, nextSeq)
	}
	return nil
}

// WarmLRU loads recent idempotency keys into the LRU cache, avoiding
// cold-path DB lookups for recently processed events.
func (c *DeterministicCore) WarmLRU(keys []string) {
	c.idempotency.lru.WarmFromKeys(keys)
}

// GetSequence returns the next sequence number to assign.
func (c *DeterministicCore) GetSequence() int64 {
	return c.sequence
}

// SequenceCursors exports the per-partition source cursors. The orchestrator
// reads them once during startup wiring, before the processing goroutines
// start, to seed the admin ingestion sequencer.
func (c *DeterministicCore) SequenceCursors() map[string]int64 {
	return c.sequenceValidator.GetAllPartitions()
}

// GetStateHash returns the current state hash (chain tip).
func (c *DeterministicCore) GetStateHash() [32]byte {
	return c.hasher.GetPrevHash()
}

// CreateSnapshotState captures the current in-memory state for persistence.
func (c *DeterministicCore) CreateSnapshotState() *SnapshotState {
	totals, members := c.agg.Snapshot()
	return &SnapshotState{
		Sequence:        c.sequence - 1,
		StateHash:       c.hasher.GetPrevHash(),
		Balances:        c.balances.Snapshot(),
		GroupTotals:     totals,
		GroupMembers:    members,
		Assets:          c.registry.List(),
		Prices:          c.prices.Snapshot(),
		MarginTimers:    c.margin.Snapshot(),
		Bailsman:        c.bailsmen.Snapshot(),
		RateCursors:     c.rate.Snapshot(),
		Dex:             c.dex.Snapshot(),
		BlockNumber:     c.blockNumber,
		BlockTime:       c.blockTime,
		ValidatorCount:  c.validatorCount,
		SequenceState:   c.sequenceValidator.GetAllPartitions(),
		IdempotencyKeys: c.idempotency.lru.GetAllKeys(),
	}
}
