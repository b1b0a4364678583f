package bailsman

import (
	"fmt"
	"sort"

	"EqCore/internal/aggregates"
	"EqCore/internal/assets"
	"EqCore/internal/balance"
	"EqCore/internal/margin"
	"EqCore/internal/numeric"
	"EqCore/internal/pricing"

	"github.com/google/uuid"
)

var (
	ErrAlreadyBailsman             = fmt.Errorf("account is already a bailsman")
	ErrNotBailsman                 = fmt.Errorf("account is not a bailsman")
	ErrBailsmanHasDebt             = fmt.Errorf("bailsman cannot carry debt")
	ErrCollateralMustBeMoreThanMin = fmt.Errorf("collateral below bailsman minimum")
	ErrTempBalancesNotDistributed  = fmt.Errorf("pool holding account has undistributed balances")
	ErrTempBalancesTransfer        = fmt.Errorf("direct transfer to distribution account is forbidden")
	ErrNeedToMcBailsmanFirstly     = fmt.Errorf("bailsman must be margin-called before redistribution")
	ErrTotalPoolNotPositive        = fmt.Errorf("bailsman pool net value is not positive")
)

// Config holds the pool admission and distribution thresholds, in USD.
type Config struct {
	MinCollateralUSD  numeric.Value // admission floor for new bailsmen
	MinTempBalanceUSD numeric.Value // below this the temp account is not worth distributing
}

func DefaultConfig() Config {
	return Config{
		MinCollateralUSD:  numeric.SaturatingFromInteger(100),
		MinTempBalanceUSD: numeric.SaturatingFromInteger(1),
	}
}

// Distribution is one deferred pool snapshot awaiting proportional
// application to every bailsman registered at capture time.
type Distribution struct {
	ID                uint64
	TotalUSD          numeric.Value
	RemainingBailsmen uint32
	Balances          []balance.AssetBalance
	Prices            []pricing.AssetPrice // sorted by asset, EQD excluded
}

// Engine redistributes liquidated surplus and deficit across the registered
// bailsmen. Losses and profits land on the temp account, get snapshotted
// into the queue at block start, and are pulled by each bailsman on its next
// interaction, priced at snapshot time.
type Engine struct {
	cfg        Config
	balances   *balance.Store
	aggregates *aggregates.Store
	prices     *pricing.Store
	registry   *assets.Registry
	margin     *margin.Calculator

	tempAcc uuid.UUID
	distAcc uuid.UUID

	count     uint32
	currentID uint64
	queue     map[uint64]*Distribution
	lastDist  map[uuid.UUID]uint64
}

func NewEngine(
	cfg Config,
	balances *balance.Store,
	agg *aggregates.Store,
	prices *pricing.Store,
	registry *assets.Registry,
	marginCalc *margin.Calculator,
) *Engine {
	e := &Engine{
		cfg:        cfg,
		balances:   balances,
		aggregates: agg,
		prices:     prices,
		registry:   registry,
		margin:     marginCalc,
		tempAcc:    balances.SystemAccount("bailsman-temp"),
		distAcc:    balances.SystemAccount("distbail"),
		queue:      make(map[uint64]*Distribution),
		lastDist:   make(map[uuid.UUID]uint64),
	}
	// the holding accounts live inside the group so the pool valuation nets
	// them out exactly
	if err := agg.SetUserGroup(e.tempAcc, aggregates.GroupBailsmen, true, balances); err != nil {
		panic(fmt.Sprintf("FATAL: bailsman temp account group init: %v", err))
	}
	if err := agg.SetUserGroup(e.distAcc, aggregates.GroupBailsmen, true, balances); err != nil {
		panic(fmt.Sprintf("FATAL: bailsman distribution account group init: %v", err))
	}
	return e
}

// TempAccount returns the intake holding account.
func (e *Engine) TempAccount() uuid.UUID { return e.tempAcc }

// DistributionAccount returns the distribution holding account.
func (e *Engine) DistributionAccount() uuid.UUID { return e.distAcc }

// IsBailsman reports pool membership.
func (e *Engine) IsBailsman(who uuid.UUID) bool {
	_, ok := e.lastDist[who]
	return ok
}

// BailsmenCount returns the number of registered bailsmen, excluding the
// holding accounts.
func (e *Engine) BailsmenCount() uint32 { return e.count }

// Bailsmen returns the registered accounts in deterministic order.
func (e *Engine) Bailsmen() []uuid.UUID {
	out := make([]uuid.UUID, 0, len(e.lastDist))
	for who := range e.lastDist {
		out = append(out, who)
	}
	sort.Slice(out, func(i, j int) bool {
		for k := 0; k < len(out[i]); k++ {
			if out[i][k] != out[j][k] {
				return out[i][k] < out[j][k]
			}
		}
		return false
	})
	return out
}

// PendingDistributions reports how many queue entries the account has not
// yet applied.
func (e *Engine) PendingDistributions(who uuid.UUID) int {
	last, ok := e.lastDist[who]
	if !ok {
		return 0
	}
	n := 0
	for id := range e.queue {
		if id > last {
			n++
		}
	}
	return n
}

func (e *Engine) usdPrice(asset assets.Asset) (numeric.Value, error) {
	if asset == assets.EQD {
		return numeric.One(), nil
	}
	p, err := e.prices.GetPrice(asset)
	if err != nil {
		return numeric.Value{}, err
	}
	pv, ok := p.Value()
	if !ok {
		return numeric.Value{}, pricing.ErrPriceNotPositive
	}
	return pv, nil
}

// debtAndCollateral values an account's balances at current prices.
// Returns (debt, collateral, discounted collateral), all USD.
func (e *Engine) debtAndCollateral(who uuid.UUID) (debt, collateral, discounted numeric.Value, err error) {
	for _, ab := range e.balances.AccountBalances(who) {
		price, perr := e.usdPrice(ab.Asset)
		if perr != nil {
			return debt, collateral, discounted, perr
		}
		usd, ok := ab.Balance.Abs().CheckedMul(price)
		if !ok {
			return debt, collateral, discounted, fmt.Errorf("usd valuation overflow for %s", ab.Asset)
		}
		if ab.Balance.IsNegative() {
			debt, ok = debt.CheckedAdd(usd)
		} else {
			collateral, ok = collateral.CheckedAdd(usd)
			if ok {
				disc := usd
				if ab.Asset != assets.EQD {
					data, derr := e.registry.Get(ab.Asset)
					if derr != nil {
						return debt, collateral, discounted, derr
					}
					disc = data.Discounted(usd)
				}
				discounted, ok = discounted.CheckedAdd(disc)
			}
		}
		if !ok {
			return debt, collateral, discounted, fmt.Errorf("usd total overflow")
		}
	}
	return debt, collateral, discounted, nil
}

// RegisterBailsman admits an account into the pool. The newcomer owes
// nothing retroactively: its distribution cursor starts at the current id.
func (e *Engine) RegisterBailsman(who uuid.UUID) error {
	if e.IsBailsman(who) {
		return ErrAlreadyBailsman
	}
	debt, _, discounted, err := e.debtAndCollateral(who)
	if err != nil {
		return err
	}
	if !debt.IsZero() {
		return ErrBailsmanHasDebt
	}
	if discounted.LE(e.cfg.MinCollateralUSD) {
		return ErrCollateralMustBeMoreThanMin
	}
	if err := e.aggregates.SetUserGroup(who, aggregates.GroupBailsmen, true, e.balances); err != nil {
		return err
	}
	e.count++
	e.lastDist[who] = e.currentID
	return nil
}

// UnregisterBailsman removes an account from the pool after forcing it to
// catch up on pending distributions. Debt blocks the exit.
func (e *Engine) UnregisterBailsman(who uuid.UUID) error {
	if !e.IsBailsman(who) {
		return ErrNotBailsman
	}
	if err := e.Redistribute(who); err != nil {
		return err
	}
	for _, ab := range e.balances.AccountBalances(who) {
		if ab.Balance.IsNegative() {
			return ErrBailsmanHasDebt
		}
	}
	if err := e.aggregates.SetUserGroup(who, aggregates.GroupBailsmen, false, e.balances); err != nil {
		return err
	}
	e.count--
	delete(e.lastDist, who)
	return nil
}

// totalPoolUSD nets the bailsmen group aggregates against the holding
// accounts, returning the members-only pool value and the price snapshot
// for every aggregate asset except EQD.
func (e *Engine) totalPoolUSD() (numeric.Value, []pricing.AssetPrice, error) {
	selfDebt, selfColl := numeric.Zero(), numeric.Zero()
	for _, acc := range []uuid.UUID{e.tempAcc, e.distAcc} {
		d, c, _, err := e.debtAndCollateral(acc)
		if err != nil {
			return numeric.Value{}, nil, err
		}
		var ok bool
		selfDebt, ok = selfDebt.CheckedAdd(d)
		if !ok {
			return numeric.Value{}, nil, fmt.Errorf("pool valuation overflow")
		}
		selfColl, ok = selfColl.CheckedAdd(c)
		if !ok {
			return numeric.Value{}, nil, fmt.Errorf("pool valuation overflow")
		}
	}

	groupColl, groupDebt := numeric.Zero(), numeric.Zero()
	var snapshot []pricing.AssetPrice
	for _, data := range e.registry.List() {
		total := e.aggregates.Total(aggregates.GroupBailsmen, data.Asset)
		if total.Collateral.IsZero() && total.Debt.IsZero() {
			continue
		}
		price, err := e.usdPrice(data.Asset)
		if err != nil {
			return numeric.Value{}, nil, err
		}
		if data.Asset != assets.EQD {
			p, _ := e.prices.GetPrice(data.Asset)
			snapshot = append(snapshot, pricing.AssetPrice{Asset: data.Asset, Price: p})
		}
		c, ok := total.Collateral.CheckedMul(price)
		if !ok {
			return numeric.Value{}, nil, fmt.Errorf("pool valuation overflow")
		}
		d, ok := total.Debt.CheckedMul(price)
		if !ok {
			return numeric.Value{}, nil, fmt.Errorf("pool valuation overflow")
		}
		groupColl, ok = groupColl.CheckedAdd(c)
		if !ok {
			return numeric.Value{}, nil, fmt.Errorf("pool valuation overflow")
		}
		groupDebt, ok = groupDebt.CheckedAdd(d)
		if !ok {
			return numeric.Value{}, nil, fmt.Errorf("pool valuation overflow")
		}
	}

	plus, ok := groupColl.CheckedAdd(selfDebt)
	if !ok {
		return numeric.Value{}, nil, fmt.Errorf("pool valuation overflow")
	}
	minus, ok := groupDebt.CheckedAdd(selfColl)
	if !ok {
		return numeric.Value{}, nil, fmt.Errorf("pool valuation overflow")
	}
	total, ok := plus.CheckedSub(minus)
	if !ok || total.IsZero() {
		return numeric.Value{}, nil, ErrTotalPoolNotPositive
	}
	sort.Slice(snapshot, func(i, j int) bool { return snapshot[i].Asset < snapshot[j].Asset })
	return total, snapshot, nil
}

// OnInitialize runs at block start: when the temp account has accumulated
// enough value, snapshot it into a queue entry and move it to the
// distribution account.
func (e *Engine) OnInitialize() error {
	if e.count == 0 {
		return nil
	}
	tempDebt, tempColl, _, err := e.debtAndCollateral(e.tempAcc)
	if err != nil {
		return err
	}
	size := tempColl.SaturatingAdd(tempDebt)
	if size.LE(e.cfg.MinTempBalanceUSD) {
		return nil
	}

	totalUSD, snapshot, err := e.totalPoolUSD()
	if err != nil {
		return err
	}

	tempBalances := e.balances.AccountBalances(e.tempAcc)
	for _, ab := range tempBalances {
		from, to := e.tempAcc, e.distAcc
		if ab.Balance.IsNegative() {
			from, to = e.distAcc, e.tempAcc
		}
		if terr := e.balances.TransferUnchecked(from, to, ab.Asset, ab.Balance.Abs()); terr != nil {
			return terr
		}
	}

	e.currentID++
	e.queue[e.currentID] = &Distribution{
		ID:                e.currentID,
		TotalUSD:          totalUSD,
		RemainingBailsmen: e.count,
		Balances:          tempBalances,
		Prices:            snapshot,
	}
	return nil
}

// OnFinalize runs at block end: drop fully consumed queue entries.
func (e *Engine) OnFinalize() {
	for id, d := range e.queue {
		if d.RemainingBailsmen == 0 {
			delete(e.queue, id)
		}
	}
}

// snapshotDebtAndCollateral values balances at a distribution's snapshot
// prices. EQD is always valued at par. Fails if the snapshot is missing a
// priced asset, or if the account's debt reaches its collateral.
func (e *Engine) snapshotDebtAndCollateral(
	balances map[assets.Asset]balance.SignedBalance,
	snapshot []pricing.AssetPrice,
) (debt, collateral numeric.Value, err error) {
	order := make([]assets.Asset, 0, len(balances))
	for a := range balances {
		order = append(order, a)
	}
	sort.Slice(order, func(i, j int) bool { return order[i] < order[j] })

	for _, a := range order {
		bal := balances[a]
		if bal.IsZero() {
			continue
		}
		var price numeric.Value
		if a == assets.EQD {
			price = numeric.One()
		} else {
			p, found := pricing.FindSnapshotPrice(snapshot, a)
			if !found {
				return debt, collateral, fmt.Errorf("%w: %s", pricing.ErrPriceNotFound, a)
			}
			pv, ok := p.Value()
			if !ok {
				return debt, collateral, pricing.ErrPriceNotPositive
			}
			price = pv
		}
		usd, ok := bal.Abs().CheckedMul(price)
		if !ok {
			return debt, collateral, fmt.Errorf("usd valuation overflow for %s", a)
		}
		if bal.IsNegative() {
			debt, ok = debt.CheckedAdd(usd)
		} else {
			collateral, ok = collateral.CheckedAdd(usd)
		}
		if !ok {
			return debt, collateral, fmt.Errorf("usd total overflow")
		}
	}
	if collateral.LE(debt) {
		return debt, collateral, ErrNeedToMcBailsmanFirstly
	}
	return debt, collateral, nil
}

// pendingTransfers accumulates the signed per-asset amounts the account
// would receive (or owe) by applying every pending queue entry in id order.
// Pure: mutates nothing. Returns the pending entry ids in the order applied.
func (e *Engine) pendingTransfers(who uuid.UUID) (map[assets.Asset]balance.SignedBalance, []uint64, error) {
	last := e.lastDist[who]

	ids := make([]uint64, 0, len(e.queue))
	for id := range e.queue {
		if id > last {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	if len(ids) == 0 {
		return nil, nil, nil
	}

	working := make(map[assets.Asset]balance.SignedBalance)
	for _, ab := range e.balances.AccountBalances(who) {
		working[ab.Asset] = ab.Balance
	}
	acc := make(map[assets.Asset]balance.SignedBalance)

	for _, id := range ids {
		d := e.queue[id]
		debt, coll, err := e.snapshotDebtAndCollateral(working, d.Prices)
		if err != nil {
			return nil, nil, err
		}
		surplus, _ := coll.CheckedSub(debt)
		portion, ok := surplus.CheckedDiv(d.TotalUSD)
		if !ok {
			return nil, nil, fmt.Errorf("portion division overflow")
		}

		for _, ab := range d.Balances {
			share, ok := ab.Balance.Abs().CheckedMul(portion)
			if !ok {
				return nil, nil, fmt.Errorf("distribution share overflow")
			}
			amount := balance.Positive(share)
			if ab.Balance.IsNegative() {
				amount = balance.Debt(share)
			}
			next, ok := working[ab.Asset].Add(amount)
			if !ok {
				return nil, nil, balance.ErrBalanceOverflow
			}
			working[ab.Asset] = next
			accNext, ok := acc[ab.Asset].Add(amount)
			if !ok {
				return nil, nil, balance.ErrBalanceOverflow
			}
			acc[ab.Asset] = accNext
		}
	}
	return acc, ids, nil
}

// PendingChanges exposes the pending distribution deltas as what-if margin
// changes; the rate engine folds them in before judging margin.
func (e *Engine) PendingChanges(who uuid.UUID) ([]margin.ProposedChange, error) {
	if !e.IsBailsman(who) {
		return nil, nil
	}
	acc, _, err := e.pendingTransfers(who)
	if err != nil {
		return nil, err
	}
	order := make([]assets.Asset, 0, len(acc))
	for a := range acc {
		order = append(order, a)
	}
	sort.Slice(order, func(i, j int) bool { return order[i] < order[j] })
	out := make([]margin.ProposedChange, 0, len(order))
	for _, a := range order {
		out = append(out, margin.ProposedChange{Asset: a, Change: acc[a]})
	}
	return out, nil
}

// Redistribute applies every pending queue entry to the account: computes
// its portion of each snapshot, executes the accumulated transfers against
// the distribution account and advances the cursor. The last consumer of the
// final pending entry also sweeps the rounding residue so the distribution
// account returns to exactly zero.
func (e *Engine) Redistribute(who uuid.UUID) error {
	if !e.IsBailsman(who) {
		return ErrNotBailsman
	}
	acc, ids, err := e.pendingTransfers(who)
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		return nil
	}

	for _, id := range ids {
		e.queue[id].RemainingBailsmen--
	}

	allConsumed := true
	for _, d := range e.queue {
		if d.RemainingBailsmen != 0 {
			allConsumed = false
			break
		}
	}
	if allConsumed {
		// absorb division dust so the holding account zeroes out
		for _, ab := range e.balances.AccountBalances(e.distAcc) {
			if planned, tracked := acc[ab.Asset]; tracked {
				rest, ok := ab.Balance.Sub(planned)
				if !ok {
					return balance.ErrBalanceOverflow
				}
				next, ok := planned.Add(rest)
				if !ok {
					return balance.ErrBalanceOverflow
				}
				acc[ab.Asset] = next
			}
		}
	}

	order := make([]assets.Asset, 0, len(acc))
	for a := range acc {
		order = append(order, a)
	}
	sort.Slice(order, func(i, j int) bool { return order[i] < order[j] })

	for _, a := range order {
		amount := acc[a]
		if amount.IsZero() {
			continue
		}
		from, to := e.distAcc, who
		if amount.IsNegative() {
			from, to = who, e.distAcc
		}
		if terr := e.balances.TransferUnchecked(from, to, a, amount.Abs()); terr != nil {
			return terr
		}
	}

	e.lastDist[who] = e.currentID
	return nil
}

// ReceivePosition takes over a liquidated account: debt legs are paid off
// from the temp account, collateral legs are seized into it in buyout
// priority order, up to the penalized debt value unless the position is
// being fully deleted.
func (e *Engine) ReceivePosition(who uuid.UUID, isDeletingPosition bool) error {
	debtUSD, _, _, err := e.debtAndCollateral(who)
	if err != nil {
		return err
	}
	if !isDeletingPosition {
		multiplier := numeric.One().SaturatingAdd(e.margin.CriticalMargin())
		penalized, ok := debtUSD.CheckedMul(multiplier)
		if !ok {
			return fmt.Errorf("penalty valuation overflow")
		}
		debtUSD = penalized
	}

	byAccount := make(map[assets.Asset]balance.SignedBalance)
	for _, ab := range e.balances.AccountBalances(who) {
		byAccount[ab.Asset] = ab.Balance
	}

	for _, data := range e.registry.ListByBuyoutPriority() {
		bal, ok := byAccount[data.Asset]
		if !ok || bal.IsZero() {
			continue
		}
		if bal.IsNegative() {
			if terr := e.balances.TransferUnchecked(e.tempAcc, who, data.Asset, bal.Abs()); terr != nil {
				return terr
			}
			continue
		}

		amount := bal.Abs()
		if !isDeletingPosition {
			price, perr := e.usdPrice(data.Asset)
			if perr != nil {
				return perr
			}
			needed, ok := debtUSD.CheckedDiv(price)
			if !ok {
				return fmt.Errorf("buyout valuation overflow")
			}
			if needed.LT(amount) {
				amount = needed
			}
			seizedUSD, ok := amount.CheckedMul(price)
			if !ok {
				return fmt.Errorf("buyout valuation overflow")
			}
			seizedUSD = data.Discounted(seizedUSD)
			debtUSD, _ = debtUSD.CheckedSub(seizedUSD)
		}
		if amount.IsZero() {
			continue
		}
		if terr := e.balances.TransferUnchecked(who, e.tempAcc, data.Asset, amount); terr != nil {
			return terr
		}
	}

	if e.IsBailsman(who) {
		return e.UnregisterBailsman(who)
	}
	return nil
}

// ShouldUnregBailsman predicts whether applying the proposed changes would
// leave discounted collateral below the admission floor plus debt. Pure.
func (e *Engine) ShouldUnregBailsman(who uuid.UUID, changes []margin.ProposedChange) (bool, error) {
	anyNegative := false
	for _, ch := range changes {
		if ch.Change.IsNegative() {
			anyNegative = true
			break
		}
	}
	if !anyNegative {
		return false, nil
	}

	changeColl, changeDebt := numeric.Zero(), numeric.Zero()
	for _, ch := range changes {
		price, err := e.usdPrice(ch.Asset)
		if err != nil {
			return false, err
		}
		usd, ok := ch.Change.Abs().CheckedMul(price)
		if !ok {
			return false, fmt.Errorf("usd valuation overflow for %s", ch.Asset)
		}
		if ch.Change.IsNegative() {
			changeDebt, ok = changeDebt.CheckedAdd(usd)
		} else {
			if ch.Asset != assets.EQD {
				data, derr := e.registry.Get(ch.Asset)
				if derr != nil {
					return false, derr
				}
				usd = data.Discounted(usd)
			}
			changeColl, ok = changeColl.CheckedAdd(usd)
		}
		if !ok {
			return false, fmt.Errorf("usd total overflow")
		}
	}

	debt, _, discounted, err := e.debtAndCollateral(who)
	if err != nil {
		return false, err
	}

	left, ok := discounted.CheckedAdd(changeColl)
	if !ok {
		return false, fmt.Errorf("usd total overflow")
	}
	right := e.cfg.MinCollateralUSD.SaturatingAdd(debt).SaturatingAdd(changeDebt)
	return left.LT(right), nil
}

// CanChangeBalance is the balance-change gate registered with the store.
// It protects the distribution account, blocks bailsmen while the pool has
// undistributed surplus, and holds every account to the margin bar.
func (e *Engine) CanChangeBalance(who uuid.UUID, asset assets.Asset, change balance.SignedBalance) error {
	if who == e.distAcc {
		return ErrTempBalancesTransfer
	}
	changes := []margin.ProposedChange{{Asset: asset, Change: change}}

	if e.aggregates.InGroup(who, aggregates.GroupBailsmen) {
		tempDebt, tempColl, _, err := e.debtAndCollateral(e.tempAcc)
		if err != nil {
			return err
		}
		if tempDebt.SaturatingAdd(tempColl).GT(e.cfg.MinTempBalanceUSD) {
			return ErrTempBalancesNotDistributed
		}
		shouldUnreg, err := e.ShouldUnregBailsman(who, changes)
		if err != nil {
			return err
		}
		debt, _, _, err := e.debtAndCollateral(who)
		if err != nil {
			return err
		}
		if shouldUnreg && !debt.IsZero() {
			return ErrBailsmanHasDebt
		}
	}

	state, improved, err := e.margin.CheckMarginWithChange(who, changes)
	if err != nil {
		return err
	}
	if !improved && state != margin.MarginStateGood {
		return margin.ErrWrongMargin
	}
	return nil
}

// --- snapshot support ---

// CursorSnapshot is one exported (bailsman, last distribution id) row.
type CursorSnapshot struct {
	Account uuid.UUID
	LastID  uint64
}

// State is the engine's full persisted state.
type State struct {
	Count     uint32
	CurrentID uint64
	Queue     []Distribution
	Cursors   []CursorSnapshot
}

func (e *Engine) Snapshot() State {
	st := State{Count: e.count, CurrentID: e.currentID}
	for _, d := range e.queue {
		st.Queue = append(st.Queue, *d)
	}
	sort.Slice(st.Queue, func(i, j int) bool { return st.Queue[i].ID < st.Queue[j].ID })
	for who, last := range e.lastDist {
		st.Cursors = append(st.Cursors, CursorSnapshot{Account: who, LastID: last})
	}
	sort.Slice(st.Cursors, func(i, j int) bool {
		a, b := st.Cursors[i].Account, st.Cursors[j].Account
		for k := 0; k < len(a); k++ {
			if a[k] != b[k] {
				return a[k] < b[k]
			}
		}
		return false
	})
	return st
}

func (e *Engine) Restore(st State) {
	e.count = st.Count
	e.currentID = st.CurrentID
	e.queue = make(map[uint64]*Distribution, len(st.Queue))
	for i := range st.Queue {
		d := st.Queue[i]
		e.queue[d.ID] = &d
	}
	e.lastDist = make(map[uuid.UUID]uint64, len(st.Cursors))
	for _, c := range st.Cursors {
		e.lastDist[c.Account] = c.LastID
	}
}
