package core_test

import (
	"errors"
	"testing"
	"time"

	"EqCore/internal/assets"
	"EqCore/internal/balance"
	"EqCore/internal/core"
	"EqCore/internal/dex"
	"EqCore/internal/event"
	"EqCore/internal/numeric"

	"github.com/google/uuid"
)

// --- Test helpers ---

func val(n uint64) numeric.Value { return numeric.SaturatingFromInteger(n) }

type fixture struct {
	core    *core.DeterministicCore
	persist chan core.CoreOutput
	proj    chan core.CoreOutput
	seqs    map[string]int64
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	persist := make(chan core.CoreOutput, 1024)
	proj := make(chan core.CoreOutput, 1024)
	return &fixture{
		core:    core.NewDeterministicCore(0, persist, proj, nil, nil),
		persist: persist,
		proj:    proj,
		seqs:    make(map[string]int64),
	}
}

// next hands out the upstream sequence for one partition.
func (f *fixture) next(partition string) int64 {
	n := f.seqs[partition]
	f.seqs[partition]++
	return n
}

func (f *fixture) deposit(t *testing.T, who uuid.UUID, asset assets.Asset, amount numeric.Value) {
	t.Helper()
	evt := &event.Deposit{
		TransactionID: uuid.New(),
		Who:           who,
		Asset:         asset,
		Amount:        amount,
		Sequence:      f.next("global"),
	}
	if err := f.core.ProcessEvent(evt); err != nil {
		t.Fatalf("deposit: %v", err)
	}
}

func (f *fixture) finalizeBlock(t *testing.T, number uint64, unixSecs int64) {
	t.Helper()
	evt := &event.BlockFinalize{
		BlockNumber:    number,
		BlockTime:      time.Unix(unixSecs, 0).UTC(),
		ValidatorCount: 4,
		Sequence:       f.next("blocks"),
	}
	if err := f.core.ProcessEvent(evt); err != nil {
		t.Fatalf("block %d: %v", number, err)
	}
}

func (f *fixture) setPrice(t *testing.T, asset assets.Asset, price numeric.Price) {
	t.Helper()
	evt := &event.PriceUpdate{
		UpdateID:     uuid.New(),
		Asset:        asset,
		Price:        price,
		FeedSequence: f.next("prices:" + asset.String()),
	}
	if err := f.core.ProcessEvent(evt); err != nil {
		t.Fatalf("price %s: %v", asset, err)
	}
}

// drain empties the persist channel and returns everything received.
func (f *fixture) drain() []core.CoreOutput {
	var out []core.CoreOutput
	for {
		select {
		case o := <-f.persist:
			out = append(out, o)
		default:
			return out
		}
	}
}

// ============================================================================
// Test: pipeline basics
// ============================================================================

func TestProcessEvent_DepositAppliesAndEmits(t *testing.T) {
	f := newFixture(t)
	who := uuid.New()

	f.deposit(t, who, assets.EQD, val(100))

	if got := f.core.Balances().Get(who, assets.EQD); got != balance.Positive(val(100)) {
		t.Errorf("balance = %s, want 100", got)
	}

	outputs := f.drain()
	if len(outputs) != 1 {
		t.Fatalf("persist outputs = %d, want 1", len(outputs))
	}
	env := outputs[0].Envelope
	if env.Sequence != 0 {
		t.Errorf("sequence = %d, want 0", env.Sequence)
	}
	if env.EventType != event.EventTypeDeposit {
		t.Errorf("event type = %s", env.EventType)
	}
	if len(outputs[0].Deltas) != 1 || outputs[0].Deltas[0].Account != who {
		t.Errorf("deltas = %+v", outputs[0].Deltas)
	}
	if len(outputs[0].StateDelta) == 0 {
		t.Error("empty state digest for a balance-touching event")
	}
	if f.core.GetSequence() != 1 {
		t.Errorf("next sequence = %d, want 1", f.core.GetSequence())
	}
}

func TestProcessEvent_HashChainLinks(t *testing.T) {
	f := newFixture(t)
	who := uuid.New()

	f.deposit(t, who, assets.EQD, val(10))
	f.deposit(t, who, assets.EQD, val(20))
	f.deposit(t, uuid.New(), assets.EQD, val(30))

	outputs := f.drain()
	if len(outputs) != 3 {
		t.Fatalf("persist outputs = %d, want 3", len(outputs))
	}
	for i := 1; i < len(outputs); i++ {
		if outputs[i].Envelope.PrevHash != outputs[i-1].Envelope.StateHash {
			t.Errorf("envelope %d prev hash does not link to envelope %d", i, i-1)
		}
	}
	if f.core.GetStateHash() != outputs[2].Envelope.StateHash {
		t.Error("chain tip does not match last envelope")
	}
}

func TestProcessEvent_DuplicateIsSwallowed(t *testing.T) {
	f := newFixture(t)
	who := uuid.New()

	evt := &event.Deposit{
		TransactionID: uuid.New(),
		Who:           who,
		Asset:         assets.EQD,
		Amount:        val(50),
		Sequence:      f.next("global"),
	}
	if err := f.core.ProcessEvent(evt); err != nil {
		t.Fatal(err)
	}

	// redelivery carries the next upstream sequence but the same key
	dup := *evt
	dup.Sequence = f.next("global")
	if err := f.core.ProcessEvent(&dup); err != nil {
		t.Fatalf("duplicate must not error: %v", err)
	}

	if got := f.core.Balances().Get(who, assets.EQD); got != balance.Positive(val(50)) {
		t.Errorf("balance = %s, want 50 (single application)", got)
	}
	if outputs := f.drain(); len(outputs) != 1 {
		t.Errorf("persist outputs = %d, want 1", len(outputs))
	}
}

func TestProcessEvent_SequenceGapRejected(t *testing.T) {
	f := newFixture(t)
	who := uuid.New()

	f.deposit(t, who, assets.EQD, val(10))

	evt := &event.Deposit{
		TransactionID: uuid.New(),
		Who:           who,
		Asset:         assets.EQD,
		Amount:        val(10),
		Sequence:      5, // expected 1
	}
	if err := f.core.ProcessEvent(evt); err == nil {
		t.Fatal("gap in the global partition must be rejected")
	}
	if got := f.core.Balances().Get(who, assets.EQD); got != balance.Positive(val(10)) {
		t.Errorf("balance changed on rejected event: %s", got)
	}
}

func TestProcessEvent_RejectedDispatchEmitsNothing(t *testing.T) {
	f := newFixture(t)
	f.finalizeBlock(t, 1, 1000)
	f.setPrice(t, assets.BTC, numeric.PriceFromInteger(10))

	who := uuid.New()
	f.deposit(t, who, assets.EQD, val(10))
	f.drain()

	// 1 BTC of debt against 10 EQD of collateral leaves no margin
	evt := &event.Withdraw{
		TransactionID: uuid.New(),
		Who:           who,
		Asset:         assets.BTC,
		Amount:        val(1),
		Sequence:      f.next("global"),
	}
	err := f.core.ProcessEvent(evt)
	if err == nil {
		t.Fatal("uncovered withdraw must fail")
	}
	if outputs := f.drain(); len(outputs) != 0 {
		t.Errorf("failed dispatch emitted %d outputs", len(outputs))
	}

	// the partition cursor advanced, so the stream continues
	f.deposit(t, who, assets.EQD, val(5))
	if got := f.core.Balances().Get(who, assets.EQD); got != balance.Positive(val(15)) {
		t.Errorf("balance = %s, want 15", got)
	}
}

// ============================================================================
// Test: oracle feed ordering
// ============================================================================

func TestPriceUpdate_GapsToleratedStaleIgnored(t *testing.T) {
	f := newFixture(t)
	f.finalizeBlock(t, 1, 1000)

	ten := numeric.PriceFromInteger(10)
	twelve := numeric.PriceFromInteger(12)

	if err := f.core.ProcessEvent(&event.PriceUpdate{
		UpdateID: uuid.New(), Asset: assets.BTC, Price: ten, FeedSequence: 7,
	}); err != nil {
		t.Fatalf("feed gap must be tolerated: %v", err)
	}
	f.drain()

	// behind the cursor: ignored without error, no envelope
	if err := f.core.ProcessEvent(&event.PriceUpdate{
		UpdateID: uuid.New(), Asset: assets.BTC, Price: twelve, FeedSequence: 3,
	}); err != nil {
		t.Fatalf("stale quote must be ignored: %v", err)
	}
	if outputs := f.drain(); len(outputs) != 0 {
		t.Errorf("stale quote emitted %d outputs", len(outputs))
	}

	got, err := f.core.Prices().GetPrice(assets.BTC)
	if err != nil {
		t.Fatal(err)
	}
	if got != ten {
		t.Errorf("price = %s, want the newer quote 10", got)
	}
}

// ============================================================================
// Test: order flow
// ============================================================================

func TestOrderFlow_CreateCancelOwnership(t *testing.T) {
	f := newFixture(t)
	f.finalizeBlock(t, 1, 1000)
	f.setPrice(t, assets.BTC, numeric.PriceFromInteger(10))

	seller := uuid.New()
	f.deposit(t, seller, assets.EQD, val(1000))

	create := &event.CreateOrder{
		RequestID:  uuid.New(),
		Who:        seller,
		Asset:      assets.BTC,
		Side:       event.OrderSideSell,
		Kind:       event.OrderKindLimit,
		LimitPrice: numeric.PriceFromInteger(10),
		Amount:     val(1),
		Sequence:   f.next("dex:BTC"),
	}
	if err := f.core.ProcessEvent(create); err != nil {
		t.Fatalf("create order: %v", err)
	}
	_, ask, _, hasAsk := f.core.Dex().BestPrice(assets.BTC)
	if !hasAsk || ask != numeric.PriceFromInteger(10) {
		t.Fatalf("ask = %s (has %v), want 10", ask, hasAsk)
	}

	// a stranger cannot cancel the order
	stranger := uuid.New()
	cancel := &event.DeleteOrder{
		RequestID: uuid.New(),
		Who:       stranger,
		Asset:     assets.BTC,
		OrderID:   1,
		Price:     numeric.PriceFromInteger(10),
		Reason:    event.DeleteReasonCancel,
		Sequence:  f.next("dex:BTC"),
	}
	if err := f.core.ProcessEvent(cancel); !errors.Is(err, core.ErrNotOrderOwner) {
		t.Fatalf("stranger cancel: %v", err)
	}

	// the owner can
	cancel = &event.DeleteOrder{
		RequestID: uuid.New(),
		Who:       seller,
		Asset:     assets.BTC,
		OrderID:   1,
		Price:     numeric.PriceFromInteger(10),
		Reason:    event.DeleteReasonCancel,
		Sequence:  f.next("dex:BTC"),
	}
	if err := f.core.ProcessEvent(cancel); err != nil {
		t.Fatalf("owner cancel: %v", err)
	}
	if _, _, _, hasAsk := f.core.Dex().BestPrice(assets.BTC); hasAsk {
		t.Error("order still resting after cancel")
	}
}

func TestOrderFlow_StaleAdvisoryRejected(t *testing.T) {
	f := newFixture(t)
	f.finalizeBlock(t, 1, 1000)
	f.setPrice(t, assets.BTC, numeric.PriceFromInteger(10))

	seller := uuid.New()
	f.deposit(t, seller, assets.EQD, val(1000))

	create := &event.CreateOrder{
		RequestID:  uuid.New(),
		Who:        seller,
		Asset:      assets.BTC,
		Side:       event.OrderSideSell,
		Kind:       event.OrderKindLimit,
		LimitPrice: numeric.PriceFromInteger(10),
		Amount:     val(1),
		ExpiresAt:  5000,
		Sequence:   f.next("dex:BTC"),
	}
	if err := f.core.ProcessEvent(create); err != nil {
		t.Fatal(err)
	}

	// not expired yet, in corridor, margin fine: every advisory cause is stale
	for _, reason := range []event.DeleteReason{
		event.DeleteReasonExpired,
		event.DeleteReasonOutOfCorridor,
		event.DeleteReasonMarginCall,
	} {
		del := &event.DeleteOrder{
			RequestID:      uuid.New(),
			Who:            seller,
			Asset:          assets.BTC,
			OrderID:        1,
			Price:          numeric.PriceFromInteger(10),
			Reason:         reason,
			AuthorityIndex: 1,
			Sequence:       f.next("dex:BTC"),
		}
		if err := f.core.ProcessEvent(del); !errors.Is(err, core.ErrAdvisoryStale) {
			t.Errorf("reason %d: %v, want stale advisory rejection", reason, err)
		}
	}

	// past the expiry the Expired advisory lands
	f.finalizeBlock(t, 2, 6000)
	del := &event.DeleteOrder{
		RequestID:      uuid.New(),
		Who:            seller,
		Asset:          assets.BTC,
		OrderID:        1,
		Price:          numeric.PriceFromInteger(10),
		Reason:         event.DeleteReasonExpired,
		AuthorityIndex: 1,
		Sequence:       f.next("dex:BTC"),
	}
	if err := f.core.ProcessEvent(del); err != nil {
		t.Fatalf("expired advisory: %v", err)
	}
	if _, ok := f.core.Dex().FindOrder(assets.BTC, 1, numeric.PriceFromInteger(10)); ok {
		t.Error("expired order still resting")
	}
}

func TestDeleteOrder_UnknownOrder(t *testing.T) {
	f := newFixture(t)
	f.finalizeBlock(t, 1, 1000)

	del := &event.DeleteOrder{
		RequestID: uuid.New(),
		Who:       uuid.New(),
		Asset:     assets.BTC,
		OrderID:   99,
		Price:     numeric.PriceFromInteger(10),
		Reason:    event.DeleteReasonCancel,
		Sequence:  f.next("dex:BTC"),
	}
	if err := f.core.ProcessEvent(del); !errors.Is(err, dex.ErrOrderNotFound) {
		t.Errorf("delete unknown order: %v", err)
	}
}

// ============================================================================
// Test: block clock
// ============================================================================

func TestBlockFinalize_DrivesTheClock(t *testing.T) {
	f := newFixture(t)

	f.finalizeBlock(t, 7, 12_345)
	if f.core.BlockNumber() != 7 || f.core.BlockTime() != 12_345 {
		t.Errorf("block cursor = (%d, %d)", f.core.BlockNumber(), f.core.BlockTime())
	}
	if f.core.ValidatorCount() != 4 {
		t.Errorf("validator count = %d", f.core.ValidatorCount())
	}

	outputs := f.drain()
	if len(outputs) != 1 {
		t.Fatalf("outputs = %d", len(outputs))
	}
	if !outputs[0].Envelope.Timestamp.Equal(time.Unix(12_345, 0).UTC()) {
		t.Errorf("envelope timestamp = %s", outputs[0].Envelope.Timestamp)
	}

	// later events are stamped with the block time
	f.deposit(t, uuid.New(), assets.EQD, val(1))
	outputs = f.drain()
	if !outputs[0].Envelope.Timestamp.Equal(time.Unix(12_345, 0).UTC()) {
		t.Errorf("deposit timestamp = %s, want block time", outputs[0].Envelope.Timestamp)
	}
}

// ============================================================================
// Test: register / reinit round trips
// ============================================================================

func TestBailsmanLifecycleThroughEvents(t *testing.T) {
	f := newFixture(t)
	f.finalizeBlock(t, 1, 1000)
	f.setPrice(t, assets.EQ, numeric.PriceFromInteger(1))

	who := uuid.New()
	f.deposit(t, who, assets.EQ, val(10_000))

	reg := &event.RegisterBailsman{
		RequestID: uuid.New(),
		Who:       who,
		Sequence:  f.next("global"),
	}
	if err := f.core.ProcessEvent(reg); err != nil {
		t.Fatalf("register: %v", err)
	}
	if !f.core.Bailsmen().IsBailsman(who) {
		t.Fatal("account not in the pool")
	}

	unreg := &event.UnregisterBailsman{
		RequestID: uuid.New(),
		Who:       who,
		Sequence:  f.next("global"),
	}
	if err := f.core.ProcessEvent(unreg); err != nil {
		t.Fatalf("unregister: %v", err)
	}
	if f.core.Bailsmen().IsBailsman(who) {
		t.Error("account still in the pool")
	}
}

func TestReinitThroughEvents(t *testing.T) {
	f := newFixture(t)
	f.finalizeBlock(t, 1, 1000)
	f.setPrice(t, assets.EQ, numeric.PriceFromInteger(1))

	who := uuid.New()
	f.deposit(t, who, assets.EQD, val(100))

	evt := &event.Reinit{
		RequestID:      uuid.New(),
		Who:            who,
		AuthorityIndex: 0,
		Sequence:       f.next("global"),
	}
	if err := f.core.ProcessEvent(evt); err != nil {
		t.Fatalf("reinit: %v", err)
	}
	if f.core.Rate().LastUpdate(who) != 1000 {
		t.Errorf("fee cursor = %d, want 1000", f.core.Rate().LastUpdate(who))
	}
}

// ============================================================================
// Test: asset updates
// ============================================================================

func TestAssetUpdate_RewritesTradableParams(t *testing.T) {
	f := newFixture(t)

	evt := &event.AssetUpdate{
		UpdateID:           uuid.New(),
		Asset:              assets.BTC,
		LotSize:            val(1),
		PriceStep:          numeric.PriceFromInteger(1),
		MakerFeePPM:        100,
		TakerFeePPM:        200,
		CollateralDiscount: 80,
		DexEnabled:         false,
		Sequence:           f.next("global"),
	}
	if err := f.core.ProcessEvent(evt); err != nil {
		t.Fatal(err)
	}

	data, err := f.core.Registry().Get(assets.BTC)
	if err != nil {
		t.Fatal(err)
	}
	if data.DexEnabled || data.MakerFeePPM != 100 || data.CollateralDiscount != 80 {
		t.Errorf("asset data = %+v", data)
	}
	if data.Name != "BTC" || data.BuyoutPriority == 0 {
		t.Errorf("identity fields must survive the update: %+v", data)
	}
}

// ============================================================================
// Test: snapshot / restore
// ============================================================================

func TestSnapshotRestore_ResumesTheStream(t *testing.T) {
	f := newFixture(t)
	f.finalizeBlock(t, 1, 1000)
	f.setPrice(t, assets.BTC, numeric.PriceFromInteger(10))
	f.setPrice(t, assets.EQ, numeric.PriceFromInteger(1))

	who := uuid.New()
	f.deposit(t, who, assets.EQD, val(1000))

	firstDeposit := &event.Deposit{
		TransactionID: uuid.New(),
		Who:           who,
		Asset:         assets.EQ,
		Amount:        val(7),
		Sequence:      f.next("global"),
	}
	if err := f.core.ProcessEvent(firstDeposit); err != nil {
		t.Fatal(err)
	}

	create := &event.CreateOrder{
		RequestID:  uuid.New(),
		Who:        who,
		Asset:      assets.BTC,
		Side:       event.OrderSideSell,
		Kind:       event.OrderKindLimit,
		LimitPrice: numeric.PriceFromInteger(10),
		Amount:     val(1),
		Sequence:   f.next("dex:BTC"),
	}
	if err := f.core.ProcessEvent(create); err != nil {
		t.Fatal(err)
	}
	f.drain()

	snap := f.core.CreateSnapshotState()

	restored := newFixture(t)
	restored.seqs = f.seqs
	if err := restored.core.RestoreFromSnapshot(snap); err != nil {
		t.Fatal(err)
	}
	restored.core.WarmLRU(snap.IdempotencyKeys)

	if restored.core.GetSequence() != f.core.GetSequence() {
		t.Errorf("sequence = %d, want %d", restored.core.GetSequence(), f.core.GetSequence())
	}
	if restored.core.GetStateHash() != f.core.GetStateHash() {
		t.Error("chain tip diverged after restore")
	}
	if got := restored.core.Balances().Get(who, assets.EQ); got != balance.Positive(val(7)) {
		t.Errorf("restored EQ balance = %s", got)
	}
	_, ask, _, hasAsk := restored.core.Dex().BestPrice(assets.BTC)
	if !hasAsk || ask != numeric.PriceFromInteger(10) {
		t.Error("resting order lost in restore")
	}
	if restored.core.BlockTime() != 1000 {
		t.Errorf("block time = %d", restored.core.BlockTime())
	}

	// an old redelivery is still recognized after the warm start
	dup := *firstDeposit
	if err := restored.core.ProcessEvent(&dup); err != nil {
		t.Fatalf("redelivery after restore: %v", err)
	}
	if got := restored.core.Balances().Get(who, assets.EQ); got != balance.Positive(val(7)) {
		t.Errorf("duplicate applied after restore: %s", got)
	}

	// and the stream continues on the restored cursors
	restored.deposit(t, who, assets.EQ, val(3))
	if got := restored.core.Balances().Get(who, assets.EQ); got != balance.Positive(val(10)) {
		t.Errorf("EQ balance = %s, want 10", got)
	}
}
