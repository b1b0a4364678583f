package offchain_test

import (
	"testing"
	"time"

	"EqCore/internal/assets"
	"EqCore/internal/core"
	"EqCore/internal/event"
	"EqCore/internal/numeric"
	"EqCore/internal/offchain"

	"github.com/google/uuid"
)

// --- Test helpers ---

func val(n uint64) numeric.Value { return numeric.SaturatingFromInteger(n) }

// recorder captures submitted advisories instead of publishing them.
type recorder struct {
	events []event.Event
}

func (r *recorder) Submit(evt event.Event) error {
	r.events = append(r.events, evt)
	return nil
}

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

func (f *fixture) next(partition string) int64 {
	n := f.seqs[partition]
	f.seqs[partition]++
	return n
}

func (f *fixture) finalizeBlock(t *testing.T, number uint64, unixSecs int64, validators uint32) {
	t.Helper()
	evt := &event.BlockFinalize{
		BlockNumber:    number,
		BlockTime:      time.Unix(unixSecs, 0).UTC(),
		ValidatorCount: validators,
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

func (f *fixture) withdraw(t *testing.T, who uuid.UUID, asset assets.Asset, amount numeric.Value) {
	t.Helper()
	evt := &event.Withdraw{
		TransactionID: uuid.New(),
		Who:           who,
		Asset:         asset,
		Amount:        amount,
		Sequence:      f.next("global"),
	}
	if err := f.core.ProcessEvent(evt); err != nil {
		t.Fatalf("withdraw: %v", err)
	}
}

// expiringSellOrder rests a limit sell of 1 BTC at 10 that lapses at expiresAt.
func (f *fixture) expiringSellOrder(t *testing.T, who uuid.UUID, expiresAt int64) {
	t.Helper()
	evt := &event.CreateOrder{
		RequestID:  uuid.New(),
		Who:        who,
		Asset:      assets.BTC,
		Side:       event.OrderSideSell,
		Kind:       event.OrderKindLimit,
		LimitPrice: numeric.PriceFromInteger(10),
		Amount:     val(1),
		ExpiresAt:  expiresAt,
		Sequence:   f.next("dex:BTC"),
	}
	if err := f.core.ProcessEvent(evt); err != nil {
		t.Fatalf("create order: %v", err)
	}
}

func sweeper(authority uint32, longevity uint64) *offchain.Sweeper {
	return offchain.NewSweeper(offchain.Config{
		AuthorityIndex: authority,
		Longevity:      longevity,
	}, nil)
}

// ============================================================================
// Test: gating and the dex sweep
// ============================================================================

func TestSweep_NoValidatorsDoesNothing(t *testing.T) {
	f := newFixture(t)
	sub := &recorder{}

	sweeper(0, 5).Sweep(f.core, sub)

	if len(sub.events) != 0 {
		t.Errorf("submitted %d advisories before any block landed", len(sub.events))
	}
}

func TestSweep_ExpiredOrderAdvisory(t *testing.T) {
	f := newFixture(t)
	f.finalizeBlock(t, 1, 1000, 1)
	f.setPrice(t, assets.BTC, numeric.PriceFromInteger(10))

	seller := uuid.New()
	f.deposit(t, seller, assets.EQD, val(1000))
	f.expiringSellOrder(t, seller, 2000)

	sub := &recorder{}
	s := sweeper(0, 5)

	// Not expired yet.
	s.Sweep(f.core, sub)
	if len(sub.events) != 0 {
		t.Fatalf("advisories before expiry = %d, want 0", len(sub.events))
	}

	f.finalizeBlock(t, 2, 2100, 1)
	f.setPrice(t, assets.BTC, numeric.PriceFromInteger(10))
	s.Sweep(f.core, sub)

	if len(sub.events) != 1 {
		t.Fatalf("advisories after expiry = %d, want 1", len(sub.events))
	}
	del, ok := sub.events[0].(*event.DeleteOrder)
	if !ok {
		t.Fatalf("advisory type = %T, want *event.DeleteOrder", sub.events[0])
	}
	if del.Asset != assets.BTC || del.OrderID != 1 || del.Who != seller {
		t.Errorf("advisory = %+v", del)
	}
	if del.Reason != event.DeleteReasonExpired {
		t.Errorf("reason = %v, want expired", del.Reason)
	}
	if del.AuthorityIndex != 0 {
		t.Errorf("authority index = %d, want 0", del.AuthorityIndex)
	}

	// The advisory executes against the live book.
	del.Sequence = f.next("dex:BTC")
	if err := f.core.ProcessEvent(del); err != nil {
		t.Fatalf("executing advisory: %v", err)
	}
	if _, ok := f.core.Dex().FindOrder(assets.BTC, 1, numeric.PriceFromInteger(10)); ok {
		t.Error("expired order still resting after advisory executed")
	}
}

func TestSweep_LongevitySuppression(t *testing.T) {
	f := newFixture(t)
	f.finalizeBlock(t, 1, 1000, 1)
	f.setPrice(t, assets.BTC, numeric.PriceFromInteger(10))

	seller := uuid.New()
	f.deposit(t, seller, assets.EQD, val(1000))
	f.expiringSellOrder(t, seller, 2000)

	f.finalizeBlock(t, 2, 2100, 1)
	f.setPrice(t, assets.BTC, numeric.PriceFromInteger(10))

	sub := &recorder{}
	s := sweeper(0, 3)

	s.Sweep(f.core, sub)
	s.Sweep(f.core, sub)
	if len(sub.events) != 1 {
		t.Fatalf("same-block resweep submitted %d advisories, want 1", len(sub.events))
	}

	// Still inside the longevity window.
	f.finalizeBlock(t, 3, 2110, 1)
	s.Sweep(f.core, sub)
	f.finalizeBlock(t, 4, 2120, 1)
	s.Sweep(f.core, sub)
	if len(sub.events) != 1 {
		t.Fatalf("in-window resweeps submitted %d advisories, want 1", len(sub.events))
	}

	// Window elapsed without execution, resubmit.
	f.finalizeBlock(t, 5, 2130, 1)
	s.Sweep(f.core, sub)
	if len(sub.events) != 2 {
		t.Fatalf("post-window resweep submitted %d advisories, want 2", len(sub.events))
	}
}

func TestSweep_OrderShardAssignment(t *testing.T) {
	f := newFixture(t)
	f.finalizeBlock(t, 1, 1000, 2)
	f.setPrice(t, assets.BTC, numeric.PriceFromInteger(10))

	seller := uuid.New()
	f.deposit(t, seller, assets.EQD, val(1000))
	f.expiringSellOrder(t, seller, 2000)

	f.finalizeBlock(t, 2, 2100, 2)
	f.setPrice(t, assets.BTC, numeric.PriceFromInteger(10))

	sub0, sub1 := &recorder{}, &recorder{}
	sweeper(0, 5).Sweep(f.core, sub0)
	sweeper(1, 5).Sweep(f.core, sub1)

	// Order id 1 with two validators lands on authority 1, exactly once.
	if len(sub0.events) != 0 {
		t.Errorf("authority 0 submitted %d advisories, want 0", len(sub0.events))
	}
	if len(sub1.events) != 1 {
		t.Errorf("authority 1 submitted %d advisories, want 1", len(sub1.events))
	}
}

// ============================================================================
// Test: reinit and redistribute scans
// ============================================================================

func TestSweep_BorrowerReinitAdvisory(t *testing.T) {
	f := newFixture(t)
	// A year on the clock so the accrued fee clears the surplus floor.
	f.finalizeBlock(t, 1, 31_557_600, 1)
	f.setPrice(t, assets.EQ, numeric.PriceFromInteger(1))
	f.setPrice(t, assets.BTC, numeric.PriceFromInteger(10))

	borrower := uuid.New()
	f.deposit(t, borrower, assets.EQD, val(1000))
	f.withdraw(t, borrower, assets.BTC, val(1))

	bystander := uuid.New()
	f.deposit(t, bystander, assets.EQD, val(500))

	sub := &recorder{}
	sweeper(0, 5).Sweep(f.core, sub)

	if len(sub.events) != 1 {
		t.Fatalf("advisories = %d, want 1", len(sub.events))
	}
	reinit, ok := sub.events[0].(*event.Reinit)
	if !ok {
		t.Fatalf("advisory type = %T, want *event.Reinit", sub.events[0])
	}
	if reinit.Who != borrower {
		t.Errorf("reinit target = %s, want borrower %s", reinit.Who, borrower)
	}
	if reinit.AuthorityIndex != 0 {
		t.Errorf("authority index = %d, want 0", reinit.AuthorityIndex)
	}
}

func TestSweep_ReinitShardOverlapsNeighbors(t *testing.T) {
	f := newFixture(t)
	f.finalizeBlock(t, 1, 31_557_600, 4)
	f.setPrice(t, assets.EQ, numeric.PriceFromInteger(1))
	f.setPrice(t, assets.BTC, numeric.PriceFromInteger(10))

	borrower := uuid.New()
	f.deposit(t, borrower, assets.EQD, val(1000))
	f.withdraw(t, borrower, assets.BTC, val(1))

	// Slot 0 is covered by authorities 0, 1 and 3; authority 2 skips it.
	got := make(map[uint32]int)
	for a := uint32(0); a < 4; a++ {
		sub := &recorder{}
		sweeper(a, 5).Sweep(f.core, sub)
		got[a] = len(sub.events)
	}
	want := map[uint32]int{0: 1, 1: 1, 2: 0, 3: 1}
	for a, n := range want {
		if got[a] != n {
			t.Errorf("authority %d submitted %d advisories, want %d", a, got[a], n)
		}
	}
}

func TestSweep_BailsmanWithoutPendingSkipped(t *testing.T) {
	f := newFixture(t)
	f.finalizeBlock(t, 1, 1000, 1)
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

	sub := &recorder{}
	sweeper(0, 5).Sweep(f.core, sub)

	for _, evt := range sub.events {
		if _, ok := evt.(*event.Redistribute); ok {
			t.Error("redistribute advisory for a bailsman with no pending distributions")
		}
	}
}
