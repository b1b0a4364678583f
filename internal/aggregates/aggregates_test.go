package aggregates_test

import (
	"EqCore/internal/aggregates"
	"EqCore/internal/assets"
	"EqCore/internal/balance"
	"EqCore/internal/numeric"
	"testing"

	"github.com/google/uuid"
)

func val(n uint64) numeric.Value { return numeric.SaturatingFromInteger(n) }

func wired(t *testing.T) (*balance.Store, *aggregates.Store) {
	t.Helper()
	bs := balance.NewStore()
	ag := aggregates.NewStore()
	bs.SetGroupUpdater(ag)
	return bs, ag
}

// ============================================================================
// Test: four-case delta protocol
// ============================================================================

func TestAggregates_PositiveDeltaPositivePrev(t *testing.T) {
	bs, ag := wired(t)
	who := uuid.New()
	if err := ag.SetUserGroup(who, aggregates.GroupBalances, true, bs); err != nil {
		t.Fatal(err)
	}

	bs.Deposit(who, assets.BTC, val(10))
	bs.Deposit(who, assets.BTC, val(5))

	total := ag.Total(aggregates.GroupBalances, assets.BTC)
	if total.Collateral.Cmp(val(15)) != 0 || !total.Debt.IsZero() {
		t.Errorf("collateral=%s debt=%s", total.Collateral, total.Debt)
	}
}

func TestAggregates_NegativeDeltaPositivePrev_SplitsAcrossZero(t *testing.T) {
	bs, ag := wired(t)
	who := uuid.New()
	ag.SetUserGroup(who, aggregates.GroupBalances, true, bs)

	bs.Deposit(who, assets.BTC, val(10))
	// withdraw 14: consumes 10 collateral, accrues 4 debt
	bs.Withdraw(who, assets.BTC, val(14))

	total := ag.Total(aggregates.GroupBalances, assets.BTC)
	if !total.Collateral.IsZero() || total.Debt.Cmp(val(4)) != 0 {
		t.Errorf("collateral=%s debt=%s, want 0/4", total.Collateral, total.Debt)
	}
}

func TestAggregates_PositiveDeltaNegativePrev_ConsumesDebtFirst(t *testing.T) {
	bs, ag := wired(t)
	who := uuid.New()
	ag.SetUserGroup(who, aggregates.GroupBalances, true, bs)

	bs.Withdraw(who, assets.ETH, val(6)) // debt 6
	bs.Deposit(who, assets.ETH, val(10)) // clears debt, 4 collateral

	total := ag.Total(aggregates.GroupBalances, assets.ETH)
	if total.Collateral.Cmp(val(4)) != 0 || !total.Debt.IsZero() {
		t.Errorf("collateral=%s debt=%s, want 4/0", total.Collateral, total.Debt)
	}
}

func TestAggregates_NegativeDeltaNegativePrev(t *testing.T) {
	bs, ag := wired(t)
	who := uuid.New()
	ag.SetUserGroup(who, aggregates.GroupBalances, true, bs)

	bs.Withdraw(who, assets.ETH, val(3))
	bs.Withdraw(who, assets.ETH, val(2))

	total := ag.Total(aggregates.GroupBalances, assets.ETH)
	if !total.Collateral.IsZero() || total.Debt.Cmp(val(5)) != 0 {
		t.Errorf("collateral=%s debt=%s, want 0/5", total.Collateral, total.Debt)
	}
}

// ============================================================================
// Test: membership replay
// ============================================================================

func TestAggregates_JoinReplaysExistingBalances(t *testing.T) {
	bs, ag := wired(t)
	who := uuid.New()

	// balances exist before the account joins the group
	bs.Deposit(who, assets.BTC, val(7))
	bs.Withdraw(who, assets.EQD, val(2))

	if err := ag.SetUserGroup(who, aggregates.GroupBailsmen, true, bs); err != nil {
		t.Fatal(err)
	}

	if got := ag.Total(aggregates.GroupBailsmen, assets.BTC); got.Collateral.Cmp(val(7)) != 0 {
		t.Errorf("BTC collateral: %s", got.Collateral)
	}
	if got := ag.Total(aggregates.GroupBailsmen, assets.EQD); got.Debt.Cmp(val(2)) != 0 {
		t.Errorf("EQD debt: %s", got.Debt)
	}
}

func TestAggregates_LeaveRemovesBalances(t *testing.T) {
	bs, ag := wired(t)
	who := uuid.New()
	bs.Deposit(who, assets.BTC, val(7))
	ag.SetUserGroup(who, aggregates.GroupBailsmen, true, bs)
	ag.SetUserGroup(who, aggregates.GroupBailsmen, false, bs)

	if got := ag.Total(aggregates.GroupBailsmen, assets.BTC); !got.Collateral.IsZero() || !got.Debt.IsZero() {
		t.Errorf("totals should be zero after leave: %s/%s", got.Collateral, got.Debt)
	}
	if ag.InGroup(who, aggregates.GroupBailsmen) {
		t.Error("should not be a member")
	}
}

func TestAggregates_TotalsTrackMembersExactly(t *testing.T) {
	bs, ag := wired(t)
	a := uuid.New()
	b := uuid.New()
	ag.SetUserGroup(a, aggregates.GroupBorrowers, true, bs)
	ag.SetUserGroup(b, aggregates.GroupBorrowers, true, bs)

	bs.Deposit(a, assets.DOT, val(10))
	bs.Withdraw(b, assets.DOT, val(4))
	bs.Transfer(a, b, assets.DOT, val(1))

	// a: +9, b: -3
	total := ag.Total(aggregates.GroupBorrowers, assets.DOT)
	if total.Collateral.Cmp(val(9)) != 0 || total.Debt.Cmp(val(3)) != 0 {
		t.Errorf("collateral=%s debt=%s, want 9/3", total.Collateral, total.Debt)
	}
}

func TestAggregates_MembersDeterministicOrder(t *testing.T) {
	bs, ag := wired(t)
	for i := 0; i < 10; i++ {
		ag.SetUserGroup(uuid.New(), aggregates.GroupBailsmen, true, bs)
	}
	first := ag.Members(aggregates.GroupBailsmen)
	second := ag.Members(aggregates.GroupBailsmen)
	if len(first) != 10 {
		t.Fatalf("got %d members", len(first))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatal("member order must be deterministic")
		}
	}
}

func TestAggregates_SnapshotRestore(t *testing.T) {
	bs, ag := wired(t)
	who := uuid.New()
	ag.SetUserGroup(who, aggregates.GroupBalances, true, bs)
	bs.Deposit(who, assets.BTC, val(3))

	totals, membership := ag.Snapshot()

	ag2 := aggregates.NewStore()
	ag2.Restore(totals, membership)
	if !ag2.InGroup(who, aggregates.GroupBalances) {
		t.Error("membership lost")
	}
	if got := ag2.Total(aggregates.GroupBalances, assets.BTC); got.Collateral.Cmp(val(3)) != 0 {
		t.Errorf("restored collateral: %s", got.Collateral)
	}
}
