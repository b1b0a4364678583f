package rate_test

import (
	"errors"
	"testing"

	"EqCore/internal/aggregates"
	"EqCore/internal/assets"
	"EqCore/internal/bailsman"
	"EqCore/internal/balance"
	"EqCore/internal/margin"
	"EqCore/internal/numeric"
	"EqCore/internal/pricing"
	"EqCore/internal/rate"

	"github.com/google/uuid"
)

func val(n uint64) numeric.Value { return numeric.SaturatingFromInteger(n) }

const yearSecs = 31_557_600

type fixture struct {
	balances *balance.Store
	agg      *aggregates.Store
	prices   *pricing.Store
	bails    *bailsman.Engine
	engine   *rate.Engine
	now      int64
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		balances: balance.NewStore(),
		agg:      aggregates.NewStore(),
		prices:   pricing.NewStore(0),
	}
	f.balances.SetGroupUpdater(f.agg)
	reg := assets.DefaultRegistry()
	f.prices.SetPrice(assets.EQ, numeric.PriceFromInteger(1))
	f.prices.SetPrice(assets.BTC, numeric.PriceFromInteger(100))
	f.prices.SetPrice(assets.ETH, numeric.PriceFromInteger(10))
	f.prices.SetPrice(assets.DOT, numeric.PriceFromInteger(1))

	clock := func() int64 { return f.now }
	calc := margin.NewCalculator(margin.DefaultConfig(), f.balances, f.prices, reg, clock)
	f.bails = bailsman.NewEngine(bailsman.DefaultConfig(), f.balances, f.agg, f.prices, reg, calc)
	f.engine = rate.NewEngine(rate.DefaultConfig(), f.balances, f.agg, f.prices, reg, calc,
		f.bails, rate.TestPrimeRate(), clock)
	return f
}

// ============================================================================
// Test: fee calculation
// ============================================================================

func TestCalcFee_ZeroDebtShortCircuits(t *testing.T) {
	f := newFixture(t)
	who := uuid.New()
	f.balances.Deposit(who, assets.EQD, val(100))

	if _, err := f.engine.CalcFee(who); !errors.Is(err, rate.ErrZeroDebt) {
		t.Errorf("CalcFee: %v", err)
	}
	if err := f.engine.ChargeFee(who); err != nil {
		t.Errorf("ChargeFee must treat zero debt as a no-op: %v", err)
	}
}

// One year of accrual on 100 USD of EQD debt at pinned 2% prime:
// coeff = 100, treasury = 1, bailsman = 1 + 1.4 + 0.6 = 3, no lender slice
// for the synthetic asset.
func TestCalcFee_SplitOnEqdDebt(t *testing.T) {
	f := newFixture(t)
	who := uuid.New()
	f.balances.Deposit(who, assets.BTC, val(100))
	f.balances.ApplyUnchecked(who, assets.EQD, balance.Debt(val(100)))
	f.engine.Restore([]rate.UpdateSnapshot{{Account: who, At: 0}})
	f.now = yearSecs

	fee, err := f.engine.CalcFee(who)
	if err != nil {
		t.Fatal(err)
	}
	if fee.BasicAsset != assets.EQ {
		t.Errorf("basic asset = %s", fee.BasicAsset)
	}
	if fee.Treasury.Cmp(val(1)) != 0 {
		t.Errorf("treasury = %s, want 1", fee.Treasury)
	}
	if fee.Bailsman.Cmp(val(3)) != 0 {
		t.Errorf("bailsman = %s, want 3", fee.Bailsman)
	}
	if len(fee.Lender) != 0 {
		t.Errorf("unexpected lender fees: %v", fee.Lender)
	}
	if fee.Total().Cmp(val(4)) != 0 {
		t.Errorf("total = %s, want 4", fee.Total())
	}
}

func TestCalcFee_LenderSliceOnPhysicalDebt(t *testing.T) {
	f := newFixture(t)
	who := uuid.New()
	f.balances.Deposit(who, assets.EQD, val(2000))
	f.balances.ApplyUnchecked(who, assets.BTC, balance.Debt(val(1))) // 100 USD debt
	f.engine.Restore([]rate.UpdateSnapshot{{Account: who, At: 0}})
	f.now = yearSecs

	fee, err := f.engine.CalcFee(who)
	if err != nil {
		t.Fatal(err)
	}
	if len(fee.Lender) != 1 || fee.Lender[0].Asset != assets.BTC {
		t.Fatalf("lender fees: %v", fee.Lender)
	}
	// coeff = 100, weight 1: 100 * (0.01 + 0.3*0.02) = 1.6
	want := numeric.SaturatingFromRational(16, 10)
	if fee.Lender[0].Amount.Cmp(want) != 0 {
		t.Errorf("lender fee = %s, want %s", fee.Lender[0].Amount, want)
	}
}

// An account with no fee cursor yet accrues nothing on first settlement; the
// clock only starts ticking once the cursor is stamped.
func TestCalcFee_FirstContactAccruesNothing(t *testing.T) {
	f := newFixture(t)
	who := uuid.New()
	f.balances.Deposit(who, assets.BTC, val(100))
	f.balances.ApplyUnchecked(who, assets.EQD, balance.Debt(val(100)))
	f.now = 1_700_000_000

	fee, err := f.engine.CalcFee(who)
	if err != nil {
		t.Fatal(err)
	}
	if !fee.Total().IsZero() {
		t.Errorf("first-contact fee = %s, want 0", fee.Total())
	}

	if err := f.engine.DoReinit(who); err != nil {
		t.Fatal(err)
	}
	if f.engine.LastUpdate(who) != f.now {
		t.Fatalf("last update = %d", f.engine.LastUpdate(who))
	}
	if got := f.balances.Get(who, assets.EQ); !got.IsZero() {
		t.Errorf("first settlement charged %s", got)
	}

	// from here on the accrual is proportional to elapsed time only
	f.now += yearSecs
	fee, err = f.engine.CalcFee(who)
	if err != nil {
		t.Fatal(err)
	}
	if fee.Treasury.Cmp(val(1)) != 0 {
		t.Errorf("treasury after a year = %s, want 1", fee.Treasury)
	}
}

// ============================================================================
// Test: fee settlement
// ============================================================================

// The treasury leg is rationed 80/20 between the treasury and the author
// rewards pool.
func TestChargeFee_TreasuryLegSplitsWithAuthors(t *testing.T) {
	f := newFixture(t)
	who := uuid.New()
	f.balances.Deposit(who, assets.EQ, val(10))
	f.balances.Deposit(who, assets.BTC, val(100))
	f.balances.ApplyUnchecked(who, assets.EQD, balance.Debt(val(100)))
	f.engine.Restore([]rate.UpdateSnapshot{{Account: who, At: 0}})
	f.now = yearSecs

	if err := f.engine.ChargeFee(who); err != nil {
		t.Fatal(err)
	}

	// treasury leg of 1 EQ: 0.8 to treasury, 0.2 to authors
	wantTreasury := numeric.SaturatingFromRational(8, 10)
	if got := f.balances.Get(f.engine.TreasuryAccount(), assets.EQ); got != balance.Positive(wantTreasury) {
		t.Errorf("treasury EQ = %s, want %s", got, wantTreasury)
	}
	wantAuthors := numeric.SaturatingFromRational(2, 10)
	if got := f.balances.Get(f.engine.AuthorsAccount(), assets.EQ); got != balance.Positive(wantAuthors) {
		t.Errorf("authors EQ = %s, want %s", got, wantAuthors)
	}
	// the payer covers the whole fee of 4 EQ
	if got := f.balances.Get(who, assets.EQ); got != balance.Positive(val(6)) {
		t.Errorf("payer EQ = %s, want 6", got)
	}
}

// ============================================================================
// Test: reinit
// ============================================================================

func TestDoReinit_IdempotentWithoutElapsedTime(t *testing.T) {
	f := newFixture(t)
	who := uuid.New()
	f.balances.Deposit(who, assets.EQ, val(100))
	f.balances.Deposit(who, assets.EQD, val(1000))
	f.balances.ApplyUnchecked(who, assets.BTC, balance.Debt(val(1)))
	f.now = 1000

	if err := f.engine.DoReinit(who); err != nil {
		t.Fatal(err)
	}
	if f.engine.LastUpdate(who) != 1000 {
		t.Fatalf("last update = %d", f.engine.LastUpdate(who))
	}
	snapshot := f.balances.Snapshot()

	// no time passed, no balance or price change: the second pass charges
	// exactly nothing
	if err := f.engine.DoReinit(who); err != nil {
		t.Fatal(err)
	}
	after := f.balances.Snapshot()
	if len(after) != len(snapshot) {
		t.Fatal("balance set changed on idempotent reinit")
	}
	for k, v := range snapshot {
		if after[k] != v {
			t.Errorf("%s/%s changed: %s -> %s", k.Account, k.Asset, v, after[k])
		}
	}
}

func TestDoReinit_PropagatesChargeErrorAfterBootstrap(t *testing.T) {
	f := newFixture(t)
	who := uuid.New()
	f.balances.Deposit(who, assets.EQD, val(1000))
	f.balances.ApplyUnchecked(who, assets.BTC, balance.Debt(val(1)))

	// a cursor ahead of the clock makes the charge fail; the account is
	// already initialized, so the error must surface
	f.engine.Restore([]rate.UpdateSnapshot{{Account: who, At: 2000}})
	f.now = 1000

	if err := f.engine.DoReinit(who); !errors.Is(err, rate.ErrLastUpdateInFuture) {
		t.Errorf("DoReinit: %v", err)
	}
	if f.engine.LastUpdate(who) != 2000 {
		t.Error("failed charge must not move the cursor")
	}
}

func TestDoReinit_SubCriticalLiquidates(t *testing.T) {
	f := newFixture(t)
	who := uuid.New()
	f.balances.Deposit(who, assets.EQD, val(100))
	f.balances.ApplyUnchecked(who, assets.BTC, balance.Debt(val(5))) // 500 USD debt
	f.now = 1000

	if err := f.engine.DoReinit(who); err != nil {
		t.Fatal(err)
	}
	// the position moved into the pool: debt cleared, collateral seized
	if got := f.balances.Get(who, assets.BTC); got.IsNegative() {
		t.Errorf("debt not taken over: %s", got)
	}
	if f.engine.LastUpdate(who) != 1000 {
		t.Error("liquidated account should still be stamped")
	}
}

func TestDoReinit_BuyoutRestoresNegativeBasicBalance(t *testing.T) {
	f := newFixture(t)
	treasury := f.engine.TreasuryAccount()
	f.balances.ApplyUnchecked(treasury, assets.EQ, balance.Positive(val(1000)))

	who := uuid.New()
	f.balances.Deposit(who, assets.BTC, val(10)) // 1000 USD collateral
	f.balances.ApplyUnchecked(who, assets.EQD, balance.Debt(val(100)))
	f.engine.Restore([]rate.UpdateSnapshot{{Account: who, At: 0}})
	f.now = yearSecs

	if err := f.engine.DoReinit(who); err != nil {
		t.Fatal(err)
	}
	// fee of 4 EQ was paid without any EQ balance; buyout must have pulled
	// the account back to zero by selling BTC to the treasury
	if got := f.balances.Get(who, assets.EQ); !got.IsZero() {
		t.Errorf("EQ after buyout = %s, want 0", got)
	}
	wantBTC := numeric.SaturatingFromRational(996, 100)
	if got := f.balances.Get(who, assets.BTC); got != balance.Positive(wantBTC) {
		t.Errorf("BTC after buyout = %s, want %s", got, wantBTC)
	}
}

// ============================================================================
// Test: reinit gating
// ============================================================================

func TestNeedToReinit_FalseForHealthyFreshAccount(t *testing.T) {
	f := newFixture(t)
	who := uuid.New()
	f.balances.Deposit(who, assets.EQD, val(100))
	f.now = 1000
	f.engine.DoReinit(who)

	if f.engine.NeedToReinit(who) {
		t.Error("healthy debt-free account needs no reinit")
	}
}

func TestNeedToReinit_TrueWhenFeeExceedsSurplus(t *testing.T) {
	f := newFixture(t)
	who := uuid.New()
	f.balances.Deposit(who, assets.EQD, val(1000))
	f.balances.ApplyUnchecked(who, assets.BTC, balance.Debt(val(1)))
	f.now = 1000
	f.engine.DoReinit(who)

	f.now += yearSecs
	if !f.engine.NeedToReinit(who) {
		t.Error("a year of accrual clears the minimum surplus")
	}
}

func TestNeedToReinit_SkipsSystemAccounts(t *testing.T) {
	f := newFixture(t)
	if f.engine.NeedToReinit(f.engine.TreasuryAccount()) {
		t.Error("system accounts are never reinited")
	}
}

// ============================================================================
// Test: account removal
// ============================================================================

func TestDeleteAccount_DrainsAndForgets(t *testing.T) {
	f := newFixture(t)
	who := uuid.New()
	f.balances.Deposit(who, assets.BTC, val(2))
	f.balances.ApplyUnchecked(who, assets.EQD, balance.Debt(val(10)))
	f.agg.SetUserGroup(who, aggregates.GroupBorrowers, true, f.balances)
	f.now = 50
	f.engine.DoReinit(who)

	if err := f.engine.DeleteAccount(who); err != nil {
		t.Fatal(err)
	}
	if len(f.balances.AccountBalances(who)) != 0 {
		t.Error("balances not drained")
	}
	if f.agg.InGroup(who, aggregates.GroupBorrowers) {
		t.Error("group membership not cleared")
	}
	if f.engine.LastUpdate(who) != 0 {
		t.Error("fee cursor not cleared")
	}
}
