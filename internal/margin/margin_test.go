package margin_test

import (
	"testing"

	"EqCore/internal/assets"
	"EqCore/internal/balance"
	"EqCore/internal/margin"
	"EqCore/internal/numeric"
	"EqCore/internal/pricing"

	"github.com/google/uuid"
)

func val(n uint64) numeric.Value { return numeric.SaturatingFromInteger(n) }

type fixture struct {
	balances *balance.Store
	prices   *pricing.Store
	calc     *margin.Calculator
	now      int64
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		balances: balance.NewStore(),
		prices:   pricing.NewStore(0),
	}
	reg := assets.DefaultRegistry()
	f.prices.SetPrice(assets.BTC, numeric.PriceFromInteger(100))
	f.prices.SetPrice(assets.ETH, numeric.PriceFromInteger(10))
	f.prices.SetPrice(assets.DOT, numeric.PriceFromInteger(1))
	f.prices.SetPrice(assets.EQ, numeric.PriceFromInteger(1))
	f.calc = margin.NewCalculator(margin.DefaultConfig(), f.balances, f.prices, reg, func() int64 { return f.now })
	return f
}

// ============================================================================
// Test: margin levels and thresholds
// ============================================================================

func TestMargin_ZeroDebtIsGood(t *testing.T) {
	f := newFixture(t)
	who := uuid.New()
	f.balances.Deposit(who, assets.BTC, val(1))

	state, err := f.calc.CheckMargin(who)
	if err != nil {
		t.Fatal(err)
	}
	if state != margin.MarginStateGood {
		t.Errorf("state = %s, want Good", state)
	}
}

func TestMargin_DebtAboveCollateralIsSubCritical(t *testing.T) {
	f := newFixture(t)
	who := uuid.New()
	f.balances.Deposit(who, assets.DOT, val(100)) // 100 USD, 100% discount asset? DOT discount is 90
	f.balances.ApplyUnchecked(who, assets.EQD, balance.Debt(val(500)))

	state, err := f.calc.CheckMargin(who)
	if err != nil {
		t.Fatal(err)
	}
	if state != margin.MarginStateSubCritical {
		t.Errorf("state = %s, want SubCritical", state)
	}
}

func TestMargin_ThresholdBands(t *testing.T) {
	// EQD collateral is undiscounted, so margin = (coll-debt)/coll exactly.
	cases := []struct {
		name string
		coll uint64
		debt uint64
		want margin.MarginState
	}{
		{"comfortable", 1000, 500, margin.MarginStateGood},          // 50%
		{"sub good", 1000, 850, margin.MarginStateSubGood},          // 15%
		{"maintenance", 1000, 930, margin.MarginStateMaintenanceStart}, // 7%
		{"critical", 1000, 970, margin.MarginStateSubCritical},      // 3%
	}
	for _, tc := range cases {
		f := newFixture(t)
		who := uuid.New()
		f.balances.Deposit(who, assets.EQD, val(tc.coll))
		f.balances.ApplyUnchecked(who, assets.BTC, balance.Debt(numeric.SaturatingFromRational(int64(tc.debt), 100)))

		state, err := f.calc.CheckMargin(who)
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		if state != tc.want {
			t.Errorf("%s: state = %s, want %s", tc.name, state, tc.want)
		}
	}
}

func TestMargin_CollateralDiscountApplies(t *testing.T) {
	f := newFixture(t)
	who := uuid.New()
	// 10 DOT at price 1 with 90% discount -> 9 USD collateral; 8.55 USD debt
	// leaves margin 0.45/9 = 5%, just at the critical edge (maintenance band).
	f.balances.Deposit(who, assets.DOT, val(10))
	f.balances.ApplyUnchecked(who, assets.EQD, balance.Debt(numeric.SaturatingFromRational(855, 100)))

	state, err := f.calc.CheckMargin(who)
	if err != nil {
		t.Fatal(err)
	}
	if state != margin.MarginStateMaintenanceStart {
		t.Errorf("state = %s, want MaintenanceStart", state)
	}
}

// ============================================================================
// Test: maintenance timer
// ============================================================================

func TestMargin_MaintenanceTimerFlow(t *testing.T) {
	f := newFixture(t)
	who := uuid.New()
	f.balances.Deposit(who, assets.EQD, val(1000))
	f.balances.ApplyUnchecked(who, assets.BTC, balance.Debt(numeric.SaturatingFromRational(93, 10))) // 930 USD debt

	f.now = 1000
	if state, _ := f.calc.CheckMargin(who); state != margin.MarginStateMaintenanceStart {
		t.Fatalf("first check: %s", state)
	}
	f.now = 2000
	if state, _ := f.calc.CheckMargin(who); state != margin.MarginStateMaintenanceIsGoing {
		t.Fatalf("within grace: %s", state)
	}
	f.now = 1000 + 86_400
	if state, _ := f.calc.CheckMargin(who); state != margin.MarginStateMaintenanceTimeOver {
		t.Fatalf("after grace: %s", state)
	}
}

func TestMargin_MaintenanceRecoveryClearsTimer(t *testing.T) {
	f := newFixture(t)
	who := uuid.New()
	f.balances.Deposit(who, assets.EQD, val(1000))
	f.balances.ApplyUnchecked(who, assets.BTC, balance.Debt(numeric.SaturatingFromRational(93, 10)))

	f.now = 1000
	f.calc.CheckMargin(who) // starts the timer

	// top up collateral so margin recovers above maintenance
	f.balances.Deposit(who, assets.EQD, val(500))
	if state, _ := f.calc.CheckMargin(who); state != margin.MarginStateMaintenanceIsDone {
		t.Fatalf("recovered: %s", state)
	}
	if state, _ := f.calc.CheckMargin(who); state != margin.MarginStateGood {
		t.Fatalf("after clear: %s", state)
	}
}

// ============================================================================
// Test: what-if checks and margin call
// ============================================================================

func TestMargin_CheckWithChange_ReportsImprovement(t *testing.T) {
	f := newFixture(t)
	who := uuid.New()
	f.balances.Deposit(who, assets.EQD, val(1000))
	f.balances.ApplyUnchecked(who, assets.BTC, balance.Debt(numeric.SaturatingFromRational(85, 10))) // SubGood

	// depositing more EQD improves margin
	state, improved, err := f.calc.CheckMarginWithChange(who, []margin.ProposedChange{
		{Asset: assets.EQD, Change: balance.Positive(val(2000))},
	})
	if err != nil {
		t.Fatal(err)
	}
	if state != margin.MarginStateGood || !improved {
		t.Errorf("state=%s improved=%v", state, improved)
	}

	// withdrawing collateral worsens it
	state, improved, err = f.calc.CheckMarginWithChange(who, []margin.ProposedChange{
		{Asset: assets.EQD, Change: balance.Debt(val(120))},
	})
	if err != nil {
		t.Fatal(err)
	}
	if improved {
		t.Error("withdrawal should not count as improvement")
	}
	if state == margin.MarginStateGood {
		t.Errorf("state=%s, want worse than Good", state)
	}
}

type recordingReceiver struct {
	taken []uuid.UUID
}

func (r *recordingReceiver) ReceivePosition(who uuid.UUID, _ bool) error {
	r.taken = append(r.taken, who)
	return nil
}

func TestMargin_TryMargincall_LiquidatesSubCritical(t *testing.T) {
	f := newFixture(t)
	who := uuid.New()
	f.balances.Deposit(who, assets.EQD, val(100))
	f.balances.ApplyUnchecked(who, assets.BTC, balance.Debt(val(5))) // 500 USD debt

	rec := &recordingReceiver{}
	state, err := f.calc.TryMargincall(who, rec)
	if err != nil {
		t.Fatal(err)
	}
	if state != margin.MarginStateSubCritical {
		t.Errorf("state = %s", state)
	}
	if len(rec.taken) != 1 || rec.taken[0] != who {
		t.Error("position should have been taken over")
	}
}

func TestMargin_TryMargincall_LeavesGoodAlone(t *testing.T) {
	f := newFixture(t)
	who := uuid.New()
	f.balances.Deposit(who, assets.EQD, val(100))

	rec := &recordingReceiver{}
	if _, err := f.calc.TryMargincall(who, rec); err != nil {
		t.Fatal(err)
	}
	if len(rec.taken) != 0 {
		t.Error("good account must not be liquidated")
	}
}

// ============================================================================
// Test: open-order exposure
// ============================================================================

type fixedWeights struct {
	weights []margin.AssetWeight
}

func (fw *fixedWeights) AssetWeights(uuid.UUID) []margin.AssetWeight {
	return fw.weights
}

func TestMargin_OrderWeightsWorsenMargin(t *testing.T) {
	f := newFixture(t)
	who := uuid.New()
	f.balances.Deposit(who, assets.EQD, val(1000))
	f.balances.ApplyUnchecked(who, assets.BTC, balance.Debt(val(4))) // 400 USD debt, 60% margin

	base, err := f.calc.AccountMargin(who, nil)
	if err != nil {
		t.Fatal(err)
	}

	// a large open buy commits 900 USD of quote against discounted BTC
	f.calc.SetOrderWeightSource(&fixedWeights{weights: []margin.AssetWeight{
		{
			Asset: assets.BTC,
			Buy:   margin.SideWeight{Amount: val(9), AmountByPrice: val(900)},
		},
	}})

	worst, err := f.calc.AccountMargin(who, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !worst.LT(base) {
		t.Errorf("worst-case margin %s should be below base %s", worst, base)
	}
}
