package bailsman_test

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

	"github.com/google/uuid"
)

func val(n uint64) numeric.Value { return numeric.SaturatingFromInteger(n) }

type fixture struct {
	balances *balance.Store
	agg      *aggregates.Store
	prices   *pricing.Store
	engine   *bailsman.Engine
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
	f.prices.SetPrice(assets.BTC, numeric.PriceFromInteger(1))
	f.prices.SetPrice(assets.ETH, numeric.PriceFromInteger(1))
	f.prices.SetPrice(assets.DOT, numeric.PriceFromInteger(1))
	f.prices.SetPrice(assets.EQ, numeric.PriceFromInteger(1))

	calc := margin.NewCalculator(margin.DefaultConfig(), f.balances, f.prices, reg, func() int64 { return 0 })
	cfg := bailsman.DefaultConfig()
	cfg.MinCollateralUSD = val(10)
	f.engine = bailsman.NewEngine(cfg, f.balances, f.agg, f.prices, reg, calc)
	return f
}

// ============================================================================
// Test: registration lifecycle
// ============================================================================

func TestRegister_HappyPath(t *testing.T) {
	f := newFixture(t)
	who := uuid.New()
	f.balances.Deposit(who, assets.EQD, val(50))

	if err := f.engine.RegisterBailsman(who); err != nil {
		t.Fatal(err)
	}
	if !f.engine.IsBailsman(who) || f.engine.BailsmenCount() != 1 {
		t.Error("registration not recorded")
	}
	if !f.agg.InGroup(who, aggregates.GroupBailsmen) {
		t.Error("group flag missing")
	}

	if err := f.engine.RegisterBailsman(who); !errors.Is(err, bailsman.ErrAlreadyBailsman) {
		t.Errorf("second register: %v", err)
	}
}

func TestRegister_RejectsDebtAndThinCollateral(t *testing.T) {
	f := newFixture(t)

	poor := uuid.New()
	f.balances.Deposit(poor, assets.EQD, val(5))
	if err := f.engine.RegisterBailsman(poor); !errors.Is(err, bailsman.ErrCollateralMustBeMoreThanMin) {
		t.Errorf("thin collateral: %v", err)
	}

	indebted := uuid.New()
	f.balances.Deposit(indebted, assets.EQD, val(50))
	f.balances.ApplyUnchecked(indebted, assets.BTC, balance.Debt(val(1)))
	if err := f.engine.RegisterBailsman(indebted); !errors.Is(err, bailsman.ErrBailsmanHasDebt) {
		t.Errorf("with debt: %v", err)
	}
}

func TestUnregister_Lifecycle(t *testing.T) {
	f := newFixture(t)
	who := uuid.New()
	f.balances.Deposit(who, assets.EQD, val(50))
	f.engine.RegisterBailsman(who)

	if err := f.engine.UnregisterBailsman(who); err != nil {
		t.Fatal(err)
	}
	if f.engine.IsBailsman(who) || f.engine.BailsmenCount() != 0 {
		t.Error("unregister not recorded")
	}

	if err := f.engine.UnregisterBailsman(who); !errors.Is(err, bailsman.ErrNotBailsman) {
		t.Errorf("double unregister: %v", err)
	}
}

func TestUnregister_RejectsDebt(t *testing.T) {
	f := newFixture(t)
	who := uuid.New()
	f.balances.Deposit(who, assets.EQD, val(50))
	f.engine.RegisterBailsman(who)
	f.balances.ApplyUnchecked(who, assets.BTC, balance.Debt(val(1)))

	if err := f.engine.UnregisterBailsman(who); !errors.Is(err, bailsman.ErrBailsmanHasDebt) {
		t.Errorf("unregister with debt: %v", err)
	}
}

// ============================================================================
// Test: distribution application
// ============================================================================

// One entry {BTC:+200, ETH:+300, EQD:-100} with total 1000 against a
// bailsman holding EQD +50 yields portion 0.05 and pending transfers
// {BTC:+10, ETH:+15, EQD:-5}, exact.
func TestPendingChanges_PortionScaling(t *testing.T) {
	f := newFixture(t)
	who := uuid.New()
	f.balances.Deposit(who, assets.EQD, val(50))
	f.engine.RegisterBailsman(who)

	f.engine.Restore(bailsman.State{
		Count:     1,
		CurrentID: 1,
		Queue: []bailsman.Distribution{{
			ID:                1,
			TotalUSD:          val(1000),
			RemainingBailsmen: 1,
			Balances: []balance.AssetBalance{
				{Asset: assets.BTC, Balance: balance.Positive(val(200))},
				{Asset: assets.ETH, Balance: balance.Positive(val(300))},
				{Asset: assets.EQD, Balance: balance.Debt(val(100))},
			},
			Prices: []pricing.AssetPrice{
				{Asset: assets.BTC, Price: numeric.PriceFromInteger(1)},
				{Asset: assets.ETH, Price: numeric.PriceFromInteger(1)},
			},
		}},
		Cursors: []bailsman.CursorSnapshot{{Account: who, LastID: 0}},
	})

	changes, err := f.engine.PendingChanges(who)
	if err != nil {
		t.Fatal(err)
	}
	want := map[assets.Asset]balance.SignedBalance{
		assets.BTC: balance.Positive(val(10)),
		assets.ETH: balance.Positive(val(15)),
		assets.EQD: balance.Debt(val(5)),
	}
	if len(changes) != len(want) {
		t.Fatalf("got %d changes", len(changes))
	}
	for _, ch := range changes {
		if ch.Change != want[ch.Asset] {
			t.Errorf("%s: got %s, want %s", ch.Asset, ch.Change, want[ch.Asset])
		}
	}
}

// The last bailsman to consume the final entry sweeps the residue, so the
// distribution account returns to exactly zero for every asset.
func TestRedistribute_ResidualSweepZerosHoldingAccount(t *testing.T) {
	f := newFixture(t)
	who := uuid.New()
	f.balances.Deposit(who, assets.EQD, val(50))
	f.engine.RegisterBailsman(who)

	dist := f.engine.DistributionAccount()
	f.balances.ApplyUnchecked(dist, assets.BTC, balance.Positive(val(200)))
	f.balances.ApplyUnchecked(dist, assets.ETH, balance.Positive(val(300)))
	f.balances.ApplyUnchecked(dist, assets.EQD, balance.Debt(val(100)))

	f.engine.Restore(bailsman.State{
		Count:     1,
		CurrentID: 1,
		Queue: []bailsman.Distribution{{
			ID:                1,
			TotalUSD:          val(1000),
			RemainingBailsmen: 1,
			Balances: []balance.AssetBalance{
				{Asset: assets.BTC, Balance: balance.Positive(val(200))},
				{Asset: assets.ETH, Balance: balance.Positive(val(300))},
				{Asset: assets.EQD, Balance: balance.Debt(val(100))},
			},
			Prices: []pricing.AssetPrice{
				{Asset: assets.BTC, Price: numeric.PriceFromInteger(1)},
				{Asset: assets.ETH, Price: numeric.PriceFromInteger(1)},
			},
		}},
		Cursors: []bailsman.CursorSnapshot{{Account: who, LastID: 0}},
	})

	if err := f.engine.Redistribute(who); err != nil {
		t.Fatal(err)
	}

	for _, a := range []assets.Asset{assets.BTC, assets.ETH, assets.EQD} {
		if got := f.balances.Get(dist, a); !got.IsZero() {
			t.Errorf("distribution account %s = %s, want zero", a, got)
		}
	}
	if got := f.balances.Get(who, assets.BTC); got != balance.Positive(val(200)) {
		t.Errorf("BTC = %s", got)
	}
	if got := f.balances.Get(who, assets.ETH); got != balance.Positive(val(300)) {
		t.Errorf("ETH = %s", got)
	}
	if got := f.balances.Get(who, assets.EQD); got != balance.Debt(val(50)) {
		t.Errorf("EQD = %s", got)
	}

	f.engine.OnFinalize()
	if f.engine.PendingDistributions(who) != 0 {
		t.Error("queue should be empty after finalize")
	}
}

func TestOnInitialize_SnapshotsTempIntoQueue(t *testing.T) {
	f := newFixture(t)
	f.prices.SetPrice(assets.BTC, numeric.PriceFromInteger(100))

	who := uuid.New()
	f.balances.Deposit(who, assets.EQD, val(1000))
	f.engine.RegisterBailsman(who)

	temp := f.engine.TempAccount()
	f.balances.ApplyUnchecked(temp, assets.BTC, balance.Positive(val(2)))

	if err := f.engine.OnInitialize(); err != nil {
		t.Fatal(err)
	}

	if got := f.balances.Get(temp, assets.BTC); !got.IsZero() {
		t.Errorf("temp not drained: %s", got)
	}
	if f.engine.PendingDistributions(who) != 1 {
		t.Fatal("expected one pending distribution")
	}

	// portion = 1000/1000 = 1; the whole snapshot lands on the lone bailsman
	if err := f.engine.Redistribute(who); err != nil {
		t.Fatal(err)
	}
	if got := f.balances.Get(who, assets.BTC); got != balance.Positive(val(2)) {
		t.Errorf("BTC = %s, want 2", got)
	}
	if got := f.balances.Get(f.engine.DistributionAccount(), assets.BTC); !got.IsZero() {
		t.Errorf("distribution account BTC = %s", got)
	}
}

func TestOnInitialize_BelowThresholdIsNoop(t *testing.T) {
	f := newFixture(t)
	who := uuid.New()
	f.balances.Deposit(who, assets.EQD, val(1000))
	f.engine.RegisterBailsman(who)

	// default MinTempBalanceUSD is 1 USD; half of it stays put
	f.balances.ApplyUnchecked(f.engine.TempAccount(), assets.EQD,
		balance.Positive(numeric.SaturatingFromRational(1, 2)))

	if err := f.engine.OnInitialize(); err != nil {
		t.Fatal(err)
	}
	if f.engine.PendingDistributions(who) != 0 {
		t.Error("no distribution should be created below threshold")
	}
}

func TestRegister_AfterDistribution_OwesNothing(t *testing.T) {
	f := newFixture(t)
	f.prices.SetPrice(assets.BTC, numeric.PriceFromInteger(100))

	a := uuid.New()
	f.balances.Deposit(a, assets.EQD, val(1000))
	f.engine.RegisterBailsman(a)
	f.balances.ApplyUnchecked(f.engine.TempAccount(), assets.BTC, balance.Positive(val(2)))
	f.engine.OnInitialize()

	b := uuid.New()
	f.balances.Deposit(b, assets.EQD, val(500))
	if err := f.engine.RegisterBailsman(b); err != nil {
		t.Fatal(err)
	}
	if f.engine.PendingDistributions(b) != 0 {
		t.Error("new bailsman must not owe past distributions")
	}
	if err := f.engine.Redistribute(b); err != nil {
		t.Fatal(err)
	}
	if got := f.balances.Get(b, assets.BTC); !got.IsZero() {
		t.Errorf("b received retroactive share: %s", got)
	}
}

// ============================================================================
// Test: balance-change gate
// ============================================================================

func TestGate_BlocksBailsmanWhileTempUndistributed(t *testing.T) {
	f := newFixture(t)
	f.balances.RegisterChecker(f.engine)

	who := uuid.New()
	f.balances.Deposit(who, assets.EQD, val(100))
	f.engine.RegisterBailsman(who)

	f.balances.ApplyUnchecked(f.engine.TempAccount(), assets.EQD, balance.Positive(val(10)))

	err := f.balances.Withdraw(who, assets.EQD, val(1))
	if !errors.Is(err, bailsman.ErrTempBalancesNotDistributed) {
		t.Errorf("withdraw: %v", err)
	}

	// non-bailsmen are unaffected by the pool state
	other := uuid.New()
	if err := f.balances.Deposit(other, assets.EQD, val(5)); err != nil {
		t.Errorf("outsider deposit: %v", err)
	}
}

func TestGate_RejectsMarginBreakingWithdrawal(t *testing.T) {
	f := newFixture(t)
	f.balances.RegisterChecker(f.engine)

	who := uuid.New()
	f.balances.Deposit(who, assets.EQD, val(100))

	if err := f.balances.Withdraw(who, assets.EQD, val(120)); !errors.Is(err, margin.ErrWrongMargin) {
		t.Errorf("overdraw: %v", err)
	}
	if got := f.balances.Get(who, assets.EQD); got != balance.Positive(val(100)) {
		t.Errorf("balance changed: %s", got)
	}
}

// ============================================================================
// Test: liquidation intake
// ============================================================================

func TestReceivePosition_SeizesUpToPenalizedDebt(t *testing.T) {
	f := newFixture(t)
	f.prices.SetPrice(assets.BTC, numeric.PriceFromInteger(100))

	who := uuid.New()
	f.balances.ApplyUnchecked(who, assets.BTC, balance.Positive(val(2)))
	f.balances.ApplyUnchecked(who, assets.EQD, balance.Debt(val(100)))

	if err := f.engine.ReceivePosition(who, false); err != nil {
		t.Fatal(err)
	}

	// debt 100 USD * 1.05 penalty = 105 USD -> 1.05 BTC seized at price 100
	if got := f.balances.Get(who, assets.EQD); !got.IsZero() {
		t.Errorf("debt not cleared: %s", got)
	}
	wantLeft := balance.Positive(numeric.SaturatingFromRational(95, 100))
	if got := f.balances.Get(who, assets.BTC); got != wantLeft {
		t.Errorf("BTC left = %s, want %s", got, wantLeft)
	}
	temp := f.engine.TempAccount()
	if got := f.balances.Get(temp, assets.BTC); got != balance.Positive(numeric.SaturatingFromRational(105, 100)) {
		t.Errorf("temp BTC = %s", got)
	}
}

func TestReceivePosition_DeletingTakesEverything(t *testing.T) {
	f := newFixture(t)
	who := uuid.New()
	f.balances.ApplyUnchecked(who, assets.BTC, balance.Positive(val(2)))
	f.balances.ApplyUnchecked(who, assets.EQD, balance.Debt(val(1)))

	if err := f.engine.ReceivePosition(who, true); err != nil {
		t.Fatal(err)
	}
	if got := f.balances.Get(who, assets.BTC); !got.IsZero() {
		t.Errorf("BTC left behind: %s", got)
	}
	if got := f.balances.Get(who, assets.EQD); !got.IsZero() {
		t.Errorf("EQD debt left behind: %s", got)
	}
}
