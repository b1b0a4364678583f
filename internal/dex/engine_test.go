package dex_test

import (
	"errors"
	"fmt"
	"testing"

	"EqCore/internal/aggregates"
	"EqCore/internal/assets"
	"EqCore/internal/balance"
	"EqCore/internal/dex"
	"EqCore/internal/margin"
	"EqCore/internal/numeric"
	"EqCore/internal/pricing"

	"github.com/google/uuid"
)

func val(n uint64) numeric.Value { return numeric.SaturatingFromInteger(n) }

func frac(num, den int64) numeric.Value { return numeric.SaturatingFromRational(num, den) }

type fixture struct {
	balances *balance.Store
	agg      *aggregates.Store
	prices   *pricing.Store
	engine   *dex.Engine
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
	f.prices.SetPrice(assets.BTC, numeric.PriceFromInteger(10))
	f.prices.SetPrice(assets.ETH, numeric.PriceFromInteger(10))

	clock := func() int64 { return f.now }
	calc := margin.NewCalculator(margin.DefaultConfig(), f.balances, f.prices, reg, clock)
	f.engine = dex.NewEngine(dex.DefaultConfig(), f.balances, f.prices, reg, calc, clock)
	calc.SetOrderWeightSource(f.engine)
	return f
}

func price(n int64) numeric.Price { return numeric.PriceFromInteger(n) }

func (f *fixture) fundedSeller(t *testing.T, btc uint64) uuid.UUID {
	t.Helper()
	who := uuid.New()
	if err := f.balances.Deposit(who, assets.BTC, val(btc)); err != nil {
		t.Fatal(err)
	}
	return who
}

// ============================================================================
// Test: placement validation
// ============================================================================

func TestCreateOrder_LotValidation(t *testing.T) {
	f := newFixture(t)
	who := f.fundedSeller(t, 1)

	err := f.engine.CreateOrder(who, assets.BTC, dex.KindLimit, dex.SideSell, price(10), numeric.Zero(), 0)
	if !errors.Is(err, dex.ErrOrderAmountShouldBePositive) {
		t.Errorf("zero amount: %v", err)
	}

	// lot is 0.1, so 0.15 does not divide evenly
	err = f.engine.CreateOrder(who, assets.BTC, dex.KindLimit, dex.SideSell, price(10), frac(15, 100), 0)
	if !errors.Is(err, dex.ErrOrderAmountShouldSatisfyLot) {
		t.Errorf("fractional lot: %v", err)
	}
}

func TestCreateOrder_DexDisabledForAsset(t *testing.T) {
	f := newFixture(t)
	who := uuid.New()
	f.balances.Deposit(who, assets.EQD, val(100))

	err := f.engine.CreateOrder(who, assets.EQD, dex.KindLimit, dex.SideSell, price(1), val(1), 0)
	if !errors.Is(err, dex.ErrDexDisabledForAsset) {
		t.Errorf("CreateOrder: %v", err)
	}
}

func TestCreateOrder_PriceStepValidation(t *testing.T) {
	f := newFixture(t)
	who := f.fundedSeller(t, 1)

	// step is 0.01; 10.001 misses the grid
	bad := numeric.Price(numeric.PriceFromInteger(10) + numeric.PriceFromRational(1, 1000))
	err := f.engine.CreateOrder(who, assets.BTC, dex.KindLimit, dex.SideSell, bad, val(1), 0)
	if !errors.Is(err, dex.ErrOrderPriceShouldSatisfyStep) {
		t.Errorf("CreateOrder: %v", err)
	}
}

func TestMarketOrder_EmptyBookHasNoBestPrice(t *testing.T) {
	f := newFixture(t)
	who := uuid.New()
	f.balances.Deposit(who, assets.EQD, val(1000))

	err := f.engine.CreateOrder(who, assets.BTC, dex.KindMarket, dex.SideBuy, 0, val(1), 0)
	if !errors.Is(err, dex.ErrNoBestPriceForMarketOrder) {
		t.Errorf("CreateOrder: %v", err)
	}
}

// ============================================================================
// Test: chunk keys and corridor
// ============================================================================

func TestChunkKey_MonotonicInPrice(t *testing.T) {
	f := newFixture(t)
	step := numeric.PriceFromRational(1, 100)

	if _, err := f.engine.ChunkKeyFor(0, step); !errors.Is(err, dex.ErrOrderPriceShouldBePositive) {
		t.Errorf("zero price: %v", err)
	}
	if _, err := f.engine.ChunkKeyFor(price(10), 0); !errors.Is(err, dex.ErrPriceStepShouldBePositive) {
		t.Errorf("zero step: %v", err)
	}

	prev := dex.ChunkKey(-1)
	for p := step; p <= price(20); p += step {
		key, err := f.engine.ChunkKeyFor(p, step)
		if err != nil {
			t.Fatalf("ChunkKeyFor(%s): %v", p, err)
		}
		if key < prev {
			t.Fatalf("chunk key decreased: price %s key %d after %d", p, key, prev)
		}
		prev = key
	}
}

func TestCorridor_RejectsFarFromMid(t *testing.T) {
	f := newFixture(t)
	who := f.fundedSeller(t, 1)

	// oracle 10, chunk width 0.05, corridor 10 chunks: anything past 10.50
	// is out
	err := f.engine.CreateOrder(who, assets.BTC, dex.KindLimit, dex.SideSell, price(12), val(1), 0)
	if !errors.Is(err, dex.ErrOrderPriceShouldBeInCorridor) {
		t.Errorf("CreateOrder: %v", err)
	}

	if err := f.engine.CreateOrder(who, assets.BTC, dex.KindLimit, dex.SideSell, price(10), val(1), 0); err != nil {
		t.Errorf("in-corridor order rejected: %v", err)
	}
}

// ============================================================================
// Test: matching
// ============================================================================

// Two sells at 10 placed before a sell at 11 must both fill before the book
// ever touches the higher price, regardless of the fill crossing a chunk
// boundary.
func TestMatch_PriceTimePriority(t *testing.T) {
	f := newFixture(t)
	f.engine.SetChunkCorridor(assets.BTC, 100)

	maker1 := f.fundedSeller(t, 1)
	maker2 := f.fundedSeller(t, 1)
	maker3 := f.fundedSeller(t, 1)

	f.now = 100
	if err := f.engine.CreateOrder(maker1, assets.BTC, dex.KindLimit, dex.SideSell, price(10), val(1), 0); err != nil {
		t.Fatal(err)
	}
	f.now = 200
	if err := f.engine.CreateOrder(maker2, assets.BTC, dex.KindLimit, dex.SideSell, price(10), val(1), 0); err != nil {
		t.Fatal(err)
	}
	f.now = 300
	if err := f.engine.CreateOrder(maker3, assets.BTC, dex.KindLimit, dex.SideSell, price(11), val(1), 0); err != nil {
		t.Fatal(err)
	}

	taker := uuid.New()
	f.balances.Deposit(taker, assets.EQD, val(1000))
	if err := f.engine.CreateOrder(taker, assets.BTC, dex.KindMarket, dex.SideBuy, 0, val(2), 0); err != nil {
		t.Fatal(err)
	}

	if _, found := f.engine.FindOrder(assets.BTC, 1, price(10)); found {
		t.Error("first maker order should be consumed")
	}
	if _, found := f.engine.FindOrder(assets.BTC, 2, price(10)); found {
		t.Error("second maker order should be consumed")
	}
	if o, found := f.engine.FindOrder(assets.BTC, 3, price(11)); !found || o.Amount.Cmp(val(1)) != 0 {
		t.Error("order at 11 must be untouched")
	}
	if _, ask, _, hasAsk := f.engine.BestPrice(assets.BTC); !hasAsk || ask != price(11) {
		t.Errorf("best ask = %s", ask)
	}

	if got := f.balances.Get(taker, assets.BTC); got != balance.Positive(val(2)) {
		t.Errorf("taker BTC = %s", got)
	}
	// 20 notional paid plus 0.01 taker fee per 10-notional fill
	wantEQD := frac(97998, 100)
	if got := f.balances.Get(taker, assets.EQD); got != balance.Positive(wantEQD) {
		t.Errorf("taker EQD = %s, want %s", got, wantEQD)
	}
	// each maker: +10 notional less the 0.005 maker fee
	wantMaker := frac(9995, 1000)
	if got := f.balances.Get(maker1, assets.EQD); got != balance.Positive(wantMaker) {
		t.Errorf("maker1 EQD = %s, want %s", got, wantMaker)
	}
	treasury := f.balances.SystemAccount("treasury")
	if got := f.balances.Get(treasury, assets.EQD); got != balance.Positive(frac(3, 100)) {
		t.Errorf("treasury EQD = %s", got)
	}
}

// Bid-side twin: of two buys resting at the same price the earlier one fills
// first, and a lower bid is never touched while a better one remains.
func TestMatch_BidSidePriceTimePriority(t *testing.T) {
	f := newFixture(t)
	f.engine.SetChunkCorridor(assets.BTC, 100)

	maker1 := uuid.New()
	maker2 := uuid.New()
	maker3 := uuid.New()
	for _, who := range []uuid.UUID{maker1, maker2, maker3} {
		f.balances.Deposit(who, assets.EQD, val(1000))
	}

	f.now = 100
	if err := f.engine.CreateOrder(maker1, assets.BTC, dex.KindLimit, dex.SideBuy, price(10), val(1), 0); err != nil {
		t.Fatal(err)
	}
	f.now = 200
	if err := f.engine.CreateOrder(maker2, assets.BTC, dex.KindLimit, dex.SideBuy, price(10), val(1), 0); err != nil {
		t.Fatal(err)
	}
	f.now = 300
	if err := f.engine.CreateOrder(maker3, assets.BTC, dex.KindLimit, dex.SideBuy, price(9), val(1), 0); err != nil {
		t.Fatal(err)
	}

	taker := f.fundedSeller(t, 1)
	if err := f.engine.CreateOrder(taker, assets.BTC, dex.KindMarket, dex.SideSell, 0, val(1), 0); err != nil {
		t.Fatal(err)
	}

	if _, found := f.engine.FindOrder(assets.BTC, 1, price(10)); found {
		t.Error("earlier bid at 10 should be consumed")
	}
	if o, found := f.engine.FindOrder(assets.BTC, 2, price(10)); !found || o.Amount.Cmp(val(1)) != 0 {
		t.Error("later bid at 10 must be untouched")
	}
	if o, found := f.engine.FindOrder(assets.BTC, 3, price(9)); !found || o.Amount.Cmp(val(1)) != 0 {
		t.Error("bid at 9 must be untouched")
	}
	if bid, _, hasBid, _ := f.engine.BestPrice(assets.BTC); !hasBid || bid != price(10) {
		t.Errorf("best bid = %s", bid)
	}

	if got := f.balances.Get(taker, assets.BTC); !got.IsZero() {
		t.Errorf("taker BTC = %s", got)
	}
	// 10 notional received less the 0.01 taker fee
	if got := f.balances.Get(taker, assets.EQD); got != balance.Positive(frac(999, 100)) {
		t.Errorf("taker EQD = %s", got)
	}
	if got := f.balances.Get(maker1, assets.BTC); got != balance.Positive(val(1)) {
		t.Errorf("maker1 BTC = %s", got)
	}
	if got := f.balances.Get(maker1, assets.EQD); got != balance.Positive(frac(989995, 1000)) {
		t.Errorf("maker1 EQD = %s", got)
	}
	if got := f.balances.Get(maker2, assets.EQD); got != balance.Positive(val(1000)) {
		t.Errorf("maker2 EQD = %s", got)
	}
}

func TestMatch_LimitRemainderRests(t *testing.T) {
	f := newFixture(t)
	maker := f.fundedSeller(t, 1)
	if err := f.engine.CreateOrder(maker, assets.BTC, dex.KindLimit, dex.SideSell, price(10), val(1), 0); err != nil {
		t.Fatal(err)
	}

	taker := uuid.New()
	f.balances.Deposit(taker, assets.EQD, val(1000))
	if err := f.engine.CreateOrder(taker, assets.BTC, dex.KindLimit, dex.SideBuy, price(10), val(2), 0); err != nil {
		t.Fatal(err)
	}

	rested, found := f.engine.FindOrder(assets.BTC, 2, price(10))
	if !found {
		t.Fatal("limit remainder did not rest")
	}
	if rested.Amount.Cmp(val(1)) != 0 || rested.Side != dex.SideBuy {
		t.Errorf("rested order: %+v", rested)
	}
	if bid, _, hasBid, _ := f.engine.BestPrice(assets.BTC); !hasBid || bid != price(10) {
		t.Errorf("best bid = %s", bid)
	}

	weights := f.engine.AssetWeights(taker)
	if len(weights) != 1 || weights[0].Buy.Amount.Cmp(val(1)) != 0 {
		t.Errorf("taker weights: %+v", weights)
	}
	if weights[0].Buy.AmountByPrice.Cmp(val(10)) != 0 {
		t.Errorf("taker notional: %s", weights[0].Buy.AmountByPrice)
	}
}

// debtBlocker forbids any negative change for one account, standing in for
// the production balance gates.
type debtBlocker struct {
	who uuid.UUID
}

func (d *debtBlocker) CanChangeBalance(who uuid.UUID, _ assets.Asset, change balance.SignedBalance) error {
	if who == d.who && change.IsNegative() {
		return fmt.Errorf("blocked")
	}
	return nil
}

func TestMatch_MakerDefaultRemovesOrderAndRefundsTaker(t *testing.T) {
	f := newFixture(t)
	maker := f.fundedSeller(t, 1)
	if err := f.engine.CreateOrder(maker, assets.BTC, dex.KindLimit, dex.SideSell, price(10), val(1), 0); err != nil {
		t.Fatal(err)
	}
	// the maker cannot pay its fee once the gate is in place
	f.balances.RegisterChecker(&debtBlocker{who: maker})

	taker := uuid.New()
	f.balances.Deposit(taker, assets.EQD, val(1000))
	if err := f.engine.CreateOrder(taker, assets.BTC, dex.KindMarket, dex.SideBuy, 0, val(1), 0); err != nil {
		t.Fatal(err)
	}

	if _, found := f.engine.FindOrder(assets.BTC, 1, price(10)); found {
		t.Error("defaulted maker order must leave the book")
	}
	if got := f.balances.Get(taker, assets.EQD); got != balance.Positive(val(1000)) {
		t.Errorf("taker EQD = %s, refund missing", got)
	}
	if got := f.balances.Get(taker, assets.BTC); !got.IsZero() {
		t.Errorf("taker BTC = %s, nothing should have matched", got)
	}
	treasury := f.balances.SystemAccount("treasury")
	if got := f.balances.Get(treasury, assets.EQD); !got.IsZero() {
		t.Errorf("treasury collected fees on a failed match: %s", got)
	}
}

// ============================================================================
// Test: deletion and best-price repair
// ============================================================================

func TestDeleteOrder_RescansBestAskAcrossChunks(t *testing.T) {
	f := newFixture(t)
	maker := f.fundedSeller(t, 2)

	if err := f.engine.CreateOrder(maker, assets.BTC, dex.KindLimit, dex.SideSell, price(10), val(1), 0); err != nil {
		t.Fatal(err)
	}
	next := numeric.Price(price(10) + numeric.PriceFromRational(5, 100))
	if err := f.engine.CreateOrder(maker, assets.BTC, dex.KindLimit, dex.SideSell, next, val(1), 0); err != nil {
		t.Fatal(err)
	}

	if _, ask, _, _ := f.engine.BestPrice(assets.BTC); ask != price(10) {
		t.Fatalf("best ask = %s", ask)
	}
	if err := f.engine.DeleteOrder(assets.BTC, 1, price(10), dex.DeleteReasonCancel); err != nil {
		t.Fatal(err)
	}
	if _, ask, _, hasAsk := f.engine.BestPrice(assets.BTC); !hasAsk || ask != next {
		t.Errorf("best ask after delete = %s, want %s", ask, next)
	}
	if len(f.engine.AssetWeights(maker)) != 1 {
		t.Error("weight for the remaining order must survive")
	}

	if err := f.engine.DeleteOrder(assets.BTC, 1, price(10), dex.DeleteReasonCancel); !errors.Is(err, dex.ErrOrderNotFound) {
		t.Errorf("double delete: %v", err)
	}
}

// ============================================================================
// Test: risk sweep
// ============================================================================

func TestUnfitOrders_ExpiredAndOutOfCorridor(t *testing.T) {
	f := newFixture(t)
	maker := f.fundedSeller(t, 2)

	f.now = 100
	if err := f.engine.CreateOrder(maker, assets.BTC, dex.KindLimit, dex.SideSell, price(10), val(1), 500); err != nil {
		t.Fatal(err)
	}
	if err := f.engine.CreateOrder(maker, assets.ETH, dex.KindLimit, dex.SideSell, price(10), val(1), 0); err != nil {
		t.Fatal(err)
	}

	// the ETH quote collapses, stranding its order far above the corridor
	f.prices.SetPrice(assets.ETH, numeric.PriceFromInteger(5))
	f.now = 1000

	unfit := f.engine.UnfitOrders(f.now)
	if len(unfit) != 2 {
		t.Fatalf("unfit orders: %+v", unfit)
	}
	if unfit[0].Asset != assets.BTC || unfit[0].Reason != dex.DeleteReasonExpired {
		t.Errorf("expected expired BTC order first: %+v", unfit[0])
	}
	if unfit[1].Asset != assets.ETH || unfit[1].Reason != dex.DeleteReasonOutOfCorridor {
		t.Errorf("expected out-of-corridor ETH order: %+v", unfit[1])
	}
}

func TestUnfitOrders_FlagsBadMarginAccounts(t *testing.T) {
	f := newFixture(t)
	maker := f.fundedSeller(t, 1)
	if err := f.engine.CreateOrder(maker, assets.BTC, dex.KindLimit, dex.SideSell, price(10), frac(1, 10), 0); err != nil {
		t.Fatal(err)
	}

	// margin was fine at placement; a later debt pushes it below critical
	f.balances.ApplyUnchecked(maker, assets.EQD, balance.Debt(val(9)))

	unfit := f.engine.UnfitOrders(f.now)
	if len(unfit) != 1 || unfit[0].Reason != dex.DeleteReasonMarginCall {
		t.Fatalf("unfit orders: %+v", unfit)
	}
	if unfit[0].Account != maker {
		t.Error("wrong account flagged")
	}
}

// ============================================================================
// Test: snapshot round trip
// ============================================================================

func TestSnapshotRestore_RebuildsBookAndWeights(t *testing.T) {
	f := newFixture(t)
	maker := f.fundedSeller(t, 2)
	buyer := uuid.New()
	f.balances.Deposit(buyer, assets.EQD, val(1000))

	if err := f.engine.CreateOrder(maker, assets.BTC, dex.KindLimit, dex.SideSell, price(10), val(1), 0); err != nil {
		t.Fatal(err)
	}
	bidPrice := numeric.PriceFromRational(99, 10)
	if err := f.engine.CreateOrder(buyer, assets.BTC, dex.KindLimit, dex.SideBuy, bidPrice, val(1), 0); err != nil {
		t.Fatal(err)
	}

	st := f.engine.Snapshot()

	g := newFixture(t)
	if err := g.engine.Restore(st); err != nil {
		t.Fatal(err)
	}
	if _, found := g.engine.FindOrder(assets.BTC, 1, price(10)); !found {
		t.Error("sell order lost in restore")
	}
	bid, ask, hasBid, hasAsk := g.engine.BestPrice(assets.BTC)
	if !hasBid || !hasAsk {
		t.Fatal("best price cache not rebuilt")
	}
	if ask != price(10) || bid != numeric.PriceFromRational(99, 10) {
		t.Errorf("best prices after restore: bid %s ask %s", bid, ask)
	}
	if len(g.engine.AssetWeights(maker)) != 1 || len(g.engine.AssetWeights(buyer)) != 1 {
		t.Error("weights not rebuilt")
	}
}
