package rate

import (
	"fmt"
	"sort"

	"EqCore/internal/aggregates"
	"EqCore/internal/assets"
	"EqCore/internal/bailsman"
	"EqCore/internal/balance"
	"EqCore/internal/margin"
	"EqCore/internal/numeric"
	"EqCore/internal/pricing"

	"github.com/google/uuid"
)

var (
	// ErrZeroDebt short-circuits fee calculation for debt-free accounts.
	// Callers treat it as "no fee", not a failure.
	ErrZeroDebt           = fmt.Errorf("account has no debt")
	ErrNoPrices           = fmt.Errorf("missing price for fee calculation")
	ErrMathError          = fmt.Errorf("fee arithmetic error")
	ErrLastUpdateInFuture = fmt.Errorf("last fee update is in the future")
)

const secondsPerYear = 31_557_600 // 365.25 days

// LenderFee is one per-asset slice of the lender fee.
type LenderFee struct {
	Asset  assets.Asset
	Amount numeric.Value
}

// Fee is the per-reinit settlement, denominated in the basic asset. It is
// computed fresh each reinit and applied immediately, never persisted.
type Fee struct {
	BasicAsset assets.Asset
	Treasury   numeric.Value
	Bailsman   numeric.Value
	Lender     []LenderFee
}

func (f Fee) Total() numeric.Value {
	total := f.Treasury.SaturatingAdd(f.Bailsman)
	for _, l := range f.Lender {
		total = total.SaturatingAdd(l.Amount)
	}
	return total
}

// PrimeRater supplies the system-wide risk-adjusted base rate.
type PrimeRater interface {
	PrimeRate(who uuid.UUID) (numeric.Value, error)
}

// FixedPrimeRate pins the prime rate to a constant. Deterministic test
// setups use the 2% pin.
type FixedPrimeRate struct {
	Rate numeric.Value
}

func (f FixedPrimeRate) PrimeRate(uuid.UUID) (numeric.Value, error) {
	return f.Rate, nil
}

// TestPrimeRate is the pinned 2% used by deterministic fixtures.
func TestPrimeRate() FixedPrimeRate {
	return FixedPrimeRate{Rate: numeric.SaturatingFromRational(2, 100)}
}

// Config holds the fee split parameters. Rates are plain ratios.
type Config struct {
	TreasuryFee     numeric.Value // share of coeff going to treasury
	BaseBailsmanFee numeric.Value
	BaseLenderFee   numeric.Value
	LenderPart      numeric.Value // in [0, 1]
	MinSurplus      numeric.Value // fees below this are not worth a reinit
	TreasuryWeight  uint32        // treasury leg split between treasury and
	AuthorWeight    uint32        // the author rewards pool, by weight
}

func DefaultConfig() Config {
	return Config{
		TreasuryFee:     numeric.SaturatingFromRational(1, 100),
		BaseBailsmanFee: numeric.SaturatingFromRational(1, 100),
		BaseLenderFee:   numeric.SaturatingFromRational(1, 100),
		LenderPart:      numeric.SaturatingFromRational(30, 100),
		MinSurplus:      numeric.SaturatingFromRational(1, 100),
		TreasuryWeight:  80,
		AuthorWeight:    20,
	}
}

// Engine accrues interest against indebted accounts and settles it on
// reinit: treasury and bailsman slices in the basic asset, lender slices
// weighted by each physical asset's share of the account's debt.
type Engine struct {
	cfg        Config
	balances   *balance.Store
	aggregates *aggregates.Store
	prices     *pricing.Store
	registry   *assets.Registry
	margin     *margin.Calculator
	bails      *bailsman.Engine
	prime      PrimeRater
	clock      func() int64

	treasuryAcc uuid.UUID
	authorsAcc  uuid.UUID
	lendingAcc  uuid.UUID
	lastUpdate  map[uuid.UUID]int64
}

func NewEngine(
	cfg Config,
	balances *balance.Store,
	agg *aggregates.Store,
	prices *pricing.Store,
	registry *assets.Registry,
	marginCalc *margin.Calculator,
	bails *bailsman.Engine,
	prime PrimeRater,
	clock func() int64,
) *Engine {
	return &Engine{
		cfg:         cfg,
		balances:    balances,
		aggregates:  agg,
		prices:      prices,
		registry:    registry,
		margin:      marginCalc,
		bails:       bails,
		prime:       prime,
		clock:       clock,
		treasuryAcc: balances.SystemAccount("treasury"),
		authorsAcc:  balances.SystemAccount("authors"),
		lendingAcc:  balances.SystemAccount("lending"),
		lastUpdate:  make(map[uuid.UUID]int64),
	}
}

// TreasuryAccount returns the fee sink account.
func (e *Engine) TreasuryAccount() uuid.UUID { return e.treasuryAcc }

// AuthorsAccount returns the author rewards pool account.
func (e *Engine) AuthorsAccount() uuid.UUID { return e.authorsAcc }

// LendingAccount returns the lender reward pool account.
func (e *Engine) LendingAccount() uuid.UUID { return e.lendingAcc }

// LastUpdate returns the account's last settlement time, zero if never.
func (e *Engine) LastUpdate(who uuid.UUID) int64 { return e.lastUpdate[who] }

func (e *Engine) usdPrice(asset assets.Asset) (numeric.Value, error) {
	if asset == assets.EQD {
		return numeric.One(), nil
	}
	p, err := e.prices.GetPrice(asset)
	if err != nil {
		return numeric.Value{}, fmt.Errorf("%w: %s", ErrNoPrices, asset)
	}
	pv, ok := p.Value()
	if !ok {
		return numeric.Value{}, fmt.Errorf("%w: %s", ErrNoPrices, asset)
	}
	return pv, nil
}

// debtWeights values the account's debt per asset: total USD debt and each
// asset's share of it. Fails with ErrZeroDebt when nothing is owed.
func (e *Engine) debtWeights(who uuid.UUID) (numeric.Value, map[assets.Asset]numeric.Value, error) {
	totalDebt := numeric.Zero()
	debtUSD := make(map[assets.Asset]numeric.Value)
	for _, ab := range e.balances.AccountBalances(who) {
		if !ab.Balance.IsNegative() {
			continue
		}
		price, err := e.usdPrice(ab.Asset)
		if err != nil {
			return numeric.Value{}, nil, err
		}
		usd, ok := ab.Balance.Abs().CheckedMul(price)
		if !ok {
			return numeric.Value{}, nil, ErrMathError
		}
		debtUSD[ab.Asset] = usd
		totalDebt, ok = totalDebt.CheckedAdd(usd)
		if !ok {
			return numeric.Value{}, nil, ErrMathError
		}
	}
	if totalDebt.IsZero() {
		return numeric.Value{}, nil, ErrZeroDebt
	}

	weights := make(map[assets.Asset]numeric.Value, len(debtUSD))
	for a, usd := range debtUSD {
		w, ok := usd.CheckedDiv(totalDebt)
		if !ok {
			return numeric.Value{}, nil, ErrMathError
		}
		weights[a] = w
	}
	return totalDebt, weights, nil
}

// CalcFee derives the fee split for one account:
// coeff = debt_usd * (elapsed / seconds_per_year) / basic_asset_price.
func (e *Engine) CalcFee(who uuid.UUID) (Fee, error) {
	totalDebtUSD, weights, err := e.debtWeights(who)
	if err != nil {
		return Fee{}, err
	}

	now := e.clock()
	last, seen := e.lastUpdate[who]
	if !seen {
		// First contact accrues nothing; the settlement stamps the clock.
		last = now
	}
	if last > now {
		return Fee{}, ErrLastUpdateInFuture
	}
	elapsed := numeric.SaturatingFromInteger(uint64(now - last))
	yearFraction, ok := elapsed.CheckedDiv(numeric.SaturatingFromInteger(secondsPerYear))
	if !ok {
		return Fee{}, ErrMathError
	}

	basicPrice, err := e.usdPrice(assets.EQ)
	if err != nil {
		return Fee{}, err
	}

	coeff, ok := totalDebtUSD.CheckedMul(yearFraction)
	if !ok {
		return Fee{}, ErrMathError
	}
	coeff, ok = coeff.CheckedDiv(basicPrice)
	if !ok {
		return Fee{}, ErrMathError
	}

	primeRate, err := e.prime.PrimeRate(who)
	if err != nil {
		return Fee{}, err
	}

	treasury, ok := coeff.CheckedMul(e.cfg.TreasuryFee)
	if !ok {
		return Fee{}, ErrMathError
	}

	// bailsman = coeff*base + coeff*(1-lender_part)*prime + coeff*w_eqd*lender_part*prime
	insurancePart, ok := numeric.One().CheckedSub(e.cfg.LenderPart)
	if !ok {
		return Fee{}, ErrMathError
	}
	bails := coeff.SaturatingMul(e.cfg.BaseBailsmanFee)
	bails = bails.SaturatingAdd(coeff.SaturatingMul(insurancePart).SaturatingMul(primeRate))
	if eqdWeight, has := weights[assets.EQD]; has {
		bails = bails.SaturatingAdd(
			coeff.SaturatingMul(eqdWeight).SaturatingMul(e.cfg.LenderPart).SaturatingMul(primeRate))
	}

	lendRate := e.cfg.BaseLenderFee.SaturatingAdd(e.cfg.LenderPart.SaturatingMul(primeRate))
	var lender []LenderFee
	for _, data := range e.registry.List() {
		if data.Kind != assets.KindPhysical {
			continue
		}
		w, has := weights[data.Asset]
		if !has || w.IsZero() {
			continue
		}
		amount := coeff.SaturatingMul(w).SaturatingMul(lendRate)
		lender = append(lender, LenderFee{Asset: data.Asset, Amount: amount})
	}
	sort.Slice(lender, func(i, j int) bool { return lender[i].Asset < lender[j].Asset })

	return Fee{
		BasicAsset: assets.EQ,
		Treasury:   treasury,
		Bailsman:   bails,
		Lender:     lender,
	}, nil
}

// ChargeFee settles the computed fee as basic-asset transfers. Zero debt is
// a successful no-op.
func (e *Engine) ChargeFee(who uuid.UUID) error {
	fee, err := e.CalcFee(who)
	if err != nil {
		if err == ErrZeroDebt {
			return nil
		}
		return err
	}

	if !fee.Treasury.IsZero() {
		toTreasury := fee.Treasury
		toAuthors := numeric.Zero()
		if total := int64(e.cfg.TreasuryWeight) + int64(e.cfg.AuthorWeight); total > 0 {
			share := numeric.SaturatingFromRational(int64(e.cfg.TreasuryWeight), total)
			toTreasury = fee.Treasury.SaturatingMul(share)
			toAuthors = fee.Treasury.SaturatingSub(toTreasury)
		}
		if !toTreasury.IsZero() {
			if err := e.balances.TransferUnchecked(who, e.treasuryAcc, fee.BasicAsset, toTreasury); err != nil {
				return err
			}
		}
		if !toAuthors.IsZero() {
			if err := e.balances.TransferUnchecked(who, e.authorsAcc, fee.BasicAsset, toAuthors); err != nil {
				return err
			}
		}
	}
	if !fee.Bailsman.IsZero() {
		if err := e.balances.TransferUnchecked(who, e.bails.TempAccount(), fee.BasicAsset, fee.Bailsman); err != nil {
			return err
		}
	}
	lenderTotal := numeric.Zero()
	for _, l := range fee.Lender {
		lenderTotal = lenderTotal.SaturatingAdd(l.Amount)
	}
	if !lenderTotal.IsZero() {
		if err := e.balances.TransferUnchecked(who, e.lendingAcc, fee.BasicAsset, lenderTotal); err != nil {
			return err
		}
	}
	return nil
}

// buyout restores a negative basic-asset balance from the treasury, taking
// equivalent collateral in buyout priority order. Charge and buyout succeed
// or fail together; a failure here is an invariant violation.
func (e *Engine) buyout(who uuid.UUID, shortfall numeric.Value) {
	if err := e.balances.TransferUnchecked(e.treasuryAcc, who, assets.EQ, shortfall); err != nil {
		panic(fmt.Sprintf("FATAL: buyout transfer failed: %v", err))
	}
	basicPrice, err := e.usdPrice(assets.EQ)
	if err != nil {
		panic(fmt.Sprintf("FATAL: buyout pricing failed: %v", err))
	}
	oweUSD, ok := shortfall.CheckedMul(basicPrice)
	if !ok {
		panic("FATAL: buyout valuation overflow")
	}

	for _, data := range e.registry.ListByBuyoutPriority() {
		if oweUSD.IsZero() {
			break
		}
		if data.Asset == assets.EQ {
			continue
		}
		bal := e.balances.Get(who, data.Asset)
		if !bal.IsPositive() || bal.IsZero() {
			continue
		}
		price, perr := e.usdPrice(data.Asset)
		if perr != nil {
			continue
		}
		needed, ok := oweUSD.CheckedDiv(price)
		if !ok {
			continue
		}
		amount := bal.Abs()
		if needed.LT(amount) {
			amount = needed
		}
		if amount.IsZero() {
			continue
		}
		if err := e.balances.TransferUnchecked(who, e.treasuryAcc, data.Asset, amount); err != nil {
			panic(fmt.Sprintf("FATAL: buyout collateral transfer failed: %v", err))
		}
		taken, ok := amount.CheckedMul(price)
		if !ok {
			panic("FATAL: buyout valuation overflow")
		}
		oweUSD, _ = oweUSD.CheckedSub(taken)
	}
}

// DoReinit is the per-account settlement: catch up bailsman distributions,
// liquidate insolvent accounts, otherwise charge the accrued fee and stamp
// the update time. A margin-call pass runs unconditionally afterward since
// the charged fee itself can push the account over the edge.
func (e *Engine) DoReinit(who uuid.UUID) error {
	if e.balances.IsSystemAccount(who) {
		return nil
	}

	if e.bails.IsBailsman(who) {
		if err := e.bails.Redistribute(who); err != nil {
			return err
		}
	}

	state, err := e.margin.CheckMargin(who)
	if err != nil {
		return err
	}
	if state == margin.MarginStateSubCritical {
		if _, err := e.margin.TryMargincall(who, e.bails); err != nil {
			return err
		}
		e.lastUpdate[who] = e.clock()
		return nil
	}

	last := e.lastUpdate[who]
	var chargeErr error
	if err := e.ChargeFee(who); err != nil {
		if last == 0 {
			// bootstrapping: first contact just stamps the clock
			e.lastUpdate[who] = e.clock()
		} else {
			chargeErr = err
		}
	} else {
		if bal := e.balances.Get(who, assets.EQ); bal.IsNegative() {
			e.buyout(who, bal.Abs())
		}
		e.lastUpdate[who] = e.clock()
	}

	if _, err := e.margin.TryMargincall(who, e.bails); err != nil {
		return err
	}
	return chargeErr
}

// NeedToReinit gates the offchain sweep: true when pending distributions or
// the accrued fee would move the account out of a good position, or when the
// fee alone clears the minimum surplus. Cheap and side-effect free.
func (e *Engine) NeedToReinit(who uuid.UUID) bool {
	if e.balances.IsSystemAccount(who) {
		return false
	}

	var changes []margin.ProposedChange
	if e.bails.IsBailsman(who) {
		if pending, err := e.bails.PendingChanges(who); err == nil {
			changes = pending
		}
	}

	if state, _, err := e.margin.CheckMarginWithChange(who, changes); err == nil && !state.IsGood() {
		return true
	}

	feeTotal := numeric.Zero()
	if fee, err := e.CalcFee(who); err == nil {
		feeTotal = fee.Total()
	}

	withFee := append(changes, margin.ProposedChange{
		Asset:  assets.EQ,
		Change: balance.Debt(feeTotal),
	})
	if state, _, err := e.margin.CheckMarginWithChange(who, withFee); err == nil && !state.IsGood() {
		return true
	}
	return feeTotal.GT(e.cfg.MinSurplus)
}

// DeleteAccount drains an account into the pool and forgets it.
func (e *Engine) DeleteAccount(who uuid.UUID) error {
	if err := e.bails.ReceivePosition(who, true); err != nil {
		return err
	}
	for _, g := range []aggregates.UserGroup{aggregates.GroupBalances, aggregates.GroupBorrowers} {
		if e.aggregates.InGroup(who, g) {
			if err := e.aggregates.SetUserGroup(who, g, false, e.balances); err != nil {
				return err
			}
		}
	}
	delete(e.lastUpdate, who)
	return nil
}

// --- snapshot support ---

// UpdateSnapshot is one exported (account, last fee update) row.
type UpdateSnapshot struct {
	Account uuid.UUID
	At      int64
}

func (e *Engine) Snapshot() []UpdateSnapshot {
	out := make([]UpdateSnapshot, 0, len(e.lastUpdate))
	for who, at := range e.lastUpdate {
		out = append(out, UpdateSnapshot{Account: who, At: at})
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i].Account, out[j].Account
		for k := 0; k < len(a); k++ {
			if a[k] != b[k] {
				return a[k] < b[k]
			}
		}
		return false
	})
	return out
}

func (e *Engine) Restore(rows []UpdateSnapshot) {
	e.lastUpdate = make(map[uuid.UUID]int64, len(rows))
	for _, row := range rows {
		e.lastUpdate[row.Account] = row.At
	}
}
