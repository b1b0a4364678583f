package margin

import (
	"fmt"
	"sort"

	"EqCore/internal/assets"
	"EqCore/internal/balance"
	"EqCore/internal/numeric"
	"EqCore/internal/pricing"

	"github.com/google/uuid"
)

// MarginState classifies an account's discounted-collateral-to-debt ratio.
// The maintenance states carry the margin-call countdown: an account between
// the critical and maintenance thresholds gets a grace period before
// liquidation; below critical it is liquidated immediately.
type MarginState int

const (
	MarginStateGood MarginState = iota
	MarginStateSubGood
	MarginStateMaintenanceStart
	MarginStateMaintenanceIsGoing
	MarginStateMaintenanceTimeOver
	MarginStateMaintenanceIsDone
	MarginStateSubCritical
)

func (ms MarginState) String() string {
	switch ms {
	case MarginStateGood:
		return "Good"
	case MarginStateSubGood:
		return "SubGood"
	case MarginStateMaintenanceStart:
		return "MaintenanceStart"
	case MarginStateMaintenanceIsGoing:
		return "MaintenanceIsGoing"
	case MarginStateMaintenanceTimeOver:
		return "MaintenanceTimeOver"
	case MarginStateMaintenanceIsDone:
		return "MaintenanceIsDone"
	case MarginStateSubCritical:
		return "SubCritical"
	default:
		return "Unknown"
	}
}

// IsGood reports whether the state needs no intervention.
func (ms MarginState) IsGood() bool {
	return ms == MarginStateGood || ms == MarginStateSubGood || ms == MarginStateMaintenanceIsDone
}

// NeedsLiquidation reports whether the state forces a position takeover.
func (ms MarginState) NeedsLiquidation() bool {
	return ms == MarginStateSubCritical || ms == MarginStateMaintenanceTimeOver
}

var ErrWrongMargin = fmt.Errorf("operation would leave margin in a bad state")

// Config holds the three margin thresholds and the maintenance grace period.
// Thresholds are ratios of (collateral - debt) / collateral.
type Config struct {
	CriticalMargin    numeric.Value // below: immediate liquidation
	MaintenanceMargin numeric.Value // below: countdown starts
	InitialMargin     numeric.Value // below: SubGood, no new risk
	MaintenancePeriod int64         // seconds
}

func DefaultConfig() Config {
	return Config{
		CriticalMargin:    numeric.SaturatingFromRational(5, 100),
		MaintenanceMargin: numeric.SaturatingFromRational(10, 100),
		InitialMargin:     numeric.SaturatingFromRational(20, 100),
		MaintenancePeriod: 86_400,
	}
}

// SideWeight is one side's open-order commitment for an asset.
type SideWeight struct {
	Amount        numeric.Value // base units committed
	AmountByPrice numeric.Value // quote notional committed
}

// AssetWeight is the per-asset open-order exposure of an account.
type AssetWeight struct {
	Asset assets.Asset
	Buy   SideWeight
	Sell  SideWeight
}

// BalanceSource and OrderWeightSource are declared locally so the margin
// engine stays a leaf: it never calls back into the engines that consult it.
type BalanceSource interface {
	AccountBalances(who uuid.UUID) []balance.AssetBalance
}

type OrderWeightSource interface {
	AssetWeights(who uuid.UUID) []AssetWeight
}

// PositionReceiver takes over a liquidated account's balances.
type PositionReceiver interface {
	ReceivePosition(who uuid.UUID, isDeletingPosition bool) error
}

// ProposedChange is a hypothetical balance delta for what-if margin checks.
type ProposedChange struct {
	Asset  assets.Asset
	Change balance.SignedBalance
}

// Calculator computes margin state from a state snapshot. It owns only the
// maintenance timers; everything else is read through the sources.
type Calculator struct {
	cfg      Config
	balances BalanceSource
	prices   pricing.Getter
	registry *assets.Registry
	weights  OrderWeightSource
	clock    func() int64

	timers map[uuid.UUID]int64 // maintenance countdown start, unix seconds
}

func NewCalculator(
	cfg Config,
	balances BalanceSource,
	prices pricing.Getter,
	registry *assets.Registry,
	clock func() int64,
) *Calculator {
	return &Calculator{
		cfg:      cfg,
		balances: balances,
		prices:   prices,
		registry: registry,
		clock:    clock,
		timers:   make(map[uuid.UUID]int64),
	}
}

// SetOrderWeightSource wires the book's exposure aggregates in; done once at
// startup, after the order book exists.
func (c *Calculator) SetOrderWeightSource(w OrderWeightSource) { c.weights = w }

// CriticalMargin exposes the liquidation threshold; the bailsman intake uses
// it as the debt penalty multiplier.
func (c *Calculator) CriticalMargin() numeric.Value { return c.cfg.CriticalMargin }

// Portfolio is the USD-valued (discounted collateral, debt) pair of an
// account under one fill scenario.
type Portfolio struct {
	Collateral numeric.Value
	Debt       numeric.Value
}

// Margin is (collateral - debt) / collateral. Zero debt is riskless and
// yields the maximum representable margin; debt at or above collateral
// yields zero.
func (p Portfolio) Margin() numeric.Value {
	if p.Debt.IsZero() {
		return numeric.Max()
	}
	if p.Collateral.IsZero() || p.Collateral.LE(p.Debt) {
		return numeric.Zero()
	}
	surplus, ok := p.Collateral.CheckedSub(p.Debt)
	if !ok {
		return numeric.Zero()
	}
	m, ok := surplus.CheckedDiv(p.Collateral)
	if !ok {
		return numeric.Zero()
	}
	return m
}

func (c *Calculator) usdValue(asset assets.Asset, amount numeric.Value) (numeric.Value, error) {
	if asset == assets.EQD {
		return amount, nil
	}
	price, err := c.prices.GetPrice(asset)
	if err != nil {
		return numeric.Value{}, err
	}
	pv, ok := price.Value()
	if !ok {
		return numeric.Value{}, pricing.ErrPriceNotPositive
	}
	usd, ok := amount.CheckedMul(pv)
	if !ok {
		return numeric.Value{}, fmt.Errorf("usd valuation overflow for %s", asset)
	}
	return usd, nil
}

// basePortfolio values the account's balances plus proposed changes.
// Positive balances contribute discounted collateral (EQD undiscounted),
// negative balances contribute undiscounted debt.
func (c *Calculator) basePortfolio(who uuid.UUID, changes []ProposedChange) (Portfolio, error) {
	merged := make(map[assets.Asset]balance.SignedBalance)
	for _, ab := range c.balances.AccountBalances(who) {
		merged[ab.Asset] = ab.Balance
	}
	for _, ch := range changes {
		next, ok := merged[ch.Asset].Add(ch.Change)
		if !ok {
			return Portfolio{}, balance.ErrBalanceOverflow
		}
		merged[ch.Asset] = next
	}

	order := make([]assets.Asset, 0, len(merged))
	for a := range merged {
		order = append(order, a)
	}
	sort.Slice(order, func(i, j int) bool { return order[i] < order[j] })

	var p Portfolio
	for _, a := range order {
		bal := merged[a]
		if bal.IsZero() {
			continue
		}
		usd, err := c.usdValue(a, bal.Abs())
		if err != nil {
			return Portfolio{}, err
		}
		var ok bool
		if bal.IsNegative() {
			p.Debt, ok = p.Debt.CheckedAdd(usd)
		} else {
			if a != assets.EQD {
				data, derr := c.registry.Get(a)
				if derr != nil {
					return Portfolio{}, derr
				}
				usd = data.Discounted(usd)
			}
			p.Collateral, ok = p.Collateral.CheckedAdd(usd)
		}
		if !ok {
			return Portfolio{}, fmt.Errorf("portfolio total overflow")
		}
	}
	return p, nil
}

// sideScenario folds one side's open-order commitments into the portfolio as
// if every order on that side filled at once. Buys spend quote (debt grows by
// the committed notional) and gain discounted base collateral; sells release
// base collateral and gain quote.
func (c *Calculator) sideScenario(base Portfolio, weights []AssetWeight, buy bool) (Portfolio, error) {
	p := base
	for _, w := range weights {
		side := w.Sell
		if buy {
			side = w.Buy
		}
		if side.Amount.IsZero() {
			continue
		}
		baseUSD, err := c.usdValue(w.Asset, side.Amount)
		if err != nil {
			return Portfolio{}, err
		}
		data, err := c.registry.Get(w.Asset)
		if err != nil {
			return Portfolio{}, err
		}
		discounted := data.Discounted(baseUSD)

		var ok bool
		if buy {
			p.Collateral, ok = p.Collateral.CheckedAdd(discounted)
			if !ok {
				return Portfolio{}, fmt.Errorf("portfolio total overflow")
			}
			p.Debt, ok = p.Debt.CheckedAdd(side.AmountByPrice)
		} else {
			if p.Collateral.LT(discounted) {
				p.Collateral = numeric.Zero()
			} else {
				p.Collateral, _ = p.Collateral.CheckedSub(discounted)
			}
			p.Collateral, ok = p.Collateral.CheckedAdd(side.AmountByPrice)
		}
		if !ok {
			return Portfolio{}, fmt.Errorf("portfolio total overflow")
		}
	}
	return p, nil
}

// AccountMargin is the worst-case margin across the no-fill, all-buys-fill
// and all-sells-fill scenarios.
func (c *Calculator) AccountMargin(who uuid.UUID, changes []ProposedChange) (numeric.Value, error) {
	base, err := c.basePortfolio(who, changes)
	if err != nil {
		return numeric.Value{}, err
	}
	m := base.Margin()

	if c.weights != nil {
		weights := c.weights.AssetWeights(who)
		if len(weights) > 0 {
			buys, err := c.sideScenario(base, weights, true)
			if err != nil {
				return numeric.Value{}, err
			}
			sells, err := c.sideScenario(base, weights, false)
			if err != nil {
				return numeric.Value{}, err
			}
			if bm := buys.Margin(); bm.LT(m) {
				m = bm
			}
			if sm := sells.Margin(); sm.LT(m) {
				m = sm
			}
		}
	}
	return m, nil
}

// stateFor maps a margin level onto the state machine, advancing or clearing
// the account's maintenance timer as a side effect.
func (c *Calculator) stateFor(who uuid.UUID, m numeric.Value) MarginState {
	now := c.clock()

	switch {
	case m.LT(c.cfg.CriticalMargin):
		delete(c.timers, who)
		return MarginStateSubCritical

	case m.LT(c.cfg.MaintenanceMargin):
		start, running := c.timers[who]
		if !running {
			c.timers[who] = now
			return MarginStateMaintenanceStart
		}
		if now-start >= c.cfg.MaintenancePeriod {
			return MarginStateMaintenanceTimeOver
		}
		return MarginStateMaintenanceIsGoing

	case m.LT(c.cfg.InitialMargin):
		if _, running := c.timers[who]; running {
			delete(c.timers, who)
			return MarginStateMaintenanceIsDone
		}
		return MarginStateSubGood

	default:
		if _, running := c.timers[who]; running {
			delete(c.timers, who)
			return MarginStateMaintenanceIsDone
		}
		return MarginStateGood
	}
}

// CheckMargin returns the current margin state of an account.
func (c *Calculator) CheckMargin(who uuid.UUID) (MarginState, error) {
	m, err := c.AccountMargin(who, nil)
	if err != nil {
		return MarginStateSubCritical, err
	}
	return c.stateFor(who, m), nil
}

// CheckMarginWithChange evaluates the state after hypothetical balance
// changes and reports whether the change strictly improves margin. The
// maintenance timer is not advanced by what-if checks.
func (c *Calculator) CheckMarginWithChange(who uuid.UUID, changes []ProposedChange) (MarginState, bool, error) {
	before, err := c.AccountMargin(who, nil)
	if err != nil {
		return MarginStateSubCritical, false, err
	}
	after, err := c.AccountMargin(who, changes)
	if err != nil {
		return MarginStateSubCritical, false, err
	}

	switch {
	case after.LT(c.cfg.CriticalMargin):
		return MarginStateSubCritical, before.LT(after), nil
	case after.LT(c.cfg.MaintenanceMargin):
		return MarginStateMaintenanceIsGoing, before.LT(after), nil
	case after.LT(c.cfg.InitialMargin):
		return MarginStateSubGood, before.LT(after), nil
	default:
		return MarginStateGood, before.LT(after), nil
	}
}

// TryMargincall runs one margin-call pass: liquidatable accounts are handed
// to the receiver, recovered accounts get their timer cleared. Returns the
// state observed before any takeover.
func (c *Calculator) TryMargincall(who uuid.UUID, receiver PositionReceiver) (MarginState, error) {
	state, err := c.CheckMargin(who)
	if err != nil {
		return state, err
	}
	if state.NeedsLiquidation() {
		if err := receiver.ReceivePosition(who, false); err != nil {
			return state, err
		}
		delete(c.timers, who)
	}
	return state, nil
}

// --- snapshot support ---

// TimerSnapshot is one exported maintenance countdown row.
type TimerSnapshot struct {
	Account uuid.UUID
	Started int64
}

func (c *Calculator) Snapshot() []TimerSnapshot {
	out := make([]TimerSnapshot, 0, len(c.timers))
	for who, start := range c.timers {
		out = append(out, TimerSnapshot{Account: who, Started: start})
	}
	sort.Slice(out, func(i, j int) bool {
		for k := 0; k < len(out[i].Account); k++ {
			if out[i].Account[k] != out[j].Account[k] {
				return out[i].Account[k] < out[j].Account[k]
			}
		}
		return false
	})
	return out
}

func (c *Calculator) Restore(rows []TimerSnapshot) {
	c.timers = make(map[uuid.UUID]int64, len(rows))
	for _, row := range rows {
		c.timers[row.Account] = row.Started
	}
}
