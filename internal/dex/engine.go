// Package dex keeps the order books. Orders are bucketed into price chunks
// per asset; within a chunk they stay sorted by (price, created_at, order_id),
// which is exactly the matching priority. Best bid/ask is cached per asset and
// repaired by a neighbor-chunk rescan whenever the order holding it goes away.
package dex

import (
	"errors"
	"fmt"
	"sort"

	"EqCore/internal/assets"
	"EqCore/internal/balance"
	"EqCore/internal/margin"
	"EqCore/internal/numeric"
	"EqCore/internal/pricing"

	"github.com/google/uuid"
)

// Side is the book side of an order.
type Side int

const (
	SideBuy Side = iota + 1
	SideSell
)

func (s Side) Opposite() Side {
	if s == SideBuy {
		return SideSell
	}
	return SideBuy
}

func (s Side) String() string {
	switch s {
	case SideBuy:
		return "Buy"
	case SideSell:
		return "Sell"
	default:
		return "Unknown"
	}
}

// Kind distinguishes resting-capable limit orders from match-only market
// orders.
type Kind int

const (
	KindLimit Kind = iota
	KindMarket
)

// DeleteReason records why an order left the book.
type DeleteReason int

const (
	DeleteReasonCancel DeleteReason = iota
	DeleteReasonOutOfCorridor
	DeleteReasonExpired
	DeleteReasonMarginCall
	DeleteReasonDisabled
	DeleteReasonMatch
	DeleteReasonMakerError
)

func (r DeleteReason) String() string {
	switch r {
	case DeleteReasonCancel:
		return "Cancel"
	case DeleteReasonOutOfCorridor:
		return "OutOfCorridor"
	case DeleteReasonExpired:
		return "Expired"
	case DeleteReasonMarginCall:
		return "MarginCall"
	case DeleteReasonDisabled:
		return "Disabled"
	case DeleteReasonMatch:
		return "Match"
	case DeleteReasonMakerError:
		return "MakerError"
	default:
		return "Unknown"
	}
}

var (
	ErrOrderAmountShouldBePositive    = fmt.Errorf("order amount should be positive")
	ErrOrderAmountShouldSatisfyLot    = fmt.Errorf("order amount should be a multiple of the asset lot")
	ErrOrderPriceShouldBePositive     = fmt.Errorf("order price should be positive")
	ErrOrderPriceShouldSatisfyStep    = fmt.Errorf("order price should be a multiple of the asset price step")
	ErrOrderPriceShouldBeInCorridor   = fmt.Errorf("order price should be inside the price corridor")
	ErrPriceStepShouldBePositive      = fmt.Errorf("price step should be positive")
	ErrDexDisabledForAsset            = fmt.Errorf("trading is disabled for the asset")
	ErrNoBestPriceForMarketOrder      = fmt.Errorf("no best price on the opposite side for a market order")
	ErrOrderNotFound                  = fmt.Errorf("order not found")
	ErrBadMargin                      = fmt.Errorf("account margin does not allow a new order")
	ErrNotionalOverflow               = fmt.Errorf("order notional overflow")
)

// Order is one resting book entry.
type Order struct {
	OrderID   uint64
	Account   uuid.UUID
	Side      Side
	Amount    numeric.Value
	Price     numeric.Price
	CreatedAt int64
	ExpiresAt int64 // unix seconds, 0 for good-till-cancel
}

// ChunkKey is the price bucket coordinate: floor(price / (step * stepCount)).
type ChunkKey int64

// Config holds the book-wide bucketing and corridor parameters. The corridor
// width can be overridden per asset.
type Config struct {
	PriceStepCount uint32
	ChunkCorridor  uint32
}

func DefaultConfig() Config {
	return Config{
		PriceStepCount: 5,
		ChunkCorridor:  10,
	}
}

type book struct {
	chunks map[ChunkKey][]Order
	keys   []ChunkKey // sorted active chunk index
	bid    numeric.Price
	ask    numeric.Price
	hasBid bool
	hasAsk bool
}

func newBook() *book {
	return &book{chunks: make(map[ChunkKey][]Order)}
}

type orderAggregate struct {
	amount        numeric.Value
	amountByPrice numeric.Value
}

type aggregateBySide struct {
	buy  orderAggregate
	sell orderAggregate
}

func (a *aggregateBySide) isZero() bool {
	return a.buy.amount.IsZero() && a.sell.amount.IsZero()
}

// Engine owns the per-asset books, the monotonic order id counter and the
// per-account order-weight aggregates the margin engine reads. Like the rest
// of the core it runs single-threaded and carries no locking.
type Engine struct {
	cfg      Config
	balances *balance.Store
	prices   pricing.Getter
	registry *assets.Registry
	margin   *margin.Calculator
	clock    func() int64

	treasuryAcc uuid.UUID
	books       map[assets.Asset]*book
	weights     map[uuid.UUID]map[assets.Asset]*aggregateBySide
	corridors   map[assets.Asset]uint32
	nextOrderID uint64
	journal     []BookChange
}

func NewEngine(
	cfg Config,
	balances *balance.Store,
	prices pricing.Getter,
	registry *assets.Registry,
	calc *margin.Calculator,
	clock func() int64,
) *Engine {
	return &Engine{
		cfg:         cfg,
		balances:    balances,
		prices:      prices,
		registry:    registry,
		margin:      calc,
		clock:       clock,
		treasuryAcc: balances.SystemAccount("treasury"),
		books:       make(map[assets.Asset]*book),
		weights:     make(map[uuid.UUID]map[assets.Asset]*aggregateBySide),
		corridors:   make(map[assets.Asset]uint32),
	}
}

func (e *Engine) bookFor(asset assets.Asset) *book {
	b, ok := e.books[asset]
	if !ok {
		b = newBook()
		e.books[asset] = b
	}
	return b
}

// SetChunkCorridor overrides the corridor width for one asset.
func (e *Engine) SetChunkCorridor(asset assets.Asset, width uint32) {
	e.corridors[asset] = width
}

func (e *Engine) corridorFor(asset assets.Asset) int64 {
	if w, ok := e.corridors[asset]; ok {
		return int64(w)
	}
	return int64(e.cfg.ChunkCorridor)
}

// ChunkKeyFor buckets a price. The denominator is step * stepCount; the key
// is the floor of the fixed-point quotient, which for positive prices is
// plain integer division on the inner representations.
func (e *Engine) ChunkKeyFor(price numeric.Price, step numeric.Price) (ChunkKey, error) {
	if !price.IsPositive() {
		return 0, ErrOrderPriceShouldBePositive
	}
	if !step.IsPositive() || e.cfg.PriceStepCount == 0 {
		return 0, ErrPriceStepShouldBePositive
	}
	denom := step.Inner() * int64(e.cfg.PriceStepCount)
	if denom <= 0 {
		return 0, ErrPriceStepShouldBePositive
	}
	return ChunkKey(price.Inner() / denom), nil
}

// ============================================================================
// Order placement
// ============================================================================

// CreateOrder validates, matches immediately against the book, and rests any
// limit remainder. A market order's unmatched remainder is dropped.
func (e *Engine) CreateOrder(
	who uuid.UUID,
	asset assets.Asset,
	kind Kind,
	side Side,
	price numeric.Price,
	amount numeric.Value,
	expiresAt int64,
) error {
	data, err := e.registry.Get(asset)
	if err != nil {
		return err
	}
	if !data.DexEnabled {
		return ErrDexDisabledForAsset
	}
	if err := ensureAmountSatisfiesLot(amount, data.LotSize); err != nil {
		return err
	}

	rest, err := e.tryMatch(who, side, kind, price, amount, asset, data)
	if err != nil {
		return err
	}
	if kind == KindLimit && !rest.IsZero() {
		return e.createLimitOrder(who, asset, price, side, rest, expiresAt, data)
	}
	return nil
}

func ensureAmountSatisfiesLot(amount, lot numeric.Value) error {
	if amount.IsZero() {
		return ErrOrderAmountShouldBePositive
	}
	q, ok := amount.CheckedDiv(lot)
	if !ok || q.IsZero() || !q.Frac().IsZero() {
		return ErrOrderAmountShouldSatisfyLot
	}
	return nil
}

func ensurePriceSatisfiesStep(price, step numeric.Price) error {
	if !price.IsPositive() {
		return ErrOrderPriceShouldBePositive
	}
	if !step.IsPositive() {
		return ErrPriceStepShouldBePositive
	}
	if price.Inner()%step.Inner() != 0 {
		return ErrOrderPriceShouldSatisfyStep
	}
	return nil
}

// EnsureOrderInCorridor checks that an order's chunk lies within the
// configured corridor around the asset mid-chunk. The mid price is the
// oracle quote clamped toward (never past) the current best bid and ask.
func (e *Engine) EnsureOrderInCorridor(asset assets.Asset, price numeric.Price) error {
	if !price.IsPositive() {
		return ErrOrderPriceShouldBePositive
	}
	data, err := e.registry.Get(asset)
	if err != nil {
		return err
	}
	key, err := e.ChunkKeyFor(price, data.PriceStep)
	if err != nil {
		return err
	}

	oracle, err := e.prices.GetPrice(asset)
	if err != nil {
		return err
	}
	b := e.bookFor(asset)

	var mid numeric.Price
	switch {
	case !b.hasAsk && !b.hasBid:
		mid = oracle
	case !b.hasAsk:
		mid = numeric.MaxPrice(oracle, b.bid)
	case !b.hasBid:
		mid = numeric.MinPrice(oracle, b.ask)
	default:
		mid = numeric.MidPrice(numeric.MinPrice(oracle, b.ask), numeric.MaxPrice(oracle, b.bid))
	}

	denom := data.PriceStep.Inner() * int64(e.cfg.PriceStepCount)
	if denom <= 0 {
		return ErrPriceStepShouldBePositive
	}
	midChunk := mid.Inner() / denom
	corridor := e.corridorFor(asset)
	if int64(key) < midChunk-corridor || int64(key) > midChunk+corridor {
		return ErrOrderPriceShouldBeInCorridor
	}
	return nil
}

func (e *Engine) createLimitOrder(
	who uuid.UUID,
	asset assets.Asset,
	price numeric.Price,
	side Side,
	amount numeric.Value,
	expiresAt int64,
	data assets.Data,
) error {
	if err := ensurePriceSatisfiesStep(price, data.PriceStep); err != nil {
		return err
	}
	if err := e.EnsureOrderInCorridor(asset, price); err != nil {
		return err
	}

	// Resting an order only ever commits more exposure, so the check is
	// a plain "still Good with the weight applied".
	if err := e.addWeight(who, asset, amount, price, side); err != nil {
		return err
	}
	state, _, err := e.margin.CheckMarginWithChange(who, nil)
	if err != nil || state != margin.MarginStateGood {
		e.subWeight(who, asset, amount, price, side)
		if err != nil {
			return err
		}
		return ErrBadMargin
	}

	e.nextOrderID++
	order := Order{
		OrderID:   e.nextOrderID,
		Account:   who,
		Side:      side,
		Amount:    amount,
		Price:     price,
		CreatedAt: e.clock(),
		ExpiresAt: expiresAt,
	}
	key, err := e.ChunkKeyFor(price, data.PriceStep)
	if err != nil {
		e.subWeight(who, asset, amount, price, side)
		return err
	}
	e.insertOrder(asset, key, order)
	return nil
}

// insertOrder places an order at its priority slot and refreshes the chunk
// index and best-price cache.
func (e *Engine) insertOrder(asset assets.Asset, key ChunkKey, order Order) {
	b := e.bookFor(asset)
	orders := b.chunks[key]
	idx := sort.Search(len(orders), func(i int) bool {
		o := orders[i]
		if o.Price != order.Price {
			return o.Price > order.Price
		}
		if o.CreatedAt != order.CreatedAt {
			return o.CreatedAt > order.CreatedAt
		}
		return o.OrderID > order.OrderID
	})
	orders = append(orders, Order{})
	copy(orders[idx+1:], orders[idx:])
	orders[idx] = order
	b.chunks[key] = orders
	e.journal = append(e.journal, BookChange{Kind: BookChangeCreated, Asset: asset, Order: order})

	ki := sort.Search(len(b.keys), func(i int) bool { return b.keys[i] >= key })
	if ki == len(b.keys) || b.keys[ki] != key {
		b.keys = append(b.keys, 0)
		copy(b.keys[ki+1:], b.keys[ki:])
		b.keys[ki] = key
	}

	switch order.Side {
	case SideBuy:
		if !b.hasBid || order.Price > b.bid {
			b.bid = order.Price
			b.hasBid = true
		}
	case SideSell:
		if !b.hasAsk || order.Price < b.ask {
			b.ask = order.Price
			b.hasAsk = true
		}
	}
}

// ============================================================================
// Matching
// ============================================================================

// tryMatch fills the taker against resting opposite-side orders, walking
// chunks outward from the best-price chunk and orders in priority sequence.
// Returns the unmatched remainder.
func (e *Engine) tryMatch(
	taker uuid.UUID,
	side Side,
	kind Kind,
	limit numeric.Price,
	amount numeric.Value,
	asset assets.Asset,
	data assets.Data,
) (numeric.Value, error) {
	b := e.bookFor(asset)

	var best numeric.Price
	var hasBest bool
	if side == SideBuy {
		best, hasBest = b.ask, b.hasAsk
	} else {
		best, hasBest = b.bid, b.hasBid
	}
	if !hasBest {
		if kind == KindMarket {
			return numeric.Zero(), ErrNoBestPriceForMarketOrder
		}
		return amount, nil
	}

	startKey, err := e.ChunkKeyFor(best, data.PriceStep)
	if err != nil {
		return numeric.Zero(), err
	}

	// Snapshot the chunk walk up front: matching mutates the book.
	keys := make([]ChunkKey, 0, len(b.keys))
	if side == SideBuy {
		for _, k := range b.keys {
			if k >= startKey {
				keys = append(keys, k)
			}
		}
	} else {
		for i := len(b.keys) - 1; i >= 0; i-- {
			if b.keys[i] <= startKey {
				keys = append(keys, b.keys[i])
			}
		}
	}

	rest := amount
	for _, key := range keys {
		makers := append([]Order(nil), b.chunks[key]...)
		if side == SideSell {
			makers = descendingPriceRuns(makers)
		}
		for _, maker := range makers {
			if maker.Side != side.Opposite() {
				continue
			}
			if kind == KindLimit {
				if side == SideBuy && maker.Price > limit {
					return rest, nil
				}
				if side == SideSell && maker.Price < limit {
					return rest, nil
				}
			}
			matched, err := e.matchTwoOrders(taker, rest, maker, asset, data)
			if err != nil {
				return numeric.Zero(), err
			}
			rest = rest.SaturatingSub(matched)
			if rest.IsZero() {
				return numeric.Zero(), nil
			}
		}
	}
	return rest, nil
}

// descendingPriceRuns reorders a chunk's orders so price levels are walked
// from highest to lowest while each level keeps its ascending
// (created_at, order_id) sequence. Chunks are stored ascending, so the runs
// are emitted back to front.
func descendingPriceRuns(orders []Order) []Order {
	out := make([]Order, 0, len(orders))
	for end := len(orders); end > 0; {
		start := end - 1
		for start > 0 && orders[start-1].Price == orders[end-1].Price {
			start--
		}
		out = append(out, orders[start:end]...)
		end = start
	}
	return out
}

// matchTwoOrders executes one fill: fees are withdrawn from both parties in
// the quote asset before the exchange; a maker-side failure refunds the fees,
// removes the maker's order and reports zero matched so the taker keeps
// walking the book.
func (e *Engine) matchTwoOrders(
	taker uuid.UUID,
	takerRest numeric.Value,
	maker Order,
	asset assets.Asset,
	data assets.Data,
) (numeric.Value, error) {
	exchange := takerRest
	if maker.Amount.LT(exchange) {
		exchange = maker.Amount
	}
	if exchange.IsZero() {
		return numeric.Zero(), nil
	}
	priceV, ok := maker.Price.Value()
	if !ok {
		return numeric.Zero(), ErrOrderPriceShouldBePositive
	}
	usd, ok := exchange.CheckedMul(priceV)
	if !ok {
		return numeric.Zero(), ErrNotionalOverflow
	}
	makerFee := assets.FeePPM(usd, data.MakerFeePPM)
	takerFee := assets.FeePPM(usd, data.TakerFeePPM)

	if err := e.balances.Withdraw(taker, assets.EQD, takerFee); err != nil {
		return numeric.Zero(), err
	}
	if err := e.balances.Withdraw(maker.Account, assets.EQD, makerFee); err != nil {
		e.refund(taker, takerFee)
		if derr := e.DeleteOrder(asset, maker.OrderID, maker.Price, DeleteReasonMakerError); derr != nil {
			panic(fmt.Sprintf("FATAL: cannot remove defaulted maker order: %v", derr))
		}
		return numeric.Zero(), nil
	}

	// Taker buys: quote against base. Taker sells: base against quote.
	var xerr error
	if maker.Side == SideSell {
		xerr = e.balances.Exchange(taker, maker.Account, assets.EQD, usd, asset, exchange)
	} else {
		xerr = e.balances.Exchange(taker, maker.Account, asset, exchange, assets.EQD, usd)
	}
	if xerr != nil {
		e.refund(taker, takerFee)
		e.refund(maker.Account, makerFee)
		var ex *balance.ExchangeError
		if errors.As(xerr, &ex) && ex.Side == balance.ExchangeSideSecond {
			if derr := e.DeleteOrder(asset, maker.OrderID, maker.Price, DeleteReasonMakerError); derr != nil {
				panic(fmt.Sprintf("FATAL: cannot remove defaulted maker order: %v", derr))
			}
			return numeric.Zero(), nil
		}
		return numeric.Zero(), xerr
	}

	fees := makerFee.SaturatingAdd(takerFee)
	if err := e.balances.ApplyUnchecked(e.treasuryAcc, assets.EQD, balance.Positive(fees)); err != nil {
		panic(fmt.Sprintf("FATAL: treasury fee credit failed: %v", err))
	}

	if maker.Amount.Cmp(exchange) == 0 {
		if err := e.DeleteOrder(asset, maker.OrderID, maker.Price, DeleteReasonMatch); err != nil {
			panic(fmt.Sprintf("FATAL: cannot remove consumed maker order: %v", err))
		}
	} else {
		e.shrinkOrder(asset, maker, exchange, data)
	}
	return exchange, nil
}

func (e *Engine) refund(who uuid.UUID, amount numeric.Value) {
	if amount.IsZero() {
		return
	}
	if err := e.balances.ApplyUnchecked(who, assets.EQD, balance.Positive(amount)); err != nil {
		panic(fmt.Sprintf("FATAL: fee refund failed: %v", err))
	}
}

// shrinkOrder reduces a partially filled maker in place and decrements its
// owner's weight by the filled amount only.
func (e *Engine) shrinkOrder(asset assets.Asset, maker Order, filled numeric.Value, data assets.Data) {
	key, err := e.ChunkKeyFor(maker.Price, data.PriceStep)
	if err != nil {
		panic(fmt.Sprintf("FATAL: resting order with unbucketable price: %v", err))
	}
	b := e.bookFor(asset)
	orders := b.chunks[key]
	idx, found := findInChunk(orders, maker.Price, maker.OrderID)
	if !found {
		panic("FATAL: partially filled order missing from its chunk")
	}
	orders[idx].Amount = orders[idx].Amount.SaturatingSub(filled)
	e.journal = append(e.journal, BookChange{Kind: BookChangeReduced, Asset: asset, Order: orders[idx]})
	e.subWeight(maker.Account, asset, filled, maker.Price, maker.Side)
}

// ============================================================================
// Deletion and lookup
// ============================================================================

func findInChunk(orders []Order, price numeric.Price, orderID uint64) (int, bool) {
	idx := sort.Search(len(orders), func(i int) bool {
		o := orders[i]
		if o.Price != price {
			return o.Price >= price
		}
		return o.OrderID >= orderID
	})
	if idx < len(orders) && orders[idx].Price == price && orders[idx].OrderID == orderID {
		return idx, true
	}
	return 0, false
}

// FindOrder locates a resting order by its (asset, id, price) coordinates.
func (e *Engine) FindOrder(asset assets.Asset, orderID uint64, price numeric.Price) (Order, bool) {
	data, err := e.registry.Get(asset)
	if err != nil {
		return Order{}, false
	}
	key, err := e.ChunkKeyFor(price, data.PriceStep)
	if err != nil {
		return Order{}, false
	}
	orders := e.bookFor(asset).chunks[key]
	idx, found := findInChunk(orders, price, orderID)
	if !found {
		return Order{}, false
	}
	return orders[idx], true
}

// DeleteOrder removes a resting order, repairs the best-price cache if the
// removed order held it, drops the chunk from the index when emptied, and
// decrements the owner's weight.
func (e *Engine) DeleteOrder(asset assets.Asset, orderID uint64, price numeric.Price, reason DeleteReason) error {
	data, err := e.registry.Get(asset)
	if err != nil {
		return err
	}
	key, err := e.ChunkKeyFor(price, data.PriceStep)
	if err != nil {
		return err
	}
	b := e.bookFor(asset)
	orders := b.chunks[key]
	idx, found := findInChunk(orders, price, orderID)
	if !found {
		return ErrOrderNotFound
	}
	removed := orders[idx]
	orders = append(orders[:idx], orders[idx+1:]...)
	if len(orders) == 0 {
		delete(b.chunks, key)
		ki := sort.Search(len(b.keys), func(i int) bool { return b.keys[i] >= key })
		if ki == len(b.keys) || b.keys[ki] != key {
			panic("FATAL: order book chunk index out of sync")
		}
		b.keys = append(b.keys[:ki], b.keys[ki+1:]...)
	} else {
		b.chunks[key] = orders
	}

	switch {
	case removed.Side == SideSell && b.hasAsk && removed.Price == b.ask:
		b.ask, b.hasAsk = e.rescanAsk(b, orders, key)
	case removed.Side == SideBuy && b.hasBid && removed.Price == b.bid:
		b.bid, b.hasBid = e.rescanBid(b, orders, key)
	}

	e.subWeight(removed.Account, asset, removed.Amount, removed.Price, removed.Side)
	e.journal = append(e.journal, BookChange{Kind: BookChangeDeleted, Asset: asset, Order: removed, Reason: reason})
	return nil
}

// rescanAsk finds the lowest Sell price in the remainder of the removal
// chunk, then in ascending higher chunks.
func (e *Engine) rescanAsk(b *book, current []Order, key ChunkKey) (numeric.Price, bool) {
	for _, o := range current {
		if o.Side == SideSell {
			return o.Price, true
		}
	}
	for _, k := range b.keys {
		if k <= key {
			continue
		}
		for _, o := range b.chunks[k] {
			if o.Side == SideSell {
				return o.Price, true
			}
		}
	}
	return 0, false
}

// rescanBid finds the highest Buy price in the remainder of the removal
// chunk, then in descending lower chunks.
func (e *Engine) rescanBid(b *book, current []Order, key ChunkKey) (numeric.Price, bool) {
	for i := len(current) - 1; i >= 0; i-- {
		if current[i].Side == SideBuy {
			return current[i].Price, true
		}
	}
	for i := len(b.keys) - 1; i >= 0; i-- {
		k := b.keys[i]
		if k >= key {
			continue
		}
		orders := b.chunks[k]
		for j := len(orders) - 1; j >= 0; j-- {
			if orders[j].Side == SideBuy {
				return orders[j].Price, true
			}
		}
	}
	return 0, false
}

// BestPrice returns the cached best bid and ask for an asset.
func (e *Engine) BestPrice(asset assets.Asset) (bid, ask numeric.Price, hasBid, hasAsk bool) {
	b := e.bookFor(asset)
	return b.bid, b.ask, b.hasBid, b.hasAsk
}

// ============================================================================
// Order-weight aggregates
// ============================================================================

func (e *Engine) addWeight(who uuid.UUID, asset assets.Asset, amount numeric.Value, price numeric.Price, side Side) error {
	priceV, ok := price.Value()
	if !ok {
		return ErrOrderPriceShouldBePositive
	}
	notional, ok := amount.CheckedMul(priceV)
	if !ok {
		return ErrNotionalOverflow
	}
	perAsset, exists := e.weights[who]
	if !exists {
		perAsset = make(map[assets.Asset]*aggregateBySide)
		e.weights[who] = perAsset
	}
	agg, exists := perAsset[asset]
	if !exists {
		agg = &aggregateBySide{}
		perAsset[asset] = agg
	}
	target := &agg.buy
	if side == SideSell {
		target = &agg.sell
	}
	target.amount = target.amount.SaturatingAdd(amount)
	target.amountByPrice = target.amountByPrice.SaturatingAdd(notional)
	return nil
}

func (e *Engine) subWeight(who uuid.UUID, asset assets.Asset, amount numeric.Value, price numeric.Price, side Side) {
	perAsset := e.weights[who]
	if perAsset == nil {
		return
	}
	agg := perAsset[asset]
	if agg == nil {
		return
	}
	priceV, _ := price.Value()
	notional, _ := amount.CheckedMul(priceV)
	target := &agg.buy
	if side == SideSell {
		target = &agg.sell
	}
	target.amount = target.amount.SaturatingSub(amount)
	target.amountByPrice = target.amountByPrice.SaturatingSub(notional)
	if agg.isZero() {
		delete(perAsset, asset)
		if len(perAsset) == 0 {
			delete(e.weights, who)
		}
	}
}

// AssetWeights exposes the open-order exposure of an account in asset order.
// This is what the margin fill scenarios fold in.
func (e *Engine) AssetWeights(who uuid.UUID) []margin.AssetWeight {
	perAsset := e.weights[who]
	if len(perAsset) == 0 {
		return nil
	}
	out := make([]margin.AssetWeight, 0, len(perAsset))
	for asset, agg := range perAsset {
		out = append(out, margin.AssetWeight{
			Asset: asset,
			Buy:   margin.SideWeight{Amount: agg.buy.amount, AmountByPrice: agg.buy.amountByPrice},
			Sell:  margin.SideWeight{Amount: agg.sell.amount, AmountByPrice: agg.sell.amountByPrice},
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Asset < out[j].Asset })
	return out
}

// ============================================================================
// Risk sweep support
// ============================================================================

// UnfitOrder is one advisory deletion candidate.
type UnfitOrder struct {
	Asset   assets.Asset
	OrderID uint64
	Price   numeric.Price
	Account uuid.UUID
	Reason  DeleteReason
}

// UnfitOrders scans every book for orders that should leave: expired,
// trading-disabled, out of corridor, or owned by an account in a bad margin
// state. Results are deduplicated by (asset, order id) and returned in
// deterministic order; the advisory workers shard and submit them.
func (e *Engine) UnfitOrders(now int64) []UnfitOrder {
	type dedupKey struct {
		asset assets.Asset
		id    uint64
	}
	seen := make(map[dedupKey]struct{})
	var out []UnfitOrder
	add := func(u UnfitOrder) {
		k := dedupKey{asset: u.Asset, id: u.OrderID}
		if _, dup := seen[k]; dup {
			return
		}
		seen[k] = struct{}{}
		out = append(out, u)
	}

	assetOrder := make([]assets.Asset, 0, len(e.books))
	for asset := range e.books {
		assetOrder = append(assetOrder, asset)
	}
	sort.Slice(assetOrder, func(i, j int) bool { return assetOrder[i] < assetOrder[j] })

	accountsWithOrders := make(map[uuid.UUID][]UnfitOrder)
	for _, asset := range assetOrder {
		b := e.books[asset]
		data, err := e.registry.Get(asset)
		if err != nil {
			continue
		}
		for _, key := range b.keys {
			for _, o := range b.chunks[key] {
				switch {
				case !data.DexEnabled:
					add(UnfitOrder{asset, o.OrderID, o.Price, o.Account, DeleteReasonDisabled})
				case o.ExpiresAt > 0 && now >= o.ExpiresAt:
					add(UnfitOrder{asset, o.OrderID, o.Price, o.Account, DeleteReasonExpired})
				case e.EnsureOrderInCorridor(asset, o.Price) != nil:
					add(UnfitOrder{asset, o.OrderID, o.Price, o.Account, DeleteReasonOutOfCorridor})
				}
				accountsWithOrders[o.Account] = append(accountsWithOrders[o.Account],
					UnfitOrder{asset, o.OrderID, o.Price, o.Account, DeleteReasonMarginCall})
			}
		}
	}

	accounts := make([]uuid.UUID, 0, len(accountsWithOrders))
	for who := range accountsWithOrders {
		accounts = append(accounts, who)
	}
	sort.Slice(accounts, func(i, j int) bool {
		a, b := accounts[i], accounts[j]
		for k := 0; k < len(a); k++ {
			if a[k] != b[k] {
				return a[k] < b[k]
			}
		}
		return false
	})
	for _, who := range accounts {
		state, _, err := e.margin.CheckMarginWithChange(who, nil)
		if err != nil {
			continue
		}
		if state == margin.MarginStateGood || state == margin.MarginStateSubGood {
			continue
		}
		for _, u := range accountsWithOrders[who] {
			add(u)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Asset != out[j].Asset {
			return out[i].Asset < out[j].Asset
		}
		return out[i].OrderID < out[j].OrderID
	})
	return out
}

// ============================================================================
// Snapshot support
// ============================================================================

// OrderRow is one exported resting order.
type OrderRow struct {
	Asset assets.Asset
	Order Order
}

// CorridorRow is one per-asset corridor override.
type CorridorRow struct {
	Asset assets.Asset
	Width uint32
}

// State is the full exported book state.
type State struct {
	Orders      []OrderRow
	Corridors   []CorridorRow
	NextOrderID uint64
}

func (e *Engine) Snapshot() State {
	var st State
	st.NextOrderID = e.nextOrderID

	assetOrder := make([]assets.Asset, 0, len(e.books))
	for asset := range e.books {
		assetOrder = append(assetOrder, asset)
	}
	sort.Slice(assetOrder, func(i, j int) bool { return assetOrder[i] < assetOrder[j] })
	for _, asset := range assetOrder {
		b := e.books[asset]
		for _, key := range b.keys {
			for _, o := range b.chunks[key] {
				st.Orders = append(st.Orders, OrderRow{Asset: asset, Order: o})
			}
		}
	}

	for asset, width := range e.corridors {
		st.Corridors = append(st.Corridors, CorridorRow{Asset: asset, Width: width})
	}
	sort.Slice(st.Corridors, func(i, j int) bool { return st.Corridors[i].Asset < st.Corridors[j].Asset })
	return st
}

// Restore rebuilds the books, chunk indexes, best-price caches and weights
// from an exported state.
func (e *Engine) Restore(st State) error {
	e.books = make(map[assets.Asset]*book)
	e.weights = make(map[uuid.UUID]map[assets.Asset]*aggregateBySide)
	e.corridors = make(map[assets.Asset]uint32)
	e.nextOrderID = st.NextOrderID

	for _, row := range st.Corridors {
		e.corridors[row.Asset] = row.Width
	}
	for _, row := range st.Orders {
		data, err := e.registry.Get(row.Asset)
		if err != nil {
			return err
		}
		key, err := e.ChunkKeyFor(row.Order.Price, data.PriceStep)
		if err != nil {
			return err
		}
		e.insertOrder(row.Asset, key, row.Order)
		if err := e.addWeight(row.Order.Account, row.Asset, row.Order.Amount, row.Order.Price, row.Order.Side); err != nil {
			return err
		}
	}
	// Restored orders are not mutations
	e.journal = nil
	return nil
}
