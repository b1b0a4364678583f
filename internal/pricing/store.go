package pricing

import (
	"fmt"
	"sort"

	"EqCore/internal/assets"
	"EqCore/internal/numeric"
)

// Getter is the price capability every engine consumes.
type Getter interface {
	GetPrice(asset assets.Asset) (numeric.Price, error)
}

var (
	ErrPriceNotFound     = fmt.Errorf("price not found")
	ErrPriceNotPositive  = fmt.Errorf("price is zero or negative")
	ErrPricesAreOutdated = fmt.Errorf("prices are outdated")
)

type entry struct {
	price     numeric.Price
	updatedAt int64 // unix seconds, from block time
}

// Store is the oracle price cache, written only by PriceUpdate extrinsics on
// the deterministic core. Staleness is judged against block time, never
// wall clock, so replay stays deterministic.
type Store struct {
	prices        map[assets.Asset]entry
	blockTime     int64
	stalenessSecs int64
}

func NewStore(stalenessSecs int64) *Store {
	return &Store{
		prices:        make(map[assets.Asset]entry),
		stalenessSecs: stalenessSecs,
	}
}

// SetBlockTime advances the deterministic clock.
func (s *Store) SetBlockTime(unixSecs int64) {
	s.blockTime = unixSecs
}

// BlockTime returns the deterministic clock.
func (s *Store) BlockTime() int64 { return s.blockTime }

// SetPrice records an oracle quote. Non-positive quotes are rejected at the
// ingestion boundary and again here.
func (s *Store) SetPrice(asset assets.Asset, price numeric.Price) error {
	if !price.IsPositive() {
		return fmt.Errorf("%w: %s = %s", ErrPriceNotPositive, asset, price)
	}
	s.prices[asset] = entry{price: price, updatedAt: s.blockTime}
	return nil
}

// GetPrice returns the current quote; fails on missing, non-positive or
// stale entries.
func (s *Store) GetPrice(asset assets.Asset) (numeric.Price, error) {
	e, ok := s.prices[asset]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrPriceNotFound, asset)
	}
	if !e.price.IsPositive() {
		return 0, fmt.Errorf("%w: %s", ErrPriceNotPositive, asset)
	}
	if s.stalenessSecs > 0 && s.blockTime-e.updatedAt > s.stalenessSecs {
		return 0, fmt.Errorf("%w: %s (age %ds)", ErrPricesAreOutdated, asset, s.blockTime-e.updatedAt)
	}
	return e.price, nil
}

// AssetPrice is one snapshot row.
type AssetPrice struct {
	Asset assets.Asset
	Price numeric.Price
}

// SnapshotFor captures current quotes for a set of assets, sorted by asset
// so consumers can binary search. Fails if any asset has no usable quote.
func (s *Store) SnapshotFor(list []assets.Asset) ([]AssetPrice, error) {
	seen := make(map[assets.Asset]struct{}, len(list))
	out := make([]AssetPrice, 0, len(list))
	for _, a := range list {
		if _, dup := seen[a]; dup {
			continue
		}
		seen[a] = struct{}{}
		p, err := s.GetPrice(a)
		if err != nil {
			return nil, err
		}
		out = append(out, AssetPrice{Asset: a, Price: p})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Asset < out[j].Asset })
	return out, nil
}

// FindSnapshotPrice binary-searches a sorted snapshot.
func FindSnapshotPrice(snapshot []AssetPrice, asset assets.Asset) (numeric.Price, bool) {
	i := sort.Search(len(snapshot), func(i int) bool { return snapshot[i].Asset >= asset })
	if i < len(snapshot) && snapshot[i].Asset == asset {
		return snapshot[i].Price, true
	}
	return 0, false
}

// Snapshot exports every stored quote for persistence.
func (s *Store) Snapshot() []AssetPrice {
	out := make([]AssetPrice, 0, len(s.prices))
	for a, e := range s.prices {
		out = append(out, AssetPrice{Asset: a, Price: e.price})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Asset < out[j].Asset })
	return out
}

// Restore reloads quotes, stamping them at the current block time.
func (s *Store) Restore(rows []AssetPrice) {
	s.prices = make(map[assets.Asset]entry, len(rows))
	for _, row := range rows {
		s.prices[row.Asset] = entry{price: row.Price, updatedAt: s.blockTime}
	}
}
