package assets

import (
	"fmt"
	"sort"

	"EqCore/internal/numeric"
)

// Asset is a compact asset identifier used on every hot path.
type Asset uint16

// Well-known assets. EQ is the native asset, EQD the synthetic unit of
// account every notional is quoted in.
const (
	EQ  Asset = 1
	EQD Asset = 2
	BTC Asset = 3
	ETH Asset = 4
	DOT Asset = 5
)

// Kind classifies assets for fee routing: lender fees accrue only against
// physical assets, the synthetic EQD leg is weighted separately.
type Kind int

const (
	KindNative Kind = iota
	KindPhysical
	KindSynthetic
)

// Data holds the per-asset trading and risk parameters.
type Data struct {
	Asset              Asset
	Name               string
	Kind               Kind
	LotSize            numeric.Value
	PriceStep          numeric.Price
	MakerFeePPM        uint32
	TakerFeePPM        uint32
	CollateralDiscount uint8 // percent of value counted as collateral
	DexEnabled         bool
	BuyoutPriority     uint64 // lower is liquidated into the pool first
}

// Registry is the asset metadata store. Reads dominate; updates arrive only
// through the AssetUpdate extrinsic on the single-threaded core.
type Registry struct {
	byID   map[Asset]Data
	byName map[string]Asset
}

var ErrAssetNotFound = fmt.Errorf("asset not found")

func NewRegistry(seed []Data) *Registry {
	r := &Registry{
		byID:   make(map[Asset]Data, len(seed)),
		byName: make(map[string]Asset, len(seed)),
	}
	for _, d := range seed {
		r.byID[d.Asset] = d
		r.byName[d.Name] = d.Asset
	}
	return r
}

// DefaultRegistry seeds the standard asset set.
func DefaultRegistry() *Registry {
	lot := numeric.SaturatingFromRational(1, 10)
	step := numeric.PriceFromRational(1, 100)
	return NewRegistry([]Data{
		{Asset: EQ, Name: "EQ", Kind: KindNative, LotSize: lot, PriceStep: step,
			MakerFeePPM: 500, TakerFeePPM: 1000, CollateralDiscount: 90, DexEnabled: true, BuyoutPriority: 1},
		{Asset: EQD, Name: "EQD", Kind: KindSynthetic, LotSize: lot, PriceStep: step,
			MakerFeePPM: 500, TakerFeePPM: 1000, CollateralDiscount: 100, DexEnabled: false, BuyoutPriority: 2},
		{Asset: BTC, Name: "BTC", Kind: KindPhysical, LotSize: lot, PriceStep: step,
			MakerFeePPM: 500, TakerFeePPM: 1000, CollateralDiscount: 95, DexEnabled: true, BuyoutPriority: 3},
		{Asset: ETH, Name: "ETH", Kind: KindPhysical, LotSize: lot, PriceStep: step,
			MakerFeePPM: 500, TakerFeePPM: 1000, CollateralDiscount: 95, DexEnabled: true, BuyoutPriority: 4},
		{Asset: DOT, Name: "DOT", Kind: KindPhysical, LotSize: lot, PriceStep: step,
			MakerFeePPM: 500, TakerFeePPM: 1000, CollateralDiscount: 90, DexEnabled: true, BuyoutPriority: 5},
	})
}

func (r *Registry) Get(a Asset) (Data, error) {
	d, ok := r.byID[a]
	if !ok {
		return Data{}, fmt.Errorf("%w: %d", ErrAssetNotFound, a)
	}
	return d, nil
}

func (r *Registry) GetByName(name string) (Data, error) {
	a, ok := r.byName[name]
	if !ok {
		return Data{}, fmt.Errorf("%w: %s", ErrAssetNotFound, name)
	}
	return r.byID[a], nil
}

// Update inserts or replaces asset parameters.
func (r *Registry) Update(d Data) {
	if old, ok := r.byID[d.Asset]; ok && old.Name != d.Name {
		delete(r.byName, old.Name)
	}
	r.byID[d.Asset] = d
	r.byName[d.Name] = d.Asset
}

// List returns all assets in deterministic id order.
func (r *Registry) List() []Data {
	out := make([]Data, 0, len(r.byID))
	for _, d := range r.byID {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Asset < out[j].Asset })
	return out
}

// ListByBuyoutPriority returns all assets ordered for liquidation intake.
func (r *Registry) ListByBuyoutPriority() []Data {
	out := r.List()
	sort.SliceStable(out, func(i, j int) bool { return out[i].BuyoutPriority < out[j].BuyoutPriority })
	return out
}

// Discounted applies the collateral discount, rounding down.
func (d Data) Discounted(v numeric.Value) numeric.Value {
	r, ok := v.CheckedMulInt(uint64(d.CollateralDiscount))
	if !ok {
		return numeric.Max()
	}
	r, _ = r.CheckedDivInt(100)
	return r
}

// FeePPM computes a parts-per-million fee on a notional, rounding down.
func FeePPM(notional numeric.Value, ppm uint32) numeric.Value {
	r, ok := notional.CheckedMulInt(uint64(ppm))
	if !ok {
		return numeric.Max()
	}
	r, _ = r.CheckedDivInt(1_000_000)
	return r
}

func (a Asset) String() string {
	switch a {
	case EQ:
		return "EQ"
	case EQD:
		return "EQD"
	case BTC:
		return "BTC"
	case ETH:
		return "ETH"
	case DOT:
		return "DOT"
	default:
		return fmt.Sprintf("asset-%d", uint16(a))
	}
}
