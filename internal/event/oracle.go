package event

import (
	"github.com/google/uuid"

	"EqCore/internal/assets"
	"EqCore/internal/numeric"
)

// PriceUpdate is one oracle quote. Ordered per feed partition so a lagging
// feed cannot reorder another asset's quotes.
type PriceUpdate struct {
	UpdateID     uuid.UUID // Idempotency key
	Asset        assets.Asset
	Price        numeric.Price
	FeedSequence int64
}

func (p *PriceUpdate) IdempotencyKey() string {
	return p.UpdateID.String()
}

func (p *PriceUpdate) EventType() EventType {
	return EventTypePriceUpdate
}

func (p *PriceUpdate) PartitionKey() *string {
	k := "prices:" + p.Asset.String()
	return &k
}

func (p *PriceUpdate) SourceSequence() int64 {
	return p.FeedSequence
}

// AssetUpdate changes the tradable parameters of one asset.
type AssetUpdate struct {
	UpdateID           uuid.UUID
	Asset              assets.Asset
	LotSize            numeric.Value
	PriceStep          numeric.Price
	MakerFeePPM        uint32
	TakerFeePPM        uint32
	CollateralDiscount uint8
	DexEnabled         bool
	Sequence           int64
}

func (a *AssetUpdate) IdempotencyKey() string {
	return a.UpdateID.String()
}

func (a *AssetUpdate) EventType() EventType {
	return EventTypeAssetUpdate
}

func (a *AssetUpdate) PartitionKey() *string {
	return nil
}

func (a *AssetUpdate) SourceSequence() int64 {
	return a.Sequence
}
