package event

import (
	"github.com/google/uuid"

	"EqCore/internal/assets"
	"EqCore/internal/numeric"
)

// OrderSide is the wire-level book side.
type OrderSide int32

const (
	OrderSideUnknown OrderSide = iota
	OrderSideBuy
	OrderSideSell
)

// OrderKind is the wire-level order type.
type OrderKind int32

const (
	OrderKindLimit OrderKind = iota
	OrderKindMarket
)

// CreateOrder places an order on the book. Market orders carry no limit
// price and never rest.
type CreateOrder struct {
	RequestID  uuid.UUID // Idempotency key
	Who        uuid.UUID
	Asset      assets.Asset
	Side       OrderSide
	Kind       OrderKind
	LimitPrice numeric.Price // Ignored for market orders
	Amount     numeric.Value
	ExpiresAt  int64 // Unix seconds, 0 for good-till-cancel
	Sequence   int64
}

func (c *CreateOrder) IdempotencyKey() string {
	return c.RequestID.String()
}

func (c *CreateOrder) EventType() EventType {
	return EventTypeCreateOrder
}

func (c *CreateOrder) PartitionKey() *string {
	k := "dex:" + c.Asset.String()
	return &k
}

func (c *CreateOrder) SourceSequence() int64 {
	return c.Sequence
}

// DeleteReason is the wire-level removal cause. User submissions carry
// Cancel; advisory submissions carry the sweep cause.
type DeleteReason int32

const (
	DeleteReasonCancel DeleteReason = iota
	DeleteReasonOutOfCorridor
	DeleteReasonExpired
	DeleteReasonMarginCall
)

// DeleteOrder removes a resting order. Price locates the chunk without a
// full book scan.
type DeleteOrder struct {
	RequestID      uuid.UUID
	Who            uuid.UUID
	Asset          assets.Asset
	OrderID        uint64
	Price          numeric.Price
	Reason         DeleteReason
	AuthorityIndex uint32 // Set on advisory submissions
	Sequence       int64
}

func (d *DeleteOrder) IdempotencyKey() string {
	return d.RequestID.String()
}

func (d *DeleteOrder) EventType() EventType {
	return EventTypeDeleteOrder
}

func (d *DeleteOrder) PartitionKey() *string {
	k := "dex:" + d.Asset.String()
	return &k
}

func (d *DeleteOrder) SourceSequence() int64 {
	return d.Sequence
}
