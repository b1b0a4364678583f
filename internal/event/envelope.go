package event

import (
	"time"
)

// EventType discriminator for extrinsic payloads
type EventType int32

const (
	EventTypeUnknown EventType = iota
	EventTypeTransfer
	EventTypeDeposit
	EventTypeWithdraw
	EventTypeRegisterBailsman
	EventTypeUnregisterBailsman
	EventTypeRedistribute
	EventTypeCreateOrder
	EventTypeDeleteOrder
	EventTypeReinit
	EventTypePriceUpdate
	EventTypeAssetUpdate
	EventTypeBlockFinalize
)

// EventEnvelope wraps every extrinsic in the log
type EventEnvelope struct {
	// Global monotonic sequence assigned by core
	Sequence int64

	// Stable idempotency key from upstream
	IdempotencyKey string

	// Event type discriminator
	EventType EventType

	// Ordering partition (nullable for global extrinsics)
	PartitionKey *string

	// Versioned input timestamp (NOT wall-clock)
	Timestamp time.Time

	// Upstream sequence for ordering validation
	SourceSequence int64

	// Encoded event-specific data
	Payload []byte

	// SHA-256 of state AFTER applying this event
	StateHash [32]byte

	// Previous event's state hash (chain integrity)
	PrevHash [32]byte
}

// Event is the interface all extrinsic payloads must implement
type Event interface {
	// IdempotencyKey returns the stable dedup key
	IdempotencyKey() string

	// EventType returns the discriminator
	EventType() EventType

	// PartitionKey returns the ordering partition (nil for global extrinsics)
	PartitionKey() *string

	// SourceSequence returns upstream ordering key
	SourceSequence() int64
}

func (et EventType) String() string {
	switch et {
	case EventTypeTransfer:
		return "Transfer"
	case EventTypeDeposit:
		return "Deposit"
	case EventTypeWithdraw:
		return "Withdraw"
	case EventTypeRegisterBailsman:
		return "RegisterBailsman"
	case EventTypeUnregisterBailsman:
		return "UnregisterBailsman"
	case EventTypeRedistribute:
		return "Redistribute"
	case EventTypeCreateOrder:
		return "CreateOrder"
	case EventTypeDeleteOrder:
		return "DeleteOrder"
	case EventTypeReinit:
		return "Reinit"
	case EventTypePriceUpdate:
		return "PriceUpdate"
	case EventTypeAssetUpdate:
		return "AssetUpdate"
	case EventTypeBlockFinalize:
		return "BlockFinalize"
	default:
		return "Unknown"
	}
}
