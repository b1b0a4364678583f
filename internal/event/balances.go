package event

import (
	"github.com/google/uuid"

	"EqCore/internal/assets"
	"EqCore/internal/numeric"
)

// Transfer moves amount between two accounts.
// Idempotency key: transaction_id (UUID from the gateway).
type Transfer struct {
	TransactionID uuid.UUID // Idempotency key
	From          uuid.UUID
	To            uuid.UUID
	Asset         assets.Asset
	Amount        numeric.Value
	Sequence      int64
}

func (t *Transfer) IdempotencyKey() string {
	return t.TransactionID.String()
}

func (t *Transfer) EventType() EventType {
	return EventTypeTransfer
}

func (t *Transfer) PartitionKey() *string {
	return nil // Global extrinsic
}

func (t *Transfer) SourceSequence() int64 {
	return t.Sequence
}

// Deposit credits an account from an external source.
type Deposit struct {
	TransactionID uuid.UUID
	Who           uuid.UUID
	Asset         assets.Asset
	Amount        numeric.Value
	Sequence      int64
}

func (d *Deposit) IdempotencyKey() string {
	return d.TransactionID.String()
}

func (d *Deposit) EventType() EventType {
	return EventTypeDeposit
}

func (d *Deposit) PartitionKey() *string {
	return nil
}

func (d *Deposit) SourceSequence() int64 {
	return d.Sequence
}

// Withdraw debits an account toward an external destination. The balance
// gates decide whether the account may go into debt.
type Withdraw struct {
	TransactionID uuid.UUID
	Who           uuid.UUID
	Asset         assets.Asset
	Amount        numeric.Value
	Sequence      int64
}

func (w *Withdraw) IdempotencyKey() string {
	return w.TransactionID.String()
}

func (w *Withdraw) EventType() EventType {
	return EventTypeWithdraw
}

func (w *Withdraw) PartitionKey() *string {
	return nil
}

func (w *Withdraw) SourceSequence() int64 {
	return w.Sequence
}
