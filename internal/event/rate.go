package event

import "github.com/google/uuid"

// Reinit is the advisory request to settle accrued fees for one borrower
// and refresh its margin state. Submitted by offchain workers.
type Reinit struct {
	RequestID      uuid.UUID // Idempotency key
	Who            uuid.UUID
	AuthorityIndex uint32
	Sequence       int64
}

func (r *Reinit) IdempotencyKey() string {
	return r.RequestID.String()
}

func (r *Reinit) EventType() EventType {
	return EventTypeReinit
}

func (r *Reinit) PartitionKey() *string {
	return nil
}

func (r *Reinit) SourceSequence() int64 {
	return r.Sequence
}
