package event

import "github.com/google/uuid"

// RegisterBailsman opts an account into the bailout pool.
type RegisterBailsman struct {
	RequestID uuid.UUID // Idempotency key
	Who       uuid.UUID
	Sequence  int64
}

func (r *RegisterBailsman) IdempotencyKey() string {
	return r.RequestID.String()
}

func (r *RegisterBailsman) EventType() EventType {
	return EventTypeRegisterBailsman
}

func (r *RegisterBailsman) PartitionKey() *string {
	return nil
}

func (r *RegisterBailsman) SourceSequence() int64 {
	return r.Sequence
}

// UnregisterBailsman opts an account out of the bailout pool. Rejected while
// the account still carries undistributed pool portions.
type UnregisterBailsman struct {
	RequestID uuid.UUID
	Who       uuid.UUID
	Sequence  int64
}

func (u *UnregisterBailsman) IdempotencyKey() string {
	return u.RequestID.String()
}

func (u *UnregisterBailsman) EventType() EventType {
	return EventTypeUnregisterBailsman
}

func (u *UnregisterBailsman) PartitionKey() *string {
	return nil
}

func (u *UnregisterBailsman) SourceSequence() int64 {
	return u.Sequence
}

// Redistribute is the advisory request to materialize a bailsman's queued
// distributions. Submitted by offchain workers; harmless to repeat.
type Redistribute struct {
	RequestID      uuid.UUID
	Who            uuid.UUID
	AuthorityIndex uint32
	Sequence       int64
}

func (r *Redistribute) IdempotencyKey() string {
	return r.RequestID.String()
}

func (r *Redistribute) EventType() EventType {
	return EventTypeRedistribute
}

func (r *Redistribute) PartitionKey() *string {
	return nil
}

func (r *Redistribute) SourceSequence() int64 {
	return r.Sequence
}
