package persistence

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// execer abstracts *sql.DB and *sql.Tx so batch writes run inside the
// worker's transaction.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// EventLogWriter writes envelopes and balance deltas to Postgres using
// multi-row INSERT. Batches are idempotent: replayed rows hit the conflict
// target and drop out.
type EventLogWriter struct {
	db *sql.DB
}

// EventRow represents a row in event_log.events.
type EventRow struct {
	Sequence       int64
	EventType      string
	IdempotencyKey string
	PartitionKey   *string
	Payload        []byte // JSON-encoded extrinsic payload
	StateHash      []byte
	PrevHash       []byte
	Timestamp      time.Time
	SourceSequence int64
}

// DeltaRow represents a row in event_log.journal: the resulting signed
// balance of one (account, asset) touched by an event. Balances are stored
// as fixed-point decimal text so the full 128-bit magnitude survives.
type DeltaRow struct {
	Sequence int64
	Account  string
	AssetID  uint16
	Balance  string
	Negative bool
}

func NewEventLogWriter(db *sql.DB) *EventLogWriter {
	return &EventLogWriter{db: db}
}

// WriteEventBatch writes a batch of envelopes to event_log.events.
func (w *EventLogWriter) WriteEventBatch(ctx context.Context, ex execer, events []EventRow) error {
	if len(events) == 0 {
		return nil
	}

	query := `INSERT INTO event_log.events
		(sequence, event_type, idempotency_key, partition_key, payload, state_hash, prev_hash, timestamp, source_sequence)
		VALUES `

	values := make([]string, 0, len(events))
	args := make([]any, 0, len(events)*9)

	for i, e := range events {
		base := i * 9
		values = append(values, fmt.Sprintf(
			"($%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d)",
			base+1, base+2, base+3, base+4, base+5, base+6, base+7, base+8, base+9,
		))
		// payload is JSONB; pq encodes []byte as bytea, so send text
		args = append(args,
			e.Sequence, e.EventType, e.IdempotencyKey, e.PartitionKey,
			string(e.Payload), e.StateHash, e.PrevHash, e.Timestamp, e.SourceSequence,
		)
	}

	query += strings.Join(values, ", ")
	query += " ON CONFLICT (sequence) DO NOTHING"

	_, err := ex.ExecContext(ctx, query, args...)
	return err
}

// WriteDeltaBatch writes a batch of balance deltas to event_log.journal.
func (w *EventLogWriter) WriteDeltaBatch(ctx context.Context, ex execer, deltas []DeltaRow) error {
	if len(deltas) == 0 {
		return nil
	}

	query := `INSERT INTO event_log.journal
		(sequence, account, asset_id, balance, negative)
		VALUES `

	values := make([]string, 0, len(deltas))
	args := make([]any, 0, len(deltas)*5)

	for i, d := range deltas {
		base := i * 5
		values = append(values, fmt.Sprintf(
			"($%d, $%d, $%d, $%d, $%d)",
			base+1, base+2, base+3, base+4, base+5,
		))
		args = append(args, d.Sequence, d.Account, d.AssetID, d.Balance, d.Negative)
	}

	query += strings.Join(values, ", ")
	query += " ON CONFLICT (sequence, account, asset_id) DO NOTHING"

	_, err := ex.ExecContext(ctx, query, args...)
	return err
}

// MarshalEventPayload serializes an extrinsic payload to JSON for storage.
func MarshalEventPayload(payload any) ([]byte, error) {
	return json.Marshal(payload)
}
