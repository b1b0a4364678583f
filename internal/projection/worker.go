// Package projection maintains the Postgres read models: signed balances,
// group aggregates, open orders, oracle best prices, applied distributions
// and the fee history. The feed is the core's non-blocking projection
// channel; dropped outputs are recovered by rebuilding from the event log.
package projection

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"EqCore/internal/event"
	"EqCore/internal/observability"

	"github.com/rs/zerolog"
)

// ProjectionOutput mirrors the core's output shape; the orchestrator in
// cmd/eqcore bridges between core.CoreOutput and this so the package never
// imports the engines.
type ProjectionOutput struct {
	Sequence     int64
	EventType    string
	PartitionKey *string
	Payload      []byte // JSON extrinsic payload from the envelope
	Timestamp    time.Time
	Balances     []BalanceRow
	BookChanges  []BookChangeRow
}

// BalanceRow is the post-event signed balance of one touched account row.
type BalanceRow struct {
	Account  string
	AssetID  uint16
	Balance  string
	Negative bool
}

// BookChangeRow is one order-book mutation caused by the event.
type BookChangeRow struct {
	Kind      string // "created", "reduced", "deleted"
	AssetID   uint16
	OrderID   uint64
	Account   string
	Side      string // "buy", "sell"
	Price     int64
	Amount    string
	CreatedAt int64
	ExpiresAt int64
	Reason    string // set for "deleted"
}

// Worker drains the projection channel and applies each output to the read
// models in a single transaction, then advances the watermark. Failures are
// logged and skipped: projections are eventually consistent.
type Worker struct {
	db         *sql.DB
	inputChan  <-chan ProjectionOutput
	feeHistory *FeeHistory
	metrics    *observability.Metrics
	log        zerolog.Logger
	lastSeq    int64
}

func NewWorker(db *sql.DB, inputChan <-chan ProjectionOutput, feeHistory *FeeHistory, metrics *observability.Metrics) *Worker {
	return &Worker{
		db:         db,
		inputChan:  inputChan,
		feeHistory: feeHistory,
		metrics:    metrics,
		log:        observability.NewLogger("projection"),
	}
}

// Run starts the projection loop. Blocks until ctx is cancelled or the
// channel closes.
func (pw *Worker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case output, ok := <-pw.inputChan:
			if !ok {
				return nil
			}
			if pw.metrics != nil {
				pw.metrics.SetChannelMetrics("projection", len(pw.inputChan), cap(pw.inputChan))
			}

			if err := pw.apply(ctx, output); err != nil {
				pw.log.Warn().Err(err).Int64("sequence", output.Sequence).
					Str("event_type", output.EventType).Msg("projection update failed")
				continue
			}
			pw.lastSeq = output.Sequence
		}
	}
}

// LastSequence returns the highest applied sequence.
func (pw *Worker) LastSequence() int64 {
	return pw.lastSeq
}

func (pw *Worker) apply(ctx context.Context, output ProjectionOutput) error {
	tx, err := pw.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, b := range output.Balances {
		if err := pw.upsertBalance(ctx, tx, output.Sequence, b); err != nil {
			return fmt.Errorf("balances: %w", err)
		}
	}

	for _, c := range output.BookChanges {
		if err := pw.applyBookChange(ctx, tx, output.Sequence, c); err != nil {
			return fmt.Errorf("open_orders: %w", err)
		}
	}

	if err := pw.applyEvent(ctx, tx, output); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO projections.watermark (worker_id, last_sequence, updated_at)
		VALUES ('main', $1, NOW())
		ON CONFLICT (worker_id) DO UPDATE SET last_sequence = $1, updated_at = NOW()
	`, output.Sequence); err != nil {
		return fmt.Errorf("watermark: %w", err)
	}

	return tx.Commit()
}

// upsertBalance stores the resulting signed balance. Rows carry the final
// value, not an increment, so replays and rebuilds converge on the same
// state regardless of how many times a row is applied.
func (pw *Worker) upsertBalance(ctx context.Context, tx *sql.Tx, seq int64, b BalanceRow) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO projections.balances (account, asset_id, balance, negative, last_sequence)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (account, asset_id)
		DO UPDATE SET balance = $3, negative = $4, last_sequence = $5
		WHERE projections.balances.last_sequence < $5
	`, b.Account, b.AssetID, b.Balance, b.Negative, seq)
	return err
}

func (pw *Worker) applyBookChange(ctx context.Context, tx *sql.Tx, seq int64, c BookChangeRow) error {
	switch c.Kind {
	case "created", "reduced":
		_, err := tx.ExecContext(ctx, `
			INSERT INTO projections.open_orders
				(asset_id, order_id, account, side, price, amount, created_at, expires_at, last_sequence)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			ON CONFLICT (asset_id, order_id)
			DO UPDATE SET amount = $6, last_sequence = $9
		`, c.AssetID, c.OrderID, c.Account, c.Side, c.Price, c.Amount, c.CreatedAt, c.ExpiresAt, seq)
		return err
	case "deleted":
		_, err := tx.ExecContext(ctx, `
			DELETE FROM projections.open_orders WHERE asset_id = $1 AND order_id = $2
		`, c.AssetID, c.OrderID)
		return err
	default:
		return fmt.Errorf("unknown book change kind %q", c.Kind)
	}
}

// applyEvent maintains the event-derived tables: oracle prices, applied
// distributions, reinit fee history and bailsman group membership.
func (pw *Worker) applyEvent(ctx context.Context, tx *sql.Tx, output ProjectionOutput) error {
	switch output.EventType {
	case "PriceUpdate":
		var p event.PriceUpdate
		if err := json.Unmarshal(output.Payload, &p); err != nil {
			return fmt.Errorf("decode price update: %w", err)
		}
		_, err := tx.ExecContext(ctx, `
			INSERT INTO projections.best_prices (asset_id, price, updated_at, last_sequence)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (asset_id)
			DO UPDATE SET price = $2, updated_at = $3, last_sequence = $4
			WHERE projections.best_prices.last_sequence < $4
		`, uint16(p.Asset), int64(p.Price), output.Timestamp, output.Sequence)
		return err

	case "Redistribute":
		var r event.Redistribute
		if err := json.Unmarshal(output.Payload, &r); err != nil {
			return fmt.Errorf("decode redistribute: %w", err)
		}
		_, err := tx.ExecContext(ctx, `
			INSERT INTO projections.distributions (sequence, account, authority_index, applied_at)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (sequence) DO NOTHING
		`, output.Sequence, r.Who.String(), r.AuthorityIndex, output.Timestamp)
		return err

	case "Reinit":
		var r event.Reinit
		if err := json.Unmarshal(output.Payload, &r); err != nil {
			return fmt.Errorf("decode reinit: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO projections.fee_history (sequence, account, authority_index, charged_at)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (sequence) DO NOTHING
		`, output.Sequence, r.Who.String(), r.AuthorityIndex, output.Timestamp); err != nil {
			return err
		}
		if pw.feeHistory != nil {
			pw.feeHistory.Add(FeeEntry{
				Sequence:  output.Sequence,
				Account:   r.Who.String(),
				ChargedAt: output.Timestamp,
			})
		}
		return nil

	case "RegisterBailsman", "UnregisterBailsman":
		return pw.updateGroupAggregates(ctx, tx, output)

	default:
		return nil
	}
}

// updateGroupAggregates tracks bailsman registrations. Numeric group totals
// live in the core state and are served from snapshots; the projection keeps
// the membership roster queryable.
func (pw *Worker) updateGroupAggregates(ctx context.Context, tx *sql.Tx, output ProjectionOutput) error {
	var reg event.RegisterBailsman
	if err := json.Unmarshal(output.Payload, &reg); err != nil {
		return fmt.Errorf("decode bailsman event: %w", err)
	}
	registered := output.EventType == "RegisterBailsman"
	_, err := tx.ExecContext(ctx, `
		INSERT INTO projections.group_aggregates (account, registered, last_sequence)
		VALUES ($1, $2, $3)
		ON CONFLICT (account)
		DO UPDATE SET registered = $2, last_sequence = $3
		WHERE projections.group_aggregates.last_sequence < $3
	`, reg.Who.String(), registered, output.Sequence)
	return err
}

// RebuildProjections rebuilds the SQL-derivable read models from the event
// log. Balances come from the journal (each row is a resulting balance, so
// the latest row per account wins); prices, distributions, fee history and
// the bailsman roster come from the stored payloads. Open orders cannot be
// re-derived in SQL; callers reseed them from the core book after replay
// via ReseedOpenOrders.
func RebuildProjections(ctx context.Context, db *sql.DB) error {
	log := observability.NewLogger("projection")

	truncate := []string{
		`TRUNCATE projections.balances`,
		`TRUNCATE projections.group_aggregates`,
		`TRUNCATE projections.open_orders`,
		`TRUNCATE projections.best_prices`,
		`TRUNCATE projections.distributions`,
		`TRUNCATE projections.fee_history`,
		`DELETE FROM projections.watermark WHERE worker_id = 'main'`,
	}
	for _, stmt := range truncate {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("truncate: %w", err)
		}
	}

	if _, err := db.ExecContext(ctx, `
		INSERT INTO projections.balances (account, asset_id, balance, negative, last_sequence)
		SELECT DISTINCT ON (account, asset_id)
			account, asset_id, balance, negative, sequence
		FROM event_log.journal
		ORDER BY account, asset_id, sequence DESC
	`); err != nil {
		return fmt.Errorf("rebuild balances: %w", err)
	}

	if _, err := db.ExecContext(ctx, `
		INSERT INTO projections.best_prices (asset_id, price, updated_at, last_sequence)
		SELECT DISTINCT ON (payload->>'Asset')
			(payload->>'Asset')::int, (payload->>'Price')::bigint, timestamp, sequence
		FROM event_log.events
		WHERE event_type = 'PriceUpdate'
		ORDER BY payload->>'Asset', sequence DESC
	`); err != nil {
		return fmt.Errorf("rebuild best prices: %w", err)
	}

	if _, err := db.ExecContext(ctx, `
		INSERT INTO projections.distributions (sequence, account, authority_index, applied_at)
		SELECT sequence, payload->>'Who', (payload->>'AuthorityIndex')::int, timestamp
		FROM event_log.events
		WHERE event_type = 'Redistribute'
	`); err != nil {
		return fmt.Errorf("rebuild distributions: %w", err)
	}

	if _, err := db.ExecContext(ctx, `
		INSERT INTO projections.fee_history (sequence, account, authority_index, charged_at)
		SELECT sequence, payload->>'Who', (payload->>'AuthorityIndex')::int, timestamp
		FROM event_log.events
		WHERE event_type = 'Reinit'
	`); err != nil {
		return fmt.Errorf("rebuild fee history: %w", err)
	}

	if _, err := db.ExecContext(ctx, `
		INSERT INTO projections.group_aggregates (account, registered, last_sequence)
		SELECT DISTINCT ON (payload->>'Who')
			payload->>'Who', event_type = 'RegisterBailsman', sequence
		FROM event_log.events
		WHERE event_type IN ('RegisterBailsman', 'UnregisterBailsman')
		ORDER BY payload->>'Who', sequence DESC
	`); err != nil {
		return fmt.Errorf("rebuild bailsman roster: %w", err)
	}

	if _, err := db.ExecContext(ctx, `
		INSERT INTO projections.watermark (worker_id, last_sequence, updated_at)
		SELECT 'main', COALESCE(MAX(sequence), 0), NOW() FROM event_log.events
		ON CONFLICT (worker_id) DO UPDATE
			SET last_sequence = EXCLUDED.last_sequence, updated_at = NOW()
	`); err != nil {
		return fmt.Errorf("rebuild watermark: %w", err)
	}

	log.Info().Msg("projection rebuild complete")
	return nil
}

// ReseedOpenOrders replaces the open-order projection with the resting book
// as it stands after a replay.
func ReseedOpenOrders(ctx context.Context, db *sql.DB, sequence int64, orders []BookChangeRow) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `TRUNCATE projections.open_orders`); err != nil {
		return err
	}
	for _, o := range orders {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO projections.open_orders
				(asset_id, order_id, account, side, price, amount, created_at, expires_at, last_sequence)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		`, o.AssetID, o.OrderID, o.Account, o.Side, o.Price, o.Amount, o.CreatedAt, o.ExpiresAt, sequence); err != nil {
			return err
		}
	}
	return tx.Commit()
}
