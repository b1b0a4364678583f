// Package query serves read-only requests from the projection tables. Every
// response carries as_of_sequence, the projection watermark at read time, so
// callers can reason about freshness against the core sequence.
package query

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"EqCore/internal/observability"
	"EqCore/internal/projection"

	"github.com/google/uuid"
)

type Service struct {
	db         *sql.DB
	feeHistory *projection.FeeHistory
	metrics    *observability.Metrics
}

func NewService(db *sql.DB, feeHistory *projection.FeeHistory, metrics *observability.Metrics) *Service {
	return &Service{db: db, feeHistory: feeHistory, metrics: metrics}
}

// track records request count, latency and outcome for one endpoint.
func (s *Service) track(endpoint string, start time.Time, err error) {
	if s.metrics == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
		s.metrics.QueryErrors.WithLabelValues(endpoint, "internal").Inc()
	}
	s.metrics.QueryRequests.WithLabelValues(endpoint, status).Inc()
	s.metrics.QueryDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
}

// GetBalances returns all signed balances of one account.
func (s *Service) GetBalances(ctx context.Context, account uuid.UUID) (entries []BalanceEntry, err error) {
	start := time.Now()
	defer func() { s.track("balances", start, err) }()

	asOf, err := s.getWatermark(ctx)
	if err != nil {
		return nil, fmt.Errorf("watermark: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT asset_id, balance, negative
		FROM projections.balances
		WHERE account = $1
		ORDER BY asset_id
	`, account.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		e := BalanceEntry{Account: account, AsOfSequence: asOf}
		if err := rows.Scan(&e.AssetID, &e.Balance, &e.Negative); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// GetBalance returns one account's balance in one asset. A missing row is a
// zero balance, not an error.
func (s *Service) GetBalance(ctx context.Context, account uuid.UUID, assetID uint16) (entry BalanceEntry, err error) {
	start := time.Now()
	defer func() { s.track("balance", start, err) }()

	asOf, err := s.getWatermark(ctx)
	if err != nil {
		return BalanceEntry{}, fmt.Errorf("watermark: %w", err)
	}

	entry = BalanceEntry{Account: account, AssetID: assetID, Balance: "0.000000000", AsOfSequence: asOf}
	row := s.db.QueryRowContext(ctx, `
		SELECT balance, negative FROM projections.balances
		WHERE account = $1 AND asset_id = $2
	`, account.String(), assetID)
	if err := row.Scan(&entry.Balance, &entry.Negative); err != nil && err != sql.ErrNoRows {
		return BalanceEntry{}, err
	}
	return entry, nil
}

// GetAggregates returns the system-wide collateral and debt totals per asset,
// summed over the balance projection.
func (s *Service) GetAggregates(ctx context.Context) (aggs []AssetAggregate, err error) {
	start := time.Now()
	defer func() { s.track("aggregates", start, err) }()

	asOf, err := s.getWatermark(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT asset_id,
		       COALESCE(SUM(balance::numeric) FILTER (WHERE NOT negative), 0)::text,
		       COALESCE(SUM(balance::numeric) FILTER (WHERE negative), 0)::text
		FROM projections.balances
		GROUP BY asset_id
		ORDER BY asset_id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		a := AssetAggregate{AsOfSequence: asOf}
		if err := rows.Scan(&a.AssetID, &a.TotalCollateral, &a.TotalDebt); err != nil {
			return nil, err
		}
		aggs = append(aggs, a)
	}
	return aggs, rows.Err()
}

// GetOrderBook returns aggregated book depth for an asset: up to maxLevels
// price levels per side, bids descending and asks ascending.
func (s *Service) GetOrderBook(ctx context.Context, assetID uint16, maxLevels int) (resp *OrderBookResponse, err error) {
	start := time.Now()
	defer func() { s.track("order_book", start, err) }()

	asOf, err := s.getWatermark(ctx)
	if err != nil {
		return nil, err
	}
	resp = &OrderBookResponse{AssetID: assetID, AsOfSequence: asOf}

	resp.Bids, err = s.depthSide(ctx, assetID, "buy", "DESC", maxLevels)
	if err != nil {
		return nil, err
	}
	resp.Asks, err = s.depthSide(ctx, assetID, "sell", "ASC", maxLevels)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *Service) depthSide(ctx context.Context, assetID uint16, side, direction string, maxLevels int) ([]DepthLevel, error) {
	// direction is a constant chosen by the caller, never user input
	rows, err := s.db.QueryContext(ctx, fmt.Sprintf(`
		SELECT price, SUM(amount::numeric)::text, COUNT(*)
		FROM projections.open_orders
		WHERE asset_id = $1 AND side = $2
		GROUP BY price
		ORDER BY price %s
		LIMIT $3
	`, direction), assetID, side, maxLevels)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var levels []DepthLevel
	for rows.Next() {
		var l DepthLevel
		if err := rows.Scan(&l.Price, &l.Amount, &l.Orders); err != nil {
			return nil, err
		}
		levels = append(levels, l)
	}
	return levels, rows.Err()
}

// GetBailsmen returns the current bailsman roster.
func (s *Service) GetBailsmen(ctx context.Context) (entries []BailsmanEntry, err error) {
	start := time.Now()
	defer func() { s.track("bailsmen", start, err) }()

	rows, err := s.db.QueryContext(ctx, `
		SELECT account, registered, last_sequence
		FROM projections.group_aggregates
		WHERE registered
		ORDER BY last_sequence
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var e BailsmanEntry
		var acc string
		if err := rows.Scan(&acc, &e.Registered, &e.LastSequence); err != nil {
			return nil, err
		}
		if e.Account, err = uuid.Parse(acc); err != nil {
			return nil, fmt.Errorf("bad account in roster: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// GetDistributions returns applied distributions for an account, newest
// first, with cursor pagination on sequence.
func (s *Service) GetDistributions(ctx context.Context, account uuid.UUID, limit int, beforeSequence *int64) (entries []DistributionEntry, err error) {
	start := time.Now()
	defer func() { s.track("distributions", start, err) }()

	q := `
		SELECT sequence, account, authority_index, applied_at
		FROM projections.distributions
		WHERE account = $1
	`
	args := []any{account.String()}
	if beforeSequence != nil {
		q += " AND sequence < $2 ORDER BY sequence DESC LIMIT $3"
		args = append(args, *beforeSequence, limit)
	} else {
		q += " ORDER BY sequence DESC LIMIT $2"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var e DistributionEntry
		var acc string
		if err := rows.Scan(&e.Sequence, &acc, &e.AuthorityIndex, &e.AppliedAt); err != nil {
			return nil, err
		}
		e.Account, _ = uuid.Parse(acc)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// GetFeeHistory returns interest-fee charges for an account, newest first,
// with cursor pagination on sequence. Recent entries may also be served from
// the in-memory window kept by the projection worker.
func (s *Service) GetFeeHistory(ctx context.Context, account uuid.UUID, limit int, beforeSequence *int64) (entries []FeeHistoryEntry, err error) {
	start := time.Now()
	defer func() { s.track("fee_history", start, err) }()

	q := `
		SELECT sequence, account, authority_index, charged_at
		FROM projections.fee_history
		WHERE account = $1
	`
	args := []any{account.String()}
	if beforeSequence != nil {
		q += " AND sequence < $2 ORDER BY sequence DESC LIMIT $3"
		args = append(args, *beforeSequence, limit)
	} else {
		q += " ORDER BY sequence DESC LIMIT $2"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var e FeeHistoryEntry
		var acc string
		if err := rows.Scan(&e.Sequence, &acc, &e.AuthorityIndex, &e.ChargedAt); err != nil {
			return nil, err
		}
		e.Account, _ = uuid.Parse(acc)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// GetPrices returns the latest stored oracle quote per asset.
func (s *Service) GetPrices(ctx context.Context) (prices []OraclePrice, err error) {
	start := time.Now()
	defer func() { s.track("prices", start, err) }()

	rows, err := s.db.QueryContext(ctx, `
		SELECT asset_id, price, updated_at, last_sequence
		FROM projections.best_prices
		ORDER BY asset_id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var p OraclePrice
		if err := rows.Scan(&p.AssetID, &p.Price, &p.UpdatedAt, &p.AsOfSequence); err != nil {
			return nil, err
		}
		prices = append(prices, p)
	}
	return prices, rows.Err()
}

// --- Admin APIs ---

// VerifyIntegrity checks the event log hash chain, sequence continuity and
// the balance projection against the journal.
func (s *Service) VerifyIntegrity(ctx context.Context) (report *IntegrityReport, err error) {
	start := time.Now()
	defer func() { s.track("verify_integrity", start, err) }()

	report = &IntegrityReport{}

	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM event_log.events`,
	).Scan(&report.CheckedEvents); err != nil {
		return nil, err
	}

	// Hash chain: every event's prev_hash must equal its predecessor's
	// state_hash.
	rows, err := s.db.QueryContext(ctx, `
		SELECT e.sequence
		FROM event_log.events e
		JOIN event_log.events p ON p.sequence = e.sequence - 1
		WHERE e.prev_hash <> p.state_hash
		ORDER BY e.sequence
		LIMIT 100
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var seq int64
		if err := rows.Scan(&seq); err != nil {
			return nil, err
		}
		report.HashChainBreaks = append(report.HashChainBreaks, seq)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Sequence continuity: an event with no predecessor row, other than the
	// very first, marks a gap.
	gapRows, err := s.db.QueryContext(ctx, `
		SELECT e.sequence
		FROM event_log.events e
		LEFT JOIN event_log.events p ON p.sequence = e.sequence - 1
		WHERE p.sequence IS NULL
		  AND e.sequence > (SELECT MIN(sequence) FROM event_log.events)
		ORDER BY e.sequence
		LIMIT 100
	`)
	if err != nil {
		return nil, err
	}
	defer gapRows.Close()
	for gapRows.Next() {
		var seq int64
		if err := gapRows.Scan(&seq); err != nil {
			return nil, err
		}
		report.SequenceGaps = append(report.SequenceGaps, seq)
	}
	if err := gapRows.Err(); err != nil {
		return nil, err
	}

	// Balance projection vs journal: every projected row must equal the
	// journal row with the highest sequence for that account and asset.
	if err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*)
		FROM projections.balances b
		JOIN LATERAL (
			SELECT balance, negative
			FROM event_log.journal j
			WHERE j.account = b.account AND j.asset_id = b.asset_id
			ORDER BY j.sequence DESC
			LIMIT 1
		) latest ON TRUE
		WHERE b.balance::numeric <> latest.balance::numeric
		   OR b.negative <> latest.negative
	`).Scan(&report.ProjectionMismatches); err != nil {
		return nil, err
	}

	report.IsHealthy = len(report.HashChainBreaks) == 0 &&
		len(report.SequenceGaps) == 0 &&
		report.ProjectionMismatches == 0
	return report, nil
}

// --- helpers ---

func (s *Service) getWatermark(ctx context.Context) (int64, error) {
	var seq int64
	err := s.db.QueryRowContext(ctx, `
		SELECT COALESCE(last_sequence, 0) FROM projections.watermark WHERE worker_id = 'main'
	`).Scan(&seq)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	return seq, err
}
