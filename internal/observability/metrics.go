package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for EqCore.
type Metrics struct {
	// --- Core Processing ---
	CoreEventsApplied  *prometheus.CounterVec
	CoreEventsRejected *prometheus.CounterVec
	CoreEventDuration  *prometheus.HistogramVec
	CoreBalanceChanges prometheus.Counter
	CoreStateHashDur   prometheus.Histogram
	CoreSequence       prometheus.Gauge
	CoreBlockHeight    prometheus.Gauge

	// --- Latency ---
	IngestToApply     *prometheus.HistogramVec
	ApplyToPersist    prometheus.Histogram
	QueryFreshnessLag *prometheus.HistogramVec
	NATSPullLatency   *prometheus.HistogramVec
	PersistBatchDur   prometheus.Histogram

	// --- Channel & Backpressure ---
	ChannelSize         *prometheus.GaugeVec
	ChannelCapacity     *prometheus.GaugeVec
	ChannelUtilization  *prometheus.GaugeVec
	ProjectionDrops     *prometheus.CounterVec
	PersistBackpressure prometheus.Counter

	// --- Idempotency & Ordering ---
	IdempotencyDuplicates *prometheus.CounterVec
	DedupLRUSize          prometheus.Gauge
	DedupLRUEvictions     prometheus.Counter
	DedupTier2Duration    prometheus.Histogram
	EventSequenceGap      *prometheus.CounterVec
	EventOutOfOrder       *prometheus.CounterVec

	// --- Bailsman pool ---
	BailsmenRegistered     prometheus.Gauge
	DistributionsQueued    prometheus.Counter
	DistributionsApplied   prometheus.Counter
	DistributionQueueDepth prometheus.Gauge

	// --- Dex ---
	OrdersCreated  *prometheus.CounterVec
	OrdersDeleted  *prometheus.CounterVec
	OrdersMatched  *prometheus.CounterVec
	BookDepth      *prometheus.GaugeVec
	SweepCandidates *prometheus.CounterVec

	// --- Rate & margin ---
	ReinitsProcessed *prometheus.CounterVec
	FeesCharged      *prometheus.CounterVec
	MarginCalls      *prometheus.CounterVec
	Buyouts          prometheus.Counter

	// --- Persistence ---
	PersistEventsWritten prometheus.Counter
	PersistBatchSize     prometheus.Histogram
	PersistErrors        *prometheus.CounterVec
	PersistRetry         prometheus.Counter
	PersistLastSequence  prometheus.Gauge

	// --- Snapshot ---
	SnapshotTaken     prometheus.Counter
	SnapshotDuration  prometheus.Histogram
	SnapshotSizeBytes prometheus.Gauge
	SnapshotLastSeq   prometheus.Gauge
	ReplayEventsTotal prometheus.Counter
	ReplayDuration    prometheus.Gauge

	// --- Query API ---
	QueryRequests *prometheus.CounterVec
	QueryDuration *prometheus.HistogramVec
	QueryErrors   *prometheus.CounterVec
}

// NewMetrics creates and registers all Prometheus metrics.
func NewMetrics() *Metrics {
	latencyBuckets := []float64{
		0.000001, 0.000005, 0.00001, 0.000025, 0.00005,
		0.0001, 0.00025, 0.0005, 0.001, 0.002, 0.005, 0.01,
	}

	ingestBuckets := []float64{
		0.00001, 0.000025, 0.00005, 0.0001, 0.00025,
		0.0005, 0.001, 0.002, 0.005, 0.01,
	}

	return &Metrics{
		// Core Processing
		CoreEventsApplied: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "eq_core_events_applied_total",
			Help: "Extrinsics successfully applied by core",
		}, []string{"event_type"}),

		CoreEventsRejected: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "eq_core_events_rejected_total",
			Help: "Extrinsics rejected (dedup, gap, validation)",
		}, []string{"event_type", "reason"}),

		CoreEventDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "eq_core_event_apply_duration_seconds",
			Help:    "Time to apply a single extrinsic in core",
			Buckets: latencyBuckets,
		}, []string{"event_type"}),

		CoreBalanceChanges: promauto.NewCounter(prometheus.CounterOpts{
			Name: "eq_core_balance_changes_total",
			Help: "Signed balance mutations applied",
		}),

		CoreStateHashDur: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "eq_core_state_hash_duration_seconds",
			Help:    "Time to compute state hash",
			Buckets: latencyBuckets,
		}),

		CoreSequence: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "eq_core_sequence",
			Help: "Current global sequence number",
		}),

		CoreBlockHeight: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "eq_core_block_height",
			Help: "Last finalized block number",
		}),

		// Latency
		IngestToApply: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "eq_ingest_to_apply_seconds",
			Help:    "NATS receive to core apply complete",
			Buckets: ingestBuckets,
		}, []string{"event_type"}),

		ApplyToPersist: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "eq_apply_to_persist_seconds",
			Help:    "Core emit to Postgres commit",
			Buckets: latencyBuckets,
		}),

		QueryFreshnessLag: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "eq_query_freshness_lag_seconds",
			Help:    "Core sequence minus projection sequence (in time)",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.2, 0.5, 1.0},
		}, []string{"endpoint"}),

		NATSPullLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "eq_nats_pull_latency_seconds",
			Help:    "NATS pull request latency",
			Buckets: ingestBuckets,
		}, []string{"subject"}),

		PersistBatchDur: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "eq_persist_batch_duration_seconds",
			Help:    "Postgres batch write duration",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
		}),

		// Channel & Backpressure
		ChannelSize: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "eq_channel_size",
			Help: "Current items in channel",
		}, []string{"name"}),

		ChannelCapacity: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "eq_channel_capacity",
			Help: "Channel capacity (constant)",
		}, []string{"name"}),

		ChannelUtilization: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "eq_channel_utilization",
			Help: "Channel size / capacity (0.0-1.0)",
		}, []string{"name"}),

		ProjectionDrops: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "eq_projection_drops_total",
			Help: "Events dropped due to full projection channel",
		}, []string{"projection"}),

		PersistBackpressure: promauto.NewCounter(prometheus.CounterOpts{
			Name: "eq_persist_backpressure_total",
			Help: "Times core blocked on persist channel",
		}),

		// Idempotency & Ordering
		IdempotencyDuplicates: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "eq_idempotency_duplicates_total",
			Help: "Duplicates caught (lru/postgres)",
		}, []string{"event_type", "tier"}),

		DedupLRUSize: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "eq_dedup_lru_size",
			Help: "Current LRU occupancy",
		}),

		DedupLRUEvictions: promauto.NewCounter(prometheus.CounterOpts{
			Name: "eq_dedup_lru_evictions_total",
			Help: "LRU evictions",
		}),

		DedupTier2Duration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "eq_dedup_tier2_duration_seconds",
			Help:    "Postgres dedup lookup latency",
			Buckets: latencyBuckets,
		}),

		EventSequenceGap: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "eq_event_sequence_gap_total",
			Help: "Source sequence gaps",
		}, []string{"partition"}),

		EventOutOfOrder: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "eq_event_out_of_order_total",
			Help: "Out-of-order rejections",
		}, []string{"partition"}),

		// Bailsman pool
		BailsmenRegistered: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "eq_bailsmen_registered",
			Help: "Currently registered bailsmen",
		}),

		DistributionsQueued: promauto.NewCounter(prometheus.CounterOpts{
			Name: "eq_distributions_queued_total",
			Help: "Distribution queue entries produced at block boundaries",
		}),

		DistributionsApplied: promauto.NewCounter(prometheus.CounterOpts{
			Name: "eq_distributions_applied_total",
			Help: "Per-bailsman distribution catch-ups applied",
		}),

		DistributionQueueDepth: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "eq_distribution_queue_depth",
			Help: "Pending distribution queue entries",
		}),

		// Dex
		OrdersCreated: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "eq_dex_orders_created_total",
			Help: "Orders accepted onto the book",
		}, []string{"asset"}),

		OrdersDeleted: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "eq_dex_orders_deleted_total",
			Help: "Orders removed from the book",
		}, []string{"asset", "reason"}),

		OrdersMatched: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "eq_dex_orders_matched_total",
			Help: "Fills executed",
		}, []string{"asset"}),

		BookDepth: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "eq_dex_book_depth",
			Help: "Resting orders per asset",
		}, []string{"asset"}),

		SweepCandidates: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "eq_dex_sweep_candidates_total",
			Help: "Advisory deletion candidates by reason",
		}, []string{"reason"}),

		// Rate & margin
		ReinitsProcessed: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "eq_rate_reinits_total",
			Help: "Reinit extrinsics processed",
		}, []string{"outcome"}),

		FeesCharged: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "eq_rate_fees_charged_total",
			Help: "Fee charges by destination",
		}, []string{"destination"}),

		MarginCalls: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "eq_margin_calls_total",
			Help: "Positions taken over by the bailsman pool",
		}, []string{"trigger"}),

		Buyouts: promauto.NewCounter(prometheus.CounterOpts{
			Name: "eq_rate_buyouts_total",
			Help: "Treasury buyouts of negative native balances",
		}),

		// Persistence
		PersistEventsWritten: promauto.NewCounter(prometheus.CounterOpts{
			Name: "eq_persist_events_written_total",
			Help: "Events written to Postgres",
		}),

		PersistBatchSize: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "eq_persist_batch_size",
			Help:    "Events per batch",
			Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500},
		}),

		PersistErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "eq_persist_errors_total",
			Help: "Persistence errors",
		}, []string{"error_type"}),

		PersistRetry: promauto.NewCounter(prometheus.CounterOpts{
			Name: "eq_persist_retry_total",
			Help: "Persistence retries",
		}),

		PersistLastSequence: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "eq_persist_last_sequence",
			Help: "Last persisted sequence",
		}),

		// Snapshot
		SnapshotTaken: promauto.NewCounter(prometheus.CounterOpts{
			Name: "eq_snapshot_taken_total",
			Help: "Snapshots created",
		}),

		SnapshotDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "eq_snapshot_duration_seconds",
			Help:    "Snapshot creation time",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1.0, 5.0, 10.0},
		}),

		SnapshotSizeBytes: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "eq_snapshot_size_bytes",
			Help: "Last snapshot size",
		}),

		SnapshotLastSeq: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "eq_snapshot_last_sequence",
			Help: "Sequence of last snapshot",
		}),

		ReplayEventsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "eq_replay_events_total",
			Help: "Events replayed on startup",
		}),

		ReplayDuration: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "eq_replay_duration_seconds",
			Help: "Total replay time",
		}),

		// Query API
		QueryRequests: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "eq_query_requests_total",
			Help: "Query requests",
		}, []string{"endpoint", "status"}),

		QueryDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "eq_query_duration_seconds",
			Help:    "Query latency",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		}, []string{"endpoint"}),

		QueryErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "eq_query_errors_total",
			Help: "Query errors",
		}, []string{"endpoint", "code"}),
	}
}

// SetChannelMetrics updates channel utilization metrics.
func (m *Metrics) SetChannelMetrics(name string, size, capacity int) {
	m.ChannelSize.WithLabelValues(name).Set(float64(size))
	m.ChannelCapacity.WithLabelValues(name).Set(float64(capacity))
	if capacity > 0 {
		m.ChannelUtilization.WithLabelValues(name).Set(float64(size) / float64(capacity))
	}
}
