package query

import (
	"time"

	"github.com/google/uuid"
)

// BalanceEntry is one signed account balance. Amounts are fixed-point
// decimal strings; Negative marks debt.
type BalanceEntry struct {
	Account      uuid.UUID `json:"account"`
	AssetID      uint16    `json:"asset_id"`
	Balance      string    `json:"balance"`
	Negative     bool      `json:"negative"`
	AsOfSequence int64     `json:"as_of_sequence"`
}

// AssetAggregate is the system-wide collateral and debt total for one asset.
type AssetAggregate struct {
	AssetID         uint16 `json:"asset_id"`
	TotalCollateral string `json:"total_collateral"`
	TotalDebt       string `json:"total_debt"`
	AsOfSequence    int64  `json:"as_of_sequence"`
}

// DepthLevel is one aggregated price level of the book.
type DepthLevel struct {
	Price  int64  `json:"price"`
	Amount string `json:"amount"`
	Orders int64  `json:"orders"`
}

// OrderBookResponse is the aggregated depth of one asset's book.
type OrderBookResponse struct {
	AssetID      uint16       `json:"asset_id"`
	Bids         []DepthLevel `json:"bids"`
	Asks         []DepthLevel `json:"asks"`
	AsOfSequence int64        `json:"as_of_sequence"`
}

// BailsmanEntry is one row of the bailsman roster.
type BailsmanEntry struct {
	Account      uuid.UUID `json:"account"`
	Registered   bool      `json:"registered"`
	LastSequence int64     `json:"last_sequence"`
}

// DistributionEntry is one applied catch-up distribution.
type DistributionEntry struct {
	Sequence       int64     `json:"sequence"`
	Account        uuid.UUID `json:"account"`
	AuthorityIndex uint32    `json:"authority_index"`
	AppliedAt      time.Time `json:"applied_at"`
}

// FeeHistoryEntry is one interest-fee charge applied by a reinit.
type FeeHistoryEntry struct {
	Sequence       int64     `json:"sequence"`
	Account        uuid.UUID `json:"account"`
	AuthorityIndex uint32    `json:"authority_index"`
	ChargedAt      time.Time `json:"charged_at"`
}

// OraclePrice is the latest stored quote for an asset.
type OraclePrice struct {
	AssetID      uint16    `json:"asset_id"`
	Price        int64     `json:"price"`
	UpdatedAt    time.Time `json:"updated_at"`
	AsOfSequence int64     `json:"as_of_sequence"`
}

// IntegrityReport is the result of an integrity verification pass over the
// event log and the balance projection.
type IntegrityReport struct {
	IsHealthy            bool    `json:"is_healthy"`
	HashChainBreaks      []int64 `json:"hash_chain_breaks,omitempty"`
	SequenceGaps         []int64 `json:"sequence_gaps,omitempty"`
	ProjectionMismatches int64   `json:"projection_mismatches"`
	CheckedEvents        int64   `json:"checked_events"`
}
