package projection

import (
	"sync"
	"time"
)

// FeeEntry records one interest-fee charge applied by a reinit.
type FeeEntry struct {
	Sequence  int64
	Account   string
	ChargedAt time.Time
}

// FeeHistory keeps a bounded in-memory window of recent fee charges so the
// query service can answer recent-history requests without a round trip to
// Postgres. Older entries live in projections.fee_history.
type FeeHistory struct {
	mu      sync.RWMutex
	entries []FeeEntry
	limit   int
}

func NewFeeHistory(limit int) *FeeHistory {
	return &FeeHistory{limit: limit}
}

// Add appends an entry, evicting the oldest once the window is full.
func (h *FeeHistory) Add(entry FeeEntry) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = append(h.entries, entry)
	if h.limit > 0 && len(h.entries) > h.limit {
		h.entries = h.entries[len(h.entries)-h.limit:]
	}
}

// ByAccount returns the newest entries for an account, newest first.
func (h *FeeHistory) ByAccount(account string, limit int) []FeeEntry {
	h.mu.RLock()
	defer h.mu.RUnlock()

	result := make([]FeeEntry, 0)
	for i := len(h.entries) - 1; i >= 0 && len(result) < limit; i-- {
		if h.entries[i].Account == account {
			result = append(result, h.entries[i])
		}
	}
	return result
}

// Recent returns the newest entries across all accounts, newest first.
func (h *FeeHistory) Recent(limit int) []FeeEntry {
	h.mu.RLock()
	defer h.mu.RUnlock()

	n := len(h.entries)
	if limit > n {
		limit = n
	}
	result := make([]FeeEntry, 0, limit)
	for i := n - 1; i >= n-limit; i-- {
		result = append(result, h.entries[i])
	}
	return result
}
