package projection_test

import (
	"fmt"
	"testing"
	"time"

	"EqCore/internal/projection"
)

func TestFeeHistoryByAccount(t *testing.T) {
	h := projection.NewFeeHistory(100)
	for i := 0; i < 10; i++ {
		acc := "alice"
		if i%2 == 1 {
			acc = "bob"
		}
		h.Add(projection.FeeEntry{
			Sequence:  int64(i + 1),
			Account:   acc,
			ChargedAt: time.Unix(int64(1000+i), 0),
		})
	}

	got := h.ByAccount("alice", 3)
	if len(got) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(got))
	}
	// Newest first
	if got[0].Sequence != 9 || got[1].Sequence != 7 || got[2].Sequence != 5 {
		t.Errorf("unexpected order: %d %d %d", got[0].Sequence, got[1].Sequence, got[2].Sequence)
	}
}

func TestFeeHistoryEviction(t *testing.T) {
	h := projection.NewFeeHistory(5)
	for i := 1; i <= 8; i++ {
		h.Add(projection.FeeEntry{Sequence: int64(i), Account: fmt.Sprintf("acc-%d", i)})
	}

	recent := h.Recent(10)
	if len(recent) != 5 {
		t.Fatalf("expected window of 5, got %d", len(recent))
	}
	if recent[0].Sequence != 8 {
		t.Errorf("newest entry should be 8, got %d", recent[0].Sequence)
	}
	if recent[4].Sequence != 4 {
		t.Errorf("oldest retained entry should be 4, got %d", recent[4].Sequence)
	}
}

func TestFeeHistoryRecentLimit(t *testing.T) {
	h := projection.NewFeeHistory(0) // unbounded
	for i := 1; i <= 4; i++ {
		h.Add(projection.FeeEntry{Sequence: int64(i), Account: "alice"})
	}

	recent := h.Recent(2)
	if len(recent) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(recent))
	}
	if recent[0].Sequence != 4 || recent[1].Sequence != 3 {
		t.Errorf("unexpected entries: %+v", recent)
	}
}
