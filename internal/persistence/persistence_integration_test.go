package persistence_test

import (
	"context"
	"testing"
	"time"

	"EqCore/internal/assets"
	"EqCore/internal/balance"
	"EqCore/internal/core"
	"EqCore/internal/numeric"
	"EqCore/internal/persistence"
	"EqCore/internal/testutil"

	"github.com/google/uuid"
)

// ============================================================================
// Event log round trip
// ============================================================================

func TestEventLogRoundTrip(t *testing.T) {
	testutil.RequireIntegration(t)
	db, cleanup := testutil.SetupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	if err := persistence.NewMigrator(db, "../../migrations").Up(ctx); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	writer := persistence.NewEventLogWriter(db)
	ts := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	partition := "transfer:alice"

	events := []persistence.EventRow{
		{
			Sequence:       0,
			EventType:      "Deposit",
			IdempotencyKey: uuid.NewString(),
			Payload:        []byte(`{"Who":"` + uuid.NewString() + `","Asset":3,"Amount":"10.000000000"}`),
			StateHash:      make([]byte, 32),
			PrevHash:       make([]byte, 32),
			Timestamp:      ts,
			SourceSequence: 0,
		},
		{
			Sequence:       1,
			EventType:      "Transfer",
			IdempotencyKey: uuid.NewString(),
			PartitionKey:   &partition,
			Payload:        []byte(`{"Who":"` + uuid.NewString() + `","Asset":3,"Amount":"1.000000000"}`),
			StateHash:      make([]byte, 32),
			PrevHash:       make([]byte, 32),
			Timestamp:      ts.Add(time.Second),
			SourceSequence: 0,
		},
	}
	if err := writer.WriteEventBatch(ctx, db, events); err != nil {
		t.Fatalf("write events: %v", err)
	}

	deltas := []persistence.DeltaRow{
		{Sequence: 0, Account: uuid.NewString(), AssetID: 3, Balance: "10.000000000", Negative: false},
		{Sequence: 1, Account: uuid.NewString(), AssetID: 3, Balance: "0.500000000", Negative: true},
	}
	if err := writer.WriteDeltaBatch(ctx, db, deltas); err != nil {
		t.Fatalf("write deltas: %v", err)
	}

	snapMgr := persistence.NewSnapshotManager(db)

	loaded, err := snapMgr.LoadEventsFrom(ctx, 0, 100)
	if err != nil {
		t.Fatalf("load events: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("loaded %d events, want 2", len(loaded))
	}
	if loaded[0].EventType != "Deposit" || loaded[1].EventType != "Transfer" {
		t.Errorf("event types = %s, %s", loaded[0].EventType, loaded[1].EventType)
	}
	if loaded[1].PartitionKey == nil || *loaded[1].PartitionKey != partition {
		t.Error("partition key did not survive the round trip")
	}
	if string(loaded[0].Payload) == "" {
		t.Error("payload missing after round trip")
	}

	last, err := snapMgr.GetLatestSequence(ctx)
	if err != nil {
		t.Fatalf("latest sequence: %v", err)
	}
	if last != 1 {
		t.Errorf("latest sequence = %d, want 1", last)
	}

	// Rewriting the same sequences must be a no-op, not an error.
	if err := writer.WriteEventBatch(ctx, db, events); err != nil {
		t.Fatalf("idempotent rewrite: %v", err)
	}
}

// ============================================================================
// Cold-tier idempotency
// ============================================================================

func TestPostgresIdempotencyChecker(t *testing.T) {
	testutil.RequireIntegration(t)
	db, cleanup := testutil.SetupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	if err := persistence.NewMigrator(db, "../../migrations").Up(ctx); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	key := uuid.NewString()
	writer := persistence.NewEventLogWriter(db)
	err := writer.WriteEventBatch(ctx, db, []persistence.EventRow{{
		Sequence:       0,
		EventType:      "Deposit",
		IdempotencyKey: key,
		Payload:        []byte(`{}`),
		StateHash:      make([]byte, 32),
		PrevHash:       make([]byte, 32),
		Timestamp:      time.Now().UTC(),
	}})
	if err != nil {
		t.Fatalf("write event: %v", err)
	}

	checker := persistence.NewPostgresIdempotencyChecker(db)

	dup, err := checker.IsDuplicate("Deposit", key)
	if err != nil {
		t.Fatalf("is duplicate: %v", err)
	}
	if !dup {
		t.Error("stored key must be reported duplicate")
	}

	dup, err = checker.IsDuplicate("Transfer", key)
	if err != nil {
		t.Fatalf("is duplicate: %v", err)
	}
	if dup {
		t.Error("same key under another event type must not collide")
	}

	keys, err := checker.LoadRecentKeys(ctx, 10)
	if err != nil {
		t.Fatalf("load recent keys: %v", err)
	}
	if len(keys) != 1 || keys[0] != "Deposit:"+key {
		t.Errorf("recent keys = %v", keys)
	}
}

// ============================================================================
// Snapshot round trip
// ============================================================================

func TestSnapshotSaveAndLoad(t *testing.T) {
	testutil.RequireIntegration(t)
	db, cleanup := testutil.SetupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	if err := persistence.NewMigrator(db, "../../migrations").Up(ctx); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	snapMgr := persistence.NewSnapshotManager(db)

	alice := uuid.New()
	snap := &core.SnapshotState{
		Sequence: 41,
		Balances: map[balance.AccountKey]balance.SignedBalance{
			{Account: alice, Asset: assets.BTC}: balance.Positive(numeric.SaturatingFromInteger(7)),
		},
		SequenceState:   map[string]int64{"global": 42},
		IdempotencyKeys: []string{"Deposit:abc"},
		BlockNumber:     100,
		BlockTime:       1_700_000_000,
		ValidatorCount:  3,
	}
	snap.StateHash[0] = 0xEE

	if err := snapMgr.SaveSnapshot(ctx, snap); err != nil {
		t.Fatalf("save snapshot: %v", err)
	}

	// Unverified snapshots are never used for recovery.
	got, err := snapMgr.LoadLatestSnapshot(ctx)
	if err != nil {
		t.Fatalf("load snapshot: %v", err)
	}
	if got != nil {
		t.Fatal("unverified snapshot must not load")
	}

	if err := snapMgr.MarkVerified(ctx, 41); err != nil {
		t.Fatalf("mark verified: %v", err)
	}

	got, err = snapMgr.LoadLatestSnapshot(ctx)
	if err != nil {
		t.Fatalf("load snapshot: %v", err)
	}
	if got == nil {
		t.Fatal("verified snapshot must load")
	}
	if got.Sequence != 41 || got.StateHash != snap.StateHash {
		t.Errorf("sequence=%d hash=%x", got.Sequence, got.StateHash[:4])
	}
	if got.SequenceState["global"] != 42 {
		t.Errorf("sequence state = %v", got.SequenceState)
	}
	b, ok := got.Balances[balance.AccountKey{Account: alice, Asset: assets.BTC}]
	if !ok || b.Negative || b.Amount.String() != "7.000000000" {
		t.Errorf("restored balance = %+v (ok=%v)", b, ok)
	}
}
