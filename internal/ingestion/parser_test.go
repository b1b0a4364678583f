package ingestion_test

import (
	"encoding/json"
	"testing"
	"time"

	"EqCore/internal/assets"
	"EqCore/internal/event"
	"EqCore/internal/ingestion"
	"EqCore/internal/numeric"
)

func rawFromJSON(t *testing.T, v any) ingestion.RawEvent {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return ingestion.RawEvent{
		Subject:   "test",
		Data:      data,
		Timestamp: time.Now(),
		AckFunc:   func() {},
		NakFunc:   func() {},
	}
}

func TestParseTransfer(t *testing.T) {
	payload := map[string]any{
		"transaction_id": "550e8400-e29b-41d4-a716-446655440000",
		"from":           "660e8400-e29b-41d4-a716-446655440001",
		"to":             "770e8400-e29b-41d4-a716-446655440002",
		"asset":          uint16(assets.BTC),
		"amount":         uint64(1_500_000_000),
		"sequence":       int64(42),
	}

	raw := rawFromJSON(t, payload)
	evt, err := ingestion.ParseRawEvent(raw, "Transfer")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	tr, ok := evt.(*event.Transfer)
	if !ok {
		t.Fatalf("expected *event.Transfer, got %T", evt)
	}
	if tr.Asset != assets.BTC {
		t.Errorf("asset: got %s, want BTC", tr.Asset)
	}
	if tr.Amount.Cmp(numeric.FromInner(1_500_000_000)) != 0 {
		t.Errorf("amount: got %s, want 1.5", tr.Amount)
	}
	if tr.Sequence != 42 {
		t.Errorf("sequence: got %d, want 42", tr.Sequence)
	}
	if tr.From.String() != "660e8400-e29b-41d4-a716-446655440001" {
		t.Errorf("from: got %s", tr.From)
	}
}

func TestParseDepositAndWithdraw(t *testing.T) {
	payload := map[string]any{
		"transaction_id": "550e8400-e29b-41d4-a716-446655440000",
		"who":            "660e8400-e29b-41d4-a716-446655440001",
		"asset":          uint16(assets.EQD),
		"amount":         uint64(100_000_000_000),
		"sequence":       int64(7),
	}

	raw := rawFromJSON(t, payload)
	evt, err := ingestion.ParseRawEvent(raw, "Deposit")
	if err != nil {
		t.Fatalf("parse deposit: %v", err)
	}
	dep, ok := evt.(*event.Deposit)
	if !ok {
		t.Fatalf("expected *event.Deposit, got %T", evt)
	}
	if dep.Asset != assets.EQD || dep.Sequence != 7 {
		t.Errorf("deposit = %+v", dep)
	}

	evt, err = ingestion.ParseRawEvent(raw, "Withdraw")
	if err != nil {
		t.Fatalf("parse withdraw: %v", err)
	}
	wd, ok := evt.(*event.Withdraw)
	if !ok {
		t.Fatalf("expected *event.Withdraw, got %T", evt)
	}
	if wd.Amount.Cmp(numeric.SaturatingFromInteger(100)) != 0 {
		t.Errorf("amount: got %s, want 100", wd.Amount)
	}
}

func TestParseCreateOrder(t *testing.T) {
	payload := map[string]any{
		"request_id":  "550e8400-e29b-41d4-a716-446655440000",
		"who":         "660e8400-e29b-41d4-a716-446655440001",
		"asset":       uint16(assets.BTC),
		"side":        "sell",
		"kind":        "limit",
		"limit_price": int64(10_000_000_000),
		"amount":      uint64(1_000_000_000),
		"expires_at":  int64(5000),
		"sequence":    int64(3),
	}

	raw := rawFromJSON(t, payload)
	evt, err := ingestion.ParseRawEvent(raw, "CreateOrder")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	co, ok := evt.(*event.CreateOrder)
	if !ok {
		t.Fatalf("expected *event.CreateOrder, got %T", evt)
	}
	if co.Side != event.OrderSideSell {
		t.Errorf("side: got %d, want sell", co.Side)
	}
	if co.Kind != event.OrderKindLimit {
		t.Errorf("kind: got %d, want limit", co.Kind)
	}
	if co.LimitPrice != numeric.PriceFromInteger(10) {
		t.Errorf("limit price: got %s, want 10", co.LimitPrice)
	}
	if co.ExpiresAt != 5000 {
		t.Errorf("expires_at: got %d, want 5000", co.ExpiresAt)
	}
	if pk := co.PartitionKey(); pk == nil || *pk != "dex:BTC" {
		t.Errorf("partition key: got %v, want dex:BTC", pk)
	}
}

func TestParseCreateOrder_UnknownSide(t *testing.T) {
	payload := map[string]any{
		"request_id": "550e8400-e29b-41d4-a716-446655440000",
		"who":        "660e8400-e29b-41d4-a716-446655440001",
		"asset":      uint16(assets.BTC),
		"side":       "hold",
		"kind":       "limit",
		"amount":     uint64(1_000_000_000),
	}

	if _, err := ingestion.ParseRawEvent(rawFromJSON(t, payload), "CreateOrder"); err == nil {
		t.Error("expected error on unknown side")
	}
}

func TestParseDeleteOrder_Reasons(t *testing.T) {
	base := map[string]any{
		"request_id":      "550e8400-e29b-41d4-a716-446655440000",
		"who":             "660e8400-e29b-41d4-a716-446655440001",
		"asset":           uint16(assets.ETH),
		"order_id":        uint64(19),
		"price":           int64(2_000_000_000_000),
		"authority_index": uint32(2),
		"sequence":        int64(11),
	}

	cases := []struct {
		wire string
		want event.DeleteReason
	}{
		{"cancel", event.DeleteReasonCancel},
		{"out_of_corridor", event.DeleteReasonOutOfCorridor},
		{"expired", event.DeleteReasonExpired},
		{"margin_call", event.DeleteReasonMarginCall},
	}
	for _, tc := range cases {
		base["reason"] = tc.wire
		evt, err := ingestion.ParseRawEvent(rawFromJSON(t, base), "DeleteOrder")
		if err != nil {
			t.Fatalf("parse %s: %v", tc.wire, err)
		}
		do := evt.(*event.DeleteOrder)
		if do.Reason != tc.want {
			t.Errorf("reason %s: got %d, want %d", tc.wire, do.Reason, tc.want)
		}
		if do.OrderID != 19 || do.AuthorityIndex != 2 {
			t.Errorf("fields lost on %s: %+v", tc.wire, do)
		}
	}

	base["reason"] = "vibes"
	if _, err := ingestion.ParseRawEvent(rawFromJSON(t, base), "DeleteOrder"); err == nil {
		t.Error("expected error on unknown reason")
	}
}

func TestParsePriceUpdate(t *testing.T) {
	payload := map[string]any{
		"update_id":     "550e8400-e29b-41d4-a716-446655440000",
		"asset":         uint16(assets.DOT),
		"price":         int64(7_250_000_000),
		"feed_sequence": int64(99),
	}

	evt, err := ingestion.ParseRawEvent(rawFromJSON(t, payload), "PriceUpdate")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	pu := evt.(*event.PriceUpdate)
	if pu.Asset != assets.DOT {
		t.Errorf("asset: got %s, want DOT", pu.Asset)
	}
	if pu.Price != numeric.Price(7_250_000_000) {
		t.Errorf("price: got %s", pu.Price)
	}
	if pu.SourceSequence() != 99 {
		t.Errorf("feed sequence: got %d, want 99", pu.SourceSequence())
	}
}

func TestParseBlockFinalize(t *testing.T) {
	payload := map[string]any{
		"block_number":    uint64(12),
		"block_time":      int64(1_700_000_000),
		"validator_count": uint32(5),
		"sequence":        int64(11),
	}

	evt, err := ingestion.ParseRawEvent(rawFromJSON(t, payload), "BlockFinalize")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	bf := evt.(*event.BlockFinalize)
	if bf.BlockNumber != 12 || bf.ValidatorCount != 5 {
		t.Errorf("block = %+v", bf)
	}
	if !bf.BlockTime.Equal(time.Unix(1_700_000_000, 0).UTC()) {
		t.Errorf("block time: got %s", bf.BlockTime)
	}
	if bf.IdempotencyKey() != "block-12" {
		t.Errorf("idempotency key: got %s", bf.IdempotencyKey())
	}
}

func TestParseUnknownEventType(t *testing.T) {
	raw := rawFromJSON(t, map[string]any{})
	if _, err := ingestion.ParseRawEvent(raw, "FundingEpochSettle"); err == nil {
		t.Error("expected error on unknown event type")
	}
}

func TestParseMalformedUUID(t *testing.T) {
	payload := map[string]any{
		"transaction_id": "not-a-uuid",
		"who":            "660e8400-e29b-41d4-a716-446655440001",
		"asset":          uint16(assets.EQ),
		"amount":         uint64(1),
	}
	if _, err := ingestion.ParseRawEvent(rawFromJSON(t, payload), "Deposit"); err == nil {
		t.Error("expected error on malformed transaction_id")
	}
}
