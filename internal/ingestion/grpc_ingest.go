package ingestion

import (
	"context"
	"fmt"

	"EqCore/internal/assets"
	"EqCore/internal/event"
	"EqCore/internal/numeric"

	"github.com/google/uuid"
)

// SequenceSource hands out the next upstream sequence for a partition.
// Admin-injected extrinsics bypass the NATS sequencer, so the orchestrator
// supplies its cursor here to keep per-partition ordering contiguous.
type SequenceSource func(partition string) int64

// GRPCIngestService provides admin/manual extrinsic injection via gRPC.
// It is for operational intervention, not throughput; NATS is the primary
// ingestion surface.
type GRPCIngestService struct {
	eventChan chan<- event.Event
	nextSeq   SequenceSource
}

func NewGRPCIngestService(eventChan chan<- event.Event, nextSeq SequenceSource) *GRPCIngestService {
	return &GRPCIngestService{eventChan: eventChan, nextSeq: nextSeq}
}

// InjectDeposit manually injects a Deposit extrinsic. Amount is in raw
// 1e9-scaled inner units. Returns the generated transaction id.
func (s *GRPCIngestService) InjectDeposit(
	ctx context.Context,
	who uuid.UUID,
	asset assets.Asset,
	amount uint64,
) (uuid.UUID, error) {
	if amount == 0 {
		return uuid.Nil, fmt.Errorf("amount must be positive")
	}

	evt := &event.Deposit{
		TransactionID: uuid.New(),
		Who:           who,
		Asset:         asset,
		Amount:        numeric.FromInner(amount),
		Sequence:      s.nextSeq("global"),
	}
	return evt.TransactionID, s.send(ctx, evt)
}

// InjectWithdraw manually injects a Withdraw extrinsic.
func (s *GRPCIngestService) InjectWithdraw(
	ctx context.Context,
	who uuid.UUID,
	asset assets.Asset,
	amount uint64,
) (uuid.UUID, error) {
	if amount == 0 {
		return uuid.Nil, fmt.Errorf("amount must be positive")
	}

	evt := &event.Withdraw{
		TransactionID: uuid.New(),
		Who:           who,
		Asset:         asset,
		Amount:        numeric.FromInner(amount),
		Sequence:      s.nextSeq("global"),
	}
	return evt.TransactionID, s.send(ctx, evt)
}

// InjectTransfer manually injects a Transfer extrinsic.
func (s *GRPCIngestService) InjectTransfer(
	ctx context.Context,
	from, to uuid.UUID,
	asset assets.Asset,
	amount uint64,
) (uuid.UUID, error) {
	if amount == 0 {
		return uuid.Nil, fmt.Errorf("amount must be positive")
	}
	if from == to {
		return uuid.Nil, fmt.Errorf("from and to must differ")
	}

	evt := &event.Transfer{
		TransactionID: uuid.New(),
		From:          from,
		To:            to,
		Asset:         asset,
		Amount:        numeric.FromInner(amount),
		Sequence:      s.nextSeq("global"),
	}
	return evt.TransactionID, s.send(ctx, evt)
}

// InjectPrice manually injects a PriceUpdate extrinsic. Price is in raw
// 1e9-scaled inner units.
func (s *GRPCIngestService) InjectPrice(
	ctx context.Context,
	asset assets.Asset,
	price int64,
) (uuid.UUID, error) {
	if price <= 0 {
		return uuid.Nil, fmt.Errorf("price must be positive")
	}

	evt := &event.PriceUpdate{
		UpdateID:     uuid.New(),
		Asset:        asset,
		Price:        numeric.Price(price),
		FeedSequence: s.nextSeq("prices:" + asset.String()),
	}
	return evt.UpdateID, s.send(ctx, evt)
}

// Inject hands an already-parsed extrinsic to the core pipeline.
func (s *GRPCIngestService) Inject(ctx context.Context, evt event.Event) error {
	return s.send(ctx, evt)
}

func (s *GRPCIngestService) send(ctx context.Context, evt event.Event) error {
	select {
	case s.eventChan <- evt:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
