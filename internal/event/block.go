package event

import (
	"fmt"
	"time"
)

// BlockFinalize closes a block: the core runs the end-of-block engine hooks,
// advances the deterministic clock and seals the state hash.
type BlockFinalize struct {
	BlockNumber    uint64 // Idempotency key
	BlockTime      time.Time
	ValidatorCount uint32
	Sequence       int64
}

func (b *BlockFinalize) IdempotencyKey() string {
	return fmt.Sprintf("block-%d", b.BlockNumber)
}

func (b *BlockFinalize) EventType() EventType {
	return EventTypeBlockFinalize
}

func (b *BlockFinalize) PartitionKey() *string {
	k := "blocks"
	return &k
}

func (b *BlockFinalize) SourceSequence() int64 {
	return b.Sequence
}
