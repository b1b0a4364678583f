// Package offchain holds the advisory sweep workers. They re-derive
// candidates from a read-only view of the core state and publish advisory
// extrinsics; the core re-validates every submission at execution time, so
// a stale or duplicated advisory is harmless.
package offchain

import (
	"fmt"

	"EqCore/internal/aggregates"
	"EqCore/internal/bailsman"
	"EqCore/internal/dex"
	"EqCore/internal/event"
	"EqCore/internal/observability"
	"EqCore/internal/rate"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Submitter publishes advisory extrinsics back into the stream. The
// gateway behind it owns the upstream sequencing.
type Submitter interface {
	Submit(evt event.Event) error
}

// StateView is the slice of core state the sweeps scan. The orchestrator
// runs Sweep on the core goroutine between events, so reads need no
// locking.
type StateView interface {
	BlockNumber() uint64
	BlockTime() int64
	ValidatorCount() uint32
	Dex() *dex.Engine
	Rate() *rate.Engine
	Bailsmen() *bailsman.Engine
	Aggregates() *aggregates.Store
}

// Config identifies this authority and bounds submission longevity.
type Config struct {
	AuthorityIndex uint32
	Longevity      uint64 // blocks before an unexecuted advisory is resubmitted
}

func DefaultConfig() Config {
	return Config{
		AuthorityIndex: 0,
		Longevity:      5,
	}
}

// Sweeper derives this authority's advisory shard each block. Order
// deletions shard strictly by order id; the reinit and redistribute scans
// overlap one position to either side so a lagging authority cannot leave
// an account unserved.
type Sweeper struct {
	cfg     Config
	log     zerolog.Logger
	metrics *observability.Metrics

	submitted map[string]uint64 // advisory key -> block of last submission
}

func NewSweeper(cfg Config, metrics *observability.Metrics) *Sweeper {
	return &Sweeper{
		cfg:       cfg,
		log:       observability.NewLogger("offchain"),
		metrics:   metrics,
		submitted: make(map[string]uint64),
	}
}

// Sweep runs all three scans against the current state.
func (s *Sweeper) Sweep(view StateView, sub Submitter) {
	validators := view.ValidatorCount()
	if validators == 0 {
		return
	}
	block := view.BlockNumber()

	s.sweepOrders(view, sub, validators, block)
	s.sweepReinits(view, sub, validators, block)
	s.sweepDistributions(view, sub, validators, block)
	s.prune(block)
}

func (s *Sweeper) sweepOrders(view StateView, sub Submitter, validators uint32, block uint64) {
	for _, u := range view.Dex().UnfitOrders(view.BlockTime()) {
		if u.OrderID%uint64(validators) != uint64(s.cfg.AuthorityIndex) {
			continue
		}
		key := fmt.Sprintf("del:%s:%d", u.Asset, u.OrderID)
		if s.suppressed(key, block) {
			continue
		}

		var reason event.DeleteReason
		switch u.Reason {
		case dex.DeleteReasonExpired:
			reason = event.DeleteReasonExpired
		case dex.DeleteReasonMarginCall:
			reason = event.DeleteReasonMarginCall
		default:
			// disabled pairs ride the corridor cause; the core re-derives
			// the exact one
			reason = event.DeleteReasonOutOfCorridor
		}

		evt := &event.DeleteOrder{
			RequestID:      uuid.New(),
			Who:            u.Account,
			Asset:          u.Asset,
			OrderID:        u.OrderID,
			Price:          u.Price,
			Reason:         reason,
			AuthorityIndex: s.cfg.AuthorityIndex,
		}
		if err := sub.Submit(evt); err != nil {
			s.log.Warn().Err(err).Str("asset", u.Asset.String()).
				Uint64("order_id", u.OrderID).Msg("order sweep submit failed")
			continue
		}
		if s.metrics != nil {
			s.metrics.SweepCandidates.WithLabelValues(u.Reason.String()).Inc()
		}
		s.submitted[key] = block
	}
}

func (s *Sweeper) sweepReinits(view StateView, sub Submitter, validators uint32, block uint64) {
	for i, who := range view.Aggregates().Members(aggregates.GroupBorrowers) {
		if !s.inShard(uint64(i), validators) {
			continue
		}
		if !view.Rate().NeedToReinit(who) {
			continue
		}
		key := "reinit:" + who.String()
		if s.suppressed(key, block) {
			continue
		}

		evt := &event.Reinit{
			RequestID:      uuid.New(),
			Who:            who,
			AuthorityIndex: s.cfg.AuthorityIndex,
		}
		if err := sub.Submit(evt); err != nil {
			s.log.Warn().Err(err).Str("account", who.String()).Msg("reinit submit failed")
			continue
		}
		s.submitted[key] = block
	}
}

func (s *Sweeper) sweepDistributions(view StateView, sub Submitter, validators uint32, block uint64) {
	bails := view.Bailsmen()
	for i, who := range bails.Bailsmen() {
		if !s.inShard(uint64(i), validators) {
			continue
		}
		if bails.PendingDistributions(who) == 0 {
			continue
		}
		key := "dist:" + who.String()
		if s.suppressed(key, block) {
			continue
		}

		evt := &event.Redistribute{
			RequestID:      uuid.New(),
			Who:            who,
			AuthorityIndex: s.cfg.AuthorityIndex,
		}
		if err := sub.Submit(evt); err != nil {
			s.log.Warn().Err(err).Str("account", who.String()).Msg("redistribute submit failed")
			continue
		}
		if s.metrics != nil {
			s.metrics.DistributionsQueued.Inc()
		}
		s.submitted[key] = block
	}
}

// inShard accepts indexes within one position of this authority's slot,
// modulo the validator count.
func (s *Sweeper) inShard(idx uint64, validators uint32) bool {
	v := uint64(validators)
	slot := idx % v
	a := uint64(s.cfg.AuthorityIndex) % v
	return slot == a || slot == (a+1)%v || slot == (a+v-1)%v
}

// suppressed reports whether this advisory was already submitted within
// the longevity window.
func (s *Sweeper) suppressed(key string, block uint64) bool {
	at, ok := s.submitted[key]
	if !ok {
		return false
	}
	return block < at+s.cfg.Longevity
}

func (s *Sweeper) prune(block uint64) {
	for key, at := range s.submitted {
		if block >= at+s.cfg.Longevity {
			delete(s.submitted, key)
		}
	}
}
