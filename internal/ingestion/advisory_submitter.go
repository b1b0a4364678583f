package ingestion

import (
	"context"
	"encoding/json"
	"fmt"

	"EqCore/internal/event"
	"EqCore/internal/observability"

	"github.com/bwmarrin/snowflake"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/rs/zerolog"
)

// AdvisorySubmitter publishes sweep-derived extrinsics to the advisory
// subjects. It satisfies the offchain Submitter contract. Each submission
// carries a snowflake submission id for tracing; the sequencer in front of
// the core stamps the partition sequence on admission, so the sequence
// field is left zero here.
type AdvisorySubmitter struct {
	js   jetstream.JetStream
	node *snowflake.Node
	log  zerolog.Logger
}

func NewAdvisorySubmitter(js jetstream.JetStream, nodeID int64) (*AdvisorySubmitter, error) {
	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, fmt.Errorf("snowflake node: %w", err)
	}
	return &AdvisorySubmitter{
		js:   js,
		node: node,
		log:  observability.NewLogger("advisory-submitter"),
	}, nil
}

func (as *AdvisorySubmitter) Submit(evt event.Event) error {
	subject, payload, err := as.encode(evt)
	if err != nil {
		return err
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal advisory: %w", err)
	}
	if _, err := as.js.Publish(context.Background(), subject, data); err != nil {
		return fmt.Errorf("publish %s: %w", subject, err)
	}
	as.log.Debug().Str("subject", subject).Str("key", evt.IdempotencyKey()).Msg("advisory submitted")
	return nil
}

func (as *AdvisorySubmitter) encode(evt event.Event) (string, any, error) {
	switch e := evt.(type) {
	case *event.DeleteOrder:
		return "eq.advisory.order_delete." + e.Asset.String(), deleteOrderJSON{
			RequestID:      e.RequestID.String(),
			Who:            e.Who.String(),
			Asset:          uint16(e.Asset),
			OrderID:        e.OrderID,
			Price:          e.Price.Inner(),
			Reason:         deleteReasonToWire(e.Reason),
			AuthorityIndex: e.AuthorityIndex,
			SubmissionID:   as.node.Generate().Int64(),
		}, nil
	case *event.Reinit:
		return "eq.advisory.reinit.account", advisoryOpJSON{
			RequestID:      e.RequestID.String(),
			Who:            e.Who.String(),
			AuthorityIndex: e.AuthorityIndex,
			SubmissionID:   as.node.Generate().Int64(),
		}, nil
	case *event.Redistribute:
		return "eq.advisory.redistribute.account", advisoryOpJSON{
			RequestID:      e.RequestID.String(),
			Who:            e.Who.String(),
			AuthorityIndex: e.AuthorityIndex,
			SubmissionID:   as.node.Generate().Int64(),
		}, nil
	default:
		return "", nil, fmt.Errorf("not an advisory event: %s", evt.EventType())
	}
}
