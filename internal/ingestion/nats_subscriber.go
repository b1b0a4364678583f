package ingestion

import (
	"context"
	"fmt"
	"time"

	"EqCore/internal/observability"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

// NATSSubscriber subscribes to NATS JetStream subjects and feeds extrinsics
// into the deterministic core via the eventChan. JetStream is the primary
// high-throughput ingestion surface; gRPC ingest exists for admin injection
// only.
type NATSSubscriber struct {
	js        jetstream.JetStream
	eventChan chan<- RawEvent
	consumers []jetstream.ConsumeContext
}

// RawEvent is the parsed-but-untyped extrinsic from NATS, ready for the
// shell to validate and convert into a typed event.Event.
type RawEvent struct {
	Subject   string
	Data      []byte
	Timestamp time.Time
	AckFunc   func() // Call to ACK the NATS message after successful processing
	NakFunc   func() // Call to NAK on failure (will be redelivered)
}

// SubjectConfig maps NATS subjects to event types. Each extrinsic type has
// its own subject so consumers scale independently.
type SubjectConfig struct {
	Subject      string
	EventType    string
	ConsumerName string
	StreamName   string
}

// DefaultSubjects returns the standard subject layout: user extrinsics on
// eq.extrinsics.>, oracle quotes on eq.prices.>, authority sweep submissions
// on eq.advisory.>, block ticks on eq.blocks.>.
func DefaultSubjects() []SubjectConfig {
	return []SubjectConfig{
		{Subject: "eq.extrinsics.transfer.>", EventType: "Transfer", ConsumerName: "core-transfers", StreamName: "EQ_EXTRINSICS"},
		{Subject: "eq.extrinsics.deposit.>", EventType: "Deposit", ConsumerName: "core-deposits", StreamName: "EQ_EXTRINSICS"},
		{Subject: "eq.extrinsics.withdraw.>", EventType: "Withdraw", ConsumerName: "core-withdraws", StreamName: "EQ_EXTRINSICS"},
		{Subject: "eq.extrinsics.bailsman_register.>", EventType: "RegisterBailsman", ConsumerName: "core-bails-register", StreamName: "EQ_EXTRINSICS"},
		{Subject: "eq.extrinsics.bailsman_unregister.>", EventType: "UnregisterBailsman", ConsumerName: "core-bails-unregister", StreamName: "EQ_EXTRINSICS"},
		{Subject: "eq.extrinsics.order_create.>", EventType: "CreateOrder", ConsumerName: "core-order-create", StreamName: "EQ_EXTRINSICS"},
		{Subject: "eq.extrinsics.order_cancel.>", EventType: "DeleteOrder", ConsumerName: "core-order-cancel", StreamName: "EQ_EXTRINSICS"},
		{Subject: "eq.extrinsics.asset_update.>", EventType: "AssetUpdate", ConsumerName: "core-asset-update", StreamName: "EQ_EXTRINSICS"},
		{Subject: "eq.prices.>", EventType: "PriceUpdate", ConsumerName: "core-prices", StreamName: "EQ_PRICES"},
		{Subject: "eq.advisory.order_delete.>", EventType: "DeleteOrder", ConsumerName: "core-advisory-delete", StreamName: "EQ_ADVISORY"},
		{Subject: "eq.advisory.reinit.>", EventType: "Reinit", ConsumerName: "core-advisory-reinit", StreamName: "EQ_ADVISORY"},
		{Subject: "eq.advisory.redistribute.>", EventType: "Redistribute", ConsumerName: "core-advisory-redistribute", StreamName: "EQ_ADVISORY"},
		{Subject: "eq.blocks.>", EventType: "BlockFinalize", ConsumerName: "core-blocks", StreamName: "EQ_BLOCKS"},
	}
}

func NewNATSSubscriber(js jetstream.JetStream, eventChan chan<- RawEvent) *NATSSubscriber {
	return &NATSSubscriber{
		js:        js,
		eventChan: eventChan,
	}
}

// Subscribe creates JetStream consumers for all configured subjects.
// Consumers use explicit ACK, max_deliver=5, ack_wait=30s.
func (ns *NATSSubscriber) Subscribe(ctx context.Context, subjects []SubjectConfig) error {
	log := observability.NewLogger("ingestion")

	for _, cfg := range subjects {
		consumer, err := ns.js.CreateOrUpdateConsumer(ctx, cfg.StreamName, jetstream.ConsumerConfig{
			Durable:       cfg.ConsumerName,
			FilterSubject: cfg.Subject,
			AckPolicy:     jetstream.AckExplicitPolicy,
			AckWait:       30 * time.Second,
			MaxDeliver:    5,
			DeliverPolicy: jetstream.DeliverAllPolicy,
		})
		if err != nil {
			return fmt.Errorf("create consumer %s: %w", cfg.ConsumerName, err)
		}

		consumerContext, err := consumer.Consume(func(msg jetstream.Msg) {
			raw := RawEvent{
				Subject:   msg.Subject(),
				Data:      msg.Data(),
				Timestamp: time.Now(),
				AckFunc:   func() { msg.Ack() },
				NakFunc:   func() { msg.Nak() },
			}

			select {
			case ns.eventChan <- raw:
				// Queued for processing; ACK happens after the core applies it
			case <-ctx.Done():
				msg.Nak()
			}
		})
		if err != nil {
			return fmt.Errorf("consume %s: %w", cfg.ConsumerName, err)
		}

		ns.consumers = append(ns.consumers, consumerContext)
		log.Info().Str("subject", cfg.Subject).Str("consumer", cfg.ConsumerName).Msg("subscribed")
	}

	return nil
}

// EnsureStreams creates the required JetStream streams if they don't exist.
// Streams use FileStorage, retention=Limits, max_age=72h.
func EnsureStreams(ctx context.Context, js jetstream.JetStream) error {
	log := observability.NewLogger("ingestion")

	streams := []jetstream.StreamConfig{
		{
			Name:      "EQ_EXTRINSICS",
			Subjects:  []string{"eq.extrinsics.>"},
			Storage:   jetstream.FileStorage,
			Retention: jetstream.LimitsPolicy,
			MaxAge:    72 * time.Hour,
			Replicas:  1,
		},
		{
			Name:      "EQ_PRICES",
			Subjects:  []string{"eq.prices.>"},
			Storage:   jetstream.FileStorage,
			Retention: jetstream.LimitsPolicy,
			MaxAge:    72 * time.Hour,
			Replicas:  1,
		},
		{
			Name:      "EQ_ADVISORY",
			Subjects:  []string{"eq.advisory.>"},
			Storage:   jetstream.FileStorage,
			Retention: jetstream.LimitsPolicy,
			MaxAge:    24 * time.Hour,
			Replicas:  1,
		},
		{
			Name:      "EQ_BLOCKS",
			Subjects:  []string{"eq.blocks.>"},
			Storage:   jetstream.FileStorage,
			Retention: jetstream.LimitsPolicy,
			MaxAge:    72 * time.Hour,
			Replicas:  1,
		},
	}

	for _, cfg := range streams {
		if _, err := js.CreateOrUpdateStream(ctx, cfg); err != nil {
			return fmt.Errorf("create stream %s: %w", cfg.Name, err)
		}
		log.Info().Str("stream", cfg.Name).Msg("ensured stream")
	}

	return nil
}

// Stop gracefully stops all consumers.
func (ns *NATSSubscriber) Stop() {
	for _, cc := range ns.consumers {
		cc.Stop()
	}
	log := observability.NewLogger("ingestion")
	log.Info().Msg("NATS subscribers stopped")
}

// ConnectNATS establishes a NATS connection and returns a JetStream context.
func ConnectNATS(url string) (*nats.Conn, jetstream.JetStream, error) {
	log := observability.NewLogger("ingestion")

	nc, err := nats.Connect(url,
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			log.Warn().Err(err).Msg("NATS disconnected")
		}),
		nats.ReconnectHandler(func(_ *nats.Conn) {
			log.Info().Msg("NATS reconnected")
		}),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("nats connect: %w", err)
	}

	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()
		return nil, nil, fmt.Errorf("jetstream: %w", err)
	}

	return nc, js, nil
}
