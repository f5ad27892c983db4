package jetstream

import (
	"context"
	"errors"
	"fmt"

	"github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"

	"github.com/PaulieB14/monad-usdc-indexer/internal/adapter"
	"github.com/PaulieB14/monad-usdc-indexer/internal/domain"
	"github.com/PaulieB14/monad-usdc-indexer/internal/logger"
	"github.com/PaulieB14/monad-usdc-indexer/internal/messaging"
)

type consumer struct {
	nc     adapter.NatsConn
	js     adapter.JetStream
	json   adapter.JSON
	config Config
}

// NewConsumer creates a new NATS JetStream consumer
func NewConsumer(cfg Config, natsJS adapter.NatsJetStream, jsonAdapter adapter.JSON) (messaging.Consumer, error) {
	nc, js, err := natsJS.Connect(cfg.URL, natsOptions(cfg)...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS and create JetStream: %w", err)
	}

	return &consumer{
		nc:     nc,
		js:     js,
		json:   jsonAdapter,
		config: cfg,
	}, nil
}

// Consume drains the event stream one message at a time. MaxAckPending of 1
// keeps delivery strictly sequential: the next event is only handed out after
// the previous one was acked, which the aggregation rules rely on.
func (c *consumer) Consume(ctx context.Context, handler messaging.EventHandler) error {
	logger.Info("Starting event consumer",
		zap.String("stream", c.config.StreamName),
		zap.String("consumer", c.config.ConsumerName))

	consumerConfig := jetstream.ConsumerConfig{
		Durable:       c.config.ConsumerName,
		AckPolicy:     jetstream.AckExplicitPolicy,
		AckWait:       c.config.AckWaitTimeout,
		MaxDeliver:    c.config.MaxDeliver,
		MaxAckPending: 1,
		FilterSubject: fmt.Sprintf("events.%s.>", c.config.Chain),
	}

	jsConsumer, err := c.js.CreateOrUpdateConsumer(ctx, c.config.StreamName, consumerConfig)
	if err != nil {
		return fmt.Errorf("failed to create/update consumer: %w", err)
	}

	msgChan := make(chan adapter.Message)
	sub, err := jsConsumer.Consume(func(msg adapter.Message) {
		msgChan <- msg
	})
	if err != nil {
		return fmt.Errorf("failed to create subscription: %w", err)
	}
	defer sub.Stop()

	logger.Info("Started consuming messages")

	for {
		select {
		case <-ctx.Done():
			logger.Info("Shutting down event consumer")
			return ctx.Err()
		case msg := <-msgChan:
			if err := c.handleMessage(msg, handler); err != nil {
				return err
			}
		}
	}
}

// handleMessage decodes and processes a single NATS message. The message is
// acked only after the handler returns nil. A retryable error naks the
// message for redelivery; since at most one delivery is in flight, the
// pipeline retries the same event and never advances past it. An error no
// redelivery can fix stops the consumer with the message unacked, so the
// stream stalls on the bad event until an operator intervenes instead of
// dropping it and aggregating over the gap.
func (c *consumer) handleMessage(msg adapter.Message, handler messaging.EventHandler) error {
	var event domain.ChainEvent
	if err := c.json.Unmarshal(msg.Data(), &event); err != nil {
		return fmt.Errorf("failed to unmarshal event: %w", err)
	}

	if err := handler(&event); err != nil {
		if permanent(err) {
			return fmt.Errorf("failed to handle event kind=%s tx=%s log=%d: %w",
				event.Kind, event.TxHash, event.LogIndex, err)
		}
		logger.Error(err,
			zap.String("message", "Failed to handle event, requeueing"),
			zap.String("kind", string(event.Kind)),
			zap.String("txHash", event.TxHash),
			zap.Uint64("logIndex", event.LogIndex))
		if err := msg.Nak(); err != nil {
			logger.Error(err, zap.String("message", "Failed to NAK message"))
		}
		return nil
	}

	if err := msg.Ack(); err != nil {
		logger.Error(err, zap.String("message", "Failed to ACK message"))
	}
	return nil
}

// permanent reports whether the handler error cannot be fixed by
// redelivering the event
func permanent(err error) bool {
	return errors.Is(err, domain.ErrMalformedEvent) ||
		errors.Is(err, domain.ErrOutOfOrderEvent) ||
		errors.Is(err, domain.ErrUnknownEventKind)
}

// Close closes the NATS connection
func (c *consumer) Close() {
	if c.nc == nil {
		return
	}

	c.nc.Close()
}
