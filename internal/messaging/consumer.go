package messaging

import "context"

// Consumer defines the interface for draining queued chain events on the
// indexer side. Implementations must deliver strictly one event at a time and
// only advance past an event once the handler returns nil. A retryable
// handler error leaves the event queued for redelivery; an error no
// redelivery can fix stops consumption entirely with the event still queued.
//
//go:generate mockgen -source=consumer.go -destination=../mocks/consumer.go -package=mocks -mock_names=Consumer=MockConsumer
type Consumer interface {
	// Consume starts delivering events to handler until ctx is cancelled
	Consume(ctx context.Context, handler EventHandler) error
	// Close closes the connection
	Close()
}
