package domain

import "errors"

var (
	// ErrMalformedEvent is returned when an event fails identity validation
	ErrMalformedEvent = errors.New("malformed event")

	// ErrOutOfOrderEvent is returned when an event regresses the
	// (block, tx index, log index) sequence
	ErrOutOfOrderEvent = errors.New("event out of order")

	// ErrUnknownEventKind is returned for event kinds the indexer does not handle
	ErrUnknownEventKind = errors.New("unknown event kind")
)
