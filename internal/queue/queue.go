// Package queue provides the notification queue transport.
package queue

import "context"

// Publisher sends messages to a queue.
type Publisher interface {
	Publish(ctx context.Context, payload []byte) error
	// PublishBatch sends all payloads in a single round trip. Callers own
	// any cap on batch size; the publisher sends whatever it is given.
	PublishBatch(ctx context.Context, payloads [][]byte) error
	Close() error
}

// Handler processes one queue message. A non-nil error is logged by the
// consumer; the message is not redelivered.
type Handler func(ctx context.Context, payload []byte) error

// Consumer reads messages from a queue and dispatches them to a handler.
type Consumer interface {
	// Consume blocks until ctx is cancelled, invoking handler per message.
	Consume(ctx context.Context, handler Handler) error
	Close() error
}
