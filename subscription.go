package subpub

import (
	"context"

	"github.com/google/uuid"

	"github.com/Penlect/subpub/match"
	"github.com/Penlect/subpub/queue"
)

// Subscription is the caller-owned handle for one pattern subscription. It
// holds the only library-side strong reference to the delivery queue, so the
// subscription stays registered for as long as the caller keeps the handle
// (or the queue) reachable.
type Subscription[T any] struct {
	id      uuid.UUID
	pattern *match.Pattern
	queue   *queue.Queue[Message[T]]
	broker  *Broker[T]
}

// ID returns the opaque subscription handle.
func (s *Subscription[T]) ID() uuid.UUID {
	return s.id
}

// Pattern returns the subscription's pattern source text.
func (s *Subscription[T]) Pattern() string {
	return s.pattern.Source()
}

// Queue returns the delivery queue to read matched messages from.
func (s *Subscription[T]) Queue() *queue.Queue[Message[T]] {
	return s.queue
}

// Next blocks until the next matching message arrives or ctx is done. It is
// shorthand for s.Queue().Get(ctx).
func (s *Subscription[T]) Next(ctx context.Context) (Message[T], error) {
	return s.queue.Get(ctx)
}

// Unsubscribe removes the subscription from its broker immediately and
// reports whether it was still registered. It is safe to call more than
// once; later calls return false.
func (s *Subscription[T]) Unsubscribe() bool {
	return s.broker.Unsubscribe(s)
}
