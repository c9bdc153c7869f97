package queue

import (
	"context"
	"errors"
	"time"
)

// DefaultCapacity is the queue capacity used when New receives a
// non-positive value.
const DefaultCapacity = 100

// ErrTimeout is returned by GetTimeout when no item arrives before the
// timeout elapses.
var ErrTimeout = errors.New("queue: receive timed out")

// Queue is a bounded, thread-safe FIFO. The zero value is not usable; create
// instances with New.
type Queue[T any] struct {
	ch chan T
}

// New creates a queue holding at most capacity items. A non-positive
// capacity falls back to DefaultCapacity.
func New[T any](capacity int) *Queue[T] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Queue[T]{ch: make(chan T, capacity)}
}

// Put appends item to the queue, blocking while the queue is full. It
// returns the context error if ctx is done before space becomes available.
func (q *Queue[T]) Put(ctx context.Context, item T) error {
	select {
	case q.ch <- item:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// TryPut appends item without blocking and reports whether the queue had
// room for it.
func (q *Queue[T]) TryPut(item T) bool {
	select {
	case q.ch <- item:
		return true
	default:
		return false
	}
}

// Get removes and returns the oldest item, blocking while the queue is
// empty. It returns the context error if ctx is done first.
func (q *Queue[T]) Get(ctx context.Context) (T, error) {
	select {
	case item := <-q.ch:
		return item, nil
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// GetTimeout is like Get but waits at most timeout. It returns ErrTimeout
// when nothing arrives in time.
func (q *Queue[T]) GetTimeout(timeout time.Duration) (T, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case item := <-q.ch:
		return item, nil
	case <-timer.C:
		var zero T
		return zero, ErrTimeout
	}
}

// TryGet removes and returns the oldest item without blocking. The second
// return value reports whether an item was available.
func (q *Queue[T]) TryGet() (T, bool) {
	select {
	case item := <-q.ch:
		return item, true
	default:
		var zero T
		return zero, false
	}
}

// Len returns the number of items currently queued.
func (q *Queue[T]) Len() int {
	return len(q.ch)
}

// Cap returns the queue capacity.
func (q *Queue[T]) Cap() int {
	return cap(q.ch)
}
