package subpub

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/Penlect/subpub/match"
	"github.com/Penlect/subpub/queue"
)

// Broker is an in-process publish/subscribe broker. Publishers post
// payloads of type T to string topics; subscribers register regular-
// expression patterns and receive matching payloads through per-subscriber
// delivery queues.
//
// Each Broker is independent, with its own lock, subscription registry, and
// retained-message store; multiple brokers can coexist in one process. All
// methods are safe for concurrent use.
type Broker[T any] struct {
	mu       sync.Mutex
	subs     registry[T]
	retained *retainedStore[T]
	config   Config
	logger   *slog.Logger
}

// New creates a Broker for payloads of type T.
//
// Example:
//
//	broker := subpub.New[string](
//	    subpub.WithQueueCapacity(64),
//	    subpub.WithLogger(logger),
//	)
func New[T any](opts ...Option) *Broker[T] {
	o := brokerOptions{
		config: DefaultConfig(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&o)
	}

	return &Broker[T]{
		retained: newRetainedStore[T](),
		config:   o.config,
		logger:   o.logger,
	}
}

// Config returns the broker's effective configuration.
func (b *Broker[T]) Config() Config {
	return b.config
}

// Subscribe compiles pattern, registers a fresh delivery queue for it, and
// returns the subscription handle. The error wraps match.ErrInvalidPattern
// when the pattern does not compile.
//
// Any retained message whose topic matches the new pattern is enqueued
// before Subscribe returns, ahead of every subsequently published message.
//
// The registry keeps only a weak reference to the delivery queue: dropping
// the returned Subscription (and its queue) makes the garbage collector
// reclaim the queue, and the broker sweeps the dead entry during a later
// Publish. Call Unsubscribe for immediate removal.
func (b *Broker[T]) Subscribe(pattern string, opts ...SubscribeOption) (*Subscription[T], error) {
	p, err := match.Compile(pattern)
	if err != nil {
		return nil, err
	}

	o := subscribeOptions{capacity: b.config.QueueCapacity}
	for _, opt := range opts {
		opt(&o)
	}
	q := queue.New[Message[T]](o.capacity)

	b.mu.Lock()
	id := b.subs.add(p, q)

	// Replay retained messages while still holding the lock so the new
	// subscriber cannot miss a concurrently retained publish, nor see one
	// twice. Replay into a fresh queue is best-effort: overflow is dropped,
	// never blocked on, since blocking here would hold the lock.
	replayed := 0
	for _, e := range b.retained.all() {
		res, ok := p.Match(e.topic)
		if !ok {
			continue
		}
		if q.TryPut(Message[T]{Match: res, Payload: e.payload}) {
			replayed++
		} else {
			b.logger.Debug("retained replay dropped, queue full",
				slog.String("pattern", pattern),
				slog.String("topic", e.topic))
		}
	}
	b.mu.Unlock()

	b.logger.Debug("subscribed",
		slog.String("pattern", pattern),
		slog.String("subscription_id", id.String()),
		slog.Int("capacity", o.capacity),
		slog.Int("retained_replayed", replayed))

	return &Subscription[T]{id: id, pattern: p, queue: q, broker: b}, nil
}

// Unsubscribe removes the subscription from the registry and reports whether
// an entry was actually removed. It is idempotent: unsubscribing an unknown
// or already-removed subscription returns false without error, since racing
// explicit unsubscribes against the lazy sweep is an expected outcome of the
// lifecycle model.
func (b *Broker[T]) Unsubscribe(sub *Subscription[T]) bool {
	if sub == nil {
		return false
	}

	b.mu.Lock()
	removed := b.subs.remove(sub.id)
	b.mu.Unlock()

	if removed {
		b.logger.Debug("unsubscribed",
			slog.String("pattern", sub.pattern.Source()),
			slog.String("subscription_id", sub.id.String()))
	}
	return removed
}

// UnsubscribeAll removes every subscription and returns how many of them
// still had a reachable delivery queue.
func (b *Broker[T]) UnsubscribeAll() int {
	b.mu.Lock()
	live := b.subs.removeAll()
	b.mu.Unlock()

	b.logger.Debug("unsubscribed all", slog.Int("live", live))
	return live
}

// Publish matches topic against every live subscription, in subscription
// order, and delivers (match, payload) into each matching queue. It returns
// true iff at least one subscriber accepted the message.
//
// With the Retain option the payload is also stored as the topic's retained
// message, replacing any previous one; retention happens whether or not
// anyone is currently subscribed and never affects the return value.
//
// Full queues are handled per the broker's DeliveryPolicy. Failures are
// isolated per subscriber: one full or cancelled delivery never prevents
// delivery to the others. Under DeliveryDrop the registry lock is never held
// across an enqueue that could block; under DeliveryBlock the blocking waits
// also happen outside the lock, so a stalled subscriber delays only this
// Publish call, not concurrent broker operations.
func (b *Broker[T]) Publish(ctx context.Context, topic string, payload T, opts ...PublishOption) bool {
	var o publishOptions
	for _, opt := range opts {
		opt(&o)
	}

	b.mu.Lock()
	targets, swept := b.subs.matching(topic)
	if o.retain {
		b.retained.put(topic, payload)
	}
	b.mu.Unlock()

	if swept > 0 {
		b.logger.Debug("swept dead subscriptions",
			slog.String("topic", topic),
			slog.Int("swept", swept))
	}

	delivered := 0
	for _, d := range targets {
		msg := Message[T]{Match: d.result, Payload: payload}
		if b.deliver(ctx, d.target, msg) {
			delivered++
		} else {
			b.logger.Debug("delivery failed, queue full",
				slog.String("topic", topic),
				slog.String("pattern", d.result.Pattern.Source()))
		}
	}

	b.logger.Debug("published",
		slog.String("topic", topic),
		slog.Int("matched", len(targets)),
		slog.Int("delivered", delivered),
		slog.Bool("retained", o.retain))

	return delivered > 0
}

// deliver enqueues one message per the broker-wide delivery policy.
func (b *Broker[T]) deliver(ctx context.Context, q *queue.Queue[Message[T]], msg Message[T]) bool {
	if b.config.DeliveryPolicy != DeliveryBlock {
		return q.TryPut(msg)
	}

	if b.config.PublishTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, b.config.PublishTimeout)
		defer cancel()
	}
	return q.Put(ctx, msg) == nil
}

// Retained returns the retained payload for the exact topic, if any.
func (b *Broker[T]) Retained(topic string) (T, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.retained.get(topic)
}

// ClearRetained removes the retained payload for the exact topic and reports
// whether one existed.
func (b *Broker[T]) ClearRetained(topic string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.retained.remove(topic)
}

// RetainedTopics returns the topics that currently hold a retained message,
// in the order they were first retained.
func (b *Broker[T]) RetainedTopics() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.retained.topics()
}

// Subscriptions returns the number of registered subscriptions, including
// dead entries not yet swept.
func (b *Broker[T]) Subscriptions() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.subs.len()
}
