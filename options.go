package subpub

import (
	"log/slog"
	"time"
)

// brokerOptions collects the settings applied by New. Option functions
// silently ignore invalid values so a broker is always constructed in a
// usable state.
type brokerOptions struct {
	config Config
	logger *slog.Logger
}

// Option configures a Broker.
type Option func(*brokerOptions)

// WithConfig replaces the whole broker configuration. Invalid configs are
// ignored; validate with Config.Validate or use LoadConfig when the values
// come from the environment.
func WithConfig(cfg Config) Option {
	return func(o *brokerOptions) {
		if cfg.Validate() == nil {
			o.config = cfg
		}
	}
}

// WithQueueCapacity sets the default capacity of delivery queues created by
// Subscribe. Non-positive values are ignored.
func WithQueueCapacity(capacity int) Option {
	return func(o *brokerOptions) {
		if capacity > 0 {
			o.config.QueueCapacity = capacity
		}
	}
}

// WithDeliveryPolicy selects the broker-wide full-queue behavior. Unknown
// policies are ignored.
func WithDeliveryPolicy(policy DeliveryPolicy) Option {
	return func(o *brokerOptions) {
		switch policy {
		case DeliveryDrop, DeliveryBlock:
			o.config.DeliveryPolicy = policy
		}
	}
}

// WithPublishTimeout bounds blocking deliveries under DeliveryBlock.
// Negative values are ignored.
func WithPublishTimeout(timeout time.Duration) Option {
	return func(o *brokerOptions) {
		if timeout >= 0 {
			o.config.PublishTimeout = timeout
		}
	}
}

// WithLogger configures structured logging for the broker. By default logs
// are discarded. A nil logger is ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(o *brokerOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// subscribeOptions collects per-subscription settings.
type subscribeOptions struct {
	capacity int
}

// SubscribeOption configures a single subscription.
type SubscribeOption func(*subscribeOptions)

// WithCapacity overrides the broker's default delivery-queue capacity for
// this subscription. Non-positive values are ignored.
func WithCapacity(capacity int) SubscribeOption {
	return func(o *subscribeOptions) {
		if capacity > 0 {
			o.capacity = capacity
		}
	}
}

// publishOptions collects per-publish settings.
type publishOptions struct {
	retain bool
}

// PublishOption configures a single publish.
type PublishOption func(*publishOptions)

// Retain stores the payload as the retained message for the topic, replacing
// any previous retained payload. New subscriptions whose pattern matches the
// topic receive it immediately at subscribe time. Retention does not affect
// delivery to current subscribers.
func Retain() PublishOption {
	return func(o *publishOptions) {
		o.retain = true
	}
}
