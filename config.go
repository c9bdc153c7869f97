package subpub

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// DeliveryPolicy selects how Publish behaves when a subscriber's queue is
// full. The policy is uniform per broker instance.
type DeliveryPolicy string

const (
	// DeliveryDrop delivers without blocking and silently drops the message
	// for any subscriber whose queue is full. One slow subscriber never
	// delays the publisher or the other subscribers. This is the default.
	DeliveryDrop DeliveryPolicy = "drop"

	// DeliveryBlock makes Publish wait for room in each full queue, bounded
	// by Config.PublishTimeout and the publish context. With this policy a
	// publish may block proportionally to subscriber consumption speed.
	DeliveryBlock DeliveryPolicy = "block"
)

// Config holds broker configuration. Field tags follow the env-parsing
// convention so a Config can be populated from the environment with
// LoadConfig.
type Config struct {
	// QueueCapacity is the default capacity of delivery queues created by
	// Subscribe. Individual subscriptions may override it with WithCapacity.
	QueueCapacity int `env:"SUBPUB_QUEUE_CAPACITY" envDefault:"100"`

	// DeliveryPolicy selects drop or block behavior for full queues.
	DeliveryPolicy DeliveryPolicy `env:"SUBPUB_DELIVERY_POLICY" envDefault:"drop"`

	// PublishTimeout bounds how long a blocking delivery may wait per
	// subscriber. Zero means wait until the publish context is done. It has
	// no effect under DeliveryDrop.
	PublishTimeout time.Duration `env:"SUBPUB_PUBLISH_TIMEOUT" envDefault:"0"`
}

// DefaultConfig returns the configuration used by New when no options are
// given.
func DefaultConfig() Config {
	return Config{
		QueueCapacity:  100,
		DeliveryPolicy: DeliveryDrop,
		PublishTimeout: 0,
	}
}

// LoadConfig populates a Config from environment variables and validates it.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse subpub config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first invalid configuration value, if any.
func (c Config) Validate() error {
	if c.QueueCapacity <= 0 {
		return fmt.Errorf("queue capacity must be positive, got %d", c.QueueCapacity)
	}
	switch c.DeliveryPolicy {
	case DeliveryDrop, DeliveryBlock:
	default:
		return fmt.Errorf("unknown delivery policy %q", c.DeliveryPolicy)
	}
	if c.PublishTimeout < 0 {
		return fmt.Errorf("publish timeout must not be negative, got %s", c.PublishTimeout)
	}
	return nil
}
