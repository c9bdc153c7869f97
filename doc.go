// Package subpub implements an in-process publish/subscribe broker with
// regular-expression topic matching, per-subscriber delivery queues, and
// single latest-value message retention per topic.
//
// Publishers post payloads of any type to string topics. Subscribers
// register a pattern and receive every matching payload, together with the
// structured match result (span, positional and named capture groups),
// through their own bounded FIFO queue.
//
// # Basic Usage
//
//	broker := subpub.New[string]()
//
//	sub, err := broker.Subscribe(`/food/(\w+)/order-(\d+)`)
//	if err != nil {
//	    // errors.Is(err, match.ErrInvalidPattern) for bad regexps
//	}
//	defer sub.Unsubscribe()
//
//	broker.Publish(ctx, "/food/pizza/order-66", "beef pepperoni")
//
//	msg, err := sub.Next(ctx)
//	// msg.Payload == "beef pepperoni"
//	// msg.Match.Groups == []string{"pizza", "66"}
//	// msg.Match.Topic == "/food/pizza/order-66"
//
// # Retained Messages
//
// Publish with the Retain option stores the payload as the topic's latest
// retained message. A later Subscribe whose pattern matches the topic
// receives the retained payload immediately, before any subsequently
// published message:
//
//	broker.Publish(ctx, "sensor/kitchen", "21.5C", subpub.Retain())
//
//	sub, _ := broker.Subscribe(`sensor/.*`)
//	msg, _ := sub.Queue().TryGet() // retained "21.5C", no waiting
//
// A new retained publish to the same topic replaces the previous payload.
//
// # Delivery Semantics
//
// For a single publish, matching subscribers are notified in subscription
// order. Delivery is best-effort: by default (DeliveryDrop) a full queue
// drops the message for that subscriber only, and one subscriber's full or
// stalled queue never blocks the publisher or the other subscribers.
// Publish returns true iff at least one subscriber accepted the message.
// DeliveryBlock trades this isolation for backpressure, bounded by
// PublishTimeout and the publish context.
//
// # Subscription Lifecycle
//
// The broker holds only a weak reference to each delivery queue. A
// subscription ends either explicitly, through Unsubscribe or
// UnsubscribeAll, or automatically: once the caller drops the Subscription
// handle and its queue, the garbage collector reclaims the queue and the
// broker sweeps the dead registry entry during a later Publish. The sweep is
// lazy, so automatic removal is eventual rather than immediate.
//
// # MQTT-Style Topics
//
// The match subpackage translates MQTT topic filters into patterns:
//
//	sub, _ := broker.Subscribe(match.MQTT("room/+/sensor/#"))
//
// # Configuration
//
// Brokers are configured with functional options, or from the environment
// through LoadConfig and WithConfig:
//
//	cfg, err := subpub.LoadConfig() // SUBPUB_* variables
//	broker := subpub.New[[]byte](subpub.WithConfig(cfg))
//
// All broker methods are safe for concurrent use. Each Broker instance is
// fully independent; there is no package-level shared state.
package subpub
