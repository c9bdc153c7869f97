package subpub

import "github.com/Penlect/subpub/match"

// Message is the unit delivered into a subscriber's queue: the payload the
// publisher posted together with the match result that explains why this
// subscriber received it.
//
// The broker never inspects or mutates Payload; when several subscriptions
// match one publish, they all receive the same value, so payloads shared by
// reference must be treated as immutable by consumers.
type Message[T any] struct {
	// Match describes how the subscription's pattern matched the published
	// topic, including captured groups.
	Match *match.Result

	// Payload is the data passed to Publish, delivered as-is.
	Payload T
}

// Topic returns the topic the message was published to.
func (m Message[T]) Topic() string {
	return m.Match.Topic
}
