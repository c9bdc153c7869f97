package subpub

import (
	"weak"

	"github.com/google/uuid"

	"github.com/Penlect/subpub/match"
	"github.com/Penlect/subpub/queue"
)

// entry is one live subscription: a pattern plus a non-owning reference to
// the subscriber's delivery queue. The registry deliberately holds only a
// weak pointer so that a subscription whose queue is no longer reachable
// anywhere else can be reclaimed by the garbage collector and swept out
// lazily on the next traversal.
type entry[T any] struct {
	id      uuid.UUID
	pattern *match.Pattern
	target  weak.Pointer[queue.Queue[Message[T]]]
}

// delivery pairs a strong reference to a matching subscriber's queue with
// the match result to deliver. Holding the strong reference keeps the queue
// alive for the duration of the fan-out.
type delivery[T any] struct {
	target *queue.Queue[Message[T]]
	result *match.Result
}

// registry is the ordered collection of live subscriptions. It has no lock
// of its own: every method must be called with the owning broker's mutex
// held, so that a publish observes a consistent snapshot relative to
// concurrent subscribes and unsubscribes.
type registry[T any] struct {
	entries []entry[T]
}

// add appends a subscription and returns its handle. Insertion order is
// preserved so enumeration during publish is deterministic.
func (r *registry[T]) add(p *match.Pattern, target *queue.Queue[Message[T]]) uuid.UUID {
	id := uuid.New()
	r.entries = append(r.entries, entry[T]{
		id:      id,
		pattern: p,
		target:  weak.Make(target),
	})
	return id
}

// remove deletes the subscription with the given handle and reports whether
// an entry was actually removed. Removing an unknown or already-removed
// handle is a no-op, which keeps teardown idempotent.
func (r *registry[T]) remove(id uuid.UUID) bool {
	for i, e := range r.entries {
		if e.id == id {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return true
		}
	}
	return false
}

// removeAll clears every subscription and returns how many of them still had
// a reachable delivery queue at the time of removal.
func (r *registry[T]) removeAll() int {
	live := 0
	for _, e := range r.entries {
		if e.target.Value() != nil {
			live++
		}
	}
	r.entries = nil
	return live
}

// len returns the number of registered entries, including any not yet swept.
func (r *registry[T]) len() int {
	return len(r.entries)
}

// matching returns, in insertion order, a delivery for every live entry
// whose pattern matches topic. Entries whose queue has been reclaimed are
// removed as a side effect; the second return value reports how many were
// swept.
func (r *registry[T]) matching(topic string) ([]delivery[T], int) {
	var out []delivery[T]
	kept := r.entries[:0]
	swept := 0
	for _, e := range r.entries {
		q := e.target.Value()
		if q == nil {
			swept++
			continue
		}
		kept = append(kept, e)
		if res, ok := e.pattern.Match(topic); ok {
			out = append(out, delivery[T]{target: q, result: res})
		}
	}
	// Clear the tail so swept entries do not pin their uuids.
	for i := len(kept); i < len(r.entries); i++ {
		r.entries[i] = entry[T]{}
	}
	r.entries = kept
	return out, swept
}
