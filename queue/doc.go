// Package queue provides the bounded FIFO delivery queue used as the
// per-subscriber sink in the subpub broker.
//
// A Queue is a thin, type-safe wrapper around a buffered channel. The broker
// only ever writes into it (Put/TryPut); the receiving side belongs entirely
// to the subscriber, which chooses between blocking, timed, and non-blocking
// receives.
//
//	q := queue.New[string](10)
//
//	// Producer side
//	if !q.TryPut("hello") {
//	    // queue full
//	}
//
//	// Consumer side
//	item, err := q.GetTimeout(time.Second)
//	if errors.Is(err, queue.ErrTimeout) {
//	    // nothing arrived within a second
//	}
//
// Blocking variants take a context so a stalled producer or consumer can be
// cancelled:
//
//	ctx, cancel := context.WithCancel(context.Background())
//	defer cancel()
//	item, err := q.Get(ctx)
//
// All operations are safe for concurrent use by multiple goroutines.
package queue
