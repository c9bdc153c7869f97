package subpub

import (
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Penlect/subpub/match"
	"github.com/Penlect/subpub/queue"
)

func TestRegistry_InsertionOrder(t *testing.T) {
	t.Parallel()

	var r registry[int]
	qA := queue.New[Message[int]](1)
	qB := queue.New[Message[int]](1)
	qC := queue.New[Message[int]](1)

	r.add(match.MustCompile(`topic/a|topic/all`), qA)
	r.add(match.MustCompile(`topic/b|topic/all`), qB)
	r.add(match.MustCompile(`topic/c|topic/all`), qC)

	out, swept := r.matching("topic/all")
	require.Len(t, out, 3)
	assert.Equal(t, 0, swept)
	assert.Same(t, qA, out[0].target)
	assert.Same(t, qB, out[1].target)
	assert.Same(t, qC, out[2].target)
}

func TestRegistry_Remove(t *testing.T) {
	t.Parallel()

	var r registry[int]
	q1 := queue.New[Message[int]](1)
	q2 := queue.New[Message[int]](1)
	id1 := r.add(match.MustCompile(`a`), q1)
	id2 := r.add(match.MustCompile(`a`), q2)

	assert.True(t, r.remove(id1))
	assert.False(t, r.remove(id1), "removal is idempotent")
	assert.Equal(t, 1, r.len())

	out, _ := r.matching("a")
	require.Len(t, out, 1)
	assert.Same(t, q2, out[0].target)

	assert.True(t, r.remove(id2))
	assert.Equal(t, 0, r.len())

	// Keep the queues reachable until the assertions above are done.
	runtime.KeepAlive(q1)
	runtime.KeepAlive(q2)
}

func TestRegistry_RemoveAllCountsLiveEntries(t *testing.T) {
	t.Parallel()

	var r registry[int]
	q1 := queue.New[Message[int]](1)
	q2 := queue.New[Message[int]](1)
	r.add(match.MustCompile(`a`), q1)
	r.add(match.MustCompile(`b`), q2)

	assert.Equal(t, 2, r.removeAll())
	assert.Equal(t, 0, r.len())
	assert.Equal(t, 0, r.removeAll())

	runtime.KeepAlive(q1)
	runtime.KeepAlive(q2)
}

func TestRegistry_SweepsDeadEntries(t *testing.T) {
	t.Parallel()

	var r registry[int]
	kept := queue.New[Message[int]](1)
	r.add(match.MustCompile(`a`), queue.New[Message[int]](1))
	keptID := r.add(match.MustCompile(`a`), kept)

	require.Eventually(t, func() bool {
		runtime.GC()
		out, swept := r.matching("a")
		return swept == 1 && len(out) == 1
	}, 5*time.Second, 10*time.Millisecond)

	assert.Equal(t, 1, r.len())
	assert.Equal(t, keptID, r.entries[0].id)

	// Sweeping is a one-time side effect; the live entry stays.
	out, swept := r.matching("a")
	assert.Equal(t, 0, swept)
	require.Len(t, out, 1)
	assert.Same(t, kept, out[0].target)
}

func TestRetainedStore(t *testing.T) {
	t.Parallel()

	t.Run("put overwrites in place", func(t *testing.T) {
		t.Parallel()

		s := newRetainedStore[string]()
		s.put("a", "1")
		s.put("b", "2")
		s.put("a", "3")

		got, ok := s.get("a")
		require.True(t, ok)
		assert.Equal(t, "3", got)
		assert.Equal(t, []string{"a", "b"}, s.topics(), "overwrite keeps original position")
	})

	t.Run("remove reindexes later entries", func(t *testing.T) {
		t.Parallel()

		s := newRetainedStore[string]()
		s.put("a", "1")
		s.put("b", "2")
		s.put("c", "3")

		assert.True(t, s.remove("a"))
		assert.False(t, s.remove("a"))
		assert.Equal(t, []string{"b", "c"}, s.topics())

		got, ok := s.get("c")
		require.True(t, ok)
		assert.Equal(t, "3", got)
	})

	t.Run("get on missing topic", func(t *testing.T) {
		t.Parallel()

		s := newRetainedStore[int]()
		_, ok := s.get("missing")
		assert.False(t, ok)
		assert.Empty(t, s.all())
	})
}
