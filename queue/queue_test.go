package queue_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Penlect/subpub/queue"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("uses requested capacity", func(t *testing.T) {
		t.Parallel()

		q := queue.New[int](5)
		assert.Equal(t, 5, q.Cap())
		assert.Equal(t, 0, q.Len())
	})

	t.Run("falls back to default capacity", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, queue.DefaultCapacity, queue.New[int](0).Cap())
		assert.Equal(t, queue.DefaultCapacity, queue.New[int](-1).Cap())
	})
}

func TestQueue_FIFO(t *testing.T) {
	t.Parallel()

	q := queue.New[int](10)
	ctx := context.Background()

	for i := range 5 {
		require.NoError(t, q.Put(ctx, i))
	}
	assert.Equal(t, 5, q.Len())

	for i := range 5 {
		item, err := q.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, i, item)
	}
	assert.Equal(t, 0, q.Len())
}

func TestQueue_TryPut(t *testing.T) {
	t.Parallel()

	q := queue.New[string](1)
	assert.True(t, q.TryPut("first"))
	assert.False(t, q.TryPut("second"), "full queue must reject without blocking")

	item, ok := q.TryGet()
	require.True(t, ok)
	assert.Equal(t, "first", item)
}

func TestQueue_TryGet(t *testing.T) {
	t.Parallel()

	q := queue.New[string](1)
	_, ok := q.TryGet()
	assert.False(t, ok, "empty queue must report no item")
}

func TestQueue_GetTimeout(t *testing.T) {
	t.Parallel()

	t.Run("returns item before timeout", func(t *testing.T) {
		t.Parallel()

		q := queue.New[string](1)
		require.True(t, q.TryPut("hello"))

		item, err := q.GetTimeout(time.Second)
		require.NoError(t, err)
		assert.Equal(t, "hello", item)
	})

	t.Run("times out on empty queue", func(t *testing.T) {
		t.Parallel()

		q := queue.New[string](1)
		_, err := q.GetTimeout(10 * time.Millisecond)
		assert.ErrorIs(t, err, queue.ErrTimeout)
	})
}

func TestQueue_ContextCancellation(t *testing.T) {
	t.Parallel()

	t.Run("get returns on cancel", func(t *testing.T) {
		t.Parallel()

		q := queue.New[int](1)
		ctx, cancel := context.WithCancel(context.Background())

		done := make(chan error, 1)
		go func() {
			_, err := q.Get(ctx)
			done <- err
		}()

		cancel()
		select {
		case err := <-done:
			assert.ErrorIs(t, err, context.Canceled)
		case <-time.After(time.Second):
			t.Fatal("Get did not return after context cancellation")
		}
	})

	t.Run("put returns on cancel when full", func(t *testing.T) {
		t.Parallel()

		q := queue.New[int](1)
		require.True(t, q.TryPut(1))

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		err := q.Put(ctx, 2)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Equal(t, 1, q.Len())
	})
}
