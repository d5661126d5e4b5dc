package store

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestTaskQueue_FIFO verifies tasks come out in the order they went in.
func TestTaskQueue_FIFO(t *testing.T) {
	t.Parallel()

	q := newTaskQueue[int]()

	for i := range 5 {
		require.True(t, q.enqueue(task[int]{action: i}))
	}

	require.Equal(t, 5, q.len())

	for i := range 5 {
		got, ok, done := q.dequeue()
		require.True(t, ok)
		require.False(t, done)
		require.Equal(t, i, got.action)
	}

	_, ok, done := q.dequeue()
	require.False(t, ok)
	require.False(t, done)
}

// TestTaskQueue_SignalCoalesces ensures several enqueues leave a single pending wake-up.
func TestTaskQueue_SignalCoalesces(t *testing.T) {
	t.Parallel()

	q := newTaskQueue[int]()
	q.enqueue(task[int]{action: 1})
	q.enqueue(task[int]{action: 2})

	<-q.wait()

	select {
	case <-q.wait():
		t.Fatal("expected a single coalesced signal")
	default:
	}
}

// TestTaskQueue_CloseDrainsThenDone checks that closing rejects new tasks but keeps queued ones.
func TestTaskQueue_CloseDrainsThenDone(t *testing.T) {
	t.Parallel()

	q := newTaskQueue[string]()
	q.enqueue(task[string]{action: "a"})

	q.close()
	q.close()

	require.False(t, q.enqueue(task[string]{action: "b"}))

	got, ok, done := q.dequeue()
	require.True(t, ok)
	require.False(t, done)
	require.Equal(t, "a", got.action)

	_, ok, done = q.dequeue()
	require.False(t, ok)
	require.True(t, done)

	// A closed queue never blocks the consumer.
	<-q.wait()
}
