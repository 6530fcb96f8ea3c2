package containers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/animath/engine/core"
)

func TestRingQueueFIFO(t *testing.T) {
	q := NewRingQueue[int](3)
	assert.True(t, q.IsEmpty())
	assert.Equal(t, 3, q.Cap())

	for i := 1; i <= 3; i++ {
		require.NoError(t, q.Enqueue(i))
	}
	assert.True(t, q.IsFull())
	assert.ErrorIs(t, q.Enqueue(4), core.ErrQueueFull)

	front, err := q.Peek()
	require.NoError(t, err)
	assert.Equal(t, 1, front)

	v, err := q.Dequeue()
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	// Wrap the write index around.
	require.NoError(t, q.Enqueue(4))
	assert.Equal(t, []int{2, 3, 4}, q.Items())

	for _, want := range []int{2, 3, 4} {
		v, err := q.Dequeue()
		require.NoError(t, err)
		assert.Equal(t, want, v)
	}
	_, err = q.Dequeue()
	assert.ErrorIs(t, err, core.ErrQueueEmpty)
	_, err = q.Peek()
	assert.ErrorIs(t, err, core.ErrQueueEmpty)
}

func TestRingQueuePushEvictsOldest(t *testing.T) {
	q := NewRingQueue[string](2)

	_, dropped := q.Push("a")
	assert.False(t, dropped)
	q.Push("b")

	old, dropped := q.Push("c")
	assert.True(t, dropped)
	assert.Equal(t, "a", old)
	assert.Equal(t, []string{"b", "c"}, q.Items())
	assert.Equal(t, 2, q.Len())
}

func TestRingQueueZeroCapacity(t *testing.T) {
	q := NewRingQueue[int](0)
	assert.True(t, q.IsEmpty())
	assert.True(t, q.IsFull())
	assert.ErrorIs(t, q.Enqueue(1), core.ErrQueueFull)

	v, dropped := q.Push(7)
	assert.True(t, dropped)
	assert.Equal(t, 7, v)
	assert.Empty(t, q.Items())
}
