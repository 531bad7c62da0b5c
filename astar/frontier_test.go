package astar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/astar"
)

func TestFrontier_OrdersByFThenSequence(t *testing.T) {
	q := astar.NewFrontier(10)
	require.True(t, q.IsEmpty())

	// Equal f-scores must come out in push order.
	require.True(t, q.Push(7, 5))
	require.True(t, q.Push(3, 4))
	require.True(t, q.Push(9, 5))
	require.True(t, q.Push(1, 5))
	require.True(t, q.Push(0, 6))
	assert.Equal(t, 5, q.Len())
	assert.Equal(t, uint64(5), q.Pushed())

	var got []int
	for !q.IsEmpty() {
		idx, ok := q.Pop()
		require.True(t, ok)
		got = append(got, idx)
	}
	assert.Equal(t, []int{3, 7, 9, 1, 0}, got)

	_, ok := q.Pop()
	assert.False(t, ok, "Pop on empty frontier")
}

func TestFrontier_Membership(t *testing.T) {
	q := astar.NewFrontier(4)
	require.True(t, q.Push(2, 1))
	assert.True(t, q.Contains(2))
	assert.False(t, q.Contains(1))

	// A pending cell is not pushed twice and consumes no sequence number.
	assert.False(t, q.Push(2, 0))
	assert.Equal(t, uint64(1), q.Pushed())

	f, seq, ok := q.Key(2)
	require.True(t, ok)
	assert.Equal(t, 1, f)
	assert.Equal(t, uint64(0), seq)

	idx, _ := q.Pop()
	assert.Equal(t, 2, idx)
	assert.False(t, q.Contains(2))
	_, _, ok = q.Key(2)
	assert.False(t, ok)

	// Re-pushing after a pop gets a fresh sequence number.
	require.True(t, q.Push(2, 1))
	_, seq, _ = q.Key(2)
	assert.Equal(t, uint64(1), seq)
}

func TestFrontier_Improve(t *testing.T) {
	q := astar.NewFrontier(8)
	q.Push(0, 3)
	q.Push(1, 9)
	q.Push(2, 5)

	assert.False(t, q.Improve(1, 9), "equal key is not an improvement")
	assert.False(t, q.Improve(4, 1), "absent cell")
	assert.True(t, q.Improve(1, 3))

	f, seq, _ := q.Key(1)
	assert.Equal(t, 3, f)
	assert.Equal(t, uint64(1), seq, "sequence survives re-keying")

	first, _ := q.Pop()
	second, _ := q.Pop()
	third, _ := q.Pop()
	assert.Equal(t, []int{0, 1, 2}, []int{first, second, third})
}
