package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/gridgraph"
)

func mustGrid(t *testing.T, lines ...string) *gridgraph.Grid {
	t.Helper()
	g, err := gridgraph.FromRows(lines)
	require.NoError(t, err)
	return g
}

// TestDistances_Errors verifies that invalid inputs and options are rejected.
func TestDistances_Errors(t *testing.T) {
	_, err := bfs.Distances(nil, gridgraph.Coord{})
	assert.ErrorIs(t, err, bfs.ErrGridNil)

	g := mustGrid(t, "#.")
	_, err = bfs.Distances(g, gridgraph.Coord{Row: 0, Col: 0})
	assert.ErrorIs(t, err, bfs.ErrSourceInvalid)
	_, err = bfs.Distances(g, gridgraph.Coord{Row: 1, Col: 0})
	assert.ErrorIs(t, err, bfs.ErrSourceInvalid)
	_, err = bfs.Distances(g, gridgraph.Coord{Row: 0, Col: 1}, bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

// TestDistances_OpenGrid checks that depth is the Manhattan distance when
// nothing is in the way.
func TestDistances_OpenGrid(t *testing.T) {
	g, err := gridgraph.NewGrid(4, 6)
	require.NoError(t, err)

	res, err := bfs.Distances(g, gridgraph.Coord{Row: 1, Col: 2})
	require.NoError(t, err)
	require.Len(t, res.Order, g.Len())
	for idx := 0; idx < g.Len(); idx++ {
		c := g.Coordinate(idx)
		want := abs(c.Row-1) + abs(c.Col-2)
		assert.Equal(t, want, res.Depth[idx], "depth at %v", c)
	}
	assert.Equal(t, g.Index(gridgraph.Coord{Row: 1, Col: 2}), res.Order[0])
}

// TestDistances_Detour forces a path around a wall.
//
//	S # .
//	. # .
//	. . .
func TestDistances_Detour(t *testing.T) {
	g := mustGrid(t,
		"S#.",
		".#.",
		"...",
	)
	res, err := bfs.Distances(g, gridgraph.Coord{})
	require.NoError(t, err)

	target := gridgraph.Coord{Row: 0, Col: 2}
	assert.Equal(t, 6, res.DepthOf(target))
	path, err := res.PathTo(target)
	require.NoError(t, err)
	assert.Len(t, path, 7)
	assert.Equal(t, gridgraph.Coord{}, path[0])
	assert.Equal(t, target, path[6])

	assert.Equal(t, -1, res.DepthOf(gridgraph.Coord{Row: 0, Col: 1}), "barrier is never reached")
	assert.Equal(t, -1, res.DepthOf(gridgraph.Coord{Row: 9, Col: 9}))
}

func TestDistances_Unreachable(t *testing.T) {
	g := mustGrid(t, ".#.")
	res, err := bfs.Distances(g, gridgraph.Coord{})
	require.NoError(t, err)

	_, err = res.PathTo(gridgraph.Coord{Row: 0, Col: 2})
	assert.ErrorIs(t, err, bfs.ErrUnreachable)
	assert.Equal(t, []int{0}, res.Order)
}

func TestDistances_MaxDepth(t *testing.T) {
	g, _ := gridgraph.NewGrid(1, 10)
	res, err := bfs.Distances(g, gridgraph.Coord{}, bfs.WithMaxDepth(3))
	require.NoError(t, err)
	assert.Len(t, res.Order, 4)
	assert.Equal(t, -1, res.DepthOf(gridgraph.Coord{Row: 0, Col: 4}))
}

func TestDistances_HookErrorAndCancel(t *testing.T) {
	g, _ := gridgraph.NewGrid(3, 3)

	boom := errors.New("boom")
	_, err := bfs.Distances(g, gridgraph.Coord{}, bfs.WithOnVisit(func(c gridgraph.Coord, depth int) error {
		if depth == 2 {
			return boom
		}
		return nil
	}))
	assert.ErrorIs(t, err, boom)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := bfs.Distances(g, gridgraph.Coord{}, bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, res)
	assert.Empty(t, res.Order)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
