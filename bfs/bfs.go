package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// walker encapsulates mutable BFS state.
type walker struct {
	grid  *gridgraph.Grid
	opts  Options
	ctx   context.Context
	queue []int
	nbrs  []int
	res   *Result
}

// Distances runs breadth-first search on g from the source cell, applying
// any number of functional Options. Neighbors are expanded in the grid's
// DOWN, UP, RIGHT, LEFT order. The grid is only read.
//
// Returns ErrOptionViolation for bad options, ErrGridNil for a nil grid,
// ErrSourceInvalid for an unusable source, the context error on
// cancellation, or any OnVisit error. On cancellation or hook error the
// partial Result is returned alongside the error.
func Distances(g *gridgraph.Grid, from gridgraph.Coord, opts ...Option) (*Result, error) {
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if g == nil {
		return nil, ErrGridNil
	}
	if s, err := g.State(from); err != nil || s == gridgraph.Barrier {
		return nil, fmt.Errorf("%w: %v", ErrSourceInvalid, from)
	}

	n := g.Len()
	w := &walker{
		grid:  g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]int, 0, n),
		nbrs:  make([]int, 0, 4),
		res: &Result{
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
			grid:   g,
		},
	}
	for i := 0; i < n; i++ {
		w.res.Depth[i] = -1
		w.res.Parent[i] = -1
	}

	// Seed queue with the source (no parent)
	w.enqueue(g.Index(from), 0, -1)
	return w.res, w.loop()
}

// enqueue records depth and parent of idx and appends it to the queue.
func (w *walker) enqueue(idx, depth, parent int) {
	w.res.Depth[idx] = depth
	w.res.Parent[idx] = parent
	w.queue = append(w.queue, idx)
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for head := 0; head < len(w.queue); head++ {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		u := w.queue[head]
		d := w.res.Depth[u]
		w.res.Order = append(w.res.Order, u)
		if err := w.opts.OnVisit(w.grid.Coordinate(u), d); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %v: %w", w.grid.Coordinate(u), err)
		}

		if w.opts.MaxDepth > 0 && d >= w.opts.MaxDepth {
			continue
		}
		w.nbrs = w.grid.AppendNeighbors(w.nbrs[:0], u)
		for _, v := range w.nbrs {
			if w.res.Depth[v] < 0 {
				w.enqueue(v, d+1, u)
			}
		}
	}
	return nil
}
