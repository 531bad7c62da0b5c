// Package bfs provides tunable options and error definitions
// for breadth-first search over a gridgraph.Grid.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Sentinel errors for BFS execution.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("bfs: grid is nil")

	// ErrSourceInvalid is returned when the source is out of bounds or a barrier.
	ErrSourceInvalid = errors.New("bfs: source cell is out of bounds or a barrier")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrUnreachable is returned by PathTo for a cell the traversal never reached.
	ErrUnreachable = errors.New("bfs: destination not reached")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when Distances is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize the traversal.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when visiting a cell. If it returns an error,
	// the traversal aborts and propagates that error.
	OnVisit func(c gridgraph.Coord, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with context.Background(), no depth
// limit and a no-op OnVisit.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnVisit: func(gridgraph.Coord, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the traversal.
func WithOnVisit(fn func(c gridgraph.Coord, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// Result holds the outcome of a traversal. Slices are indexed by the
// grid's row-major cell index:
//   - Order:  cells in visit sequence.
//   - Depth:  distance in edges from the source, -1 if unreached.
//   - Parent: predecessor in the BFS tree, -1 for the source and unreached.
type Result struct {
	Order  []int
	Depth  []int
	Parent []int

	grid *gridgraph.Grid
}

// DepthOf returns the distance to c, or -1 if c was not reached or is out
// of bounds.
func (r *Result) DepthOf(c gridgraph.Coord) int {
	if !r.grid.InBounds(c) {
		return -1
	}
	return r.Depth[r.grid.Index(c)]
}

// PathTo reconstructs the path from the source to dest, both inclusive.
// Returns ErrUnreachable if dest was not reached.
func (r *Result) PathTo(dest gridgraph.Coord) ([]gridgraph.Coord, error) {
	if r.DepthOf(dest) < 0 {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, dest)
	}
	// build reversed path
	path := []gridgraph.Coord{}
	for cur := r.grid.Index(dest); cur >= 0; cur = r.Parent[cur] {
		path = append(path, r.grid.Coordinate(cur))
	}
	// reverse to get source → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
