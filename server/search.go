package server

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// Algorithm names accepted in a search request.
const (
	AlgorithmAStar = "astar"
	AlgorithmBFS   = "bfs"
)

var (
	// ErrUnknownAlgorithm is returned for an algorithm name other than
	// "astar" or "bfs".
	ErrUnknownAlgorithm = errors.New("server: unknown algorithm")

	// ErrGridTooLarge is returned when rows×cols exceeds Config.MaxCells.
	ErrGridTooLarge = errors.New("server: grid exceeds cell limit")

	// errReached stops a breadth-first walk once the end is visited.
	errReached = errors.New("reached")
)

// outcome is what either engine reports back to the handler.
type outcome struct {
	Outcome  astar.Outcome
	Path     []gridgraph.Coord
	Cost     int
	Expanded int
	Opened   int
}

// runSearch searches g between its own Start and End cells with the named
// algorithm, painting g as it goes. ctx expiry yields astar.Cancelled.
func runSearch(ctx context.Context, g *gridgraph.Grid, algorithm string, decreaseKey bool) (outcome, error) {
	switch algorithm {
	case "", AlgorithmAStar:
		opts := []astar.Option{astar.WithContext(ctx)}
		if decreaseKey {
			opts = append(opts, astar.WithDecreaseKey())
		}
		res, err := astar.SearchMarked(g, opts...)
		if err != nil {
			return outcome{}, err
		}
		return outcome{
			Outcome:  res.Outcome,
			Path:     res.Path,
			Cost:     res.Cost,
			Expanded: res.Expanded,
			Opened:   res.Opened,
		}, nil

	case AlgorithmBFS:
		return runBFS(ctx, g)

	default:
		return outcome{}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algorithm)
	}
}

// runBFS walks g breadth-first from Start and stops when End is visited.
// Cells are painted like an A* run: visited cells Closed, discovered ones
// Open, the path Path.
func runBFS(ctx context.Context, g *gridgraph.Grid) (outcome, error) {
	start, end, err := g.Endpoints()
	if err != nil {
		return outcome{}, fmt.Errorf("%w: %w", astar.ErrInvalidGridState, err)
	}

	res, err := bfs.Distances(g, start,
		bfs.WithContext(ctx),
		bfs.WithOnVisit(func(c gridgraph.Coord, _ int) error {
			if c == end {
				return errReached
			}
			return nil
		}),
	)

	var out outcome
	switch {
	case err == nil:
		out.Outcome = astar.Exhausted
	case errors.Is(err, errReached):
		out.Outcome = astar.Found
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		out.Outcome = astar.Cancelled
	default:
		return outcome{}, err
	}

	out.Expanded = len(res.Order)
	for idx, d := range res.Depth {
		if d < 0 {
			continue
		}
		out.Opened++
		if s := g.At(idx); s != gridgraph.Start && s != gridgraph.End {
			g.Mark(idx, gridgraph.Open)
		}
	}
	for _, idx := range res.Order {
		if s := g.At(idx); s != gridgraph.Start && s != gridgraph.End {
			g.Mark(idx, gridgraph.Closed)
		}
	}

	if out.Outcome == astar.Found {
		out.Path, err = res.PathTo(end)
		if err != nil {
			return outcome{}, err
		}
		out.Cost = len(out.Path) - 1
		for _, c := range out.Path[1 : len(out.Path)-1] {
			g.Mark(g.Index(c), gridgraph.Path)
		}
	}
	return out, nil
}
