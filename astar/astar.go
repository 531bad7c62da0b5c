package astar

import (
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Search runs A* on g from start to end.
//
// Returns a Result whose Outcome is Found, Exhausted or Cancelled; none of
// those is an error. The error is non-nil only for invalid input:
//
//  1. An Option was invalid (ErrOptionViolation).
//  2. g is nil (ErrNilGrid).
//  3. start or end is out of bounds, on a Barrier, or start == end
//     (ErrInvalidGridState, wrapped with the reason).
//
// The grid is painted as the search runs (Open, Closed, Path); call
// g.ClearSearch before searching the same grid again if the previous
// painting matters to the caller.
//
// Complexity:
//
//   - Time:  O(N log N), N = rows×cols.
//   - Space: O(N).
func Search(g *gridgraph.Grid, start, end gridgraph.Coord, opts ...Option) (Result, error) {
	// 1) Build and validate options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return Result{}, cfg.err
	}

	// 2) Validate the grid and endpoints
	if g == nil {
		return Result{}, ErrNilGrid
	}
	if err := validateEndpoints(g, start, end); err != nil {
		return Result{}, err
	}

	// 3) Run
	r := newRunner(g, start, end, cfg)
	r.init()
	r.process()

	return r.res, nil
}

// SearchMarked runs Search between the grid's own Start and End cells.
// A missing or duplicated endpoint is reported as ErrInvalidGridState
// wrapping the gridgraph sentinel (ErrNoStart, ErrNoEnd, …).
func SearchMarked(g *gridgraph.Grid, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGrid
	}
	start, end, err := g.Endpoints()
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrInvalidGridState, err)
	}
	return Search(g, start, end, opts...)
}

func validateEndpoints(g *gridgraph.Grid, start, end gridgraph.Coord) error {
	for _, ep := range []struct {
		name string
		c    gridgraph.Coord
	}{{"start", start}, {"end", end}} {
		s, err := g.State(ep.c)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidGridState, ep.name, err)
		}
		if s == gridgraph.Barrier {
			return fmt.Errorf("%w: %s %v is a barrier", ErrInvalidGridState, ep.name, ep.c)
		}
	}
	if start == end {
		return fmt.Errorf("%w: start and end are both %v", ErrInvalidGridState, start)
	}
	return nil
}

// runner holds the mutable state of a single search.
type runner struct {
	grid       *gridgraph.Grid
	opts       Options
	start, end int
	endCoord   gridgraph.Coord
	scores     *ScoreTable
	open       *Frontier
	nbrs       []int // reused neighbor buffer
	res        Result
}

func newRunner(g *gridgraph.Grid, start, end gridgraph.Coord, cfg Options) *runner {
	return &runner{
		grid:     g,
		opts:     cfg,
		start:    g.Index(start),
		end:      g.Index(end),
		endCoord: end,
		scores:   NewScoreTable(g),
		open:     NewFrontier(g.Len()),
		nbrs:     make([]int, 0, 4),
	}
}

// init seeds g(start)=0, f(start)=h(start,end) and pushes start with seq 0.
func (r *runner) init() {
	h := r.opts.Heuristic(r.grid.Coordinate(r.start), r.endCoord)
	r.scores.seed(r.start, h)
	r.open.Push(r.start, h)
	r.res.Opened = 1
	r.res.Scores = r.scores
}

// process is the main loop. It terminates when the end is popped (Found),
// the frontier drains (Exhausted) or cancellation is requested (Cancelled).
func (r *runner) process() {
	for !r.open.IsEmpty() {
		// 1) Cooperative cancellation, once per iteration
		if r.cancelled() {
			r.restoreEndpoints()
			r.res.Outcome = Cancelled
			return
		}

		// 2) Take the best pending cell
		cur, _ := r.open.Pop()
		r.res.Expanded++

		// 3) Goal test
		if cur == r.end {
			r.finish()
			return
		}

		// 4) Relax neighbors, then report the step and close the cell
		r.expand(cur)
		r.notify(EventStepped, cur)
		if cur != r.start {
			r.grid.Mark(cur, gridgraph.Closed)
		}
	}

	r.res.Outcome = Exhausted
}

func (r *runner) cancelled() bool {
	if r.opts.Ctx.Err() != nil {
		return true
	}
	return r.opts.Cancel != nil && r.opts.Cancel()
}

// expand relaxes every passable neighbor of cur with unit edge weight.
func (r *runner) expand(cur int) {
	r.nbrs = r.grid.AppendNeighbors(r.nbrs[:0], cur)
	tentative := r.scores.g[cur] + 1

	for _, n := range r.nbrs {
		old := r.scores.g[n]
		if tentative >= old {
			continue
		}
		nc := r.grid.Coordinate(n)
		f := tentative + r.opts.Heuristic(nc, r.endCoord)
		r.scores.relax(n, cur, tentative, f)
		if r.opts.OnRelax != nil {
			r.opts.OnRelax(nc, old, tentative)
		}

		switch {
		case !r.open.Contains(n):
			r.open.Push(n, f)
			r.res.Opened++
			r.grid.Mark(n, gridgraph.Open)
			r.notify(EventOpened, n)
		case r.opts.DecreaseKey:
			r.open.Improve(n, f)
		}
		// otherwise the pending entry keeps its first, now stale, key
	}
}

// finish reconstructs the path and repaints the endpoints.
func (r *runner) finish() {
	r.res.Path = Reconstruct(r.grid, r.scores, r.endCoord, r.pathObserver())
	r.restoreEndpoints()
	r.res.Cost = r.scores.g[r.end]
	r.res.Outcome = Found
}

// restoreEndpoints undoes the Open paint an endpoint picks up when pushed.
func (r *runner) restoreEndpoints() {
	r.grid.Mark(r.start, gridgraph.Start)
	r.grid.Mark(r.end, gridgraph.End)
}

func (r *runner) notify(kind EventKind, idx int) {
	if r.opts.Observer == nil {
		return
	}
	r.opts.Observer(Event{Kind: kind, Cell: r.grid.Coordinate(idx), Step: r.res.Expanded})
}

// pathObserver stamps the current step onto reconstruction events.
func (r *runner) pathObserver() Observer {
	if r.opts.Observer == nil {
		return nil
	}
	step := r.res.Expanded
	return func(ev Event) {
		ev.Step = step
		r.opts.Observer(ev)
	}
}
