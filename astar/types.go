package astar

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Sentinel errors returned by Search.
var (
	// ErrNilGrid indicates that a nil *gridgraph.Grid was passed.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrInvalidGridState indicates the endpoints do not describe a
	// searchable problem: missing, out of bounds, on a barrier, or equal.
	ErrInvalidGridState = errors.New("astar: invalid grid state")

	// ErrOptionViolation indicates an invalid Option was supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")
)

// Outcome is the terminal state of a search.
type Outcome int

const (
	// Found means the end was popped from the frontier and a path built.
	Found Outcome = iota + 1
	// Exhausted means the frontier drained; no path exists.
	Exhausted
	// Cancelled means the caller stopped the search early.
	Cancelled
)

// String returns the lower-case outcome name.
func (o Outcome) String() string {
	switch o {
	case Found:
		return "found"
	case Exhausted:
		return "exhausted"
	case Cancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// EventKind tells an Observer which notification point was reached.
type EventKind int

const (
	// EventOpened: a new cell entered the frontier.
	EventOpened EventKind = iota
	// EventStepped: one popped cell was fully expanded.
	EventStepped
	// EventPathMarked: a cell was marked as part of the final path.
	EventPathMarked
)

// String returns the lower-case event name.
func (k EventKind) String() string {
	switch k {
	case EventOpened:
		return "opened"
	case EventStepped:
		return "stepped"
	case EventPathMarked:
		return "path"
	default:
		return fmt.Sprintf("event(%d)", int(k))
	}
}

// Event is passed to the Observer at every notification point.
// Step is the number of cells popped so far.
type Event struct {
	Kind EventKind
	Cell gridgraph.Coord
	Step int
}

// Observer receives search progress. It is called synchronously from the
// search loop and must not mutate the grid.
type Observer func(Event)

// Result holds the outcome of a search.
//
//   - Path:     start..end inclusive when Outcome == Found, nil otherwise.
//   - Cost:     g(end), the number of edges on Path; 0 unless Found.
//   - Expanded: cells popped from the frontier.
//   - Opened:   cells pushed onto the frontier, the start included.
//   - Scores:   final g/f/predecessor table of the run.
type Result struct {
	Outcome  Outcome
	Path     []gridgraph.Coord
	Cost     int
	Expanded int
	Opened   int
	Scores   *ScoreTable
}

// Options configures a search. Build it through Option values.
type Options struct {
	// Ctx is polled once per loop iteration; a done context cancels.
	Ctx context.Context

	// Cancel, if set, is polled alongside Ctx; returning true cancels.
	Cancel func() bool

	// Observer receives Opened, Stepped and PathMarked notifications.
	Observer Observer

	// OnRelax is called whenever a cell's g-score is lowered.
	// It is a diagnostic hook, not an observer notification point.
	OnRelax func(c gridgraph.Coord, oldG, newG int)

	// DecreaseKey re-keys cells already in the frontier when their f drops.
	DecreaseKey bool

	// Heuristic estimates the remaining cost. Defaults to Manhattan.
	Heuristic Heuristic

	// internal error recorded during option parsing
	err error
}

// Option configures Search via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// DefaultOptions returns Options with:
//   - context.Background()
//   - no cancel callback, observer or relax hook
//   - source-compatible stale frontier entries (DecreaseKey = false)
//   - the Manhattan heuristic
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Heuristic: Manhattan,
	}
}

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithCancel registers a poll callback; returning true stops the search.
func WithCancel(fn func() bool) Option {
	return func(o *Options) {
		o.Cancel = fn
	}
}

// WithObserver registers the progress observer.
func WithObserver(fn Observer) Option {
	return func(o *Options) {
		o.Observer = fn
	}
}

// WithOnRelax registers a hook called on every g-score improvement.
func WithOnRelax(fn func(c gridgraph.Coord, oldG, newG int)) Option {
	return func(o *Options) {
		o.OnRelax = fn
	}
}

// WithDecreaseKey re-keys frontier cells in place when a better path to
// them is found, instead of leaving their first key live.
func WithDecreaseKey() Option {
	return func(o *Options) {
		o.DecreaseKey = true
	}
}

// WithHeuristic replaces the Manhattan heuristic. h must be admissible for
// the result to be a shortest path; nil is an ErrOptionViolation.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h == nil {
			o.err = fmt.Errorf("%w: heuristic must not be nil", ErrOptionViolation)
			return
		}
		o.Heuristic = h
	}
}
