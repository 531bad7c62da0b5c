package gridgraph

import "fmt"

// DefaultSize is the side length of the square arena used by the
// interactive front ends.
const DefaultSize = 25

// Coord identifies a cell by row and column.
type Coord struct {
	Row, Col int
}

// String renders the coordinate as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// State is the logical traversal state of a cell.
// Presentation layers map it to colors or glyphs as they like.
type State uint8

const (
	// Empty is a free, unvisited cell.
	Empty State = iota
	// Barrier blocks movement.
	Barrier
	// Start marks the search origin.
	Start
	// End marks the search target.
	End
	// Open marks a cell that entered the frontier.
	Open
	// Closed marks a cell whose neighbors were expanded.
	Closed
	// Path marks a cell on the reconstructed shortest path.
	Path
)

var stateNames = [...]string{"empty", "barrier", "start", "end", "open", "closed", "path"}

var stateGlyphs = [...]byte{'.', '#', 'S', 'E', 'o', 'x', '*'}

// String returns the lower-case name of the state.
func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("state(%d)", s)
}

// Glyph returns the single-byte text notation of the state.
func (s State) Glyph() byte {
	if int(s) < len(stateGlyphs) {
		return stateGlyphs[s]
	}
	return '?'
}

// IsSearch reports whether s is written by a search (Open, Closed, Path)
// rather than by the caller.
func (s State) IsSearch() bool {
	return s == Open || s == Closed || s == Path
}

// Grid is a fixed-size rectangular arena of cells stored row-major.
// Its dimensions never change after construction.
type Grid struct {
	rows, cols int
	cells      []State
}

// neighborOffsets lists DOWN, UP, RIGHT, LEFT as (dRow, dCol).
var neighborOffsets = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
