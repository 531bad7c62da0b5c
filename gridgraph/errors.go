package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: grid must have at least one row and one column")
	// ErrNonRectangular indicates text rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrUnknownGlyph indicates a text cell that is not one of ".#SE".
	ErrUnknownGlyph = errors.New("gridgraph: unknown cell glyph")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: coordinate out of bounds")
	// ErrNoStart indicates that no cell holds the Start state.
	ErrNoStart = errors.New("gridgraph: start cell not set")
	// ErrNoEnd indicates that no cell holds the End state.
	ErrNoEnd = errors.New("gridgraph: end cell not set")
	// ErrMultipleStart indicates more than one Start cell.
	ErrMultipleStart = errors.New("gridgraph: more than one start cell")
	// ErrMultipleEnd indicates more than one End cell.
	ErrMultipleEnd = errors.New("gridgraph: more than one end cell")
)
