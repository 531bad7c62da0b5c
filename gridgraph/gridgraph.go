package gridgraph

import (
	"fmt"
	"strings"
)

// NewGrid constructs a rows×cols grid with every cell Empty.
// Returns ErrEmptyGrid if rows or cols is not positive.
// Complexity: O(R×C) time and memory.
func NewGrid(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrEmptyGrid
	}

	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]State, rows*cols),
	}, nil
}

// FromRows parses the text notation ('.', '#', 'S', 'E'), one string per
// row. Search glyphs are rejected; a parsed grid always starts clean.
// Multiple S or E cells are accepted here and reported by Endpoints.
func FromRows(lines []string) (*Grid, error) {
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	cols := len(lines[0])
	for _, line := range lines {
		if len(line) != cols {
			return nil, ErrNonRectangular
		}
	}

	g, _ := NewGrid(len(lines), cols)
	for r, line := range lines {
		for c := 0; c < cols; c++ {
			var s State
			switch line[c] {
			case '.':
				s = Empty
			case '#':
				s = Barrier
			case 'S':
				s = Start
			case 'E':
				s = End
			default:
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrUnknownGlyph, line[c], r, c)
			}
			g.cells[r*cols+c] = s
		}
	}

	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Len returns the number of cells, Rows()*Cols().
func (g *Grid) Len() int { return len(g.cells) }

// InBounds reports whether c lies within [0,rows)×[0,cols).
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// Index maps c to its row-major index: Row*Cols + Col.
// The caller must ensure c is in bounds.
func (g *Grid) Index(c Coord) int {
	return c.Row*g.cols + c.Col
}

// Coordinate converts a row-major index back to a Coord.
func (g *Grid) Coordinate(idx int) Coord {
	return Coord{Row: idx / g.cols, Col: idx % g.cols}
}

// State returns the state of cell c.
func (g *Grid) State(c Coord) (State, error) {
	if !g.InBounds(c) {
		return Empty, fmt.Errorf("%w: %v", ErrOutOfBounds, c)
	}
	return g.cells[g.Index(c)], nil
}

// At returns the state at row-major index idx without bounds checking.
func (g *Grid) At(idx int) State {
	return g.cells[idx]
}

// Mark writes s at row-major index idx without bounds checking.
// Searches use it to paint Open, Closed and Path.
func (g *Grid) Mark(idx int, s State) {
	g.cells[idx] = s
}

// SetBarrier marks c as a Barrier.
func (g *Grid) SetBarrier(c Coord) error { return g.set(c, Barrier) }

// SetStart marks c as the Start cell. Clearing a previous Start is the
// caller's job.
func (g *Grid) SetStart(c Coord) error { return g.set(c, Start) }

// SetEnd marks c as the End cell. Clearing a previous End is the caller's
// job.
func (g *Grid) SetEnd(c Coord) error { return g.set(c, End) }

// Reset returns c to Empty.
func (g *Grid) Reset(c Coord) error { return g.set(c, Empty) }

func (g *Grid) set(c Coord, s State) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, c)
	}
	g.cells[g.Index(c)] = s
	return nil
}

// Neighbors returns the in-bounds, non-Barrier cells adjacent to c in the
// order DOWN, UP, RIGHT, LEFT. An out-of-bounds c has no neighbors.
func (g *Grid) Neighbors(c Coord) []Coord {
	if !g.InBounds(c) {
		return nil
	}
	idxs := g.AppendNeighbors(make([]int, 0, 4), g.Index(c))
	out := make([]Coord, len(idxs))
	for i, idx := range idxs {
		out[i] = g.Coordinate(idx)
	}
	return out
}

// AppendNeighbors appends the row-major indices of the passable neighbors
// of idx to dst, in the order DOWN, UP, RIGHT, LEFT, and returns the
// extended slice. Barrier state is read at call time.
// Complexity: O(1).
func (g *Grid) AppendNeighbors(dst []int, idx int) []int {
	r, c := idx/g.cols, idx%g.cols
	for _, d := range neighborOffsets {
		nr, nc := r+d[0], c+d[1]
		if nr < 0 || nr >= g.rows || nc < 0 || nc >= g.cols {
			continue
		}
		n := nr*g.cols + nc
		if g.cells[n] == Barrier {
			continue
		}
		dst = append(dst, n)
	}
	return dst
}

// Endpoints scans the grid for the Start and End cells.
// Returns ErrNoStart / ErrNoEnd when one is missing and ErrMultipleStart /
// ErrMultipleEnd when the at-most-one invariant has been broken.
func (g *Grid) Endpoints() (start, end Coord, err error) {
	si, ei := -1, -1
	for i, s := range g.cells {
		switch s {
		case Start:
			if si >= 0 {
				return start, end, ErrMultipleStart
			}
			si = i
		case End:
			if ei >= 0 {
				return start, end, ErrMultipleEnd
			}
			ei = i
		}
	}
	if si < 0 {
		return start, end, ErrNoStart
	}
	if ei < 0 {
		return start, end, ErrNoEnd
	}

	return g.Coordinate(si), g.Coordinate(ei), nil
}

// ClearSearch returns every Open, Closed and Path cell to Empty, keeping
// barriers and endpoints.
func (g *Grid) ClearSearch() {
	for i, s := range g.cells {
		if s.IsSearch() {
			g.cells[i] = Empty
		}
	}
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	cells := make([]State, len(g.cells))
	copy(cells, g.cells)
	return &Grid{rows: g.rows, cols: g.cols, cells: cells}
}

// Lines renders the grid as one glyph string per row.
func (g *Grid) Lines() []string {
	out := make([]string, g.rows)
	buf := make([]byte, g.cols)
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			buf[c] = g.cells[r*g.cols+c].Glyph()
		}
		out[r] = string(buf)
	}
	return out
}

// String renders the grid in text notation, rows separated by newlines.
func (g *Grid) String() string {
	return strings.Join(g.Lines(), "\n")
}

// PixelToCell converts a pointer position inside a square window of the
// given pixel width, split into rows×rows cells, into a grid coordinate.
// The horizontal axis selects the row: rows are laid out along x.
// ok is false for positions outside the window or a window too small to
// hold one pixel per cell.
func PixelToCell(x, y, width, rows int) (c Coord, ok bool) {
	if rows <= 0 || width < rows || x < 0 || y < 0 {
		return Coord{}, false
	}
	gap := width / rows
	c = Coord{Row: x / gap, Col: y / gap}
	if c.Row >= rows || c.Col >= rows {
		return Coord{}, false
	}
	return c, true
}
