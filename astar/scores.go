package astar

import (
	"math"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Inf is the g/f value of a cell that has not been reached.
const Inf = math.MaxInt

// ScoreTable holds per-cell g-score, f-score and predecessor, indexed by
// row-major cell index. It belongs to a single search run.
type ScoreTable struct {
	rows, cols int
	g, f       []int
	prev       []int // -1: no predecessor
}

// NewScoreTable returns a table sized for grid with every score Inf and no
// predecessors.
func NewScoreTable(grid *gridgraph.Grid) *ScoreTable {
	n := grid.Len()
	s := &ScoreTable{
		rows: grid.Rows(),
		cols: grid.Cols(),
		g:    make([]int, n),
		f:    make([]int, n),
		prev: make([]int, n),
	}
	for i := 0; i < n; i++ {
		s.g[i] = Inf
		s.f[i] = Inf
		s.prev[i] = -1
	}
	return s
}

// seed sets g(start) = 0 and f(start) = h.
func (s *ScoreTable) seed(start, h int) {
	s.g[start] = 0
	s.f[start] = h
}

// relax records a better path to idx through from. It refuses to raise g:
// returns false, changing nothing, unless g < current g(idx).
func (s *ScoreTable) relax(idx, from, g, f int) bool {
	if g >= s.g[idx] {
		return false
	}
	s.g[idx] = g
	s.f[idx] = f
	s.prev[idx] = from
	return true
}

func (s *ScoreTable) index(c gridgraph.Coord) (int, bool) {
	if c.Row < 0 || c.Row >= s.rows || c.Col < 0 || c.Col >= s.cols {
		return 0, false
	}
	return c.Row*s.cols + c.Col, true
}

// G returns the best known cost from the start to c, or Inf.
func (s *ScoreTable) G(c gridgraph.Coord) int {
	i, ok := s.index(c)
	if !ok {
		return Inf
	}
	return s.g[i]
}

// F returns g(c) + h(c, end), or Inf if c was never reached.
func (s *ScoreTable) F(c gridgraph.Coord) int {
	i, ok := s.index(c)
	if !ok {
		return Inf
	}
	return s.f[i]
}

// CameFrom returns c's predecessor on its best known path. ok is false for
// the start and for cells never reached.
func (s *ScoreTable) CameFrom(c gridgraph.Coord) (p gridgraph.Coord, ok bool) {
	i, ok := s.index(c)
	if !ok || s.prev[i] < 0 {
		return gridgraph.Coord{}, false
	}
	pi := s.prev[i]
	return gridgraph.Coord{Row: pi / s.cols, Col: pi % s.cols}, true
}

// Reached reports whether c has a finite g-score.
func (s *ScoreTable) Reached(c gridgraph.Coord) bool {
	return s.G(c) != Inf
}
