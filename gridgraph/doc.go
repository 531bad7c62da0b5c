// Package gridgraph models a fixed-size rectangular arena of cells as an
// implicit 4-connected graph for grid pathfinding.
//
// What:
//
//   - Grid stores one State per cell in a dense row-major slice.
//   - Cells are identified by Coord{Row, Col} or by their row-major index;
//     never by pointer.
//   - Adjacency is derived on demand from the current Barrier layout, so
//     toggling a barrier is visible to the very next Neighbors call.
//   - ConnectedComponents and BarrierBreach explain why two cells are
//     (or are not) connected.
//
// Neighbor order:
//
//	DOWN (row+1), UP (row-1), RIGHT (col+1), LEFT (col-1)
//
// The order is fixed; searches built on top rely on it for deterministic
// tie-breaking.
//
// Text notation (FromRows / String):
//
//	.  Empty     #  Barrier
//	S  Start     E  End
//	o  Open      x  Closed     *  Path
//
// Complexity:
//
//   - NewGrid, FromRows, Clone, ClearSearch: O(R×C).
//   - Neighbors, AppendNeighbors, Index, Coordinate: O(1).
//   - ConnectedComponents, BarrierBreach: O(R×C), Memory: O(R×C).
//
// Errors:
//
//   - ErrEmptyGrid: zero rows or zero columns.
//   - ErrNonRectangular: text rows of differing lengths.
//   - ErrUnknownGlyph: a text cell outside ".#SE".
//   - ErrOutOfBounds: a coordinate outside the grid.
//   - ErrNoStart, ErrNoEnd, ErrMultipleStart, ErrMultipleEnd: Endpoints.
//
// A Grid is not safe for concurrent mutation. Callers edit barriers and
// endpoints between searches; a search only reads barriers and writes the
// Open/Closed/Path search states.
package gridgraph
