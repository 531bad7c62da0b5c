// Package astar implements A* shortest-path search over a gridgraph.Grid
// with unit edge costs and a Manhattan-distance heuristic.
//
// Overview:
//
//   - Search expands cells in order of f = g + h, where g is the best known
//     cost from the start and h the Manhattan distance to the end.
//   - The frontier is a min-heap keyed by (f, insertion sequence). Cells
//     with equal f leave in arrival order; cell payloads are never compared.
//   - Neighbors are taken from the grid in the fixed order DOWN, UP, RIGHT,
//     LEFT, so two runs on the same grid are identical step for step.
//   - Scores, predecessor links and frontier membership are keyed by the
//     cell's row-major index, never by pointer.
//
// Grid painting and notifications:
//
//   - A cell entering the frontier is marked Open and reported as
//     EventOpened.
//   - After each popped cell's neighbors are processed, EventStepped is
//     reported and the cell is marked Closed (the start keeps its state).
//   - On success every cell between start and end is marked Path,
//     reported as EventPathMarked from the end backward, and the endpoints
//     are repainted Start and End.
//
// Outcomes:
//
//   - Found:     Result.Path holds start..end inclusive; Result.Cost = g(end).
//   - Exhausted: the frontier drained without reaching the end.
//   - Cancelled: the context or cancel callback fired. It is polled once per
//     popped cell, never mid-expansion; painting done so far is kept, but
//     the endpoints are repainted Start and End so the grid can be cleared
//     and searched again.
//
// Implementation notes:
//
//   - Every table is a slice indexed by row-major cell index.
//   - Cancellation is checked once per loop iteration, before the pop.
//
// Stale frontier entries:
//
//	By default a cell whose g improves while it already waits in the
//	frontier keeps its first (f, seq) key; it is not re-inserted. The
//	final path is still optimal because the newer g is used when the cell
//	is expanded. WithDecreaseKey re-keys such cells in place instead
//	(heap.Fix), keeping their first sequence number.
//
// Errors (sentinel):
//
//   - ErrNilGrid:          nil *gridgraph.Grid.
//   - ErrInvalidGridState: endpoint missing, out of bounds, on a barrier,
//     or start == end. Wrapped with the reason.
//   - ErrOptionViolation:  an invalid Option (for example a nil heuristic).
//
// Complexity:
//
//   - Time:  O(N log N) for N = rows×cols; each cell is pushed at most
//     once per frontier stay and each push/pop is O(log N).
//   - Space: O(N) for the score table, the frontier and its index.
//
// Thread safety:
//
//	A search owns its frontier and score table. The grid is shared with the
//	caller and must not be mutated while Search runs.
package astar
