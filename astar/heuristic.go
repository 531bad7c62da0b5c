package astar

import "github.com/katalvlaran/gridpath/gridgraph"

// Heuristic estimates the remaining cost from a to b.
type Heuristic func(a, b gridgraph.Coord) int

// Manhattan returns |Δrow| + |Δcol|. On a 4-connected unit-cost grid it is
// admissible and consistent: h(a) ≤ 1 + h(a') for every neighbor a'.
func Manhattan(a, b gridgraph.Coord) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

// Zero is the trivial heuristic; with it Search behaves as Dijkstra.
func Zero(a, b gridgraph.Coord) int { return 0 }

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
