// Package gridpath is a small toolkit for shortest paths on square grids:
// a 4-connected cell arena, an observable A* engine, a breadth-first
// oracle and an HTTP service around them.
//
// What is inside?
//
//	gridgraph/     Coord, State and Grid: text notation, neighbors in
//	               DOWN, UP, RIGHT, LEFT order, regions, barrier breach
//	astar/         A* with unit moves and the Manhattan heuristic; frontier
//	               keyed by f then insertion order, score table, path
//	               reconstruction, observer events, cancellation
//	bfs/           breadth-first distances, used to check A* and as a
//	               second algorithm in the service
//	server/        gin router, Prometheus metrics, slog request logs
//	cmd/gridpathd  the daemon
//
// Quick start:
//
//	g, _ := gridgraph.FromRows([]string{
//		"S..#.",
//		".#...",
//		"...#E",
//	})
//	res, err := astar.SearchMarked(g, astar.WithObserver(func(ev astar.Event) {
//		fmt.Println(ev.Kind, ev.Cell)
//	}))
//	if err != nil {
//		// nil grid, bad endpoints or a bad option
//	}
//	fmt.Println(res.Outcome, res.Cost, res.Path)
//	fmt.Println(g) // o open, x closed, * path
//
// Search outcomes (Found, Exhausted, Cancelled) are values in Result, never
// errors. Errors are reserved for input the engine refuses to run on.
package gridpath
