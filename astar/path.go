package astar

import "github.com/katalvlaran/gridpath/gridgraph"

// Reconstruct walks predecessor links from end back to the cell with no
// predecessor (the start) and returns the path start..end inclusive.
//
// Every cell strictly between the endpoints is marked Path on g and
// reported to obs (if non-nil) as EventPathMarked, in walk order: the
// end's predecessor first, the start's successor last. Neither endpoint
// is marked or reported.
//
// If end was never reached the result is the single-cell path [end].
func Reconstruct(g *gridgraph.Grid, scores *ScoreTable, end gridgraph.Coord, obs Observer) []gridgraph.Coord {
	path := []gridgraph.Coord{end}
	cur := end
	for {
		prev, ok := scores.CameFrom(cur)
		if !ok {
			break
		}
		cur = prev
		path = append(path, cur)
		if _, more := scores.CameFrom(cur); !more {
			break // cur is the start
		}
		g.Mark(g.Index(cur), gridgraph.Path)
		if obs != nil {
			obs(Event{Kind: EventPathMarked, Cell: cur})
		}
	}

	// reverse to get start → end
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
