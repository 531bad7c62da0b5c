package gridgraph

import (
	"container/list"
	"fmt"
)

// BarrierBreach finds the fewest Barrier cells that would have to be reset
// to connect from and to under 4-connectivity. It answers the follow-up
// question to a search that came back exhausted.
//
// Behavior:
//  1. Validate both coordinates (ErrOutOfBounds).
//  2. 0–1 BFS from `from`:
//     • Moving into a passable cell → cost 0
//     • Moving into a Barrier cell  → cost 1
//  3. Stop when `to` is settled.
//  4. Reconstruct the path via predecessors.
//
// The returned path lists row-major indices from `from` to `to` inclusive;
// cost counts the Barrier cells on it, endpoints included. A cost of zero
// means the cells are already connected.
//
// Complexity: O(R·C) time and memory.
func (g *Grid) BarrierBreach(from, to Coord) (path []int, cost int, err error) {
	if !g.InBounds(from) {
		return nil, 0, fmt.Errorf("%w: %v", ErrOutOfBounds, from)
	}
	if !g.InBounds(to) {
		return nil, 0, fmt.Errorf("%w: %v", ErrOutOfBounds, to)
	}

	n := len(g.cells)
	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	src, dst := g.Index(from), g.Index(to)
	dist[src] = g.stepCost(src)

	// 0–1 BFS: deque processes cost0 at front, cost1 at back
	dq := list.New()
	dq.PushFront(src)

	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		if u == dst {
			break
		}
		ur, uc := u/g.cols, u%g.cols
		for _, d := range neighborOffsets {
			vr, vc := ur+d[0], uc+d[1]
			if vr < 0 || vr >= g.rows || vc < 0 || vc >= g.cols {
				continue
			}
			v := vr*g.cols + vc
			step := g.stepCost(v)
			nd := dist[u] + step
			if nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	for at := dst; at >= 0; at = prev[at] {
		path = append(path, at)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, dist[dst], nil
}

func (g *Grid) stepCost(idx int) int {
	if g.cells[idx] == Barrier {
		return 1
	}
	return 0
}
