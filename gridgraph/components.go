package gridgraph

// ConnectedComponents finds all 4-connected regions of non-Barrier cells.
// Each component is a slice of row-major indices in BFS discovery order;
// components are ordered by their lowest index.
//
// Two cells can be joined by a search exactly when they share a component.
//
// Time:   O(R·C).
// Memory: O(R·C) for visited flags and output.
func (g *Grid) ConnectedComponents() [][]int {
	seen := make([]bool, len(g.cells))
	var comps [][]int
	nbrs := make([]int, 0, 4)

	for i0, s := range g.cells {
		if s == Barrier || seen[i0] {
			continue
		}
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			nbrs = g.AppendNeighbors(nbrs[:0], queue[qi])
			for _, v := range nbrs {
				if !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		comps = append(comps, queue)
	}
	return comps
}

// ComponentOf returns a label per cell such that two non-Barrier cells
// share a label iff they are connected. Barrier cells are labelled -1.
func (g *Grid) ComponentOf() []int {
	labels := make([]int, len(g.cells))
	for i := range labels {
		labels[i] = -1
	}
	for id, comp := range g.ConnectedComponents() {
		for _, idx := range comp {
			labels[idx] = id
		}
	}
	return labels
}
