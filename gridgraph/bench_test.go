package gridgraph_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// randomGrid builds an n×n grid with roughly 30% barriers from a fixed seed.
func randomGrid(b *testing.B, n int) *gridgraph.Grid {
	b.Helper()
	rng := rand.New(rand.NewSource(42))
	g, err := gridgraph.NewGrid(n, n)
	if err != nil {
		b.Fatalf("setup NewGrid failed: %v", err)
	}
	for i := 0; i < g.Len(); i++ {
		if rng.Intn(10) < 3 {
			g.Mark(i, gridgraph.Barrier)
		}
	}
	return g
}

// BenchmarkConnectedComponents measures region labelling on a 1000×1000 grid.
func BenchmarkConnectedComponents(b *testing.B) {
	g := randomGrid(b, 1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.ConnectedComponents()
	}
}

// BenchmarkAppendNeighbors measures the adjacency hot path.
func BenchmarkAppendNeighbors(b *testing.B) {
	g := randomGrid(b, 256)
	buf := make([]int, 0, 4)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf = g.AppendNeighbors(buf[:0], i%g.Len())
	}
}

// BenchmarkBarrierBreach measures 0–1 BFS corner to corner.
func BenchmarkBarrierBreach(b *testing.B) {
	const n = 500
	g := randomGrid(b, n)
	from, to := gridgraph.Coord{}, gridgraph.Coord{Row: n - 1, Col: n - 1}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = g.BarrierBreach(from, to)
	}
}
