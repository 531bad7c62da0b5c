package astar_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/gridgraph"
)

func benchmarkSearch(b *testing.B, n int, density float64, opts ...astar.Option) {
	rng := rand.New(rand.NewSource(42))
	base, _ := gridgraph.NewGrid(n, n)
	for i := 0; i < base.Len(); i++ {
		if rng.Float64() < density {
			base.Mark(i, gridgraph.Barrier)
		}
	}
	start, end := gridgraph.Coord{}, gridgraph.Coord{Row: n - 1, Col: n - 1}
	base.Mark(base.Index(start), gridgraph.Empty)
	base.Mark(base.Index(end), gridgraph.Empty)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		g := base.Clone()
		b.StartTimer()
		if _, err := astar.Search(g, start, end, opts...); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSearch_Default25 is the interactive arena size.
func BenchmarkSearch_Default25(b *testing.B) {
	benchmarkSearch(b, gridgraph.DefaultSize, 0.2)
}

// BenchmarkSearch_Open512 has no barriers; ties dominate.
func BenchmarkSearch_Open512(b *testing.B) {
	benchmarkSearch(b, 512, 0)
}

// BenchmarkSearch_Random512 uses 25% barriers.
func BenchmarkSearch_Random512(b *testing.B) {
	benchmarkSearch(b, 512, 0.25)
}

// BenchmarkSearch_Random512DecreaseKey uses heap.Fix re-keying.
func BenchmarkSearch_Random512DecreaseKey(b *testing.B) {
	benchmarkSearch(b, 512, 0.25, astar.WithDecreaseKey())
}
