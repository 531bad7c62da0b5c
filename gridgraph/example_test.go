// File: gridgraph/example_test.go
package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// ExampleGrid_Neighbors shows the fixed DOWN, UP, RIGHT, LEFT order and
// barrier exclusion.
func ExampleGrid_Neighbors() {
	g, _ := gridgraph.FromRows([]string{
		"...",
		".S#",
		"...",
	})
	fmt.Println(g.Neighbors(gridgraph.Coord{Row: 1, Col: 1}))
	// Output: [(2,1) (0,1) (1,0)]
}

// ExampleGrid_ConnectedComponents explains an unreachable target: start
// and end live in different regions.
func ExampleGrid_ConnectedComponents() {
	g, _ := gridgraph.FromRows([]string{
		"S.#..",
		"..#.E",
	})
	labels := g.ComponentOf()
	start, end, _ := g.Endpoints()
	fmt.Println("regions:", len(g.ConnectedComponents()))
	fmt.Println("same region:", labels[g.Index(start)] == labels[g.Index(end)])

	_, cost, _ := g.BarrierBreach(start, end)
	fmt.Println("barriers to reset:", cost)
	// Output:
	// regions: 2
	// same region: false
	// barriers to reset: 1
}
