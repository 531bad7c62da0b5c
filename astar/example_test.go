// Package astar_test provides runnable examples for Search.
package astar_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// ExampleSearchMarked walks through the single gap in a wall and prints
// the painted grid: o open, x closed, * path.
func ExampleSearchMarked() {
	g, _ := gridgraph.FromRows([]string{
		"S....",
		".....",
		"##.##",
		".....",
		"....E",
	})

	res, err := astar.SearchMarked(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Outcome, "cost", res.Cost, "expanded", res.Expanded)
	fmt.Println(g)
	// Output:
	// found cost 8 expanded 17
	// Sxxxx
	// ***xx
	// ##*##
	// .o*xx
	// .o**E
}

// ExampleWithObserver counts notifications while searching around a wall.
func ExampleWithObserver() {
	g, _ := gridgraph.FromRows([]string{
		"S#E",
		"...",
	})

	counts := map[astar.EventKind]int{}
	res, _ := astar.SearchMarked(g, astar.WithObserver(func(ev astar.Event) {
		counts[ev.Kind]++
	}))

	fmt.Println("path:", res.Path)
	fmt.Println("opened:", counts[astar.EventOpened])
	fmt.Println("stepped:", counts[astar.EventStepped])
	fmt.Println("path marks:", counts[astar.EventPathMarked])
	// Output:
	// path: [(0,0) (1,0) (1,1) (1,2) (0,2)]
	// opened: 4
	// stepped: 4
	// path marks: 3
}

// ExampleSearch_exhausted shows the outcome when a wall has no gap.
func ExampleSearch_exhausted() {
	g, _ := gridgraph.FromRows([]string{
		"S.#..",
		"..#.E",
	})
	start, end, _ := g.Endpoints()

	res, _ := astar.Search(g, start, end)
	fmt.Println(res.Outcome, "after", res.Expanded, "cells")
	// Output: exhausted after 4 cells
}
