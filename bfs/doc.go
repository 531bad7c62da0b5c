// Package bfs runs breadth-first search over a gridgraph.Grid, returning
// unit-cost shortest distances, parent links and visit order from one
// source cell.
//
// It is the exact reference for grid searches: on a 4-connected unit-cost
// grid, Depth equals the true shortest-path length, so any heuristic
// search can be checked against it.
//
// Options:
//
//   - WithContext: cancellation, checked once per dequeued cell.
//   - WithOnVisit: hook per visited cell; an error aborts the traversal.
//   - WithMaxDepth: stop expanding beyond a depth.
//
// Complexity: O(R×C) time and memory.
package bfs
