// Package server exposes the gridpath engines over HTTP.
//
// Routes:
//
//	POST /v1/search   run A* or breadth-first search on a text grid
//	GET  /healthz     liveness probe
//	GET  /metrics     Prometheus exposition (private registry)
//
// A search request carries the grid in the gridgraph text notation
// ('.', '#', 'S', 'E'), one string per row:
//
//	{"grid": ["S....", "##.##", "....E"], "algorithm": "astar", "timeoutMs": 500}
//
// The response reports the outcome (found, exhausted, cancelled), the path
// from S to E inclusive, the number of expanded and opened cells, and the
// painted grid. When a search is exhausted the response also counts the
// passable regions and the fewest barriers that would connect S to E.
//
// A request whose timeout elapses mid-search is answered with the
// cancelled outcome and status 200; it is a result, not an error.
// Malformed bodies and grids get 400, grids larger than Config.MaxCells
// get 422.
//
// Every request is tagged with an X-Request-ID (a fresh UUID unless the
// client sent one) and logged through log/slog.
package server
