package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// SearchRequest is the body of POST /v1/search.
type SearchRequest struct {
	Grid        []string `json:"grid"`
	Algorithm   string   `json:"algorithm,omitempty"`
	DecreaseKey bool     `json:"decreaseKey,omitempty"`
	TimeoutMs   int      `json:"timeoutMs,omitempty"`
}

// Cell is a grid coordinate on the wire.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Breach describes the cheapest way through the barriers between S and E.
type Breach struct {
	Barriers int    `json:"barriers"`
	Reset    []Cell `json:"reset"`
}

// SearchResponse is the body of a successful POST /v1/search.
type SearchResponse struct {
	ID        string   `json:"id"`
	Algorithm string   `json:"algorithm"`
	Outcome   string   `json:"outcome"`
	Cost      int      `json:"cost,omitempty"`
	Path      []Cell   `json:"path,omitempty"`
	Expanded  int      `json:"expanded"`
	Opened    int      `json:"opened"`
	Regions   int      `json:"regions,omitempty"`
	Breach    *Breach  `json:"breach,omitempty"`
	Rendered  []string `json:"rendered"`
	ElapsedMs float64  `json:"elapsedMs"`
}

// ErrorResponse is the body of every non-2xx answer.
type ErrorResponse struct {
	ID    string `json:"id"`
	Error string `json:"error"`
}

func (s *Server) handleSearch(c *gin.Context) {
	id := c.GetString(ctxRequestID)

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.cfg.maxBodyBytes())
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			s.fail(c, http.StatusUnprocessableEntity, fmt.Errorf("%w: body over %d bytes", ErrGridTooLarge, tooBig.Limit))
			return
		}
		s.fail(c, http.StatusBadRequest, fmt.Errorf("decode body: %w", err))
		return
	}
	if req.Algorithm == "" {
		req.Algorithm = AlgorithmAStar
	}
	if req.Algorithm != AlgorithmAStar && req.Algorithm != AlgorithmBFS {
		s.fail(c, http.StatusBadRequest, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, req.Algorithm))
		return
	}
	if len(req.Grid) > 0 && len(req.Grid)*len(req.Grid[0]) > s.cfg.MaxCells {
		s.fail(c, http.StatusUnprocessableEntity, fmt.Errorf("%w: %d×%d > %d",
			ErrGridTooLarge, len(req.Grid), len(req.Grid[0]), s.cfg.MaxCells))
		return
	}

	g, err := gridgraph.FromRows(req.Grid)
	if err != nil {
		s.fail(c, http.StatusBadRequest, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), s.cfg.timeout(req.TimeoutMs))
	defer cancel()

	began := time.Now()
	out, err := runSearch(ctx, g, req.Algorithm, req.DecreaseKey)
	elapsed := time.Since(began)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, astar.ErrInvalidGridState) {
			status = http.StatusBadRequest
		}
		s.fail(c, status, err)
		return
	}
	s.metrics.observe(req.Algorithm, out.Outcome.String(), elapsed.Seconds(), out.Expanded)

	resp := SearchResponse{
		ID:        id,
		Algorithm: req.Algorithm,
		Outcome:   out.Outcome.String(),
		Cost:      out.Cost,
		Path:      toCells(out.Path),
		Expanded:  out.Expanded,
		Opened:    out.Opened,
		Rendered:  g.Lines(),
		ElapsedMs: float64(elapsed.Microseconds()) / 1000,
	}
	if out.Outcome == astar.Exhausted {
		resp.Regions = len(g.ConnectedComponents())
		resp.Breach = breach(g)
	}

	s.log.Info("search",
		slog.String("request_id", id),
		slog.String("algorithm", req.Algorithm),
		slog.String("outcome", resp.Outcome),
		slog.Int("rows", g.Rows()),
		slog.Int("cols", g.Cols()),
		slog.Int("expanded", out.Expanded),
		slog.Duration("elapsed", elapsed),
	)
	c.JSON(http.StatusOK, resp)
}

// breach reports the barriers to reset so that S reaches E, or nil when
// the endpoints cannot be found.
func breach(g *gridgraph.Grid) *Breach {
	start, end, err := g.Endpoints()
	if err != nil {
		return nil
	}
	path, cost, err := g.BarrierBreach(start, end)
	if err != nil {
		return nil
	}
	b := &Breach{Barriers: cost, Reset: make([]Cell, 0, cost)}
	for _, idx := range path {
		if g.At(idx) == gridgraph.Barrier {
			c := g.Coordinate(idx)
			b.Reset = append(b.Reset, Cell{Row: c.Row, Col: c.Col})
		}
	}
	return b
}

func (s *Server) fail(c *gin.Context, status int, err error) {
	id := c.GetString(ctxRequestID)
	s.log.Warn("search rejected",
		slog.String("request_id", id),
		slog.Int("status", status),
		slog.String("error", err.Error()),
	)
	c.AbortWithStatusJSON(status, ErrorResponse{ID: id, Error: err.Error()})
}

func toCells(path []gridgraph.Coord) []Cell {
	if len(path) == 0 {
		return nil
	}
	out := make([]Cell, len(path))
	for i, c := range path {
		out[i] = Cell{Row: c.Row, Col: c.Col}
	}
	return out
}
