package server

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server is the HTTP front of the search engines.
type Server struct {
	cfg     Config
	log     *slog.Logger
	reg     *prometheus.Registry
	metrics *metrics
	engine  *gin.Engine
}

// New builds a Server from cfg. It returns ErrConfig if cfg is invalid.
func New(cfg Config) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	reg := prometheus.NewRegistry()
	s := &Server{
		cfg:     cfg,
		log:     logger.With(slog.String("component", "server")),
		reg:     reg,
		metrics: newMetrics(reg),
	}
	s.engine = s.routes()
	return s, nil
}

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.CustomRecoveryWithWriter(io.Discard, s.handlePanic), requestID(), accessLog(s.log))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.reg, promhttp.HandlerOpts{})))

	v1 := r.Group("/v1")
	v1.POST("/search", s.handleSearch)

	return r
}

// handlePanic logs a handler panic through slog and answers 500.
func (s *Server) handlePanic(c *gin.Context, p any) {
	id := c.GetString(ctxRequestID)
	s.log.Error("panic",
		slog.String("request_id", id),
		slog.String("path", c.Request.URL.Path),
		slog.Any("panic", p),
		slog.String("stack", string(debug.Stack())),
	)
	c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{ID: id, Error: "internal error"})
}

// Handler returns the root http.Handler.
func (s *Server) Handler() http.Handler { return s.engine }

// Registry exposes the metrics registry.
func (s *Server) Registry() *prometheus.Registry { return s.reg }

// ListenAndServe serves on cfg.Addr until ctx is cancelled, then shuts down
// gracefully within cfg.ShutdownGrace.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.log.Info("listening", slog.String("addr", s.cfg.Addr))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	s.log.Info("shutting down", slog.Duration("grace", s.cfg.ShutdownGrace))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownGrace)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
