// Package server exposes the projection engine over a small JSON HTTP API.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rpgo/rothtrad/internal/calculation"
	"github.com/rpgo/rothtrad/internal/domain"
)

// Projector is the part of the calculation engine the API depends on.
type Projector interface {
	Accumulate(ctx context.Context, p domain.AccumulationParams) (*domain.AccumulationSchedule, error)
	Distribute(ctx context.Context, p domain.DistributionParams) (*domain.DistributionSchedule, error)
	Project(ctx context.Context, p domain.DistributionParams) (*domain.Projection, error)
	CacheStats() calculation.CacheStats
}

// Server is the HTTP API for accumulation, distribution and comparison runs.
type Server struct {
	httpServer *http.Server
	mux        *http.ServeMux
	engine     Projector
	defaults   *domain.Configuration
	metrics    *metrics
	logger     *slog.Logger
}

// New creates a Server with every route registered. Query parameters missing
// from a request fall back to cfg.
func New(cfg *domain.Configuration, engine Projector, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		mux:      http.NewServeMux(),
		engine:   engine,
		defaults: cfg,
		logger:   logger,
	}
	registry := prometheus.NewRegistry()
	s.metrics = newMetrics(registry, engine)

	s.handle("GET /api/health", "health", s.health)
	s.handle("GET /api/brackets", "brackets", s.brackets)
	s.handle("GET /api/accumulation", "accumulation", s.accumulation)
	s.handle("GET /api/distribution", "distribution", s.distribution)
	s.handle("GET /api/projection", "projection", s.projection)
	s.mux.Handle("GET /metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	var h http.Handler = s.mux
	h = logging(logger)(h)
	h = requestID(h)

	s.httpServer = &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      h,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	return s
}

func (s *Server) handle(pattern, route string, fn http.HandlerFunc) {
	s.mux.Handle(pattern, s.metrics.instrument(route, fn))
}

// Handler returns the root handler including middleware.
func (s *Server) Handler() http.Handler { return s.httpServer.Handler }

// Start begins listening for HTTP requests. It blocks until the server
// encounters an error or is shut down.
func (s *Server) Start() error {
	s.logger.Info("server: starting", slog.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server: listen: %w", err)
	}
	return nil
}

// Shutdown gracefully shuts down the server, waiting for in-flight requests
// to complete within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("server: shutting down")
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	return nil
}
