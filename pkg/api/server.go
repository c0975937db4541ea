package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mkarren/astrogate/pkg/health"
	"github.com/mkarren/astrogate/pkg/logging"
	"github.com/mkarren/astrogate/pkg/metrics"
	"github.com/mkarren/astrogate/pkg/planner"
	"github.com/mkarren/astrogate/pkg/session"
	"github.com/mkarren/astrogate/pkg/worldgraph"
)

// Server exposes the planning core over a thin read-mostly HTTP surface:
// plan requests, session progress, status snapshots, health, and metrics.
// Authentication and any richer presentation layer live outside this module.
type Server struct {
	graph    *worldgraph.WorldGraph
	planner  *planner.Planner
	sessions *session.Registry
	checker  *health.Checker
	metrics  *metrics.Registry
	log      logging.Logger

	httpServer *http.Server
	port       int
}

// NewServer wires the planning core behind an HTTP mux.
func NewServer(graph *worldgraph.WorldGraph, p *planner.Planner, sessions *session.Registry, reg *metrics.Registry, log logging.Logger, port int) *Server {
	if log == nil {
		log = logging.NopLogger{}
	}
	s := &Server{
		graph:    graph,
		planner:  p,
		sessions: sessions,
		checker:  health.NewChecker(),
		metrics:  reg,
		log:      log.With(logging.Component("api")),
		port:     port,
	}
	s.registerHealthChecks()
	return s
}

func (s *Server) registerHealthChecks() {
	s.checker.RegisterCheck("worldgraph", func() health.Check {
		c := health.Check{Name: "worldgraph", Status: health.StatusHealthy}
		if s.graph.NodeCount() == 0 {
			c.Status = health.StatusUnhealthy
			c.Message = "world graph is empty"
			return c
		}
		c.Details = map[string]any{
			"nodes": s.graph.NodeCount(),
			"edges": s.graph.EdgeCount(),
		}
		return c
	})
	s.checker.RegisterCheck("sessions", func() health.Check {
		return health.Check{
			Name:    "sessions",
			Status:  health.StatusHealthy,
			Details: map[string]any{"registered": s.sessions.Len()},
		}
	})
	s.checker.RegisterReadinessCheck("worldgraph", func() health.Check {
		c := health.Check{Name: "worldgraph", Status: health.StatusHealthy}
		if s.graph.NodeCount() == 0 {
			c.Status = health.StatusUnhealthy
			c.Message = "world graph is empty"
		}
		return c
	})
}

// Handler builds the HTTP mux.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/v1/plan", s.handlePlan)
	mux.HandleFunc("POST /api/v1/sessions/{agent}/start", s.handleStart)
	mux.HandleFunc("POST /api/v1/sessions/{agent}/progress", s.handleProgress)
	mux.HandleFunc("POST /api/v1/sessions/{agent}/complete", s.handleComplete)
	mux.HandleFunc("POST /api/v1/sessions/{agent}/abandon", s.handleAbandon)
	mux.HandleFunc("GET /api/v1/sessions/{agent}/status", s.handleStatus)
	mux.HandleFunc("GET /api/v1/topology", s.handleTopology)

	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /readyz", s.handleReady)
	if s.metrics != nil {
		mux.Handle("GET /metrics", promhttp.HandlerFor(s.metrics.PrometheusRegistry(), promhttp.HandlerOpts{}))
	}

	return mux
}

// Start runs the HTTP server until Shutdown or listener failure.
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", s.port),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	s.log.Info("status server listening", logging.Int("port", s.port))
	return s.httpServer.ListenAndServe()
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
