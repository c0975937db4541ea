package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds all metrics for the application
type Registry struct {
	// Graph metrics
	GraphNodesTotal  prometheus.Gauge
	GraphEdgesTotal  prometheus.Gauge
	GraphBuildErrors prometheus.Counter

	// Planner metrics
	PlansTotal          *prometheus.CounterVec
	PlanDuration        prometheus.Histogram
	CandidatesGenerated prometheus.Histogram
	CandidatesSurviving prometheus.Histogram
	RouteHops           prometheus.Histogram
	RouteRisk           prometheus.Histogram
	RouteWarnings       prometheus.Counter

	// Session metrics
	SessionsActive    prometheus.Gauge
	NavigationsActive prometheus.Gauge
	RoutesStarted     prometheus.Counter
	RoutesCompleted   prometheus.Counter
	RoutesAbandoned   prometheus.Counter
	SessionConflicts  prometheus.Counter

	registry *prometheus.Registry
}

// NewRegistry creates a registry with all metrics registered against a
// private prometheus registry.
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
	}

	r.initGraphMetrics()
	r.initPlannerMetrics()
	r.initSessionMetrics()

	return r
}

// PrometheusRegistry exposes the underlying registry for HTTP handlers.
func (r *Registry) PrometheusRegistry() *prometheus.Registry {
	return r.registry
}
