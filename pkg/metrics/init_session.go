package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initSessionMetrics() {
	r.SessionsActive = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "astrogate_sessions_active",
			Help: "Number of registered navigation sessions",
		},
	)

	r.NavigationsActive = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "astrogate_navigations_active",
			Help: "Number of sessions currently navigating a route",
		},
	)

	r.RoutesStarted = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "astrogate_routes_started_total",
			Help: "Total routes accepted by sessions",
		},
	)

	r.RoutesCompleted = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "astrogate_routes_completed_total",
			Help: "Total routes completed by sessions",
		},
	)

	r.RoutesAbandoned = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "astrogate_routes_abandoned_total",
			Help: "Total routes abandoned before completion",
		},
	)

	r.SessionConflicts = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "astrogate_session_conflicts_total",
			Help: "Total session operations rejected for being in the wrong state",
		},
	)
}
