package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initPlannerMetrics() {
	r.PlansTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "astrogate_plans_total",
			Help: "Total number of planning calls by outcome",
		},
		[]string{"status"},
	)

	r.PlanDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "astrogate_plan_duration_seconds",
			Help:    "Planning call duration in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		},
	)

	r.CandidatesGenerated = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "astrogate_plan_candidates_generated",
			Help:    "Candidate paths produced by search per planning call",
			Buckets: []float64{1, 2, 5, 10, 25, 50, 100},
		},
	)

	r.CandidatesSurviving = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "astrogate_plan_candidates_surviving",
			Help:    "Candidate paths left after constraint filtering",
			Buckets: []float64{1, 2, 5, 10, 25, 50, 100},
		},
	)

	r.RouteHops = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "astrogate_route_hops",
			Help:    "Hop count of selected routes",
			Buckets: []float64{1, 2, 3, 4, 5},
		},
	)

	r.RouteRisk = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "astrogate_route_risk",
			Help:    "Headline (max leg) risk of selected routes",
			Buckets: []float64{0.1, 0.3, 0.5, 0.7, 0.9, 1.0},
		},
	)

	r.RouteWarnings = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "astrogate_route_warnings_total",
			Help: "Total advisory warnings attached to selected routes",
		},
	)
}
