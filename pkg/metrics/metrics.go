package metrics

import (
	"time"
)

// Planning outcome labels for PlansTotal.
const (
	StatusSelected            = "selected"
	StatusInvalidLocation     = "invalid_location"
	StatusNoRoute             = "no_route"
	StatusConstraintExhausted = "constraint_exhausted"
	StatusInvalidRequest      = "invalid_request"
)

// RecordPlan records one planning call with its outcome and duration.
func (r *Registry) RecordPlan(status string, duration time.Duration, generated, surviving int) {
	if r == nil {
		return
	}
	r.PlansTotal.WithLabelValues(status).Inc()
	r.PlanDuration.Observe(duration.Seconds())
	r.CandidatesGenerated.Observe(float64(generated))
	r.CandidatesSurviving.Observe(float64(surviving))
}

// RecordSelection records the shape of a selected route.
func (r *Registry) RecordSelection(hops int, risk float64, warnings int) {
	if r == nil {
		return
	}
	r.RouteHops.Observe(float64(hops))
	r.RouteRisk.Observe(risk)
	r.RouteWarnings.Add(float64(warnings))
}

// SetGraphSize records the topology's dimensions after a successful build.
func (r *Registry) SetGraphSize(nodes, edges int) {
	if r == nil {
		return
	}
	r.GraphNodesTotal.Set(float64(nodes))
	r.GraphEdgesTotal.Set(float64(edges))
}

// IncGraphBuildError counts a failed graph construction.
func (r *Registry) IncGraphBuildError() {
	if r == nil {
		return
	}
	r.GraphBuildErrors.Inc()
}

// RecordRouteStarted counts a session accepting a route.
func (r *Registry) RecordRouteStarted() {
	if r == nil {
		return
	}
	r.RoutesStarted.Inc()
	r.NavigationsActive.Inc()
}

// RecordRouteCompleted counts a session finishing its active route.
func (r *Registry) RecordRouteCompleted() {
	if r == nil {
		return
	}
	r.RoutesCompleted.Inc()
	r.NavigationsActive.Dec()
}

// RecordRouteAbandoned counts a session cancelling its active route.
func (r *Registry) RecordRouteAbandoned() {
	if r == nil {
		return
	}
	r.RoutesAbandoned.Inc()
	r.NavigationsActive.Dec()
}

// RecordSessionConflict counts a session operation rejected in the wrong state.
func (r *Registry) RecordSessionConflict() {
	if r == nil {
		return
	}
	r.SessionConflicts.Inc()
}

// SetSessionsActive records the number of registered sessions.
func (r *Registry) SetSessionsActive(n int) {
	if r == nil {
		return
	}
	r.SessionsActive.Set(float64(n))
}
