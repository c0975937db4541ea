package session

import (
	"time"

	"github.com/mkarren/astrogate/pkg/planner"
)

// ActiveRoute summarizes the in-flight route for status reporting.
type ActiveRoute struct {
	ID               string        `json:"id"`
	Origin           string        `json:"origin"`
	Destination      string        `json:"destination"`
	Hops             int           `json:"hops"`
	TotalTravelTime  time.Duration `json:"total_travel_time"`
	EstimatedArrival time.Time     `json:"estimated_arrival"`
	Warnings         []string      `json:"warnings,omitempty"`
}

// TravelStats aggregates the session's completed history.
type TravelStats struct {
	CompletedRoutes int           `json:"completed_routes"`
	TotalDistance   float64       `json:"total_distance"`
	TotalFuelSpent  float64       `json:"total_fuel_spent"`
	TotalTravelTime time.Duration `json:"total_travel_time"`
}

// Status is a read-only snapshot of the session for telemetry and
// dashboards.
type Status struct {
	AgentID         string       `json:"agent_id"`
	CurrentLocation string       `json:"current_location"`
	State           string       `json:"state"`
	Active          *ActiveRoute `json:"active_route,omitempty"`
	Stats           TravelStats  `json:"stats"`
}

// Status returns the session snapshot. It is a pure query: no field of the
// session is touched, and repeated calls on an unchanged session return
// identical data.
func (s *Session) Status() Status {
	status := Status{
		AgentID:         s.agentID,
		CurrentLocation: s.location,
		State:           s.state.String(),
		Stats:           s.stats(),
	}
	if s.active != nil {
		status.Active = &ActiveRoute{
			ID:               s.active.ID,
			Origin:           s.active.Origin,
			Destination:      s.active.Destination,
			Hops:             s.active.Risk.Hops,
			TotalTravelTime:  s.active.TotalTravelTime,
			EstimatedArrival: s.active.EstimatedArrival,
			Warnings:         s.active.Warnings,
		}
	}
	return status
}

func (s *Session) stats() TravelStats {
	stats := TravelStats{CompletedRoutes: len(s.history)}
	for _, r := range s.history {
		stats.TotalDistance += r.TotalDistance
		stats.TotalFuelSpent += r.TotalFuelCost
		stats.TotalTravelTime += r.TotalTravelTime
	}
	return stats
}

// AgentID returns the owning agent's identifier.
func (s *Session) AgentID() string {
	return s.agentID
}

// CurrentLocation returns the agent's last finalized location.
func (s *Session) CurrentLocation() string {
	return s.location
}

// State returns the session's navigation state.
func (s *Session) State() State {
	return s.state
}

// Active returns the in-flight route, or nil while idle.
func (s *Session) Active() *planner.NavigationResult {
	return s.active
}

// History returns the completed routes, oldest first. The returned slice is
// a copy; callers cannot disturb the archive.
func (s *Session) History() []*planner.NavigationResult {
	out := make([]*planner.NavigationResult, len(s.history))
	copy(out, s.history)
	return out
}
