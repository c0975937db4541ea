package planner

import (
	"time"

	"github.com/mkarren/astrogate/pkg/worldgraph"
)

// RiskAssessment breaks down the risk profile of a selected route.
type RiskAssessment struct {
	MaxRisk  float64 `json:"max_risk"`
	MeanRisk float64 `json:"mean_risk"`
	Hops     int     `json:"hops"`
}

// NavigationResult is the synthesized combined-route view over the winning
// candidate's edges. It is immutable once built; sessions archive it into
// history on completion.
type NavigationResult struct {
	ID               string              `json:"id"`
	Origin           string              `json:"origin"`
	Destination      string              `json:"destination"`
	Legs             []*worldgraph.Route `json:"-"`
	TotalDistance    float64             `json:"total_distance"`
	TotalTravelTime  time.Duration       `json:"total_travel_time"`
	TotalFuelCost    float64             `json:"total_fuel_cost"`
	Risk             RiskAssessment      `json:"risk_assessment"`
	Waypoints        []string            `json:"waypoints"`
	EstimatedArrival time.Time           `json:"estimated_arrival"`
	Warnings         []string            `json:"warnings,omitempty"`
	Score            int                 `json:"score"`
}
