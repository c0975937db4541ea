package planner

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mkarren/astrogate/pkg/worldgraph"
)

// Scoring weights. Every hop earns the baseline; the rest reward matching
// the requested style, low risk, and quick legs.
const (
	scorePerHop      = 100
	scoreStyleMatch  = 50
	scoreLowRisk     = 25
	scoreQuickLeg    = 15
	lowRiskThreshold = 0.3
	quickLegDuration = 10 * time.Minute
)

// Warning thresholds on the combined route.
const (
	riskWarnThreshold = 0.7
	fuelWarnFraction  = 0.8
	timeWarnDuration  = 60 * time.Minute
)

// ScoreCandidate computes the preference score for one candidate.
func ScoreCandidate(c Candidate, preferred worldgraph.RouteStyle) int {
	score := 0
	for _, leg := range c.Legs {
		score += scorePerHop
		if preferred != "" && leg.Style == preferred {
			score += scoreStyleMatch
		}
		if leg.RiskLevel < lowRiskThreshold {
			score += scoreLowRisk
		}
		if leg.TravelTime < quickLegDuration {
			score += scoreQuickLeg
		}
	}
	return score
}

// SelectBest picks the highest-scoring candidate. Ties break deterministically:
// fewest hops, then lowest aggregate risk, then first discovered. The input
// must be non-empty.
func SelectBest(candidates []Candidate, preferred worldgraph.RouteStyle) (Candidate, int) {
	best := candidates[0]
	bestScore := ScoreCandidate(best, preferred)

	for _, c := range candidates[1:] {
		score := ScoreCandidate(c, preferred)
		if score > bestScore || (score == bestScore && beatsOnTie(c, best)) {
			best = c
			bestScore = score
		}
	}
	return best, bestScore
}

// beatsOnTie reports whether challenger wins a score tie against incumbent.
// "First discovered" is implicit: equal hops and equal aggregate risk leave
// the incumbent in place.
func beatsOnTie(challenger, incumbent Candidate) bool {
	if challenger.Hops() != incumbent.Hops() {
		return challenger.Hops() < incumbent.Hops()
	}
	return challenger.AggregateRisk() < incumbent.AggregateRisk()
}

// BuildResult combines the winning candidate's edges into one
// NavigationResult: summed distance/time/fuel, the worst single-leg risk as
// the headline figure, the deduplicated waypoint chain, and advisory
// warnings about marginal routes.
func BuildResult(c Candidate, req NavigationRequest, score int, now time.Time) *NavigationResult {
	result := &NavigationResult{
		ID:              uuid.NewString(),
		Origin:          c.Origin(),
		Destination:     c.Destination(),
		Legs:            c.Legs,
		TotalDistance:   c.TotalDistance(),
		TotalTravelTime: c.TotalTravelTime(),
		TotalFuelCost:   c.TotalFuelCost(),
		Risk: RiskAssessment{
			MaxRisk:  c.MaxRisk(),
			MeanRisk: c.MeanRisk(),
			Hops:     c.Hops(),
		},
		Waypoints:        c.Waypoints(),
		EstimatedArrival: now.Add(c.TotalTravelTime()),
		Score:            score,
	}

	if result.Risk.MaxRisk > riskWarnThreshold {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("route risk %.2f exceeds %.1f", result.Risk.MaxRisk, riskWarnThreshold))
	}
	if result.TotalFuelCost > fuelWarnFraction*req.FuelCapacity {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("fuel cost %.1f above %.0f%% of capacity %.1f",
				result.TotalFuelCost, fuelWarnFraction*100, req.FuelCapacity))
	}
	if result.TotalTravelTime > timeWarnDuration {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("travel time %s exceeds %s", result.TotalTravelTime, timeWarnDuration))
	}

	return result
}
