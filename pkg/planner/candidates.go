package planner

import (
	"time"

	"github.com/mkarren/astrogate/pkg/worldgraph"
)

// DefaultMaxHops bounds candidate search depth when no limit is configured.
const DefaultMaxHops = 3

// Candidate is one complete edge sequence from origin to destination,
// produced by search before filtering and scoring.
type Candidate struct {
	Legs []*worldgraph.Route
}

// Hops returns the number of edges traversed.
func (c Candidate) Hops() int {
	return len(c.Legs)
}

// Origin returns the starting node name, or "" for an empty candidate.
func (c Candidate) Origin() string {
	if len(c.Legs) == 0 {
		return ""
	}
	return c.Legs[0].From
}

// Destination returns the final node name, or "" for an empty candidate.
func (c Candidate) Destination() string {
	if len(c.Legs) == 0 {
		return ""
	}
	return c.Legs[len(c.Legs)-1].To
}

// TotalDistance sums distance over all legs.
func (c Candidate) TotalDistance() float64 {
	total := 0.0
	for _, leg := range c.Legs {
		total += leg.Distance
	}
	return total
}

// TotalTravelTime sums travel time over all legs.
func (c Candidate) TotalTravelTime() time.Duration {
	var total time.Duration
	for _, leg := range c.Legs {
		total += leg.TravelTime
	}
	return total
}

// TotalFuelCost sums fuel over all legs.
func (c Candidate) TotalFuelCost() float64 {
	total := 0.0
	for _, leg := range c.Legs {
		total += leg.FuelCost
	}
	return total
}

// MaxRisk returns the highest per-leg risk level.
func (c Candidate) MaxRisk() float64 {
	max := 0.0
	for _, leg := range c.Legs {
		if leg.RiskLevel > max {
			max = leg.RiskLevel
		}
	}
	return max
}

// MeanRisk returns the average per-leg risk level.
func (c Candidate) MeanRisk() float64 {
	if len(c.Legs) == 0 {
		return 0
	}
	total := 0.0
	for _, leg := range c.Legs {
		total += leg.RiskLevel
	}
	return total / float64(len(c.Legs))
}

// AggregateRisk sums per-leg risk, used only for deterministic tie-breaking.
func (c Candidate) AggregateRisk() float64 {
	total := 0.0
	for _, leg := range c.Legs {
		total += leg.RiskLevel
	}
	return total
}

// Waypoints returns the node chain from origin through destination with no
// duplicated junction nodes.
func (c Candidate) Waypoints() []string {
	if len(c.Legs) == 0 {
		return nil
	}
	points := make([]string, 0, len(c.Legs)+1)
	points = append(points, c.Legs[0].From)
	for _, leg := range c.Legs {
		points = append(points, leg.To)
	}
	return points
}

// searchFrame is one pending path extension on the DFS stack. Each frame
// owns its legs slice, so concurrent searches over the same graph never
// share mutable state.
type searchFrame struct {
	node string
	legs []*worldgraph.Route
}

// GenerateCandidates enumerates every simple path from origin to destination
// with at most maxHops edges, in discovery order. A direct edge is found as
// the one-hop path and is never suppressed by deeper search. An unreachable
// destination yields an empty slice, not an error.
func GenerateCandidates(g *worldgraph.WorldGraph, origin, destination string, maxHops int) []Candidate {
	if maxHops <= 0 {
		maxHops = DefaultMaxHops
	}

	var found []Candidate
	stack := []searchFrame{{node: origin}}

	for len(stack) > 0 {
		frame := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if frame.node == destination && len(frame.legs) > 0 {
			found = append(found, Candidate{Legs: frame.legs})
			continue // simple paths terminate at the destination
		}
		if len(frame.legs) >= maxHops {
			continue
		}

		routes := g.NeighborsOf(frame.node)
		// Push in reverse so neighbors pop in declaration order, keeping
		// discovery order deterministic.
		for i := len(routes) - 1; i >= 0; i-- {
			route := routes[i]
			if onPath(origin, frame.legs, route.To) {
				continue
			}
			legs := make([]*worldgraph.Route, len(frame.legs)+1)
			copy(legs, frame.legs)
			legs[len(frame.legs)] = route
			stack = append(stack, searchFrame{node: route.To, legs: legs})
		}
	}

	return found
}

// onPath reports whether node already appears in the path rooted at origin.
func onPath(origin string, legs []*worldgraph.Route, node string) bool {
	if node == origin {
		return true
	}
	for _, leg := range legs {
		if leg.To == node {
			return true
		}
	}
	return false
}
