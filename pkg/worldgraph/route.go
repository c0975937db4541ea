package worldgraph

import (
	"fmt"
	"time"
)

// RouteStyle categorizes an edge for preference matching during scoring.
type RouteStyle string

const (
	StyleDirect  RouteStyle = "direct"
	StyleSafe    RouteStyle = "safe"
	StyleFast    RouteStyle = "fast"
	StyleStealth RouteStyle = "stealth"
)

// ValidStyle reports whether s is one of the recognized route styles.
func ValidStyle(s RouteStyle) bool {
	switch s {
	case StyleDirect, StyleSafe, StyleFast, StyleStealth:
		return true
	}
	return false
}

// Route is a directed weighted edge between two nodes. Exactly one Route
// exists per declared adjacency; all metrics are derived at build time and
// never change afterwards.
type Route struct {
	From         string
	To           string
	Style        RouteStyle
	Distance     float64
	TravelTime   time.Duration
	FuelCost     float64
	RiskLevel    float64 // clamped to [0, 1]
	Waypoints    []string
	Restrictions map[string]string
}

func (r *Route) String() string {
	return fmt.Sprintf("%s -> %s (%s, %.1fu, %s, %.1f fuel, risk %.2f)",
		r.From, r.To, r.Style, r.Distance, r.TravelTime, r.FuelCost, r.RiskLevel)
}

// Metric base rates. Travel time and fuel scale linearly with distance before
// zone-pair modifiers are applied.
const (
	minutesPerUnit = 0.5
	fuelPerUnit    = 0.1
	fastThreshold  = 10 * time.Minute
	safeThreshold  = 0.25
	quietThreshold = 0.3
)

// classifyStyle derives the deterministic style tag for an edge from its own
// metrics and its endpoints. Safety is checked first so a low-risk lane is
// advertised as safe even when it is also quick.
func classifyStyle(from, to *Node, risk float64, travelTime time.Duration) RouteStyle {
	if risk < safeThreshold {
		return StyleSafe
	}
	if (from.TrafficDensity+to.TrafficDensity)/2 < quietThreshold {
		return StyleStealth
	}
	if travelTime < fastThreshold {
		return StyleFast
	}
	return StyleDirect
}
