package worldgraph

import "math"

// Coordinates is a position in 3-D world space.
type Coordinates struct {
	X float64 `yaml:"x" json:"x"`
	Y float64 `yaml:"y" json:"y"`
	Z float64 `yaml:"z" json:"z"`
}

// DistanceTo returns the Euclidean distance to another position.
func (c Coordinates) DistanceTo(other Coordinates) float64 {
	dx := c.X - other.X
	dy := c.Y - other.Y
	dz := c.Z - other.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// Node is a named location in the world graph. Nodes are created once during
// graph construction and never mutated afterwards.
type Node struct {
	Name           string      `yaml:"name" json:"name"`
	Zone           string      `yaml:"zone" json:"zone"`
	Position       Coordinates `yaml:"position" json:"position"`
	SecurityLevel  float64     `yaml:"security_level" json:"security_level"`   // 0 = safe, 1 = lawless
	TrafficDensity float64     `yaml:"traffic_density" json:"traffic_density"` // 0 = empty, 1 = congested
	Neighbors      []string    `yaml:"neighbors" json:"neighbors"`
}

// clamp01 clamps v into [0, 1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
