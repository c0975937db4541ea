package worldgraph

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mkarren/astrogate/pkg/validation"
)

// ZonePairConfig declares a metric modifier for travel between two zones.
type ZonePairConfig struct {
	ZoneA    string             `yaml:"zone_a"`
	ZoneB    string             `yaml:"zone_b"`
	Modifier ZoneModifierConfig `yaml:"modifier"`
}

// ZoneModifierConfig is the on-disk form of a zone-pair modifier. Time and
// Fuel are pointers so an omitted multiplier (neutral, 1.0) stays distinct
// from an explicit zero, which validation rejects.
type ZoneModifierConfig struct {
	Time         *float64          `yaml:"time,omitempty"`
	Fuel         *float64          `yaml:"fuel,omitempty"`
	Risk         float64           `yaml:"risk,omitempty"`
	Restrictions map[string]string `yaml:"restrictions,omitempty"`
}

// resolve fills omitted multipliers with the neutral value.
func (m ZoneModifierConfig) resolve() ZoneModifier {
	mod := ZoneModifier{Time: 1.0, Fuel: 1.0, Risk: m.Risk, Restrictions: m.Restrictions}
	if m.Time != nil {
		mod.Time = *m.Time
	}
	if m.Fuel != nil {
		mod.Fuel = *m.Fuel
	}
	return mod
}

// multiplier is a literal helper for ZoneModifierConfig fields.
func multiplier(v float64) *float64 { return &v }

// TopologyConfig is the on-disk description of the world graph.
type TopologyConfig struct {
	Nodes     []Node           `yaml:"nodes"`
	ZonePairs []ZonePairConfig `yaml:"zone_pairs,omitempty"`
}

// LoadTopology reads and validates a topology definition from a YAML file.
func LoadTopology(path string) (*TopologyConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read topology %s: %w", path, err)
	}

	var cfg TopologyConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse topology %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the topology definition for structural problems before any
// graph is built. All problems are reported together.
func (c *TopologyConfig) Validate() error {
	cv := validation.NewConfigValidator("topology")
	cv.MinInt("nodes", len(c.Nodes), 1)

	for i, n := range c.Nodes {
		field := fmt.Sprintf("nodes[%d]", i)
		cv.Required(field+".name", n.Name)
		cv.Required(field+".zone", n.Zone)
		cv.UnitInterval(field+".security_level", n.SecurityLevel)
		cv.UnitInterval(field+".traffic_density", n.TrafficDensity)
	}

	for i, zp := range c.ZonePairs {
		field := fmt.Sprintf("zone_pairs[%d]", i)
		cv.Required(field+".zone_a", zp.ZoneA)
		cv.Required(field+".zone_b", zp.ZoneB)
		if zp.Modifier.Time != nil {
			cv.PositiveFloat(field+".modifier.time", *zp.Modifier.Time)
		}
		if zp.Modifier.Fuel != nil {
			cv.PositiveFloat(field+".modifier.fuel", *zp.Modifier.Fuel)
		}
		cv.Check(zp.Modifier.Risk >= -1 && zp.Modifier.Risk <= 1, field+".modifier.risk", "offset must be within [-1, 1]")
	}

	return cv.Err()
}

// Modifiers converts the declared zone pairs into a lookup table.
func (c *TopologyConfig) Modifiers() *ZoneModifiers {
	zm := NewZoneModifiers()
	for _, zp := range c.ZonePairs {
		zm.Set(zp.ZoneA, zp.ZoneB, zp.Modifier.resolve())
	}
	return zm
}

// BuildGraph validates the config and constructs the world graph from it.
func (c *TopologyConfig) BuildGraph() (*WorldGraph, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return Build(c.Nodes, c.Modifiers())
}

// DefaultTopology returns the built-in universe used when no topology file is
// supplied: a handful of sectors spanning three zones, with a slow, risky
// corridor between deep space and the capital.
func DefaultTopology() *TopologyConfig {
	return &TopologyConfig{
		Nodes: []Node{
			{
				Name: "haven-station", Zone: "core",
				Position:      Coordinates{X: 0, Y: 0, Z: 0},
				SecurityLevel: 0.1, TrafficDensity: 0.8,
				Neighbors: []string{"ardent-relay", "corvus-gate"},
			},
			{
				Name: "ardent-relay", Zone: "core",
				Position:      Coordinates{X: 12, Y: 4, Z: 0},
				SecurityLevel: 0.15, TrafficDensity: 0.6,
				Neighbors: []string{"haven-station", "corvus-gate", "vesper-outpost"},
			},
			{
				Name: "corvus-gate", Zone: "frontier",
				Position:      Coordinates{X: 8, Y: 18, Z: 2},
				SecurityLevel: 0.4, TrafficDensity: 0.4,
				Neighbors: []string{"haven-station", "ardent-relay", "vesper-outpost", "drift-anchorage"},
			},
			{
				Name: "vesper-outpost", Zone: "frontier",
				Position:      Coordinates{X: 24, Y: 20, Z: 6},
				SecurityLevel: 0.55, TrafficDensity: 0.25,
				Neighbors: []string{"ardent-relay", "corvus-gate", "drift-anchorage"},
			},
			{
				Name: "drift-anchorage", Zone: "deep-space",
				Position:      Coordinates{X: 40, Y: 30, Z: 14},
				SecurityLevel: 0.8, TrafficDensity: 0.1,
				Neighbors: []string{"corvus-gate", "vesper-outpost"},
			},
		},
		ZonePairs: []ZonePairConfig{
			{
				ZoneA: "deep-space", ZoneB: "core",
				Modifier: ZoneModifierConfig{Time: multiplier(2.0), Fuel: multiplier(1.5), Risk: 0.1},
			},
			{
				ZoneA: "deep-space", ZoneB: "frontier",
				Modifier: ZoneModifierConfig{Time: multiplier(1.4), Fuel: multiplier(1.2), Risk: 0.05},
			},
		},
	}
}
