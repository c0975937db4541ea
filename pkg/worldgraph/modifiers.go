package worldgraph

// ZoneModifier adjusts derived edge metrics for travel between a pair of
// zones. Time and Fuel are multipliers (1.0 = neutral); Risk is an additive
// offset applied before clamping.
type ZoneModifier struct {
	Time float64 `yaml:"time"`
	Fuel float64 `yaml:"fuel"`
	Risk float64 `yaml:"risk"`

	// Restrictions are advisory tags copied onto every edge crossing this
	// zone pair (e.g. "permit": "military").
	Restrictions map[string]string `yaml:"restrictions,omitempty"`
}

// neutralModifier leaves distance-derived metrics unchanged.
var neutralModifier = ZoneModifier{Time: 1.0, Fuel: 1.0, Risk: 0.0}

// ZoneModifiers holds per-zone-pair metric adjustments. Pairs are unordered:
// a modifier declared for (deep-space, capital) also applies to
// (capital, deep-space).
type ZoneModifiers struct {
	pairs map[zonePair]ZoneModifier
}

type zonePair struct {
	a, b string
}

// normalizePair orders the two zone names so lookup is symmetric.
func normalizePair(z1, z2 string) zonePair {
	if z2 < z1 {
		z1, z2 = z2, z1
	}
	return zonePair{a: z1, b: z2}
}

// NewZoneModifiers builds an empty modifier table.
func NewZoneModifiers() *ZoneModifiers {
	return &ZoneModifiers{pairs: make(map[zonePair]ZoneModifier)}
}

// Set registers a modifier for travel between two zones, replacing any
// previous entry for the pair. The modifier is stored as given: callers that
// only want to adjust risk start from the neutral 1.0 multipliers.
func (zm *ZoneModifiers) Set(zone1, zone2 string, mod ZoneModifier) {
	zm.pairs[normalizePair(zone1, zone2)] = mod
}

// Lookup returns the modifier for a zone pair, or the neutral modifier when
// the pair has no entry.
func (zm *ZoneModifiers) Lookup(zone1, zone2 string) ZoneModifier {
	if zm == nil || zm.pairs == nil {
		return neutralModifier
	}
	if mod, ok := zm.pairs[normalizePair(zone1, zone2)]; ok {
		return mod
	}
	return neutralModifier
}

// Len returns the number of registered zone pairs.
func (zm *ZoneModifiers) Len() int {
	if zm == nil {
		return 0
	}
	return len(zm.pairs)
}
