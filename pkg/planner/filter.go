package planner

// Satisfies reports whether the candidate fits every limit in the request:
// aggregate fuel within capacity, worst single-leg risk within tolerance,
// and, when a time constraint is set, aggregate travel time within it. The
// risk check is deliberately conservative: one dangerous hop disqualifies
// the whole path even when the average is low.
func (c Candidate) Satisfies(req NavigationRequest) bool {
	if c.TotalFuelCost() > req.FuelCapacity {
		return false
	}
	if c.MaxRisk() > req.MaxRisk {
		return false
	}
	if req.TimeConstraint > 0 && c.TotalTravelTime() > req.TimeConstraint {
		return false
	}
	return true
}

// FilterCandidates returns the candidates satisfying the request's limits,
// preserving discovery order. An empty result is a normal outcome, not an
// error.
func FilterCandidates(candidates []Candidate, req NavigationRequest) []Candidate {
	survivors := make([]Candidate, 0, len(candidates))
	for _, c := range candidates {
		if c.Satisfies(req) {
			survivors = append(survivors, c)
		}
	}
	return survivors
}
