package planner

import (
	"math"
	"testing"

	"github.com/mkarren/astrogate/pkg/worldgraph"
)

// buildTestGraph constructs a small universe. Geometry puts N1->N2, N2->N3,
// and N3->N4 at distance 50 (fuel 5 each) and the N1->N3 shortcut at
// distance 40 (fuel 4).
func buildTestGraph(t *testing.T, security float64) *worldgraph.WorldGraph {
	t.Helper()
	mid := math.Sqrt(2100)
	nodes := []worldgraph.Node{
		{Name: "N1", Zone: "core", Position: worldgraph.Coordinates{X: 0, Y: 0}, SecurityLevel: security, Neighbors: []string{"N2", "N3"}},
		{Name: "N2", Zone: "core", Position: worldgraph.Coordinates{X: 20, Y: mid}, SecurityLevel: security, Neighbors: []string{"N3"}},
		{Name: "N3", Zone: "core", Position: worldgraph.Coordinates{X: 40, Y: 0}, SecurityLevel: security, Neighbors: []string{"N4"}},
		{Name: "N4", Zone: "core", Position: worldgraph.Coordinates{X: 90, Y: 0}, SecurityLevel: security},
	}
	g, err := worldgraph.Build(nodes, worldgraph.NewZoneModifiers())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	return g
}

func waypointsEqual(got []string, want ...string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func TestGenerateCandidates_DirectEdgeAlwaysPresent(t *testing.T) {
	g := buildTestGraph(t, 0)

	candidates := GenerateCandidates(g, "N1", "N3", 3)
	foundDirect := false
	for _, c := range candidates {
		if c.Hops() == 1 {
			foundDirect = true
		}
	}
	if !foundDirect {
		t.Error("direct N1 -> N3 edge must appear among candidates")
	}
	// N1->N2->N3 is the only other simple path within 3 hops
	if len(candidates) != 2 {
		t.Errorf("expected 2 candidates, got %d", len(candidates))
	}
}

func TestGenerateCandidates_HopBound(t *testing.T) {
	g := buildTestGraph(t, 0)

	for _, maxHops := range []int{1, 2, 3} {
		for _, c := range GenerateCandidates(g, "N1", "N4", maxHops) {
			if c.Hops() > maxHops {
				t.Errorf("candidate with %d hops exceeds bound %d", c.Hops(), maxHops)
			}
		}
	}

	// N4 is 2 hops away at minimum; a 1-hop bound finds nothing
	if candidates := GenerateCandidates(g, "N1", "N4", 1); len(candidates) != 0 {
		t.Errorf("expected no candidates within 1 hop, got %d", len(candidates))
	}
}

func TestGenerateCandidates_UnreachableIsEmptyNotError(t *testing.T) {
	g := buildTestGraph(t, 0)

	// N4 declares no neighbors
	if candidates := GenerateCandidates(g, "N4", "N1", 3); candidates != nil {
		t.Errorf("expected nil candidates, got %v", candidates)
	}
}

func TestGenerateCandidates_SimplePathsOnly(t *testing.T) {
	// Cycle: a <-> b, both reach c
	nodes := []worldgraph.Node{
		{Name: "a", Zone: "z", Position: worldgraph.Coordinates{X: 0}, Neighbors: []string{"b"}},
		{Name: "b", Zone: "z", Position: worldgraph.Coordinates{X: 10}, Neighbors: []string{"a", "c"}},
		{Name: "c", Zone: "z", Position: worldgraph.Coordinates{X: 20}},
	}
	g, err := worldgraph.Build(nodes, worldgraph.NewZoneModifiers())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	candidates := GenerateCandidates(g, "a", "c", 5)
	if len(candidates) != 1 {
		t.Fatalf("expected exactly one simple path, got %d", len(candidates))
	}
	if !waypointsEqual(candidates[0].Waypoints(), "a", "b", "c") {
		t.Errorf("unexpected waypoints %v", candidates[0].Waypoints())
	}
}

func TestGenerateCandidates_DiscoveryOrderDeterministic(t *testing.T) {
	g := buildTestGraph(t, 0)

	first := GenerateCandidates(g, "N1", "N4", 3)
	for i := 0; i < 10; i++ {
		again := GenerateCandidates(g, "N1", "N4", 3)
		if len(again) != len(first) {
			t.Fatalf("candidate count changed between runs: %d vs %d", len(again), len(first))
		}
		for j := range again {
			if !waypointsEqual(again[j].Waypoints(), first[j].Waypoints()...) {
				t.Fatalf("discovery order changed between runs")
			}
		}
	}
}

func TestCandidate_Aggregates(t *testing.T) {
	g := buildTestGraph(t, 0.4)

	candidates := GenerateCandidates(g, "N1", "N4", 3)
	var shortcut Candidate
	for _, c := range candidates {
		if c.Hops() == 2 {
			shortcut = c
		}
	}
	if shortcut.Hops() != 2 {
		t.Fatal("expected the 2-hop shortcut candidate")
	}

	if math.Abs(shortcut.TotalFuelCost()-9) > 1e-6 {
		t.Errorf("expected fuel 9, got %g", shortcut.TotalFuelCost())
	}
	if math.Abs(shortcut.TotalDistance()-90) > 1e-6 {
		t.Errorf("expected distance 90, got %g", shortcut.TotalDistance())
	}
	if math.Abs(shortcut.MaxRisk()-0.4) > 1e-9 {
		t.Errorf("expected max risk 0.4, got %g", shortcut.MaxRisk())
	}
	if !waypointsEqual(shortcut.Waypoints(), "N1", "N3", "N4") {
		t.Errorf("unexpected waypoints %v", shortcut.Waypoints())
	}
}
