package worldgraph

import (
	"time"
)

// WorldGraph is the authoritative, read-only travel topology. It is built
// once at startup and safe for concurrent reads afterwards; nothing in this
// package mutates it post-construction.
type WorldGraph struct {
	nodes map[string]*Node
	edges map[string][]*Route // keyed by origin node name
}

// Build constructs a WorldGraph from a node list, synthesizing exactly one
// edge per declared directed adjacency. Construction fails atomically if a
// neighbor name does not resolve to a declared node, or if two nodes share a
// name.
func Build(nodes []Node, modifiers *ZoneModifiers) (*WorldGraph, error) {
	if len(nodes) == 0 {
		return nil, &BuildError{Cause: ErrEmptyTopology}
	}

	byName := make(map[string]*Node, len(nodes))
	for i := range nodes {
		n := nodes[i]
		if _, exists := byName[n.Name]; exists {
			return nil, &BuildError{Node: n.Name, Cause: ErrDuplicateNode}
		}
		byName[n.Name] = &n
	}

	edges := make(map[string][]*Route, len(nodes))
	for _, from := range byName {
		for _, neighborName := range from.Neighbors {
			to, ok := byName[neighborName]
			if !ok {
				return nil, &BuildError{Node: from.Name, Neighbor: neighborName, Cause: ErrUnknownNeighbor}
			}
			edges[from.Name] = append(edges[from.Name], synthesizeRoute(from, to, modifiers))
		}
	}

	return &WorldGraph{nodes: byName, edges: edges}, nil
}

// synthesizeRoute derives one edge's metrics from its endpoints and the
// zone-pair modifier table.
func synthesizeRoute(from, to *Node, modifiers *ZoneModifiers) *Route {
	mod := modifiers.Lookup(from.Zone, to.Zone)

	distance := from.Position.DistanceTo(to.Position)
	travelTime := time.Duration(distance * minutesPerUnit * mod.Time * float64(time.Minute))
	fuelCost := distance * fuelPerUnit * mod.Fuel
	risk := clamp01((from.SecurityLevel+to.SecurityLevel)/2 + mod.Risk)

	var restrictions map[string]string
	if len(mod.Restrictions) > 0 {
		restrictions = make(map[string]string, len(mod.Restrictions))
		for k, v := range mod.Restrictions {
			restrictions[k] = v
		}
	}

	return &Route{
		From:         from.Name,
		To:           to.Name,
		Style:        classifyStyle(from, to, risk, travelTime),
		Distance:     distance,
		TravelTime:   travelTime,
		FuelCost:     fuelCost,
		RiskLevel:    risk,
		Waypoints:    []string{from.Name, to.Name},
		Restrictions: restrictions,
	}
}

// HasNode reports whether a node with the given name exists.
func (g *WorldGraph) HasNode(name string) bool {
	_, ok := g.nodes[name]
	return ok
}

// Node returns the named node, or nil if unknown.
func (g *WorldGraph) Node(name string) *Node {
	return g.nodes[name]
}

// NeighborsOf returns every edge departing from the named node. An unknown
// or isolated node yields an empty slice, not an error.
func (g *WorldGraph) NeighborsOf(name string) []*Route {
	return g.edges[name]
}

// DirectRoute returns the edge from origin to destination if one was
// declared, or nil.
func (g *WorldGraph) DirectRoute(origin, destination string) *Route {
	for _, r := range g.edges[origin] {
		if r.To == destination {
			return r
		}
	}
	return nil
}

// NodeCount returns the number of nodes in the graph.
func (g *WorldGraph) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the total number of directed edges.
func (g *WorldGraph) EdgeCount() int {
	total := 0
	for _, routes := range g.edges {
		total += len(routes)
	}
	return total
}

// NodeNames returns the names of all nodes, in no particular order.
func (g *WorldGraph) NodeNames() []string {
	names := make([]string, 0, len(g.nodes))
	for name := range g.nodes {
		names = append(names, name)
	}
	return names
}
