package planner

import (
	"fmt"
	"time"

	"github.com/mkarren/astrogate/pkg/logging"
	"github.com/mkarren/astrogate/pkg/metrics"
	"github.com/mkarren/astrogate/pkg/worldgraph"
)

// Options tunes a Planner. Zero values fall back to defaults.
type Options struct {
	// MaxHops bounds candidate search depth. Defaults to DefaultMaxHops.
	MaxHops int
	Logger  logging.Logger
	Metrics *metrics.Registry
}

// Planner runs the full pipeline for one travel request: candidate
// generation, constraint filtering, scoring, and result synthesis. It holds
// no mutable state and is safe for concurrent use over its shared-immutable
// graph.
type Planner struct {
	graph   *worldgraph.WorldGraph
	maxHops int
	log     logging.Logger
	metrics *metrics.Registry
	now     func() time.Time
}

// New creates a Planner over an already-built world graph.
func New(graph *worldgraph.WorldGraph, opts Options) *Planner {
	maxHops := opts.MaxHops
	if maxHops <= 0 {
		maxHops = DefaultMaxHops
	}
	log := opts.Logger
	if log == nil {
		log = logging.NopLogger{}
	}
	return &Planner{
		graph:   graph,
		maxHops: maxHops,
		log:     log.With(logging.Component("planner")),
		metrics: opts.Metrics,
		now:     time.Now,
	}
}

// Plan resolves one NavigationRequest into the best feasible route. All
// failures are ordinary errors the caller acts on: ErrInvalidRequest,
// ErrInvalidLocation, ErrNoRouteFound, ErrConstraintExhausted.
func (p *Planner) Plan(req NavigationRequest) (*NavigationResult, error) {
	start := p.now()

	if err := req.Validate(); err != nil {
		p.metrics.RecordPlan(metrics.StatusInvalidRequest, p.now().Sub(start), 0, 0)
		return nil, planErr("Plan", req.Origin, req.Destination, fmt.Errorf("%w: %v", ErrInvalidRequest, err))
	}

	if !p.graph.HasNode(req.Origin) {
		p.metrics.RecordPlan(metrics.StatusInvalidLocation, p.now().Sub(start), 0, 0)
		return nil, planErr("Plan", req.Origin, req.Destination, ErrInvalidLocation)
	}
	if !p.graph.HasNode(req.Destination) {
		p.metrics.RecordPlan(metrics.StatusInvalidLocation, p.now().Sub(start), 0, 0)
		return nil, planErr("Plan", req.Origin, req.Destination, ErrInvalidLocation)
	}

	candidates := GenerateCandidates(p.graph, req.Origin, req.Destination, p.maxHops)
	if len(candidates) == 0 {
		p.log.Warn("route not found",
			logging.Origin(req.Origin),
			logging.Destination(req.Destination),
			logging.Int("max_hops", p.maxHops),
		)
		p.metrics.RecordPlan(metrics.StatusNoRoute, p.now().Sub(start), 0, 0)
		return nil, planErr("Plan", req.Origin, req.Destination, ErrNoRouteFound)
	}

	survivors := FilterCandidates(candidates, req)
	if len(survivors) == 0 {
		p.log.Warn("all candidates filtered",
			logging.Origin(req.Origin),
			logging.Destination(req.Destination),
			logging.Int("candidates", len(candidates)),
			logging.Fuel(req.FuelCapacity),
			logging.Risk(req.MaxRisk),
		)
		p.metrics.RecordPlan(metrics.StatusConstraintExhausted, p.now().Sub(start), len(candidates), 0)
		return nil, planErr("Plan", req.Origin, req.Destination, ErrConstraintExhausted)
	}

	best, score := SelectBest(survivors, req.PreferredStyle)
	result := BuildResult(best, req, score, p.now())

	p.log.Info("route selected",
		logging.RouteID(result.ID),
		logging.Origin(result.Origin),
		logging.Destination(result.Destination),
		logging.Hops(result.Risk.Hops),
		logging.Risk(result.Risk.MaxRisk),
		logging.Fuel(result.TotalFuelCost),
		logging.Duration("travel_time", result.TotalTravelTime),
		logging.Int("score", score),
	)
	p.metrics.RecordPlan(metrics.StatusSelected, p.now().Sub(start), len(candidates), len(survivors))
	p.metrics.RecordSelection(result.Risk.Hops, result.Risk.MaxRisk, len(result.Warnings))

	return result, nil
}

// MaxHops returns the configured search depth bound.
func (p *Planner) MaxHops() int {
	return p.maxHops
}

// Graph returns the planner's world graph.
func (p *Planner) Graph() *worldgraph.WorldGraph {
	return p.graph
}
