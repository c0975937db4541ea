package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mkarren/astrogate/pkg/logging"
	"github.com/mkarren/astrogate/pkg/planner"
	"github.com/mkarren/astrogate/pkg/worldgraph"
)

// loadGraph builds the world graph from --topology, or the built-in universe
// when the flag is unset.
func loadGraph(log logging.Logger) (*worldgraph.WorldGraph, *worldgraph.TopologyConfig, error) {
	var (
		topo *worldgraph.TopologyConfig
		err  error
	)
	if topologyPath != "" {
		topo, err = worldgraph.LoadTopology(topologyPath)
		if err != nil {
			return nil, nil, err
		}
		log.Info("topology loaded", logging.String("path", topologyPath), logging.Int("nodes", len(topo.Nodes)))
	} else {
		topo = worldgraph.DefaultTopology()
		log.Info("using built-in topology", logging.Int("nodes", len(topo.Nodes)))
	}

	graph, err := topo.BuildGraph()
	if err != nil {
		log.Error("graph construction failed", logging.Error(err))
		return nil, nil, err
	}
	return graph, topo, nil
}

func newPlanCmd() *cobra.Command {
	var (
		origin      string
		destination string
		style       string
		fuel        float64
		maxRisk     float64
		timeLimit   time.Duration
		maxHops     int
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Plan one route and print the result as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logging.NewJSONLogger(os.Stderr, logging.ParseLevel(logLevel))

			graph, _, err := loadGraph(log)
			if err != nil {
				return err
			}

			p := planner.New(graph, planner.Options{MaxHops: maxHops, Logger: log})
			result, err := p.Plan(planner.NavigationRequest{
				Origin:         origin,
				Destination:    destination,
				PreferredStyle: worldgraph.RouteStyle(style),
				FuelCapacity:   fuel,
				MaxRisk:        maxRisk,
				TimeConstraint: timeLimit,
			})
			if err != nil {
				return err
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		},
	}

	cmd.Flags().StringVar(&origin, "from", "", "origin location")
	cmd.Flags().StringVar(&destination, "to", "", "destination location")
	cmd.Flags().StringVar(&style, "style", "", "preferred route style (direct, safe, fast, stealth)")
	cmd.Flags().Float64Var(&fuel, "fuel", 100, "fuel capacity")
	cmd.Flags().Float64Var(&maxRisk, "max-risk", 1.0, "maximum tolerated per-hop risk [0,1]")
	cmd.Flags().DurationVar(&timeLimit, "time-limit", 0, "optional travel time budget (0 = none)")
	cmd.Flags().IntVar(&maxHops, "max-hops", planner.DefaultMaxHops, "candidate search depth bound")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate a topology file and report graph dimensions",
		RunE: func(cmd *cobra.Command, args []string) error {
			if topologyPath == "" {
				return fmt.Errorf("--topology is required for validate")
			}
			topo, err := worldgraph.LoadTopology(topologyPath)
			if err != nil {
				return err
			}
			graph, err := topo.BuildGraph()
			if err != nil {
				return err
			}
			fmt.Printf("topology ok: %d nodes, %d edges, %d zone pairs\n",
				graph.NodeCount(), graph.EdgeCount(), topo.Modifiers().Len())
			return nil
		},
	}
}
