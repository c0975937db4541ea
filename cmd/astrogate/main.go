package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	topologyPath string
	logLevel     string
)

func main() {
	root := &cobra.Command{
		Use:   "astrogate",
		Short: "Constrained multi-hop route planning for world-graph navigation",
		Long: `astrogate plans multi-hop routes between named locations in a world
graph, honoring fuel, risk, and time budgets, and tracks route progress
per agent session.`,
	}

	root.PersistentFlags().StringVar(&topologyPath, "topology", "", "topology YAML file (built-in universe when empty)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(newServeCmd())
	root.AddCommand(newPlanCmd())
	root.AddCommand(newValidateCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
