package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/mkarren/astrogate/pkg/api"
	"github.com/mkarren/astrogate/pkg/logging"
	"github.com/mkarren/astrogate/pkg/metrics"
	"github.com/mkarren/astrogate/pkg/planner"
	"github.com/mkarren/astrogate/pkg/session"
)

func newServeCmd() *cobra.Command {
	var (
		port     int
		maxHops  int
		homeNode string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the status and planning HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logging.NewJSONLogger(os.Stdout, logging.ParseLevel(logLevel))

			reg := metrics.NewRegistry()

			graph, topo, err := loadGraph(log)
			if err != nil {
				reg.IncGraphBuildError()
				return err
			}
			reg.SetGraphSize(graph.NodeCount(), graph.EdgeCount())

			p := planner.New(graph, planner.Options{
				MaxHops: maxHops,
				Logger:  log,
				Metrics: reg,
			})

			if homeNode == "" {
				homeNode = topo.Nodes[0].Name
			}
			sessions := session.NewRegistry(homeNode, session.Options{Logger: log, Metrics: reg})

			server := api.NewServer(graph, p, sessions, reg, log, port)

			errCh := make(chan error, 1)
			go func() {
				if err := server.Start(); err != nil && err != http.ErrServerClosed {
					errCh <- err
				}
			}()

			stop := make(chan os.Signal, 1)
			signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-errCh:
				return err
			case sig := <-stop:
				log.Info("shutting down", logging.String("signal", sig.String()))
			}

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(ctx)
		},
	}

	cmd.Flags().IntVar(&port, "port", 8080, "HTTP listen port")
	cmd.Flags().IntVar(&maxHops, "max-hops", planner.DefaultMaxHops, "candidate search depth bound")
	cmd.Flags().StringVar(&homeNode, "home", "", "default starting location for new sessions (first topology node when empty)")
	return cmd
}
