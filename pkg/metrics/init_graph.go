package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initGraphMetrics() {
	r.GraphNodesTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "astrogate_graph_nodes_total",
			Help: "Number of nodes in the world graph",
		},
	)

	r.GraphEdgesTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "astrogate_graph_edges_total",
			Help: "Number of directed edges in the world graph",
		},
	)

	r.GraphBuildErrors = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "astrogate_graph_build_errors_total",
			Help: "Total number of failed graph constructions",
		},
	)
}
