// Package metrics exposes Prometheus counters for core operations.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Operations counts core operations by name and outcome. The server layer
// records one increment per handled request.
var Operations = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "dahood_operations_total",
		Help: "Core operations handled, labeled by operation and outcome.",
	},
	[]string{"op", "status"},
)

// Record increments the counter for op with status "ok" or "error".
func Record(op string, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	Operations.WithLabelValues(op, status).Inc()
}
