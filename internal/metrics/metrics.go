// Package metrics exposes Prometheus counters for the bot's flows,
// served at /metrics in text exposition format.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	flowOutcomes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "movebot_flow_outcomes_total",
			Help: "Move listing flows by asset and terminal outcome",
		},
		[]string{"asset", "outcome"},
	)

	flowDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "movebot_flow_duration_seconds",
			Help:    "End-to-end move listing flow duration",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"asset"},
	)
)

func init() {
	prometheus.MustRegister(flowOutcomes, flowDuration)
}

// RecordFlow records one completed listing flow.
func RecordFlow(asset, outcome string, duration time.Duration) {
	flowOutcomes.WithLabelValues(asset, outcome).Inc()
	flowDuration.WithLabelValues(asset).Observe(duration.Seconds())
}

// Handler returns the /metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
