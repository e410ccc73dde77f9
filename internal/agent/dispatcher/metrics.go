package dispatcher

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// fetchTotal counts fetches by tool kind and outcome (ok, failed, timeout).
	fetchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "finagent",
		Subsystem: "dispatcher",
		Name:      "fetch_total",
		Help:      "Data fetches by tool kind and outcome",
	}, []string{"tool_kind", "outcome"})

	fetchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "finagent",
		Subsystem: "dispatcher",
		Name:      "fetch_duration_seconds",
		Help:      "Latency of a single data fetch",
		Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 20},
	}, []string{"tool_kind"})

	batchSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "finagent",
		Subsystem: "dispatcher",
		Name:      "batch_size",
		Help:      "Deduplicated requests per dispatch",
		Buckets:   []float64{0, 1, 2, 3, 4, 5, 6, 7},
	})
)

func recordFetch(kind, outcome string, seconds float64) {
	fetchTotal.WithLabelValues(kind, outcome).Inc()
	fetchDuration.WithLabelValues(kind).Observe(seconds)
}
