package llmprovider

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	generationTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "finagent",
			Subsystem: "llm",
			Name:      "generation_total",
			Help:      "Generation attempts by provider and outcome",
		},
		[]string{"provider", "outcome"},
	)

	generationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "finagent",
			Subsystem: "llm",
			Name:      "generation_duration_seconds",
			Help:      "Generation latency per provider",
			Buckets:   []float64{0.25, 0.5, 1, 2, 5, 10, 20, 40, 60},
		},
		[]string{"provider"},
	)

	tokensTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "finagent",
			Subsystem: "llm",
			Name:      "tokens_total",
			Help:      "Tokens consumed by provider and direction",
		},
		[]string{"provider", "direction"},
	)
)

func recordGeneration(provider string, start time.Time, resp *Response, err error) {
	generationDuration.WithLabelValues(provider).Observe(time.Since(start).Seconds())
	if err != nil {
		generationTotal.WithLabelValues(provider, "error").Inc()
		return
	}
	generationTotal.WithLabelValues(provider, "success").Inc()
	if resp != nil && resp.Usage != nil {
		tokensTotal.WithLabelValues(provider, "input").Add(float64(resp.Usage.InputTokens))
		tokensTotal.WithLabelValues(provider, "output").Add(float64(resp.Usage.OutputTokens))
	}
}
