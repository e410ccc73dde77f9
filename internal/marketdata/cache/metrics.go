package cache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var lookups = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "finagent",
		Subsystem: "marketdata_cache",
		Name:      "lookups_total",
		Help:      "Cache lookups by data kind and result",
	},
	[]string{"kind", "result"},
)
