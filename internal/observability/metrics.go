// Package observability exposes the Prometheus instrumentation shared
// by the gateway and the discovery pipeline.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// APIRequests counts outbound platform API calls by operation and
	// outcome ("success" or "error").
	APIRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "shorts_discovery",
		Name:      "api_requests_total",
		Help:      "Outbound YouTube Data API requests by operation and outcome.",
	}, []string{"operation", "outcome"})

	// CacheLookups counts gateway cache lookups by operation and result
	// ("hit" or "miss").
	CacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "shorts_discovery",
		Name:      "cache_lookups_total",
		Help:      "Gateway cache lookups by operation and result.",
	}, []string{"operation", "result"})

	// DiscoveryRuns counts completed pipeline runs.
	DiscoveryRuns = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "shorts_discovery",
		Name:      "runs_total",
		Help:      "Completed discovery pipeline runs.",
	})

	// RowsProduced counts result rows that survived filtering.
	RowsProduced = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "shorts_discovery",
		Name:      "rows_produced_total",
		Help:      "Result rows produced across all discovery runs.",
	})

	// RunDuration observes wall-clock duration of pipeline runs.
	RunDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "shorts_discovery",
		Name:      "run_duration_seconds",
		Help:      "Wall-clock duration of discovery pipeline runs.",
		Buckets:   prometheus.ExponentialBuckets(0.25, 2, 10),
	})
)
