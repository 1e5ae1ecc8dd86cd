// Package metrics holds the Prometheus collectors of the rates service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "fxrates"

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests processed",
		},
		[]string{"path", "method", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"path", "method"},
	)

	// ViewDuration times each view resolved by the aggregator.
	ViewDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "views",
			Name:      "duration_seconds",
			Help:      "Time spent resolving one analytic view",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"view", "status"},
	)

	// SourceFallbacks counts reads answered by the synthetic dataset instead of the store.
	SourceFallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "source",
			Name:      "fallbacks_total",
			Help:      "Reads served from the synthetic dataset because the store failed or is not configured",
		},
		[]string{"query", "reason"},
	)
)

const (
	FallbackReasonQueryError  = "query_error"
	FallbackReasonUnavailable = "unavailable"
)
