// Package metrics defines the Prometheus instrumentation for the server.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts handled HTTP requests by route and status.
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "settleup_http_requests_total",
		Help: "Total number of HTTP requests handled.",
	}, []string{"method", "path", "code"})

	// HTTPRequestDuration observes request latency by route.
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "settleup_http_request_duration_seconds",
		Help:    "HTTP request latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	// ReconciliationsTotal counts completed reconciliation runs.
	ReconciliationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "settleup_reconciliations_total",
		Help: "Total number of event reconciliations computed.",
	})

	// SettlementsRejectedTotal counts settlements the guard refused.
	SettlementsRejectedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "settleup_settlements_rejected_total",
		Help: "Total number of settlement requests rejected by authorization.",
	})
)
