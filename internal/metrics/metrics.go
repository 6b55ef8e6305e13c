package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Backend call metrics
	BackendRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bookingweb_backend_requests_total",
			Help: "Total number of requests issued to backend services",
		},
		[]string{"service", "method", "status"},
	)

	BackendRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bookingweb_backend_request_duration_seconds",
			Help:    "Duration of backend service requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service"},
	)

	// Room-name enrichment
	EnrichmentFallbacksTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "bookingweb_enrichment_fallbacks_total",
			Help: "Total number of reservations rendered with a synthesized room label",
		},
	)

	// Session gate outcomes: missing, rejected, authenticated
	AuthGateTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bookingweb_auth_gate_total",
			Help: "Total number of session checks by outcome",
		},
		[]string{"outcome"},
	)
)
