package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CalculationRequests counts calculator invocations by outcome.
	CalculationRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "calculation_requests_total",
			Help: "Total number of calculator invocations",
		},
		[]string{"calculator", "status"},
	)

	// CalculationErrors counts rejected or failed calculations.
	CalculationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "calculation_errors_total",
			Help: "Number of calculation errors",
		},
		[]string{"calculator", "error_type"},
	)

	// RequestDuration observes wall-clock handler latency per endpoint.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)
)
