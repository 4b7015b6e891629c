package http

import (
	"net/http"
	"time"

	"investment-engine/observability"
)

// MetricsMiddleware observes wall-clock latency per endpoint.
func MetricsMiddleware(endpoint string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		observability.RequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	})
}

// TracingMiddleware opens a span per request when tracing is initialized.
func TracingMiddleware(endpoint string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if observability.Tracer == nil {
			next.ServeHTTP(w, r)
			return
		}

		ctx, span := observability.Tracer.Start(r.Context(), r.Method+" "+endpoint)
		defer span.End()

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
