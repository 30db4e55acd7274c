// Package metrics exposes Prometheus instrumentation for the HTTP surface
// and the view recompute pipeline.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "alpha_admin_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "alpha_admin_http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "path", "status"},
	)

	viewRecomputes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "alpha_admin_view_recomputes_total",
			Help: "Total number of view projector recomputations",
		},
		[]string{"screen"},
	)

	fetchOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "alpha_admin_fetch_operations_total",
			Help: "Total number of collaborator fetches",
		},
		[]string{"resource", "status"},
	)
)

// Middleware records request counts and latencies per method/path/status.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		status := strconv.Itoa(ww.Status())
		httpRequestsTotal.WithLabelValues(r.Method, r.URL.Path, status).Inc()
		httpRequestDuration.WithLabelValues(r.Method, r.URL.Path, status).Observe(time.Since(start).Seconds())
	})
}

// RecordRecompute counts a view projector recomputation for a screen.
func RecordRecompute(screen string) {
	viewRecomputes.WithLabelValues(screen).Inc()
}

// RecordFetch counts a collaborator fetch outcome.
func RecordFetch(resource string, success bool) {
	status := "success"
	if !success {
		status = "error"
	}
	fetchOperations.WithLabelValues(resource, status).Inc()
}
