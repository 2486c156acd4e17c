package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	activeConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_active_connections",
			Help: "Number of active HTTP connections",
		},
	)

	greenAPIRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "greenapi_requests_total",
			Help: "Total number of GREEN-API calls by method and outcome",
		},
		[]string{"method", "outcome"},
	)

	greenAPIDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "greenapi_request_duration_seconds",
			Help:    "Duration of GREEN-API calls in seconds",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 15},
		},
		[]string{"method"},
	)

	consoleActions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "console_actions_total",
			Help: "Total number of console actions by action and result",
		},
		[]string{"action", "result"},
	)
)

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		activeConnections.Inc()
		defer activeConnections.Dec()

		rw := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(rw.statusCode)
		path := routePattern(r)

		httpRequestsTotal.WithLabelValues(r.Method, path, status).Inc()
		httpRequestDuration.WithLabelValues(r.Method, path).Observe(duration)
	})
}

// routePattern keeps label cardinality bounded: /api/actions/{action}
// instead of one series per action name typed by a client.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return r.URL.Path
}

func RecordGreenAPICall(method, outcome string, d time.Duration) {
	greenAPIRequests.WithLabelValues(method, outcome).Inc()
	greenAPIDuration.WithLabelValues(method).Observe(d.Seconds())
}

// RecordAction counts a finished action. result is "ok", a local error
// code or "gateway_error".
func RecordAction(action, result string) {
	consoleActions.WithLabelValues(action, result).Inc()
}
