package middleware

import (
	"net/http"
	"time"

	"agri-works/internal/metrics"
)

// Metrics records request counts and latencies by matched route.
func Metrics(m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(rw, r)

			m.ObserveRequest(r.Method, routePattern(r), rw.statusCode, time.Since(start))
		})
	}
}
