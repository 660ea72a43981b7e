package middleware

import (
	"bytes"
	"net/http"

	"agri-works/internal/cache"
	"agri-works/internal/metrics"

	"github.com/rs/zerolog"
)

// RouteCache serves GET responses for route from store and stores fresh
// 200 responses. A failing store is treated as a miss. A response is stored
// under the route generation read before rendering, so one that overlaps an
// invalidation is never kept.
func RouteCache(store cache.RouteCache, route string, m *metrics.Metrics, logger zerolog.Logger) func(http.Handler) http.Handler {
	logger = logger.With().Str("component", "route_cache").Str("route", route).Logger()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet {
				next.ServeHTTP(w, r)
				return
			}

			variant := cache.VariantKey(r.URL)

			entry, generation, err := store.Get(r.Context(), route, variant)
			if err != nil {
				logger.Warn().Err(err).Str("variant", variant).Msg("cache lookup failed")
			}
			m.CacheLookup(route, entry != nil)

			if entry != nil {
				w.Header().Set("Content-Type", entry.ContentType)
				w.Header().Set("X-Cache", "HIT")
				w.WriteHeader(http.StatusOK)
				w.Write(entry.Body)
				return
			}

			w.Header().Set("X-Cache", "MISS")
			rec := &recordingWriter{responseWriter: responseWriter{ResponseWriter: w, statusCode: http.StatusOK}}
			next.ServeHTTP(rec, r)

			if err != nil || rec.statusCode != http.StatusOK {
				return
			}

			fresh := cache.Entry{
				ContentType: w.Header().Get("Content-Type"),
				Body:        rec.body.Bytes(),
			}
			if err := store.Set(r.Context(), route, variant, generation, fresh); err != nil {
				logger.Warn().Err(err).Str("variant", variant).Msg("failed to store response")
			}
		})
	}
}

// recordingWriter keeps a copy of the body written through it.
type recordingWriter struct {
	responseWriter
	body bytes.Buffer
}

func (rw *recordingWriter) Write(b []byte) (int, error) {
	rw.body.Write(b)
	return rw.responseWriter.Write(b)
}
