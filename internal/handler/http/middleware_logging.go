package http

import (
	"net/http"
	"time"

	"github.com/thirstydigital/django/internal/logger"
)

// withLogging writes one access-log line per request once the response is
// out. The compression middleware runs downstream and mutates the shared
// header map, so the logged encoding is what actually went over the wire.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		entry := log.Info().
			Str("uri", r.RequestURI).
			Str("method", r.Method).
			Int("status", lw.status).
			Dur("duration", time.Since(start)).
			Int("size", lw.size)
		if encoding := w.Header().Get("Content-Encoding"); encoding != "" {
			entry = entry.Str("encoding", encoding)
		}
		entry.Send()
	})
}
