package httpx

import (
	"net/http"

	"github.com/felixge/httpsnoop"
	"github.com/rs/zerolog"
)

// AccessLog emits one log line per handled request with method, path,
// response status and latency.
func AccessLog(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
			m := httpsnoop.CaptureMetrics(next, rw, req)

			logger.Info().
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Int("status", m.Code).
				Int64("bytes", m.Written).
				Dur("duration", m.Duration).
				Msg("request handled")
		})
	}
}
