package httpapi

import (
	"net/http"
	"time"

	"taskboard/internal/observability/jsonlog"
)

func LoggingJSON(logger *jsonlog.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = jsonlog.Discard()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sw, r)

			requestLogger(logger, r).Info("http_request", map[string]any{
				"status": sw.status,
				"dur_ms": time.Since(start).Milliseconds(),
				"ua":     r.UserAgent(),
			})
		})
	}
}

// requestLogger tags every line with the request id, method and path.
func requestLogger(logger *jsonlog.Logger, r *http.Request) *jsonlog.Logger {
	return logger.With(map[string]any{
		"rid":    RequestIDFromContext(r.Context()),
		"method": r.Method,
		"path":   r.URL.Path,
	})
}
