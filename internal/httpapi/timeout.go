package httpapi

import (
	"context"
	"net/http"
	"time"
)

// Timeout bounds the request context. Handlers observe the deadline through
// the facade's latency wait; nothing already committed is rolled back.
func Timeout(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if d <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
