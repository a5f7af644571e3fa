// Panic recovery middleware
//
// Prevents server crashes from panics:
// - Panic catching
// - Error logging
// - Client error responses
// - Stack trace capture

package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/ilijajolevski/ilinden/internal/telemetry"
)

// Recovery returns a middleware that recovers from panics in the handler
// chain, logs the panic and stack trace, and responds with a 500 instead
// of letting the connection die.
func Recovery(logger telemetry.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Error("panic recovered",
						"path", r.URL.Path,
						"panic", rec,
						"stack", string(debug.Stack()),
					)
					w.WriteHeader(http.StatusInternalServerError)
					_, _ = w.Write([]byte("internal server error"))
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
