package recovery

import (
	"net/http"

	"bloglist/internal/http/httputils"

	"github.com/rs/zerolog"
)

// MiddlewareRecovery turns panics into a generic 500 body so internal detail
// never reaches the client.
func MiddlewareRecovery(log *zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					log.Error().
						Interface("panic", rec).
						Str("method", r.Method).
						Str("path", r.URL.Path).
						Msg("panic recovered")
					httputils.WriteJSONError(w, http.StatusInternalServerError, "internal server error")
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
