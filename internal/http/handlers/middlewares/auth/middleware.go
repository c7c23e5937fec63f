package auth

import (
	"context"
	"net/http"

	"bloglist/internal/http/httputils"
)

type contextKey struct{}

var tokenKey contextKey

// MiddlewareTokenExtractor pulls the bearer token out of the Authorization
// header and stores the candidate string in the request context. Verification
// happens in the services; an absent token is stored as "".
func MiddlewareTokenExtractor() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), tokenKey, httputils.BearerToken(r))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func TokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey).(string)
	return token
}
