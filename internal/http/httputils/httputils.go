package httputils

import (
	"encoding/json"
	"net/http"
	"strings"
)

const (
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"

	MIMEApplicationJSON = "application/json"

	bearerPrefix = "Bearer "
)

func WriteJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set(HeaderContentType, MIMEApplicationJSON)
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(struct {
		Error string `json:"error"`
	}{Error: message})
}

func WriteJSONResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set(HeaderContentType, MIMEApplicationJSON)
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// BearerToken strips the "Bearer " scheme from an Authorization header value.
// Returns "" when the header is absent or carries a different scheme.
func BearerToken(r *http.Request) string {
	authorization := r.Header.Get(HeaderAuthorization)
	if strings.HasPrefix(authorization, bearerPrefix) {
		return strings.TrimPrefix(authorization, bearerPrefix)
	}
	return ""
}
