package httputils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBearerToken(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{
			name:   "bearer token",
			header: "Bearer abc.def.ghi",
			want:   "abc.def.ghi",
		},
		{
			name:   "no header",
			header: "",
			want:   "",
		},
		{
			name:   "different scheme",
			header: "Basic dXNlcjpwYXNz",
			want:   "",
		},
		{
			name:   "lowercase scheme is not accepted",
			header: "bearer abc",
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				r.Header.Set(HeaderAuthorization, tt.header)
			}
			assert.Equal(t, tt.want, BearerToken(r))
		})
	}
}

func TestWriteJSONError(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteJSONError(rec, http.StatusBadRequest, "boom")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, MIMEApplicationJSON, rec.Header().Get(HeaderContentType))
	assert.JSONEq(t, `{"error":"boom"}`, rec.Body.String())
}
