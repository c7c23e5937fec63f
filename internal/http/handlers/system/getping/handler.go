package getping

import (
	"context"
	"net/http"

	"bloglist/internal/http/httputils"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

func HandlerPing(store Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := store.Ping(r.Context()); err != nil {
			httputils.WriteJSONError(w, http.StatusInternalServerError, "storage unavailable")
			return
		}
		w.WriteHeader(http.StatusOK)
	}
}
