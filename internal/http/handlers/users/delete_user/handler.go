package delete_user

import (
	"context"
	"net/http"

	"bloglist/internal/http/httputils"

	"github.com/gorilla/mux"
)

type UserDeleter interface {
	Delete(ctx context.Context, id string) error
}

// No auth on user deletion; the route mirrors the original service and the
// gap is documented rather than closed.
func HandlerDeleteUser(svc UserDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id := mux.Vars(r)["id"]

		if err := svc.Delete(ctx, id); err != nil {
			httputils.WriteJSONError(w, http.StatusInternalServerError, "internal server error")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
