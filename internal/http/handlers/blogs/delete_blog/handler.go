package delete_blog

import (
	"context"
	"errors"
	"net/http"

	"bloglist/internal/domain/models"
	"bloglist/internal/http/handlers/middlewares/auth"
	"bloglist/internal/http/httputils"

	"github.com/gorilla/mux"
)

type BlogDeleter interface {
	Delete(ctx context.Context, tokenString, id string) error
}

func HandlerDeleteBlog(svc BlogDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id := mux.Vars(r)["id"]

		if err := svc.Delete(ctx, auth.TokenFromContext(ctx), id); err != nil {
			switch {
			case errors.Is(err, models.ErrTokenMissing), errors.Is(err, models.ErrTokenInvalid):
				httputils.WriteJSONError(w, http.StatusUnauthorized, "token missing or invalid")
			case errors.Is(err, models.ErrUnfound):
				httputils.WriteJSONError(w, http.StatusNotFound, "blog not found")
			case errors.Is(err, models.ErrForbidden):
				httputils.WriteJSONError(w, http.StatusForbidden, "not authorized to delete this blog")
			default:
				httputils.WriteJSONError(w, http.StatusInternalServerError, "internal server error")
			}
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
