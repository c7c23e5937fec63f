package update_blog

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"bloglist/internal/domain/models"
	"bloglist/internal/http/dto"
	"bloglist/internal/http/httputils"
	"bloglist/internal/services/blogs"

	"github.com/gorilla/mux"
)

type BlogUpdater interface {
	Update(ctx context.Context, id string, in blogs.Input) (models.Blog, error)
}

// Full replace of title/author/url/likes. Deliberately unauthenticated, same
// as the original service.
func HandlerUpdateBlog(svc BlogUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id := mux.Vars(r)["id"]

		var req dto.BlogRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httputils.WriteJSONError(w, http.StatusBadRequest, models.ErrInvalidData.Error())
			return
		}

		blog, err := svc.Update(ctx, id, req.ToInput())
		if err != nil {
			switch {
			case errors.Is(err, models.ErrUnfound):
				httputils.WriteJSONError(w, http.StatusNotFound, "blog not found")
			case errors.Is(err, models.ErrInvalidData):
				httputils.WriteJSONError(w, http.StatusBadRequest, err.Error())
			default:
				httputils.WriteJSONError(w, http.StatusInternalServerError, "internal server error")
			}
			return
		}

		httputils.WriteJSONResponse(w, http.StatusOK, dto.BlogToResponse(blog, nil))
	}
}
