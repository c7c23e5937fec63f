package get_blog

import (
	"context"
	"errors"
	"net/http"

	"bloglist/internal/domain/models"
	"bloglist/internal/http/dto"
	"bloglist/internal/http/httputils"

	"github.com/gorilla/mux"
)

type BlogGetter interface {
	GetByID(ctx context.Context, id string) (models.Blog, error)
	Owners(ctx context.Context, blogList []models.Blog) (map[string]models.User, error)
}

func HandlerGetBlog(svc BlogGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id := mux.Vars(r)["id"]

		blog, err := svc.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, models.ErrUnfound) {
				httputils.WriteJSONError(w, http.StatusNotFound, "blog not found")
				return
			}
			httputils.WriteJSONError(w, http.StatusInternalServerError, "internal server error")
			return
		}

		owners, err := svc.Owners(ctx, []models.Blog{blog})
		if err != nil {
			httputils.WriteJSONError(w, http.StatusInternalServerError, "internal server error")
			return
		}

		var owner *models.User
		if u, ok := owners[blog.UserID]; ok {
			owner = &u
		}
		httputils.WriteJSONResponse(w, http.StatusOK, dto.BlogToResponse(blog, owner))
	}
}
