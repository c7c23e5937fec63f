package list_blogs

import (
	"context"
	"net/http"

	"bloglist/internal/domain/models"
	"bloglist/internal/http/dto"
	"bloglist/internal/http/httputils"
)

type BlogLister interface {
	GetAll(ctx context.Context) ([]models.Blog, error)
	Owners(ctx context.Context, blogList []models.Blog) (map[string]models.User, error)
}

func HandlerListBlogs(svc BlogLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		blogList, err := svc.GetAll(ctx)
		if err != nil {
			httputils.WriteJSONError(w, http.StatusInternalServerError, "internal server error")
			return
		}

		owners, err := svc.Owners(ctx, blogList)
		if err != nil {
			httputils.WriteJSONError(w, http.StatusInternalServerError, "internal server error")
			return
		}

		httputils.WriteJSONResponse(w, http.StatusOK, dto.BlogsToResponse(blogList, owners))
	}
}
