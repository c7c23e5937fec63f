package create_blog

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"bloglist/internal/domain/models"
	"bloglist/internal/http/dto"
	"bloglist/internal/http/handlers/middlewares/auth"
	"bloglist/internal/http/httputils"
	"bloglist/internal/services/blogs"
)

type BlogCreator interface {
	Create(ctx context.Context, tokenString string, in blogs.Input) (models.Blog, error)
}

func HandlerCreateBlog(svc BlogCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req dto.BlogRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httputils.WriteJSONError(w, http.StatusBadRequest, models.ErrInvalidData.Error())
			return
		}

		blog, err := svc.Create(ctx, auth.TokenFromContext(ctx), req.ToInput())
		if err != nil {
			switch {
			case errors.Is(err, models.ErrTokenMissing), errors.Is(err, models.ErrTokenInvalid):
				httputils.WriteJSONError(w, http.StatusUnauthorized, "token missing or invalid")
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
