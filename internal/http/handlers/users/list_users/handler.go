package list_users

import (
	"context"
	"net/http"

	"bloglist/internal/domain/models"
	"bloglist/internal/http/dto"
	"bloglist/internal/http/httputils"
)

type UserLister interface {
	List(ctx context.Context) ([]models.User, error)
}

type UserBlogsLister interface {
	GetBatchByUser(ctx context.Context, userID string) ([]models.Blog, error)
}

func HandlerListUsers(users UserLister, blogs UserBlogsLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userList, err := users.List(ctx)
		if err != nil {
			httputils.WriteJSONError(w, http.StatusInternalServerError, "internal server error")
			return
		}

		responses := make([]dto.UserResponse, 0, len(userList))
		for _, user := range userList {
			owned, err := blogs.GetBatchByUser(ctx, user.ID)
			if err != nil {
				httputils.WriteJSONError(w, http.StatusInternalServerError, "internal server error")
				return
			}
			responses = append(responses, dto.UserToResponse(user, owned))
		}

		httputils.WriteJSONResponse(w, http.StatusOK, responses)
	}
}
