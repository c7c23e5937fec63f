package register

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"bloglist/internal/domain/models"
	"bloglist/internal/http/dto"
	"bloglist/internal/http/httputils"
)

type UserRegistrar interface {
	Register(ctx context.Context, username, name, password string) (models.User, error)
}

func HandlerRegisterUser(svc UserRegistrar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req dto.CreateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httputils.WriteJSONError(w, http.StatusBadRequest, models.ErrInvalidData.Error())
			return
		}

		user, err := svc.Register(ctx, req.Username, req.Name, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, models.ErrInvalidData), errors.Is(err, models.ErrConflict):
				httputils.WriteJSONError(w, http.StatusBadRequest, err.Error())
			default:
				httputils.WriteJSONError(w, http.StatusInternalServerError, "internal server error")
			}
			return
		}

		httputils.WriteJSONResponse(w, http.StatusCreated, dto.UserToResponse(user, nil))
	}
}
