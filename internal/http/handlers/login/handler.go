package login

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"bloglist/internal/domain/models"
	"bloglist/internal/http/dto"
	"bloglist/internal/http/httputils"
)

type CredentialVerifier interface {
	VerifyCredentials(ctx context.Context, username, password string) (models.User, error)
}

type TokenIssuer interface {
	Issue(user models.User) (string, error)
}

func HandlerLogin(users CredentialVerifier, tokens TokenIssuer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req dto.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httputils.WriteJSONError(w, http.StatusBadRequest, models.ErrInvalidData.Error())
			return
		}

		user, err := users.VerifyCredentials(ctx, req.Username, req.Password)
		if err != nil {
			if errors.Is(err, models.ErrInvalidCredentials) {
				httputils.WriteJSONError(w, http.StatusUnauthorized, models.ErrInvalidCredentials.Error())
				return
			}
			httputils.WriteJSONError(w, http.StatusInternalServerError, "internal server error")
			return
		}

		token, err := tokens.Issue(user)
		if err != nil {
			httputils.WriteJSONError(w, http.StatusInternalServerError, "internal server error")
			return
		}

		httputils.WriteJSONResponse(w, http.StatusOK, dto.LoginResponse{
			Token:    token,
			Username: user.Username,
			Name:     user.Name,
		})
	}
}
