package auth

import (
	"encoding/base64"
	"fmt"
	"time"

	"bloglist/internal/domain/models"

	"github.com/golang-jwt/jwt/v4"
)

// TokenService issues and verifies HS256-signed identity tokens. It holds no
// storage reference: verification is signature-only and side-effect-free.
type TokenService struct {
	secretKey []byte
	accessExp time.Duration
}

func NewTokenService(secretKey string, accessExp time.Duration) (*TokenService, error) {
	key, err := base64.StdEncoding.DecodeString(secretKey)
	if err != nil || len(key) < 32 {
		return nil, fmt.Errorf("invalid JWT secret key: must be at least 32 bytes when decoded")
	}

	return &TokenService{
		secretKey: key,
		accessExp: accessExp,
	}, nil
}

type Claims struct {
	jwt.RegisteredClaims
	UserID   string `json:"userId"`
	Username string `json:"username"`
}

// Issue signs a token binding the user's identifier. Unforgeable without the
// server secret.
func (s *TokenService) Issue(user models.User) (string, error) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.accessExp)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		UserID:   user.ID,
		Username: user.Username,
	}
	newToken := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := newToken.SignedString(s.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// Verify returns the subject user id encoded in the token. An empty candidate
// maps to ErrTokenMissing, everything unverifiable to ErrTokenInvalid.
func (s *TokenService) Verify(tokenString string) (string, error) {
	if tokenString == "" {
		return "", models.ErrTokenMissing
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return s.secretKey, nil
		})
	if err != nil {
		return "", fmt.Errorf("%w: %v", models.ErrTokenInvalid, err)
	}

	if !token.Valid || claims.UserID == "" {
		return "", models.ErrTokenInvalid
	}

	return claims.UserID, nil
}
