package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bloglist/internal/domain/models"

	"golang.org/x/crypto/bcrypt"
)

const (
	minUsernameLen = 3
	minPasswordLen = 3
	bcryptCost     = 10
)

//go:generate mockgen -source=users.go -destination=../../mocks/mock_user_storage.go -package=mocks
type UserStorage interface {
	UserCreate(ctx context.Context, user models.User) (models.User, error)
	UserGetByID(ctx context.Context, id string) (models.User, error)
	UserGetByUsername(ctx context.Context, username string) (models.User, error)
	UserGetAll(ctx context.Context) ([]models.User, error)
	UserDelete(ctx context.Context, id string) error
}

// Service is the credential store: registration policy, salted password
// hashing and credential verification live here.
type Service struct {
	storage UserStorage
}

func NewService(storage UserStorage) *Service {
	return &Service{storage: storage}
}

// Register enforces the minimum-length policy, hashes the raw password and
// persists the user with an empty blog list.
func (s *Service) Register(ctx context.Context, username, name, password string) (models.User, error) {
	if len(username) < minUsernameLen {
		return models.User{}, fmt.Errorf("%w: username must be at least 3 characters long", models.ErrInvalidData)
	}
	if len(password) < minPasswordLen {
		return models.User{}, fmt.Errorf("%w: password must be at least 3 characters long", models.ErrInvalidData)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		Username:     username,
		Name:         name,
		PasswordHash: string(hash),
		Blogs:        []string{},
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.storage.UserCreate(ctx, user)
	if err != nil {
		if errors.Is(err, models.ErrConflict) {
			return models.User{}, models.ErrConflict
		}
		return models.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return created, nil
}

// VerifyCredentials returns the matching user or ErrInvalidCredentials. The
// same error covers an unknown username and a wrong password.
func (s *Service) VerifyCredentials(ctx context.Context, username, password string) (models.User, error) {
	user, err := s.storage.UserGetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, models.ErrUnfound) {
			return models.User{}, models.ErrInvalidCredentials
		}
		return models.User{}, fmt.Errorf("failed to look up user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return models.User{}, models.ErrInvalidCredentials
	}

	return user, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (models.User, error) {
	user, err := s.storage.UserGetByID(ctx, id)
	if err != nil {
		if errors.Is(err, models.ErrUnfound) {
			return models.User{}, models.ErrUnfound
		}
		return models.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

func (s *Service) List(ctx context.Context) ([]models.User, error) {
	users, err := s.storage.UserGetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// Delete is idempotent and leaves the user's blogs in place.
func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return models.ErrInvalidData
	}
	if err := s.storage.UserDelete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}
