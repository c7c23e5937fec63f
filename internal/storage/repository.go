package storage

import (
	"context"

	"bloglist/internal/domain/models"
)

// Repository is the full document-store contract implemented by every
// backend. Services depend on their own narrow interfaces; this one is used
// for wiring in cmd/server.
type (
	Repository interface {
		UserCreate(ctx context.Context, user models.User) (models.User, error)
		UserGetByID(ctx context.Context, id string) (models.User, error)
		UserGetByUsername(ctx context.Context, username string) (models.User, error)
		UserGetAll(ctx context.Context) ([]models.User, error)
		UserDelete(ctx context.Context, id string) error
		UserAppendBlog(ctx context.Context, userID, blogID string) error
		UserRemoveBlog(ctx context.Context, userID, blogID string) error

		BlogCreate(ctx context.Context, blog models.Blog) (models.Blog, error)
		BlogGetByID(ctx context.Context, id string) (models.Blog, error)
		BlogGetAll(ctx context.Context) ([]models.Blog, error)
		BlogGetBatchByUser(ctx context.Context, userID string) ([]models.Blog, error)
		BlogUpdate(ctx context.Context, blog models.Blog) (models.Blog, error)
		BlogDelete(ctx context.Context, id string) error

		Ping(ctx context.Context) error
		Close() error
	}
)
