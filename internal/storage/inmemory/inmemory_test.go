package inmemory

import (
	"context"
	"testing"
	"time"

	"bloglist/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserCreate(t *testing.T) {
	store := NewStorage()
	ctx := context.Background()

	created, err := store.UserCreate(ctx, models.User{Username: "mluukkai", PasswordHash: "hash"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.NotNil(t, created.Blogs)

	_, err = store.UserCreate(ctx, models.User{Username: "mluukkai", PasswordHash: "other"})
	assert.ErrorIs(t, err, models.ErrConflict)

	_, err = store.UserCreate(ctx, models.User{})
	assert.ErrorIs(t, err, models.ErrInvalidData)
}

func TestUserLookups(t *testing.T) {
	store := NewStorage()
	ctx := context.Background()

	created, err := store.UserCreate(ctx, models.User{Username: "mluukkai", CreatedAt: time.Now()})
	require.NoError(t, err)

	byID, err := store.UserGetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Username, byID.Username)

	byName, err := store.UserGetByUsername(ctx, "mluukkai")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byName.ID)

	_, err = store.UserGetByID(ctx, "missing")
	assert.ErrorIs(t, err, models.ErrUnfound)

	_, err = store.UserGetByUsername(ctx, "missing")
	assert.ErrorIs(t, err, models.ErrUnfound)
}

func TestUserDeleteIdempotent(t *testing.T) {
	store := NewStorage()
	ctx := context.Background()

	created, err := store.UserCreate(ctx, models.User{Username: "mluukkai"})
	require.NoError(t, err)

	require.NoError(t, store.UserDelete(ctx, created.ID))
	require.NoError(t, store.UserDelete(ctx, created.ID))

	_, err = store.UserGetByID(ctx, created.ID)
	assert.ErrorIs(t, err, models.ErrUnfound)
}

func TestUserBlogBackReference(t *testing.T) {
	store := NewStorage()
	ctx := context.Background()

	user, err := store.UserCreate(ctx, models.User{Username: "mluukkai"})
	require.NoError(t, err)

	require.NoError(t, store.UserAppendBlog(ctx, user.ID, "blog-1"))
	require.NoError(t, store.UserAppendBlog(ctx, user.ID, "blog-2"))

	got, err := store.UserGetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"blog-1", "blog-2"}, got.Blogs)

	require.NoError(t, store.UserRemoveBlog(ctx, user.ID, "blog-1"))
	got, err = store.UserGetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"blog-2"}, got.Blogs)

	// removing for an unknown user is a no-op
	require.NoError(t, store.UserRemoveBlog(ctx, "missing", "blog-2"))
	assert.ErrorIs(t, store.UserAppendBlog(ctx, "missing", "blog-2"), models.ErrUnfound)
}

func TestBlogCRUD(t *testing.T) {
	store := NewStorage()
	ctx := context.Background()

	created, err := store.BlogCreate(ctx, models.Blog{
		Title:     "Go Concurrency Patterns",
		Author:    "Rob Pike",
		URL:       "www.golang.org",
		Likes:     5,
		UserID:    "user-1",
		CreatedAt: time.Now(),
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := store.BlogGetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	updated, err := store.BlogUpdate(ctx, models.Blog{
		ID:     created.ID,
		Title:  "Updated",
		Author: "Rob Pike",
		URL:    "www.golang.org",
		Likes:  6,
	})
	require.NoError(t, err)
	assert.Equal(t, "Updated", updated.Title)
	assert.Equal(t, 6, updated.Likes)
	// owner and creation time survive a full replace
	assert.Equal(t, "user-1", updated.UserID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)

	_, err = store.BlogUpdate(ctx, models.Blog{ID: "missing", Title: "x"})
	assert.ErrorIs(t, err, models.ErrUnfound)

	require.NoError(t, store.BlogDelete(ctx, created.ID))
	assert.ErrorIs(t, store.BlogDelete(ctx, created.ID), models.ErrUnfound)
}

func TestBlogGetBatchByUser(t *testing.T) {
	store := NewStorage()
	ctx := context.Background()

	base := time.Now()
	for i, owner := range []string{"user-1", "user-2", "user-1"} {
		_, err := store.BlogCreate(ctx, models.Blog{
			Title:     "t",
			Author:    "a",
			URL:       "www.example.com",
			UserID:    owner,
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		})
		require.NoError(t, err)
	}

	mine, err := store.BlogGetBatchByUser(ctx, "user-1")
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	none, err := store.BlogGetBatchByUser(ctx, "user-3")
	require.NoError(t, err)
	assert.Empty(t, none)
}
