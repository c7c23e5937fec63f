package inmemory

import (
	"context"
	"sort"
	"sync"

	"bloglist/internal/domain/models"

	"github.com/google/uuid"
)

// InmemoryStorage keeps everything in maps guarded by a single RWMutex.
// Used for tests and for running without DATABASE_DSN.
type InmemoryStorage struct {
	mu    sync.RWMutex
	users map[string]models.User
	blogs map[string]models.Blog
}

func NewStorage() *InmemoryStorage {
	return &InmemoryStorage{
		users: make(map[string]models.User),
		blogs: make(map[string]models.Blog),
	}
}

func (m *InmemoryStorage) UserCreate(ctx context.Context, user models.User) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}
	if user.Username == "" {
		return models.User{}, models.ErrInvalidData
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.Username == user.Username {
			return models.User{}, models.ErrConflict
		}
	}

	user.ID = uuid.New().String()
	if user.Blogs == nil {
		user.Blogs = []string{}
	}
	m.users[user.ID] = user
	return user, nil
}

func (m *InmemoryStorage) UserGetByID(ctx context.Context, id string) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	user, exists := m.users[id]
	if !exists {
		return models.User{}, models.ErrUnfound
	}
	return user, nil
}

func (m *InmemoryStorage) UserGetByUsername(ctx context.Context, username string) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return models.User{}, models.ErrUnfound
}

func (m *InmemoryStorage) UserGetAll(ctx context.Context) ([]models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	users := make([]models.User, 0, len(m.users))
	for _, u := range m.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool {
		return users[i].CreatedAt.Before(users[j].CreatedAt)
	})
	return users, nil
}

func (m *InmemoryStorage) UserDelete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	// idempotent, no cascade to blogs
	delete(m.users, id)
	return nil
}

func (m *InmemoryStorage) UserAppendBlog(ctx context.Context, userID, blogID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	user, exists := m.users[userID]
	if !exists {
		return models.ErrUnfound
	}
	user.Blogs = append(user.Blogs, blogID)
	m.users[userID] = user
	return nil
}

func (m *InmemoryStorage) UserRemoveBlog(ctx context.Context, userID, blogID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	user, exists := m.users[userID]
	if !exists {
		return nil
	}
	kept := user.Blogs[:0]
	for _, id := range user.Blogs {
		if id != blogID {
			kept = append(kept, id)
		}
	}
	user.Blogs = kept
	m.users[userID] = user
	return nil
}

func (m *InmemoryStorage) BlogCreate(ctx context.Context, blog models.Blog) (models.Blog, error) {
	if err := ctx.Err(); err != nil {
		return models.Blog{}, err
	}
	if blog.Title == "" || blog.URL == "" {
		return models.Blog{}, models.ErrInvalidData
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	blog.ID = uuid.New().String()
	m.blogs[blog.ID] = blog
	return blog, nil
}

func (m *InmemoryStorage) BlogGetByID(ctx context.Context, id string) (models.Blog, error) {
	if err := ctx.Err(); err != nil {
		return models.Blog{}, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	blog, exists := m.blogs[id]
	if !exists {
		return models.Blog{}, models.ErrUnfound
	}
	return blog, nil
}

func (m *InmemoryStorage) BlogGetAll(ctx context.Context) ([]models.Blog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	blogs := make([]models.Blog, 0, len(m.blogs))
	for _, b := range m.blogs {
		blogs = append(blogs, b)
	}
	sort.Slice(blogs, func(i, j int) bool {
		return blogs[i].CreatedAt.Before(blogs[j].CreatedAt)
	})
	return blogs, nil
}

func (m *InmemoryStorage) BlogGetBatchByUser(ctx context.Context, userID string) ([]models.Blog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	blogs := make([]models.Blog, 0)
	for _, b := range m.blogs {
		if b.UserID == userID {
			blogs = append(blogs, b)
		}
	}
	sort.Slice(blogs, func(i, j int) bool {
		return blogs[i].CreatedAt.Before(blogs[j].CreatedAt)
	})
	return blogs, nil
}

func (m *InmemoryStorage) BlogUpdate(ctx context.Context, blog models.Blog) (models.Blog, error) {
	if err := ctx.Err(); err != nil {
		return models.Blog{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	existing, exists := m.blogs[blog.ID]
	if !exists {
		return models.Blog{}, models.ErrUnfound
	}

	existing.Title = blog.Title
	existing.Author = blog.Author
	existing.URL = blog.URL
	existing.Likes = blog.Likes
	m.blogs[existing.ID] = existing
	return existing, nil
}

func (m *InmemoryStorage) BlogDelete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.blogs[id]; !exists {
		return models.ErrUnfound
	}
	delete(m.blogs, id)
	return nil
}

func (m *InmemoryStorage) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (m *InmemoryStorage) Close() error {
	return nil
}
