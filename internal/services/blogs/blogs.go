package blogs

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"bloglist/internal/domain/models"
)

// urlPattern accepts host names of the form www.<label>.<tld>.
var urlPattern = regexp.MustCompile(`^(www\.)[a-zA-Z0-9]+(\.[a-zA-Z]{2,})+$`)

//go:generate mockgen -source=blogs.go -destination=../../mocks/mock_blog_storage.go -package=mocks
type BlogStorage interface {
	BlogCreate(ctx context.Context, blog models.Blog) (models.Blog, error)
	BlogGetByID(ctx context.Context, id string) (models.Blog, error)
	BlogGetAll(ctx context.Context) ([]models.Blog, error)
	BlogGetBatchByUser(ctx context.Context, userID string) ([]models.Blog, error)
	BlogUpdate(ctx context.Context, blog models.Blog) (models.Blog, error)
	BlogDelete(ctx context.Context, id string) error
	UserGetByID(ctx context.Context, id string) (models.User, error)
	UserAppendBlog(ctx context.Context, userID, blogID string) error
	UserRemoveBlog(ctx context.Context, userID, blogID string) error
}

// TokenVerifier resolves a candidate token string to a subject user id.
type TokenVerifier interface {
	Verify(tokenString string) (string, error)
}

// Input is the mutable part of a blog supplied by clients.
type Input struct {
	Title  string
	Author string
	URL    string
	Likes  int
}

// Service owns blog mutations and the ownership guard: every mutating path
// that requires authentication goes through the verifier first.
type Service struct {
	storage  BlogStorage
	verifier TokenVerifier
}

func NewService(storage BlogStorage, verifier TokenVerifier) *Service {
	return &Service{storage: storage, verifier: verifier}
}

func validate(in Input) error {
	if in.Title == "" {
		return fmt.Errorf("%w: title is required", models.ErrInvalidData)
	}
	if in.Author == "" {
		return fmt.Errorf("%w: author is required", models.ErrInvalidData)
	}
	if in.URL == "" {
		return fmt.Errorf("%w: url is required", models.ErrInvalidData)
	}
	if !urlPattern.MatchString(in.URL) {
		return fmt.Errorf("%w: url should be in the format www.example.com", models.ErrInvalidData)
	}
	if in.Likes < 0 {
		return fmt.Errorf("%w: likes cannot be negative", models.ErrInvalidData)
	}
	return nil
}

// Create rejects missing or unverifiable tokens before touching storage. The
// verified subject becomes the owner.
func (s *Service) Create(ctx context.Context, tokenString string, in Input) (models.Blog, error) {
	subject, err := s.verifier.Verify(tokenString)
	if err != nil {
		return models.Blog{}, err
	}

	if err := validate(in); err != nil {
		return models.Blog{}, err
	}

	owner, err := s.storage.UserGetByID(ctx, subject)
	if err != nil {
		if errors.Is(err, models.ErrUnfound) {
			return models.Blog{}, models.ErrTokenInvalid
		}
		return models.Blog{}, fmt.Errorf("failed to resolve owner: %w", err)
	}

	blog := models.Blog{
		Title:     in.Title,
		Author:    in.Author,
		URL:       in.URL,
		Likes:     in.Likes,
		UserID:    owner.ID,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.storage.BlogCreate(ctx, blog)
	if err != nil {
		return models.Blog{}, fmt.Errorf("failed to create blog: %w", err)
	}

	if err := s.storage.UserAppendBlog(ctx, owner.ID, created.ID); err != nil {
		return models.Blog{}, fmt.Errorf("failed to append blog to owner: %w", err)
	}

	return created, nil
}

func (s *Service) GetAll(ctx context.Context) ([]models.Blog, error) {
	blogs, err := s.storage.BlogGetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list blogs: %w", err)
	}
	return blogs, nil
}

func (s *Service) GetBatchByUser(ctx context.Context, userID string) ([]models.Blog, error) {
	blogs, err := s.storage.BlogGetBatchByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list user blogs: %w", err)
	}
	return blogs, nil
}

// Owners resolves the distinct owner records of the given blogs. Owners whose
// user record no longer exists are simply absent from the result.
func (s *Service) Owners(ctx context.Context, blogList []models.Blog) (map[string]models.User, error) {
	owners := make(map[string]models.User)
	for _, b := range blogList {
		if _, ok := owners[b.UserID]; ok {
			continue
		}
		user, err := s.storage.UserGetByID(ctx, b.UserID)
		if err != nil {
			if errors.Is(err, models.ErrUnfound) {
				continue
			}
			return nil, fmt.Errorf("failed to resolve owner: %w", err)
		}
		owners[user.ID] = user
	}
	return owners, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (models.Blog, error) {
	blog, err := s.storage.BlogGetByID(ctx, id)
	if err != nil {
		if errors.Is(err, models.ErrUnfound) {
			return models.Blog{}, models.ErrUnfound
		}
		return models.Blog{}, fmt.Errorf("failed to get blog: %w", err)
	}
	return blog, nil
}

// Update replaces title/author/url/likes in place. It takes no token: the
// unauthenticated update path mirrors the original service and is a known
// policy gap (see DESIGN.md).
func (s *Service) Update(ctx context.Context, id string, in Input) (models.Blog, error) {
	if err := validate(in); err != nil {
		return models.Blog{}, err
	}

	updated, err := s.storage.BlogUpdate(ctx, models.Blog{
		ID:     id,
		Title:  in.Title,
		Author: in.Author,
		URL:    in.URL,
		Likes:  in.Likes,
	})
	if err != nil {
		if errors.Is(err, models.ErrUnfound) {
			return models.Blog{}, models.ErrUnfound
		}
		return models.Blog{}, fmt.Errorf("failed to update blog: %w", err)
	}
	return updated, nil
}

// Delete checks the token, then existence, then ownership, in that order, so
// an unresolvable id reports not-found rather than forbidden.
func (s *Service) Delete(ctx context.Context, tokenString, id string) error {
	subject, err := s.verifier.Verify(tokenString)
	if err != nil {
		return err
	}

	blog, err := s.storage.BlogGetByID(ctx, id)
	if err != nil {
		if errors.Is(err, models.ErrUnfound) {
			return models.ErrUnfound
		}
		return fmt.Errorf("failed to get blog: %w", err)
	}

	if blog.UserID != subject {
		return models.ErrForbidden
	}

	if err := s.storage.BlogDelete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete blog: %w", err)
	}

	if err := s.storage.UserRemoveBlog(ctx, blog.UserID, blog.ID); err != nil {
		return fmt.Errorf("failed to remove blog from owner: %w", err)
	}

	return nil
}
