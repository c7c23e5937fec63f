package dto

import (
	"bloglist/internal/domain/models"
)

// Request
type (
	CreateUserRequest struct {
		Username string `json:"username"`
		Name     string `json:"name"`
		Password string `json:"password"`
	}

	LoginRequest struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
)

// Response. The password hash is deliberately absent from every projection.
type (
	UserResponse struct {
		ID       string        `json:"id"`
		Username string        `json:"username"`
		Name     string        `json:"name"`
		Blogs    []BlogSummary `json:"blogs"`
	}

	BlogSummary struct {
		ID     string `json:"id"`
		Title  string `json:"title"`
		Author string `json:"author"`
		URL    string `json:"url"`
	}

	LoginResponse struct {
		Token    string `json:"token"`
		Username string `json:"username"`
		Name     string `json:"name"`
	}
)

func UserToResponse(user models.User, blogs []models.Blog) UserResponse {
	summaries := make([]BlogSummary, 0, len(blogs))
	for _, b := range blogs {
		summaries = append(summaries, BlogSummary{
			ID:     b.ID,
			Title:  b.Title,
			Author: b.Author,
			URL:    b.URL,
		})
	}
	return UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Name:     user.Name,
		Blogs:    summaries,
	}
}
