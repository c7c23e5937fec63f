package dto

import (
	"bloglist/internal/domain/models"
	"bloglist/internal/services/blogs"
	"bloglist/internal/services/stats"
)

// Request
type (
	BlogRequest struct {
		Title  string `json:"title"`
		Author string `json:"author"`
		URL    string `json:"url"`
		Likes  *int   `json:"likes,omitempty"`
	}
)

// Response
type (
	OwnerSummary struct {
		ID       string `json:"id"`
		Username string `json:"username"`
		Name     string `json:"name"`
	}

	BlogResponse struct {
		ID     string        `json:"id"`
		Title  string        `json:"title"`
		Author string        `json:"author"`
		URL    string        `json:"url"`
		Likes  int           `json:"likes"`
		User   *OwnerSummary `json:"user,omitempty"`
	}

	StatsResponse struct {
		TotalLikes         int                    `json:"totalLikes"`
		MostLiked          *BlogResponse          `json:"mostLiked"`
		MostProlificAuthor *stats.AuthorBlogCount `json:"mostProlificAuthor"`
		MostLikedAuthor    *stats.AuthorLikes     `json:"mostLikedAuthor"`
	}
)

// ToInput applies the default of zero likes when the field is absent.
func (r BlogRequest) ToInput() blogs.Input {
	likes := 0
	if r.Likes != nil {
		likes = *r.Likes
	}
	return blogs.Input{
		Title:  r.Title,
		Author: r.Author,
		URL:    r.URL,
		Likes:  likes,
	}
}

func BlogToResponse(blog models.Blog, owner *models.User) BlogResponse {
	resp := BlogResponse{
		ID:     blog.ID,
		Title:  blog.Title,
		Author: blog.Author,
		URL:    blog.URL,
		Likes:  blog.Likes,
	}
	if owner != nil {
		resp.User = &OwnerSummary{
			ID:       owner.ID,
			Username: owner.Username,
			Name:     owner.Name,
		}
	}
	return resp
}

func BlogsToResponse(blogList []models.Blog, owners map[string]models.User) []BlogResponse {
	responses := make([]BlogResponse, 0, len(blogList))
	for _, b := range blogList {
		var owner *models.User
		if u, ok := owners[b.UserID]; ok {
			owner = &u
		}
		responses = append(responses, BlogToResponse(b, owner))
	}
	return responses
}
