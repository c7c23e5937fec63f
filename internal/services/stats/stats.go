package stats

import (
	"bloglist/internal/domain/models"
)

// Pure aggregation over blog collections. All functions iterate the input
// slice in order, so ties resolve to the first-encountered record or author
// regardless of map iteration order.

type (
	AuthorBlogCount struct {
		Author string `json:"author"`
		Blogs  int    `json:"blogs"`
	}

	AuthorLikes struct {
		Author string `json:"author"`
		Likes  int    `json:"likes"`
	}
)

func TotalLikes(blogs []models.Blog) int {
	total := 0
	for _, b := range blogs {
		total += b.Likes
	}
	return total
}

// MostLiked returns the single blog with the maximum like count. ok is false
// for an empty input.
func MostLiked(blogs []models.Blog) (models.Blog, bool) {
	if len(blogs) == 0 {
		return models.Blog{}, false
	}

	best := blogs[0]
	for _, b := range blogs[1:] {
		if b.Likes > best.Likes {
			best = b
		}
	}
	return best, true
}

// MostProlificAuthor groups by author and returns the one with the most
// blogs. Ties go to the author seen first in the input.
func MostProlificAuthor(blogs []models.Blog) (AuthorBlogCount, bool) {
	if len(blogs) == 0 {
		return AuthorBlogCount{}, false
	}

	counts := make(map[string]int, len(blogs))
	seen := make([]string, 0, len(blogs))
	for _, b := range blogs {
		if _, ok := counts[b.Author]; !ok {
			seen = append(seen, b.Author)
		}
		counts[b.Author]++
	}

	best := AuthorBlogCount{Author: seen[0], Blogs: counts[seen[0]]}
	for _, author := range seen[1:] {
		if counts[author] > best.Blogs {
			best = AuthorBlogCount{Author: author, Blogs: counts[author]}
		}
	}
	return best, true
}

// MostLikedAuthor groups by author and returns the one with the highest
// summed likes. Same tie rule as MostProlificAuthor.
func MostLikedAuthor(blogs []models.Blog) (AuthorLikes, bool) {
	if len(blogs) == 0 {
		return AuthorLikes{}, false
	}

	likes := make(map[string]int, len(blogs))
	seen := make([]string, 0, len(blogs))
	for _, b := range blogs {
		if _, ok := likes[b.Author]; !ok {
			seen = append(seen, b.Author)
		}
		likes[b.Author] += b.Likes
	}

	best := AuthorLikes{Author: seen[0], Likes: likes[seen[0]]}
	for _, author := range seen[1:] {
		if likes[author] > best.Likes {
			best = AuthorLikes{Author: author, Likes: likes[author]}
		}
	}
	return best, true
}
