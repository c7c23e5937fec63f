package stats

import (
	"testing"

	"bloglist/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotalLikes(t *testing.T) {
	tests := []struct {
		name  string
		blogs []models.Blog
		want  int
	}{
		{
			name:  "empty list",
			blogs: []models.Blog{},
			want:  0,
		},
		{
			name:  "single blog",
			blogs: []models.Blog{{Likes: 7}},
			want:  7,
		},
		{
			name: "sums all likes",
			blogs: []models.Blog{
				{Likes: 3},
				{Likes: 5},
				{Likes: 4},
			},
			want: 12,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TotalLikes(tt.blogs))
		})
	}
}

func TestMostLiked(t *testing.T) {
	tests := []struct {
		name   string
		blogs  []models.Blog
		want   models.Blog
		wantOK bool
	}{
		{
			name:  "empty list",
			blogs: []models.Blog{},
		},
		{
			name: "picks the blog with most likes",
			blogs: []models.Blog{
				{Author: "A", Likes: 3},
				{Author: "B", Likes: 5},
				{Author: "C", Likes: 4},
			},
			want:   models.Blog{Author: "B", Likes: 5},
			wantOK: true,
		},
		{
			name: "tie goes to the first encountered",
			blogs: []models.Blog{
				{ID: "first", Author: "A", Likes: 5},
				{ID: "second", Author: "B", Likes: 5},
			},
			want:   models.Blog{ID: "first", Author: "A", Likes: 5},
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := MostLiked(tt.blogs)
			require.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestMostProlificAuthor(t *testing.T) {
	tests := []struct {
		name   string
		blogs  []models.Blog
		want   AuthorBlogCount
		wantOK bool
	}{
		{
			name:  "empty list",
			blogs: []models.Blog{},
		},
		{
			name: "author with most blogs wins",
			blogs: []models.Blog{
				{Author: "Laila"},
				{Author: "Robert C. Martin"},
				{Author: "Laila"},
				{Author: "Edsger W. Dijkstra"},
			},
			want:   AuthorBlogCount{Author: "Laila", Blogs: 2},
			wantOK: true,
		},
		{
			name: "tie resolves to the author seen first",
			blogs: []models.Blog{
				{Author: "B"},
				{Author: "A"},
				{Author: "A"},
				{Author: "B"},
			},
			want:   AuthorBlogCount{Author: "B", Blogs: 2},
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := MostProlificAuthor(tt.blogs)
			require.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestMostLikedAuthor(t *testing.T) {
	tests := []struct {
		name   string
		blogs  []models.Blog
		want   AuthorLikes
		wantOK bool
	}{
		{
			name:  "empty list",
			blogs: []models.Blog{},
		},
		{
			name: "sums likes per author",
			blogs: []models.Blog{
				{Author: "Edsger W. Dijkstra", Likes: 5},
				{Author: "Robert C. Martin", Likes: 10},
				{Author: "Edsger W. Dijkstra", Likes: 12},
			},
			want:   AuthorLikes{Author: "Edsger W. Dijkstra", Likes: 17},
			wantOK: true,
		},
		{
			name: "tie resolves to the author seen first",
			blogs: []models.Blog{
				{Author: "B", Likes: 1},
				{Author: "A", Likes: 2},
				{Author: "A", Likes: 2},
				{Author: "B", Likes: 3},
			},
			want:   AuthorLikes{Author: "B", Likes: 4},
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := MostLikedAuthor(tt.blogs)
			require.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
