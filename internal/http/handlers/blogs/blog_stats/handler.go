package blog_stats

import (
	"context"
	"net/http"

	"bloglist/internal/domain/models"
	"bloglist/internal/http/dto"
	"bloglist/internal/http/httputils"
	"bloglist/internal/services/stats"
)

type BlogLister interface {
	GetAll(ctx context.Context) ([]models.Blog, error)
}

// Aggregate report over the whole collection: total likes, most liked blog,
// most prolific author, most liked author.
func HandlerBlogStats(svc BlogLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		blogList, err := svc.GetAll(ctx)
		if err != nil {
			httputils.WriteJSONError(w, http.StatusInternalServerError, "internal server error")
			return
		}

		resp := dto.StatsResponse{
			TotalLikes: stats.TotalLikes(blogList),
		}
		if mostLiked, ok := stats.MostLiked(blogList); ok {
			blogResp := dto.BlogToResponse(mostLiked, nil)
			resp.MostLiked = &blogResp
		}
		if prolific, ok := stats.MostProlificAuthor(blogList); ok {
			resp.MostProlificAuthor = &prolific
		}
		if liked, ok := stats.MostLikedAuthor(blogList); ok {
			resp.MostLikedAuthor = &liked
		}

		httputils.WriteJSONResponse(w, http.StatusOK, resp)
	}
}
