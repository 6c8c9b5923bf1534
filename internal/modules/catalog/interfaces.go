package catalog

import (
	"context"
	"net/url"

	"cinelog/internal/repository"
)

// MovieSource is the read side of the metadata gateway.
type MovieSource interface {
	GetMovieWithExtras(ctx context.Context, id int) (map[string]any, error)
	ListCategory(ctx context.Context, category string, page int) (map[string]any, error)
	Discover(ctx context.Context, params url.Values) (map[string]any, error)
	Search(ctx context.Context, query string, page int) (map[string]any, error)
	ListGenres(ctx context.Context) (map[string]any, error)
}

// RatingsSource supplies the supplementary per-title ratings block.
type RatingsSource interface {
	GetByIMDbID(ctx context.Context, imdbID string) (map[string]any, error)
}

// FeedbackStore exposes the locally stored reviews for a movie.
type FeedbackStore interface {
	ListFeedbackByMovie(ctx context.Context, movieID int) ([]repository.MovieFeedbackRow, error)
}
