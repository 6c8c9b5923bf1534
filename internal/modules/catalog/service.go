package catalog

import (
	"context"
	"log"
	"net/url"
	"strings"
)

var categories = map[string]bool{
	"popular":     true,
	"top_rated":   true,
	"upcoming":    true,
	"now_playing": true,
}

// Service is a pass-through over the metadata providers. Responses keep the
// upstream shape; the single-movie view is enriched with supplementary
// ratings and locally stored feedback.
type Service struct {
	movies   MovieSource
	ratings  RatingsSource
	feedback FeedbackStore
}

func NewService(movies MovieSource, ratings RatingsSource, feedback FeedbackStore) *Service {
	return &Service{movies: movies, ratings: ratings, feedback: feedback}
}

func (s *Service) Category(ctx context.Context, category string, page int) (map[string]any, error) {
	if !categories[category] {
		return nil, ErrInvalidCategory
	}
	if page < 1 {
		page = 1
	}
	return s.movies.ListCategory(ctx, category, page)
}

func (s *Service) Discover(ctx context.Context, params url.Values) (map[string]any, error) {
	return s.movies.Discover(ctx, params)
}

func (s *Service) Search(ctx context.Context, query string, page int) (map[string]any, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrMissingQuery
	}
	if page < 1 {
		page = 1
	}
	return s.movies.Search(ctx, query, page)
}

func (s *Service) Genres(ctx context.Context) (map[string]any, error) {
	return s.movies.ListGenres(ctx)
}

// MovieDetails fetches the full movie object and attaches two extra blocks:
// "omdb" with supplementary ratings (best effort, omitted on failure) and
// "feedback" with reviews left by local users.
func (s *Service) MovieDetails(ctx context.Context, id int) (map[string]any, error) {
	if id <= 0 {
		return nil, ErrInvalidMovieID
	}

	movie, err := s.movies.GetMovieWithExtras(ctx, id)
	if err != nil {
		return nil, err
	}

	if imdbID := imdbIDOf(movie); imdbID != "" {
		extra, err := s.ratings.GetByIMDbID(ctx, imdbID)
		if err != nil {
			log.Printf("catalog: omdb lookup for %s: %v", imdbID, err)
		} else {
			movie["omdb"] = extra
		}
	}

	rows, err := s.feedback.ListFeedbackByMovie(ctx, id)
	if err != nil {
		return nil, err
	}
	entries := make([]map[string]any, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, map[string]any{
			"user":      row.DisplayName,
			"rating":    row.Rating,
			"review":    row.Content,
			"createdAt": row.CreatedAt,
			"updatedAt": row.UpdatedAt,
		})
	}
	movie["feedback"] = entries

	return movie, nil
}

func imdbIDOf(movie map[string]any) string {
	if id, ok := movie["imdb_id"].(string); ok && id != "" {
		return id
	}
	if ext, ok := movie["external_ids"].(map[string]any); ok {
		if id, ok := ext["imdb_id"].(string); ok {
			return id
		}
	}
	return ""
}
