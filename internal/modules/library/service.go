package library

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"cinelog/internal/domain"

	"gorm.io/gorm"
)

const maxContentLength = 1000

// Service owns per-user watch state: watchlist membership, the favorite
// flag and the feedback lifecycle on (user, movie) pairs.
type Service struct {
	users     UserStore
	watchlist WatchlistStore
	watched   WatchedStore
}

func NewService(users UserStore, watchlist WatchlistStore, watched WatchedStore) *Service {
	return &Service{users: users, watchlist: watchlist, watched: watched}
}

func (s *Service) resolveUser(ctx context.Context, uid string) (*domain.User, error) {
	user, err := s.users.GetByIdentityUID(ctx, uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// AddToWatchlist puts the movie on the user's watchlist and returns the
// updated list. Adding an id that is already present is a no-op success.
func (s *Service) AddToWatchlist(ctx context.Context, uid string, movieID int) ([]int, error) {
	if movieID <= 0 {
		return nil, ErrInvalidMovieID
	}
	user, err := s.resolveUser(ctx, uid)
	if err != nil {
		return nil, err
	}
	if err := s.watchlist.Add(ctx, user.ID, movieID); err != nil {
		return nil, err
	}
	return s.watchlist.ListIDs(ctx, user.ID)
}

// RemoveFromWatchlist is the inverse; removing an absent id is a no-op
// success.
func (s *Service) RemoveFromWatchlist(ctx context.Context, uid string, movieID int) ([]int, error) {
	if movieID <= 0 {
		return nil, ErrInvalidMovieID
	}
	user, err := s.resolveUser(ctx, uid)
	if err != nil {
		return nil, err
	}
	if err := s.watchlist.Remove(ctx, user.ID, movieID); err != nil {
		return nil, err
	}
	return s.watchlist.ListIDs(ctx, user.ID)
}

// SetFavorite upserts the Watched record and sets its favorite flag.
// Favoriting creates the record if needed; unfavoriting a pair that was
// never watched fails with ErrNotWatched. The record itself is never
// deleted here.
func (s *Service) SetFavorite(ctx context.Context, uid string, movieID int, favorited bool) (bool, error) {
	if movieID <= 0 {
		return false, ErrInvalidMovieID
	}
	user, err := s.resolveUser(ctx, uid)
	if err != nil {
		return false, err
	}

	record, err := s.watched.GetByUserAndMovie(ctx, user.ID, movieID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return false, err
		}
		if !favorited {
			return false, ErrNotWatched
		}
		record = &domain.Watched{
			UserID:      user.ID,
			MovieID:     movieID,
			IsFavorited: true,
		}
		if err := s.watched.Create(ctx, record); err != nil {
			return false, err
		}
		return record.IsFavorited, nil
	}

	record.IsFavorited = favorited
	if err := s.watched.Update(ctx, record); err != nil {
		return false, err
	}
	return record.IsFavorited, nil
}

// SubmitFeedback is the create path: it upserts the Watched record and
// replaces the feedback sub-record with the supplied fields, stamping both
// feedback timestamps.
func (s *Service) SubmitFeedback(ctx context.Context, uid string, movieID int, in FeedbackInput) (*domain.Feedback, error) {
	rating, content, err := validateFeedback(in)
	if err != nil {
		return nil, err
	}
	if movieID <= 0 {
		return nil, ErrInvalidMovieID
	}
	user, err := s.resolveUser(ctx, uid)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	record, err := s.watched.GetByUserAndMovie(ctx, user.ID, movieID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		record = &domain.Watched{
			UserID:  user.ID,
			MovieID: movieID,
			Feedback: domain.Feedback{
				Rating:    rating,
				Content:   content,
				CreatedAt: now,
				UpdatedAt: now,
			},
		}
		if err := s.watched.Create(ctx, record); err != nil {
			return nil, err
		}
		return &record.Feedback, nil
	}

	record.Feedback = domain.Feedback{
		Rating:    rating,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.watched.Update(ctx, record); err != nil {
		return nil, err
	}
	return &record.Feedback, nil
}

// UpdateFeedback only touches the fields the caller supplied and fails with
// ErrNotWatched when no record exists yet.
func (s *Service) UpdateFeedback(ctx context.Context, uid string, movieID int, in FeedbackInput) (*domain.Feedback, error) {
	rating, content, err := validateFeedback(in)
	if err != nil {
		return nil, err
	}
	if movieID <= 0 {
		return nil, ErrInvalidMovieID
	}
	user, err := s.resolveUser(ctx, uid)
	if err != nil {
		return nil, err
	}

	record, err := s.watched.GetByUserAndMovie(ctx, user.ID, movieID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotWatched
		}
		return nil, err
	}

	if in.Rating != nil {
		record.Feedback.Rating = rating
	}
	if in.Content != nil {
		record.Feedback.Content = content
	}
	record.Feedback.UpdatedAt = time.Now()

	if err := s.watched.Update(ctx, record); err != nil {
		return nil, err
	}
	return &record.Feedback, nil
}

// ClearFeedback sets rating and content back to absent, leaving the record
// and its favorite flag intact. The delete is semantic, not physical.
func (s *Service) ClearFeedback(ctx context.Context, uid string, movieID int) (*domain.Feedback, error) {
	if movieID <= 0 {
		return nil, ErrInvalidMovieID
	}
	user, err := s.resolveUser(ctx, uid)
	if err != nil {
		return nil, err
	}

	record, err := s.watched.GetByUserAndMovie(ctx, user.ID, movieID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotWatched
		}
		return nil, err
	}

	record.Feedback.Rating = nil
	record.Feedback.Content = nil
	record.Feedback.UpdatedAt = time.Now()

	if err := s.watched.Update(ctx, record); err != nil {
		return nil, err
	}
	return &record.Feedback, nil
}

// UpdateDisplayName trims and validates the new name before persisting it.
func (s *Service) UpdateDisplayName(ctx context.Context, uid string, name string) (string, error) {
	name = strings.TrimSpace(name)
	if utf8.RuneCountInString(name) < 2 {
		return "", ErrInvalidDisplayName
	}
	user, err := s.resolveUser(ctx, uid)
	if err != nil {
		return "", err
	}
	updated, err := s.users.UpdateDisplayName(ctx, user.ID, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrUserNotFound
		}
		return "", err
	}
	return updated.DisplayName, nil
}

// GetAllWatched returns every watched entry for the user.
func (s *Service) GetAllWatched(ctx context.Context, uid string) ([]domain.Watched, error) {
	user, err := s.resolveUser(ctx, uid)
	if err != nil {
		return nil, err
	}
	return s.watched.ListByUser(ctx, user.ID)
}

// GetWatchedEntry returns the entry for one movie, or nil when the user has
// no record for it.
func (s *Service) GetWatchedEntry(ctx context.Context, uid string, movieID int) (*domain.Watched, error) {
	if movieID <= 0 {
		return nil, ErrInvalidMovieID
	}
	user, err := s.resolveUser(ctx, uid)
	if err != nil {
		return nil, err
	}
	record, err := s.watched.GetByUserAndMovie(ctx, user.ID, movieID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return record, nil
}

// validateFeedback normalizes the input: ratings must sit in [0,5], content
// is trimmed and capped, and content that trims to empty becomes absent
// rather than an empty string.
func validateFeedback(in FeedbackInput) (*int, *string, error) {
	var rating *int
	if in.Rating != nil {
		if *in.Rating < 0 || *in.Rating > 5 {
			return nil, nil, ErrInvalidRating
		}
		v := *in.Rating
		rating = &v
	}

	var content *string
	if in.Content != nil {
		trimmed := strings.TrimSpace(*in.Content)
		if trimmed != "" {
			if utf8.RuneCountInString(trimmed) > maxContentLength {
				trimmed = string([]rune(trimmed)[:maxContentLength])
			}
			content = &trimmed
		}
	}

	return rating, content, nil
}
