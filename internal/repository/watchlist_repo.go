package repository

import (
	"context"

	"cinelog/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type WatchlistRepository struct {
	db *gorm.DB
}

func NewWatchlistRepository(db *gorm.DB) *WatchlistRepository {
	return &WatchlistRepository{db: db}
}

// Add puts movieID on the user's watchlist. Adding an id that is already
// present is a no-op success.
func (r *WatchlistRepository) Add(ctx context.Context, userID int64, movieID int) error {
	item := domain.WatchlistItem{UserID: userID, MovieID: movieID}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&item).Error
}

// Remove takes movieID off the user's watchlist. Removing an absent id is a
// no-op success.
func (r *WatchlistRepository) Remove(ctx context.Context, userID int64, movieID int) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND movie_id = ?", userID, movieID).
		Delete(&domain.WatchlistItem{}).Error
}

// ListIDs returns the user's watchlist movie ids in insertion order.
func (r *WatchlistRepository) ListIDs(ctx context.Context, userID int64) ([]int, error) {
	var ids []int
	err := r.db.WithContext(ctx).Model(&domain.WatchlistItem{}).
		Where("user_id = ?", userID).
		Order("created_at, id").
		Pluck("movie_id", &ids).Error
	if err != nil {
		return nil, err
	}
	if ids == nil {
		ids = []int{}
	}
	return ids, nil
}
