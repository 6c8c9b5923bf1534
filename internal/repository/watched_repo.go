package repository

import (
	"context"
	"time"

	"cinelog/internal/domain"

	"gorm.io/gorm"
)

type WatchedRepository struct {
	db *gorm.DB
}

func NewWatchedRepository(db *gorm.DB) *WatchedRepository {
	return &WatchedRepository{db: db}
}

func (r *WatchedRepository) Create(ctx context.Context, w *domain.Watched) error {
	now := time.Now()
	if w.Feedback.CreatedAt.IsZero() {
		w.Feedback.CreatedAt = now
	}
	if w.Feedback.UpdatedAt.IsZero() {
		w.Feedback.UpdatedAt = now
	}
	return r.db.WithContext(ctx).Create(w).Error
}

// Update writes the full record back. Concurrent writers to the same
// (user, movie) pair are last-write-wins; there is no optimistic locking.
func (r *WatchedRepository) Update(ctx context.Context, w *domain.Watched) error {
	return r.db.WithContext(ctx).Model(w).
		Updates(map[string]any{
			"is_favorited":        w.IsFavorited,
			"rating":              w.Feedback.Rating,
			"content":             w.Feedback.Content,
			"feedback_created_at": w.Feedback.CreatedAt,
			"feedback_updated_at": w.Feedback.UpdatedAt,
		}).Error
}

func (r *WatchedRepository) GetByUserAndMovie(ctx context.Context, userID int64, movieID int) (*domain.Watched, error) {
	var w domain.Watched
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND movie_id = ?", userID, movieID).
		First(&w).Error
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *WatchedRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Watched, error) {
	var records []domain.Watched
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at, id").
		Find(&records).Error
	return records, err
}

// MovieFeedbackRow is one user's feedback on a movie, joined with the
// reviewer's display name for the public movie page.
type MovieFeedbackRow struct {
	DisplayName string
	Rating      *int
	Content     *string
	CreatedAt   time.Time `gorm:"column:feedback_created_at"`
	UpdatedAt   time.Time `gorm:"column:feedback_updated_at"`
}

// ListFeedbackByMovie returns all feedback left on a movie, across users.
// Records that carry neither a rating nor review text are excluded.
func (r *WatchedRepository) ListFeedbackByMovie(ctx context.Context, movieID int) ([]MovieFeedbackRow, error) {
	var rows []MovieFeedbackRow
	err := r.db.WithContext(ctx).Model(&domain.Watched{}).
		Select("users.display_name, watched.rating, watched.content, watched.feedback_created_at, watched.feedback_updated_at").
		Joins("JOIN users ON users.id = watched.user_id").
		Where("watched.movie_id = ?", movieID).
		Where("watched.rating IS NOT NULL OR watched.content IS NOT NULL").
		Order("watched.feedback_updated_at DESC").
		Scan(&rows).Error
	return rows, err
}
