package repository

import (
	"context"
	"time"

	"cinelog/internal/domain"

	"gorm.io/gorm"
)

type VisitRepository struct {
	db *gorm.DB
}

func NewVisitRepository(db *gorm.DB) *VisitRepository {
	return &VisitRepository{db: db}
}

func (r *VisitRepository) Create(ctx context.Context, v *domain.Visit) error {
	if v.VisitedAt.IsZero() {
		v.VisitedAt = time.Now()
	}
	return r.db.WithContext(ctx).Create(v).Error
}

// ListRecentByUser returns the most recent visits to a user's profile,
// newest first, joined with each visitor's display name and join date.
func (r *VisitRepository) ListRecentByUser(ctx context.Context, userID int64, limit int) ([]domain.VisitWithVisitor, error) {
	var rows []domain.VisitWithVisitor
	err := r.db.WithContext(ctx).Model(&domain.Visit{}).
		Select("visits.*, users.display_name AS visitor_name, users.created_at AS visitor_joined_at").
		Joins("JOIN users ON users.id = visits.visitor_id").
		Where("visits.visited_user_id = ?", userID).
		Order("visits.visited_at DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}
