package library

import (
	"context"

	"cinelog/internal/domain"
)

// UserStore — only the user-repository methods this module uses.
type UserStore interface {
	GetByIdentityUID(ctx context.Context, uid string) (*domain.User, error)
	UpdateDisplayName(ctx context.Context, id int64, name string) (*domain.User, error)
}

type WatchlistStore interface {
	Add(ctx context.Context, userID int64, movieID int) error
	Remove(ctx context.Context, userID int64, movieID int) error
	ListIDs(ctx context.Context, userID int64) ([]int, error)
}

type WatchedStore interface {
	GetByUserAndMovie(ctx context.Context, userID int64, movieID int) (*domain.Watched, error)
	Create(ctx context.Context, w *domain.Watched) error
	Update(ctx context.Context, w *domain.Watched) error
	ListByUser(ctx context.Context, userID int64) ([]domain.Watched, error)
}
