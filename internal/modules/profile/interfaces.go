package profile

import (
	"context"

	"cinelog/internal/domain"
)

type UserStore interface {
	GetByIdentityUID(ctx context.Context, uid string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

type WatchlistStore interface {
	ListIDs(ctx context.Context, userID int64) ([]int, error)
}

type WatchedStore interface {
	ListByUser(ctx context.Context, userID int64) ([]domain.Watched, error)
}

type VisitStore interface {
	Create(ctx context.Context, v *domain.Visit) error
	ListRecentByUser(ctx context.Context, userID int64, limit int) ([]domain.VisitWithVisitor, error)
}

// MovieGateway is the slice of the metadata client the aggregator needs.
type MovieGateway interface {
	GetMovie(ctx context.Context, id int) (map[string]any, error)
}
