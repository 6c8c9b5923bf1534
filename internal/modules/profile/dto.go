package profile

import (
	"time"

	"cinelog/internal/domain"
)

// Profile is the aggregated view returned for both the own-profile and
// public-profile endpoints. Visits are only present on the own view.
type Profile struct {
	ID          int64            `json:"id"`
	Email       string           `json:"email"`
	DisplayName string           `json:"displayName"`
	Watchlist   []int            `json:"watchlist"`
	Watched     []WatchedEntry   `json:"watched"`
	Movies      []map[string]any `json:"movies"`
	Visits      []VisitEntry     `json:"visits,omitempty"`
	CreatedAt   time.Time        `json:"createdAt"`
}

type WatchedEntry struct {
	MovieID     int             `json:"movieId"`
	IsFavorited bool            `json:"isFavorited"`
	Feedback    domain.Feedback `json:"feedback"`
}

type VisitEntry struct {
	VisitorName     string    `json:"visitorName"`
	VisitorJoinedAt time.Time `json:"visitorJoinedAt"`
	VisitedAt       time.Time `json:"visitedAt"`
}

func toWatchedEntries(records []domain.Watched) []WatchedEntry {
	out := make([]WatchedEntry, 0, len(records))
	for _, w := range records {
		out = append(out, WatchedEntry{
			MovieID:     w.MovieID,
			IsFavorited: w.IsFavorited,
			Feedback:    w.Feedback,
		})
	}
	return out
}

func toVisitEntries(visits []domain.VisitWithVisitor) []VisitEntry {
	out := make([]VisitEntry, 0, len(visits))
	for _, v := range visits {
		out = append(out, VisitEntry{
			VisitorName:     v.VisitorName,
			VisitorJoinedAt: v.VisitorJoinedAt,
			VisitedAt:       v.VisitedAt,
		})
	}
	return out
}
