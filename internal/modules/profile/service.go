package profile

import (
	"context"
	"errors"
	"log"
	"sync"

	"cinelog/internal/domain"

	"gorm.io/gorm"
)

// fetchConcurrency bounds how many metadata lookups run at once while
// hydrating a profile.
const fetchConcurrency = 10

// visitHistoryLimit is how many recent visits the own-profile view shows.
const visitHistoryLimit = 20

// Service assembles the full profile view: local watch state joined with
// movie metadata from the gateway, plus the visit trail on the own view.
type Service struct {
	users     UserStore
	watchlist WatchlistStore
	watched   WatchedStore
	visits    VisitStore
	movies    MovieGateway
}

func NewService(users UserStore, watchlist WatchlistStore, watched WatchedStore, visits VisitStore, movies MovieGateway) *Service {
	return &Service{users: users, watchlist: watchlist, watched: watched, visits: visits, movies: movies}
}

// GetOwnProfile returns the requester's profile including the recent visit
// history.
func (s *Service) GetOwnProfile(ctx context.Context, uid string) (*Profile, error) {
	user, err := s.users.GetByIdentityUID(ctx, uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	p, err := s.assemble(ctx, user)
	if err != nil {
		return nil, err
	}

	visits, err := s.visits.ListRecentByUser(ctx, user.ID, visitHistoryLimit)
	if err != nil {
		return nil, err
	}
	p.Visits = toVisitEntries(visits)
	return p, nil
}

// GetUserProfile returns another user's profile without the visit history
// and records the visit when the viewer is somebody else.
func (s *Service) GetUserProfile(ctx context.Context, viewerUID string, targetID int64) (*Profile, error) {
	if targetID <= 0 {
		return nil, ErrInvalidUserID
	}
	target, err := s.users.GetByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	viewer, err := s.users.GetByIdentityUID(ctx, viewerUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if viewer.ID != target.ID {
		// Best effort: a failed visit write must not break the page.
		if err := s.visits.Create(ctx, &domain.Visit{
			VisitorID:     viewer.ID,
			VisitedUserID: target.ID,
		}); err != nil {
			log.Printf("profile: recording visit to user %d: %v", target.ID, err)
		}
	}

	return s.assemble(ctx, target)
}

func (s *Service) assemble(ctx context.Context, user *domain.User) (*Profile, error) {
	watchlist, err := s.watchlist.ListIDs(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	watched, err := s.watched.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	movies := s.fetchMovies(ctx, unionMovieIDs(watched, watchlist))

	return &Profile{
		ID:          user.ID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		Watchlist:   watchlist,
		Watched:     toWatchedEntries(watched),
		Movies:      movies,
		CreatedAt:   user.CreatedAt,
	}, nil
}

// unionMovieIDs merges watched and watchlist ids, first occurrence wins.
func unionMovieIDs(watched []domain.Watched, watchlist []int) []int {
	seen := make(map[int]struct{}, len(watched)+len(watchlist))
	ids := make([]int, 0, len(watched)+len(watchlist))
	for _, w := range watched {
		if _, ok := seen[w.MovieID]; ok {
			continue
		}
		seen[w.MovieID] = struct{}{}
		ids = append(ids, w.MovieID)
	}
	for _, id := range watchlist {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}

// fetchMovies hydrates the ids in windows of fetchConcurrency. Lookups that
// fail are logged and dropped so one bad id cannot sink the whole profile.
func (s *Service) fetchMovies(ctx context.Context, ids []int) []map[string]any {
	results := make([]map[string]any, len(ids))
	for start := 0; start < len(ids); start += fetchConcurrency {
		end := start + fetchConcurrency
		if end > len(ids) {
			end = len(ids)
		}

		var wg sync.WaitGroup
		for i := start; i < end; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				movie, err := s.movies.GetMovie(ctx, ids[i])
				if err != nil {
					log.Printf("profile: fetching movie %d: %v", ids[i], err)
					return
				}
				results[i] = movie
			}(i)
		}
		wg.Wait()
	}

	movies := make([]map[string]any, 0, len(results))
	for _, m := range results {
		if m != nil {
			movies = append(movies, m)
		}
	}
	return movies
}
