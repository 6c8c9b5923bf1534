package library

import "errors"

var (
	ErrInvalidMovieID     = errors.New("invalid movie id")
	ErrInvalidRating      = errors.New("invalid rating")
	ErrInvalidDisplayName = errors.New("invalid display name")
	ErrUserNotFound       = errors.New("user not found")
	ErrNotWatched         = errors.New("movie not in watched list")
)
