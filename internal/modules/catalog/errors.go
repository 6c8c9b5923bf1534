package catalog

import "errors"

var (
	ErrInvalidCategory = errors.New("invalid category")
	ErrInvalidMovieID  = errors.New("invalid movie id")
	ErrMissingQuery    = errors.New("missing search query")
)
