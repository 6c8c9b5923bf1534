package auth

import "errors"

var (
	ErrRegistrationFailed = errors.New("registration failed")
)
