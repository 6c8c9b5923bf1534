// Package identity abstracts the external identity provider. The service
// never checks credentials itself: it creates accounts through the provider
// and consumes verified principals on every authenticated request.
package identity

import (
	"context"
	"errors"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrUserExists   = errors.New("identity user already exists")
)

// Principal is the verified identity attached to a request.
type Principal struct {
	UID   string
	Email string
}

// Verifier validates bearer credentials.
type Verifier interface {
	VerifyToken(ctx context.Context, token string) (*Principal, error)
}

// Provider is the full account-management surface used by registration.
type Provider interface {
	Verifier

	// CreateUser provisions a credential with the provider and returns its uid.
	CreateUser(ctx context.Context, email, password, displayName string) (string, error)

	// DeleteUser removes a provisioned credential. Registration uses this as
	// the compensation step when the local insert fails.
	DeleteUser(ctx context.Context, uid string) error

	// CustomToken mints a sign-in token for a provisioned uid.
	CustomToken(ctx context.Context, uid string) (string, error)
}
