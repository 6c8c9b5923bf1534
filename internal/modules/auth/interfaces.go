package auth

import (
	"context"

	"cinelog/internal/domain"
)

// UserCreator — only the user-repository methods registration needs.
type UserCreator interface {
	CreateInTx(ctx context.Context, u *domain.User) error
}

// IdentityProvider — the provider surface the registration saga drives.
type IdentityProvider interface {
	CreateUser(ctx context.Context, email, password, displayName string) (string, error)
	DeleteUser(ctx context.Context, uid string) error
	CustomToken(ctx context.Context, uid string) (string, error)
}
