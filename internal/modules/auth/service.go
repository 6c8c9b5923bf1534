package auth

import (
	"context"
	"log"
	"strings"

	"cinelog/internal/domain"
)

// Service runs the registration saga across the identity provider and the
// local store.
type Service struct {
	users    UserCreator
	identity IdentityProvider
}

func NewService(users UserCreator, identity IdentityProvider) *Service {
	return &Service{users: users, identity: identity}
}

// Register provisions the credential with the identity provider first, then
// inserts the local user record transactionally. If the local insert fails
// the provider credential is deleted to compensate; if the provider call
// fails there is nothing to compensate. The compensation order must not
// change.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (string, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	displayName := strings.TrimSpace(req.DisplayName)

	uid, err := s.identity.CreateUser(ctx, email, req.Password, displayName)
	if err != nil {
		log.Printf("[auth] identity create failed for %s: %v", email, err)
		return "", ErrRegistrationFailed
	}

	user := &domain.User{
		IdentityUID: uid,
		Email:       email,
		DisplayName: displayName,
	}
	if err := s.users.CreateInTx(ctx, user); err != nil {
		log.Printf("[auth] local user insert failed for %s: %v", email, err)
		if delErr := s.identity.DeleteUser(ctx, uid); delErr != nil {
			log.Printf("[auth] rollback of identity user %s failed: %v", uid, delErr)
		} else {
			log.Printf("[auth] identity user %s deleted during rollback", uid)
		}
		return "", ErrRegistrationFailed
	}

	token, err := s.identity.CustomToken(ctx, uid)
	if err != nil {
		log.Printf("[auth] custom token mint failed for %s: %v", uid, err)
		return "", ErrRegistrationFailed
	}
	return token, nil
}
