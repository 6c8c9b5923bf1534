package identity

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// FirebaseProvider delegates account management and token verification to
// Firebase Authentication.
type FirebaseProvider struct {
	auth *fbauth.Client
}

func NewFirebaseProvider(ctx context.Context, credentialsFile string) (*FirebaseProvider, error) {
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize identity provider: %w", err)
	}
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize identity provider auth: %w", err)
	}
	return &FirebaseProvider{auth: client}, nil
}

func (p *FirebaseProvider) VerifyToken(ctx context.Context, token string) (*Principal, error) {
	decoded, err := p.auth.VerifyIDToken(ctx, token)
	if err != nil {
		return nil, ErrInvalidToken
	}
	email, _ := decoded.Claims["email"].(string)
	return &Principal{UID: decoded.UID, Email: email}, nil
}

func (p *FirebaseProvider) CreateUser(ctx context.Context, email, password, displayName string) (string, error) {
	params := (&fbauth.UserToCreate{}).
		Email(email).
		Password(password).
		DisplayName(displayName)
	record, err := p.auth.CreateUser(ctx, params)
	if err != nil {
		return "", err
	}
	return record.UID, nil
}

func (p *FirebaseProvider) DeleteUser(ctx context.Context, uid string) error {
	return p.auth.DeleteUser(ctx, uid)
}

func (p *FirebaseProvider) CustomToken(ctx context.Context, uid string) (string, error) {
	return p.auth.CustomToken(ctx, uid)
}
