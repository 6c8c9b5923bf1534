package auth

import (
	"context"
	"errors"
	"testing"

	"cinelog/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockUserCreator struct {
	mock.Mock
}

func (m *mockUserCreator) CreateInTx(ctx context.Context, u *domain.User) error {
	return m.Called(ctx, u).Error(0)
}

type mockIdentityProvider struct {
	mock.Mock
}

func (m *mockIdentityProvider) CreateUser(ctx context.Context, email, password, displayName string) (string, error) {
	args := m.Called(ctx, email, password, displayName)
	return args.String(0), args.Error(1)
}

func (m *mockIdentityProvider) DeleteUser(ctx context.Context, uid string) error {
	return m.Called(ctx, uid).Error(0)
}

func (m *mockIdentityProvider) CustomToken(ctx context.Context, uid string) (string, error) {
	args := m.Called(ctx, uid)
	return args.String(0), args.Error(1)
}

func TestRegister(t *testing.T) {
	users := new(mockUserCreator)
	identity := new(mockIdentityProvider)
	svc := NewService(users, identity)

	identity.On("CreateUser", mock.Anything, "ada@example.com", "s3cret", "Ada").Return("uid-1", nil)
	users.On("CreateInTx", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.IdentityUID == "uid-1" && u.Email == "ada@example.com" && u.DisplayName == "Ada"
	})).Return(nil)
	identity.On("CustomToken", mock.Anything, "uid-1").Return("token-1", nil)

	token, err := svc.Register(context.Background(), RegisterRequest{
		Email:       " Ada@Example.com ",
		Password:    "s3cret",
		DisplayName: " Ada ",
	})
	require.NoError(t, err)
	assert.Equal(t, "token-1", token)
	identity.AssertNotCalled(t, "DeleteUser", mock.Anything, mock.Anything)
}

func TestRegister_IdentityCreateFails(t *testing.T) {
	users := new(mockUserCreator)
	identity := new(mockIdentityProvider)
	svc := NewService(users, identity)

	identity.On("CreateUser", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return("", errors.New("email already in use"))

	_, err := svc.Register(context.Background(), RegisterRequest{
		Email: "ada@example.com", Password: "s3cret", DisplayName: "Ada",
	})
	assert.ErrorIs(t, err, ErrRegistrationFailed)
	users.AssertNotCalled(t, "CreateInTx", mock.Anything, mock.Anything)
}

func TestRegister_LocalInsertFailureRollsBackIdentity(t *testing.T) {
	users := new(mockUserCreator)
	identity := new(mockIdentityProvider)
	svc := NewService(users, identity)

	identity.On("CreateUser", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("uid-1", nil)
	users.On("CreateInTx", mock.Anything, mock.Anything).Return(errors.New("duplicate email"))
	identity.On("DeleteUser", mock.Anything, "uid-1").Return(nil)

	_, err := svc.Register(context.Background(), RegisterRequest{
		Email: "ada@example.com", Password: "s3cret", DisplayName: "Ada",
	})
	assert.ErrorIs(t, err, ErrRegistrationFailed)
	identity.AssertCalled(t, "DeleteUser", mock.Anything, "uid-1")
	identity.AssertNotCalled(t, "CustomToken", mock.Anything, mock.Anything)
}

func TestRegister_TokenMintFailure(t *testing.T) {
	users := new(mockUserCreator)
	identity := new(mockIdentityProvider)
	svc := NewService(users, identity)

	identity.On("CreateUser", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("uid-1", nil)
	users.On("CreateInTx", mock.Anything, mock.Anything).Return(nil)
	identity.On("CustomToken", mock.Anything, "uid-1").Return("", errors.New("signing key unavailable"))

	_, err := svc.Register(context.Background(), RegisterRequest{
		Email: "ada@example.com", Password: "s3cret", DisplayName: "Ada",
	})
	assert.ErrorIs(t, err, ErrRegistrationFailed)
}
