package identity

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	_ "modernc.org/sqlite"
)

func newLocalProvider(t *testing.T) *LocalProvider {
	t.Helper()
	db, err := gorm.Open(
		gormsqlite.New(gormsqlite.Config{DriverName: "sqlite", DSN: ":memory:"}),
		&gorm.Config{},
	)
	require.NoError(t, err)

	p, err := NewLocalProvider(db, "test-secret", time.Hour)
	require.NoError(t, err)
	return p
}

func TestLocalProvider_RoundTrip(t *testing.T) {
	p := newLocalProvider(t)
	ctx := context.Background()

	uid, err := p.CreateUser(ctx, "Ada@Example.com", "s3cret", "Ada")
	require.NoError(t, err)
	require.NotEmpty(t, uid)

	token, err := p.CustomToken(ctx, uid)
	require.NoError(t, err)

	principal, err := p.VerifyToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, uid, principal.UID)
	assert.Equal(t, "ada@example.com", principal.Email)
}

func TestLocalProvider_DuplicateEmail(t *testing.T) {
	p := newLocalProvider(t)
	ctx := context.Background()

	_, err := p.CreateUser(ctx, "ada@example.com", "s3cret", "Ada")
	require.NoError(t, err)

	_, err = p.CreateUser(ctx, "ADA@example.com", "other", "Imposter")
	assert.ErrorIs(t, err, ErrUserExists)
}

func TestLocalProvider_DeleteUser(t *testing.T) {
	p := newLocalProvider(t)
	ctx := context.Background()

	uid, err := p.CreateUser(ctx, "ada@example.com", "s3cret", "Ada")
	require.NoError(t, err)
	require.NoError(t, p.DeleteUser(ctx, uid))

	_, err = p.CustomToken(ctx, uid)
	assert.Error(t, err)
}

func TestLocalProvider_RejectsTamperedToken(t *testing.T) {
	p := newLocalProvider(t)
	ctx := context.Background()

	uid, err := p.CreateUser(ctx, "ada@example.com", "s3cret", "Ada")
	require.NoError(t, err)

	token, err := p.CustomToken(ctx, uid)
	require.NoError(t, err)

	_, err = p.VerifyToken(ctx, token+"x")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = p.VerifyToken(ctx, "not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
