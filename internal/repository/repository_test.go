package repository

import (
	"context"
	"testing"
	"time"

	"cinelog/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	_ "modernc.org/sqlite"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(
		gormsqlite.New(gormsqlite.Config{DriverName: "sqlite", DSN: ":memory:"}),
		&gorm.Config{},
	)
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))
	return db
}

func createUser(t *testing.T, db *gorm.DB, uid, email, name string) *domain.User {
	t.Helper()
	u := &domain.User{IdentityUID: uid, Email: email, DisplayName: name}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), u))
	return u
}

func TestUserRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := createUser(t, db, "uid-1", " Ada@Example.com ", "Ada")
	assert.Equal(t, "ada@example.com", user.Email)

	byUID, err := repo.GetByIdentityUID(ctx, "uid-1")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byUID.ID)

	exists, err := repo.ExistsByEmail(ctx, "ADA@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	updated, err := repo.UpdateDisplayName(ctx, user.ID, "Grace")
	require.NoError(t, err)
	assert.Equal(t, "Grace", updated.DisplayName)

	_, err = repo.UpdateDisplayName(ctx, 999, "Nobody")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestWatchlistRepository_IdempotentAdd(t *testing.T) {
	db := newTestDB(t)
	repo := NewWatchlistRepository(db)
	ctx := context.Background()

	user := createUser(t, db, "uid-1", "ada@example.com", "Ada")

	require.NoError(t, repo.Add(ctx, user.ID, 550))
	require.NoError(t, repo.Add(ctx, user.ID, 550))
	require.NoError(t, repo.Add(ctx, user.ID, 603))

	ids, err := repo.ListIDs(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, []int{550, 603}, ids)
}

func TestWatchlistRepository_RemoveAbsentIsNoOp(t *testing.T) {
	db := newTestDB(t)
	repo := NewWatchlistRepository(db)
	ctx := context.Background()

	user := createUser(t, db, "uid-1", "ada@example.com", "Ada")

	require.NoError(t, repo.Remove(ctx, user.ID, 999))

	ids, err := repo.ListIDs(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, []int{}, ids)
}

func TestWatchedRepository_UniquePerUserAndMovie(t *testing.T) {
	db := newTestDB(t)
	repo := NewWatchedRepository(db)
	ctx := context.Background()

	user := createUser(t, db, "uid-1", "ada@example.com", "Ada")

	require.NoError(t, repo.Create(ctx, &domain.Watched{UserID: user.ID, MovieID: 550}))
	err := repo.Create(ctx, &domain.Watched{UserID: user.ID, MovieID: 550})
	assert.Error(t, err)
}

func TestWatchedRepository_UpdateClearsFields(t *testing.T) {
	db := newTestDB(t)
	repo := NewWatchedRepository(db)
	ctx := context.Background()

	user := createUser(t, db, "uid-1", "ada@example.com", "Ada")

	rating := 4
	content := "good"
	record := &domain.Watched{
		UserID: user.ID, MovieID: 550, IsFavorited: true,
		Feedback: domain.Feedback{Rating: &rating, Content: &content},
	}
	require.NoError(t, repo.Create(ctx, record))

	record.Feedback.Rating = nil
	record.Feedback.Content = nil
	require.NoError(t, repo.Update(ctx, record))

	got, err := repo.GetByUserAndMovie(ctx, user.ID, 550)
	require.NoError(t, err)
	assert.Nil(t, got.Feedback.Rating)
	assert.Nil(t, got.Feedback.Content)
	assert.True(t, got.IsFavorited)
}

func TestWatchedRepository_ListFeedbackByMovie(t *testing.T) {
	db := newTestDB(t)
	repo := NewWatchedRepository(db)
	ctx := context.Background()

	ada := createUser(t, db, "uid-1", "ada@example.com", "Ada")
	grace := createUser(t, db, "uid-2", "grace@example.com", "Grace")
	mute := createUser(t, db, "uid-3", "mute@example.com", "Mute")

	rating := 5
	review := "a classic"
	require.NoError(t, repo.Create(ctx, &domain.Watched{
		UserID: ada.ID, MovieID: 550,
		Feedback: domain.Feedback{Rating: &rating, Content: &review},
	}))
	require.NoError(t, repo.Create(ctx, &domain.Watched{
		UserID: grace.ID, MovieID: 550,
		Feedback: domain.Feedback{Content: &review},
	}))
	// watched but no feedback; must not appear on the movie page
	require.NoError(t, repo.Create(ctx, &domain.Watched{UserID: mute.ID, MovieID: 550, IsFavorited: true}))

	rows, err := repo.ListFeedbackByMovie(ctx, 550)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	names := []string{rows[0].DisplayName, rows[1].DisplayName}
	assert.ElementsMatch(t, []string{"Ada", "Grace"}, names)
}

func TestVisitRepository_RecentVisits(t *testing.T) {
	db := newTestDB(t)
	repo := NewVisitRepository(db)
	ctx := context.Background()

	ada := createUser(t, db, "uid-1", "ada@example.com", "Ada")
	grace := createUser(t, db, "uid-2", "grace@example.com", "Grace")

	old := time.Now().Add(-time.Hour)
	require.NoError(t, repo.Create(ctx, &domain.Visit{VisitorID: grace.ID, VisitedUserID: ada.ID, VisitedAt: old}))
	require.NoError(t, repo.Create(ctx, &domain.Visit{VisitorID: grace.ID, VisitedUserID: ada.ID}))

	rows, err := repo.ListRecentByUser(ctx, ada.ID, 20)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Grace", rows[0].VisitorName)
	assert.True(t, rows[0].VisitedAt.After(rows[1].VisitedAt))
}

func TestVisitRepository_LimitsHistory(t *testing.T) {
	db := newTestDB(t)
	repo := NewVisitRepository(db)
	ctx := context.Background()

	ada := createUser(t, db, "uid-1", "ada@example.com", "Ada")
	grace := createUser(t, db, "uid-2", "grace@example.com", "Grace")

	for i := 0; i < 25; i++ {
		require.NoError(t, repo.Create(ctx, &domain.Visit{
			VisitorID:     grace.ID,
			VisitedUserID: ada.ID,
			VisitedAt:     time.Now().Add(-time.Duration(i) * time.Minute),
		}))
	}

	rows, err := repo.ListRecentByUser(ctx, ada.ID, 20)
	require.NoError(t, err)
	assert.Len(t, rows, 20)
}
