package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"room-booking-web/internal/model"
)

// A helper function to create an in-memory database.
func newTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&model.Session{}))
	return db
}

func TestGormStore_TokenLifecycle(t *testing.T) {
	s := NewGormStore(newTestDB(t))
	ctx := context.Background()

	_, err := s.GetToken(ctx, "sess-1")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.SetToken(ctx, "sess-1", "tok-a"))
	token, err := s.GetToken(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, "tok-a", token)

	require.NoError(t, s.SetToken(ctx, "sess-1", "tok-b"))
	token, err = s.GetToken(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, "tok-b", token)

	require.NoError(t, s.ClearToken(ctx, "sess-1"))
	_, err = s.GetToken(ctx, "sess-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGormStore_EmptyAndUnknownIDs(t *testing.T) {
	s := NewGormStore(newTestDB(t))
	ctx := context.Background()

	_, err := s.GetToken(ctx, "")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.NoError(t, s.ClearToken(ctx, ""))
	assert.NoError(t, s.ClearToken(ctx, "never-existed"))
}

func TestGormStore_SessionsAreIsolated(t *testing.T) {
	s := NewGormStore(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, s.SetToken(ctx, "a", "tok-a"))
	require.NoError(t, s.SetToken(ctx, "b", "tok-b"))
	require.NoError(t, s.ClearToken(ctx, "a"))

	token, err := s.GetToken(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, "tok-b", token)
}
