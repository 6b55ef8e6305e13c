package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"room-booking-web/internal/model"
)

// ErrNotFound is returned when no token is stored for a session id.
var ErrNotFound = errors.New("session not found")

// Store persists bearer tokens keyed by session id.
type Store interface {
	GetToken(ctx context.Context, sessionID string) (string, error)
	SetToken(ctx context.Context, sessionID, token string) error
	ClearToken(ctx context.Context, sessionID string) error
}

// gormStore implements the Store interface using GORM.
type gormStore struct {
	db *gorm.DB
}

// NewGormStore creates a new GORM-backed store.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) GetToken(ctx context.Context, sessionID string) (string, error) {
	if sessionID == "" {
		return "", ErrNotFound
	}

	var sess model.Session
	err := s.db.WithContext(ctx).Where("id = ?", sessionID).First(&sess).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to load session %s: %w", sessionID, err)
	}
	if sess.Token == "" {
		return "", ErrNotFound
	}
	return sess.Token, nil
}

// SetToken creates the session row or replaces its token.
func (s *gormStore) SetToken(ctx context.Context, sessionID, token string) error {
	sess := model.Session{ID: sessionID, Token: token}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"token", "updated_at"}),
	}).Create(&sess).Error
	if err != nil {
		return fmt.Errorf("failed to store token for session %s: %w", sessionID, err)
	}
	return nil
}

// ClearToken removes the session row. Clearing an unknown session is not an error.
func (s *gormStore) ClearToken(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := s.db.WithContext(ctx).Delete(&model.Session{ID: sessionID}).Error; err != nil {
		return fmt.Errorf("failed to delete session %s: %w", sessionID, err)
	}
	return nil
}
