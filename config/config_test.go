package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
services:
  user_url: http://users:5000
  room_url: http://rooms:5001
  reservation_url: http://reservations:5002
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 10.0, cfg.Server.RateLimitPerSec)
	assert.Equal(t, 5, cfg.Server.RateLimitBurst)
	assert.Equal(t, "http://users:5000", cfg.Services.UserPublicURL)
	assert.Equal(t, 30*time.Second, cfg.Services.Timeout)
	assert.Equal(t, "session_id", cfg.Session.CookieName)
	assert.Equal(t, 5*time.Second, cfg.Banner.TTL)
	assert.Equal(t, 4, cfg.Enrichment.WorkerPoolSize)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.NotEmpty(t, cfg.Database.DSN)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_MissingServiceURLs(t *testing.T) {
	path := writeConfig(t, `
services:
  user_url: http://users:5000
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "services.room_url")
	assert.Contains(t, err.Error(), "services.reservation_url")
}

func TestLoad_RejectsUnknownDriver(t *testing.T) {
	path := writeConfig(t, `
services:
  user_url: http://users:5000
  room_url: http://rooms:5001
  reservation_url: http://reservations:5002
database:
  driver: mysql
`)

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoad_ExampleFile(t *testing.T) {
	cfg, err := Load("config.yaml")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:5000", cfg.Services.UserPublicURL)
	assert.Equal(t, 5, cfg.Banner.TTLSeconds)
}
