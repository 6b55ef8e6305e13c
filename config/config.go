package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the overall application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Services   ServicesConfig   `yaml:"services"`
	Session    SessionConfig    `yaml:"session"`
	Banner     BannerConfig     `yaml:"banner"`
	Enrichment EnrichmentConfig `yaml:"enrichment"`
	Database   DatabaseConfig   `yaml:"database"`
	Log        LogConfig        `yaml:"log"`
}

// ServerConfig holds the server-related configuration.
type ServerConfig struct {
	Port            int     `yaml:"port"`
	RateLimitPerSec float64 `yaml:"rate_limit_per_sec"`
	RateLimitBurst  int     `yaml:"rate_limit_burst"`
}

// ServicesConfig points at the three backend services.
type ServicesConfig struct {
	UserURL        string        `yaml:"user_url"`
	UserPublicURL  string        `yaml:"user_public_url"` // browser-reachable, used for the OAuth redirect
	RoomURL        string        `yaml:"room_url"`
	ReservationURL string        `yaml:"reservation_url"`
	TimeoutSeconds int           `yaml:"timeout_seconds"`
	Timeout        time.Duration `yaml:"-"`
}

// SessionConfig controls the session cookie.
type SessionConfig struct {
	CookieName    string `yaml:"cookie_name"`
	CookieDomain  string `yaml:"cookie_domain"`
	CookieSecure  bool   `yaml:"cookie_secure"`
	MaxAgeSeconds int    `yaml:"max_age_seconds"`
}

// BannerConfig controls how long a message banner stays visible.
type BannerConfig struct {
	TTLSeconds int           `yaml:"ttl_seconds"`
	TTL        time.Duration `yaml:"-"`
}

// EnrichmentConfig holds the configuration for the room-name lookup worker pool.
type EnrichmentConfig struct {
	WorkerPoolSize int `yaml:"worker_pool_size"`
}

// DatabaseConfig holds the session database connection configuration.
type DatabaseConfig struct {
	Driver                 string `yaml:"driver"`
	DSN                    string `yaml:"dsn"`
	MaxOpenConns           int    `yaml:"max_open_conns"`
	MaxIdleConns           int    `yaml:"max_idle_conns"`
	ConnMaxLifetimeMinutes int    `yaml:"conn_max_lifetime_minutes"`
}

// LogConfig selects the zap logger level and encoding.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Load reads the configuration from the given path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg Config
	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	if err := cfg.applyDefaults(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (cfg *Config) applyDefaults() error {
	if cfg.Server.Port <= 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.RateLimitPerSec <= 0 {
		cfg.Server.RateLimitPerSec = 10
	}
	if cfg.Server.RateLimitBurst <= 0 {
		cfg.Server.RateLimitBurst = 5
	}

	var missing []string
	s := &cfg.Services
	if strings.TrimSpace(s.UserURL) == "" {
		missing = append(missing, "services.user_url")
	}
	if strings.TrimSpace(s.RoomURL) == "" {
		missing = append(missing, "services.room_url")
	}
	if strings.TrimSpace(s.ReservationURL) == "" {
		missing = append(missing, "services.reservation_url")
	}
	if len(missing) > 0 {
		return errors.New("missing required configuration: " + strings.Join(missing, ", "))
	}
	if s.UserPublicURL == "" {
		s.UserPublicURL = s.UserURL
	}
	if s.TimeoutSeconds <= 0 {
		s.TimeoutSeconds = 30
	}
	s.Timeout = time.Duration(s.TimeoutSeconds) * time.Second

	if cfg.Session.CookieName == "" {
		cfg.Session.CookieName = "session_id"
	}
	if cfg.Session.MaxAgeSeconds <= 0 {
		cfg.Session.MaxAgeSeconds = 7 * 24 * 60 * 60
	}

	if cfg.Banner.TTLSeconds <= 0 {
		cfg.Banner.TTLSeconds = 5
	}
	cfg.Banner.TTL = time.Duration(cfg.Banner.TTLSeconds) * time.Second

	if cfg.Enrichment.WorkerPoolSize <= 0 {
		cfg.Enrichment.WorkerPoolSize = 4
	}

	switch cfg.Database.Driver {
	case "":
		cfg.Database.Driver = "sqlite"
	case "sqlite", "postgres":
	default:
		return fmt.Errorf("unsupported database.driver %q", cfg.Database.Driver)
	}
	if cfg.Database.DSN == "" && cfg.Database.Driver == "sqlite" {
		cfg.Database.DSN = "file:sessions.db?_foreign_keys=on"
	}

	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "json"
	}
	return nil
}
