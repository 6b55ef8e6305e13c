package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"room-booking-web/config"
	"room-booking-web/internal/api"
	"room-booking-web/internal/backend"
	"room-booking-web/internal/banner"
	"room-booking-web/internal/db"
	"room-booking-web/internal/enrich"
	"room-booking-web/internal/logger"
	"room-booking-web/internal/mw"
	"room-booking-web/internal/session"
	"room-booking-web/internal/store"
)

func main() {
	// Load configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config/config.yaml" // Default path for local development
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to load configuration from %s: %v", configPath, err)
	}

	zlog, err := logger.New(cfg.Log.Level, cfg.Log.Format, "bookingweb")
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer zlog.Sync()
	zlog.Info("configuration loaded", zap.String("path", configPath))

	if cfg.Log.Format == "json" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize database
	gormDB, err := db.Init(&cfg.Database, zlog)
	if err != nil {
		zlog.Fatal("failed to initialize database", zap.Error(err))
	}
	zlog.Info("session database initialized", zap.String("driver", cfg.Database.Driver))

	sessions := session.NewManager(store.NewGormStore(gormDB), session.Options{
		CookieName:   cfg.Session.CookieName,
		CookieDomain: cfg.Session.CookieDomain,
		CookieSecure: cfg.Session.CookieSecure,
		MaxAge:       cfg.Session.MaxAgeSeconds,
	}, zlog)

	users := backend.NewUserClient(cfg.Services.UserURL, cfg.Services.Timeout, zlog)
	rooms := backend.NewRoomClient(cfg.Services.RoomURL, cfg.Services.Timeout, zlog)
	reservations := backend.NewReservationClient(cfg.Services.ReservationURL, cfg.Services.Timeout, zlog)

	handler := api.NewHandler(api.HandlerConfig{
		Sessions:       sessions,
		Auth:           users,
		Rooms:          rooms,
		Reservations:   reservations,
		Enricher:       enrich.NewWorkerPool(cfg.Enrichment.WorkerPoolSize, rooms, zlog),
		Banner:         banner.New(cfg.Banner.TTL),
		GoogleLoginURL: api.GoogleLoginURL(cfg.Services.UserPublicURL),
		Logger:         zlog,
	})

	// Initialize router
	router := api.NewRouter(api.RouterConfig{
		Handler:      handler,
		Gate:         mw.NewGate(sessions, users, zlog),
		Logger:       zlog,
		RateLimit:    rate.Limit(cfg.Server.RateLimitPerSec),
		RateBurst:    cfg.Server.RateLimitBurst,
		SecureCookie: cfg.Session.CookieSecure,
	})
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start the server in a goroutine
	go func() {
		zlog.Info("HTTP server starting", zap.Int("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("HTTP server ListenAndServe", zap.Error(err))
		}
	}()

	// Setup signal handling for graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	// Block until a signal is received.
	<-stop
	zlog.Info("shutdown signal received, stopping server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		zlog.Fatal("HTTP server Shutdown", zap.Error(err))
	}

	if sqlDB, err := gormDB.DB(); err == nil {
		_ = sqlDB.Close()
	}
	zlog.Info("server gracefully stopped")
}
