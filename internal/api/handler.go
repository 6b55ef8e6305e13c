package api

import (
	"context"

	"go.uber.org/zap"

	"room-booking-web/internal/backend"
	"room-booking-web/internal/banner"
	"room-booking-web/internal/enrich"
	"room-booking-web/internal/session"
)

// AuthService is the part of the user service the pages use.
type AuthService interface {
	Me(ctx context.Context, token string) (backend.User, error)
	ExchangeCode(ctx context.Context, code string) (string, error)
}

// RoomService is the room inventory backend.
type RoomService interface {
	ListRooms(ctx context.Context, token string) ([]backend.Room, error)
	GetRoom(ctx context.Context, token string, id int64) (backend.Room, error)
	CreateRoom(ctx context.Context, token string, in backend.NewRoom) (backend.Room, error)
	DeleteRoom(ctx context.Context, token string, id int64) error
}

// ReservationService is the reservations backend.
type ReservationService interface {
	ListReservations(ctx context.Context, token string) ([]backend.Reservation, error)
	CreateReservation(ctx context.Context, token string, in backend.NewReservation) (backend.Reservation, error)
	DeleteReservation(ctx context.Context, token string, id int64) error
}

// Handler holds shared dependencies for page handlers.
type Handler struct {
	sessions     *session.Manager
	auth         AuthService
	rooms        RoomService
	reservations ReservationService
	enricher     *enrich.WorkerPool
	banner       *banner.Banner
	googleURL    string
	logger       *zap.Logger
}

// HandlerConfig lists the handler dependencies.
type HandlerConfig struct {
	Sessions     *session.Manager
	Auth         AuthService
	Rooms        RoomService
	Reservations ReservationService
	Enricher     *enrich.WorkerPool
	Banner       *banner.Banner
	// GoogleLoginURL is the browser-facing URL that starts the OAuth flow.
	GoogleLoginURL string
	Logger         *zap.Logger
}

// NewHandler creates a new page handler.
func NewHandler(cfg HandlerConfig) *Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	b := cfg.Banner
	if b == nil {
		b = banner.New(banner.DefaultTTL)
	}
	enricher := cfg.Enricher
	if enricher == nil {
		enricher = enrich.NewWorkerPool(1, cfg.Rooms, logger)
	}
	return &Handler{
		sessions:     cfg.Sessions,
		auth:         cfg.Auth,
		rooms:        cfg.Rooms,
		reservations: cfg.Reservations,
		enricher:     enricher,
		banner:       b,
		googleURL:    cfg.GoogleLoginURL,
		logger:       logger,
	}
}
