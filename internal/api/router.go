package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"room-booking-web/internal/mw"
)

// RouterConfig holds the dependencies of the HTTP router.
type RouterConfig struct {
	Handler      *Handler
	Gate         *mw.Gate
	Logger       *zap.Logger
	RateLimit    rate.Limit
	RateBurst    int
	SecureCookie bool
}

// NewRouter creates and configures a new Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	h := cfg.Handler

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(mw.RequestLogger(logger))
	r.Use(mw.SecurityHeaders(cfg.SecureCookie))
	r.Use(mw.RateLimiter(cfg.RateLimit, cfg.RateBurst))

	r.SetHTMLTemplate(loadTemplates())
	r.StaticFS("/static", staticFiles())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/", cfg.Gate.OptionalSession(), h.Home)
	r.GET(mw.LoginPath, h.Login)
	r.GET(callbackPath, h.LoginCallback)
	r.POST("/logout", h.Logout)

	pages := r.Group("/")
	pages.Use(cfg.Gate.RequireSession())
	{
		pages.GET(roomsPath, h.ListRooms)
		pages.POST(roomsPath, h.CreateRoom)
		pages.GET(roomsPath+"/:id/delete", h.ConfirmDeleteRoom)
		pages.POST(roomsPath+"/:id/delete", h.DeleteRoom)

		pages.GET(reservationsPath, h.ListReservations)
		pages.POST(reservationsPath, h.CreateReservation)
		pages.GET(reservationsPath+"/:id/cancel", h.ConfirmCancelReservation)
		pages.POST(reservationsPath+"/:id/cancel", h.CancelReservation)
	}

	return r
}
