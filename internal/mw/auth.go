package mw

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"room-booking-web/internal/backend"
	"room-booking-web/internal/metrics"
	"room-booking-web/internal/session"
)

// LoginPath is where unauthenticated visitors of protected pages are sent.
const LoginPath = "/login"

// UserLookup fetches the profile behind a bearer token.
type UserLookup interface {
	Me(ctx context.Context, token string) (backend.User, error)
}

// Gate checks the session on every request. Nothing is cached between requests.
type Gate struct {
	sessions *session.Manager
	users    UserLookup
	logger   *zap.Logger
}

// NewGate creates a session gate.
func NewGate(sessions *session.Manager, users UserLookup, logger *zap.Logger) *Gate {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Gate{sessions: sessions, users: users, logger: logger}
}

// RequireSession redirects to the login page unless the request carries a
// token the user service accepts. Without a token no backend call is made.
func (g *Gate) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !g.authenticate(c) {
			c.Redirect(http.StatusFound, LoginPath)
			c.Abort()
			return
		}
		c.Next()
	}
}

// OptionalSession resolves the user when possible but never redirects.
func (g *Gate) OptionalSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		g.authenticate(c)
		c.Next()
	}
}

func (g *Gate) authenticate(c *gin.Context) bool {
	token, ok := g.sessions.GetToken(c)
	if !ok {
		metrics.AuthGateTotal.WithLabelValues("missing").Inc()
		return false
	}

	user, err := g.users.Me(c.Request.Context(), token)
	if err != nil {
		g.logger.Info("session rejected by user service",
			zap.String("path", c.Request.URL.Path),
			zap.Bool("unauthorized", backend.IsUnauthorized(err)),
			zap.Error(err),
		)
		metrics.AuthGateTotal.WithLabelValues("rejected").Inc()
		g.sessions.ClearToken(c)
		return false
	}

	metrics.AuthGateTotal.WithLabelValues("authenticated").Inc()
	session.SetCurrentUser(c, token, user)
	return true
}
