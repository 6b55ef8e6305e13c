// Package session binds the persisted bearer token and the per-request user
// profile to an incoming request.
package session

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"room-booking-web/internal/backend"
	"room-booking-web/internal/store"
	"room-booking-web/internal/view"
)

const (
	userKey  = "session.user"
	capsKey  = "session.capabilities"
	tokenKey = "session.token"
)

// Options controls the session cookie.
type Options struct {
	CookieName   string
	CookieDomain string
	CookieSecure bool
	MaxAge       int
}

// Manager reads and writes the token for the session named by the request cookie.
type Manager struct {
	store  store.Store
	opts   Options
	logger *zap.Logger
	newID  func() string
}

// NewManager creates a session manager on top of a token store.
func NewManager(s store.Store, opts Options, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.CookieName == "" {
		opts.CookieName = "session_id"
	}
	return &Manager{
		store:  s,
		opts:   opts,
		logger: logger,
		newID:  uuid.NewString,
	}
}

// SessionID returns the session id carried by the request, or "".
func (m *Manager) SessionID(c *gin.Context) string {
	id, err := c.Cookie(m.opts.CookieName)
	if err != nil {
		return ""
	}
	return id
}

// GetToken returns the stored token for the request's session. It never calls a backend.
func (m *Manager) GetToken(c *gin.Context) (string, bool) {
	id := m.SessionID(c)
	if id == "" {
		return "", false
	}
	token, err := m.store.GetToken(c.Request.Context(), id)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			m.logger.Error("failed to read session token", zap.Error(err))
		}
		return "", false
	}
	return token, token != ""
}

// SetToken stores token under a freshly minted session id and sets the cookie.
func (m *Manager) SetToken(c *gin.Context, token string) error {
	if old := m.SessionID(c); old != "" {
		if err := m.store.ClearToken(c.Request.Context(), old); err != nil {
			m.logger.Warn("failed to drop previous session", zap.Error(err))
		}
	}

	id := m.newID()
	if err := m.store.SetToken(c.Request.Context(), id, token); err != nil {
		return err
	}
	m.writeCookie(c, id, m.opts.MaxAge)
	return nil
}

// ClearToken deletes the stored token and expires the cookie.
func (m *Manager) ClearToken(c *gin.Context) {
	if id := m.SessionID(c); id != "" {
		if err := m.store.ClearToken(c.Request.Context(), id); err != nil {
			m.logger.Error("failed to clear session token", zap.Error(err))
		}
	}
	m.writeCookie(c, "", -1)
}

func (m *Manager) writeCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.opts.CookieName, value, maxAge, "/", m.opts.CookieDomain, m.opts.CookieSecure, true)
}

// SetCurrentUser records the authenticated user, its token and its
// capabilities for this request only.
func SetCurrentUser(c *gin.Context, token string, user backend.User) {
	c.Set(tokenKey, token)
	c.Set(userKey, user)
	c.Set(capsKey, view.CapabilitiesFor(user.Role))
}

// Token returns the bearer token verified for this request.
func Token(c *gin.Context) string {
	return c.GetString(tokenKey)
}

// CurrentUser returns the user placed on the request by the session gate.
func CurrentUser(c *gin.Context) (backend.User, bool) {
	v, ok := c.Get(userKey)
	if !ok {
		return backend.User{}, false
	}
	user, ok := v.(backend.User)
	return user, ok
}

// Capabilities returns the view capabilities computed for the current user.
func Capabilities(c *gin.Context) view.Capabilities {
	if v, ok := c.Get(capsKey); ok {
		if caps, ok := v.(view.Capabilities); ok {
			return caps
		}
	}
	return view.Capabilities{}
}
