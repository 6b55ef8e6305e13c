package api

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const callbackPath = "/login/callback"

// Home renders the landing page. The navigation depends on whether the
// optional session check found a user.
func (h *Handler) Home(c *gin.Context) {
	h.render(c, http.StatusOK, "index.html", page{Title: "Home"})
}

// Login renders the sign-in page. When the OAuth provider redirected back
// with a code, it renders the authenticating state instead, which continues
// to the callback.
func (h *Handler) Login(c *gin.Context) {
	if _, ok := h.sessions.GetToken(c); ok {
		c.Redirect(http.StatusFound, "/")
		return
	}

	p := page{Title: "Login", Login: loginState{Status: loginIdle, GoogleURL: h.googleURL}}
	if code := c.Query("code"); code != "" {
		next := callbackPath + "?code=" + url.QueryEscape(code)
		p.Login = loginState{Status: loginAuthenticating, ContinueURL: next}
		p.RefreshURL = next
	}
	h.render(c, http.StatusOK, "login.html", p)
}

// LoginCallback exchanges the authorization code for a bearer token.
func (h *Handler) LoginCallback(c *gin.Context) {
	code := strings.TrimSpace(c.Query("code"))
	if code == "" {
		h.renderLoginFailure(c, http.StatusBadRequest)
		return
	}

	token, err := h.auth.ExchangeCode(c.Request.Context(), code)
	if err != nil {
		h.logger.Warn("oauth code exchange failed", zap.Error(err))
		h.renderLoginFailure(c, http.StatusUnauthorized)
		return
	}

	if err := h.sessions.SetToken(c, token); err != nil {
		h.logger.Error("failed to persist session token", zap.Error(err))
		h.renderLoginFailure(c, http.StatusInternalServerError)
		return
	}
	c.Redirect(http.StatusFound, "/")
}

func (h *Handler) renderLoginFailure(c *gin.Context, status int) {
	h.render(c, status, "login.html", page{
		Title: "Login",
		Login: loginState{Status: loginFailed, GoogleURL: h.googleURL},
	})
}

// Logout clears the session and returns to the home page.
func (h *Handler) Logout(c *gin.Context) {
	h.sessions.ClearToken(c)
	c.Redirect(http.StatusSeeOther, "/")
}

// GoogleLoginURL builds the browser-facing URL that starts the OAuth flow.
func GoogleLoginURL(userPublicURL string) string {
	return strings.TrimRight(userPublicURL, "/") + "/auth/google/login"
}
