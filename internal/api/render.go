package api

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"

	"room-booking-web/internal/backend"
	"room-booking-web/internal/banner"
	"room-booking-web/internal/session"
	"room-booking-web/internal/view"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static/*
var staticFS embed.FS

func loadTemplates() *template.Template {
	return template.Must(template.ParseFS(templateFS, "templates/*.html"))
}

func staticFiles() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}

// page is the data every template receives.
type page struct {
	Title         string
	Authenticated bool
	User          backend.User
	Caps          view.Capabilities
	Banner        banner.Message
	BannerTTL     int64 // milliseconds left before the banner clears
	RefreshURL    string

	Table        view.Table
	RoomOptions  []roomOption
	SelectedRoom string
	Login        loginState
	Confirm      confirmState
}

type roomOption struct {
	Value string
	Label string
}

type loginStatus string

const (
	loginIdle           loginStatus = "idle"
	loginAuthenticating loginStatus = "authenticating"
	loginFailed         loginStatus = "failed"
)

type loginState struct {
	Status      loginStatus
	GoogleURL   string
	ContinueURL string
}

type confirmState struct {
	Prompt string
	Action string
	Back   string
}

// showMessage sets the banner shown by the next page the session renders.
func (h *Handler) showMessage(c *gin.Context, text string, kind banner.Kind) {
	h.banner.Show(h.sessions.SessionID(c), text, kind)
}

// pageError puts an error raised while building this page into its banner.
func (h *Handler) pageError(p *page, text string) {
	p.Banner = h.banner.Message(text, banner.Error)
}

func (h *Handler) render(c *gin.Context, status int, name string, p page) {
	if user, ok := session.CurrentUser(c); ok {
		p.Authenticated = true
		p.User = user
		p.Caps = session.Capabilities(c)
	}
	// A pending message is consumed here; an error from this page replaces it.
	if pending := h.banner.Take(h.sessions.SessionID(c)); p.Banner.Text == "" {
		p.Banner = pending
	}
	p.BannerTTL = h.banner.Remaining(p.Banner)

	c.Header("Cache-Control", "no-store")
	c.HTML(status, name, p)
}
