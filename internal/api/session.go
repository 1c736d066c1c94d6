package api

import (
	"net/http"
	"time"

	"github.com/mplath/tasknest/internal/config"
)

// SessionCookies decides how the signed token travels between server and
// client: an HTTP-only cookie set on login and registration and cleared on
// logout. The cookie is the primary transport; the auth middleware also
// accepts a bearer header for non-browser clients.
type SessionCookies struct {
	name     string
	lifetime time.Duration
	secure   bool
}

// NewSessionCookies creates a SessionCookies manager from auth settings.
func NewSessionCookies(cfg config.AuthConfig) *SessionCookies {
	return &SessionCookies{
		name:     cfg.CookieName,
		lifetime: time.Duration(cfg.TokenLifetimeMinutes) * time.Minute,
		secure:   cfg.CookieSecure,
	}
}

// Name returns the cookie name tokens travel in.
func (s *SessionCookies) Name() string {
	return s.name
}

// Set attaches the signed token to the response so the client's subsequent
// requests return it automatically.
func (s *SessionCookies) Set(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.name,
		Value:    token,
		Path:     "/",
		MaxAge:   int(s.lifetime.Seconds()),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Clear expires the token cookie immediately. Safe to call whether or not a
// session exists; there is no server-side state to invalidate.
func (s *SessionCookies) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
