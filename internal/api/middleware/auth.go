// Package middleware provides the request-level plumbing applied around
// handlers: the authentication gate, trace IDs, and CORS.
package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/mplath/tasknest/internal/api/shared"
	"github.com/mplath/tasknest/internal/service/auth"
)

// AuthMiddleware is the gate in front of every protected route. It extracts
// the token from the session cookie (or a bearer header), verifies it, and
// attaches the subject's user ID to the request context.
//
// The two failure modes are observably different: no credential at all is
// 401, a credential that fails verification is 403. Each request is
// classified independently; there is no server-side session state.
type AuthMiddleware struct {
	jwtService auth.JWTService
	cookieName string
}

// NewAuthMiddleware creates an AuthMiddleware verifying tokens with the
// given service and reading them from the named cookie.
func NewAuthMiddleware(jwtService auth.JWTService, cookieName string) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		cookieName: cookieName,
	}
}

// Authenticate wraps a handler with token verification.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := m.extractToken(r)
		if err != nil {
			shared.RespondWithError(w, r, http.StatusUnauthorized,
				"No token, authorization denied")
			return
		}

		claims, err := m.jwtService.ValidateToken(r.Context(), token)
		if err != nil {
			if errors.Is(err, auth.ErrInvalidToken) || errors.Is(err, auth.ErrExpiredToken) {
				shared.RespondWithError(w, r, http.StatusForbidden, "Invalid token")
				return
			}
			shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
				"Authentication error", err)
			return
		}

		ctx := shared.WithUserID(r.Context(), claims.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// extractToken reads the credential from the session cookie, falling back
// to an Authorization bearer header for non-browser clients.
func (m *AuthMiddleware) extractToken(r *http.Request) (string, error) {
	if cookie, err := r.Cookie(m.cookieName); err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}

	header := r.Header.Get("Authorization")
	if header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") && parts[1] != "" {
			return parts[1], nil
		}
	}

	return "", auth.ErrMissingToken
}

// GetUserID extracts the authenticated user ID from the request context.
// The boolean reports whether the request passed the gate.
func GetUserID(r *http.Request) (uuid.UUID, bool) {
	return shared.UserIDFromContext(r.Context())
}
