package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/mplath/tasknest/internal/mocks"
	"github.com/mplath/tasknest/internal/service/auth"
)

func TestAuthMiddleware_Authenticate(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	tests := []struct {
		name           string
		cookie         string
		authHeader     string
		validateErr    error
		claims         *auth.Claims
		expectedStatus int
		expectedUserID uuid.UUID
	}{
		{
			name:           "valid cookie token",
			cookie:         "valid-token",
			claims:         &auth.Claims{UserID: userID},
			expectedStatus: http.StatusOK,
			expectedUserID: userID,
		},
		{
			name:           "valid bearer token",
			authHeader:     "Bearer valid-token",
			claims:         &auth.Claims{UserID: userID},
			expectedStatus: http.StatusOK,
			expectedUserID: userID,
		},
		{
			name:           "no credential at all",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "malformed auth header counts as absent",
			authHeader:     "InvalidFormat",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "empty bearer value counts as absent",
			authHeader:     "Bearer ",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "expired token is forbidden, not unauthorized",
			cookie:         "expired-token",
			validateErr:    auth.ErrExpiredToken,
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "invalid token is forbidden, not unauthorized",
			cookie:         "tampered-token",
			validateErr:    auth.ErrInvalidToken,
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "unexpected validation failure is a server error",
			cookie:         "some-token",
			validateErr:    assert.AnError,
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			jwtService := &mocks.JWTService{
				ValidateErr: tt.validateErr,
				Claims:      tt.claims,
			}
			mw := NewAuthMiddleware(jwtService, "token")

			var capturedUserID uuid.UUID
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if id, ok := GetUserID(r); ok {
					capturedUserID = id
				}
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "token", Value: tt.cookie})
			}
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}

			recorder := httptest.NewRecorder()
			mw.Authenticate(next).ServeHTTP(recorder, req)

			assert.Equal(t, tt.expectedStatus, recorder.Code)
			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, tt.expectedUserID, capturedUserID)
			}
		})
	}
}

func TestAuthMiddleware_CookiePreferredOverHeader(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	var seen string
	jwtService := &mocks.JWTService{
		ValidateFn: func(tokenString string) (*auth.Claims, error) {
			seen = tokenString
			return &auth.Claims{UserID: userID}, nil
		},
	}
	mw := NewAuthMiddleware(jwtService, "token")

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: "cookie-token"})
	req.Header.Set("Authorization", "Bearer header-token")

	recorder := httptest.NewRecorder()
	mw.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})).ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "cookie-token", seen)
}
