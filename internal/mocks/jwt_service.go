package mocks

import (
	"context"

	"github.com/google/uuid"

	"github.com/mplath/tasknest/internal/service/auth"
)

// JWTService is a configurable mock of auth.JWTService.
type JWTService struct {
	Token       string
	GenerateErr error
	Claims      *auth.Claims
	ValidateErr error

	// ValidateFn, when set, overrides the fixed Claims/ValidateErr pair.
	ValidateFn func(tokenString string) (*auth.Claims, error)
}

var _ auth.JWTService = (*JWTService)(nil)

func (m *JWTService) GenerateToken(ctx context.Context, userID uuid.UUID) (string, error) {
	if m.GenerateErr != nil {
		return "", m.GenerateErr
	}
	if m.Token != "" {
		return m.Token, nil
	}
	return "mock-token-" + userID.String(), nil
}

func (m *JWTService) ValidateToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	if m.ValidateFn != nil {
		return m.ValidateFn(tokenString)
	}
	if m.ValidateErr != nil {
		return nil, m.ValidateErr
	}
	return m.Claims, nil
}
