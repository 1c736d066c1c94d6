package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/mplath/tasknest/internal/domain"
)

// UserStore defines the interface for user credential persistence.
//
// Registration and login are the only flows that touch it, so there is no
// update or delete: identities are created once and read back by ID or email.
type UserStore interface {
	// Create saves a new user. The user must already carry a hashed
	// password; stores never hash.
	// Returns ErrEmailExists or ErrUsernameExists if the corresponding
	// unique field is already taken.
	// Returns ErrInvalidEntity wrapping the domain error if the user fails
	// validation.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetByEmail retrieves a user by their email address.
	// Returns ErrUserNotFound if the user does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}
