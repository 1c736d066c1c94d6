package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/mplath/tasknest/internal/config"
)

// PasswordHasher defines one-way password hashing and verification.
type PasswordHasher interface {
	// Hash derives a salted, slow, one-way hash of the plaintext. Every
	// call uses a fresh random salt, so two hashes of the same plaintext
	// differ.
	Hash(password string) (string, error)

	// Compare checks a plaintext against a stored hash in constant time.
	// Returns nil on match, ErrPasswordMismatch on mismatch, and
	// ErrInvalidHash when the stored hash is malformed.
	Compare(hashedPassword, password string) error
}

// BcryptHasher implements PasswordHasher using bcrypt.
type BcryptHasher struct {
	cost int
}

var _ PasswordHasher = (*BcryptHasher)(nil)

// NewBcryptHasher creates a BcryptHasher with the configured cost.
// A zero cost selects bcrypt.DefaultCost.
func NewBcryptHasher(cfg config.AuthConfig) *BcryptHasher {
	cost := cfg.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash implements PasswordHasher.Hash using bcrypt.
func (h *BcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// Compare implements PasswordHasher.Compare using bcrypt, which already
// compares in constant time.
func (h *BcryptHasher) Compare(hashedPassword, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrPasswordMismatch
	default:
		// Anything else means the stored hash is not a bcrypt hash at all.
		return fmt.Errorf("%w: %v", ErrInvalidHash, err)
	}
}
