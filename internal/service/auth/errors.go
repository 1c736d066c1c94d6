package auth

import "errors"

// Common authentication service errors.
var (
	// ErrInvalidToken indicates the token is malformed or its signature
	// does not match the server secret.
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrExpiredToken indicates the token's expiry has elapsed.
	ErrExpiredToken = errors.New("authentication token has expired")

	// ErrMissingToken indicates a token was expected but not presented.
	ErrMissingToken = errors.New("authentication token is missing")

	// ErrInvalidHash indicates a stored password hash is malformed. Callers
	// treat it as a verification failure, never as a crash.
	ErrInvalidHash = errors.New("invalid password hash")

	// ErrPasswordMismatch indicates the presented password does not match
	// the stored hash.
	ErrPasswordMismatch = errors.New("password does not match")
)
