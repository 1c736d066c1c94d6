package domain

import "errors"

// Common validation errors returned by entity constructors and Validate methods.
var (
	// ErrValidation is the root of all entity validation failures.
	// Specific errors below wrap it so callers can match broadly.
	ErrValidation = errors.New("validation failed")

	ErrEmptyUserID      = errors.New("user ID cannot be empty")
	ErrEmptyUsername    = errors.New("username cannot be empty")
	ErrEmptyEmail       = errors.New("email cannot be empty")
	ErrInvalidEmail     = errors.New("invalid email format")
	ErrEmptyPassword    = errors.New("password cannot be empty")
	ErrPasswordTooShort = errors.New("password must be at least 8 characters long")
	ErrPasswordTooLong  = errors.New("password must be at most 72 characters long")

	ErrEmptyTaskID    = errors.New("task ID cannot be empty")
	ErrEmptyTaskTitle = errors.New("task title cannot be empty")
	ErrEmptyTaskOwner = errors.New("task must have an owner")
)
