package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/mplath/tasknest/internal/domain"
)

// TaskStore defines the interface for task persistence.
//
// Every read and write is scoped to an owner: a task that exists but belongs
// to a different user is reported as ErrTaskNotFound, so callers cannot
// distinguish "absent" from "not yours".
type TaskStore interface {
	// Create saves a new task.
	// Returns ErrInvalidEntity wrapping the domain error if the task fails
	// validation, or if the owner referenced by UserID does not exist.
	Create(ctx context.Context, task *domain.Task) error

	// GetForUser retrieves a task by ID if it is owned by userID.
	// Returns ErrTaskNotFound otherwise.
	GetForUser(ctx context.Context, id, userID uuid.UUID) (*domain.Task, error)

	// ListByUser retrieves all tasks owned by userID, newest first.
	// An owner with no tasks gets an empty slice, not an error.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Task, error)

	// Update rewrites the mutable fields (title, description, date, status)
	// of the task identified by task.ID, provided it is owned by task.UserID.
	// Returns ErrTaskNotFound if no such task exists for that owner.
	Update(ctx context.Context, task *domain.Task) error

	// Delete removes the task identified by id if it is owned by userID.
	// Returns ErrTaskNotFound if no such task exists for that owner.
	Delete(ctx context.Context, id, userID uuid.UUID) error
}
