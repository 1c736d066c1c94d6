package domain_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mplath/tasknest/internal/domain"
)

func TestNewTask(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()
	due := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		userID  uuid.UUID
		title   string
		date    *time.Time
		wantErr error
	}{
		{
			name:   "valid task with date",
			userID: ownerID,
			title:  "buy groceries",
			date:   &due,
		},
		{
			name:   "valid task without date",
			userID: ownerID,
			title:  "buy groceries",
		},
		{
			name:    "empty title",
			userID:  ownerID,
			title:   "",
			wantErr: domain.ErrEmptyTaskTitle,
		},
		{
			name:    "whitespace title",
			userID:  ownerID,
			title:   "  \t ",
			wantErr: domain.ErrEmptyTaskTitle,
		},
		{
			name:    "missing owner",
			userID:  uuid.Nil,
			title:   "buy groceries",
			wantErr: domain.ErrEmptyTaskOwner,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			task, err := domain.NewTask(tt.userID, tt.title, "a description", tt.date)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, task)
				return
			}

			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, task.ID)
			assert.Equal(t, tt.userID, task.UserID)
			assert.False(t, task.Status, "new tasks start not done")
			assert.Equal(t, tt.date, task.Date)
		})
	}
}
