package store_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mplath/tasknest/internal/store"
)

func TestSentinelErrorHierarchy(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, store.ErrUserNotFound, store.ErrNotFound)
	assert.ErrorIs(t, store.ErrTaskNotFound, store.ErrNotFound)
	assert.ErrorIs(t, store.ErrEmailExists, store.ErrDuplicate)
	assert.ErrorIs(t, store.ErrUsernameExists, store.ErrDuplicate)

	// The two duplicate variants stay distinguishable.
	assert.NotErrorIs(t, store.ErrEmailExists, store.ErrUsernameExists)
}

func TestIsNotFoundError(t *testing.T) {
	t.Parallel()

	assert.True(t, store.IsNotFoundError(store.ErrNotFound))
	assert.True(t, store.IsNotFoundError(store.ErrTaskNotFound))
	assert.True(t, store.IsNotFoundError(fmt.Errorf("lookup: %w", store.ErrUserNotFound)))
	assert.False(t, store.IsNotFoundError(store.ErrDuplicate))
	assert.False(t, store.IsNotFoundError(errors.New("something else")))
}

func TestIsDuplicateError(t *testing.T) {
	t.Parallel()

	assert.True(t, store.IsDuplicateError(store.ErrEmailExists))
	assert.True(t, store.IsDuplicateError(fmt.Errorf("create: %w", store.ErrUsernameExists)))
	assert.False(t, store.IsDuplicateError(store.ErrNotFound))
}

func TestStoreError(t *testing.T) {
	t.Parallel()

	inner := errors.New("connection reset")
	err := store.NewStoreError("task", "create", "insert failed", inner)

	assert.Contains(t, err.Error(), "create operation on task failed")
	assert.Contains(t, err.Error(), "connection reset")
	assert.ErrorIs(t, err, inner)

	noWrap := store.NewStoreError("user", "get", "scan failed", nil)
	assert.Equal(t, "get operation on user failed: scan failed", noWrap.Error())
}
