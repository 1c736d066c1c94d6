package mocks

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/mplath/tasknest/internal/domain"
	"github.com/mplath/tasknest/internal/store"
)

// UserStore is an in-memory mock of store.UserStore with injectable errors.
type UserStore struct {
	mu    sync.Mutex
	users map[uuid.UUID]*domain.User

	CreateErr     error
	GetByIDErr    error
	GetByEmailErr error
}

var _ store.UserStore = (*UserStore)(nil)

// NewUserStore creates an empty in-memory user store.
func NewUserStore() *UserStore {
	return &UserStore{users: make(map[uuid.UUID]*domain.User)}
}

func (m *UserStore) Create(ctx context.Context, user *domain.User) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.users {
		if existing.Email == user.Email {
			return store.ErrEmailExists
		}
		if existing.Username == user.Username {
			return store.ErrUsernameExists
		}
	}

	clone := *user
	m.users[user.ID] = &clone
	return nil
}

func (m *UserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.GetByIDErr != nil {
		return nil, m.GetByIDErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	clone := *user
	return &clone, nil
}

func (m *UserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailErr != nil {
		return nil, m.GetByEmailErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, user := range m.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, store.ErrUserNotFound
}
