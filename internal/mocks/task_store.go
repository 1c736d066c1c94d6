package mocks

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/mplath/tasknest/internal/domain"
	"github.com/mplath/tasknest/internal/store"
)

// TaskStore is an in-memory mock of store.TaskStore with injectable errors.
// Reads and writes are owner-scoped like the real implementation.
type TaskStore struct {
	mu    sync.Mutex
	tasks map[uuid.UUID]*domain.Task

	CreateErr error
	GetErr    error
	ListErr   error
	UpdateErr error
	DeleteErr error
}

var _ store.TaskStore = (*TaskStore)(nil)

// NewTaskStore creates an empty in-memory task store.
func NewTaskStore() *TaskStore {
	return &TaskStore{tasks: make(map[uuid.UUID]*domain.Task)}
}

func (m *TaskStore) Create(ctx context.Context, task *domain.Task) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	clone := *task
	m.tasks[task.ID] = &clone
	return nil
}

func (m *TaskStore) GetForUser(ctx context.Context, id, userID uuid.UUID) (*domain.Task, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	task, ok := m.tasks[id]
	if !ok || task.UserID != userID {
		return nil, store.ErrTaskNotFound
	}
	clone := *task
	return &clone, nil
}

func (m *TaskStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Task, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]*domain.Task, 0)
	for _, task := range m.tasks {
		if task.UserID == userID {
			clone := *task
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (m *TaskStore) Update(ctx context.Context, task *domain.Task) error {
	if m.UpdateErr != nil {
		return m.UpdateErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.tasks[task.ID]
	if !ok || existing.UserID != task.UserID {
		return store.ErrTaskNotFound
	}

	existing.Title = task.Title
	existing.Description = task.Description
	existing.Date = task.Date
	existing.Status = task.Status
	existing.UpdatedAt = task.UpdatedAt
	return nil
}

func (m *TaskStore) Delete(ctx context.Context, id, userID uuid.UUID) error {
	if m.DeleteErr != nil {
		return m.DeleteErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	task, ok := m.tasks[id]
	if !ok || task.UserID != userID {
		return store.ErrTaskNotFound
	}
	delete(m.tasks, id)
	return nil
}
