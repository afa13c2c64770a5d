package repo

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/BuzzLyutic/todo-app/internal/model"
)

// MemoryRepo хранит коллекцию в памяти процесса. Порядок вставки сохраняется.
type MemoryRepo struct {
	mu    sync.RWMutex
	todos []model.Todo
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

func (r *MemoryRepo) List(ctx context.Context, filter model.TodoFilter) ([]model.Todo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	todos := make([]model.Todo, 0, len(r.todos))
	for _, t := range r.todos {
		if filter.OwnerID != nil && t.OwnerID != *filter.OwnerID {
			continue
		}
		todos = append(todos, t)
	}
	return todos, nil
}

func (r *MemoryRepo) Create(ctx context.Context, t model.Todo) (model.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t.ID = uuid.NewString()
	t.Completed = false
	r.todos = append(r.todos, t)
	return t, nil
}

func (r *MemoryRepo) Complete(ctx context.Context, id string) (model.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.todos {
		if r.todos[i].ID == id {
			r.todos[i].Completed = true
			return r.todos[i], nil
		}
	}
	return model.Todo{}, ErrorNotFound
}

func (r *MemoryRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.todos {
		if r.todos[i].ID == id {
			r.todos = append(r.todos[:i], r.todos[i+1:]...)
			return nil
		}
	}
	return ErrorNotFound
}

func (r *MemoryRepo) Ping(ctx context.Context) error {
	return nil
}
