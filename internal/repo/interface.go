package repo

import (
	"context"

	"github.com/BuzzLyutic/todo-app/internal/model"
)

// TodoRepository определяет интерфейс для работы с коллекцией todos
type TodoRepository interface {
	List(ctx context.Context, filter model.TodoFilter) ([]model.Todo, error)
	Create(ctx context.Context, t model.Todo) (model.Todo, error)
	Complete(ctx context.Context, id string) (model.Todo, error)
	Delete(ctx context.Context, id string) error
	Ping(ctx context.Context) error
}
