package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/BuzzLyutic/todo-app/internal/model"
	"github.com/BuzzLyutic/todo-app/internal/repo"
)

var (
	ErrValidation = errors.New("validation error")
)

type TodoService struct {
	repo         repo.TodoRepository
	requireOwner bool
}

type Option func(*TodoService)

// WithRequireOwner включает режим, в котором каждая задача должна иметь ownerId.
func WithRequireOwner(required bool) Option {
	return func(s *TodoService) {
		s.requireOwner = required
	}
}

func NewTodoService(repo repo.TodoRepository, opts ...Option) *TodoService {
	s := &TodoService{repo: repo}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *TodoService) List(ctx context.Context, filter model.TodoFilter) ([]model.Todo, error) {
	todos, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}
	if todos == nil {
		todos = []model.Todo{}
	}
	return todos, nil
}

func (s *TodoService) Create(ctx context.Context, text, ownerID string) (model.Todo, error) {
	t := model.Todo{Text: text, OwnerID: ownerID}
	if err := s.validate(t); err != nil {
		return t, err
	}

	created, err := s.repo.Create(ctx, t)
	if err != nil {
		return created, fmt.Errorf("create todo: %w", err)
	}
	return created, nil
}

// Complete выставляет completed=true. Для неизвестного id возвращает repo.ErrorNotFound.
func (s *TodoService) Complete(ctx context.Context, id string) (model.Todo, error) {
	if strings.TrimSpace(id) == "" {
		return model.Todo{}, repo.ErrorNotFound
	}

	todo, err := s.repo.Complete(ctx, id)
	if err != nil {
		return todo, fmt.Errorf("complete todo %s: %w", id, err)
	}
	return todo, nil
}

// Delete идемпотентен: отсутствие записи не считается ошибкой.
func (s *TodoService) Delete(ctx context.Context, id string) error {
	err := s.repo.Delete(ctx, id)
	if err != nil && !errors.Is(err, repo.ErrorNotFound) {
		return fmt.Errorf("delete todo %s: %w", id, err)
	}
	return nil
}

func (s *TodoService) Ping(ctx context.Context) error {
	return s.repo.Ping(ctx)
}

func (s *TodoService) validate(t model.Todo) error {
	if strings.TrimSpace(t.Text) == "" {
		return fmt.Errorf("%w: text is required", ErrValidation)
	}
	if s.requireOwner && strings.TrimSpace(t.OwnerID) == "" {
		return fmt.Errorf("%w: ownerId is required", ErrValidation)
	}
	return nil
}
