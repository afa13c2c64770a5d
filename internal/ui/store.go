// Package ui holds the client-side todo list and its terminal view.
package ui

import (
	"context"
	"errors"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/BuzzLyutic/todo-app/internal/client"
	"github.com/BuzzLyutic/todo-app/internal/model"
)

// API is the subset of the service client the store needs.
type API interface {
	List(ctx context.Context, ownerID string) ([]model.Todo, error)
	Create(ctx context.Context, text, ownerID string) (model.Todo, error)
	Complete(ctx context.Context, id string) (model.Todo, error)
	Delete(ctx context.Context, id string) (string, error)
}

// Notifier is shown after every successful completion.
type Notifier interface {
	Show()
}

// Store is the in-memory list, reconciled with the service only through
// explicit calls. Failures are logged and leave the list as it was.
type Store struct {
	api     API
	ownerID string
	alert   Notifier
	logger  *zap.Logger

	mu    sync.Mutex
	todos []model.Todo
}

func NewStore(api API, ownerID string, alert Notifier, logger *zap.Logger) *Store {
	return &Store{
		api:     api,
		ownerID: ownerID,
		alert:   alert,
		logger:  logger,
	}
}

func (s *Store) OwnerID() string {
	return s.ownerID
}

// Todos returns a snapshot of the local list.
func (s *Store) Todos() []model.Todo {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Todo, len(s.todos))
	copy(out, s.todos)
	return out
}

// Load replaces the local list with the owner's todos. On failure the list
// is left empty.
func (s *Store) Load(ctx context.Context) {
	todos, err := s.api.List(ctx, s.ownerID)
	if err != nil {
		s.logger.Error("fetch todos", zap.Error(err))
		todos = nil
	}

	s.mu.Lock()
	s.todos = todos
	s.mu.Unlock()
}

// Add creates a todo and appends the service's echo. It reports whether the
// input was accepted, so the caller knows to clear it.
func (s *Store) Add(ctx context.Context, text string) bool {
	if strings.TrimSpace(text) == "" {
		return false
	}

	todo, err := s.api.Create(ctx, text, s.ownerID)
	if err != nil {
		s.logger.Error("add todo", zap.Error(err))
		return false
	}

	s.mu.Lock()
	s.todos = append(s.todos, todo)
	s.mu.Unlock()
	return true
}

// Complete marks id done, swaps in the returned record and shows the alert.
func (s *Store) Complete(ctx context.Context, id string) {
	updated, err := s.api.Complete(ctx, id)
	if err != nil {
		s.logger.Error("complete todo", zap.String("id", id), zap.Error(err))
		return
	}

	s.mu.Lock()
	for i := range s.todos {
		if s.todos[i].ID == id {
			s.todos[i] = updated
		}
	}
	s.mu.Unlock()

	if s.alert != nil {
		s.alert.Show()
	}
}

// Delete removes id locally once the service answered, whatever it said.
// Only a failed round trip keeps the row.
func (s *Store) Delete(ctx context.Context, id string) {
	if _, err := s.api.Delete(ctx, id); err != nil {
		s.logger.Error("delete todo", zap.String("id", id), zap.Error(err))
		var statusErr *client.StatusError
		if !errors.As(err, &statusErr) {
			return
		}
	}

	s.mu.Lock()
	kept := s.todos[:0]
	for _, t := range s.todos {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	s.todos = kept
	s.mu.Unlock()
}
