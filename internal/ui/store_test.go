package ui

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BuzzLyutic/todo-app/internal/client"
	"github.com/BuzzLyutic/todo-app/internal/model"
)

type MockAPI struct {
	mock.Mock
}

func (m *MockAPI) List(ctx context.Context, ownerID string) ([]model.Todo, error) {
	args := m.Called(ctx, ownerID)
	todos, _ := args.Get(0).([]model.Todo)
	return todos, args.Error(1)
}

func (m *MockAPI) Create(ctx context.Context, text, ownerID string) (model.Todo, error) {
	args := m.Called(ctx, text, ownerID)
	return args.Get(0).(model.Todo), args.Error(1)
}

func (m *MockAPI) Complete(ctx context.Context, id string) (model.Todo, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Todo), args.Error(1)
}

func (m *MockAPI) Delete(ctx context.Context, id string) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

type countingNotifier struct{ shown int }

func (n *countingNotifier) Show() { n.shown++ }

func loadedStore(t *testing.T, api *MockAPI, alert Notifier, todos ...model.Todo) *Store {
	t.Helper()
	api.On("List", mock.Anything, "u1").Return(todos, nil).Once()
	s := NewStore(api, "u1", alert, zap.NewNop())
	s.Load(context.Background())
	return s
}

func TestStore_Load(t *testing.T) {
	t.Run("replaces state", func(t *testing.T) {
		api := new(MockAPI)
		s := loadedStore(t, api, nil, model.Todo{ID: "1", Text: "a"}, model.Todo{ID: "2", Text: "b"})
		assert.Len(t, s.Todos(), 2)

		api.On("List", mock.Anything, "u1").Return([]model.Todo{{ID: "3", Text: "c"}}, nil).Once()
		s.Load(context.Background())
		assert.Equal(t, []model.Todo{{ID: "3", Text: "c"}}, s.Todos())
		api.AssertExpectations(t)
	})

	t.Run("failure leaves list empty", func(t *testing.T) {
		api := new(MockAPI)
		s := loadedStore(t, api, nil, model.Todo{ID: "1", Text: "a"})

		api.On("List", mock.Anything, "u1").Return(nil, errors.New("offline")).Once()
		s.Load(context.Background())
		assert.Empty(t, s.Todos())
	})
}

func TestStore_Add(t *testing.T) {
	t.Run("appends server echo", func(t *testing.T) {
		api := new(MockAPI)
		s := loadedStore(t, api, nil, model.Todo{ID: "1", Text: "a"})

		api.On("Create", mock.Anything, "buy milk", "u1").
			Return(model.Todo{ID: "2", Text: "buy milk", OwnerID: "u1"}, nil)

		assert.True(t, s.Add(context.Background(), "buy milk"))
		todos := s.Todos()
		require.Len(t, todos, 2)
		assert.Equal(t, "2", todos[1].ID)
	})

	t.Run("blank input is a no-op", func(t *testing.T) {
		api := new(MockAPI)
		s := loadedStore(t, api, nil)

		assert.False(t, s.Add(context.Background(), "  \t"))
		api.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("failure keeps state", func(t *testing.T) {
		api := new(MockAPI)
		s := loadedStore(t, api, nil)
		api.On("Create", mock.Anything, "x", "u1").Return(model.Todo{}, errors.New("offline"))

		assert.False(t, s.Add(context.Background(), "x"))
		assert.Empty(t, s.Todos())
	})
}

func TestStore_Complete(t *testing.T) {
	t.Run("replaces entry and alerts", func(t *testing.T) {
		api := new(MockAPI)
		alert := &countingNotifier{}
		s := loadedStore(t, api, alert, model.Todo{ID: "1", Text: "a"}, model.Todo{ID: "2", Text: "b"})

		api.On("Complete", mock.Anything, "2").Return(model.Todo{ID: "2", Text: "b", Completed: true}, nil)

		s.Complete(context.Background(), "2")
		todos := s.Todos()
		assert.False(t, todos[0].Completed)
		assert.True(t, todos[1].Completed)
		assert.Equal(t, 1, alert.shown)
	})

	t.Run("not found does not alert", func(t *testing.T) {
		api := new(MockAPI)
		alert := &countingNotifier{}
		s := loadedStore(t, api, alert, model.Todo{ID: "1", Text: "a"})

		api.On("Complete", mock.Anything, "1").
			Return(model.Todo{}, &client.StatusError{Code: http.StatusNotFound})

		s.Complete(context.Background(), "1")
		assert.Equal(t, []model.Todo{{ID: "1", Text: "a"}}, s.Todos())
		assert.Zero(t, alert.shown)
	})
}

func TestStore_Delete(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantLeft int
	}{
		{name: "confirmed", err: nil, wantLeft: 1},
		{name: "server error still removes", err: &client.StatusError{Code: http.StatusInternalServerError}, wantLeft: 1},
		{name: "transport error keeps row", err: errors.New("connection refused"), wantLeft: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := new(MockAPI)
			s := loadedStore(t, api, nil, model.Todo{ID: "1", Text: "a"}, model.Todo{ID: "2", Text: "b"})
			api.On("Delete", mock.Anything, "1").Return("Todo deleted", tt.err)

			s.Delete(context.Background(), "1")
			assert.Len(t, s.Todos(), tt.wantLeft)
		})
	}
}

func TestStore_TodosIsSnapshot(t *testing.T) {
	api := new(MockAPI)
	s := loadedStore(t, api, nil, model.Todo{ID: "1", Text: "a"})

	snap := s.Todos()
	snap[0].Text = "changed"
	assert.Equal(t, "a", s.Todos()[0].Text)
}
