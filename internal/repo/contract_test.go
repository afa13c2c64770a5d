package repo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BuzzLyutic/todo-app/internal/model"
)

// testRepositoryContract runs the behaviour every driver must share against
// an empty collection. unknownID is a well-formed id that was never issued.
func testRepositoryContract(t *testing.T, r TodoRepository, unknownID string) {
	ctx := context.Background()

	t.Run("create then list", func(t *testing.T) {
		created, err := r.Create(ctx, model.Todo{Text: "buy milk", OwnerID: "u1"})
		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.False(t, created.Completed)
		assert.Equal(t, "buy milk", created.Text)
		assert.Equal(t, "u1", created.OwnerID)

		owner := "u1"
		todos, err := r.List(ctx, model.TodoFilter{OwnerID: &owner})
		require.NoError(t, err)
		require.Len(t, todos, 1)
		assert.Equal(t, created, todos[0])
	})

	t.Run("owner filter", func(t *testing.T) {
		_, err := r.Create(ctx, model.Todo{Text: "walk dog", OwnerID: "u2"})
		require.NoError(t, err)
		_, err = r.Create(ctx, model.Todo{Text: "no owner"})
		require.NoError(t, err)

		owner := "u2"
		todos, err := r.List(ctx, model.TodoFilter{OwnerID: &owner})
		require.NoError(t, err)
		require.Len(t, todos, 1)
		assert.Equal(t, "walk dog", todos[0].Text)

		all, err := r.List(ctx, model.TodoFilter{})
		require.NoError(t, err)
		assert.Len(t, all, 3)
		assert.Equal(t, "buy milk", all[0].Text, "insertion order")
		assert.Empty(t, all[2].OwnerID)
	})

	t.Run("complete is idempotent", func(t *testing.T) {
		created, err := r.Create(ctx, model.Todo{Text: "finish", OwnerID: "u3"})
		require.NoError(t, err)

		for i := 0; i < 2; i++ {
			done, err := r.Complete(ctx, created.ID)
			require.NoError(t, err)
			assert.True(t, done.Completed)
			assert.Equal(t, created.ID, done.ID)
			assert.Equal(t, "finish", done.Text)
		}
	})

	t.Run("complete unknown id", func(t *testing.T) {
		_, err := r.Complete(ctx, unknownID)
		assert.ErrorIs(t, err, ErrorNotFound)

		_, err = r.Complete(ctx, "not-an-id")
		assert.ErrorIs(t, err, ErrorNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		created, err := r.Create(ctx, model.Todo{Text: "temporary", OwnerID: "u4"})
		require.NoError(t, err)

		require.NoError(t, r.Delete(ctx, created.ID))
		assert.ErrorIs(t, r.Delete(ctx, created.ID), ErrorNotFound)
		assert.ErrorIs(t, r.Delete(ctx, unknownID), ErrorNotFound)
		assert.ErrorIs(t, r.Delete(ctx, "not-an-id"), ErrorNotFound)

		owner := "u4"
		todos, err := r.List(ctx, model.TodoFilter{OwnerID: &owner})
		require.NoError(t, err)
		assert.NotNil(t, todos)
		assert.Empty(t, todos)
	})

	t.Run("ping", func(t *testing.T) {
		assert.NoError(t, r.Ping(ctx))
	})
}
