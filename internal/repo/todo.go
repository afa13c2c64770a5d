package repo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/BuzzLyutic/todo-app/internal/model"
)

var (
	ErrorNotFound = errors.New("not found")
	ErrorConflict = errors.New("conflict")
)

type TodoRepo struct { // Репозиторий поверх Postgres
	pool *pgxpool.Pool
}

func NewTodoRepo(pool *pgxpool.Pool) *TodoRepo {
	return &TodoRepo{
		pool: pool,
	}
}

func (r *TodoRepo) List(ctx context.Context, filter model.TodoFilter) ([]model.Todo, error) {
	query := `
		SELECT id::text, text, completed, COALESCE(owner_id, '')
		FROM todos
		WHERE ($1::text IS NULL OR owner_id = $1)
		ORDER BY created_at, seq
	`

	rows, err := r.pool.Query(ctx, query, filter.OwnerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	todos := make([]model.Todo, 0)
	for rows.Next() {
		var t model.Todo
		if err := rows.Scan(&t.ID, &t.Text, &t.Completed, &t.OwnerID); err != nil {
			return nil, err
		}
		todos = append(todos, t)
	}
	return todos, rows.Err()
}

func (r *TodoRepo) Create(ctx context.Context, t model.Todo) (model.Todo, error) {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO todos (text, owner_id)
		VALUES ($1, NULLIF($2, ''))
		RETURNING id::text, text, completed, COALESCE(owner_id, '')
	`, t.Text, t.OwnerID).Scan(
		&t.ID, &t.Text, &t.Completed, &t.OwnerID,
	)
	return t, r.mapError(err)
}

func (r *TodoRepo) Complete(ctx context.Context, id string) (model.Todo, error) {
	var t model.Todo
	err := r.pool.QueryRow(ctx, `
		UPDATE todos
		SET completed = TRUE
		WHERE id = $1::uuid
		RETURNING id::text, text, completed, COALESCE(owner_id, '')
	`, id).Scan(
		&t.ID, &t.Text, &t.Completed, &t.OwnerID,
	)
	return t, r.mapError(err)
}

func (r *TodoRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, "DELETE FROM todos WHERE id = $1::uuid", id)
	if err != nil {
		return r.mapError(err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrorNotFound
	}
	return nil
}

func (r *TodoRepo) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

func (r *TodoRepo) mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrorNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return ErrorConflict
		case "22P02": // id не является uuid, такой записи быть не может
			return ErrorNotFound
		}
	}
	return err
}
