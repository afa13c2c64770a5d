package repo

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Open выбирает драйвер по схеме строки подключения и проверяет соединение.
// Возвращаемая функция закрывает соединение с хранилищем.
func Open(ctx context.Context, url string) (TodoRepository, func(context.Context) error, error) {
	scheme, _, ok := strings.Cut(url, "://")
	if !ok {
		return nil, nil, fmt.Errorf("store url %q has no scheme", url)
	}

	switch scheme {
	case "mongodb", "mongodb+srv":
		client, database, err := ConnectMongo(ctx, url)
		if err != nil {
			return nil, nil, err
		}
		r := NewMongoRepo(client, database)
		if err := r.Ping(ctx); err != nil {
			client.Disconnect(ctx)
			return nil, nil, fmt.Errorf("ping mongo: %w", err)
		}
		return r, client.Disconnect, nil

	case "postgres", "postgresql":
		pool, err := pgxpool.New(ctx, url)
		if err != nil {
			return nil, nil, fmt.Errorf("connect postgres: %w", err)
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("ping postgres: %w", err)
		}
		return NewTodoRepo(pool), func(context.Context) error {
			pool.Close()
			return nil
		}, nil

	case "memory":
		return NewMemoryRepo(), func(context.Context) error { return nil }, nil
	}

	return nil, nil, fmt.Errorf("unsupported store scheme %q", scheme)
}
