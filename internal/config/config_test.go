package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("TODO_CONFIG", "")
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("REQUIRE_OWNER", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, "mongodb://localhost:27017/todoapp", cfg.DatabaseURL)
	assert.True(t, cfg.RequireOwner)
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todo.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
port = "9000"
database_url = "postgres://u:p@db:5432/todos"
require_owner = false
`), 0o600))

	t.Setenv("TODO_CONFIG", path)
	t.Setenv("PORT", "7000")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("REQUIRE_OWNER", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "7000", cfg.Port, "env wins over file")
	assert.Equal(t, "postgres://u:p@db:5432/todos", cfg.DatabaseURL)
	assert.False(t, cfg.RequireOwner)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		t.Setenv("TODO_CONFIG", filepath.Join(t.TempDir(), "nope.toml"))
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("bad REQUIRE_OWNER", func(t *testing.T) {
		t.Setenv("TODO_CONFIG", "")
		t.Setenv("REQUIRE_OWNER", "sometimes")
		_, err := Load()
		assert.ErrorContains(t, err, "REQUIRE_OWNER")
	})
}

func TestClientDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	assert.Equal(t, filepath.Join("/tmp/xdg", "todo"), ClientDir())
}
