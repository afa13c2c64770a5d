package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
)

// APIBase - адрес сервиса для клиента. Задается при сборке:
// go build -ldflags "-X github.com/BuzzLyutic/todo-app/internal/config.APIBase=https://..."
var APIBase = "http://localhost:5000"

const AppName = "todo"

type Config struct {
	Port         string `toml:"port"`
	DatabaseURL  string `toml:"database_url"`
	RequireOwner bool   `toml:"require_owner"`
}

// Load читает необязательный TOML файл из TODO_CONFIG, затем переменные окружения.
func Load() (Config, error) {
	cfg := Config{
		Port:         "5000",
		DatabaseURL:  "mongodb://localhost:27017/todoapp",
		RequireOwner: true,
	}

	if path := os.Getenv("TODO_CONFIG"); path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.DatabaseURL = getEnv("DATABASE_URL", cfg.DatabaseURL)
	if v := os.Getenv("REQUIRE_OWNER"); v != "" {
		required, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("REQUIRE_OWNER: %w", err)
		}
		cfg.RequireOwner = required
	}

	return cfg, nil
}

// ClientDir возвращает каталог клиента: $XDG_CONFIG_HOME/todo или ~/.config/todo.
func ClientDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
