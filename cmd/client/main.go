package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/BuzzLyutic/todo-app/internal/client"
	"github.com/BuzzLyutic/todo-app/internal/config"
	"github.com/BuzzLyutic/todo-app/internal/identity"
	"github.com/BuzzLyutic/todo-app/internal/ui"
)

func main() {
	debug := flag.Bool("debug", false, "write debug logs")
	flag.Parse()

	dir := config.ClientDir()
	if err := os.MkdirAll(dir, 0o700); err != nil {
		fmt.Fprintf(os.Stderr, "create %s: %v\n", dir, err)
		os.Exit(1)
	}

	// Терминал занят интерфейсом, поэтому логи пишем в файл
	logger, err := newLogger(filepath.Join(dir, "client.log"), *debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ownerID, err := identity.Load(dir)
	if err != nil {
		logger.Error("load owner id", zap.Error(err))
		fmt.Fprintf(os.Stderr, "load owner id: %v\n", err)
		os.Exit(1)
	}
	logger.Info("client started", zap.String("api", config.APIBase), zap.String("owner_id", ownerID))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := ui.Run(ctx, client.New(config.APIBase), ownerID, logger); err != nil {
		logger.Error("ui stopped", zap.Error(err))
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newLogger(path string, debug bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}
