package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/davargas/usuario-crud/internal/config"
	"github.com/davargas/usuario-crud/internal/repository/sqlite"
)

func main() {
	logOpts := &slog.HandlerOptions{Level: slog.LevelInfo}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, logOpts)))

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	db, err := sqlite.New(cfg.DatabasePath)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Migrate(context.Background()); err != nil {
		slog.Error("failed to apply schema", "error", err)
		os.Exit(1)
	}

	slog.Info("database ready", "path", cfg.DatabasePath)
}
