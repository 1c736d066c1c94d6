// Package main implements the entry point for the tasknest server,
// a task-management backend with JWT cookie sessions.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/mplath/tasknest/internal/config"
	"github.com/mplath/tasknest/internal/platform/logger"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
}

// run wires configuration, logging, the database, and the application
// together, then hands off to the server loop.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("Server configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel))

	db, err := setupDatabase(cfg, appLogger)
	if err != nil {
		return fmt.Errorf("failed to set up database: %w", err)
	}

	app, err := newApplication(cfg, appLogger, db)
	if err != nil {
		closeErr := db.Close()
		if closeErr != nil {
			appLogger.Error("Error closing database connection", "error", closeErr)
		}
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run(context.Background())
}
