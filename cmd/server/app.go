package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/mplath/tasknest/internal/config"
	"github.com/mplath/tasknest/internal/platform/postgres"
	"github.com/mplath/tasknest/internal/service/auth"
	"github.com/mplath/tasknest/internal/store"
)

// application holds the shared application dependencies so wiring happens in
// one place and cleanup on shutdown covers everything.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	// Stores (interfaces, so handlers never see the driver)
	userStore store.UserStore
	taskStore store.TaskStore

	// Services
	jwtService auth.JWTService
	hasher     auth.PasswordHasher
}

// newApplication creates an application instance with all dependencies
// initialized. Configuration, logging, and the database connection must be
// established by the caller first.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	app.hasher = auth.NewBcryptHasher(cfg.Auth)

	app.userStore = postgres.NewUserStore(db, logger)
	app.taskStore = postgres.NewTaskStore(db, logger)

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
