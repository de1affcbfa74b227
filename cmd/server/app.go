package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/santosferr/ledger-api/internal/config"
	"github.com/santosferr/ledger-api/internal/platform/memory"
	"github.com/santosferr/ledger-api/internal/platform/postgres"
	"github.com/santosferr/ledger-api/internal/service"
	"github.com/santosferr/ledger-api/internal/store"
)

// application holds the shared application dependencies to simplify wiring
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	// db is nil when running on the in-memory store.
	db *sql.DB

	accountStore  store.AccountStore
	ledgerService service.LedgerService
}

// newApplication creates an application instance with all dependencies
// initialized. With useMemory set the ledger runs entirely in process,
// which is the mode used for local development and tests.
func newApplication(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	useMemory bool,
) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	if useMemory {
		app.accountStore = memory.NewMemoryAccountStore()
		logger.Info("Using in-memory account store")
	} else {
		db, err := setupDatabase(ctx, cfg, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to set up database: %w", err)
		}
		app.db = db
		app.accountStore = postgres.NewPostgresAccountStore(db, logger)
	}

	ledgerService, err := service.NewLedgerService(app.accountStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create ledger service: %w", err)
	}
	app.ledgerService = ledgerService

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
