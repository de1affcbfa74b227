package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/santosferr/ledger-api/internal/api"
	apiMiddleware "github.com/santosferr/ledger-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.Trace)

	accountHandler := api.NewAccountHandler(app.ledgerService)

	r.Route("/api", func(r chi.Router) {
		r.Post("/accounts", accountHandler.CreateAccount)
		r.Post("/deposits", accountHandler.Deposit)
		r.Post("/transfers", accountHandler.Transfer)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
