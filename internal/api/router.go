// internal/api/router.go
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"financas/internal/api/handler"
)

// NewRouter sets up and returns a new HTTP router.
func NewRouter(entryHandler *handler.EntryHandler, userHandler *handler.UserHandler, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	// Global middlewares
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(handler.DefaultTimeout))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	r.Route("/api/usuarios", func(r chi.Router) {
		r.Post("/", userHandler.Register)
		r.Post("/autenticar", userHandler.Authenticate)
		r.Get("/{id}/saldo", userHandler.Balance)
	})

	r.Route("/api/lancamentos", func(r chi.Router) {
		r.Post("/", entryHandler.Create)
		r.Get("/", entryHandler.Search)
		r.Put("/{id}", entryHandler.Update)
		r.Put("/{id}/atualizar-status", entryHandler.UpdateStatus)
		r.Delete("/{id}", entryHandler.Delete)
	})

	return r
}
