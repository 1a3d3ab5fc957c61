// Package router собирает HTTP-маршруты сервиса.
package router

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/BuzzLyutic/todo-api/internal/handler"
)

// New настраивает chi-роутер и регистрирует все эндпоинты
func New(todos *handler.TodoHandler, health *handler.HealthHandler) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// API открыт для любых origin
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Origin", "Content-Type", "Accept"},
		MaxAge:         300,
	}))

	r.Get("/healthz", health.Live)
	r.Get("/readyz", health.Ready)
	r.Get("/stats", todos.Stats)

	r.Route("/todos", func(r chi.Router) {
		r.Post("/", todos.Create)
		r.Get("/", todos.List)
		r.Get("/{id}", todos.Get)
		r.Put("/{id}", todos.Update)
		r.Delete("/{id}", todos.Delete)
	})

	return r
}
