package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/handlers"
	"go.uber.org/zap"

	"github.com/BuzzLyutic/plm-api/internal/model"
)

type Handlers struct {
	Auth          *Authenticator
	Tasks         *TaskHandler
	PersonalNotes *PersonalNoteHandler
	Emails        *EmailHandler
	Schema        *SchemaHandler
	Health        *HealthHandler
}

// NewRouter mounts every route under /v1. An empty allowedOrigins accepts any origin.
func NewRouter(h Handlers, logger *zap.Logger, allowedOrigins []string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(logger))
	r.Use(middleware.Recoverer)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/healthcheck", h.Health.Check)

		r.Group(func(r chi.Router) {
			r.Use(h.Auth.Middleware)

			r.With(RequirePermission(model.PermissionAdmin)).Get("/schema/versions", h.Schema.Versions)

			r.Group(func(r chi.Router) {
				r.Use(RequirePermission(model.PermissionRead))

				r.Route("/tasks/{userId}", func(r chi.Router) {
					r.Get("/", h.Tasks.List)
					r.Post("/", h.Tasks.Create)

					r.Route("/{taskId}", func(r chi.Router) {
						r.Get("/", h.Tasks.Get)
						r.Patch("/", h.Tasks.Update)
						r.Delete("/", h.Tasks.Delete)

						r.Route("/personal-notes", func(r chi.Router) {
							r.Get("/", h.PersonalNotes.List)
							r.Post("/", h.PersonalNotes.Create)
							r.Get("/{personalNoteId}", h.PersonalNotes.Get)
							r.Patch("/{personalNoteId}", h.PersonalNotes.Update)
							r.Delete("/{personalNoteId}", h.PersonalNotes.Delete)
						})
					})
				})

				r.Post("/emails/{userId}/{taskId}", h.Emails.Send)
			})
		})
	})

	cors := handlers.CORS(
		handlers.AllowedOrigins(allowedOrigins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Authorization", "Content-Type"}),
	)
	return cors(r)
}
