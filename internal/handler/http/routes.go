package http

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/go-rest-session/models"
)

// Init builds the router. A non-zero requestTimeout bounds every request.
func (h *Handler) Init(requestTimeout time.Duration) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)
	if requestTimeout > 0 {
		router.Use(middleware.Timeout(requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/login", h.signIn)
		r.Post("/api/auth/refresh", h.refresh)
		r.Get("/api/version", h.getServerVersion)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/auth/logout", h.signOut)
		r.Get("/api/auth/me", h.me)
		r.Get("/api/items", h.listItems)
		r.With(requireRole(models.RoleAdmin, models.RoleEditor)).Post("/api/items", h.createItem)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
