package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.With(h.withHashCheck).Post("/api/auth/register", h.register)
		r.With(h.withHashCheck).Post("/api/auth/login", h.login)
		r.Get("/api/version/", h.getServerVersion)

		// signed URLs carry their own authorization
		r.Get("/api/storage/objects/*", h.getObject)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/auth/logout", h.logout)

		r.Get("/api/notes/", h.listNotes)
		r.With(h.withHashCheck).Post("/api/notes/", h.createNote)
		r.Delete("/api/notes/{id}", h.deleteNote)

		r.With(h.withHashCheck).Put("/api/storage/objects/*", h.putObject)
		r.With(h.withHashCheck).Post("/api/storage/url", h.getDownloadURL)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
