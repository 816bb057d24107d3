package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()

	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)
	router.Use(h.withGZip)
	router.Use(h.withQueryLog)
	router.Use(h.withSession)
	router.Use(h.withUser)
	router.Use(h.withLanguage)

	router.Get("/", h.index)

	router.Group(func(r chi.Router) {
		r.Post("/api/user/register", h.register)
		r.Post("/api/user/login", h.login)
	})

	router.Get("/api/messages", h.getMessages)
	router.Post("/api/messages", h.queueMessage)
	router.Get("/api/version", h.getServerVersion)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
