// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// compressionLevel is the gzip level used for responses.
const compressionLevel = 5

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer, middleware.Compress(compressionLevel))
	if h.settings.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.settings.RequestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Use(h.withAuthRateLimit())
		r.Post("/users", h.register)
		r.Post("/login", h.login)
	})
	router.Get("/version", h.getServerVersion)

	// routes with authorization
	router.Route("/transactions", func(r chi.Router) {
		r.Use(h.auth)
		r.Post("/", h.createTransaction)
		r.Get("/", h.listTransactions)
		r.Get("/{id}", h.getTransaction)
		r.Patch("/{id}", h.updateTransaction)
		r.Delete("/{id}", h.deleteTransaction)
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
