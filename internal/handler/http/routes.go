// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, withLogging)

	router.Get("/", h.index)
	router.Get("/ws", h.serveWS)

	// JSON API
	router.Group(func(r chi.Router) {
		r.Use(withGZip)
		r.Get("/api/version", h.getServerVersion)
		r.Post("/api/object-data", h.publishObjectData)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
