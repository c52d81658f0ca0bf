// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-stop-report/internal/logger"
	"github.com/MKhiriev/go-stop-report/internal/service"
)

// SessionServer attaches a WebSocket session to the feed.
type SessionServer interface {
	ServeWS(w http.ResponseWriter, r *http.Request)
}

type Handler struct {
	services *service.Services
	sessions SessionServer

	logger *logger.Logger
}

func NewHandler(services *service.Services, sessions SessionServer, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		sessions: sessions,
		logger:   logger,
	}
}
