// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-stop-report/internal/logger"
	"github.com/MKhiriev/go-stop-report/internal/utils"
	"github.com/MKhiriev/go-stop-report/models"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	if _, err := utils.WriteJSON(w, models.VersionResponse{Version: serverVersion}, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("write version response")
	}
}
