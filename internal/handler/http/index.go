// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-stop-report/internal/app"
)

const indexBody = app.MsgServerRunning

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(indexBody))
}

func (h *Handler) serveWS(w http.ResponseWriter, r *http.Request) {
	if h.sessions == nil {
		http.Error(w, app.MsgFeedUnavailable, http.StatusServiceUnavailable)
		return
	}
	h.sessions.ServeWS(w, r)
}
