// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-stop-report/internal/logger"
	"github.com/MKhiriev/go-stop-report/internal/service"
	"github.com/MKhiriev/go-stop-report/models"
)

// ---- Mock: AppInfoService ----

type mockAppInfoSvc struct {
	version string
}

func (m *mockAppInfoSvc) GetAppVersion(_ context.Context) string {
	return m.version
}

// ---- Mock: FeedService ----

type mockFeedSvc struct {
	got  []models.Payload
	resp models.PublishResponse
	err  error
}

func (m *mockFeedSvc) Publish(_ context.Context, p models.Payload) (models.PublishResponse, error) {
	m.got = append(m.got, p)
	if m.err != nil {
		return models.PublishResponse{}, m.err
	}
	if m.resp.Payload == nil {
		return models.PublishResponse{Payload: p, Clients: m.resp.Clients}, nil
	}
	return m.resp, nil
}

// ---- Mock: SessionServer ----

type mockSessions struct {
	calls int
}

func (m *mockSessions) ServeWS(w http.ResponseWriter, _ *http.Request) {
	m.calls++
	w.WriteHeader(http.StatusTeapot)
}

// newTestHandler создаёт Handler с nop-логгером и переданными моками.
func newTestHandler(appInfo service.AppInfoService, feed service.FeedService, sessions SessionServer) *Handler {
	return NewHandler(
		&service.Services{AppInfoService: appInfo, FeedService: feed},
		sessions,
		logger.Nop(),
	)
}
