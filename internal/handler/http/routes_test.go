// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoutes(t *testing.T) {
	sessions := &mockSessions{}
	feed := &mockFeedSvc{}
	router := newTestHandler(&mockAppInfoSvc{version: "test-version"}, feed, sessions).Init()

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
		wantBody   string
	}{
		{name: "index", method: http.MethodGet, path: "/", wantStatus: http.StatusOK, wantBody: indexBody},
		{name: "websocket", method: http.MethodGet, path: "/ws", wantStatus: http.StatusTeapot},
		{name: "version", method: http.MethodGet, path: "/api/version", wantStatus: http.StatusOK, wantBody: `"test-version"`},
		{name: "publish", method: http.MethodPost, path: "/api/object-data", body: `{"a":1}`, wantStatus: http.StatusAccepted},
		{name: "wrong method is hidden", method: http.MethodDelete, path: "/api/version", wantStatus: http.StatusNotFound},
		{name: "publish with GET", method: http.MethodGet, path: "/api/object-data", wantStatus: http.StatusNotFound},
		{name: "unknown route", method: http.MethodGet, path: "/nope", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
			if tt.wantBody != "" {
				assert.Contains(t, rec.Body.String(), tt.wantBody)
			}
		})
	}

	assert.Equal(t, 1, sessions.calls)
	require.Len(t, feed.got, 1)
}

func TestRoutes_RecoversFromPanic(t *testing.T) {
	router := newTestHandler(nil, nil, nil).Init()

	// AppInfoService is nil, so the handler panics
	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestRoutes_WebSocketUnavailable(t *testing.T) {
	router := newTestHandler(nil, nil, nil).Init()

	req := httptest.NewRequest(http.MethodGet, "/ws", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
