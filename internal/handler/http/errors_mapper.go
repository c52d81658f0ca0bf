// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-stop-report/internal/app"
	"github.com/MKhiriev/go-stop-report/internal/hub"
	"github.com/MKhiriev/go-stop-report/internal/service"
)

var errorStatusMap = map[error]int{
	ErrPayloadNotObject: http.StatusBadRequest,
	ErrPayloadTooLarge:  http.StatusRequestEntityTooLarge,

	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrNoBroadcaster:       http.StatusServiceUnavailable,

	hub.ErrHubStopped: http.StatusServiceUnavailable,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError returns the response text for err. Client errors carry
// their own text; server errors get a fixed message.
func messageFromError(err error, status int) string {
	switch {
	case status == http.StatusServiceUnavailable:
		return app.MsgFeedUnavailable
	case status >= http.StatusInternalServerError:
		return app.MsgInternalServerError
	default:
		return err.Error()
	}
}
