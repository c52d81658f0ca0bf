// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to the HTTP API of the feed server.
//
// The streaming feed itself goes through package channel; this package covers
// the plain request/response endpoints. Error values defined in errors.go are
// mapped from HTTP status codes by mapHTTPError so callers can use
// [errors.Is] (e.g. [ErrNotFound] for 404).
package adapter

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter is the client side of the feed server HTTP API.
type ServerAdapter interface {
	// GetVersion returns the version string reported by the feed server.
	GetVersion(ctx context.Context) (string, error)
}
