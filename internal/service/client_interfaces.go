// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-stop-report/internal/channel"
	"github.com/MKhiriev/go-stop-report/models"
)

// StateSync keeps the client [models.AppState] in step with the events of one
// channel client. It is the only writer of that state.
type StateSync interface {
	// Start launches the goroutine that consumes channel events. Calling it
	// more than once has no effect.
	Start()

	// GetState returns a snapshot of the current state. The payload is a
	// copy and may be modified by the caller.
	GetState() models.AppState

	// Changes is signalled after every state mutation. Signals are
	// coalesced: a reader that falls behind sees one pending signal.
	// The channel is closed by Teardown.
	Changes() <-chan struct{}

	// ConnectionState reports the state of the underlying channel client.
	ConnectionState() channel.ConnectionState

	// Teardown releases the subscription. After it returns no event mutates
	// the state. It is safe to call more than once and before Start.
	Teardown()
}

// ClientAppInfoService exposes build metadata of the client and of the feed
// server it talks to.
type ClientAppInfoService interface {
	// BuildInfo returns the client build metadata.
	BuildInfo() models.AppBuildInfo

	// ServerVersion asks the feed server for its version.
	ServerVersion(ctx context.Context) (string, error)
}
