// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package channel

//go:generate mockgen -source=interfaces.go -destination=../mock/channel_client_mock.go -package=mock

// Client is a handle on one persistent connection.
type Client interface {
	// Events returns the stream of lifecycle and data events, in the order
	// they were produced. The channel is closed by Close.
	Events() <-chan Event

	// State returns the current connection state.
	State() ConnectionState

	// Close releases the connection. Once it returns no further event is
	// emitted. Calling Close more than once is safe.
	Close() error
}
