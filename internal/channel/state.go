// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package channel

// ConnectionState is the lifecycle state of one connection.
type ConnectionState int

const (
	// StateConnecting means the connection attempt is in progress or the
	// session has not been confirmed by the server yet.
	StateConnecting ConnectionState = iota

	// StateConnected means the server confirmed the session.
	StateConnected

	// StateDisconnected is terminal: the connection failed, was lost or
	// was closed.
	StateDisconnected
)

// String returns the string representation of a ConnectionState.
func (s ConnectionState) String() string {
	switch s {
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	case StateDisconnected:
		return "disconnected"
	default:
		return "unknown"
	}
}
