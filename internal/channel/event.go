// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package channel

import "github.com/MKhiriev/go-stop-report/models"

// Event is one application-level notification emitted by a [Client].
// The set of implementations is closed: [Connected], [DataReceived] and
// [Disconnected].
type Event interface {
	isEvent()
}

// Connected is emitted once when the server confirms the session.
type Connected struct {
	// ConnectionID is the session id assigned by the server.
	ConnectionID string
}

// DataReceived carries one payload pushed by the server.
type DataReceived struct {
	Payload models.Payload
}

// Disconnected is emitted at most once per connection, whatever the cause.
type Disconnected struct{}

func (Connected) isEvent()    {}
func (DataReceived) isEvent() {}
func (Disconnected) isEvent() {}
