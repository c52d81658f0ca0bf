// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// Event names carried in [Message.Event].
const (
	// EventConnect is sent by the server as the first frame of a session.
	EventConnect = "connect"
	// EventObjectData carries one [Payload].
	EventObjectData = "object_data"
	// EventDisconnect is sent by the server right before it ends a session.
	EventDisconnect = "disconnect"
)

// Message is the envelope of every text frame exchanged over the feed channel.
type Message struct {
	// Event is the logical event name (see the Event* constants).
	Event string `json:"event"`

	// Data is the event body, left undecoded until the event is recognised.
	Data json.RawMessage `json:"data,omitempty"`
}

// ConnectData is the body of a [EventConnect] frame.
type ConnectData struct {
	// SID is the session id assigned by the server.
	SID string `json:"sid"`
}
