// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// VersionResponse is the body of GET /api/version.
type VersionResponse struct {
	Version string `json:"version"`
}

// PublishResponse is the body returned after a payload was accepted for
// broadcast.
type PublishResponse struct {
	// Payload is the payload as it was sent to clients, with id and
	// timestamp filled in.
	Payload Payload `json:"payload"`

	// Clients is the number of sessions the payload was queued for.
	Clients int `json:"clients"`
}
