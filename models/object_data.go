// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// StatusNoHardhat is the status reported for a worker detected without a hardhat.
const StatusNoHardhat = "No Hardhat Detected"

// Well-known payload keys of a detection event.
const (
	FieldID         = "id"
	FieldStatus     = "status"
	FieldPosition   = "position"
	FieldConfidence = "confidence"
	FieldTimestamp  = "timestamp"
)

// Position is the centre of a detection bounding box, in frame pixels.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// ObjectData is the typed shape of a detection event as produced by the feed
// server. The client core never relies on it; it is used by the demo emitter
// and by the stop report view to pick well-known fields out of a [Payload].
type ObjectData struct {
	ID         string   `json:"id"`
	Status     string   `json:"status"`
	Position   Position `json:"position"`
	Confidence float64  `json:"confidence"`
	// Timestamp is unix time in milliseconds.
	Timestamp int64 `json:"timestamp"`
}

// Time converts Timestamp to a time.Time.
func (o ObjectData) Time() time.Time {
	return time.UnixMilli(o.Timestamp)
}

// ToPayload converts o to the untyped form sent over the channel.
func (o ObjectData) ToPayload() Payload {
	return Payload{
		FieldID:     o.ID,
		FieldStatus: o.Status,
		FieldPosition: map[string]any{
			"x": o.Position.X,
			"y": o.Position.Y,
		},
		FieldConfidence: o.Confidence,
		FieldTimestamp:  o.Timestamp,
	}
}
