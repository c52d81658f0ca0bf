// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AppState is the client-local record of readiness and of the most recently
// received payload. It is what the presentation layer renders.
//
// Ready becomes true together with the first assignment of Latest and never
// reverts for the lifetime of a session. The zero value is the initial
// "loading" state.
type AppState struct {
	// Ready reports whether at least one payload has been received.
	Ready bool

	// Latest is the most recently received payload, nil until Ready.
	Latest Payload
}
