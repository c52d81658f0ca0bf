// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrPayloadNotObject is returned when a publish request body is not a
	// single JSON object.
	ErrPayloadNotObject = errors.New("request body must be a JSON object")

	// ErrPayloadTooLarge is returned when a publish request body exceeds
	// maxPayloadSize.
	ErrPayloadTooLarge = errors.New("request body is too large")
)
