// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyPayload      = errors.New("payload must be a non-empty JSON object")
	ErrInvalidID         = errors.New("id must be a non-empty string")
	ErrInvalidStatus     = errors.New("status must be a non-empty string")
	ErrInvalidPosition   = errors.New("position must be an object with numeric x and y")
	ErrInvalidConfidence = errors.New("confidence must be a number between 0 and 1")
	ErrInvalidTimestamp  = errors.New("timestamp must be a non-negative number of milliseconds")
)
