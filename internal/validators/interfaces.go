// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks detection payloads before the feed server
// broadcasts them.
//
// A Validator accepts an arbitrary value and an optional list of field names.
// When fields are given only those are checked; otherwise a default set for
// the value's type is used.
package validators

import "context"

// Validator validates the provided input, optionally restricted to the
// named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
