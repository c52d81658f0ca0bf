// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils holds small helpers shared by the feed server and the
// terminal client: typed context keys, JSON response writing, the resty
// client wrapper and id generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys, so values stored by this
// package cannot collide with string keys of other packages.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

// TraceIDCtxKey is the context key of the request trace id.
//
//	ctx := context.WithValue(ctx, utils.TraceIDCtxKey, "f3c1...")
var TraceIDCtxKey = contextKey("traceID")

// GetTraceIDFromContext returns the trace id stored under [TraceIDCtxKey].
// ok is false when the value is missing or is not a non-empty string.
func GetTraceIDFromContext(ctx context.Context) (string, bool) {
	traceID, ok := ctx.Value(TraceIDCtxKey).(string)
	return traceID, ok && traceID != ""
}
