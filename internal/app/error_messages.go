// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the feed
// server handlers.
//
// All Msg* constants are human-readable strings written into HTTP response
// bodies. Server-side failures are reported with these fixed messages so
// internal error text never reaches the caller.
package app

const (
	// MsgServerRunning is the body of the index page.
	MsgServerRunning = "Object Detection Server Running"

	// MsgInvalidDataProvided prefixes rejections of a published payload.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgFeedUnavailable is returned when the hub is stopped or not wired.
	MsgFeedUnavailable = "feed is not available"
)
