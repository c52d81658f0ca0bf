// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP surface of the feed server: the
// WebSocket endpoint, the publish endpoint and the version endpoint.
//
// Request tracing, access logging and panic recovery wrap every route; the
// JSON API routes additionally get gzip support.
package http
