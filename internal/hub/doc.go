// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package hub fans feed frames out to WebSocket sessions.
//
// A single goroutine (Run) owns the session set. Every session gets a
// "connect" frame carrying its sid as soon as it is upgraded, then every
// broadcast frame in order. Sessions whose send buffer is full are dropped.
// When Run's context is cancelled each session receives a "disconnect" frame
// followed by a close frame.
package hub
