// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the feed server's HTTP listener.
//
// It owns the listener lifecycle: startup, shutdown on context cancellation
// or a stop signal, and a bounded graceful drain of in-flight requests.
// WebSocket sessions are hijacked connections and are closed by the hub, not
// by this package.
package server
