// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package channel owns the persistent connection to the feed server and
// translates transport activity into three application events: [Connected],
// [DataReceived] and [Disconnected].
//
// The wire protocol is a WebSocket carrying JSON text frames shaped as
// models.Message. The server opens a session with a "connect" frame, pushes
// "object_data" frames and may end the session with a "disconnect" frame.
// Unknown event names are ignored.
//
// Lifecycle of a [WSClient]:
//
//	Open ──> StateConnecting ──(connect frame)──> StateConnected
//	              │                                     │
//	              └──(dial/read failure, close)──> StateDisconnected <──┘
//
// StateDisconnected is terminal: a new session needs a new [Open]. There is no
// retry or reconnect at this layer. Every failure, whether the connection was
// never established or was lost later, is reported as a single Disconnected
// event and never as an error.
package channel
