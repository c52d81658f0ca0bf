// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the stop report client runtime.
//
// It opens the feed channel, wires the client services and the terminal UI
// and guarantees that the state subscription is torn down on every exit
// path.
package client
