// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal presentation layer of the stop report client.
//
// It renders the state kept by [service.StateSync]: a loading spinner until
// the first payload arrives, then the latest payload in one of the routed
// views. It never writes the state.
package tui
