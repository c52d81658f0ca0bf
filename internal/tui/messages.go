// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "time"

// NavigateTo switches the root model to the named route.
type NavigateTo struct {
	Page string
}

type stateChangedMsg struct{}

type connTickMsg time.Time

type serverVersionMsg struct {
	version string
	err     error
}

type copiedMsg struct{}

type copyFailedMsg struct {
	err error
}

type clearStatusMsg struct{}
