// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package hub

import "errors"

// ErrHubStopped is returned by Broadcast once Run has returned.
var ErrHubStopped = errors.New("hub is stopped")
