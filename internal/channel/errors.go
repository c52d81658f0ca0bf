// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package channel

import "errors"

var (
	// ErrEmptyAddress is logged when Open is called without an endpoint.
	ErrEmptyAddress = errors.New("channel address is empty")
	// ErrUnsupportedScheme is logged for endpoint URLs that are not
	// ws, wss, http or https.
	ErrUnsupportedScheme = errors.New("unsupported channel url scheme")
)
