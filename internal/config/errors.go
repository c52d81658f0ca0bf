// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned when a role-specific view is incomplete.
var (
	// ErrInvalidChannelConfigs indicates an unusable feed channel setting
	// (empty address or non-positive event buffer).
	ErrInvalidChannelConfigs = errors.New("invalid channel configuration")
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, a zero request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidServerConfigs indicates invalid feed server settings
	// (for example, an empty listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAppConfigs indicates invalid process-level settings.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrUnsupportedConfigFormat is returned for config files with an
	// unknown extension.
	ErrUnsupportedConfigFormat = errors.New("unsupported config file format")
)
