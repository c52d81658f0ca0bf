// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	defaultChannelAddress   = "localhost:5002"
	defaultChannelPath      = "/ws"
	defaultEventBuffer      = 64
	defaultHandshakeTimeout = 45 * time.Second
	defaultAdapterTimeout   = 5 * time.Second
	defaultServerAddress    = "0.0.0.0:5002"
	defaultServerTimeout    = 30 * time.Second
	defaultVersion          = "dev"
	defaultLogLevel         = "info"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version:  defaultVersion,
			LogLevel: defaultLogLevel,
		},
		Channel: Channel{
			Address:          defaultChannelAddress,
			Path:             defaultChannelPath,
			EventBuffer:      defaultEventBuffer,
			HandshakeTimeout: defaultHandshakeTimeout,
		},
		Adapter: Adapter{
			RequestTimeout: defaultAdapterTimeout,
		},
		Server: Server{
			HTTPAddress:    defaultServerAddress,
			RequestTimeout: defaultServerTimeout,
		},
	}
}
