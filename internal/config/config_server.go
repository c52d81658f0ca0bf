// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ServerApp holds feed server process settings.
type ServerApp struct {
	// Version is reported on /api/version.
	Version string
	// LogLevel is the zerolog level name.
	LogLevel string
}

// ServerHTTP holds the listener settings.
type ServerHTTP struct {
	// HTTPAddress is the listen address.
	HTTPAddress string
	// RequestTimeout bounds plain HTTP request handling.
	RequestTimeout time.Duration
	// DemoInterval enables the demo emitter when positive.
	DemoInterval time.Duration
}

// ServerConfig is the feed server view of [StructuredConfig].
type ServerConfig struct {
	App    ServerApp
	Server ServerHTTP
}

// GetServerConfig builds and validates the feed server configuration.
func GetServerConfig(args []string) (*ServerConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newServerConfig(cfg)
}

func newServerConfig(cfg *StructuredConfig) (*ServerConfig, error) {
	serverCfg := &ServerConfig{
		App: ServerApp{
			Version:  cfg.App.Version,
			LogLevel: cfg.App.LogLevel,
		},
		Server: ServerHTTP{
			HTTPAddress:    cfg.Server.HTTPAddress,
			RequestTimeout: cfg.Server.RequestTimeout,
			DemoInterval:   cfg.Server.DemoInterval,
		},
	}

	return serverCfg, serverCfg.validate()
}
