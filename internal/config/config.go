// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by both
// binaries. It is populated by merging flags, environment variables, an
// optional config file and defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to nested env tag lookups (caarlos0/env).
//   - env: environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-level settings: version, logging.
	App App `envPrefix:"APP_"`

	// Channel holds the feed channel settings used by the client.
	Channel Channel `envPrefix:"CHANNEL_"`

	// Adapter holds settings of the client's HTTP adapter to the feed server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Server holds settings of the feed server.
	Server Server `envPrefix:"SERVER_"`

	// ConfigFilePath is the optional path to a config file.
	// Env: CONFIG, flags: -c / -config.
	ConfigFilePath string `env:"CONFIG"`
}

// App holds process-level settings.
type App struct {
	// Version is reported by the feed server on /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// LogFile is the client log file. The TUI owns the terminal, so the
	// client never logs to stdout.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Channel holds the settings of the persistent feed connection.
type Channel struct {
	// Address of the feed endpoint: "host:port" or a ws://, wss://, http://
	// or https:// URL.
	// Env: CHANNEL_ADDRESS
	Address string `env:"ADDRESS"`

	// Path appended to a bare host:port address.
	// Env: CHANNEL_PATH
	Path string `env:"PATH"`

	// EventBuffer is the capacity of the client event queue.
	// Env: CHANNEL_EVENT_BUFFER
	EventBuffer int `env:"EVENT_BUFFER"`

	// HandshakeTimeout bounds the WebSocket opening handshake.
	// Env: CHANNEL_HANDSHAKE_TIMEOUT
	HandshakeTimeout time.Duration `env:"HANDSHAKE_TIMEOUT"`
}

// Adapter holds the settings of the client's request/response adapter.
type Adapter struct {
	// BaseURL of the feed server HTTP API. Derived from Channel.Address
	// when empty.
	// Env: ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout bounds every outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Server holds the feed server settings.
type Server struct {
	// HTTPAddress is the listen address in "host:port" form.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds handling of plain HTTP requests.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// DemoInterval enables the synthetic detection emitter when positive.
	// Env: SERVER_DEMO_INTERVAL
	DemoInterval time.Duration `env:"DEMO_INTERVAL"`
}

// GetStructuredConfig loads and merges the configuration from args (usually
// os.Args[1:]), the environment, the optional config file and defaults.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(args).
		withEnv().
		withFile().
		withDefaults().
		build()
}
