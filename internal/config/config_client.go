// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// ClientApp holds client process settings.
type ClientApp struct {
	// LogLevel is the zerolog level name.
	LogLevel string
	// LogFile is where the client writes its logs.
	LogFile string
}

// ClientChannel holds the settings of the feed connection.
type ClientChannel struct {
	// Address is the feed endpoint address.
	Address string
	// Path is appended to a bare host:port address.
	Path string
	// EventBuffer is the event queue capacity.
	EventBuffer int
	// HandshakeTimeout bounds the opening handshake.
	HandshakeTimeout time.Duration
}

// ClientAdapter holds the settings of the HTTP adapter.
type ClientAdapter struct {
	// BaseURL is the feed server HTTP API root.
	BaseURL string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
}

// ClientConfig is the client view of [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Channel ClientChannel
	Adapter ClientAdapter
}

// GetClientConfig builds and validates the client configuration from args
// (usually os.Args[1:]), the environment and the optional config file.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	baseURL := cfg.Adapter.BaseURL
	if baseURL == "" {
		baseURL = httpBaseURL(cfg.Channel.Address)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			LogLevel: cfg.App.LogLevel,
			LogFile:  cfg.App.LogFile,
		},
		Channel: ClientChannel{
			Address:          cfg.Channel.Address,
			Path:             cfg.Channel.Path,
			EventBuffer:      cfg.Channel.EventBuffer,
			HandshakeTimeout: cfg.Channel.HandshakeTimeout,
		},
		Adapter: ClientAdapter{
			BaseURL:        baseURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
	}

	return clientCfg, clientCfg.validate()
}

// httpBaseURL derives the HTTP API root from a channel address: the scheme is
// switched from ws(s) to http(s) and the path is dropped.
func httpBaseURL(address string) string {
	address = strings.TrimSpace(address)
	if address == "" {
		return ""
	}
	if !strings.Contains(address, "://") {
		return "http://" + address
	}

	u, err := url.Parse(address)
	if err != nil {
		return ""
	}
	switch u.Scheme {
	case "ws":
		u.Scheme = "http"
	case "wss":
		u.Scheme = "https"
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u.String()
}
