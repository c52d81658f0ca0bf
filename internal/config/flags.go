// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"time"
)

// NetAddress holds a host and port. It implements flag.Value.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the command-line flags in args into a sparse
// [StructuredConfig]; flags that are not given leave their fields zero.
//
// Flags:
//
//	-a feed endpoint address in format [host]:[port] (client)
//	-path feed endpoint path (client)
//	-event-buffer client event queue capacity
//	-handshake-timeout websocket handshake timeout (e.g. "10s")
//	-base-url feed server HTTP API base URL (client)
//	-request-timeout request timeout (e.g. "5s")
//	-listen listen address in format [host]:[port] (server)
//	-demo-interval synthetic detection interval, 0 disables (server)
//	-version application version reported by the server
//	-log-level log level
//	-log-file client log file path
//	-c/-config config file path
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("stop-report", flag.ContinueOnError)

	var channelAddress, listenAddress NetAddress
	var channelPath, baseURL, version, logLevel, logFile, configPath string
	var eventBuffer int
	var handshakeTimeout, requestTimeout, demoInterval time.Duration

	fs.Var(&channelAddress, "a", "Feed endpoint address host:port")
	fs.StringVar(&channelPath, "path", "", "Feed endpoint path")
	fs.IntVar(&eventBuffer, "event-buffer", 0, "Client event queue capacity")
	fs.DurationVar(&handshakeTimeout, "handshake-timeout", 0, "WebSocket handshake timeout (e.g., 10s)")
	fs.StringVar(&baseURL, "base-url", "", "Feed server HTTP API base URL")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 5s, 1m)")
	fs.Var(&listenAddress, "listen", "Server listen address host:port")
	fs.DurationVar(&demoInterval, "demo-interval", 0, "Synthetic detection interval, 0 disables")
	fs.StringVar(&version, "version", "", "Application version")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&logFile, "log-file", "", "Client log file path")
	fs.StringVar(&configPath, "c", "", "Config file path")
	fs.StringVar(&configPath, "config", "", "Config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Version:  version,
			LogLevel: logLevel,
			LogFile:  logFile,
		},
		Channel: Channel{
			Address:          channelAddress.String(),
			Path:             channelPath,
			EventBuffer:      eventBuffer,
			HandshakeTimeout: handshakeTimeout,
		},
		Adapter: Adapter{
			BaseURL:        baseURL,
			RequestTimeout: requestTimeout,
		},
		Server: Server{
			HTTPAddress:    listenAddress.String(),
			RequestTimeout: requestTimeout,
			DemoInterval:   demoInterval,
		},
		ConfigFilePath: configPath,
	}, nil
}

// String returns the canonical host:port form, or "" when unset.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses s of form host:port. The host may be empty (all interfaces),
// a host name or an IP address; the port must be in 1..65535.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	a.Host = host
	a.Port = port
	return nil
}
