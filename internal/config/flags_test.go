// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{name: "empty address", addr: NetAddress{}, expected: ""},
		{name: "localhost with port", addr: NetAddress{Host: "localhost", Port: 5002}, expected: "localhost:5002"},
		{name: "only port no host", addr: NetAddress{Port: 5002}, expected: ":5002"},
		{name: "ipv6", addr: NetAddress{Host: "::1", Port: 80}, expected: "[::1]:80"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		errorMsg     string
		expectedAddr NetAddress
	}{
		{name: "valid localhost", input: "localhost:5002", expectedAddr: NetAddress{Host: "localhost", Port: 5002}},
		{name: "valid IPv4", input: "127.0.0.1:9090", expectedAddr: NetAddress{Host: "127.0.0.1", Port: 9090}},
		{name: "host name", input: "feed.example.com:443", expectedAddr: NetAddress{Host: "feed.example.com", Port: 443}},
		{name: "all interfaces", input: ":5002", expectedAddr: NetAddress{Port: 5002}},
		{name: "missing colon", input: "localhost5002", errorMsg: "need address in a form `host:port`"},
		{name: "too many colons", input: "host:port:extra", errorMsg: "need address in a form `host:port`"},
		{name: "non-numeric port", input: "localhost:abc", errorMsg: "invalid syntax"},
		{name: "zero port", input: "localhost:0", errorMsg: "port number must be in range"},
		{name: "port too large", input: "localhost:70000", errorMsg: "port number must be in range"},
		{name: "empty string", input: "", errorMsg: "need address in a form `host:port`"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr := &NetAddress{}
			err := addr.Set(tt.input)

			if tt.errorMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedAddr, *addr)
		})
	}
}

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := ParseFlags([]string{
		"-a", "localhost:5002",
		"-path", "/feed",
		"-event-buffer", "32",
		"-handshake-timeout", "10s",
		"-base-url", "http://localhost:5002",
		"-request-timeout", "3s",
		"-listen", "0.0.0.0:6000",
		"-demo-interval", "2s",
		"-version", "1.0.0",
		"-log-level", "debug",
		"-log-file", "/tmp/client.log",
		"-c", "/etc/stop-report.yaml",
	})
	require.NoError(t, err)

	assert.Equal(t, "localhost:5002", cfg.Channel.Address)
	assert.Equal(t, "/feed", cfg.Channel.Path)
	assert.Equal(t, 32, cfg.Channel.EventBuffer)
	assert.Equal(t, 10*time.Second, cfg.Channel.HandshakeTimeout)
	assert.Equal(t, "http://localhost:5002", cfg.Adapter.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 3*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "0.0.0.0:6000", cfg.Server.HTTPAddress)
	assert.Equal(t, 2*time.Second, cfg.Server.DemoInterval)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Equal(t, "/tmp/client.log", cfg.App.LogFile)
	assert.Equal(t, "/etc/stop-report.yaml", cfg.ConfigFilePath)
}

func TestParseFlags_ConfigAlias(t *testing.T) {
	cfg, err := ParseFlags([]string{"-config", "/path/to/config.json"})
	require.NoError(t, err)
	assert.Equal(t, "/path/to/config.json", cfg.ConfigFilePath)
}

func TestParseFlags_NoFlags(t *testing.T) {
	cfg, err := ParseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_InvalidAddress(t *testing.T) {
	_, err := ParseFlags([]string{"-a", "nope"})
	assert.Error(t, err)
}
