// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// fileConfig is the on-disk layout shared by every supported format.
type fileConfig struct {
	App struct {
		Version  string `json:"version" toml:"version" yaml:"version"`
		LogLevel string `json:"log_level" toml:"log_level" yaml:"log_level"`
		LogFile  string `json:"log_file" toml:"log_file" yaml:"log_file"`
	} `json:"app" toml:"app" yaml:"app"`

	Channel struct {
		Address          string   `json:"address" toml:"address" yaml:"address"`
		Path             string   `json:"path" toml:"path" yaml:"path"`
		EventBuffer      int      `json:"event_buffer" toml:"event_buffer" yaml:"event_buffer"`
		HandshakeTimeout Duration `json:"handshake_timeout" toml:"handshake_timeout" yaml:"handshake_timeout"`
	} `json:"channel" toml:"channel" yaml:"channel"`

	Adapter struct {
		BaseURL        string   `json:"base_url" toml:"base_url" yaml:"base_url"`
		RequestTimeout Duration `json:"request_timeout" toml:"request_timeout" yaml:"request_timeout"`
	} `json:"adapter" toml:"adapter" yaml:"adapter"`

	Server struct {
		HTTPAddress    string   `json:"http_address" toml:"http_address" yaml:"http_address"`
		RequestTimeout Duration `json:"request_timeout" toml:"request_timeout" yaml:"request_timeout"`
		DemoInterval   Duration `json:"demo_interval" toml:"demo_interval" yaml:"demo_interval"`
	} `json:"server" toml:"server" yaml:"server"`
}

// parseFile decodes the config file at path, choosing the decoder by file
// extension.
func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var raw fileConfig
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = json.Unmarshal(data, &raw)
	case ".toml":
		err = toml.Unmarshal(data, &raw)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &raw)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedConfigFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("error decoding config file %s: %w", filepath.Base(path), err)
	}

	return &StructuredConfig{
		App: App{
			Version:  raw.App.Version,
			LogLevel: raw.App.LogLevel,
			LogFile:  raw.App.LogFile,
		},
		Channel: Channel{
			Address:          raw.Channel.Address,
			Path:             raw.Channel.Path,
			EventBuffer:      raw.Channel.EventBuffer,
			HandshakeTimeout: time.Duration(raw.Channel.HandshakeTimeout),
		},
		Adapter: Adapter{
			BaseURL:        raw.Adapter.BaseURL,
			RequestTimeout: time.Duration(raw.Adapter.RequestTimeout),
		},
		Server: Server{
			HTTPAddress:    raw.Server.HTTPAddress,
			RequestTimeout: time.Duration(raw.Server.RequestTimeout),
			DemoInterval:   time.Duration(raw.Server.DemoInterval),
		},
	}, nil
}

// Duration is a time.Duration that decodes from strings like "1h" or "30s"
// in JSON, TOML and YAML. Plain JSON numbers are read as nanoseconds.
type Duration time.Duration

// UnmarshalJSON implements json.Unmarshaler.
func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		return d.UnmarshalText([]byte(value))
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler; go-toml uses it.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(strings.TrimSpace(string(text)))
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	return d.UnmarshalText([]byte(node.Value))
}

// MarshalJSON implements json.Marshaler.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
