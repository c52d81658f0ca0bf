// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

func (cfg *ClientConfig) validate() error {
	if strings.TrimSpace(cfg.Channel.Address) == "" || cfg.Channel.EventBuffer <= 0 ||
		cfg.Channel.HandshakeTimeout < 0 {
		return ErrInvalidChannelConfigs
	}

	if cfg.Adapter.BaseURL == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if strings.TrimSpace(cfg.App.Version) == "" {
		return ErrInvalidAppConfigs
	}

	if strings.TrimSpace(cfg.Server.HTTPAddress) == "" || cfg.Server.RequestTimeout <= 0 ||
		cfg.Server.DemoInterval < 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}
