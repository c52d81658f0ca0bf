// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-stop-report/internal/adapter"
	"github.com/MKhiriev/go-stop-report/internal/channel"
	"github.com/MKhiriev/go-stop-report/internal/config"
	"github.com/MKhiriev/go-stop-report/internal/logger"
	"github.com/MKhiriev/go-stop-report/internal/service"
	"github.com/MKhiriev/go-stop-report/internal/tui"
	"github.com/MKhiriev/go-stop-report/models"
)

var ErrNoConfig = errors.New("client config is required")

type (
	channelOpener func(ctx context.Context, address string, cfg channel.Config, log *logger.Logger) channel.Client
	uiFactory     func(services *service.ClientServices, log *logger.Logger) (UI, error)
)

type App struct {
	cfg       *config.ClientConfig
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	openChannel channelOpener
	newUI       uiFactory
}

func NewApp(cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	if cfg == nil {
		return nil, ErrNoConfig
	}
	if log == nil {
		log = logger.Nop()
	}

	return &App{
		cfg:       cfg,
		buildInfo: buildInfo,
		logger:    log,
		openChannel: func(ctx context.Context, address string, cfg channel.Config, log *logger.Logger) channel.Client {
			return channel.Open(ctx, address, cfg, log)
		},
		newUI: func(services *service.ClientServices, log *logger.Logger) (UI, error) {
			return tui.New(services, log)
		},
	}, nil
}

// Run opens the feed channel, starts state synchronisation and blocks in the
// UI. The subscription is torn down when Run returns, including on panic.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	serverAdapter, err := adapter.NewHTTPServerAdapter(a.cfg.Adapter, a.logger.Component("adapter"))
	if err != nil {
		// the feed still works without the HTTP API
		a.logger.Warn().Err(err).Msg("server adapter unavailable")
	}

	client := a.openChannel(ctx, a.cfg.Channel.Address, channel.Config{
		Path:             a.cfg.Channel.Path,
		EventBuffer:      a.cfg.Channel.EventBuffer,
		HandshakeTimeout: a.cfg.Channel.HandshakeTimeout,
	}, a.logger.Component("channel"))

	services := service.NewClientServices(client, serverAdapter, a.buildInfo, a.logger.Component("state"))
	services.StateSync.Start()
	defer services.StateSync.Teardown()

	ui, err := a.newUI(services, a.logger.Component("tui"))
	if err != nil {
		return fmt.Errorf("create ui: %w", err)
	}

	a.logger.Info().Str("address", a.cfg.Channel.Address).Msg("client started")
	if err := ui.Run(ctx); err != nil {
		return fmt.Errorf("ui: %w", err)
	}

	a.logger.Info().Msg("client stopped")
	return nil
}
