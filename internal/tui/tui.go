// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-stop-report/internal/logger"
	"github.com/MKhiriev/go-stop-report/internal/service"
)

type TUI struct {
	services *service.ClientServices
	options  []tea.ProgramOption
	logger   *logger.Logger
}

func New(services *service.ClientServices, log *logger.Logger, options ...tea.ProgramOption) (*TUI, error) {
	if services == nil || services.StateSync == nil || services.AppInfo == nil {
		return nil, ErrNoServices
	}
	if log == nil {
		log = logger.Nop()
	}
	if len(options) == 0 {
		options = []tea.ProgramOption{tea.WithAltScreen()}
	}

	return &TUI{services: services, options: options, logger: log}, nil
}

// Run blocks until the user quits or ctx is cancelled. Cancellation is not
// reported as an error.
func (t *TUI) Run(ctx context.Context) error {
	root := NewRootModel(ctx, t.services)
	options := append([]tea.ProgramOption{tea.WithContext(ctx)}, t.options...)

	t.logger.Debug().Msg("starting terminal UI")
	if _, err := tea.NewProgram(root, options...).Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			t.logger.Info().Msg("terminal UI stopped by context")
			return nil
		}
		return fmt.Errorf("run terminal UI: %w", err)
	}

	t.logger.Debug().Msg("terminal UI exited")
	return nil
}
