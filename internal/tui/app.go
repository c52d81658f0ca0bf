// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-stop-report/internal/channel"
	"github.com/MKhiriev/go-stop-report/internal/service"
	"github.com/MKhiriev/go-stop-report/models"
)

const (
	connPollInterval = 500 * time.Millisecond
	statusTTL        = 2 * time.Second
)

// RootModel is the TUI router:
// 1) shows a spinner until the first payload, then the routed view
// 2) handles global hotkeys
// 3) handles NavigateTo messages
// 4) re-reads the state whenever StateSync signals a change
type RootModel struct {
	ctx     context.Context
	sync    service.StateSync
	appInfo service.ClientAppInfoService

	state   models.AppState
	conn    channel.ConnectionState
	spinner spinner.Model

	pages   map[string]page
	current string

	showBuildInfo bool
	serverVersion string
	serverErr     error
	status        string
}

// NewRootModel builds the root model on top of the client services.
func NewRootModel(ctx context.Context, services *service.ClientServices) RootModel {
	s := spinner.New()
	s.Spinner = spinner.Dot

	return RootModel{
		ctx:     ctx,
		sync:    services.StateSync,
		appInfo: services.AppInfo,
		state:   services.StateSync.GetState(),
		conn:    services.StateSync.ConnectionState(),
		spinner: s,
		pages:   defaultPages(),
		current: pageReport,
	}
}

func (r RootModel) Init() tea.Cmd {
	return tea.Batch(
		r.spinner.Tick,
		waitForChanges(r.sync.Changes()),
		pollConnection(),
	)
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return r.updateKeys(msg)

	case NavigateTo:
		if _, ok := r.pages[msg.Page]; ok {
			r.current = msg.Page
		}
		return r, nil

	case stateChangedMsg:
		next := r.sync.GetState()
		// Ready never reverts: the loading view is only for the initial load.
		if next.Ready || !r.state.Ready {
			r.state = next
		}
		return r, waitForChanges(r.sync.Changes())

	case connTickMsg:
		r.conn = r.sync.ConnectionState()
		return r, pollConnection()

	case spinner.TickMsg:
		if r.state.Ready {
			return r, nil
		}
		var cmd tea.Cmd
		r.spinner, cmd = r.spinner.Update(msg)
		return r, cmd

	case serverVersionMsg:
		r.serverVersion = msg.version
		r.serverErr = msg.err
		return r, nil

	case copiedMsg:
		r.status = "copied!"
		return r, cmdClearStatus()

	case copyFailedMsg:
		r.status = fmt.Sprintf("copy failed: %v", msg.err)
		return r, cmdClearStatus()

	case clearStatusMsg:
		r.status = ""
		return r, nil
	}

	return r, nil
}

func (r RootModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return r, tea.Quit
	case key.Matches(msg, keys.about):
		r.showBuildInfo = !r.showBuildInfo
		if r.showBuildInfo {
			r.serverVersion, r.serverErr = "", nil
			return r, fetchServerVersion(r.ctx, r.appInfo)
		}
		return r, nil
	case key.Matches(msg, keys.esc):
		r.showBuildInfo = false
		return r, nil
	}

	if r.showBuildInfo || !r.state.Ready {
		return r, nil
	}

	switch {
	case key.Matches(msg, keys.tab):
		return r, navigate(nextRoute(r.current))
	case key.Matches(msg, keys.copy):
		return r, cmdCopyPayload(r.state.Latest)
	}
	return r, nil
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(r.appInfo.BuildInfo(), r.serverVersion, r.serverErr))
	}

	header := renderHeader(r.conn)
	if !r.state.Ready {
		body := renderPage("STOP REPORT", r.spinner.View()+" Loading...", "v: about")
		return appStyle.Render(header + "\n\n" + body)
	}

	p := r.pages[r.current]
	hotKeys := "tab: switch view • c: copy JSON • v: about"
	if r.status != "" {
		hotKeys += "   " + r.status
	}
	return appStyle.Render(header + "\n\n" + renderPage(p.title, p.render(r.state.Latest), hotKeys))
}

func renderHeader(state channel.ConnectionState) string {
	var styled string
	switch state {
	case channel.StateConnected:
		styled = okStyle.Render(state.String())
	case channel.StateDisconnected:
		styled = alertStyle.Render(state.String())
	default:
		styled = warnStyle.Render(state.String())
	}
	return helpStyle.Render("feed: ") + styled
}

func nextRoute(current string) string {
	i := slices.Index(routeOrder, current)
	return routeOrder[(i+1)%len(routeOrder)]
}

func navigate(page string) tea.Cmd {
	return func() tea.Msg { return NavigateTo{Page: page} }
}

// waitForChanges blocks until StateSync signals a mutation.
func waitForChanges(changes <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return nil
		}
		return stateChangedMsg{}
	}
}

func pollConnection() tea.Cmd {
	return tea.Tick(connPollInterval, func(t time.Time) tea.Msg {
		return connTickMsg(t)
	})
}

func fetchServerVersion(ctx context.Context, appInfo service.ClientAppInfoService) tea.Cmd {
	return func() tea.Msg {
		version, err := appInfo.ServerVersion(ctx)
		return serverVersionMsg{version: version, err: err}
	}
}

func cmdCopyPayload(p models.Payload) tea.Cmd {
	return func() tea.Msg {
		data, err := json.MarshalIndent(p, "", "  ")
		if err != nil {
			return copyFailedMsg{err: err}
		}
		if err := clipboard.WriteAll(string(data)); err != nil {
			return copyFailedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
