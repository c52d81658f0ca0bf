// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-stop-report/models"
)

// renderBuildInfoWindow renders the about window. serverVersion is empty
// while the request is in flight.
func renderBuildInfoWindow(info models.AppBuildInfo, serverVersion string, serverErr error) string {
	var b strings.Builder

	b.WriteString("Application: go-stop-report\n")
	b.WriteString("Version: ")
	b.WriteString(valueOrNA(info.Version()))
	b.WriteString("\n")
	b.WriteString("Date: ")
	b.WriteString(valueOrNA(info.Date()))
	b.WriteString("\n")
	b.WriteString("Commit: ")
	b.WriteString(valueOrNA(info.Commit()))
	b.WriteString("\n\n")
	b.WriteString("Server version: ")
	switch {
	case serverErr != nil:
		b.WriteString(warnStyle.Render(humanizeServerUnavailableError(serverErr)))
	case serverVersion == "":
		b.WriteString("...")
	default:
		b.WriteString(serverVersion)
	}

	return overlayBoxStyle.Render(renderPage("ABOUT", b.String(), "esc/v: back"))
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
