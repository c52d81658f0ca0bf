// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-stop-report/models"
)

const (
	pageReport = "report"
	pageRaw    = "raw"
)

const (
	timeLayout    = "2006-01-02 15:04:05.000"
	maxFieldWidth = 60
)

// routeOrder is the order tab cycles through.
var routeOrder = []string{pageReport, pageRaw}

type page struct {
	title  string
	render func(p models.Payload) string
}

func defaultPages() map[string]page {
	return map[string]page{
		pageReport: {title: "STOP REPORT", render: renderReport},
		pageRaw:    {title: "RAW PAYLOAD", render: renderRaw},
	}
}

var knownFields = []string{
	models.FieldStatus,
	models.FieldID,
	models.FieldPosition,
	models.FieldConfidence,
	models.FieldTimestamp,
}

// renderReport shows the well-known detection fields first and every other
// field below them in key order.
func renderReport(p models.Payload) string {
	var b strings.Builder

	writeRow(&b, "Status", renderStatus(p[models.FieldStatus]))
	writeRow(&b, "ID", renderScalar(p[models.FieldID]))
	writeRow(&b, "Position", renderPosition(p[models.FieldPosition]))
	writeRow(&b, "Confidence", renderConfidence(p[models.FieldConfidence]))
	writeRow(&b, "Time", renderTimestamp(p[models.FieldTimestamp]))

	var extra []string
	for k := range p {
		if !slices.Contains(knownFields, k) {
			extra = append(extra, k)
		}
	}
	if len(extra) == 0 {
		return strings.TrimRight(b.String(), "\n")
	}

	slices.Sort(extra)
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("other fields"))
	b.WriteString("\n")
	for _, k := range extra {
		writeRow(&b, k, fitText(renderScalar(p[k]), maxFieldWidth))
	}

	return strings.TrimRight(b.String(), "\n")
}

func renderRaw(p models.Payload) string {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", map[string]any(p))
	}
	return string(data)
}

func writeRow(b *strings.Builder, label, value string) {
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), value))
	b.WriteString("\n")
}

func renderStatus(v any) string {
	s, ok := v.(string)
	if !ok || s == "" {
		return renderScalar(v)
	}
	if s == models.StatusNoHardhat {
		return alertStyle.Render(s)
	}
	return okStyle.Render(s)
}

func renderPosition(v any) string {
	pos, ok := v.(map[string]any)
	if !ok {
		return renderScalar(v)
	}
	x, okX := toFloat(pos["x"])
	y, okY := toFloat(pos["y"])
	if !okX || !okY {
		return renderScalar(v)
	}
	return fmt.Sprintf("x=%g y=%g", x, y)
}

func renderConfidence(v any) string {
	f, ok := toFloat(v)
	if !ok {
		return renderScalar(v)
	}
	return fmt.Sprintf("%.1f%%", f*100)
}

func renderTimestamp(v any) string {
	f, ok := toFloat(v)
	if !ok {
		return renderScalar(v)
	}
	return time.UnixMilli(int64(f)).Format(timeLayout)
}

func renderScalar(v any) string {
	switch value := v.(type) {
	case nil:
		return "-"
	case string:
		if value == "" {
			return "-"
		}
		return value
	case map[string]any, []any:
		data, err := json.Marshal(value)
		if err != nil {
			return fmt.Sprintf("%v", value)
		}
		return string(data)
	default:
		return fmt.Sprintf("%v", value)
	}
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}
