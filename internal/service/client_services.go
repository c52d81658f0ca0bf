// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-stop-report/internal/adapter"
	"github.com/MKhiriev/go-stop-report/internal/channel"
	"github.com/MKhiriev/go-stop-report/internal/logger"
	"github.com/MKhiriev/go-stop-report/models"
)

// ClientServices groups the services of the terminal client.
type ClientServices struct {
	StateSync StateSync
	AppInfo   ClientAppInfoService
}

// NewClientServices wires the client services around an open channel client.
// StateSync is created but not started.
func NewClientServices(client channel.Client, serverAdapter adapter.ServerAdapter, buildInfo models.AppBuildInfo, log *logger.Logger) *ClientServices {
	return &ClientServices{
		StateSync: NewStateSync(client, log),
		AppInfo:   NewClientAppInfoService(buildInfo, serverAdapter),
	}
}
