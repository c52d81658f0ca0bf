// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-stop-report/internal/adapter"
	"github.com/MKhiriev/go-stop-report/models"
)

type clientAppInfoService struct {
	buildInfo     models.AppBuildInfo
	serverAdapter adapter.ServerAdapter
}

// NewClientAppInfoService returns a ClientAppInfoService. serverAdapter may be
// nil, in which case ServerVersion reports an error.
func NewClientAppInfoService(buildInfo models.AppBuildInfo, serverAdapter adapter.ServerAdapter) ClientAppInfoService {
	return &clientAppInfoService{buildInfo: buildInfo, serverAdapter: serverAdapter}
}

func (s *clientAppInfoService) BuildInfo() models.AppBuildInfo {
	return s.buildInfo
}

func (s *clientAppInfoService) ServerVersion(ctx context.Context) (string, error) {
	if s.serverAdapter == nil {
		return "", fmt.Errorf("server version: %w", ErrNoServerAdapter)
	}

	version, err := s.serverAdapter.GetVersion(ctx)
	if err != nil {
		return "", fmt.Errorf("server version: %w", err)
	}
	return version, nil
}
