// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-stop-report/internal/config"
	"github.com/MKhiriev/go-stop-report/internal/logger"
)

// Services groups the feed server services used by the handlers and workers.
type Services struct {
	AppInfoService AppInfoService
	FeedService    FeedService
}

// NewServices builds the server services. Published payloads are validated
// and then broadcast through b.
func NewServices(b Broadcaster, cfg config.ServerApp, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, err
	}

	feed := NewFeedValidationService().Wrap(NewFeedService(b, logger))

	return &Services{
		AppInfoService: appInfo,
		FeedService:    feed,
	}, nil
}
