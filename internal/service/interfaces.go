// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-stop-report/models"
)

// AppInfoService reports build metadata of the feed server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// FeedService publishes detection payloads to every connected client.
type FeedService interface {
	// Publish fills in a missing id and timestamp, broadcasts the payload as
	// an object_data frame and returns the payload as sent together with the
	// number of sessions it was queued for.
	Publish(ctx context.Context, payload models.Payload) (models.PublishResponse, error)
}

// FeedServiceWrapper decorates a FeedService with extra behaviour such as
// validation.
type FeedServiceWrapper interface {
	Wrap(FeedService) FeedService
}

// Broadcaster fans a frame out to all live sessions. It returns how many
// sessions the frame was queued for.
type Broadcaster interface {
	Broadcast(msg models.Message) (int, error)
}
