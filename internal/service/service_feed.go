// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/go-stop-report/internal/logger"
	"github.com/MKhiriev/go-stop-report/internal/utils"
	"github.com/MKhiriev/go-stop-report/models"
)

type feedService struct {
	broadcaster Broadcaster
	ids         *utils.IDGenerator
	now         func() time.Time

	logger *logger.Logger
}

// NewFeedService returns a FeedService that broadcasts through b.
func NewFeedService(b Broadcaster, logger *logger.Logger) FeedService {
	return &feedService{
		broadcaster: b,
		ids:         utils.NewIDGenerator(),
		now:         time.Now,
		logger:      logger,
	}
}

func (s *feedService) Publish(ctx context.Context, payload models.Payload) (models.PublishResponse, error) {
	if s.broadcaster == nil {
		return models.PublishResponse{}, ErrNoBroadcaster
	}
	if len(payload) == 0 {
		return models.PublishResponse{}, ErrInvalidDataProvided
	}

	out := payload.Clone()
	if _, ok := out[models.FieldID]; !ok {
		out[models.FieldID] = s.ids.Generate()
	}
	if _, ok := out[models.FieldTimestamp]; !ok {
		out[models.FieldTimestamp] = s.now().UnixMilli()
	}

	data, err := json.Marshal(out)
	if err != nil {
		return models.PublishResponse{}, fmt.Errorf("encode object_data: %w", err)
	}

	clients, err := s.broadcaster.Broadcast(models.Message{Event: models.EventObjectData, Data: data})
	if err != nil {
		return models.PublishResponse{}, fmt.Errorf("broadcast object_data: %w", err)
	}

	logger.FromContext(ctx).Debug().
		Any("id", out[models.FieldID]).
		Int("clients", clients).
		Msg("object_data published")

	return models.PublishResponse{Payload: out, Clients: clients}, nil
}
