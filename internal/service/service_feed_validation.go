// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-stop-report/internal/validators"
	"github.com/MKhiriev/go-stop-report/models"
)

// FeedValidationService rejects malformed payloads before they reach the
// wrapped FeedService.
type FeedValidationService struct {
	inner     FeedService
	validator validators.Validator
}

// NewFeedValidationService returns a wrapper; call Wrap to bind it.
func NewFeedValidationService() FeedServiceWrapper {
	return &FeedValidationService{
		validator: validators.NewObjectDataValidator(),
	}
}

func (v *FeedValidationService) Publish(ctx context.Context, payload models.Payload) (models.PublishResponse, error) {
	if err := v.validator.Validate(ctx, payload); err != nil {
		return models.PublishResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Publish(ctx, payload)
}

func (v *FeedValidationService) Wrap(inner FeedService) FeedService {
	v.inner = inner
	return v
}
