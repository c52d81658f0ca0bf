// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/go-stop-report/models"
)

// Field names accepted by [ObjectDataValidator.Validate].
const (
	// FieldNotEmpty requires at least one key in a payload.
	FieldNotEmpty = "not_empty"

	FieldID         = models.FieldID
	FieldStatus     = models.FieldStatus
	FieldPosition   = models.FieldPosition
	FieldConfidence = models.FieldConfidence
	FieldTimestamp  = models.FieldTimestamp
)

// ObjectDataValidator validates detection events, either typed
// ([models.ObjectData]) or untyped ([models.Payload]).
//
// For an untyped payload the well-known keys are optional: a key is checked
// only when it is present, since publishers may push arbitrary objects.
type ObjectDataValidator struct{}

// NewObjectDataValidator returns a ready validator.
func NewObjectDataValidator() *ObjectDataValidator {
	return &ObjectDataValidator{}
}

// Validate dispatches on the dynamic type of obj. Value and pointer forms of
// models.Payload and models.ObjectData are supported; anything else yields
// ErrUnsupportedType.
func (v *ObjectDataValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Payload:
		return v.validatePayload(ctx, value, fields...)
	case *models.Payload:
		if value == nil {
			return ErrEmptyPayload
		}
		return v.validatePayload(ctx, *value, fields...)

	case models.ObjectData:
		return v.validateObjectData(ctx, value, fields...)
	case *models.ObjectData:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateObjectData(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validatePayload checks by default: not empty, then id, status, position,
// confidence and timestamp when present.
func (v *ObjectDataValidator) validatePayload(_ context.Context, p models.Payload, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldNotEmpty, FieldID, FieldStatus, FieldPosition, FieldConfidence, FieldTimestamp}
	}

	for _, f := range fields {
		if f == FieldNotEmpty {
			if len(p) == 0 {
				return ErrEmptyPayload
			}
			continue
		}

		raw, ok := p[f]
		if !ok {
			continue
		}

		switch f {
		case FieldID:
			if s, isStr := raw.(string); !isStr || s == "" {
				return ErrInvalidID
			}
		case FieldStatus:
			if s, isStr := raw.(string); !isStr || s == "" {
				return ErrInvalidStatus
			}
		case FieldPosition:
			if !isPosition(raw) {
				return ErrInvalidPosition
			}
		case FieldConfidence:
			if n, isNum := toFloat(raw); !isNum || n < 0 || n > 1 {
				return ErrInvalidConfidence
			}
		case FieldTimestamp:
			if n, isNum := toFloat(raw); !isNum || n < 0 {
				return ErrInvalidTimestamp
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateObjectData checks by default: id, status, confidence, timestamp.
func (v *ObjectDataValidator) validateObjectData(_ context.Context, o models.ObjectData, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldStatus, FieldConfidence, FieldTimestamp}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if o.ID == "" {
				return ErrInvalidID
			}
		case FieldStatus:
			if o.Status == "" {
				return ErrInvalidStatus
			}
		case FieldPosition:
			if o.Position.X < 0 || o.Position.Y < 0 {
				return ErrInvalidPosition
			}
		case FieldConfidence:
			if o.Confidence < 0 || o.Confidence > 1 {
				return ErrInvalidConfidence
			}
		case FieldTimestamp:
			if o.Timestamp <= 0 {
				return ErrInvalidTimestamp
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func isPosition(raw any) bool {
	pos, ok := raw.(map[string]any)
	if !ok {
		return false
	}
	_, xOK := toFloat(pos["x"])
	_, yOK := toFloat(pos["y"])
	return xOK && yOK
}

func toFloat(raw any) (float64, bool) {
	switch n := raw.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}
