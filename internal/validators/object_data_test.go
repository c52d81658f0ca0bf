// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-stop-report/models"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validObjectData() models.ObjectData {
	return models.ObjectData{
		ID:         "det-1",
		Status:     models.StatusNoHardhat,
		Position:   models.Position{X: 120, Y: 48},
		Confidence: 0.87,
		Timestamp:  1700000000000,
	}
}

// ---------------------------------------------------------------------------
// Dispatch
// ---------------------------------------------------------------------------

func TestValidate_Dispatch(t *testing.T) {
	v := NewObjectDataValidator()
	ctx := context.Background()

	od := validObjectData()
	p := od.ToPayload()

	require.NoError(t, v.Validate(ctx, od))
	require.NoError(t, v.Validate(ctx, &od))
	require.NoError(t, v.Validate(ctx, p))
	require.NoError(t, v.Validate(ctx, &p))

	assert.ErrorIs(t, v.Validate(ctx, "string"), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(ctx, (*models.Payload)(nil)), ErrEmptyPayload)
	assert.ErrorIs(t, v.Validate(ctx, (*models.ObjectData)(nil)), ErrUnsupportedType)
}

// ---------------------------------------------------------------------------
// Payload
// ---------------------------------------------------------------------------

func TestValidatePayload(t *testing.T) {
	tests := []struct {
		name    string
		payload models.Payload
		fields  []string
		wantErr error
	}{
		{name: "arbitrary object", payload: models.Payload{"temp": 42.0}},
		{name: "decoded detection", payload: models.Payload{
			"id": "x", "status": "ok", "confidence": 0.5, "timestamp": 1.7e12,
			"position": map[string]any{"x": 1.0, "y": 2.0},
		}},
		{name: "detection with json numbers", payload: models.Payload{
			"id": "x", "confidence": json.Number("0.87"), "timestamp": json.Number("1700000000000"),
			"position": map[string]any{"x": json.Number("120"), "y": json.Number("240")},
		}},
		{name: "json number confidence above one", payload: models.Payload{"confidence": json.Number("2")}, wantErr: ErrInvalidConfidence},
		{name: "json number id", payload: models.Payload{"id": json.Number("9007199254740993")}, wantErr: ErrInvalidID},
		{name: "nil", payload: nil, wantErr: ErrEmptyPayload},
		{name: "empty", payload: models.Payload{}, wantErr: ErrEmptyPayload},
		{name: "empty id", payload: models.Payload{"id": ""}, wantErr: ErrInvalidID},
		{name: "numeric id", payload: models.Payload{"id": 7.0}, wantErr: ErrInvalidID},
		{name: "empty status", payload: models.Payload{"status": ""}, wantErr: ErrInvalidStatus},
		{name: "bad position", payload: models.Payload{"position": "1,2"}, wantErr: ErrInvalidPosition},
		{name: "position without y", payload: models.Payload{"position": map[string]any{"x": 1.0}}, wantErr: ErrInvalidPosition},
		{name: "confidence above one", payload: models.Payload{"confidence": 1.5}, wantErr: ErrInvalidConfidence},
		{name: "confidence string", payload: models.Payload{"confidence": "high"}, wantErr: ErrInvalidConfidence},
		{name: "negative timestamp", payload: models.Payload{"timestamp": -1.0}, wantErr: ErrInvalidTimestamp},
		{name: "scoped skips other fields", payload: models.Payload{"id": ""}, fields: []string{FieldNotEmpty}},
		{name: "unknown field", payload: models.Payload{"weird": 1.0}, fields: []string{"weird"}, wantErr: ErrUnknownField},
	}

	v := NewObjectDataValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.payload, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ---------------------------------------------------------------------------
// ObjectData
// ---------------------------------------------------------------------------

func TestValidateObjectData(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(o *models.ObjectData)
		fields  []string
		wantErr error
	}{
		{name: "valid", mutate: func(*models.ObjectData) {}},
		{name: "missing id", mutate: func(o *models.ObjectData) { o.ID = "" }, wantErr: ErrInvalidID},
		{name: "missing status", mutate: func(o *models.ObjectData) { o.Status = "" }, wantErr: ErrInvalidStatus},
		{name: "confidence", mutate: func(o *models.ObjectData) { o.Confidence = -0.1 }, wantErr: ErrInvalidConfidence},
		{name: "timestamp", mutate: func(o *models.ObjectData) { o.Timestamp = 0 }, wantErr: ErrInvalidTimestamp},
		{
			name:    "position only when asked",
			mutate:  func(o *models.ObjectData) { o.Position.X = -1 },
			fields:  []string{FieldPosition},
			wantErr: ErrInvalidPosition,
		},
		{name: "position ignored by default", mutate: func(o *models.ObjectData) { o.Position.X = -1 }},
		{name: "unknown field", mutate: func(*models.ObjectData) {}, fields: []string{"nope"}, wantErr: ErrUnknownField},
	}

	v := NewObjectDataValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			od := validObjectData()
			tt.mutate(&od)

			err := v.Validate(context.Background(), od, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
