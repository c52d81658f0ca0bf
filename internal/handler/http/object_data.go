// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/go-stop-report/internal/logger"
	"github.com/MKhiriev/go-stop-report/internal/utils"
	"github.com/MKhiriev/go-stop-report/models"
)

const maxPayloadSize = 1 << 20

// publishObjectData accepts one detection object and broadcasts it to every
// connected client. Missing id and timestamp are filled in by the feed
// service; the payload as sent is echoed back with 202.
func (h *Handler) publishObjectData(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	payload, err := decodePayload(w, r)
	if err != nil {
		log.Debug().Err(err).Msg("publish request rejected")
		status := statusFromError(err)
		utils.WriteError(w, messageFromError(err, status), status)
		return
	}

	resp, err := h.services.FeedService.Publish(r.Context(), payload)
	if err != nil {
		status := statusFromError(err)
		if status >= http.StatusInternalServerError {
			log.Error().Err(err).Msg("publish object data")
		}
		utils.WriteError(w, messageFromError(err, status), status)
		return
	}

	if _, err = utils.WriteJSON(w, resp, http.StatusAccepted); err != nil {
		log.Err(err).Msg("write publish response")
	}
}

func decodePayload(w http.ResponseWriter, r *http.Request) (models.Payload, error) {
	body := http.MaxBytesReader(w, r.Body, maxPayloadSize)
	defer body.Close()

	var payload models.Payload
	dec := json.NewDecoder(body)
	dec.UseNumber()
	if err := dec.Decode(&payload); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, ErrPayloadTooLarge
		}
		return nil, fmt.Errorf("%w: %w", ErrPayloadNotObject, err)
	}
	if payload == nil {
		return nil, ErrPayloadNotObject
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data", ErrPayloadNotObject)
	}

	return payload, nil
}
