// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import "github.com/google/uuid"

// IDGenerator produces time-ordered ids for sessions and detection events.
type IDGenerator struct{}

// NewIDGenerator returns an [IDGenerator].
func NewIDGenerator() *IDGenerator {
	return &IDGenerator{}
}

// Generate returns a UUIDv7 string, or a random UUIDv4 if the v7 source fails.
func (g *IDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
