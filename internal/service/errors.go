// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/go-stop-report/internal/app"
)

var (
	ErrVersionIsNotSpecified = errors.New("version is not specified")
	ErrInvalidDataProvided   = errors.New(app.MsgInvalidDataProvided)
	ErrNoBroadcaster         = errors.New("no broadcaster configured")
	ErrNoServerAdapter       = errors.New("no server adapter configured")
)
