// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/MKhiriev/go-stop-report/internal/logger"
	"github.com/MKhiriev/go-stop-report/internal/service"
	"github.com/MKhiriev/go-stop-report/internal/utils"
	"github.com/MKhiriev/go-stop-report/models"
)

// Frame size of the synthetic camera the detections are placed in.
const (
	frameWidth  = 640
	frameHeight = 480
)

// DemoEmitter publishes a synthetic "No Hardhat Detected" detection every
// interval, standing in for a real detector.
type DemoEmitter struct {
	feed     service.FeedService
	interval time.Duration
	ids      *utils.IDGenerator
	rnd      *rand.Rand
	now      func() time.Time

	logger *logger.Logger
}

// NewDemoEmitter returns a nil Worker when interval is not positive, which
// disables the emitter (NewWorkers skips nil workers).
func NewDemoEmitter(feed service.FeedService, interval time.Duration, log *logger.Logger) Worker {
	if interval <= 0 {
		return nil
	}

	return &DemoEmitter{
		feed:     feed,
		interval: interval,
		ids:      utils.NewIDGenerator(),
		rnd:      rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x5eed)),
		now:      time.Now,
		logger:   log.Component("demo-emitter"),
	}
}

// Run implements Worker.
func (d *DemoEmitter) Run(ctx context.Context) {
	t := time.NewTicker(d.interval)
	defer t.Stop()

	d.logger.Info().Dur("interval", d.interval).Msg("demo emitter started")
	for {
		select {
		case <-ctx.Done():
			d.logger.Info().Msg("demo emitter stopped")
			return
		case <-t.C:
			d.emit(ctx)
		}
	}
}

func (d *DemoEmitter) emit(ctx context.Context) {
	detection := d.next()

	resp, err := d.feed.Publish(ctx, detection.ToPayload())
	if err != nil {
		d.logger.Warn().Err(err).Msg("demo detection not published")
		return
	}
	d.logger.Debug().Str("id", detection.ID).Int("clients", resp.Clients).Msg("demo detection published")
}

// next builds one detection. Confidence is kept in [0.5, 1).
func (d *DemoEmitter) next() models.ObjectData {
	return models.ObjectData{
		ID:     d.ids.Generate(),
		Status: models.StatusNoHardhat,
		Position: models.Position{
			X: d.rnd.IntN(frameWidth),
			Y: d.rnd.IntN(frameHeight),
		},
		Confidence: 0.5 + d.rnd.Float64()/2,
		Timestamp:  d.now().UnixMilli(),
	}
}
