// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-stop-report/internal/logger"
	"github.com/MKhiriev/go-stop-report/internal/validators"
	"github.com/MKhiriev/go-stop-report/models"
)

// recordingFeed: простой FeedService, запоминает опубликованные payload.
type recordingFeed struct {
	mu        sync.Mutex
	published []models.Payload
	err       error
}

func (f *recordingFeed) Publish(_ context.Context, p models.Payload) (models.PublishResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return models.PublishResponse{}, f.err
	}
	f.published = append(f.published, p)
	return models.PublishResponse{Payload: p, Clients: 1}, nil
}

func (f *recordingFeed) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.published)
}

func TestNewDemoEmitter_DisabledByInterval(t *testing.T) {
	assert.Nil(t, NewDemoEmitter(&recordingFeed{}, 0, logger.Nop()))
	assert.Nil(t, NewDemoEmitter(&recordingFeed{}, -time.Second, logger.Nop()))
}

func TestDemoEmitter_Next(t *testing.T) {
	d := NewDemoEmitter(&recordingFeed{}, time.Second, logger.Nop()).(*DemoEmitter)
	d.now = func() time.Time { return time.UnixMilli(1700000000000) }

	v := validators.NewObjectDataValidator()
	for i := 0; i < 50; i++ {
		od := d.next()

		require.NoError(t, v.Validate(context.Background(), od, validators.FieldID, validators.FieldStatus,
			validators.FieldPosition, validators.FieldConfidence, validators.FieldTimestamp))
		assert.Equal(t, models.StatusNoHardhat, od.Status)
		assert.GreaterOrEqual(t, od.Confidence, 0.5)
		assert.Less(t, od.Position.X, frameWidth)
		assert.Less(t, od.Position.Y, frameHeight)
		assert.Equal(t, int64(1700000000000), od.Timestamp)
	}
}

func TestDemoEmitter_RunPublishesUntilCancel(t *testing.T) {
	feed := &recordingFeed{}
	d := NewDemoEmitter(feed, 5*time.Millisecond, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		d.Run(ctx)
	}()

	require.Eventually(t, func() bool { return feed.count() >= 3 }, time.Second, time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("emitter did not stop")
	}

	feed.mu.Lock()
	defer feed.mu.Unlock()
	assert.Equal(t, models.StatusNoHardhat, feed.published[0][models.FieldStatus])
}

func TestDemoEmitter_PublishErrorIsNotFatal(t *testing.T) {
	feed := &recordingFeed{err: errors.New("hub is stopped")}
	d := NewDemoEmitter(feed, time.Second, logger.Nop()).(*DemoEmitter)

	d.emit(context.Background())
	assert.Zero(t, feed.count())
}
