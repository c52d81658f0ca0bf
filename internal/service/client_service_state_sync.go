// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"sync"

	"github.com/MKhiriev/go-stop-report/internal/channel"
	"github.com/MKhiriev/go-stop-report/internal/logger"
	"github.com/MKhiriev/go-stop-report/models"
)

type stateSync struct {
	client channel.Client

	mu       sync.RWMutex
	state    models.AppState
	tornDown bool

	changes chan struct{}

	startOnce    sync.Once
	teardownOnce sync.Once
	wg           sync.WaitGroup

	logger *logger.Logger
}

// NewStateSync creates a StateSync bound to client. The state starts as
// {Ready: false, Latest: nil} and stays so until Start is called and the
// first payload arrives.
func NewStateSync(client channel.Client, log *logger.Logger) StateSync {
	if log == nil {
		log = logger.Nop()
	}

	return &stateSync{
		client:  client,
		changes: make(chan struct{}, 1),
		logger:  log,
	}
}

// Start implements StateSync.
func (s *stateSync) Start() {
	s.startOnce.Do(func() {
		s.mu.RLock()
		tornDown := s.tornDown
		s.mu.RUnlock()
		if tornDown {
			return
		}

		events := s.client.Events()

		s.wg.Add(1)
		go func() {
			defer s.wg.Done()

			for ev := range events {
				s.handle(ev)
			}
		}()
	})
}

func (s *stateSync) handle(ev channel.Event) {
	switch e := ev.(type) {
	case channel.Connected:
		s.logger.Info().Str("connection_id", e.ConnectionID).Msg("feed connected")
	case channel.DataReceived:
		s.apply(e.Payload)
	case channel.Disconnected:
		s.logger.Info().Msg("feed disconnected")
	default:
		s.logger.Warn().Msgf("unexpected channel event %T", ev)
	}
}

// apply is the only place the state is written.
func (s *stateSync) apply(payload models.Payload) {
	s.mu.Lock()
	if s.tornDown {
		s.mu.Unlock()
		return
	}
	s.state = models.AppState{
		Ready:  true,
		Latest: payload.Clone(),
	}
	s.mu.Unlock()

	s.notify()
}

func (s *stateSync) notify() {
	select {
	case s.changes <- struct{}{}:
	default:
	}
}

// GetState implements StateSync.
func (s *stateSync) GetState() models.AppState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return models.AppState{
		Ready:  s.state.Ready,
		Latest: s.state.Latest.Clone(),
	}
}

// Changes implements StateSync.
func (s *stateSync) Changes() <-chan struct{} {
	return s.changes
}

// ConnectionState implements StateSync.
func (s *stateSync) ConnectionState() channel.ConnectionState {
	return s.client.State()
}

// Teardown implements StateSync. The torn-down flag is set before the client
// is closed, so events still queued in the channel are drained without
// effect. Changes is closed once the consumer has exited.
func (s *stateSync) Teardown() {
	s.teardownOnce.Do(func() {
		s.mu.Lock()
		s.tornDown = true
		s.mu.Unlock()

		if err := s.client.Close(); err != nil {
			s.logger.Warn().Err(err).Msg("error closing channel client")
		}

		s.wg.Wait()
		// notify runs only on the consumer, which has exited
		close(s.changes)
		s.logger.Debug().Msg("state sync torn down")
	})
}
