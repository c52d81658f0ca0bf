// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package hub

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/MKhiriev/go-stop-report/internal/logger"
	"github.com/MKhiriev/go-stop-report/internal/utils"
	"github.com/MKhiriev/go-stop-report/models"
)

type broadcastCmd struct {
	frame []byte
	reply chan int
}

// Hub owns the set of live sessions.
type Hub struct {
	upgrader websocket.Upgrader
	ids      *utils.IDGenerator

	register   chan *session
	unregister chan *session
	broadcast  chan broadcastCmd

	sessions map[*session]struct{}
	stopped  chan struct{}

	logger *logger.Logger
}

// New returns a Hub. It does nothing until Run is called.
func New(log *logger.Logger) *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		ids:        utils.NewIDGenerator(),
		register:   make(chan *session),
		unregister: make(chan *session),
		broadcast:  make(chan broadcastCmd),
		sessions:   make(map[*session]struct{}),
		stopped:    make(chan struct{}),
		logger:     log.Component("hub"),
	}
}

// Run serves the session set until ctx is cancelled, then says goodbye to
// every session and returns.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.stopped)

	h.logger.Info().Msg("hub started")
	for {
		select {
		case s := <-h.register:
			h.sessions[s] = struct{}{}
			h.logger.Info().Str("sid", s.id).Int("sessions", len(h.sessions)).Msg("session registered")

		case s := <-h.unregister:
			if _, ok := h.sessions[s]; ok {
				delete(h.sessions, s)
				close(s.send)
				h.logger.Info().Str("sid", s.id).Int("sessions", len(h.sessions)).Msg("session unregistered")
			}

		case cmd := <-h.broadcast:
			cmd.reply <- h.fanOut(cmd.frame)

		case <-ctx.Done():
			h.shutdown()
			return
		}
	}
}

func (h *Hub) fanOut(frame []byte) int {
	sent := 0
	for s := range h.sessions {
		select {
		case s.send <- frame:
			sent++
		default:
			// slow consumer
			delete(h.sessions, s)
			close(s.send)
			h.logger.Warn().Str("sid", s.id).Msg("session dropped: send buffer full")
		}
	}
	return sent
}

func (h *Hub) shutdown() {
	bye := mustFrame(models.EventDisconnect, nil)
	for s := range h.sessions {
		select {
		case s.send <- bye:
		default:
		}
		close(s.send)
		delete(h.sessions, s)
	}
	h.logger.Info().Msg("hub stopped")
}

// Broadcast queues msg for every live session and reports for how many it
// was queued. It implements service.Broadcaster.
func (h *Hub) Broadcast(msg models.Message) (int, error) {
	frame, err := json.Marshal(msg)
	if err != nil {
		return 0, fmt.Errorf("encode frame: %w", err)
	}

	cmd := broadcastCmd{frame: frame, reply: make(chan int, 1)}
	select {
	case h.broadcast <- cmd:
	case <-h.stopped:
		return 0, ErrHubStopped
	}

	return <-cmd.reply, nil
}

// ServeWS upgrades the request and attaches a new session to the hub.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}

	id := h.ids.Generate()
	s := &session{
		id:     id,
		hub:    h,
		conn:   conn,
		send:   make(chan []byte, sendBuffer),
		logger: &logger.Logger{Logger: h.logger.With().Str("sid", id).Logger()},
	}
	s.send <- mustFrame(models.EventConnect, models.ConnectData{SID: id})

	select {
	case h.register <- s:
	case <-h.stopped:
		s.send <- mustFrame(models.EventDisconnect, nil)
		close(s.send)
		s.writePump()
		return
	}

	go s.writePump()
	go s.readPump()
}

// Done is closed when Run has returned.
func (h *Hub) Done() <-chan struct{} {
	return h.stopped
}

func (h *Hub) unregisterSession(s *session) {
	select {
	case h.unregister <- s:
	case <-h.stopped:
	}
}

// mustFrame encodes a frame whose data is known to be serialisable.
func mustFrame(event string, data any) []byte {
	msg := models.Message{Event: event}
	if data != nil {
		raw, err := json.Marshal(data)
		if err != nil {
			panic(fmt.Sprintf("hub: encode %s data: %v", event, err))
		}
		msg.Data = raw
	}

	frame, err := json.Marshal(msg)
	if err != nil {
		panic(fmt.Sprintf("hub: encode %s frame: %v", event, err))
	}
	return frame
}
