// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package channel

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/MKhiriev/go-stop-report/internal/logger"
	"github.com/MKhiriev/go-stop-report/models"
)

const (
	defaultPath        = "/ws"
	defaultEventBuffer = 64
	writeWait          = 2 * time.Second
	maxMessageSize     = 1024 * 1024
)

// Config holds the settings of a [WSClient].
type Config struct {
	// Path is appended to a bare host:port address. Defaults to "/ws".
	Path string
	// EventBuffer is the capacity of the event queue. Defaults to 64.
	EventBuffer int
	// HandshakeTimeout bounds the opening handshake. Zero keeps the
	// gorilla/websocket default dialer timeout.
	HandshakeTimeout time.Duration
}

// WSClient is a [Client] backed by a gorilla/websocket connection.
type WSClient struct {
	target string
	dialer *websocket.Dialer
	logger *logger.Logger

	events    chan Event
	done      chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once

	mu     sync.Mutex
	conn   *websocket.Conn
	state  ConnectionState
	closed bool
}

var _ Client = (*WSClient)(nil)

// Open starts connecting to address and returns immediately. address is
// either "host:port" or a ws://, wss://, http:// or https:// URL.
//
// Open never fails: an unusable address, a refused connection or a failed
// handshake is reported later as a single [Disconnected] event. The
// connection is also dropped when ctx is cancelled.
func Open(ctx context.Context, address string, cfg Config, log *logger.Logger) *WSClient {
	if log == nil {
		log = logger.Nop()
	}
	if cfg.EventBuffer <= 0 {
		cfg.EventBuffer = defaultEventBuffer
	}

	dialer := *websocket.DefaultDialer
	if cfg.HandshakeTimeout > 0 {
		dialer.HandshakeTimeout = cfg.HandshakeTimeout
	}

	c := &WSClient{
		dialer: &dialer,
		logger: log,
		events: make(chan Event, cfg.EventBuffer),
		done:   make(chan struct{}),
		state:  StateConnecting,
	}

	target, err := endpointURL(address, cfg.Path)
	c.target = target

	c.wg.Add(1)
	go c.run(ctx, err)

	return c
}

// Events implements [Client].
func (c *WSClient) Events() <-chan Event {
	return c.events
}

// State implements [Client].
func (c *WSClient) State() ConnectionState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Close implements [Client]. It stops the reader, closes the socket and then
// the event channel. If the connection had not been reported as lost yet, a
// final [Disconnected] is queued when the buffer has room.
func (c *WSClient) Close() error {
	var err error
	c.closeOnce.Do(func() {
		c.mu.Lock()
		c.closed = true
		conn := c.conn
		c.mu.Unlock()

		close(c.done)

		if conn != nil {
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(writeWait))
			if closeErr := conn.Close(); closeErr != nil && !errors.Is(closeErr, net.ErrClosed) {
				err = fmt.Errorf("close channel connection: %w", closeErr)
			}
		}

		c.wg.Wait()

		if c.markDisconnected() {
			select {
			case c.events <- Disconnected{}:
			default:
			}
		}
		close(c.events)

		c.logger.Debug().Str("target", c.target).Msg("channel closed")
	})
	return err
}

func (c *WSClient) run(ctx context.Context, addrErr error) {
	defer c.wg.Done()

	if addrErr != nil {
		c.logger.Warn().Err(addrErr).Msg("channel address rejected")
		c.disconnect()
		return
	}

	conn, ok := c.dial(ctx)
	if !ok {
		return
	}

	stop := context.AfterFunc(ctx, func() {
		_ = conn.Close()
	})
	defer stop()

	c.readLoop(conn)
}

func (c *WSClient) dial(ctx context.Context) (*websocket.Conn, bool) {
	dialCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		select {
		case <-c.done:
			cancel()
		case <-dialCtx.Done():
		}
	}()

	c.logger.Debug().Str("target", c.target).Msg("dialing channel")
	conn, resp, err := c.dialer.DialContext(dialCtx, c.target, nil)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	if err != nil {
		if c.isClosing() {
			return nil, false
		}
		c.logger.Warn().Err(err).Str("target", c.target).Msg("channel connection failed")
		c.disconnect()
		return nil, false
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		_ = conn.Close()
		return nil, false
	}
	c.conn = conn
	c.mu.Unlock()

	conn.SetReadLimit(maxMessageSize)
	return conn, true
}

func (c *WSClient) readLoop(conn *websocket.Conn) {
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if c.isClosing() {
				return
			}
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				c.logger.Warn().Err(err).Msg("channel connection lost")
			} else {
				c.logger.Info().Err(err).Msg("channel connection ended")
			}
			c.disconnect()
			return
		}

		if !c.dispatch(data) {
			_ = conn.Close()
			return
		}
	}
}

// dispatch handles one text frame. It returns false when the session is over.
func (c *WSClient) dispatch(data []byte) bool {
	var msg models.Message
	if err := json.Unmarshal(data, &msg); err != nil {
		c.logger.Warn().Err(err).Msg("malformed channel frame dropped")
		return true
	}

	switch msg.Event {
	case models.EventConnect:
		c.connected(msg.Data)
	case models.EventObjectData:
		payload, err := models.DecodePayload(msg.Data)
		if err != nil || payload == nil {
			c.logger.Warn().Err(err).Msg("object_data without an object body dropped")
			return true
		}
		c.emit(DataReceived{Payload: payload})
	case models.EventDisconnect:
		c.logger.Info().Msg("server ended the session")
		c.disconnect()
		return false
	default:
		c.logger.Debug().Str("event", msg.Event).Msg("unrecognized channel event ignored")
	}

	return true
}

func (c *WSClient) connected(raw json.RawMessage) {
	c.mu.Lock()
	if c.state != StateConnecting {
		c.mu.Unlock()
		return
	}
	c.state = StateConnected
	c.mu.Unlock()

	var data models.ConnectData
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &data)
	}
	if data.SID == "" {
		data.SID = uuid.NewString()
	}

	c.logger.Info().Str("sid", data.SID).Msg("channel connected")
	c.emit(Connected{ConnectionID: data.SID})
}

// disconnect moves to StateDisconnected and emits Disconnected, once.
func (c *WSClient) disconnect() {
	if !c.markDisconnected() {
		return
	}
	c.emit(Disconnected{})
}

func (c *WSClient) markDisconnected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == StateDisconnected {
		return false
	}
	c.state = StateDisconnected
	return true
}

// emit blocks until the event is queued or Close is called.
func (c *WSClient) emit(ev Event) {
	select {
	case c.events <- ev:
	case <-c.done:
	}
}

func (c *WSClient) isClosing() bool {
	select {
	case <-c.done:
		return true
	default:
		return false
	}
}

// endpointURL builds the WebSocket URL for address. A bare host:port gets the
// ws scheme and path; http(s) URLs are mapped to ws(s).
func endpointURL(address, path string) (string, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return "", ErrEmptyAddress
	}
	if path == "" {
		path = defaultPath
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	if !strings.Contains(address, "://") {
		return "ws://" + strings.TrimRight(address, "/") + path, nil
	}

	u, err := url.Parse(address)
	if err != nil {
		return "", fmt.Errorf("parse channel address %q: %w", address, err)
	}

	switch u.Scheme {
	case "ws", "wss":
	case "http":
		u.Scheme = "ws"
	case "https":
		u.Scheme = "wss"
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedScheme, u.Scheme)
	}

	if u.Path == "" || u.Path == "/" {
		u.Path = path
	}
	return u.String(), nil
}
