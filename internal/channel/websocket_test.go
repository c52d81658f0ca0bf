// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package channel

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-stop-report/internal/logger"
	"github.com/MKhiriev/go-stop-report/models"
)

const waitTimeout = 2 * time.Second

// newFeedServer starts a websocket server that writes frames to each new
// connection and then runs after (if set) before returning.
func newFeedServer(t *testing.T, frames []string, after func(conn *websocket.Conn)) *httptest.Server {
	t.Helper()

	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		for _, f := range frames {
			if err := conn.WriteMessage(websocket.TextMessage, []byte(f)); err != nil {
				return
			}
		}
		if after != nil {
			after(conn)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

// holdOpen keeps the server side open until the client goes away.
func holdOpen(conn *websocket.Conn) {
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func nextEvent(t *testing.T, c Client) Event {
	t.Helper()
	select {
	case ev, ok := <-c.Events():
		require.True(t, ok, "events channel closed unexpectedly")
		return ev
	case <-time.After(waitTimeout):
		t.Fatal("timed out waiting for channel event")
		return nil
	}
}

func openTest(t *testing.T, srv *httptest.Server) *WSClient {
	t.Helper()
	c := Open(context.Background(), srv.URL, Config{}, logger.Nop())
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestWSClient_ConnectAndData(t *testing.T) {
	srv := newFeedServer(t, []string{
		`{"event":"connect","data":{"sid":"abc"}}`,
		`{"event":"object_data","data":{"temp":42}}`,
		`{"event":"object_data","data":{"temp":43}}`,
	}, holdOpen)

	c := openTest(t, srv)

	assert.Equal(t, Connected{ConnectionID: "abc"}, nextEvent(t, c))
	assert.Equal(t, StateConnected, c.State())

	first := nextEvent(t, c)
	require.IsType(t, DataReceived{}, first)
	assert.Equal(t, models.Payload{"temp": json.Number("42")}, first.(DataReceived).Payload)

	second := nextEvent(t, c)
	require.IsType(t, DataReceived{}, second)
	assert.Equal(t, models.Payload{"temp": json.Number("43")}, second.(DataReceived).Payload)
}

func TestWSClient_LargeIntegersDeliveredExactly(t *testing.T) {
	srv := newFeedServer(t, []string{
		`{"event":"connect","data":{"sid":"abc"}}`,
		`{"event":"object_data","data":{"id":9007199254740993,"position":{"x":1,"y":2},"confidence":0.1}}`,
	}, holdOpen)

	c := openTest(t, srv)
	assert.Equal(t, Connected{ConnectionID: "abc"}, nextEvent(t, c))

	ev := nextEvent(t, c)
	require.IsType(t, DataReceived{}, ev)
	assert.Equal(t, models.Payload{
		"id":         json.Number("9007199254740993"),
		"position":   map[string]any{"x": json.Number("1"), "y": json.Number("2")},
		"confidence": json.Number("0.1"),
	}, ev.(DataReceived).Payload)
}

func TestWSClient_ConnectWithoutSIDGeneratesID(t *testing.T) {
	srv := newFeedServer(t, []string{`{"event":"connect"}`}, holdOpen)

	c := openTest(t, srv)

	ev := nextEvent(t, c)
	require.IsType(t, Connected{}, ev)
	assert.NotEmpty(t, ev.(Connected).ConnectionID)
}

func TestWSClient_IgnoresUnknownAndMalformedFrames(t *testing.T) {
	srv := newFeedServer(t, []string{
		`{"event":"connect","data":{"sid":"s1"}}`,
		`not json`,
		`{"event":"heartbeat","data":{}}`,
		`{"event":"object_data","data":[1,2,3]}`,
		`{"event":"object_data","data":null}`,
		`{"event":"connect","data":{"sid":"s2"}}`,
		`{"event":"object_data","data":{"a":1}}`,
	}, holdOpen)

	c := openTest(t, srv)

	assert.Equal(t, Connected{ConnectionID: "s1"}, nextEvent(t, c))
	assert.Equal(t, DataReceived{Payload: models.Payload{"a": json.Number("1")}}, nextEvent(t, c))
}

func TestWSClient_DisconnectFrame(t *testing.T) {
	srv := newFeedServer(t, []string{
		`{"event":"connect","data":{"sid":"abc"}}`,
		`{"event":"disconnect"}`,
		`{"event":"object_data","data":{"late":true}}`,
	}, holdOpen)

	c := openTest(t, srv)

	assert.Equal(t, Connected{ConnectionID: "abc"}, nextEvent(t, c))
	assert.Equal(t, Disconnected{}, nextEvent(t, c))
	assert.Equal(t, StateDisconnected, c.State())

	require.NoError(t, c.Close())
	for ev := range c.Events() {
		t.Fatalf("unexpected event after disconnect: %#v", ev)
	}
}

func TestWSClient_ServerCloseEmitsDisconnectedOnce(t *testing.T) {
	srv := newFeedServer(t, []string{`{"event":"connect","data":{"sid":"abc"}}`}, nil)

	c := openTest(t, srv)

	assert.Equal(t, Connected{ConnectionID: "abc"}, nextEvent(t, c))
	assert.Equal(t, Disconnected{}, nextEvent(t, c))

	require.NoError(t, c.Close())
	_, ok := <-c.Events()
	assert.False(t, ok)
}

func TestWSClient_DialFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.URL
	srv.Close()

	c := Open(context.Background(), addr, Config{HandshakeTimeout: time.Second}, logger.Nop())
	t.Cleanup(func() { _ = c.Close() })

	assert.Equal(t, Disconnected{}, nextEvent(t, c))
	assert.Equal(t, StateDisconnected, c.State())
}

func TestWSClient_BadAddress(t *testing.T) {
	c := Open(context.Background(), "", Config{}, nil)
	t.Cleanup(func() { _ = c.Close() })

	assert.Equal(t, Disconnected{}, nextEvent(t, c))
}

func TestWSClient_CloseIsIdempotent(t *testing.T) {
	srv := newFeedServer(t, []string{`{"event":"connect","data":{"sid":"abc"}}`}, holdOpen)

	c := openTest(t, srv)
	assert.Equal(t, Connected{ConnectionID: "abc"}, nextEvent(t, c))

	require.NoError(t, c.Close())
	require.NoError(t, c.Close())

	assert.Equal(t, StateDisconnected, c.State())

	var got []Event
	for ev := range c.Events() {
		got = append(got, ev)
	}
	assert.Equal(t, []Event{Disconnected{}}, got)
}

func TestWSClient_ContextCancelDisconnects(t *testing.T) {
	srv := newFeedServer(t, []string{`{"event":"connect","data":{"sid":"abc"}}`}, holdOpen)

	ctx, cancel := context.WithCancel(context.Background())
	c := Open(ctx, srv.URL, Config{}, logger.Nop())
	t.Cleanup(func() { _ = c.Close() })

	assert.Equal(t, Connected{ConnectionID: "abc"}, nextEvent(t, c))
	cancel()
	assert.Equal(t, Disconnected{}, nextEvent(t, c))
}

func TestEndpointURL(t *testing.T) {
	tests := []struct {
		name    string
		address string
		path    string
		want    string
		wantErr error
	}{
		{name: "bare host port", address: "localhost:5002", want: "ws://localhost:5002/ws"},
		{name: "custom path", address: "localhost:5002", path: "feed", want: "ws://localhost:5002/feed"},
		{name: "http url", address: "http://localhost:5002", want: "ws://localhost:5002/ws"},
		{name: "https url", address: "https://example.com/", want: "wss://example.com/ws"},
		{name: "ws url keeps path", address: "ws://example.com/live", want: "ws://example.com/live"},
		{name: "empty", address: "  ", wantErr: ErrEmptyAddress},
		{name: "bad scheme", address: "ftp://example.com", wantErr: ErrUnsupportedScheme},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := endpointURL(tt.address, tt.path)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConnectionState_String(t *testing.T) {
	assert.Equal(t, "connecting", StateConnecting.String())
	assert.Equal(t, "connected", StateConnected.String())
	assert.Equal(t, "disconnected", StateDisconnected.String())
	assert.True(t, strings.HasPrefix(ConnectionState(42).String(), "unknown"))
}
