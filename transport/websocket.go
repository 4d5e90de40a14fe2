// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package transport

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

// subprotocol is the WebSocket subprotocol Cable negotiates so that a server
// speaking multiple protocols on the same endpoint can tell them apart.
const subprotocol = "cable"

// TLSConfigProvider returns a *tls.Config to use when dialing, or nil to use
// the default. It is a function rather than a value so it can be refreshed
// on every reconnect, mirroring how a session engine refreshes credentials.
type TLSConfigProvider func(context.Context) (*tls.Config, error)

// ConstantTLSConfig is a TLSConfigProvider that always returns the same
// *tls.Config.
func ConstantTLSConfig(config *tls.Config) TLSConfigProvider {
	return func(context.Context) (*tls.Config, error) { return config, nil }
}

// WebSocketTransport is a Transport over a gorilla/websocket connection,
// using binary frames exclusively and the "cable" subprotocol.
type WebSocketTransport struct {
	URL       string
	Header    http.Header
	TLSConfig TLSConfigProvider

	mu     sync.Mutex
	conn   *websocket.Conn
	frames chan []byte
	errs   chan error
	closed bool
}

// NewWebSocketTransport constructs a transport that dials url on Open.
func NewWebSocketTransport(url string) *WebSocketTransport {
	return &WebSocketTransport{URL: url}
}

func (t *WebSocketTransport) Open(ctx context.Context) error {
	dialer := websocket.Dialer{
		Subprotocols: []string{subprotocol},
	}
	if t.TLSConfig != nil {
		cfg, err := t.TLSConfig(ctx)
		if err != nil {
			return fmt.Errorf("transport: building TLS config: %w", err)
		}
		dialer.TLSClientConfig = cfg
	}

	conn, _, err := dialer.DialContext(ctx, t.URL, t.Header)
	if err != nil {
		return fmt.Errorf("transport: dialing %s: %w", t.URL, err)
	}

	t.mu.Lock()
	t.conn = conn
	t.frames = make(chan []byte, 16)
	t.errs = make(chan error, 1)
	t.closed = false
	t.mu.Unlock()

	go t.readLoop(conn, t.frames, t.errs)
	return nil
}

func (t *WebSocketTransport) readLoop(
	conn *websocket.Conn,
	frames chan<- []byte,
	errs chan<- error,
) {
	defer close(frames)
	defer close(errs)

	for {
		kind, data, err := conn.ReadMessage()
		if err != nil {
			t.mu.Lock()
			suppress := t.closed
			t.mu.Unlock()
			if !suppress {
				errs <- fmt.Errorf("transport: read: %w", err)
			}
			return
		}
		if kind != websocket.BinaryMessage {
			continue
		}
		frames <- data
	}
}

func (t *WebSocketTransport) Send(frame []byte) error {
	t.mu.Lock()
	conn := t.conn
	t.mu.Unlock()
	if conn == nil {
		return fmt.Errorf("transport: not open")
	}
	if err := conn.WriteMessage(websocket.BinaryMessage, frame); err != nil {
		return fmt.Errorf("transport: write: %w", err)
	}
	return nil
}

func (t *WebSocketTransport) Frames() <-chan []byte { return t.frames }

func (t *WebSocketTransport) Errors() <-chan error { return t.errs }

func (t *WebSocketTransport) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed || t.conn == nil {
		return nil
	}
	t.closed = true
	return t.conn.Close()
}
