// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

// Package transport abstracts the duplex byte-frame connection a Cable
// session runs over, so the session engine never depends on gorilla/websocket
// directly and can be driven by an in-memory fake in tests.
package transport

import "context"

// Transport is a duplex channel of length-delimited Cable frames. The
// session engine owns a Transport exclusively for the lifetime of one
// connection attempt; a reconnect discards it and opens a new one.
type Transport interface {
	// Open dials the peer and blocks until the connection is ready to send
	// and receive, or ctx is done, or dialing fails.
	Open(ctx context.Context) error

	// Send writes one frame. It does not block waiting for delivery
	// acknowledgment; the underlying connection is expected to preserve
	// frame order.
	Send(frame []byte) error

	// Frames yields inbound frames as they arrive. It is closed, along with
	// Errors, when the connection ends for any reason including a call to
	// Close.
	Frames() <-chan []byte

	// Errors yields at most one value: the reason the connection ended, if
	// it ended for a reason other than a local call to Close.
	Errors() <-chan error

	// Close tears down the connection. Idempotent.
	Close() error
}
