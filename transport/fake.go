// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package transport

import (
	"context"
	"errors"
	"sync"

	"github.com/cablehq/cable-go/internal"
)

// ErrFakeClosed is delivered on Errors when a Fake's peer closes the pipe
// instead of the Fake itself.
var ErrFakeClosed = errors.New("transport: fake pipe closed")

// Fake is an in-memory Transport for engine tests: frames Sent on one side
// are delivered on the other's Frames channel. Use NewFakePair to get a
// connected pair.
type Fake struct {
	mu      sync.Mutex
	peer    *Fake
	frames  *internal.BufferChan[[]byte]
	errs    *internal.BufferChan[error]
	closed  bool
	openErr error
}

// NewFakePair returns two Fake transports wired to each other: frames Sent
// on client arrive on server's Frames channel and vice versa.
func NewFakePair() (client, server *Fake) {
	client = &Fake{frames: internal.NewBufferChan[[]byte](64), errs: internal.NewBufferChan[error](1)}
	server = &Fake{frames: internal.NewBufferChan[[]byte](64), errs: internal.NewBufferChan[error](1)}
	client.peer = server
	server.peer = client
	return client, server
}

// FailOpen makes the next Open call return err instead of succeeding, the
// same way a real dial can fail before any frame is exchanged.
func (f *Fake) FailOpen(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.openErr = err
}

func (f *Fake) Open(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.openErr != nil {
		return f.openErr
	}
	f.closed = false
	return nil
}

// Send hands frame to the peer's buffered Frames channel. Delivery is
// best-effort: a full or closed peer buffer drops the frame and Send
// reports a closed-peer error, the same as a dead socket would.
func (f *Fake) Send(frame []byte) error {
	f.mu.Lock()
	peer, closed := f.peer, f.closed
	f.mu.Unlock()
	if closed {
		return errors.New("transport: fake send on closed transport")
	}

	cpy := append([]byte(nil), frame...)
	if !peer.frames.Send(cpy) {
		return errors.New("transport: fake send to closed peer")
	}
	return nil
}

func (f *Fake) Frames() <-chan []byte { return f.frames.C }

func (f *Fake) Errors() <-chan error { return f.errs.C }

// Close tears down this side and, if the peer has not already closed, wakes
// it with ErrFakeClosed on its Errors channel.
func (f *Fake) Close() error {
	if !f.terminate(nil) {
		return nil
	}
	if peer := f.peer; peer != nil {
		peer.terminate(ErrFakeClosed)
	}
	return nil
}

// terminate closes frames/errs exactly once, delivering err first if
// non-nil. It reports whether this call performed the termination.
func (f *Fake) terminate(err error) bool {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return false
	}
	f.closed = true
	f.mu.Unlock()

	if err != nil {
		f.errs.Send(err)
	}
	f.frames.Close()
	f.errs.Close()
	return true
}
