// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package cable

import (
	"context"
	"log/slog"
	"time"

	"github.com/cablehq/cable-go/internal"
	"github.com/cablehq/cable-go/internal/log"
	"github.com/cablehq/cable-go/internal/logutil"
	"github.com/cablehq/cable-go/metrics"
	"github.com/cablehq/cable-go/packet"
	"github.com/cablehq/cable-go/retry"
	"github.com/cablehq/cable-go/transport"
)

// Client is a Cable session: a single logical connection to a peer that
// reconnects under a retry policy and multiplexes Message/Request traffic
// over it. All exported methods are safe to call concurrently; every state
// mutation is serialized onto a single run-loop goroutine.
type Client struct {
	dial    func() transport.Transport
	handler Handler
	logger  log.Logger
	metrics *metrics.Recorder

	pingInterval    time.Duration
	pingTimeout     time.Duration
	requestTimeout  time.Duration
	messageTimeout  time.Duration
	messageMaxRetry int

	retryCtl *retry.Controller

	cmds       chan func()
	background *internal.Background

	statusListeners *internal.AppendableListWithRemoval[func(Status)]

	// Every field below is touched only from inside run(); cmds is the sole
	// path by which the outside world reaches them.
	identity     Identity
	status       Status
	messageIDs   idAllocator
	requestIDs   idAllocator
	conn         transport.Transport
	frames       <-chan []byte
	transportErr <-chan error
	messageTasks map[uint16]*messageTask
	requestTasks map[uint16]*requestTask
	pongReceived bool
	pingSentAt   time.Time
	cancelPing   func()
	cancelPong   func()
}

// NewClient constructs a Client with the given options applied over Cable's
// documented defaults. The Client's run loop starts immediately; Connect
// must still be called to open a session.
func NewClient(dial func() transport.Transport, opts ...ClientOption) *Client {
	c := &Client{
		dial:            dial,
		handler:         NoopHandler{},
		pingInterval:    defaultPingInterval,
		pingTimeout:     defaultPingTimeout,
		requestTimeout:  defaultRequestTimeout,
		messageTimeout:  defaultMessageTimeout,
		messageMaxRetry: defaultMessageMaxRetry,
		retryCtl:        &retry.Controller{Backoff: defaultBackoff()},
		cmds:            make(chan func()),
		background:      internal.NewBackground(context.Canceled),
		statusListeners: internal.NewAppendableListWithRemoval[func(Status)](),
		messageTasks:    make(map[uint16]*messageTask),
		requestTasks:    make(map[uint16]*requestTask),
	}
	for _, opt := range opts {
		opt(c)
	}
	go c.run()
	return c
}

// ID returns the ClientID from the Identity most recently passed to
// Connect, empty before the first Connect call.
func (c *Client) ID() string {
	return c.submitString(func() string { return c.identity.ClientID })
}

// Status returns the session's current lifecycle status.
func (c *Client) Status() Status {
	return c.submitStatus(func() Status { return c.status })
}

// IsReady reports whether the session is in the Opened status and can
// accept Send/Request calls.
func (c *Client) IsReady() bool {
	return c.Status() == Opened
}

// submit runs fn on the run loop and waits for it to finish. Used by every
// public method so no field above is ever read or written concurrently with
// run's own goroutine. The run loop lives for the lifetime of the Client:
// reaching Closed only tears down the transport and pending tasks, so a
// later Connect can reopen the session over the same loop.
func (c *Client) submit(fn func()) {
	done := make(chan struct{})
	c.cmds <- func() { fn(); close(done) }
	<-done
}

func (c *Client) submitString(fn func() string) string {
	var v string
	c.submit(func() { v = fn() })
	return v
}

func (c *Client) submitStatus(fn func() Status) Status {
	var v Status
	c.submit(func() { v = fn() })
	return v
}

func (c *Client) submitErr(fn func() error) error {
	var v error
	c.submit(func() { v = fn() })
	return v
}

func (c *Client) setStatus(s Status) {
	if c.status == s {
		return
	}
	c.status = s
	c.handler.OnStatus(s)
	for fn := range c.statusListeners.All() {
		fn(s)
	}
	if s == Closed {
		c.background.Close()
	}
}

// OnStatusChange registers fn to run, alongside the Handler's OnStatus,
// whenever the session's status changes. It is meant for observers that
// want status notifications without displacing the Handler that answers
// Requests, e.g. a metrics exporter or a second log sink. The returned
// func removes the registration.
func (c *Client) OnStatusChange(fn func(Status)) (unsubscribe func()) {
	var remove func()
	c.submit(func() { remove = c.statusListeners.AppendEntry(fn) })
	return func() { c.submit(remove) }
}

// Context derives a context from parent that is canceled when parent is
// canceled or the session reaches Closed, whichever happens first. It lets
// a caller scope goroutines or downstream calls to the session's lifetime
// without polling Status.
func (c *Client) Context(parent context.Context) (context.Context, context.CancelFunc) {
	return c.background.With(parent)
}

// trace logs p at debug level, tagged with its direction ("in" or "out"),
// reflecting its fields into attributes via logutil. A no-op when no Logger
// was configured.
func (c *Client) trace(dir string, p packet.Packet) {
	ctx := context.Background()
	if !c.logger.Enabled(ctx, slog.LevelDebug) {
		return
	}
	attrs := append(logutil.PacketAttrs(p), slog.String("dir", dir), slog.String("type", p.Type().String()))
	c.logger.Log(ctx, slog.LevelDebug, "packet", attrs...)
}

// run is the session's single goroutine: every field but cmds is touched
// only here, and it runs for the Client's entire lifetime. Reaching Closed
// tears down the transport (frames/transportErr go nil) but leaves the loop
// serving cmds, so a later Connect can dial fresh and resume delivery to
// the very channels this loop already selects on.
func (c *Client) run() {
	for {
		select {
		case fn := <-c.cmds:
			fn()

		case frame, ok := <-c.frames:
			if !ok {
				c.frames = nil
				continue
			}
			c.onFrame(frame)

		case err, ok := <-c.transportErr:
			if !ok {
				c.transportErr = nil
				continue
			}
			c.retryWhen(retry.NetworkError{Err: err})
		}
	}
}
