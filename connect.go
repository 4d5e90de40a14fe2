// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package cable

import (
	"context"

	"github.com/cablehq/cable-go/internal"
	"github.com/cablehq/cable-go/packet"
	"github.com/cablehq/cable-go/retry"
)

// Connect opens a session. Valid from Unknown/Closed; a call while Opening
// or Opened is a no-op. Identity is retained for the lifetime of the
// session, including any ClientID generated for an empty one, so a later
// reconnect presents the same identity.
func (c *Client) Connect(identity Identity) {
	c.submit(func() {
		if c.status == Opening || c.status == Opened {
			return
		}
		if c.status == Closed {
			// The previous session's Context derivatives must stay
			// canceled; a reconnect starts a new one.
			c.background = internal.NewBackground(context.Canceled)
		}
		c.identity = identity.withDefaultClientID()
		c.retryCtl.Reset()
		c.beginOpen()
	})
}

// beginOpen dials the transport and, once open, sends the Connect packet.
// Any failure along the way is handed to retryWhen rather than returned,
// since dialing happens off the caller's goroutine on a reconnect. Must run
// on the run loop.
func (c *Client) beginOpen() {
	c.setStatus(Opening)

	conn := c.dial()
	if err := conn.Open(context.Background()); err != nil {
		c.retryWhen(retry.NetworkError{Err: err})
		return
	}
	c.conn = conn
	c.frames = conn.Frames()
	c.transportErr = conn.Errors()

	p := &packet.Connect{
		Version:  packet.ProtocolVersion,
		UserID:   c.identity.UserID,
		ClientID: c.identity.ClientID,
		Password: c.identity.Password,
	}
	frame, err := packet.EncodeFrame(p)
	if err != nil {
		c.retryWhen(retry.NetworkError{Err: err})
		return
	}
	c.trace("out", p)
	if err := conn.Send(frame); err != nil {
		c.retryWhen(retry.NetworkError{Err: err})
	}
}

// Close ends the session. Valid from Opening/Opened; if code is supplied, a
// Close frame is sent best-effort before the transport is torn down. A
// failure to write that frame is never surfaced to the caller. Idempotent in
// Closing/Closed.
func (c *Client) Close(code ...packet.CloseCode) {
	c.submit(func() {
		if c.status == Closing || c.status == Closed {
			return
		}
		c.setStatus(Closing)
		if len(code) > 0 && c.conn != nil {
			p := &packet.Close{Code: code[0]}
			if frame, err := packet.EncodeFrame(p); err == nil {
				c.trace("out", p)
				_ = c.conn.Send(frame)
			}
		}
		c.metrics.SessionClosed("client")
		c.teardown(&ClosedError{})
	})
}

// retryWhen tears down the current connection attempt and either schedules
// a reconnect or gives up, per the retry controller's decision. reason is
// also the failure every pending Send/Request future observes. Must run on
// the run loop.
func (c *Client) retryWhen(reason retry.Reason) {
	if c.status == Closed || c.status == Closing {
		return
	}
	if err := asError(reason); err != nil {
		c.logger.Err(context.Background(), err)
	}

	c.dropConn()
	c.failPending(&ClosedError{Reason: asError(reason)})

	delay, ok := c.retryCtl.ShouldRetry(reason)
	if !ok {
		c.metrics.SessionClosed("give_up")
		c.setStatus(Closed)
		return
	}
	c.metrics.RetryDelay(delay)

	c.setStatus(Opening)
	c.afterFunc(delay, func() {
		if c.status != Opening {
			return
		}
		c.beginOpen()
	})
}

// teardown drops the transport and timers, fails every pending future with
// reason, and moves to Closed. Must run on the run loop.
func (c *Client) teardown(reason error) {
	c.dropConn()
	c.failPending(reason)
	c.setStatus(Closed)
}

// dropConn cancels heartbeat timers and closes the current transport, if
// any. Must run on the run loop.
func (c *Client) dropConn() {
	if c.cancelPing != nil {
		c.cancelPing()
		c.cancelPing = nil
	}
	if c.cancelPong != nil {
		c.cancelPong()
		c.cancelPong = nil
	}
	if c.conn != nil {
		_ = c.conn.Close()
		c.conn = nil
	}
	c.frames = nil
	c.transportErr = nil
}

// failPending completes every outstanding message/request task with reason
// and clears both correlation tables. Must run on the run loop.
func (c *Client) failPending(reason error) {
	for id, task := range c.messageTasks {
		task.cancel()
		delete(c.messageTasks, id)
		c.metrics.MessageInFlight(-1)
		task.done <- reason
	}
	for id, task := range c.requestTasks {
		task.cancel()
		delete(c.requestTasks, id)
		c.completeRequest(task, requestResult{err: reason})
	}
}

func asError(reason retry.Reason) error {
	if err, ok := reason.(error); ok {
		return err
	}
	return nil
}
