// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package cable

import (
	"context"

	"github.com/cablehq/cable-go/internal/wallclock"
	"github.com/cablehq/cable-go/packet"
)

// Request invokes method on the peer and waits for its Response. It fails
// immediately with a NotReadyError if the session is not Opened, with a
// StatusError if the Response carries a non-OK code, or with a
// RequestTimeoutError if no Response arrives within requestTimeout.
// Canceling ctx returns ctx.Err() without canceling the underlying call.
func (c *Client) Request(ctx context.Context, req *Request) (*Response, error) {
	var done chan requestResult
	var notReady error
	c.submit(func() {
		if c.status != Opened {
			notReady = &NotReadyError{Status: c.status}
			return
		}
		done = c.beginRequest(req)
	})
	if notReady != nil {
		return nil, notReady
	}

	select {
	case res := <-done:
		return res.resp, res.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// beginRequest inserts a requestTask, arms its timeout, and writes the
// frame. Must run on the run loop.
func (c *Client) beginRequest(req *Request) chan requestResult {
	done := make(chan requestResult, 1)

	id, ok := c.requestIDs.allocate(func(id uint16) bool {
		_, inFlight := c.requestTasks[id]
		return inFlight
	})
	if !ok {
		done <- requestResult{err: &RequestTimeoutError{Method: req.Method}}
		return done
	}

	task := &requestTask{id: id, method: req.Method, startedAt: wallclock.Instance.Now(), done: done}
	c.requestTasks[id] = task
	c.metrics.RequestInFlight(1)
	task.cancel = c.afterFunc(c.requestTimeout, func() { c.onRequestTimeout(task) })

	p := &packet.Request{
		ID:     id,
		Method: req.Method,
		Props:  req.Props,
		Body:   req.Body,
	}
	frame, err := packet.EncodeFrame(p)
	if err != nil {
		delete(c.requestTasks, id)
		task.cancel()
		c.completeRequest(task, requestResult{err: err})
		return done
	}
	if c.conn != nil {
		c.trace("out", p)
		_ = c.conn.Send(frame)
	}
	return done
}

// onRequestTimeout fires when a Response does not arrive within
// requestTimeout. Must run on the run loop.
func (c *Client) onRequestTimeout(task *requestTask) {
	if _, ok := c.requestTasks[task.id]; !ok {
		return
	}
	delete(c.requestTasks, task.id)
	c.completeRequest(task, requestResult{err: &RequestTimeoutError{ID: task.id, Method: task.method}})
}

// completeRequest records the request's metrics and delivers res to the
// caller. Must run on the run loop.
func (c *Client) completeRequest(task *requestTask, res requestResult) {
	c.metrics.RequestInFlight(-1)
	c.metrics.RequestLatency(wallclock.Instance.Now().Sub(task.startedAt))
	task.done <- res
}
