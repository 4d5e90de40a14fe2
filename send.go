// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package cable

import (
	"context"

	"github.com/cablehq/cable-go/packet"
)

// Send delivers msg over the session. At QoS 0 it completes as soon as the
// frame is handed to the transport. At QoS 1 it assigns an ID, waits for
// the matching Messack, and retransmits with Dup set up to
// messageMaxRetry times before failing with a MessageTimeoutError. Fails
// immediately with a NotReadyError if the session is not Opened. Canceling
// ctx returns ctx.Err() without canceling the underlying delivery attempt.
func (c *Client) Send(ctx context.Context, msg *Message) error {
	if msg.QoS == 0 {
		return c.submitErr(func() error { return c.sendQoS0(msg) })
	}

	var done chan error
	var notReady error
	c.submit(func() {
		if c.status != Opened {
			notReady = &NotReadyError{Status: c.status}
			return
		}
		done = c.beginQoS1(msg)
	})
	if notReady != nil {
		return notReady
	}

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (c *Client) sendQoS0(msg *Message) error {
	if c.status != Opened {
		return &NotReadyError{Status: c.status}
	}
	p := &packet.Message{
		QoS:     0,
		Kind:    msg.Kind,
		Props:   msg.Props,
		Payload: msg.Payload,
	}
	frame, err := packet.EncodeFrame(p)
	if err != nil {
		return err
	}
	c.trace("out", p)
	return c.conn.Send(frame)
}

// beginQoS1 inserts a messageTask, arms its timeout, and writes the first
// attempt. Must run on the run loop.
func (c *Client) beginQoS1(msg *Message) chan error {
	done := make(chan error, 1)

	id, ok := c.messageIDs.allocate(func(id uint16) bool {
		_, inFlight := c.messageTasks[id]
		return inFlight
	})
	if !ok {
		done <- &MessageTimeoutError{}
		return done
	}

	task := &messageTask{
		id: id,
		msg: &packet.Message{
			ID:      id,
			QoS:     1,
			Kind:    msg.Kind,
			Props:   msg.Props,
			Payload: msg.Payload,
		},
		done: done,
	}
	c.messageTasks[id] = task
	c.metrics.MessageInFlight(1)
	c.armMessageTimeout(task)
	c.writeMessage(task)
	return done
}

func (c *Client) armMessageTimeout(task *messageTask) {
	task.cancel = c.afterFunc(c.messageTimeout, func() { c.onMessageTimeout(task) })
}

// writeMessage encodes and sends task.msg. An encode failure completes the
// task with that error rather than routing through retryWhen, since the send
// itself is a user-facing operation, not an inbound-dispatch failure. A
// transport write error is ignored; the message timeout retransmits. Must
// run on the run loop.
func (c *Client) writeMessage(task *messageTask) {
	frame, err := packet.EncodeFrame(task.msg)
	if err != nil {
		delete(c.messageTasks, task.id)
		task.cancel()
		c.metrics.MessageInFlight(-1)
		task.done <- err
		return
	}
	if c.conn != nil {
		c.trace("out", task.msg)
		_ = c.conn.Send(frame)
	}
}

// onMessageTimeout fires when a Messack does not arrive within
// messageTimeout. It retransmits with Dup set until messageMaxRetry is
// exhausted. Must run on the run loop.
func (c *Client) onMessageTimeout(task *messageTask) {
	if _, ok := c.messageTasks[task.id]; !ok {
		return
	}
	if task.retries >= c.messageMaxRetry {
		delete(c.messageTasks, task.id)
		c.metrics.MessageInFlight(-1)
		task.done <- &MessageTimeoutError{ID: task.id}
		return
	}
	task.retries++
	task.msg.Dup = true
	c.armMessageTimeout(task)
	c.writeMessage(task)
}
