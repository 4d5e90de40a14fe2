// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package cable

import (
	"github.com/cablehq/cable-go/internal/wallclock"
	"github.com/cablehq/cable-go/packet"
	"github.com/cablehq/cable-go/retry"
)

// onFrame decodes one inbound frame and routes it. A decode failure is
// treated as a transport error, since a malformed frame means the stream
// itself can no longer be trusted. Must run on the run loop.
func (c *Client) onFrame(data []byte) {
	p, _, err := packet.DecodeFrame(data)
	if err != nil {
		c.retryWhen(retry.NetworkError{Err: err})
		return
	}
	c.trace("in", p)

	switch pkt := p.(type) {
	case *packet.Connect:
		// Clients never receive a Connect.
	case *packet.Connack:
		c.onConnack(pkt)
	case *packet.Message:
		c.onMessage(pkt)
	case *packet.Messack:
		c.onMessack(pkt)
	case *packet.Request:
		c.onRequest(pkt)
	case *packet.Response:
		c.onResponse(pkt)
	case *packet.Ping:
		c.onPing(pkt)
	case *packet.Pong:
		c.onPong(pkt)
	case *packet.Close:
		c.retryWhen(retry.ServerClosed{Code: pkt.Code})
	}
}

func (c *Client) onConnack(pkt *packet.Connack) {
	c.metrics.ConnectAttempt(pkt.Code.String())
	if pkt.Code != packet.Accepted {
		c.retryWhen(retry.ConnectFailed{Code: pkt.Code})
		return
	}
	c.retryCtl.Reset()
	c.setStatus(Opened)
	c.startHeartbeat()
}

func (c *Client) onMessage(pkt *packet.Message) {
	c.handler.OnMessage(&Message{
		QoS:     pkt.QoS,
		Kind:    pkt.Kind,
		Props:   pkt.Props,
		Payload: pkt.Payload,
	})
	if pkt.QoS == 1 {
		c.sendFrame(&packet.Messack{ID: pkt.ID})
	}
}

func (c *Client) onMessack(pkt *packet.Messack) {
	task, ok := c.messageTasks[pkt.ID]
	if !ok {
		return
	}
	task.cancel()
	delete(c.messageTasks, pkt.ID)
	c.metrics.MessageInFlight(-1)
	task.done <- nil
}

func (c *Client) onRequest(pkt *packet.Request) {
	resp := c.handler.OnRequest(&Request{
		Method: pkt.Method,
		Props:  pkt.Props,
		Body:   pkt.Body,
	})
	c.sendFrame(&packet.Response{
		ID:    pkt.ID,
		Code:  resp.Code,
		Props: resp.Props,
		Body:  resp.Body,
	})
}

func (c *Client) onResponse(pkt *packet.Response) {
	task, ok := c.requestTasks[pkt.ID]
	if !ok {
		return
	}
	task.cancel()
	delete(c.requestTasks, pkt.ID)

	if pkt.Code != packet.StatusOK {
		c.completeRequest(task, requestResult{err: &StatusError{Code: pkt.Code}})
		return
	}
	c.completeRequest(task, requestResult{resp: &Response{
		Code:  pkt.Code,
		Props: pkt.Props,
		Body:  pkt.Body,
	}})
}

func (c *Client) onPing(*packet.Ping) {
	c.sendFrame(&packet.Pong{})
}

func (c *Client) onPong(*packet.Pong) {
	c.pongReceived = true
	if !c.pingSentAt.IsZero() {
		c.metrics.HeartbeatRTT(wallclock.Instance.Now().Sub(c.pingSentAt))
	}
	if c.cancelPong != nil {
		c.cancelPong()
		c.cancelPong = nil
	}
}

// sendFrame encodes and writes p, folding any failure into retryWhen the
// same way a read failure is. Must run on the run loop.
func (c *Client) sendFrame(p packet.Packet) {
	frame, err := packet.EncodeFrame(p)
	if err != nil {
		c.retryWhen(retry.NetworkError{Err: err})
		return
	}
	if c.conn == nil {
		return
	}
	c.trace("out", p)
	if err := c.conn.Send(frame); err != nil {
		c.retryWhen(retry.NetworkError{Err: err})
	}
}
