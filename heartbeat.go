// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package cable

import (
	"github.com/cablehq/cable-go/internal/wallclock"
	"github.com/cablehq/cable-go/packet"
	"github.com/cablehq/cable-go/retry"
)

// startHeartbeat arms the first ping cycle on entering Opened. Must run on
// the run loop.
func (c *Client) startHeartbeat() {
	c.armPing()
}

// armPing schedules the next Ping for pingInterval from now. Must run on
// the run loop.
func (c *Client) armPing() {
	c.cancelPing = c.afterFunc(c.pingInterval, c.sendPing)
}

// sendPing fires on the ping timer: it sends a Ping, arms the pong-timeout
// watchdog, and reschedules the next ping cycle. Must run on the run loop.
func (c *Client) sendPing() {
	if c.status != Opened {
		return
	}
	c.pongReceived = false
	c.pingSentAt = wallclock.Instance.Now()
	c.sendFrame(&packet.Ping{})
	c.cancelPong = c.afterFunc(c.pingTimeout, c.checkPong)
	c.armPing()
}

// checkPong fires on the pong-timeout watchdog. If no Pong arrived since
// the last Ping was sent, the connection is presumed dead. Must run on the
// run loop.
func (c *Client) checkPong() {
	if c.status != Opened || c.pongReceived {
		return
	}
	c.retryWhen(retry.PingTimeout{})
}
