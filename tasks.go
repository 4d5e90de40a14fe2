// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package cable

import (
	"time"

	"github.com/cablehq/cable-go/internal/wallclock"
	"github.com/cablehq/cable-go/packet"
)

// messageTask tracks a pending QoS-1 send awaiting its Messack.
type messageTask struct {
	id      uint16
	msg     *packet.Message
	retries int
	cancel  func()
	done    chan error
}

// requestTask tracks a pending Request awaiting its Response.
type requestTask struct {
	id        uint16
	method    string
	startedAt time.Time
	cancel    func()
	done      chan requestResult
}

type requestResult struct {
	resp *Response
	err  error
}

// afterFunc arms a timer that, on expiry, submits fn to the run loop's
// command queue so it executes serialized with every other state mutation.
// The returned cancel func stops the timer and guarantees fn will not run
// afterward.
func (c *Client) afterFunc(d time.Duration, fn func()) (cancel func()) {
	timer := wallclock.Instance.NewTimer(d)
	stop := make(chan struct{})
	var stopped bool

	go func() {
		select {
		case <-timer.C():
			// stopped is only touched on the run loop, so a cancel that
			// lands before this closure runs still keeps fn from running.
			c.cmds <- func() {
				if !stopped {
					fn()
				}
			}
		case <-stop:
			timer.Stop()
		}
	}()

	return func() {
		if !stopped {
			stopped = true
			close(stop)
		}
	}
}
