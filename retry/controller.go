// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package retry

import "time"

// Controller decides, for each reconnect Reason the session engine reports,
// whether to retry and how long to wait first. It is reset whenever the
// session reaches Opened.
type Controller struct {
	// Limit bounds the number of consecutive retries; 0 means unlimited.
	Limit uint64
	// Backoff computes the delay before each attempt. Defaults to
	// Exponential{Factor: 2, Jitter: 0.1} if nil.
	Backoff Backoff
	// Suppress, if set, is consulted before every retry decision. The
	// source this behavior is drawn from returns "do not retry" when this
	// predicate is true, so it names a condition to give up on — not a
	// condition to retry on. A nil Suppress never suppresses.
	Suppress func(Reason) bool

	count uint64
}

// ShouldRetry runs the three-step decision: consult Suppress, check Limit,
// then advance the count and consult Backoff. ok is false when the caller
// should give up and transition to Closed instead of Opening again.
func (c *Controller) ShouldRetry(reason Reason) (delay time.Duration, ok bool) {
	if c.Suppress != nil && c.Suppress(reason) {
		return 0, false
	}
	if c.Limit > 0 && c.count >= c.Limit {
		return 0, false
	}
	c.count++
	return c.backoff().Next(c.count), true
}

// Reset zeroes the retry count. Called on every successful transition into
// Opened.
func (c *Controller) Reset() {
	c.count = 0
}

func (c *Controller) backoff() Backoff {
	if c.Backoff == nil {
		return Exponential{Factor: 2, Jitter: 0.1}
	}
	return c.Backoff
}
