// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package cable

import (
	"log/slog"
	"time"

	"github.com/cablehq/cable-go/internal/log"
	"github.com/cablehq/cable-go/metrics"
	"github.com/cablehq/cable-go/retry"
)

// ClientOption configures a Client at construction time.
type ClientOption func(*Client)

// WithHandler sets the Handler notified of status changes and inbound
// Message/Request traffic. Defaults to NoopHandler.
func WithHandler(h Handler) ClientOption {
	return func(c *Client) { c.handler = h }
}

// WithLogger sets the slog.Logger used for packet tracing and error
// reporting. A nil logger, the default, discards every log call.
func WithLogger(l *slog.Logger) ClientOption {
	return func(c *Client) { c.logger = log.Wrap(l) }
}

// WithMetrics sets the Recorder used to publish connection and traffic
// metrics. A nil Recorder, the default, is a no-op.
func WithMetrics(r *metrics.Recorder) ClientOption {
	return func(c *Client) { c.metrics = r }
}

// WithPingInterval overrides the default 30s heartbeat interval.
func WithPingInterval(d time.Duration) ClientOption {
	return func(c *Client) { c.pingInterval = d }
}

// WithPingTimeout overrides the default 5s heartbeat reply timeout.
func WithPingTimeout(d time.Duration) ClientOption {
	return func(c *Client) { c.pingTimeout = d }
}

// WithRequestTimeout overrides the default 10s Request timeout.
func WithRequestTimeout(d time.Duration) ClientOption {
	return func(c *Client) { c.requestTimeout = d }
}

// WithMessageTimeout overrides the default 10s QoS-1 Messack timeout.
func WithMessageTimeout(d time.Duration) ClientOption {
	return func(c *Client) { c.messageTimeout = d }
}

// WithMessageMaxRetry overrides the default 5 QoS-1 retransmission attempts.
func WithMessageMaxRetry(n int) ClientOption {
	return func(c *Client) { c.messageMaxRetry = n }
}

// AutoRetryOption configures WithAutoRetry the same way ClientOption
// configures NewClient.
type AutoRetryOption func(*retry.Controller)

// WithRetryLimit bounds the number of consecutive reconnect attempts.
// Unlimited (the default) is expressed as limit 0.
func WithRetryLimit(limit uint64) AutoRetryOption {
	return func(ctl *retry.Controller) { ctl.Limit = limit }
}

// WithRetryBackoff overrides the default Exponential(2, 0.1) backoff.
func WithRetryBackoff(b retry.Backoff) AutoRetryOption {
	return func(ctl *retry.Controller) { ctl.Backoff = b }
}

// WithRetryFilter installs a predicate consulted before every reconnect
// decision; returning true gives up instead of retrying.
func WithRetryFilter(suppress func(retry.Reason) bool) AutoRetryOption {
	return func(ctl *retry.Controller) { ctl.Suppress = suppress }
}

// WithAutoRetry installs a retry controller governing reconnect behavior.
// Equivalent to the abstract client.auto_retry({limit, backoff, filter}).
func WithAutoRetry(opts ...AutoRetryOption) ClientOption {
	return func(c *Client) {
		ctl := &retry.Controller{Backoff: defaultBackoff()}
		for _, opt := range opts {
			opt(ctl)
		}
		c.retryCtl = ctl
	}
}
