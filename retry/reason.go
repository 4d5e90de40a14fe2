// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

// Package retry implements Cable's reconnect backoff: pluggable delay
// strategies and a controller that decides, given the reason a session left
// Opened, whether and how long to wait before reconnecting.
package retry

import (
	"fmt"

	"github.com/cablehq/cable-go/packet"
)

// Reason describes why the session left Opened. The retry controller's
// filter predicate is evaluated against one of these on every reconnect
// decision.
type Reason interface {
	reason()
}

// ConnectFailed reports a non-Accepted Connack.
type ConnectFailed struct {
	Code packet.ConnackCode
}

func (ConnectFailed) reason() {}

func (r ConnectFailed) Error() string {
	return fmt.Sprintf("connect failed: %s", r.Code)
}

// ServerClosed reports a Close frame received from the peer.
type ServerClosed struct {
	Code packet.CloseCode
}

func (ServerClosed) reason() {}

func (r ServerClosed) Error() string {
	return fmt.Sprintf("server closed the session: %s", r.Code)
}

// NetworkError reports a transport-level failure (dial, read, or write).
type NetworkError struct {
	Err error
}

func (NetworkError) reason() {}

func (r NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", r.Err)
}

// PingTimeout reports that a heartbeat Pong was not received in time.
type PingTimeout struct{}

func (PingTimeout) reason() {}

func (PingTimeout) Error() string { return "ping timeout" }
