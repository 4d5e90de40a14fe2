// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package cable

import (
	"fmt"

	"github.com/cablehq/cable-go/packet"
)

// NotReadyError is returned by Send and Request when the session is not in
// the Opened status.
type NotReadyError struct {
	Status Status
}

func (e *NotReadyError) Error() string {
	return fmt.Sprintf("cable: not ready: session status is %s", e.Status)
}

// MessageTimeoutError is returned by Send for a QoS-1 message that received
// no Messack within messageTimeout, after exhausting messageMaxRetry
// retransmissions.
type MessageTimeoutError struct {
	ID uint16
}

func (e *MessageTimeoutError) Error() string {
	return fmt.Sprintf("cable: message %d timed out waiting for ack", e.ID)
}

// RequestTimeoutError is returned by Request when no Response arrives
// within requestTimeout.
type RequestTimeoutError struct {
	ID     uint16
	Method string
}

func (e *RequestTimeoutError) Error() string {
	return fmt.Sprintf("cable: request %d (%s) timed out", e.ID, e.Method)
}

// StatusError is returned by Request when the Response carries a non-OK
// StatusCode.
type StatusError struct {
	Code packet.StatusCode
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("cable: request failed: %s", e.Code)
}

// ClosedError is the reason every pending Send/Request future is failed
// with when the session leaves Opened while they are outstanding, whether
// it then reconnects or reaches Closed.
type ClosedError struct {
	// Reason is the retry.Reason that ended the session, if any. It is nil
	// when Close was called directly by the caller.
	Reason error
}

func (e *ClosedError) Error() string {
	if e.Reason != nil {
		return fmt.Sprintf("cable: session closed: %v", e.Reason)
	}
	return "cable: session closed"
}

func (e *ClosedError) Unwrap() error {
	return e.Reason
}
