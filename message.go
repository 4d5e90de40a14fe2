// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package cable

import "github.com/cablehq/cable-go/packet"

// Message is an application payload sent or received over a session. QoS 0
// is fire-and-forget; QoS 1 is at-least-once, tracked by ID and
// retransmitted with Dup set until acknowledged.
type Message struct {
	QoS     uint8
	Kind    uint8
	Props   packet.Properties
	Payload []byte
}

// Request invokes Method on the peer and is answered by a Response with a
// matching ID, tracked internally by the engine.
type Request struct {
	Method string
	Props  packet.Properties
	Body   []byte
}

// Response answers a Request. A Code other than packet.StatusOK causes the
// requester's call to fail with a StatusError naming the code.
type Response struct {
	Code  packet.StatusCode
	Props packet.Properties
	Body  []byte
}
