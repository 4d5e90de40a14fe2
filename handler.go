// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package cable

import "github.com/cablehq/cable-go/packet"

// Handler receives events from a Client: status changes, inbound Messages,
// and inbound Requests. A Request delivered to OnRequest must be answered
// with a Response; the engine sends whatever Response is returned.
type Handler interface {
	OnStatus(status Status)
	OnMessage(msg *Message)
	OnRequest(req *Request) *Response
}

// NoopHandler implements Handler with methods that do nothing and, for
// OnRequest, answer with StatusNotFound. Embed it in a Handler that only
// cares about a subset of events.
type NoopHandler struct{}

func (NoopHandler) OnStatus(Status) {}

func (NoopHandler) OnMessage(*Message) {}

func (NoopHandler) OnRequest(req *Request) *Response {
	return &Response{Code: packet.StatusNotFound}
}
