// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package packet

import "github.com/cablehq/cable-go/wire"

// Request invokes Method on the peer, correlated to its Response by ID.
type Request struct {
	ID     uint16
	Method string
	Props  Properties
	Body   []byte
}

func (*Request) Type() Type { return TypeRequest }

func (r *Request) encodePayload(b *wire.Buffer) error {
	b.WriteU16(r.ID)
	b.WriteString(r.Method)
	if err := r.Props.encode(b); err != nil {
		return err
	}
	b.WriteRaw(r.Body)
	return nil
}

func decodeRequest(b *wire.Buffer) (Packet, error) {
	id, err := b.ReadU16()
	if err != nil {
		return nil, err
	}
	method, err := b.ReadString()
	if err != nil {
		return nil, err
	}
	props, err := decodeProperties(b)
	if err != nil {
		return nil, err
	}
	return &Request{
		ID:     id,
		Method: method,
		Props:  props,
		Body:   append([]byte(nil), b.Remaining()...),
	}, nil
}
