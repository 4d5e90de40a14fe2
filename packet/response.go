// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package packet

import "github.com/cablehq/cable-go/wire"

// Response answers a Request with the same ID. A Code other than StatusOK
// causes the caller's Request to fail with an error named after the code.
type Response struct {
	ID    uint16
	Code  StatusCode
	Props Properties
	Body  []byte
}

func (*Response) Type() Type { return TypeResponse }

func (r *Response) encodePayload(b *wire.Buffer) error {
	b.WriteU16(r.ID)
	b.WriteU8(uint8(r.Code))
	if err := r.Props.encode(b); err != nil {
		return err
	}
	b.WriteRaw(r.Body)
	return nil
}

func decodeResponse(b *wire.Buffer) (Packet, error) {
	id, err := b.ReadU16()
	if err != nil {
		return nil, err
	}
	code, err := b.ReadU8()
	if err != nil {
		return nil, err
	}
	props, err := decodeProperties(b)
	if err != nil {
		return nil, err
	}
	return &Response{
		ID:    id,
		Code:  StatusCode(code),
		Props: props,
		Body:  append([]byte(nil), b.Remaining()...),
	}, nil
}
