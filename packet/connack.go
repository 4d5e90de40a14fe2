// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package packet

import "github.com/cablehq/cable-go/wire"

// Connack answers a Connect with the outcome of the attempt.
type Connack struct {
	Code  ConnackCode
	Props Properties
}

func (*Connack) Type() Type { return TypeConnack }

func (c *Connack) encodePayload(b *wire.Buffer) error {
	b.WriteU8(uint8(c.Code))
	return c.Props.encode(b)
}

func decodeConnack(b *wire.Buffer) (Packet, error) {
	code, err := b.ReadU8()
	if err != nil {
		return nil, err
	}
	props, err := decodeProperties(b)
	if err != nil {
		return nil, err
	}
	return &Connack{Code: ConnackCode(code), Props: props}, nil
}
