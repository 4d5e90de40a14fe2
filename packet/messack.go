// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package packet

import "github.com/cablehq/cable-go/wire"

// Messack acknowledges receipt of a QoS 1 Message, ending the sender's
// retransmission of that ID.
type Messack struct {
	ID    uint16
	Props Properties
}

func (*Messack) Type() Type { return TypeMessack }

func (m *Messack) encodePayload(b *wire.Buffer) error {
	b.WriteU16(m.ID)
	return m.Props.encode(b)
}

func decodeMessack(b *wire.Buffer) (Packet, error) {
	id, err := b.ReadU16()
	if err != nil {
		return nil, err
	}
	props, err := decodeProperties(b)
	if err != nil {
		return nil, err
	}
	return &Messack{ID: id, Props: props}, nil
}
