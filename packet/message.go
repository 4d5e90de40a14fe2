// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package packet

import "github.com/cablehq/cable-go/wire"

// maxMessageKind is the largest value Kind may take: the flags byte reserves
// its top 2 bits for QoS and Dup, leaving 6 bits for Kind.
const maxMessageKind = 0x3F

// Message carries an application payload at either QoS 0 (fire and forget)
// or QoS 1 (at-least-once, tracked by ID and retransmitted with Dup set
// until acknowledged by a Messack).
type Message struct {
	ID      uint16
	QoS     uint8
	Dup     bool
	Kind    uint8
	Props   Properties
	Payload []byte
}

func (*Message) Type() Type { return TypeMessage }

func (m *Message) encodePayload(b *wire.Buffer) error {
	if m.Kind > maxMessageKind {
		return &MessageKindTooLargeError{Kind: m.Kind}
	}
	flags := m.Kind & maxMessageKind
	if m.QoS != 0 {
		flags |= 1 << 7
	}
	if m.Dup {
		flags |= 1 << 6
	}
	b.WriteU8(flags)
	b.WriteU16(m.ID)
	if err := m.Props.encode(b); err != nil {
		return err
	}
	b.WriteRaw(m.Payload)
	return nil
}

func decodeMessage(b *wire.Buffer) (Packet, error) {
	flags, err := b.ReadU8()
	if err != nil {
		return nil, err
	}
	id, err := b.ReadU16()
	if err != nil {
		return nil, err
	}
	props, err := decodeProperties(b)
	if err != nil {
		return nil, err
	}
	qos := uint8(0)
	if flags&(1<<7) != 0 {
		qos = 1
	}
	return &Message{
		ID:      id,
		QoS:     qos,
		Dup:     flags&(1<<6) != 0,
		Kind:    flags & maxMessageKind,
		Props:   props,
		Payload: append([]byte(nil), b.Remaining()...),
	}, nil
}
