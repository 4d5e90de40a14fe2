// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package packet

import "github.com/cablehq/cable-go/wire"

// Ping requests a Pong from the peer; either side may send one to detect a
// dead connection.
type Ping struct {
	Props Properties
}

func (*Ping) Type() Type { return TypePing }

func (p *Ping) encodePayload(b *wire.Buffer) error {
	return p.Props.encode(b)
}

func decodePing(b *wire.Buffer) (Packet, error) {
	props, err := decodeProperties(b)
	if err != nil {
		return nil, err
	}
	return &Ping{Props: props}, nil
}

// Pong answers a Ping.
type Pong struct {
	Props Properties
}

func (*Pong) Type() Type { return TypePong }

func (p *Pong) encodePayload(b *wire.Buffer) error {
	return p.Props.encode(b)
}

func decodePong(b *wire.Buffer) (Packet, error) {
	props, err := decodeProperties(b)
	if err != nil {
		return nil, err
	}
	return &Pong{Props: props}, nil
}
