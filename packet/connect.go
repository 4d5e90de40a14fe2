// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package packet

import "github.com/cablehq/cable-go/wire"

// ProtocolVersion is the only Connect version this package emits and
// accepts.
const ProtocolVersion uint8 = 1

// Connect opens a session. UserID and ClientID identify the connecting
// client; Password authenticates it. Props carries any additional
// connection metadata the caller wants the peer to see.
type Connect struct {
	Version  uint8
	UserID   string
	ClientID string
	Password string
	Props    Properties
}

func (*Connect) Type() Type { return TypeConnect }

func (c *Connect) encodePayload(b *wire.Buffer) error {
	b.WriteU8(c.Version)
	b.WriteString(c.UserID)
	b.WriteString(c.ClientID)
	b.WriteString(c.Password)
	return c.Props.encode(b)
}

func decodeConnect(b *wire.Buffer) (Packet, error) {
	version, err := b.ReadU8()
	if err != nil {
		return nil, err
	}
	userID, err := b.ReadString()
	if err != nil {
		return nil, err
	}
	clientID, err := b.ReadString()
	if err != nil {
		return nil, err
	}
	password, err := b.ReadString()
	if err != nil {
		return nil, err
	}
	props, err := decodeProperties(b)
	if err != nil {
		return nil, err
	}
	return &Connect{
		Version:  version,
		UserID:   userID,
		ClientID: clientID,
		Password: password,
		Props:    props,
	}, nil
}
