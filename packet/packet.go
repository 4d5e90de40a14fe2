// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package packet

import "github.com/cablehq/cable-go/wire"

// Type identifies one of the nine packet kinds Cable defines. It occupies
// the top 4 bits of a frame's header byte.
type Type uint8

const (
	TypeConnect Type = iota
	TypeConnack
	TypeMessage
	TypeMessack
	TypeRequest
	TypeResponse
	TypePing
	TypePong
	TypeClose
)

func (t Type) String() string {
	switch t {
	case TypeConnect:
		return "connect"
	case TypeConnack:
		return "connack"
	case TypeMessage:
		return "message"
	case TypeMessack:
		return "messack"
	case TypeRequest:
		return "request"
	case TypeResponse:
		return "response"
	case TypePing:
		return "ping"
	case TypePong:
		return "pong"
	case TypeClose:
		return "close"
	default:
		return "unknown"
	}
}

// Packet is any of the nine Cable packet kinds. encodePayload writes the
// packet's body only; frame header construction is handled by EncodeFrame.
type Packet interface {
	Type() Type
	encodePayload(b *wire.Buffer) error
}

// decodePayload builds the concrete packet for t from its already-isolated
// payload bytes.
func decodePayload(t Type, payload []byte) (Packet, error) {
	d := wire.NewDecoder(payload)
	switch t {
	case TypeConnect:
		return decodeConnect(d)
	case TypeConnack:
		return decodeConnack(d)
	case TypeMessage:
		return decodeMessage(d)
	case TypeMessack:
		return decodeMessack(d)
	case TypeRequest:
		return decodeRequest(d)
	case TypeResponse:
		return decodeResponse(d)
	case TypePing:
		return decodePing(d)
	case TypePong:
		return decodePong(d)
	case TypeClose:
		return decodeClose(d)
	default:
		return nil, &UnknownPacketTypeError{Type: uint8(t)}
	}
}
