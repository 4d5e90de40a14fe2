// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package packet

import "github.com/cablehq/cable-go/wire"

// Close ends a session, carrying the reason either side is tearing it down.
// Unlike every other packet kind, Close has no property map: its payload is
// exactly one byte.
type Close struct {
	Code CloseCode
}

func (*Close) Type() Type { return TypeClose }

func (c *Close) encodePayload(b *wire.Buffer) error {
	b.WriteU8(uint8(c.Code))
	return nil
}

func decodeClose(b *wire.Buffer) (Packet, error) {
	code, err := b.ReadU8()
	if err != nil {
		return nil, err
	}
	return &Close{Code: CloseCode(code)}, nil
}
