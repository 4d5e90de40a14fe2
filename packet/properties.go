// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package packet

import "github.com/cablehq/cable-go/wire"

// Property names a well-known key in a packet's property map. Callers may
// also use keys outside this set; Cable does not require the map to be
// closed to these five.
type Property uint8

const (
	PropConnID   Property = 1
	PropUserID   Property = 2
	PropChannel  Property = 3
	PropClientID Property = 4
	PropPassword Property = 5
)

// Properties is the property map carried by every packet kind except Close.
// It is bounded to 255 entries by the single-byte count prefix on the wire.
type Properties map[Property]string

func (p Properties) encode(b *wire.Buffer) error {
	raw := make(map[uint8]string, len(p))
	for k, v := range p {
		raw[uint8(k)] = v
	}
	return b.WriteByteStringMap(raw)
}

func decodeProperties(b *wire.Buffer) (Properties, error) {
	raw, err := b.ReadByteStringMap()
	if err != nil {
		return nil, err
	}
	p := make(Properties, len(raw))
	for k, v := range raw {
		p[Property(k)] = v
	}
	return p, nil
}
