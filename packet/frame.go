// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package packet

import "github.com/cablehq/cable-go/wire"

// MaxLen is the largest payload length a frame header can carry: a 10-bit
// baseline extended by up to 3 extra length bytes gives 34 bits of range,
// but Cable caps it at 30 bits so length always fits a uint32 with room to
// spare on every platform.
const MaxLen = 0x3FFFFFFF

const shortLenMax = 0x3FF // 10 bits: the length range with zero extra bytes.

// EncodeFrame serializes p as a complete frame: header followed by payload.
func EncodeFrame(p Packet) ([]byte, error) {
	payload := wire.NewBuffer()
	if err := p.encodePayload(payload); err != nil {
		return nil, err
	}
	body := payload.Bytes()
	if len(body) > MaxLen {
		return nil, &PacketSizeTooLargeError{Len: len(body), Max: MaxLen}
	}
	header := encodeHeader(p.Type(), len(body))
	return append(header, body...), nil
}

// encodeHeader builds the 2-to-5 byte frame header for a payload of length n.
// The header always carries a 10-bit baseline (2 bits fused into the low
// bits of byte0, 8 bits in byte1); when the length needs more than 10 bits,
// the low-order bits move into 1-3 extra bytes following byte1 and the
// baseline instead carries the high-order bits.
func encodeHeader(t Type, n int) []byte {
	length := uint32(n)

	var extraLen int
	for extraLen = 0; extraLen < 3; extraLen++ {
		if length>>(8*uint(extraLen)) <= shortLenMax {
			break
		}
	}

	baseline := length >> (8 * uint(extraLen))
	header := []byte{
		byte(t)<<4 | byte(extraLen)<<2 | byte(baseline>>8&0x3),
		byte(baseline & 0xFF),
	}
	for i := extraLen - 1; i >= 0; i-- {
		header = append(header, byte(length>>(8*uint(i))))
	}
	return header
}

// DecodeFrame parses a single frame from the front of data, returning the
// decoded packet and the number of bytes consumed. Callers that read from a
// byte-stream transport can feed successive slices of the remaining buffer
// back in to decode further frames.
func DecodeFrame(data []byte) (Packet, int, error) {
	if len(data) < 2 {
		return nil, 0, &InvalidReadLenError{Requested: 2, Available: len(data)}
	}
	t := Type(data[0] >> 4)
	extraLen := int(data[0] >> 2 & 0x3)
	baseline := uint32(data[0]&0x3)<<8 | uint32(data[1])

	headerLen := 2 + extraLen
	if len(data) < headerLen {
		return nil, 0, &InvalidReadLenError{Requested: headerLen, Available: len(data)}
	}

	length := baseline
	for i := 0; i < extraLen; i++ {
		length = length<<8 | uint32(data[2+i])
	}
	if length > MaxLen {
		return nil, 0, &PacketSizeTooLargeError{Len: int(length), Max: MaxLen}
	}

	total := headerLen + int(length)
	if len(data) < total {
		return nil, 0, &InvalidReadLenError{Requested: total, Available: len(data)}
	}

	p, err := decodePayload(t, data[headerLen:total])
	if err != nil {
		return nil, 0, err
	}
	return p, total, nil
}
