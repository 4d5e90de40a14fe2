// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

// Package packet implements the Cable packet layer: the nine packet kinds,
// their payload encodings, and the length-prefixed frame header that wraps
// each one on the wire.
package packet

import "fmt"

// InvalidReadLenError is returned when a frame claims a payload or extra
// length header longer than the bytes actually available to decode.
type InvalidReadLenError struct {
	Requested int
	Available int
}

func (e *InvalidReadLenError) Error() string {
	return fmt.Sprintf(
		"packet: frame too short: need %d bytes, have %d",
		e.Requested, e.Available,
	)
}

// UnknownPacketTypeError is returned when a frame header names a packet type
// outside the nine kinds Cable defines.
type UnknownPacketTypeError struct {
	Type uint8
}

func (e *UnknownPacketTypeError) Error() string {
	return fmt.Sprintf("packet: unknown packet type %d", e.Type)
}

// PacketSizeTooLargeError is returned when a packet's encoded payload exceeds
// MaxLen, the largest length a frame header can represent.
type PacketSizeTooLargeError struct {
	Len int
	Max int
}

func (e *PacketSizeTooLargeError) Error() string {
	return fmt.Sprintf("packet: payload of %d bytes exceeds maximum of %d", e.Len, e.Max)
}

// MessageKindTooLargeError is returned when a Message packet's Kind does not
// fit in the 6 bits the flags byte reserves for it.
type MessageKindTooLargeError struct {
	Kind uint8
}

func (e *MessageKindTooLargeError) Error() string {
	return fmt.Sprintf("packet: message kind %d exceeds maximum of %d", e.Kind, maxMessageKind)
}
