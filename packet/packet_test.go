// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package packet_test

import (
	"testing"

	"github.com/cablehq/cable-go/packet"
	"github.com/stretchr/testify/require"
)

func roundTrip(t *testing.T, p packet.Packet) packet.Packet {
	t.Helper()
	frame, err := packet.EncodeFrame(p)
	require.NoError(t, err)
	got, n, err := packet.DecodeFrame(frame)
	require.NoError(t, err)
	require.Equal(t, len(frame), n)
	return got
}

func TestConnectRoundTrip(t *testing.T) {
	in := &packet.Connect{
		Version:  packet.ProtocolVersion,
		UserID:   "alice",
		ClientID: "device-1",
		Password: "secret",
		Props:    packet.Properties{packet.PropChannel: "orders"},
	}
	got := roundTrip(t, in)
	require.Equal(t, in, got)
}

func TestConnackRoundTrip(t *testing.T) {
	in := &packet.Connack{Code: packet.Duplicate, Props: packet.Properties{packet.PropConnID: "c-9"}}
	got := roundTrip(t, in)
	require.Equal(t, in, got)
}

func TestMessageRoundTrip(t *testing.T) {
	in := &packet.Message{
		ID:      42,
		QoS:     1,
		Dup:     true,
		Kind:    7,
		Props:   packet.Properties{packet.PropChannel: "orders"},
		Payload: []byte("hello world"),
	}
	got := roundTrip(t, in)
	require.Equal(t, in, got)
}

func TestMessageQoS0NoDup(t *testing.T) {
	in := &packet.Message{ID: 1, QoS: 0, Dup: false, Kind: 0, Payload: []byte("x")}
	got := roundTrip(t, in).(*packet.Message)
	require.Equal(t, uint8(0), got.QoS)
	require.False(t, got.Dup)
}

func TestMessageKindTooLarge(t *testing.T) {
	in := &packet.Message{ID: 1, Kind: 0x40, Payload: nil}
	_, err := packet.EncodeFrame(in)
	require.Error(t, err)
	require.IsType(t, &packet.MessageKindTooLargeError{}, err)
}

func TestMessackRoundTrip(t *testing.T) {
	in := &packet.Messack{ID: 7, Props: packet.Properties{}}
	got := roundTrip(t, in)
	require.Equal(t, in, got)
}

func TestRequestRoundTrip(t *testing.T) {
	in := &packet.Request{
		ID:     3,
		Method: "get_status",
		Props:  packet.Properties{packet.PropClientID: "device-1"},
		Body:   []byte(`{"depth":1}`),
	}
	got := roundTrip(t, in)
	require.Equal(t, in, got)
}

func TestResponseRoundTrip(t *testing.T) {
	in := &packet.Response{
		ID:    3,
		Code:  packet.StatusNotFound,
		Props: packet.Properties{},
		Body:  []byte(`{"error":"not found"}`),
	}
	got := roundTrip(t, in)
	require.Equal(t, in, got)
}

func TestPingPongRoundTrip(t *testing.T) {
	gotPing := roundTrip(t, &packet.Ping{Props: packet.Properties{}})
	require.Equal(t, &packet.Ping{Props: packet.Properties{}}, gotPing)

	gotPong := roundTrip(t, &packet.Pong{Props: packet.Properties{}})
	require.Equal(t, &packet.Pong{Props: packet.Properties{}}, gotPong)
}

func TestCloseRoundTrip(t *testing.T) {
	in := &packet.Close{Code: packet.CloseAuthFailure}
	got := roundTrip(t, in)
	require.Equal(t, in, got)
}

func TestCloseAuthFailureEncodesToThreeBytes(t *testing.T) {
	frame, err := packet.EncodeFrame(&packet.Close{Code: packet.CloseAuthFailure})
	require.NoError(t, err)
	require.Equal(t, []byte{byte(packet.TypeClose) << 4, 0x01, 0x04}, frame)
}

func TestUnknownPacketType(t *testing.T) {
	frame := []byte{0xF0, 0x00}
	_, _, err := packet.DecodeFrame(frame)
	require.Error(t, err)
	require.IsType(t, &packet.UnknownPacketTypeError{}, err)
}
