package wire_test

import (
	"testing"

	"github.com/cablehq/cable-go/wire"
	"github.com/stretchr/testify/require"
)

func TestU8RoundTrip(t *testing.T) {
	for _, v := range []uint8{0, 1, 127, 255} {
		b := wire.NewBuffer()
		b.WriteU8(v)
		got, err := wire.NewDecoder(b.Bytes()).ReadU8()
		require.NoError(t, err)
		require.Equal(t, v, got)
	}
}

func TestI8RoundTrip(t *testing.T) {
	for _, v := range []int8{0, 1, 127, -128, -1} {
		b := wire.NewBuffer()
		b.WriteI8(v)
		got, err := wire.NewDecoder(b.Bytes()).ReadI8()
		require.NoError(t, err)
		require.Equal(t, v, got)
	}
}

func TestU16RoundTrip(t *testing.T) {
	for _, v := range []uint16{0, 255, 256, 65535} {
		b := wire.NewBuffer()
		b.WriteU16(v)
		got, err := wire.NewDecoder(b.Bytes()).ReadU16()
		require.NoError(t, err)
		require.Equal(t, v, got)
	}
}

func TestI16RoundTrip(t *testing.T) {
	for _, v := range []int16{0, 32767, -32768, -1} {
		b := wire.NewBuffer()
		b.WriteI16(v)
		got, err := wire.NewDecoder(b.Bytes()).ReadI16()
		require.NoError(t, err)
		require.Equal(t, v, got)
	}
}

func TestU32RoundTrip(t *testing.T) {
	for _, v := range []uint32{0, 65535, 65536, 1<<31 - 1, 1<<32 - 1} {
		b := wire.NewBuffer()
		b.WriteU32(v)
		got, err := wire.NewDecoder(b.Bytes()).ReadU32()
		require.NoError(t, err)
		require.Equal(t, v, got)
	}
}

func TestI32RoundTrip(t *testing.T) {
	for _, v := range []int32{0, 1<<31 - 1, -1 << 31, -1} {
		b := wire.NewBuffer()
		b.WriteI32(v)
		got, err := wire.NewDecoder(b.Bytes()).ReadI32()
		require.NoError(t, err)
		require.Equal(t, v, got)
	}
}

func TestU64RoundTrip(t *testing.T) {
	for _, v := range []uint64{0, 1<<32 - 1, 1 << 63, 1<<64 - 1} {
		b := wire.NewBuffer()
		b.WriteU64(v)
		got, err := wire.NewDecoder(b.Bytes()).ReadU64()
		require.NoError(t, err)
		require.Equal(t, v, got)
	}
}

func TestI64RoundTrip(t *testing.T) {
	for _, v := range []int64{0, 1<<62 - 1, -1 << 63, -1} {
		b := wire.NewBuffer()
		b.WriteI64(v)
		got, err := wire.NewDecoder(b.Bytes()).ReadI64()
		require.NoError(t, err)
		require.Equal(t, v, got)
	}
}

func TestBoolReadStrictness(t *testing.T) {
	// Only the literal byte 1 decodes to true.
	d := wire.NewDecoder([]byte{1})
	v, err := d.ReadBool()
	require.NoError(t, err)
	require.True(t, v)

	for _, raw := range [][]byte{{0}, {2}, {255}} {
		d := wire.NewDecoder(raw)
		v, err := d.ReadBool()
		require.NoError(t, err)
		require.False(t, v)
	}
}

func TestVarintRoundTrip(t *testing.T) {
	for _, v := range []uint64{0, 1, 127, 128, 16383, 16384, 1 << 28} {
		b := wire.NewBuffer()
		b.WriteVarint(v)
		got, err := wire.NewDecoder(b.Bytes()).ReadVarint()
		require.NoError(t, err)
		require.Equal(t, v, got)
	}
}

func TestVarintOverflow(t *testing.T) {
	// Ten bytes, every one a continuation byte: no terminator ever arrives.
	raw := make([]byte, 10)
	for i := range raw {
		raw[i] = 0x80
	}
	_, err := wire.NewDecoder(raw).ReadVarint()
	require.Error(t, err)
	require.IsType(t, &wire.VarintOverflowError{}, err)
}

func TestBufferTooShort(t *testing.T) {
	_, err := wire.NewDecoder([]byte{0x01}).ReadU16()
	require.Error(t, err)
	require.IsType(t, &wire.BufferTooShortError{}, err)
}

func TestDataAndStringRoundTrip(t *testing.T) {
	b := wire.NewBuffer()
	b.WriteData([]byte("hello"))
	b.WriteString("world")
	d := wire.NewDecoder(b.Bytes())
	data, err := d.ReadData()
	require.NoError(t, err)
	require.Equal(t, []byte("hello"), data)
	s, err := d.ReadString()
	require.NoError(t, err)
	require.Equal(t, "world", s)
}

func TestStringsRoundTrip(t *testing.T) {
	in := []string{"a", "bb", "ccc"}
	b := wire.NewBuffer()
	b.WriteStrings(in)
	got, err := wire.NewDecoder(b.Bytes()).ReadStrings()
	require.NoError(t, err)
	require.Equal(t, in, got)
}

func TestStringMapRoundTrip(t *testing.T) {
	in := map[string]string{"a": "1", "b": "2"}
	b := wire.NewBuffer()
	b.WriteStringMap(in)
	got, err := wire.NewDecoder(b.Bytes()).ReadStringMap()
	require.NoError(t, err)
	require.Equal(t, in, got)
}

func TestByteStringMapRoundTrip(t *testing.T) {
	in := map[uint8]string{1: "x", 3: "channel"}
	b := wire.NewBuffer()
	require.NoError(t, b.WriteByteStringMap(in))
	got, err := wire.NewDecoder(b.Bytes()).ReadByteStringMap()
	require.NoError(t, err)
	require.Equal(t, in, got)
}

func TestByteStringMapOverflow(t *testing.T) {
	// uint8 keys span 0-255, so a full map has 256 entries: one more than
	// the single-byte count prefix can represent.
	big := make(map[uint8]string, 256)
	for i := 0; i <= 255; i++ {
		big[uint8(i)] = "v"
	}
	b := wire.NewBuffer()
	err := b.WriteByteStringMap(big)
	require.Error(t, err)
	require.IsType(t, &wire.BigIntOverflowError{}, err)

	delete(big, 255)
	b = wire.NewBuffer()
	require.NoError(t, b.WriteByteStringMap(big))
}

func TestRemainingConsumesTail(t *testing.T) {
	b := wire.NewBuffer()
	b.WriteU16(42)
	b.WriteData([]byte("tail-does-not-apply-here"))
	d := wire.NewDecoder(b.Bytes())
	_, err := d.ReadU16()
	require.NoError(t, err)
	rest := d.Remaining()
	require.NotEmpty(t, rest)
}
