package wire

import "encoding/binary"

// Buffer is a growable byte buffer with a read/write cursor. The same type
// serves as both encoder and decoder: an encoder starts empty and grows on
// every write, while a decoder wraps an existing read-only byte slice and
// advances a cursor as values are consumed. All multi-byte integers are
// big-endian.
type Buffer struct {
	buf []byte
	pos int
}

// NewBuffer returns an empty encoder buffer. It grows geometrically as
// writes append to it, the same way append() grows any Go slice.
func NewBuffer() *Buffer {
	return &Buffer{buf: make([]byte, 0, 64)}
}

// NewDecoder wraps data as a read-only decoder buffer. data is not copied;
// callers must not mutate it while the Buffer is in use.
func NewDecoder(data []byte) *Buffer {
	return &Buffer{buf: data}
}

// Bytes returns the encoded bytes written so far.
func (b *Buffer) Bytes() []byte {
	return b.buf
}

// Len returns the number of unread bytes remaining.
func (b *Buffer) Len() int {
	return len(b.buf) - b.pos
}

// Remaining returns every unread byte, without advancing the cursor. Used to
// read a trailing payload/body that is not length-prefixed and instead
// consumes the rest of the frame.
func (b *Buffer) Remaining() []byte {
	return b.buf[b.pos:]
}

// Skip discards the rest of the buffer, moving the cursor to the end.
func (b *Buffer) Skip() {
	b.pos = len(b.buf)
}

func (b *Buffer) need(n int) error {
	if b.Len() < n {
		return &BufferTooShortError{Requested: n, Available: b.Len()}
	}
	return nil
}

// WriteU8 writes an unsigned 8-bit integer.
func (b *Buffer) WriteU8(v uint8) {
	b.buf = append(b.buf, v)
}

// WriteI8 writes a signed 8-bit integer, two's complement.
func (b *Buffer) WriteI8(v int8) {
	b.WriteU8(uint8(v))
}

// WriteU16 writes an unsigned 16-bit big-endian integer.
func (b *Buffer) WriteU16(v uint16) {
	b.buf = binary.BigEndian.AppendUint16(b.buf, v)
}

// WriteI16 writes a signed 16-bit big-endian integer, two's complement.
func (b *Buffer) WriteI16(v int16) {
	b.WriteU16(uint16(v))
}

// WriteU32 writes an unsigned 32-bit big-endian integer.
func (b *Buffer) WriteU32(v uint32) {
	b.buf = binary.BigEndian.AppendUint32(b.buf, v)
}

// WriteI32 writes a signed 32-bit big-endian integer, two's complement.
func (b *Buffer) WriteI32(v int32) {
	b.WriteU32(uint32(v))
}

// WriteU64 writes an unsigned 64-bit big-endian integer.
func (b *Buffer) WriteU64(v uint64) {
	b.buf = binary.BigEndian.AppendUint64(b.buf, v)
}

// WriteI64 writes a signed 64-bit big-endian integer, two's complement.
func (b *Buffer) WriteI64(v int64) {
	b.WriteU64(uint64(v))
}

// WriteBool writes a boolean as a single byte, 1 for true and 0 for false.
func (b *Buffer) WriteBool(v bool) {
	if v {
		b.WriteU8(1)
	} else {
		b.WriteU8(0)
	}
}

// WriteVarint writes v as a LEB128-style unsigned varint, 1 to 10 bytes.
func (b *Buffer) WriteVarint(v uint64) {
	b.buf = appendVarint(b.buf, v)
}

// WriteData writes a varint length prefix followed by the raw bytes of v.
func (b *Buffer) WriteData(v []byte) {
	b.WriteVarint(uint64(len(v)))
	b.buf = append(b.buf, v...)
}

// WriteString writes a string as length-prefixed UTF-8 bytes.
func (b *Buffer) WriteString(v string) {
	b.WriteData([]byte(v))
}

// WriteStrings writes a varint count followed by that many strings.
func (b *Buffer) WriteStrings(v []string) {
	b.WriteVarint(uint64(len(v)))
	for _, s := range v {
		b.WriteString(s)
	}
}

// WriteStringMap writes a varint count followed by (string,string) pairs.
// Iteration order is unspecified; the property model this backs does not
// distinguish key order.
func (b *Buffer) WriteStringMap(v map[string]string) {
	b.WriteVarint(uint64(len(v)))
	for k, val := range v {
		b.WriteString(k)
		b.WriteString(val)
	}
}

// WriteByteStringMap writes a single-byte count followed by (u8,string)
// pairs. The map is bounded to 255 entries because the count occupies one
// byte; a larger map fails with BigIntOverflowError rather than silently
// truncating.
func (b *Buffer) WriteByteStringMap(v map[uint8]string) error {
	if len(v) > 0xFF {
		return &BigIntOverflowError{Value: int64(len(v)), Max: 0xFF}
	}
	b.WriteU8(uint8(len(v)))
	for k, val := range v {
		b.WriteU8(k)
		b.WriteString(val)
	}
	return nil
}

// WriteRaw appends v with no length prefix. Used for a packet's trailing
// payload/body field, which consumes the rest of the frame instead of being
// self-delimited.
func (b *Buffer) WriteRaw(v []byte) {
	b.buf = append(b.buf, v...)
}

// ReadU8 reads an unsigned 8-bit integer.
func (b *Buffer) ReadU8() (uint8, error) {
	if err := b.need(1); err != nil {
		return 0, err
	}
	v := b.buf[b.pos]
	b.pos++
	return v, nil
}

// ReadI8 reads a signed 8-bit integer, two's complement.
func (b *Buffer) ReadI8() (int8, error) {
	v, err := b.ReadU8()
	return int8(v), err
}

// ReadU16 reads an unsigned 16-bit big-endian integer.
func (b *Buffer) ReadU16() (uint16, error) {
	if err := b.need(2); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint16(b.buf[b.pos:])
	b.pos += 2
	return v, nil
}

// ReadI16 reads a signed 16-bit big-endian integer, two's complement.
func (b *Buffer) ReadI16() (int16, error) {
	v, err := b.ReadU16()
	return int16(v), err
}

// ReadU32 reads an unsigned 32-bit big-endian integer.
func (b *Buffer) ReadU32() (uint32, error) {
	if err := b.need(4); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint32(b.buf[b.pos:])
	b.pos += 4
	return v, nil
}

// ReadI32 reads a signed 32-bit big-endian integer, two's complement.
func (b *Buffer) ReadI32() (int32, error) {
	v, err := b.ReadU32()
	return int32(v), err
}

// ReadU64 reads an unsigned 64-bit big-endian integer.
func (b *Buffer) ReadU64() (uint64, error) {
	if err := b.need(8); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint64(b.buf[b.pos:])
	b.pos += 8
	return v, nil
}

// ReadI64 reads a signed 64-bit big-endian integer, two's complement.
func (b *Buffer) ReadI64() (int64, error) {
	v, err := b.ReadU64()
	return int64(v), err
}

// ReadBool reads a boolean. Only the byte value 1 decodes to true; every
// other byte value, including other nonzero values, decodes to false. This
// is a deliberate strictness policy, not a bug: a malformed nonzero flag
// byte is treated as false rather than rejected.
func (b *Buffer) ReadBool() (bool, error) {
	v, err := b.ReadU8()
	if err != nil {
		return false, err
	}
	return v == 1, nil
}

// ReadVarint reads a LEB128-style unsigned varint.
func (b *Buffer) ReadVarint() (uint64, error) {
	v, n, err := readVarint(b.buf[b.pos:])
	if err != nil {
		return 0, err
	}
	b.pos += n
	return v, nil
}

// ReadData reads a varint length prefix followed by that many raw bytes.
// The returned slice aliases the underlying buffer and must be copied by
// the caller if it needs to outlive further reads on the same Buffer.
func (b *Buffer) ReadData() ([]byte, error) {
	n, err := b.ReadVarint()
	if err != nil {
		return nil, err
	}
	if err := b.need(int(n)); err != nil {
		return nil, err
	}
	v := b.buf[b.pos : b.pos+int(n)]
	b.pos += int(n)
	return v, nil
}

// ReadString reads a length-prefixed UTF-8 string.
func (b *Buffer) ReadString() (string, error) {
	v, err := b.ReadData()
	if err != nil {
		return "", err
	}
	return string(v), nil
}

// ReadStrings reads a varint count followed by that many strings.
func (b *Buffer) ReadStrings() ([]string, error) {
	n, err := b.ReadVarint()
	if err != nil {
		return nil, err
	}
	v := make([]string, n)
	for i := range v {
		s, err := b.ReadString()
		if err != nil {
			return nil, err
		}
		v[i] = s
	}
	return v, nil
}

// ReadStringMap reads a varint count followed by (string,string) pairs.
func (b *Buffer) ReadStringMap() (map[string]string, error) {
	n, err := b.ReadVarint()
	if err != nil {
		return nil, err
	}
	v := make(map[string]string, n)
	for i := uint64(0); i < n; i++ {
		k, err := b.ReadString()
		if err != nil {
			return nil, err
		}
		val, err := b.ReadString()
		if err != nil {
			return nil, err
		}
		v[k] = val
	}
	return v, nil
}

// ReadByteStringMap reads a single-byte count followed by (u8,string) pairs.
func (b *Buffer) ReadByteStringMap() (map[uint8]string, error) {
	n, err := b.ReadU8()
	if err != nil {
		return nil, err
	}
	v := make(map[uint8]string, n)
	for i := 0; i < int(n); i++ {
		k, err := b.ReadU8()
		if err != nil {
			return nil, err
		}
		val, err := b.ReadString()
		if err != nil {
			return nil, err
		}
		v[k] = val
	}
	return v, nil
}
