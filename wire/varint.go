package wire

// maxVarintBytes is the largest number of bytes a LEB128-style unsigned
// varint may occupy before it is considered malformed. 10 bytes carries
// 70 payload bits, comfortably more than the 64 bits a uint64 needs; a
// well-formed varint never needs more.
const maxVarintBytes = 10

// appendVarint appends v to buf using LEB128-style encoding: 7 payload bits
// per byte, high bit set on every byte but the last.
func appendVarint(buf []byte, v uint64) []byte {
	for v >= 0x80 {
		buf = append(buf, byte(v)|0x80)
		v >>= 7
	}
	return append(buf, byte(v))
}

// readVarint decodes a LEB128-style unsigned varint starting at data[0],
// returning the value and the number of bytes consumed.
func readVarint(data []byte) (uint64, int, error) {
	var v uint64
	for i := 0; i < maxVarintBytes; i++ {
		if i >= len(data) {
			return 0, 0, &BufferTooShortError{
				Requested: i + 1,
				Available: len(data),
			}
		}
		b := data[i]
		v |= uint64(b&0x7F) << (7 * uint(i))
		if b&0x80 == 0 {
			return v, i + 1, nil
		}
	}
	return 0, 0, &VarintOverflowError{}
}
