package maestro

import "fmt"

// MaxPacked16 is the largest value two 7-bit data bytes can carry.
const MaxPacked16 = 1<<14 - 1

// Pack16 splits v into two 7-bit bytes, low bits first.
// Values outside [0, MaxPacked16] are rejected, never truncated.
func Pack16(v int) (b [2]byte, err error) {
	if v < 0 || v > MaxPacked16 {
		return b, valueError("packed value", v, MaxPacked16)
	}
	b[0], b[1] = byte(v&0x7f), byte((v>>7)&0x7f)
	return b, nil
}

// AppendPacked16 appends the packed form of v to buf.
func AppendPacked16(buf []byte, v int) ([]byte, error) {
	b, err := Pack16(v)
	if err != nil {
		return buf, err
	}
	return append(buf, b[0], b[1]), nil
}

// Unpack16 is the inverse of Pack16.
func Unpack16(b []byte) (int, error) {
	if len(b) != 2 {
		return 0, fmt.Errorf("%w: packed value needs 2 bytes, got %d", ErrProtocol, len(b))
	}
	if b[0]&0x80 != 0 || b[1]&0x80 != 0 {
		return 0, fmt.Errorf("%w: packed value % x has bit 7 set", ErrProtocol, b)
	}
	return int(b[0]) | int(b[1])<<7, nil
}

// Uint16LE decodes a two byte little-endian reply, such as a position or
// the error word.
func Uint16LE(b []byte) (uint16, error) {
	if len(b) != 2 {
		return 0, fmt.Errorf("%w: expect 2 bytes, got %d", ErrProtocol, len(b))
	}
	return uint16(b[0]) | uint16(b[1])<<8, nil
}
