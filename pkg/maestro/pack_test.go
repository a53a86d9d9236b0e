package maestro

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPack16RoundTrip(t *testing.T) {
	for v := 0; v <= MaxPacked16; v++ {
		b, err := Pack16(v)
		require.NoError(t, err)
		require.Zero(t, b[0]&0x80)
		require.Zero(t, b[1]&0x80)
		decoded, err := Unpack16(b[:])
		require.NoError(t, err)
		require.Equal(t, v, decoded)
	}
}

func TestPack16(t *testing.T) {
	testCases := []struct {
		value  int
		expect [2]byte
	}{
		{0, [2]byte{0, 0}},
		{0x7f, [2]byte{0x7f, 0}},
		{0x80, [2]byte{0, 1}},
		{6000, [2]byte{0x70, 0x2e}},
		{MaxPacked16, [2]byte{0x7f, 0x7f}},
	}
	for _, tc := range testCases {
		b, err := Pack16(tc.value)
		require.NoError(t, err)
		require.Equal(t, tc.expect, b)
	}
}

func TestPack16OutOfRange(t *testing.T) {
	for _, v := range []int{-1, -16384, MaxPacked16 + 1, 0xffff, 1 << 20} {
		_, err := Pack16(v)
		require.True(t, errors.Is(err, ErrValueOutOfRange), "value %d", v)
	}
	buf, err := AppendPacked16([]byte{1}, MaxPacked16+1)
	require.True(t, errors.Is(err, ErrValueOutOfRange))
	require.Equal(t, []byte{1}, buf)
}

func TestUnpack16Malformed(t *testing.T) {
	for _, b := range [][]byte{nil, {1}, {1, 2, 3}, {0x80, 0}, {0, 0x80}} {
		_, err := Unpack16(b)
		require.True(t, errors.Is(err, ErrProtocol), "bytes % x", b)
	}
}

func TestUint16LE(t *testing.T) {
	v, err := Uint16LE([]byte{0x70, 0x17})
	require.NoError(t, err)
	require.Equal(t, uint16(0x1770), v)
	_, err = Uint16LE([]byte{0x70})
	require.True(t, errors.Is(err, ErrProtocol))
}
