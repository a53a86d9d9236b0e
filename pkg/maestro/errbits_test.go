package maestro

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeErrorBits(t *testing.T) {
	bits, err := DecodeErrorBits([]byte{0x05, 0x00})
	require.NoError(t, err)
	require.True(t, bits.Has(BitSerialSignal))
	require.True(t, bits.Has(BitSerialBufferFull))
	for _, bit := range []ErrorBits{
		BitSerialOverrun, BitSerialCRC, BitSerialProtocol, BitSerialTimeout,
		BitScriptStack, BitScriptCallStack, BitScriptProgramCounter,
	} {
		require.False(t, bits.Has(bit))
	}
	require.Equal(t, []string{"SERIAL_SIGNAL", "SERIAL_BUFFER_FULL"}, bits.Names())
	require.EqualError(t, bits.Err(), "serial signal error,serial buffer full")

	bits, err = DecodeErrorBits([]byte{0x00, 0x01})
	require.NoError(t, err)
	require.Equal(t, BitScriptProgramCounter, bits)
}

func TestErrorBitsReserved(t *testing.T) {
	bits, err := DecodeErrorBits([]byte{0x10, 0x82})
	require.NoError(t, err)
	require.Equal(t, ErrorBits(0x8210), bits)
	require.Equal(t, BitSerialProtocol, bits.Known())
	require.Equal(t, ErrorBits(0x8200), bits.Unrecognized())
	require.Equal(t, []string{"SERIAL_PROTOCOL"}, bits.Names())
	require.Equal(t, "SERIAL_PROTOCOL|UNRECOGNIZED", bits.String())

	reserved := ErrorBits(0xfe00)
	require.NoError(t, reserved.Err())
	require.Empty(t, reserved.Names())
	require.Equal(t, "none", ErrorBits(0).String())
}

func TestErrorBitNames(t *testing.T) {
	require.Equal(t, 9, ErrorBitNames.Len())
	for bit := 0; bit < 9; bit++ {
		name, ok := ErrorBitNames.Name(bit)
		require.True(t, ok)
		require.Equal(t, []string{name}, ErrorBits(1<<uint(bit)).Names())
	}
	_, ok := ErrorBitNames.Name(9)
	require.False(t, ok)
}
