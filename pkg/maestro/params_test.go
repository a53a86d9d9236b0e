package maestro

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeviceParameters(t *testing.T) {
	expected := map[string]Address{
		"SERVOS_AVAILABLE":        {1, 1},
		"SERVO_PERIOD":            {2, 1},
		"SERIAL_MODE":             {3, 1},
		"SERIAL_FIXED_BAUD_RATE":  {4, 2},
		"SERIAL_TIMEOUT":          {6, 2},
		"SERIAL_ENABLE_CRC":       {8, 1},
		"SERIAL_NEVER_SUSPEND":    {9, 1},
		"SERIAL_DEVICE_NUMBER":    {10, 1},
		"SERIAL_BAUD_DETECT_TYPE": {11, 1},
		"IO_MASK_A":               {12, 1},
		"OUTPUT_MASK_A":           {13, 1},
		"IO_MASK_B":               {14, 1},
		"OUTPUT_MASK_B":           {15, 1},
		"IO_MASK_C":               {16, 1},
		"OUTPUT_MASK_C":           {17, 1},
		"IO_MASK_D":               {18, 1},
		"OUTPUT_MASK_D":           {19, 1},
		"IO_MASK_E":               {20, 1},
		"OUTPUT_MASK_E":           {21, 1},
		"SCRIPT_CRC":              {22, 2},
		"SCRIPT_DONE":             {24, 1},
		"SERIAL_MINI_SSC_OFFSET":  {25, 1},
	}
	require.Equal(t, len(expected), Parameters.Len())
	r := Registry{Channels: DefaultChannels}
	for name, addr := range expected {
		actual, err := r.AddressOf(name)
		require.NoError(t, err, name)
		require.Equal(t, addr, actual, name)
	}
	require.Equal(t, Address{4, 2}, ParamSerialFixedBaudRate.Address())
	require.Equal(t, "SCRIPT_DONE", ParamScriptDone.String())
}

func TestUnknownParameter(t *testing.T) {
	r := Registry{Channels: DefaultChannels}
	_, err := r.AddressOf("SERVO_HOME")
	require.True(t, errors.Is(err, ErrUnknownParameter))
	var codeErr *UnknownCodeError
	require.True(t, errors.As(err, &codeErr))
	require.Equal(t, "SERVO_HOME", codeErr.Name)

	_, err = r.ServoAddressOf(0, "SERIAL_MODE")
	require.True(t, errors.Is(err, ErrUnknownParameter))
	_, err = r.ServoAddress(0, ServoField(31))
	require.True(t, errors.Is(err, ErrUnknownParameter))
}

func TestServoParameters(t *testing.T) {
	fields := map[string]Address{
		"SERVO_HOME":         {30, 2},
		"SERVO_MIN":          {32, 1},
		"SERVO_MAX":          {33, 1},
		"SERVO_NEUTRAL":      {34, 2},
		"SERVO_RANGE":        {36, 1},
		"SERVO_SPEED":        {37, 1},
		"SERVO_ACCELERATION": {38, 1},
	}
	require.Equal(t, len(fields), ServoFields.Len())
	r := Registry{Channels: 24}
	for ch := 0; ch < r.Channels; ch++ {
		for name, field := range fields {
			addr, err := r.ServoAddressOf(ch, name)
			require.NoError(t, err)
			require.Equal(t, ch*9+30+field.Offset, addr.Offset, "channel %d %s", ch, name)
			require.Equal(t, field.Width, addr.Width, name)
		}
	}
	addr, err := r.ServoAddress(2, FieldServoNeutral)
	require.NoError(t, err)
	require.Equal(t, Address{82, 2}, addr)
}

func TestServoParameterChannelOutOfRange(t *testing.T) {
	r := Registry{Channels: 6}
	for _, ch := range []int{-1, 6, 7, 128} {
		_, err := r.ServoAddressOf(ch, "SERVO_HOME")
		require.True(t, errors.Is(err, ErrChannelOutOfRange), "channel %d", ch)
	}
	// channel is checked before the field name.
	_, err := r.ServoAddressOf(6, "NO_SUCH_FIELD")
	require.True(t, errors.Is(err, ErrChannelOutOfRange))
	_, err = (Registry{}).ServoAddressOf(0, "SERVO_HOME")
	require.True(t, errors.Is(err, ErrChannelOutOfRange))
}
