package servo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/maestro.go/pkg/cli/sh"
	"github.com/robotalks/maestro.go/pkg/maestro"
)

// recordingTransport records frames and answers queries by opcode.
type recordingTransport struct {
	frames  [][]byte
	replies map[byte][]byte
	last    byte
}

func (t *recordingTransport) Write(b []byte) error {
	t.frames = append(t.frames, append([]byte(nil), b...))
	t.last = b[0]
	return nil
}

func (t *recordingTransport) ReadExact(n int, timeout time.Duration) ([]byte, error) {
	if reply, ok := t.replies[t.last]; ok {
		return reply, nil
	}
	return nil, maestro.ErrResponseTimeout
}

func newTestShell() (*sh.Shell, *recordingTransport) {
	tr := &recordingTransport{replies: map[byte][]byte{
		byte(maestro.OpGetPosition):    {0x70, 0x17},
		byte(maestro.OpGetMovingState): {0},
		byte(maestro.OpGetErrors):      {0x01, 0x00},
	}}
	return sh.NewLocal(maestro.NewController(tr)), tr
}

func TestCommandFrames(t *testing.T) {
	testCases := []struct {
		args  []string
		frame []byte
	}{
		{[]string{"target", "1", "6000"}, []byte{0x84, 0x01, 0x70, 0x2e}},
		{[]string{"t", "0", "4000"}, []byte{0x84, 0x00, 0x20, 0x1f}},
		{[]string{"speed", "0", "10"}, []byte{0x87, 0x00, 0x0a, 0x00}},
		{[]string{"accel", "2", "300"}, []byte{0x89, 0x02, 0x2c, 0x02}},
		{[]string{"norm", "0", "-1"}, []byte{0x84, 0x00, 0x20, 0x1f}},
		{[]string{"norm", "5", "1"}, []byte{0x84, 0x05, 0x40, 0x3e}},
		{[]string{"pwm", "1000", "4800"}, []byte{0x8a, 0x68, 0x07, 0x40, 0x25}},
		{[]string{"pos", "3"}, []byte{0x90, 0x03}},
		{[]string{"moving"}, []byte{0x93}},
		{[]string{"errors"}, []byte{0xa1}},
		{[]string{"home"}, []byte{0xa2}},
		{[]string{"raw", "GET_POSITION", "3"}, []byte{0x90, 0x03}},
		{[]string{"raw", "get_moving_state"}, []byte{0x93}},
		{[]string{"raw", "0xa2"}, []byte{0xa2}},
	}
	for _, tc := range testCases {
		s, tr := newTestShell()
		require.NoError(t, s.Shell.Process(tc.args...), tc.args)
		require.Equal(t, [][]byte{tc.frame}, tr.frames, tc.args)
	}
}

func TestRejectedArgsWriteNothing(t *testing.T) {
	testCases := []struct {
		args   []string
		expect string
	}{
		{[]string{"target", "4294967297", "4294973296"}, "invalid CH"},
		{[]string{"target", "1", "4294973296"}, "invalid TARGET"},
		{[]string{"target", "1"}, "required"},
		{[]string{"target", "1", "16384"}, maestro.ErrValueOutOfRange.Error()},
		{[]string{"target", "6", "6000"}, maestro.ErrChannelOutOfRange.Error()},
		{[]string{"speed", "-1", "10"}, maestro.ErrChannelOutOfRange.Error()},
		{[]string{"norm", "0", "NaN"}, maestro.ErrValueOutOfRange.Error()},
		{[]string{"norm", "0", "left"}, "invalid VALUE"},
		{[]string{"pwm", "1000"}, "PERIOD required"},
		{[]string{"pos", "x"}, "invalid CH"},
		{[]string{"raw"}, "OPCODE required"},
		{[]string{"raw", "FLY"}, "FLY"},
		{[]string{"raw", "GET_POSITION", "300"}, "invalid OPERAND"},
		{[]string{"raw", "GET_POSITION"}, maestro.ErrProtocol.Error()},
		{[]string{"raw", "GET_POSITION", "0x80"}, maestro.ErrValueOutOfRange.Error()},
	}
	for _, tc := range testCases {
		s, tr := newTestShell()
		err := s.Shell.Process(tc.args...)
		require.Error(t, err, tc.args)
		require.Contains(t, err.Error(), tc.expect, tc.args)
		require.Empty(t, tr.frames, tc.args)
	}
}

func TestQueryFailure(t *testing.T) {
	s, tr := newTestShell()
	delete(tr.replies, byte(maestro.OpGetPosition))
	err := s.Shell.Process("pos", "0")
	require.Error(t, err)
	require.Contains(t, err.Error(), maestro.ErrResponseTimeout.Error())
}

func TestParseOpcode(t *testing.T) {
	op, err := parseOpcode("go_home")
	require.NoError(t, err)
	require.Equal(t, maestro.OpGoHome, op)
	op, err = parseOpcode("144")
	require.NoError(t, err)
	require.Equal(t, maestro.OpGetPosition, op)
	_, err = parseOpcode("0x100")
	require.Error(t, err)
}
