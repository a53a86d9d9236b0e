package params

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/maestro.go/pkg/bridge/msgs"
	"github.com/robotalks/maestro.go/pkg/cli/sh"
	"github.com/robotalks/maestro.go/pkg/maestro"
)

type nopTransport struct{}

func (nopTransport) Write([]byte) error { return nil }

func (nopTransport) ReadExact(n int, timeout time.Duration) ([]byte, error) {
	return nil, maestro.ErrResponseTimeout
}

// remoteExecutor stands for a bridge client.
type remoteExecutor struct {
	requests []*msgs.Request
}

func (e *remoteExecutor) Do(ctx context.Context, req *msgs.Request) (*msgs.Reply, error) {
	e.requests = append(e.requests, req)
	return &msgs.Reply{Seq: req.Seq}, nil
}

func TestParamCommands(t *testing.T) {
	s := sh.NewLocal(maestro.NewController(nopTransport{}))
	require.NoError(t, s.Shell.Process("param"))
	require.NoError(t, s.Shell.Process("param", "script_done"))
	require.NoError(t, s.Shell.Process("servo.param", "5"))
	require.NoError(t, s.Shell.Process("servo.param", "5", "servo_home"))
	require.NoError(t, s.Shell.Process("opcodes"))

	err := s.Shell.Process("param", "bogus")
	require.Error(t, err)
	require.Contains(t, err.Error(), "BOGUS")
	err = s.Shell.Process("servo.param", "6", "SERVO_HOME")
	require.Error(t, err)
	require.Contains(t, err.Error(), maestro.ErrChannelOutOfRange.Error())
	err = s.Shell.Process("servo.param", "0", "SERVO_COLOR")
	require.Error(t, err)
}

func TestRangeCommand(t *testing.T) {
	ctl := maestro.NewController(nopTransport{})
	s := sh.NewLocal(ctl)
	require.NoError(t, s.Shell.Process("range", "1"))
	require.NoError(t, s.Shell.Process("range", "1", "3000", "9000"))
	require.Equal(t, maestro.Range{Min: 3000, Max: 9000}, ctl.Range(1))

	err := s.Shell.Process("range", "1", "9000", "3000")
	require.Error(t, err)
	require.Equal(t, maestro.Range{Min: 3000, Max: 9000}, ctl.Range(1))
	require.Error(t, s.Shell.Process("range", "6"))
	require.Error(t, s.Shell.Process("range", "1", "3000"))
}

func TestRangeRequiresLocalDevice(t *testing.T) {
	exec := &remoteExecutor{}
	s := sh.New(exec, maestro.Registry{Channels: 6})
	err := s.Shell.Process("range", "0")
	require.Error(t, err)
	require.Contains(t, err.Error(), "local device")
	require.Empty(t, exec.requests)

	require.NoError(t, s.Shell.Process("param", "SERVOS_AVAILABLE"))
}
