package metrics

import (
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/robotalks/maestro.go/pkg/bridge/msgs"
	"github.com/robotalks/maestro.go/pkg/maestro"
)

func TestResult(t *testing.T) {
	require.Equal(t, "ok", Result(nil))
	require.Equal(t, "timeout", Result(maestro.ErrResponseTimeout))
	require.Equal(t, "protocol", Result(&maestro.ProtocolError{Opcode: maestro.OpGetErrors, Want: 2}))
	require.Equal(t, "io", Result(&maestro.IOError{Op: "write", Err: errors.New("closed")}))
}

func TestObserve(t *testing.T) {
	reg := NewRegistry()
	m := New(reg)
	m.ObserveTransaction(maestro.OpGetPosition, time.Millisecond, nil)
	m.ObserveTransaction(maestro.OpGetPosition, time.Millisecond, maestro.ErrResponseTimeout)
	m.ObserveStatus(&msgs.Status{
		Channels:   []int32{0, 1},
		Positions:  []int32{6000, 4000},
		Moving:     true,
		ErrorNames: []string{"SERIAL_SIGNAL"},
	})

	require.Equal(t, 1.0, testutil.ToFloat64(m.Transactions.WithLabelValues("GET_POSITION", "ok")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.Transactions.WithLabelValues("GET_POSITION", "timeout")))
	require.Equal(t, 4000.0, testutil.ToFloat64(m.Positions.WithLabelValues("1")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.Moving))
	require.Equal(t, 1.0, testutil.ToFloat64(m.ErrorBits.WithLabelValues("SERIAL_SIGNAL")))
	require.Equal(t, 0.0, testutil.ToFloat64(m.PollErrors))

	rec := httptest.NewRecorder()
	Handler(reg).ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	require.Equal(t, 200, rec.Code)
	require.True(t, strings.Contains(rec.Body.String(), `maestro_channel_position{channel="0"} 6000`))
}

func TestObserveFailedPoll(t *testing.T) {
	m := New(NewRegistry())
	m.ObserveStatus(&msgs.Status{Channels: []int32{0}, Positions: []int32{5000}, Moving: true})
	m.ObserveStatus(&msgs.Status{
		Channels:  []int32{0},
		Positions: []int32{5200},
		Error:     "channel 1: response timeout",
	})

	require.Equal(t, 5200.0, testutil.ToFloat64(m.Positions.WithLabelValues("0")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.Moving))
	require.Equal(t, 1.0, testutil.ToFloat64(m.PollErrors))
}

func TestResultShortReply(t *testing.T) {
	err := &maestro.ProtocolError{Opcode: maestro.OpGetPosition, Want: 2, Got: 1, Err: maestro.ErrResponseTimeout}
	require.Equal(t, "protocol", Result(err))
}
