package maestro

import (
	"bytes"
	"errors"
	"io"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// chunkReadWriter returns the queued chunks one per Read, then 0, io.EOF
// as a serial port does when its read timeout elapses.
type chunkReadWriter struct {
	chunks  [][]byte
	readErr error
	written bytes.Buffer
	flushed int
}

func (c *chunkReadWriter) Read(p []byte) (int, error) {
	if len(c.chunks) == 0 {
		if c.readErr != nil {
			return 0, c.readErr
		}
		time.Sleep(time.Millisecond)
		return 0, io.EOF
	}
	n := copy(p, c.chunks[0])
	if n < len(c.chunks[0]) {
		c.chunks[0] = c.chunks[0][n:]
	} else {
		c.chunks = c.chunks[1:]
	}
	return n, nil
}

func (c *chunkReadWriter) Write(p []byte) (int, error) {
	return c.written.Write(p)
}

func (c *chunkReadWriter) Flush() error {
	c.flushed++
	c.chunks = nil
	return nil
}

type shortWriter struct {
	chunkReadWriter
}

func (w *shortWriter) Write(p []byte) (int, error) {
	return len(p) - 1, nil
}

func TestStreamTransportReadExact(t *testing.T) {
	rw := &chunkReadWriter{chunks: [][]byte{{1}, {2, 3}, {4}}}
	tr := NewStreamTransport(rw)
	b, err := tr.ReadExact(3, 100*time.Millisecond)
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3}, b)
	b, err = tr.ReadExact(1, 100*time.Millisecond)
	require.NoError(t, err)
	require.Equal(t, []byte{4}, b)
	b, err = tr.ReadExact(0, time.Millisecond)
	require.NoError(t, err)
	require.Empty(t, b)
}

func TestStreamTransportTimeout(t *testing.T) {
	rw := &chunkReadWriter{chunks: [][]byte{{1}}}
	tr := NewStreamTransport(rw)
	start := time.Now()
	b, err := tr.ReadExact(2, 20*time.Millisecond)
	require.True(t, errors.Is(err, ErrResponseTimeout))
	require.True(t, errors.Is(err, ErrProtocol))
	require.Equal(t, []byte{1}, b)
	require.True(t, time.Since(start) >= 20*time.Millisecond)

	_, err = tr.ReadExact(1, 5*time.Millisecond)
	require.True(t, errors.Is(err, ErrResponseTimeout))
	require.False(t, errors.Is(err, ErrProtocol))
}

func TestStreamTransportErrors(t *testing.T) {
	readErr := errors.New("device unplugged")
	tr := NewStreamTransport(&chunkReadWriter{readErr: readErr})
	_, err := tr.ReadExact(1, time.Second)
	var ioErr *IOError
	require.True(t, errors.As(err, &ioErr))
	require.Equal(t, "read", ioErr.Op)
	require.True(t, errors.Is(err, readErr))

	err = NewStreamTransport(&shortWriter{}).Write([]byte{1, 2})
	require.True(t, errors.As(err, &ioErr))
	require.True(t, errors.Is(err, io.ErrShortWrite))
}

func TestStreamTransportWriteFlush(t *testing.T) {
	rw := &chunkReadWriter{chunks: [][]byte{{9}}}
	tr := NewStreamTransport(rw)
	require.NoError(t, tr.Write([]byte{0x84, 0, 0x70, 0x2e}))
	require.Equal(t, []byte{0x84, 0, 0x70, 0x2e}, rw.written.Bytes())
	require.NoError(t, tr.Flush())
	require.Equal(t, 1, rw.flushed)
	require.Empty(t, rw.chunks)
	require.NoError(t, tr.Close())
}

// simDevice answers every frame with the reply queued for its first byte
// and honors read deadlines like a net.Conn.
type simDevice struct {
	replies  map[byte][]byte
	pending  []byte
	deadline time.Time
	frames   [][]byte
}

func (d *simDevice) Write(p []byte) (int, error) {
	d.frames = append(d.frames, append([]byte(nil), p...))
	d.pending = append(d.pending, d.replies[p[0]]...)
	return len(p), nil
}

func (d *simDevice) Read(p []byte) (int, error) {
	if len(d.pending) == 0 {
		if wait := time.Until(d.deadline); !d.deadline.IsZero() && wait > 0 {
			time.Sleep(wait)
		}
		return 0, os.ErrDeadlineExceeded
	}
	n := copy(p, d.pending)
	d.pending = d.pending[n:]
	return n, nil
}

func (d *simDevice) SetReadDeadline(t time.Time) error {
	d.deadline = t
	return nil
}

func newSimController(replies map[byte][]byte) (*Controller, *simDevice) {
	dev := &simDevice{replies: replies}
	c := NewController(NewStreamTransport(dev))
	c.Timeout = 20 * time.Millisecond
	return c, dev
}

func TestShortReplyIsProtocolError(t *testing.T) {
	c, _ := newSimController(map[byte][]byte{byte(OpGetPosition): {0x70}})
	_, err := c.GetPosition(0)
	require.True(t, errors.Is(err, ErrProtocol))
	require.True(t, errors.Is(err, ErrResponseTimeout))
	var protoErr *ProtocolError
	require.True(t, errors.As(err, &protoErr))
	require.Equal(t, OpGetPosition, protoErr.Opcode)
	require.Equal(t, 2, protoErr.Want)
	require.Equal(t, 1, protoErr.Got)
}

func TestSilentDeviceTimesOut(t *testing.T) {
	c, dev := newSimController(nil)
	_, err := c.GetErrors()
	require.True(t, errors.Is(err, ErrResponseTimeout))
	require.False(t, errors.Is(err, ErrProtocol))
	require.Equal(t, [][]byte{{byte(OpGetErrors)}}, dev.frames)
}

func TestStaleBytesDrainedBeforeQuery(t *testing.T) {
	c, dev := newSimController(map[byte][]byte{
		byte(OpGetErrors):      {0x01, 0x00, 0x55},
		byte(OpGetMovingState): {0x00},
	})
	bits, err := c.GetErrors()
	require.NoError(t, err)
	require.Equal(t, ErrorBits(1), bits)
	require.Equal(t, []byte{0x55}, dev.pending)

	moving, err := c.GetMovingState()
	require.NoError(t, err)
	require.False(t, moving)
	require.Empty(t, dev.pending)
}
