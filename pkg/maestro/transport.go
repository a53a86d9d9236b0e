package maestro

import (
	"fmt"
	"io"
	"net"
	"os"
	"time"

	"github.com/golang/glog"
)

// drainWait bounds the wait for stale input when flushing.
const drainWait = time.Millisecond

// Transport is the duplex byte link to the device.
type Transport interface {
	// Write sends all bytes of a frame.
	Write([]byte) error
	// ReadExact reads exactly n bytes or fails after timeout.
	// When the timeout elapses after part of the bytes arrived, the error
	// is a *ProtocolError wrapping ErrResponseTimeout.
	ReadExact(n int, timeout time.Duration) ([]byte, error)
}

// Flusher is implemented by transports able to discard unread input.
type Flusher interface {
	Flush() error
}

// ReadDeadliner is implemented by ports supporting read deadlines.
type ReadDeadliner interface {
	SetReadDeadline(time.Time) error
}

// StreamTransport implements Transport over an io.ReadWriter.
//
// If the ReadWriter implements ReadDeadliner, the deadline is used.
// Otherwise Read must return periodically when no data arrives, as serial
// ports opened with a read timeout do (returning 0, io.EOF or a timeout
// error), so the overall timeout can be checked.
type StreamTransport struct {
	ReadWriter io.ReadWriter
}

// NewStreamTransport wraps rw.
func NewStreamTransport(rw io.ReadWriter) *StreamTransport {
	return &StreamTransport{ReadWriter: rw}
}

// Write implements Transport.
func (t *StreamTransport) Write(b []byte) error {
	n, err := t.ReadWriter.Write(b)
	if err != nil {
		return &IOError{Op: "write", Err: err}
	}
	if n != len(b) {
		return &IOError{Op: "write", Err: io.ErrShortWrite}
	}
	return nil
}

// Flush discards unread input. With read deadlines, stale bytes are read
// out and logged, otherwise the ReadWriter's own Flush drops them.
func (t *StreamTransport) Flush() error {
	if d, ok := t.ReadWriter.(ReadDeadliner); ok {
		stale, err := t.drain(d)
		if len(stale) > 0 {
			glog.Warningf("discarded %d stale bytes: % x", len(stale), stale)
		}
		if err != nil {
			return err
		}
	}
	if f, ok := t.ReadWriter.(Flusher); ok {
		if err := f.Flush(); err != nil {
			return &IOError{Op: "flush", Err: err}
		}
	}
	return nil
}

func (t *StreamTransport) drain(d ReadDeadliner) ([]byte, error) {
	deadline := time.Now().Add(drainWait)
	if err := d.SetReadDeadline(deadline); err != nil {
		return nil, &IOError{Op: "set deadline", Err: err}
	}
	defer d.SetReadDeadline(time.Time{})
	var stale []byte
	buf := make([]byte, 64)
	for time.Now().Before(deadline) {
		n, err := t.ReadWriter.Read(buf)
		stale = append(stale, buf[:n]...)
		if err == io.EOF || isTimeout(err) || (err == nil && n == 0) {
			break
		}
		if err != nil {
			return stale, &IOError{Op: "flush", Err: err}
		}
	}
	return stale, nil
}

// Close closes the ReadWriter if it can be closed.
func (t *StreamTransport) Close() error {
	if closer, ok := t.ReadWriter.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// ReadExact implements Transport.
func (t *StreamTransport) ReadExact(n int, timeout time.Duration) ([]byte, error) {
	buf := make([]byte, n)
	if n == 0 {
		return buf, nil
	}
	deadline := time.Now().Add(timeout)
	if d, ok := t.ReadWriter.(ReadDeadliner); ok {
		if err := d.SetReadDeadline(deadline); err != nil {
			return nil, &IOError{Op: "set deadline", Err: err}
		}
		defer d.SetReadDeadline(time.Time{})
	}
	got := 0
	for got < n {
		m, err := t.ReadWriter.Read(buf[got:])
		got += m
		if got >= n {
			break
		}
		if err != nil && err != io.EOF && !isTimeout(err) {
			return buf[:got], &IOError{Op: "read", Err: err}
		}
		if !time.Now().Before(deadline) {
			timeoutErr := fmt.Errorf("%w after %v", ErrResponseTimeout, timeout)
			if got > 0 {
				return buf[:got], &ProtocolError{Want: n, Got: got, Err: timeoutErr}
			}
			return nil, timeoutErr
		}
	}
	return buf, nil
}

func isTimeout(err error) bool {
	if os.IsTimeout(err) {
		return true
	}
	if ne, ok := err.(net.Error); ok {
		return ne.Timeout()
	}
	return false
}
