package maestro

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/golang/glog"
)

// DefaultTimeout bounds the wait for a reply.
const DefaultTimeout = 100 * time.Millisecond

// Observer is notified after each transaction with the device.
type Observer interface {
	ObserveTransaction(op Opcode, d time.Duration, err error)
}

// Controller provides channel level operations on a Maestro.
//
// Every operation is a single transaction: one frame written, then at most
// one fixed length reply read. Transactions are serialized, so a Controller
// may be shared by goroutines.
type Controller struct {
	Transport Transport
	Encoder   Encoder
	Registry  Registry
	Timeout   time.Duration
	Observer  Observer

	lock sync.Mutex

	rangeLock    sync.RWMutex
	defaultRange Range
	ranges       map[int]Range
}

// NewController creates a Controller using the compact protocol.
func NewController(t Transport) *Controller {
	return &Controller{
		Transport:    t,
		Encoder:      Encoder{Variant: Compact, DeviceID: DefaultDeviceID},
		Registry:     Registry{Channels: DefaultChannels},
		Timeout:      DefaultTimeout,
		defaultRange: DefaultRange,
	}
}

// Close closes the transport if it can be closed.
func (c *Controller) Close() error {
	if closer, ok := c.Transport.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// SetTarget sets the target of a channel in raw units (quarter-microseconds
// for servos).
func (c *Controller) SetTarget(ch, raw int) error {
	return c.setChannelValue(OpSetTarget, ch, raw)
}

// SetTargetNormalized maps norm from [-1, 1] onto the channel Range and sets
// the target. Values outside [-1, 1] are clamped, NaN is rejected.
func (c *Controller) SetTargetNormalized(ch int, norm float64) error {
	if err := c.Registry.CheckChannel(ch); err != nil {
		return err
	}
	raw, err := c.Range(ch).Map(norm)
	if err != nil {
		return err
	}
	return c.SetTarget(ch, raw)
}

// SetSpeed sets the speed limit of a channel, 0 is unlimited.
func (c *Controller) SetSpeed(ch, speed int) error {
	return c.setChannelValue(OpSetSpeed, ch, speed)
}

// SetAcceleration sets the acceleration limit of a channel, 0 is unlimited.
func (c *Controller) SetAcceleration(ch, accel int) error {
	return c.setChannelValue(OpSetAcceleration, ch, accel)
}

// SetPWM sets the on-time and period of the PWM output.
func (c *Controller) SetPWM(onTime, period int) error {
	operands, err := AppendPacked16(make([]byte, 0, 4), onTime)
	if err != nil {
		return err
	}
	if operands, err = AppendPacked16(operands, period); err != nil {
		return err
	}
	_, err = c.Do(OpSetPWM, operands...)
	return err
}

// GetPosition returns the current position of a channel in raw units.
func (c *Controller) GetPosition(ch int) (int, error) {
	if err := c.Registry.CheckChannel(ch); err != nil {
		return 0, err
	}
	reply, err := c.Do(OpGetPosition, byte(ch))
	if err != nil {
		return 0, err
	}
	pos, err := Uint16LE(reply)
	return int(pos), err
}

// GetMovingState reports whether any servo is still moving.
func (c *Controller) GetMovingState() (bool, error) {
	reply, err := c.Do(OpGetMovingState)
	if err != nil {
		return false, err
	}
	return reply[0] != 0, nil
}

// GetErrors reads and clears the error word.
func (c *Controller) GetErrors() (ErrorBits, error) {
	reply, err := c.Do(OpGetErrors)
	if err != nil {
		return 0, err
	}
	return DecodeErrorBits(reply)
}

// GoHome sends all servos to their home positions.
func (c *Controller) GoHome() error {
	_, err := c.Do(OpGoHome)
	return err
}

// StopScript stops the user script.
func (c *Controller) StopScript() error {
	_, err := c.Do(OpStopScript)
	return err
}

// RestartScript restarts the user script at a subroutine.
func (c *Controller) RestartScript(sub int) error {
	if sub < 0 || sub > 0x7f {
		return valueError("subroutine", sub, 0x7f)
	}
	_, err := c.Do(OpRestartScriptAtSubroutine, byte(sub))
	return err
}

// RestartScriptWithParameter restarts the user script at a subroutine with
// param pushed on the stack.
func (c *Controller) RestartScriptWithParameter(sub, param int) error {
	if sub < 0 || sub > 0x7f {
		return valueError("subroutine", sub, 0x7f)
	}
	operands, err := AppendPacked16([]byte{byte(sub)}, param)
	if err != nil {
		return err
	}
	_, err = c.Do(OpRestartScriptAtSubroutineWithParam, operands...)
	return err
}

// GetScriptStatus reports whether the user script is running.
func (c *Controller) GetScriptStatus() (bool, error) {
	reply, err := c.Do(OpGetScriptStatus)
	if err != nil {
		return false, err
	}
	return reply[0] == 0, nil
}

// MaxMiniSSCTarget is the largest Mini SSC target, 0xff starts a command.
const MaxMiniSSCTarget = 254

// SetTargetMiniSSC sets a target using the Mini SSC protocol, which is
// recognized in either framing. target 0-254 spans the channel's range
// around its neutral position.
func (c *Controller) SetTargetMiniSSC(ch, target int) error {
	if err := c.Registry.CheckChannel(ch); err != nil {
		return err
	}
	if target < 0 || target > MaxMiniSSCTarget {
		return valueError("mini ssc target", target, MaxMiniSSCTarget)
	}
	_, err := c.exchange(OpMiniSSC, []byte{byte(OpMiniSSC), byte(ch), byte(target)}, 0)
	return err
}

// Do runs a command with raw operands and returns the raw reply.
// The operand count must match the opcode.
func (c *Controller) Do(op Opcode, operands ...byte) ([]byte, error) {
	spec, ok := SpecOf(op)
	if !ok {
		return nil, fmt.Errorf("%w: unsupported opcode %s", ErrProtocol, op)
	}
	if len(operands) != spec.Operands {
		return nil, fmt.Errorf("%w: %s takes %d operand bytes, got %d", ErrProtocol, op, spec.Operands, len(operands))
	}
	for _, b := range operands {
		if b&0x80 != 0 {
			return nil, fmt.Errorf("%w: %s operand 0x%02x exceeds 7 bits", ErrValueOutOfRange, op, b)
		}
	}
	return c.exchange(op, c.Encoder.Encode(op, operands...), spec.Response)
}

func (c *Controller) setChannelValue(op Opcode, ch, v int) error {
	if err := c.Registry.CheckChannel(ch); err != nil {
		return err
	}
	b, err := Pack16(v)
	if err != nil {
		return err
	}
	_, err = c.Do(op, byte(ch), b[0], b[1])
	return err
}

func (c *Controller) exchange(op Opcode, frame []byte, replyLen int) (reply []byte, err error) {
	start := time.Now()
	c.lock.Lock()
	defer func() {
		c.lock.Unlock()
		if o := c.Observer; o != nil {
			o.ObserveTransaction(op, time.Since(start), err)
		}
	}()

	if f, ok := c.Transport.(Flusher); ok && replyLen > 0 {
		// drop late replies of timed out commands.
		if err = f.Flush(); err != nil {
			return nil, transportError("flush", err)
		}
	}
	if glog.V(2) {
		glog.Infof("TX %s % x", op, frame)
	}
	if err = c.Transport.Write(frame); err != nil {
		return nil, transportError("write", err)
	}
	if replyLen == 0 {
		return nil, nil
	}
	if reply, err = c.Transport.ReadExact(replyLen, c.Timeout); err != nil {
		var protoErr *ProtocolError
		if errors.As(err, &protoErr) && protoErr.Opcode == 0 {
			protoErr.Opcode = op
		}
		return nil, transportError("read", err)
	}
	if len(reply) != replyLen {
		return nil, &ProtocolError{Opcode: op, Want: replyLen, Got: len(reply)}
	}
	if glog.V(2) {
		glog.Infof("RX %s % x", op, reply)
	}
	return reply, nil
}

func transportError(op string, err error) error {
	var ioErr *IOError
	if errors.Is(err, ErrResponseTimeout) || errors.Is(err, ErrProtocol) || errors.As(err, &ioErr) {
		return err
	}
	return &IOError{Op: op, Err: err}
}
