package maestro

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownParameter indicates a parameter or field name not in the fixed tables.
	ErrUnknownParameter = errors.New("unknown parameter")
	// ErrChannelOutOfRange indicates a channel index beyond the available channels.
	ErrChannelOutOfRange = errors.New("channel out of range")
	// ErrValueOutOfRange indicates an operand not representable on the wire.
	ErrValueOutOfRange = errors.New("value out of range")
	// ErrResponseTimeout indicates the device did not reply in time.
	ErrResponseTimeout = errors.New("response timeout")
	// ErrProtocol indicates the device reply does not match the command.
	ErrProtocol = errors.New("protocol error")
)

// IOError wraps failures of the underlying transport.
type IOError struct {
	Op  string
	Err error
}

// Error implements error.
func (e *IOError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns the transport error.
func (e *IOError) Unwrap() error {
	return e.Err
}

// ProtocolError reports a reply length different from what the opcode guarantees.
// A reply cut short by the read timeout also wraps ErrResponseTimeout.
type ProtocolError struct {
	Opcode Opcode
	Want   int
	Got    int
	Err    error
}

// Error implements error.
func (e *ProtocolError) Error() string {
	msg := fmt.Sprintf("protocol error: expects %d bytes, got %d", e.Want, e.Got)
	if e.Opcode != 0 {
		msg = fmt.Sprintf("protocol error: %s expects %d bytes, got %d", e.Opcode, e.Want, e.Got)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Is makes errors.Is(err, ErrProtocol) hold.
func (e *ProtocolError) Is(target error) bool {
	return target == ErrProtocol
}

// Unwrap returns the cause, if any.
func (e *ProtocolError) Unwrap() error {
	return e.Err
}

// UnknownCodeError is returned when a name is not found in a CodeTable.
type UnknownCodeError struct {
	Table string
	Name  string
	kind  error
}

// Error implements error.
func (e *UnknownCodeError) Error() string {
	return fmt.Sprintf("%q not in %s", e.Name, e.Table)
}

// Is matches the sentinel the table was built with, if any.
func (e *UnknownCodeError) Is(target error) bool {
	return e.kind != nil && target == e.kind
}

func channelError(ch, channels int) error {
	return fmt.Errorf("%w: %d (available %d)", ErrChannelOutOfRange, ch, channels)
}

func valueError(what string, v, max int) error {
	return fmt.Errorf("%w: %s %d not in [0, %d]", ErrValueOutOfRange, what, v, max)
}
