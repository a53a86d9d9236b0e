package maestro

import (
	"errors"
	"strings"
)

// ErrorBits is the error word reported by GET_ERRORS. Each condition
// occupies one bit; bits 9-15 are reserved.
type ErrorBits uint16

// Error conditions.
const (
	BitSerialSignal ErrorBits = 1 << iota
	BitSerialOverrun
	BitSerialBufferFull
	BitSerialCRC
	BitSerialProtocol
	BitSerialTimeout
	BitScriptStack
	BitScriptCallStack
	BitScriptProgramCounter

	knownErrorBits = BitScriptProgramCounter<<1 - 1
)

// ErrorBitNames maps condition names to bit numbers.
var ErrorBitNames = NewCodeTable("error bits",
	Code{"SERIAL_SIGNAL", 0},
	Code{"SERIAL_OVERRUN", 1},
	Code{"SERIAL_BUFFER_FULL", 2},
	Code{"SERIAL_CRC", 3},
	Code{"SERIAL_PROTOCOL", 4},
	Code{"SERIAL_TIMEOUT", 5},
	Code{"SCRIPT_STACK", 6},
	Code{"SCRIPT_CALL_STACK", 7},
	Code{"SCRIPT_PROGRAM_COUNTER", 8},
)

var errorBitText = [...]string{
	"serial signal error",
	"serial overrun error",
	"serial buffer full",
	"serial crc error",
	"serial protocol error",
	"serial timeout",
	"script stack error",
	"script call stack error",
	"script program counter error",
}

// DecodeErrorBits decodes the two byte reply of GET_ERRORS.
func DecodeErrorBits(b []byte) (ErrorBits, error) {
	v, err := Uint16LE(b)
	return ErrorBits(v), err
}

// Has reports whether all bits in mask are set.
func (e ErrorBits) Has(mask ErrorBits) bool {
	return e&mask == mask
}

// Known returns only the named conditions.
func (e ErrorBits) Known() ErrorBits {
	return e & knownErrorBits
}

// Unrecognized returns the reserved bits that are set. They are kept as
// reported by the device and never treated as errors.
func (e ErrorBits) Unrecognized() ErrorBits {
	return e &^ knownErrorBits
}

// Names lists the names of the set conditions, in bit order.
func (e ErrorBits) Names() []string {
	var names []string
	for bit := 0; bit < 16; bit++ {
		if e&(1<<uint(bit)) == 0 {
			continue
		}
		if name, ok := ErrorBitNames.Name(bit); ok {
			names = append(names, name)
		}
	}
	return names
}

// String implements fmt.Stringer.
func (e ErrorBits) String() string {
	if e == 0 {
		return "none"
	}
	names := e.Names()
	if e.Unrecognized() != 0 {
		names = append(names, "UNRECOGNIZED")
	}
	return strings.Join(names, "|")
}

// Err converts the set conditions into an error, nil if none is set.
func (e ErrorBits) Err() error {
	var s []string
	for bit, text := range errorBitText {
		if e&(1<<uint(bit)) != 0 {
			s = append(s, text)
		}
	}
	if len(s) == 0 {
		return nil
	}
	return errors.New(strings.Join(s, ","))
}
