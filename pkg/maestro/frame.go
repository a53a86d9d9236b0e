package maestro

import (
	"fmt"
	"strings"
)

// Variant selects the framing of commands.
type Variant int

const (
	// Compact frames: opcode, operands.
	Compact Variant = iota
	// Addressed frames: 0xAA, device number, opcode & 0x7f, operands.
	// The vendor calls this the Pololu protocol.
	Addressed
)

// AddressedLead is the first byte of every Addressed frame.
const AddressedLead byte = 0xaa

// DefaultDeviceID is the factory default device number.
const DefaultDeviceID = 12

// String implements fmt.Stringer.
func (v Variant) String() string {
	switch v {
	case Compact:
		return "compact"
	case Addressed:
		return "addressed"
	}
	return fmt.Sprintf("Variant(%d)", int(v))
}

// ParseVariant parses the name of a Variant.
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(s) {
	case "compact":
		return Compact, nil
	case "addressed", "pololu":
		return Addressed, nil
	}
	return Compact, fmt.Errorf("unknown protocol %q", s)
}

// Encoder serializes commands.
// It doesn't validate operands, callers know what each opcode expects.
type Encoder struct {
	Variant  Variant
	DeviceID byte
}

// Encode builds the frame of a command.
func (e Encoder) Encode(op Opcode, operands ...byte) []byte {
	if e.Variant == Addressed {
		frame := make([]byte, 0, 3+len(operands))
		frame = append(frame, AddressedLead, e.DeviceID&0x7f, byte(op)&0x7f)
		return append(frame, operands...)
	}
	frame := make([]byte, 0, 1+len(operands))
	frame = append(frame, byte(op))
	return append(frame, operands...)
}
