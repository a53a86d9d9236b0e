// Package maestro implements the serial command protocol of Pololu Maestro
// servo controllers.
package maestro

// The Maestro accepts commands in two framings on its command port or UART:
//
//   Compact:   opcode, operands...
//   Addressed: 0xAA, device number, opcode & 0x7f, operands...
//
// Every data byte after the opcode has bit 7 cleared, so 14-bit values are
// sent as two 7-bit halves, low half first. Responses are fixed length per
// opcode and are never tagged, so exactly one command may be waiting for a
// reply at any time.
//
// Producer: host
// Consumer: Maestro firmware
