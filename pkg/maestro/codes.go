package maestro

import (
	"fmt"
	"sort"
)

// Code is a named wire value.
type Code struct {
	Name  string
	Value int
}

// CodeTable maps symbolic names to wire values and back.
// Tables are built during package initialization and never modified.
type CodeTable struct {
	name   string
	kind   error
	byName map[string]int
	byCode map[int]string
	names  []string
}

// NewCodeTable builds a table, it panics on duplicated names or values.
func NewCodeTable(name string, codes ...Code) *CodeTable {
	t := &CodeTable{
		name:   name,
		byName: make(map[string]int, len(codes)),
		byCode: make(map[int]string, len(codes)),
		names:  make([]string, 0, len(codes)),
	}
	for _, c := range codes {
		if _, exist := t.byName[c.Name]; exist {
			panic(fmt.Sprintf("%s: duplicated name %q", name, c.Name))
		}
		if _, exist := t.byCode[c.Value]; exist {
			panic(fmt.Sprintf("%s: duplicated value %d", name, c.Value))
		}
		t.byName[c.Name], t.byCode[c.Value] = c.Value, c.Name
		t.names = append(t.names, c.Name)
	}
	return t
}

func (t *CodeTable) withError(kind error) *CodeTable {
	t.kind = kind
	return t
}

// TableName returns the name of the table.
func (t *CodeTable) TableName() string {
	return t.name
}

// Code looks up the value of name.
func (t *CodeTable) Code(name string) (int, error) {
	if v, ok := t.byName[name]; ok {
		return v, nil
	}
	return 0, &UnknownCodeError{Table: t.name, Name: name, kind: t.kind}
}

// Name looks up the name of a value. Unknown values are reported with
// ok == false rather than an error.
func (t *CodeTable) Name(value int) (name string, ok bool) {
	name, ok = t.byCode[value]
	return
}

// Names returns names in registration order.
func (t *CodeTable) Names() []string {
	return append([]string(nil), t.names...)
}

// Values returns all values in ascending order.
func (t *CodeTable) Values() []int {
	values := make([]int, 0, len(t.byCode))
	for v := range t.byCode {
		values = append(values, v)
	}
	sort.Ints(values)
	return values
}

// Len returns the number of entries.
func (t *CodeTable) Len() int {
	return len(t.names)
}

// Opcode is the first byte of a serial command.
type Opcode byte

// Serial command opcodes.
const (
	OpSetTarget                          Opcode = 0x84
	OpSetSpeed                           Opcode = 0x87
	OpSetAcceleration                    Opcode = 0x89
	OpSetPWM                             Opcode = 0x8a
	OpGetPosition                        Opcode = 0x90
	OpGetMovingState                     Opcode = 0x93
	OpGetErrors                          Opcode = 0xa1
	OpGoHome                             Opcode = 0xa2
	OpStopScript                         Opcode = 0xa4
	OpRestartScriptAtSubroutine          Opcode = 0xa7
	OpRestartScriptAtSubroutineWithParam Opcode = 0xa8
	OpGetScriptStatus                    Opcode = 0xae
	OpMiniSSC                            Opcode = 0xff
)

// Opcodes is the table of serial command opcodes.
var Opcodes = NewCodeTable("opcodes",
	Code{"SET_TARGET", int(OpSetTarget)},
	Code{"SET_SPEED", int(OpSetSpeed)},
	Code{"SET_ACCELERATION", int(OpSetAcceleration)},
	Code{"SET_PWM", int(OpSetPWM)},
	Code{"GET_POSITION", int(OpGetPosition)},
	Code{"GET_MOVING_STATE", int(OpGetMovingState)},
	Code{"GET_ERRORS", int(OpGetErrors)},
	Code{"GO_HOME", int(OpGoHome)},
	Code{"STOP_SCRIPT", int(OpStopScript)},
	Code{"RESTART_SCRIPT_AT_SUBROUTINE", int(OpRestartScriptAtSubroutine)},
	Code{"RESTART_SCRIPT_AT_SUBROUTINE_WITH_PARAMETER", int(OpRestartScriptAtSubroutineWithParam)},
	Code{"GET_SCRIPT_STATUS", int(OpGetScriptStatus)},
	Code{"MINI_SSC", int(OpMiniSSC)},
)

// ParseOpcode looks up an opcode by name.
func ParseOpcode(name string) (Opcode, error) {
	v, err := Opcodes.Code(name)
	return Opcode(v), err
}

// String implements fmt.Stringer.
func (o Opcode) String() string {
	if name, ok := Opcodes.Name(int(o)); ok {
		return name
	}
	return fmt.Sprintf("0x%02x", byte(o))
}

// Request is the bRequest value of a USB control transfer.
type Request byte

// USB control requests.
const (
	ReqGetParameter                       Request = 0x81
	ReqSetParameter                       Request = 0x82
	ReqGetVariables                       Request = 0x83
	ReqSetServoVariable                   Request = 0x84
	ReqSetTarget                          Request = 0x85
	ReqClearErrors                        Request = 0x86
	ReqReinitialize                       Request = 0x90
	ReqEraseScript                        Request = 0xa0
	ReqWriteScript                        Request = 0xa1
	ReqSetScriptDone                      Request = 0xa2
	ReqRestartScriptAtSubroutine          Request = 0xa3
	ReqRestartScriptAtSubroutineWithParam Request = 0xa4
	ReqRestartScript                      Request = 0xa5
	ReqStartBootloader                    Request = 0xff
)

// Requests is the table of USB control requests.
var Requests = NewCodeTable("requests",
	Code{"GET_PARAMETER", int(ReqGetParameter)},
	Code{"SET_PARAMETER", int(ReqSetParameter)},
	Code{"GET_VARIABLES", int(ReqGetVariables)},
	Code{"SET_SERVO_VARIABLE", int(ReqSetServoVariable)},
	Code{"SET_TARGET", int(ReqSetTarget)},
	Code{"CLEAR_ERRORS", int(ReqClearErrors)},
	Code{"REINITIALIZE", int(ReqReinitialize)},
	Code{"ERASE_SCRIPT", int(ReqEraseScript)},
	Code{"WRITE_SCRIPT", int(ReqWriteScript)},
	Code{"SET_SCRIPT_DONE", int(ReqSetScriptDone)},
	Code{"RESTART_SCRIPT_AT_SUBROUTINE", int(ReqRestartScriptAtSubroutine)},
	Code{"RESTART_SCRIPT_AT_SUBROUTINE_WITH_PARAMETER", int(ReqRestartScriptAtSubroutineWithParam)},
	Code{"RESTART_SCRIPT", int(ReqRestartScript)},
	Code{"START_BOOTLOADER", int(ReqStartBootloader)},
)

// String implements fmt.Stringer.
func (r Request) String() string {
	if name, ok := Requests.Name(int(r)); ok {
		return name
	}
	return fmt.Sprintf("0x%02x", byte(r))
}

// SerialMode is the value of the SERIAL_MODE parameter.
type SerialMode byte

// Serial modes.
const (
	// SerialModeUSBDualPort: commands on the Command Port, TTL port bridged to the UART.
	SerialModeUSBDualPort SerialMode = iota
	// SerialModeUSBChained: Command Port bytes go to the firmware and the UART TX line.
	SerialModeUSBChained
	// SerialModeUARTDetectBaudRate: commands on the UART, baud rate detected.
	SerialModeUARTDetectBaudRate
	// SerialModeUARTFixedBaudRate: commands on the UART at SERIAL_FIXED_BAUD_RATE.
	SerialModeUARTFixedBaudRate
)

// SerialModes is the table of serial modes.
var SerialModes = NewCodeTable("serial modes",
	Code{"USB_DUAL_PORT", int(SerialModeUSBDualPort)},
	Code{"USB_CHAINED", int(SerialModeUSBChained)},
	Code{"UART_DETECT_BAUD_RATE", int(SerialModeUARTDetectBaudRate)},
	Code{"UART_FIXED_BAUD_RATE", int(SerialModeUARTFixedBaudRate)},
)

// String implements fmt.Stringer.
func (m SerialMode) String() string {
	if name, ok := SerialModes.Name(int(m)); ok {
		return name
	}
	return fmt.Sprintf("SerialMode(%d)", byte(m))
}

// BaudDetectType is the value of SERIAL_BAUD_DETECT_TYPE.
type BaudDetectType byte

// Baud detection bytes.
const (
	BaudDetectAA BaudDetectType = 0
	BaudDetectFF BaudDetectType = 1
)

// BaudDetectTypes is the table of baud detect types.
var BaudDetectTypes = NewCodeTable("baud detect types",
	Code{"AA", int(BaudDetectAA)},
	Code{"FF", int(BaudDetectFF)},
)

// CodeTables lists all tables by a short name.
var CodeTables = map[string]*CodeTable{
	"opcodes":  Opcodes,
	"requests": Requests,
	"serial":   SerialModes,
	"baud":     BaudDetectTypes,
	"errors":   ErrorBitNames,
	"params":   Parameters,
	"fields":   ServoFields,
}
