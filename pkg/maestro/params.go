package maestro

import "fmt"

// Address locates a parameter in the device settings memory.
type Address struct {
	Offset int `json:"offset"`
	Width  int `json:"width"`
}

// String implements fmt.Stringer.
func (a Address) String() string {
	return fmt.Sprintf("%d/%d", a.Offset, a.Width)
}

// Parameter identifies a device-wide parameter. Its value is the byte used
// for it in GET_PARAMETER and SET_PARAMETER requests.
// Init parameters only take effect after REINITIALIZE.
type Parameter byte

// Device-wide parameters.
const (
	ParamServosAvailable      Parameter = 1  // 0-5, init
	ParamServoPeriod          Parameter = 2  // units of 256 instruction cycles, init
	ParamSerialMode           Parameter = 3  // SerialMode, init
	ParamSerialFixedBaudRate  Parameter = 4  // 0 means autodetect, init
	ParamSerialTimeout        Parameter = 6  // units of 10ms
	ParamSerialEnableCRC      Parameter = 8  // bool
	ParamSerialNeverSuspend   Parameter = 9  // bool
	ParamSerialDeviceNumber   Parameter = 10 // 0-127
	ParamSerialBaudDetectType Parameter = 11 // reserved
	ParamIOMaskA              Parameter = 12 // reserved, init
	ParamOutputMaskA          Parameter = 13 // reserved, init
	ParamIOMaskB              Parameter = 14 // reserved, init
	ParamOutputMaskB          Parameter = 15 // reserved, init
	ParamIOMaskC              Parameter = 16 // pins used for I/O instead of servo, init
	ParamOutputMaskC          Parameter = 17 // enabled outputs, init
	ParamIOMaskD              Parameter = 18 // reserved, init
	ParamOutputMaskD          Parameter = 19 // reserved, init
	ParamIOMaskE              Parameter = 20 // reserved, init
	ParamOutputMaskE          Parameter = 21 // reserved, init
	ParamScriptCRC            Parameter = 22
	ParamScriptDone           Parameter = 24 // 0 runs the script on restart
	ParamSerialMiniSSCOffset  Parameter = 25 // 0-254
)

// Parameters is the table of device-wide parameter names.
var Parameters = NewCodeTable("parameters",
	Code{"SERVOS_AVAILABLE", int(ParamServosAvailable)},
	Code{"SERVO_PERIOD", int(ParamServoPeriod)},
	Code{"SERIAL_MODE", int(ParamSerialMode)},
	Code{"SERIAL_FIXED_BAUD_RATE", int(ParamSerialFixedBaudRate)},
	Code{"SERIAL_TIMEOUT", int(ParamSerialTimeout)},
	Code{"SERIAL_ENABLE_CRC", int(ParamSerialEnableCRC)},
	Code{"SERIAL_NEVER_SUSPEND", int(ParamSerialNeverSuspend)},
	Code{"SERIAL_DEVICE_NUMBER", int(ParamSerialDeviceNumber)},
	Code{"SERIAL_BAUD_DETECT_TYPE", int(ParamSerialBaudDetectType)},
	Code{"IO_MASK_A", int(ParamIOMaskA)},
	Code{"OUTPUT_MASK_A", int(ParamOutputMaskA)},
	Code{"IO_MASK_B", int(ParamIOMaskB)},
	Code{"OUTPUT_MASK_B", int(ParamOutputMaskB)},
	Code{"IO_MASK_C", int(ParamIOMaskC)},
	Code{"OUTPUT_MASK_C", int(ParamOutputMaskC)},
	Code{"IO_MASK_D", int(ParamIOMaskD)},
	Code{"OUTPUT_MASK_D", int(ParamOutputMaskD)},
	Code{"IO_MASK_E", int(ParamIOMaskE)},
	Code{"OUTPUT_MASK_E", int(ParamOutputMaskE)},
	Code{"SCRIPT_CRC", int(ParamScriptCRC)},
	Code{"SCRIPT_DONE", int(ParamScriptDone)},
	Code{"SERIAL_MINI_SSC_OFFSET", int(ParamSerialMiniSSCOffset)},
).withError(ErrUnknownParameter)

var parameterWidths = map[Parameter]int{
	ParamSerialFixedBaudRate: 2,
	ParamSerialTimeout:       2,
	ParamScriptCRC:           2,
}

// Address returns the location of the parameter.
func (p Parameter) Address() Address {
	width := parameterWidths[p]
	if width == 0 {
		width = 1
	}
	return Address{Offset: int(p), Width: width}
}

// String implements fmt.Stringer.
func (p Parameter) String() string {
	if name, ok := Parameters.Name(int(p)); ok {
		return name
	}
	return fmt.Sprintf("Parameter(%d)", byte(p))
}

// ServoField identifies a per-channel parameter by its offset from the
// channel's base address.
type ServoField byte

// Per-channel fields.
const (
	FieldServoHome         ServoField = 30 // 2 bytes, 0=off 1=ignore
	FieldServoMin          ServoField = 32 // x2^6
	FieldServoMax          ServoField = 33 // x2^6
	FieldServoNeutral      ServoField = 34 // 2 bytes
	FieldServoRange        ServoField = 36
	FieldServoSpeed        ServoField = 37 // 5 bit mantissa, 3 bit exponent; us per 10ms, init
	FieldServoAcceleration ServoField = 38 // speed change per 10ms, init
)

// ServoFields is the table of per-channel field names.
var ServoFields = NewCodeTable("servo fields",
	Code{"SERVO_HOME", int(FieldServoHome)},
	Code{"SERVO_MIN", int(FieldServoMin)},
	Code{"SERVO_MAX", int(FieldServoMax)},
	Code{"SERVO_NEUTRAL", int(FieldServoNeutral)},
	Code{"SERVO_RANGE", int(FieldServoRange)},
	Code{"SERVO_SPEED", int(FieldServoSpeed)},
	Code{"SERVO_ACCELERATION", int(FieldServoAcceleration)},
).withError(ErrUnknownParameter)

// Layout of per-channel parameters: base = channel*servoParamStride + servoParamBase.
const (
	servoParamBase   = 30
	servoParamStride = 9
)

// Width returns the size of the field in bytes.
func (f ServoField) Width() int {
	if f == FieldServoHome || f == FieldServoNeutral {
		return 2
	}
	return 1
}

// String implements fmt.Stringer.
func (f ServoField) String() string {
	if name, ok := ServoFields.Name(int(f)); ok {
		return name
	}
	return fmt.Sprintf("ServoField(%d)", byte(f))
}

// DefaultChannels is the channel count of the smallest Maestro.
const DefaultChannels = 6

// Registry computes parameter addresses for a device with Channels servo
// outputs. It holds no other state.
type Registry struct {
	Channels int
}

// AddressOf returns the address of a device-wide parameter by name.
func (r Registry) AddressOf(name string) (Address, error) {
	v, err := Parameters.Code(name)
	if err != nil {
		return Address{}, err
	}
	return Parameter(v).Address(), nil
}

// ServoAddressOf returns the address of a per-channel field by name.
func (r Registry) ServoAddressOf(channel int, field string) (Address, error) {
	if err := r.CheckChannel(channel); err != nil {
		return Address{}, err
	}
	v, err := ServoFields.Code(field)
	if err != nil {
		return Address{}, err
	}
	return r.ServoAddress(channel, ServoField(v))
}

// ServoAddress returns the address of a per-channel field.
func (r Registry) ServoAddress(channel int, f ServoField) (Address, error) {
	if err := r.CheckChannel(channel); err != nil {
		return Address{}, err
	}
	if _, ok := ServoFields.Name(int(f)); !ok {
		return Address{}, fmt.Errorf("%w: %s", ErrUnknownParameter, f)
	}
	base := channel*servoParamStride + servoParamBase
	return Address{Offset: base + int(f), Width: f.Width()}, nil
}

// CheckChannel validates a channel index.
func (r Registry) CheckChannel(channel int) error {
	if channel < 0 || channel >= r.Channels {
		return channelError(channel, r.Channels)
	}
	return nil
}
