// Package bridge exposes a servo controller to remote clients.
//
// Clients send Requests over a packet transport (MQTT, websocket or a
// length prefixed stream) and receive Replies and periodic Status events.
package bridge

import "github.com/robotalks/maestro.go/pkg/maestro"

// PacketReader reads packets in bytes.
type PacketReader interface {
	ReadPacket() ([]byte, error)
}

// PacketWriter writes packets in bytes.
type PacketWriter interface {
	WritePacket([]byte) error
}

// PacketReadWriter reads/writes packets in bytes.
type PacketReadWriter interface {
	PacketReader
	PacketWriter
}

// Servo is the controller operated by the bridge, implemented by
// *maestro.Controller.
type Servo interface {
	SetTarget(ch, raw int) error
	SetTargetNormalized(ch int, norm float64) error
	SetSpeed(ch, speed int) error
	SetAcceleration(ch, accel int) error
	SetPWM(onTime, period int) error
	GetPosition(ch int) (int, error)
	GetMovingState() (bool, error)
	GetErrors() (maestro.ErrorBits, error)
	GoHome() error
	StopScript() error
	RestartScript(sub int) error
	RestartScriptWithParameter(sub, param int) error
	GetScriptStatus() (bool, error)
	Do(op maestro.Opcode, operands ...byte) ([]byte, error)
}
