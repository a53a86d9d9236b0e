// Package device reads Linux joystick devices (/dev/input/jsN).
package device

import "io"

// AxisMax is the value reported by an axis deflected all the way, the
// opposite end reports -AxisMax.
const AxisMax = 32767

// Event is a change reported by the joystick.
// After opening, the kernel reports the state of every axis and button as
// init events.
type Event interface {
	IsInit() bool
	// Index is the number of the axis or button.
	Index() int
}

// AxisEvent carries an axis position in [-AxisMax, AxisMax].
type AxisEvent interface {
	Event
	Value() int
}

// ButtonEvent carries a button state.
type ButtonEvent interface {
	Event
	Pressed() bool
}

// Device is an opened joystick.
type Device interface {
	io.Closer
	Index() int
	Name() string
	AxisCount() int
	ButtonCount() int
	// ReadEvent blocks until the next event.
	ReadEvent() (Event, error)
}

// OpenFunc opens the joystick of an index.
type OpenFunc func(index int) (Device, error)

// DetectFunc opens the first available joystick from an index, it returns
// nil without error when none is found.
type DetectFunc func(startIndex int) (Device, error)
