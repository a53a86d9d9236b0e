//go:build !linux

package device

import "errors"

// ErrUnsupported is returned on platforms without joystick support.
var ErrUnsupported = errors.New("joystick is only supported on linux")

// Open opens the device with specified index.
func Open(index int) (Device, error) {
	return nil, ErrUnsupported
}

// DetectAndOpen detects a next available device from startIndex and opens it.
func DetectAndOpen(startIndex int) (Device, error) {
	return nil, ErrUnsupported
}
