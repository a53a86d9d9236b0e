// Package serial opens the serial port a Maestro is attached to.
package serial

import (
	"fmt"
	"io"
	"time"

	"github.com/tarm/serial"
)

// Port is an opened serial port.
type Port interface {
	io.ReadWriteCloser

	// Flush discards data received but not read.
	Flush() error
}

// Config holds serial port configuration.
type Config struct {
	// Device path, e.g. /dev/ttyACM0 or COM3.
	Device string

	// Baud rate, ignored by the USB command port.
	Baud int

	// ReadTimeout is how long a single Read waits for data, 0 blocks.
	ReadTimeout time.Duration
}

// Defaults for DefaultConfig.
const (
	DefaultBaud        = 115200
	DefaultReadTimeout = 20 * time.Millisecond
)

// DefaultConfig returns the configuration of a Maestro command port.
func DefaultConfig(device string) *Config {
	return &Config{
		Device:      device,
		Baud:        DefaultBaud,
		ReadTimeout: DefaultReadTimeout,
	}
}

// Open opens a serial port.
func Open(cfg *Config) (Port, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	port, err := serial.OpenPort(&serial.Config{
		Name:        cfg.Device,
		Baud:        cfg.Baud,
		ReadTimeout: cfg.ReadTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("open serial port %s: %w", cfg.Device, err)
	}
	return port, nil
}
