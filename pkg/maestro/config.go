package maestro

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/robotalks/maestro.go/pkg/maestro/serial"
)

// Config defines how to reach and drive a Maestro.
type Config struct {
	Device   string
	Baud     int
	Protocol string
	DeviceID int
	Channels int
	Timeout  time.Duration
	// RangesFile is an optional YAML file of channel ranges.
	RangesFile string
}

var defaultConfig = Config{
	Device:   "/dev/ttyACM0",
	Baud:     serial.DefaultBaud,
	Protocol: Compact.String(),
	DeviceID: DefaultDeviceID,
	Channels: DefaultChannels,
	Timeout:  DefaultTimeout,
}

func init() {
	if val := os.Getenv("MAESTRO_DEVICE"); val != "" {
		defaultConfig.Device = val
	}
}

// SetupFlags sets command line flags.
func SetupFlags() {
	flag.StringVar(&defaultConfig.Device, "device", defaultConfig.Device, "Serial device of the Maestro.")
	flag.IntVar(&defaultConfig.Baud, "baud", defaultConfig.Baud, "Baud rate, ignored on the USB command port.")
	flag.StringVar(&defaultConfig.Protocol, "protocol", defaultConfig.Protocol, "Serial protocol: compact or addressed.")
	flag.IntVar(&defaultConfig.DeviceID, "device-id", defaultConfig.DeviceID, "Device number used by the addressed protocol.")
	flag.IntVar(&defaultConfig.Channels, "channels", defaultConfig.Channels, "Number of servo channels.")
	flag.DurationVar(&defaultConfig.Timeout, "timeout", defaultConfig.Timeout, "Timeout waiting for a reply.")
	flag.StringVar(&defaultConfig.RangesFile, "ranges", defaultConfig.RangesFile, "YAML file of channel ranges.")
}

// Default gets default config.
func Default() *Config {
	return &defaultConfig
}

// NewConfig creates a config with defaults.
func NewConfig() *Config {
	conf := defaultConfig
	return &conf
}

// Configure applies everything except the device to ctl.
func (c *Config) Configure(ctl *Controller) error {
	variant, err := ParseVariant(c.Protocol)
	if err != nil {
		return err
	}
	if c.DeviceID < 0 || c.DeviceID > 0x7f {
		return fmt.Errorf("device id %d not in [0, 127]", c.DeviceID)
	}
	if c.Channels <= 0 || c.Channels > 0x7f {
		return fmt.Errorf("channels %d not in [1, 127]", c.Channels)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	ctl.Encoder = Encoder{Variant: variant, DeviceID: byte(c.DeviceID)}
	ctl.Registry = Registry{Channels: c.Channels}
	ctl.Timeout = c.Timeout
	if c.RangesFile != "" {
		ranges, err := LoadRangesFile(c.RangesFile)
		if err != nil {
			return fmt.Errorf("load ranges: %w", err)
		}
		if err = ranges.Apply(ctl); err != nil {
			return fmt.Errorf("ranges %s: %w", c.RangesFile, err)
		}
	}
	return nil
}

// NewController opens the device and creates a Controller.
func (c *Config) NewController() (*Controller, error) {
	cfg := serial.DefaultConfig(c.Device)
	cfg.Baud = c.Baud
	port, err := serial.Open(cfg)
	if err != nil {
		return nil, &IOError{Op: "open", Err: err}
	}
	ctl := NewController(NewStreamTransport(port))
	if err = c.Configure(ctl); err != nil {
		port.Close()
		return nil, err
	}
	return ctl, nil
}
