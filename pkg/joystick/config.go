package joystick

import (
	"flag"

	"golang.org/x/time/rate"
)

// Config defines the configurations for the controller.
type Config struct {
	DeviceIndex int
	Axes        string
	HomeButton  int
	Rate        float64
	Verbose     bool
}

var defaultConfig = Config{
	DeviceIndex: -1,
	Axes:        "3:0,1:1",
	HomeButton:  -1,
	Rate:        DefaultRate,
}

// SetupFlags sets command line flags.
func SetupFlags() {
	flag.IntVar(&defaultConfig.DeviceIndex, "js", defaultConfig.DeviceIndex, "Joystick index, -1 for auto detection.")
	flag.StringVar(&defaultConfig.Axes, "axes", defaultConfig.Axes, "Axis to channel bindings AXIS:CHANNEL, comma separated, prefix ! to invert.")
	flag.IntVar(&defaultConfig.HomeButton, "home-button", defaultConfig.HomeButton, "Button sending all servos home, -1 to disable.")
	flag.Float64Var(&defaultConfig.Rate, "rate", defaultConfig.Rate, "Max target updates per channel per second, 0 for unlimited.")
	flag.BoolVar(&defaultConfig.Verbose, "verbose", defaultConfig.Verbose, "Print Joystick events.")
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

// NewController creates a controller using the config.
func (c *Config) NewController(servo Servo) (*Controller, error) {
	axes, err := ParseAxisMap(c.Axes)
	if err != nil {
		return nil, err
	}
	ctl := NewController(servo, axes)
	ctl.DeviceIndex = c.DeviceIndex
	ctl.HomeButton = c.HomeButton
	ctl.Rate = rate.Limit(c.Rate)
	ctl.Verbose = c.Verbose
	return ctl, nil
}
