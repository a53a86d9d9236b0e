package maestro

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestConfigConfigure(t *testing.T) {
	dir := t.TempDir()
	rangesFile := filepath.Join(dir, "ranges.yaml")
	require.NoError(t, os.WriteFile(rangesFile, []byte("channels:\n  11: {min: 1000, max: 2000}\n"), 0644))

	conf := NewConfig()
	conf.Protocol = "pololu"
	conf.DeviceID = 3
	conf.Channels = 12
	conf.Timeout = time.Second
	conf.RangesFile = rangesFile

	c, tr := newTestController()
	require.NoError(t, conf.Configure(c))
	require.Equal(t, Encoder{Variant: Addressed, DeviceID: 3}, c.Encoder)
	require.Equal(t, 12, c.Registry.Channels)
	require.Equal(t, time.Second, c.Timeout)
	require.Equal(t, Range{Min: 1000, Max: 2000}, c.Range(11))

	require.NoError(t, c.SetTarget(11, 1500))
	require.Equal(t, [][]byte{{0xaa, 3, 0x04, 11, 0x5c, 0x0b}}, tr.frames)
}

func TestConfigConfigureInvalid(t *testing.T) {
	testCases := []struct {
		name  string
		setup func(*Config)
	}{
		{"protocol", func(c *Config) { c.Protocol = "binary" }},
		{"device id", func(c *Config) { c.DeviceID = 128 }},
		{"channels", func(c *Config) { c.Channels = 0 }},
		{"timeout", func(c *Config) { c.Timeout = 0 }},
		{"ranges file", func(c *Config) { c.RangesFile = filepath.Join(t.TempDir(), "missing.yaml") }},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			conf := NewConfig()
			tc.setup(conf)
			c, _ := newTestController()
			require.Error(t, conf.Configure(c))
		})
	}
}

func TestConfigDefaults(t *testing.T) {
	conf := NewConfig()
	require.Equal(t, "compact", conf.Protocol)
	require.Equal(t, DefaultDeviceID, conf.DeviceID)
	require.Equal(t, DefaultChannels, conf.Channels)
	require.NotSame(t, Default(), conf)
}
