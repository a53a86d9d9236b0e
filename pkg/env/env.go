// Package env provides settings shared by the maestro binaries.
package env

import (
	"flag"
	"os"

	"github.com/denisbrodbeck/machineid"
	"github.com/golang/glog"
)

// Config identifies a bridge on the MQTT broker.
type Config struct {
	// MQTTURL specifies the MQTT broker to use, empty to disable.
	// e.g. mqtt://host:port/topic-prefix/
	MQTTURL string
	// ID names the bridge, the machine ID by default.
	ID string
}

// DefaultMQTTURL is the broker tools connect to when none is configured.
// Bridges only use MQTT when configured.
const DefaultMQTTURL = "mqtt://localhost:1883/maestro/"

var defaultConfig Config

func init() {
	applyEnv(&defaultConfig, os.Getenv)
}

func applyEnv(c *Config, getenv func(string) string) {
	if val := getenv("MAESTRO_MQTT_URL"); val != "" {
		c.MQTTURL = val
	}
	if val := getenv("MAESTRO_ID"); val != "" {
		c.ID = val
	}
}

// SetupFlags sets command line flags.
func SetupFlags() {
	flag.StringVar(&defaultConfig.MQTTURL, "mqtt", defaultConfig.MQTTURL, "MQTT broker URL, empty to disable.")
	flag.StringVar(&defaultConfig.ID, "id", defaultConfig.ID, "Bridge ID, defaults to the machine ID.")
}

// Default gets default config.
func Default() *Config {
	return &defaultConfig
}

// NewConfig creates a Config with default configurations.
func NewConfig() *Config {
	conf := defaultConfig
	return &conf
}

// MQTTURLOrDefault returns MQTTURL, or DefaultMQTTURL if it is empty.
func (c *Config) MQTTURLOrDefault() string {
	if c.MQTTURL != "" {
		return c.MQTTURL
	}
	return DefaultMQTTURL
}

// BridgeID returns ID or the machine ID if ID is not set.
func (c *Config) BridgeID() string {
	if c.ID != "" {
		return c.ID
	}
	return MachineID()
}

// MachineID retrieves the unique ID identifying the machine.
// It falls back to the host name.
func MachineID() string {
	id, err := machineid.ProtectedID("maestro")
	if err == nil {
		return id[:16]
	}
	glog.Warningf("machine id not available: %v", err)
	if host, err := os.Hostname(); err == nil {
		return host
	}
	return "maestro"
}
