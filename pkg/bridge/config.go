package bridge

import (
	"flag"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Config defines the listeners and polling of a bridge.
type Config struct {
	// HTTPAddr serves websocket clients on /ws and metrics on /metrics,
	// empty to disable.
	HTTPAddr string
	// TCPAddr serves length prefixed stream clients, empty to disable.
	TCPAddr      string
	PollInterval time.Duration
	// PollChannels lists the channels whose positions are polled.
	PollChannels string
}

var defaultConfig = Config{
	HTTPAddr:     ":8080",
	PollInterval: DefaultPollInterval,
	PollChannels: "0,1",
}

// SetupFlags sets command line flags.
func SetupFlags() {
	flag.StringVar(&defaultConfig.HTTPAddr, "http", defaultConfig.HTTPAddr, "HTTP listen address for websocket and metrics, empty to disable.")
	flag.StringVar(&defaultConfig.TCPAddr, "tcp", defaultConfig.TCPAddr, "TCP listen address for stream clients, empty to disable.")
	flag.DurationVar(&defaultConfig.PollInterval, "poll", defaultConfig.PollInterval, "Status polling interval, 0 to disable.")
	flag.StringVar(&defaultConfig.PollChannels, "poll-channels", defaultConfig.PollChannels, "Comma separated channels to poll positions.")
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

// NewPoller creates a Poller publishing to pub, nil if polling is disabled.
func (c *Config) NewPoller(src StatusSource, pub Publisher) (*Poller, error) {
	if c.PollInterval <= 0 {
		return nil, nil
	}
	channels, err := ParseChannels(c.PollChannels)
	if err != nil {
		return nil, err
	}
	return &Poller{
		Source:    src,
		Channels:  channels,
		Interval:  c.PollInterval,
		Publisher: pub,
	}, nil
}

// ParseChannels parses a comma separated list of channels.
func ParseChannels(s string) ([]int, error) {
	var channels []int
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item == "" {
			continue
		}
		ch, err := strconv.Atoi(item)
		if err != nil || ch < 0 {
			return nil, fmt.Errorf("invalid channel %q", item)
		}
		channels = append(channels, ch)
	}
	return channels, nil
}
