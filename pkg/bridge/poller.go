package bridge

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/golang/glog"

	"github.com/robotalks/maestro.go/pkg/bridge/msgs"
	"github.com/robotalks/maestro.go/pkg/maestro"
)

// DefaultPollInterval is the default interval between two polls.
const DefaultPollInterval = 250 * time.Millisecond

// StatusSource provides the state polled by a Poller.
type StatusSource interface {
	GetPosition(ch int) (int, error)
	GetMovingState() (bool, error)
	GetErrors() (maestro.ErrorBits, error)
}

// Publisher receives polled status.
type Publisher interface {
	Publish(msgs.Message) error
}

// Poller periodically reads the state of the servos.
type Poller struct {
	Source   StatusSource
	Channels []int
	// Labels optionally names channels in the log.
	Labels    map[int]string
	Interval  time.Duration
	Publisher Publisher
	// OnStatus is called with every polled status.
	OnStatus func(*msgs.Status)
}

// Poll reads the positions, moving state and error bits.
// Polling stops at the first failure, recorded in Status.Error.
func (p *Poller) Poll() *msgs.Status {
	status := &msgs.Status{Time: time.Now().UnixNano() / int64(time.Millisecond)}
	for _, ch := range p.Channels {
		pos, err := p.Source.GetPosition(ch)
		if err != nil {
			status.Error = fmt.Sprintf("channel %d: %v", ch, err)
			return status
		}
		status.Channels = append(status.Channels, int32(ch))
		status.Positions = append(status.Positions, int32(pos))
	}
	moving, err := p.Source.GetMovingState()
	if err != nil {
		status.Error = err.Error()
		return status
	}
	status.Moving = moving
	bits, err := p.Source.GetErrors()
	if err != nil {
		status.Error = err.Error()
		return status
	}
	status.Errors = uint32(bits)
	status.ErrorNames = bits.Names()
	return status
}

// Run implements Runnable.
func (p *Poller) Run(ctx context.Context) error {
	interval := p.Interval
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
		status := p.Poll()
		p.log(status)
		if p.OnStatus != nil {
			p.OnStatus(status)
		}
		if p.Publisher != nil {
			if err := p.Publisher.Publish(status); err != nil {
				glog.Warningf("publish status error: %v", err)
			}
		}
	}
}

func (p *Poller) log(status *msgs.Status) {
	if status.Error != "" {
		glog.Warningf("poll error: %s", status.Error)
	}
	if status.Errors != 0 {
		glog.Warningf("device errors: %s", strings.Join(status.ErrorNames, "|"))
	}
	if !glog.V(1) {
		return
	}
	for n, ch := range status.Channels {
		label := p.Labels[int(ch)]
		if label == "" {
			label = fmt.Sprintf("Channel %d", ch)
		}
		glog.Infof("%s: %d", label, status.Positions[n])
	}
}
