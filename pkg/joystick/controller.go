package joystick

import (
	"context"
	"time"

	"github.com/golang/glog"
	"golang.org/x/time/rate"

	"github.com/robotalks/maestro.go/pkg/joystick/device"
)

// Servo is the part of a servo controller driven by a joystick.
type Servo interface {
	SetTargetNormalized(ch int, norm float64) error
	GoHome() error
}

// DefaultRate is the default limit of target updates per channel per second.
const DefaultRate = 20

// Controller drives servo channels from joystick axes.
//
// Axis updates are throttled per channel. Updates dropped by the limiter
// are not lost: the latest value is sent once the limiter allows, so a
// servo always ends at the final stick position.
type Controller struct {
	Servo       Servo
	DeviceIndex int
	Axes        AxisMap
	HomeButton  int
	Rate        rate.Limit
	Verbose     bool

	open      device.OpenFunc
	detect    device.DetectFunc
	throttles map[int]*throttle
}

type throttle struct {
	limiter *rate.Limiter
	norm    float64
	pending bool
}

// NewController creates a Controller.
func NewController(servo Servo, axes AxisMap) *Controller {
	return &Controller{
		Servo:       servo,
		DeviceIndex: defaultConfig.DeviceIndex,
		Axes:        axes,
		HomeButton:  defaultConfig.HomeButton,
		Rate:        rate.Limit(defaultConfig.Rate),
		Verbose:     defaultConfig.Verbose,
	}
}

// Run implements Runnable.
func (c *Controller) Run(ctx context.Context) error {
	var (
		dev     device.Device
		eventCh chan device.Event
	)
	defer func() {
		if dev != nil {
			dev.Close()
		}
	}()
	ticker := time.NewTicker(c.flushInterval())
	defer ticker.Stop()
	deviceTimer := time.After(0)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-deviceTimer:
			deviceTimer = nil
			if js := c.openDevice(); js != nil {
				glog.Infof("Joystick %d %q opened, %d axes, %d buttons", js.Index(), js.Name(), js.AxisCount(), js.ButtonCount())
				dev, eventCh = js, make(chan device.Event, 1)
				go c.pollJoystick(ctx, dev, eventCh)
			} else {
				deviceTimer = time.After(time.Second)
			}
		case ev, ok := <-eventCh:
			if ok {
				c.HandleEvent(ev)
				continue
			}
			glog.Warning("Joystick disconnected, centering servos")
			c.Release()
			dev.Close()
			dev, eventCh = nil, nil
			deviceTimer = time.After(time.Second)
		case <-ticker.C:
			c.Flush()
		}
	}
}

// HandleEvent applies a joystick event to the servos.
func (c *Controller) HandleEvent(ev device.Event) {
	switch evt := ev.(type) {
	case device.AxisEvent:
		if b, ok := c.Axes[evt.Index()]; ok {
			c.update(b.Channel, b.Normalize(evt.Value()))
		}
	case device.ButtonEvent:
		if evt.IsInit() || evt.Index() != c.HomeButton || !evt.Pressed() {
			return
		}
		glog.Info("Going home")
		if err := c.Servo.GoHome(); err != nil {
			glog.Warningf("GoHome error: %v", err)
		}
	}
}

// Flush sends throttled targets the limiter allows now.
func (c *Controller) Flush() {
	for ch, t := range c.throttles {
		if t.pending && t.limiter.Allow() {
			t.pending = false
			c.setTarget(ch, t.norm)
		}
	}
}

// Release moves every bound channel to the middle of its range.
func (c *Controller) Release() {
	for _, ch := range c.Axes.Channels() {
		if t := c.throttles[ch]; t != nil {
			t.pending = false
		}
		c.setTarget(ch, 0)
	}
}

func (c *Controller) update(ch int, norm float64) {
	t := c.throttle(ch)
	t.norm = norm
	if t.limiter.Allow() {
		t.pending = false
		c.setTarget(ch, norm)
		return
	}
	t.pending = true
}

func (c *Controller) throttle(ch int) *throttle {
	t := c.throttles[ch]
	if t == nil {
		limit := c.Rate
		if limit <= 0 {
			limit = rate.Inf
		}
		t = &throttle{limiter: rate.NewLimiter(limit, 1)}
		if c.throttles == nil {
			c.throttles = make(map[int]*throttle)
		}
		c.throttles[ch] = t
	}
	return t
}

func (c *Controller) setTarget(ch int, norm float64) {
	if c.Verbose {
		glog.Infof("Servo %d: %.3f", ch, norm)
	}
	if err := c.Servo.SetTargetNormalized(ch, norm); err != nil {
		glog.Warningf("Servo %d target error: %v", ch, err)
	}
}

func (c *Controller) flushInterval() time.Duration {
	if c.Rate <= 0 || c.Rate == rate.Inf {
		return time.Second / DefaultRate
	}
	return time.Duration(float64(time.Second) / float64(c.Rate))
}

func (c *Controller) openDevice() device.Device {
	open := c.open
	if open == nil {
		open = device.Open
	}
	if c.DeviceIndex >= 0 {
		js, err := open(c.DeviceIndex)
		if err != nil {
			glog.Warningf("Open joystick %d error: %v", c.DeviceIndex, err)
			return nil
		}
		return js
	}
	detect := c.detect
	if detect == nil {
		detect = device.DetectAndOpen
	}
	glog.V(1).Info("Detecting joystick ...")
	js, err := detect(0)
	if err != nil {
		glog.Warningf("Detect joystick error: %v", err)
	} else if js == nil {
		glog.V(1).Info("No joystick detected.")
	}
	return js
}

func (c *Controller) pollJoystick(ctx context.Context, dev device.Device, ch chan<- device.Event) {
	defer close(ch)
	for {
		ev, err := dev.ReadEvent()
		if err != nil {
			glog.Warningf("Joystick read error: %v", err)
			return
		}
		if ev == nil {
			continue
		}
		if c.Verbose {
			var prefix string
			if ev.IsInit() {
				prefix = "[INIT] "
			}
			switch evt := ev.(type) {
			case device.AxisEvent:
				glog.Infof(prefix+"Axis %d: %d", evt.Index(), evt.Value())
			case device.ButtonEvent:
				glog.Infof(prefix+"Button %d: %v", evt.Index(), evt.Pressed())
			}
		}
		select {
		case ch <- ev:
		case <-ctx.Done():
			return
		}
	}
}
