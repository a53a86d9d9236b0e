package joystick

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/robotalks/maestro.go/pkg/joystick/device"
)

// AxisMax is the magnitude of a fully deflected axis.
const AxisMax = device.AxisMax

// Binding drives a servo channel from a joystick axis.
type Binding struct {
	Axis    int
	Channel int
	Invert  bool
}

// String formats the binding as AXIS:CHANNEL, prefixed with ! if inverted.
func (b Binding) String() string {
	s := fmt.Sprintf("%d:%d", b.Axis, b.Channel)
	if b.Invert {
		s = "!" + s
	}
	return s
}

// Normalize converts a raw axis value to [-1, 1].
func (b Binding) Normalize(value int) float64 {
	norm := math.Max(-1, math.Min(1, float64(value)/AxisMax))
	if b.Invert {
		norm = -norm
	}
	return norm
}

// AxisMap maps axis indices to bindings.
type AxisMap map[int]Binding

// ParseAxisMap parses a comma separated list of bindings, e.g. "3:0,!1:1".
func ParseAxisMap(s string) (AxisMap, error) {
	m := make(AxisMap)
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item == "" {
			continue
		}
		var b Binding
		spec := item
		if strings.HasPrefix(spec, "!") {
			b.Invert, spec = true, spec[1:]
		}
		parts := strings.Split(spec, ":")
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid axis binding %q, expect AXIS:CHANNEL", item)
		}
		var err error
		if b.Axis, err = strconv.Atoi(parts[0]); err != nil || b.Axis < 0 {
			return nil, fmt.Errorf("invalid axis in %q", item)
		}
		if b.Channel, err = strconv.Atoi(parts[1]); err != nil || b.Channel < 0 {
			return nil, fmt.Errorf("invalid channel in %q", item)
		}
		if _, exist := m[b.Axis]; exist {
			return nil, fmt.Errorf("axis %d bound more than once", b.Axis)
		}
		m[b.Axis] = b
	}
	return m, nil
}

// Bindings returns the bindings ordered by axis.
func (m AxisMap) Bindings() []Binding {
	bindings := make([]Binding, 0, len(m))
	for _, b := range m {
		bindings = append(bindings, b)
	}
	sort.Slice(bindings, func(i, j int) bool { return bindings[i].Axis < bindings[j].Axis })
	return bindings
}

// Channels returns the distinct bound channels in ascending order.
func (m AxisMap) Channels() []int {
	seen := make(map[int]bool)
	var channels []int
	for _, b := range m {
		if !seen[b.Channel] {
			seen[b.Channel] = true
			channels = append(channels, b.Channel)
		}
	}
	sort.Ints(channels)
	return channels
}

func (m AxisMap) String() string {
	items := make([]string, 0, len(m))
	for _, b := range m.Bindings() {
		items = append(items, b.String())
	}
	return strings.Join(items, ",")
}
