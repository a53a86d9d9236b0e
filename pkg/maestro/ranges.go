package maestro

import (
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Range bounds the raw targets a channel is driven to by normalized targets.
type Range struct {
	Min int `yaml:"min" json:"min"`
	Max int `yaml:"max" json:"max"`
}

func (r Range) String() string {
	return fmt.Sprintf("%d..%d", r.Min, r.Max)
}

// DefaultRange applies to channels without an explicit Range.
var DefaultRange = Range{Min: 4000, Max: 8000}

// Validate checks the bounds are ordered and representable.
func (r Range) Validate() error {
	if r.Min < 0 || r.Max > MaxPacked16 || r.Min > r.Max {
		return fmt.Errorf("%w: range [%d, %d]", ErrValueOutOfRange, r.Min, r.Max)
	}
	return nil
}

// Map converts norm in [-1, 1] to raw units, truncating toward zero.
// norm is clamped to [-1, 1].
func (r Range) Map(norm float64) (int, error) {
	if math.IsNaN(norm) {
		return 0, fmt.Errorf("%w: normalized target is NaN", ErrValueOutOfRange)
	}
	norm = math.Max(-1, math.Min(1, norm))
	delta := float64(r.Max-r.Min) / 2
	return int(float64(r.Min) + delta*(1+norm)), nil
}

// Mid returns the raw value of norm 0.
func (r Range) Mid() int {
	v, _ := r.Map(0)
	return v
}

// Range returns the Range of a channel.
func (c *Controller) Range(ch int) Range {
	c.rangeLock.RLock()
	defer c.rangeLock.RUnlock()
	if r, ok := c.ranges[ch]; ok {
		return r
	}
	return c.defaultRange
}

// SetRange overrides the Range of a channel.
func (c *Controller) SetRange(ch int, r Range) error {
	if err := c.Registry.CheckChannel(ch); err != nil {
		return err
	}
	if err := r.Validate(); err != nil {
		return err
	}
	c.rangeLock.Lock()
	defer c.rangeLock.Unlock()
	if c.ranges == nil {
		c.ranges = make(map[int]Range)
	}
	c.ranges[ch] = r
	return nil
}

// SetDefaultRange sets the Range of channels without an override.
func (c *Controller) SetDefaultRange(r Range) error {
	if err := r.Validate(); err != nil {
		return err
	}
	c.rangeLock.Lock()
	c.defaultRange = r
	c.rangeLock.Unlock()
	return nil
}

// RangesFile is the YAML layout of channel ranges:
//
//	default: {min: 4000, max: 8000}
//	channels:
//	  0: {min: 3968, max: 8000}
type RangesFile struct {
	Default  *Range        `yaml:"default"`
	Channels map[int]Range `yaml:"channels"`
}

// LoadRanges decodes a RangesFile.
func LoadRanges(r io.Reader) (*RangesFile, error) {
	var f RangesFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && err != io.EOF {
		return nil, err
	}
	return &f, nil
}

// LoadRangesFile reads a RangesFile from path.
func LoadRangesFile(path string) (*RangesFile, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return LoadRanges(file)
}

// Apply configures the ranges on c.
func (f *RangesFile) Apply(c *Controller) error {
	if f.Default != nil {
		if err := c.SetDefaultRange(*f.Default); err != nil {
			return fmt.Errorf("default: %w", err)
		}
	}
	for ch, r := range f.Channels {
		if err := c.SetRange(ch, r); err != nil {
			return fmt.Errorf("channel %d: %w", ch, err)
		}
	}
	return nil
}
