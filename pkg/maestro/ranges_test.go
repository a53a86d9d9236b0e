package maestro

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const rangesYAML = `
default: {min: 4400, max: 7600}
channels:
  0: {min: 3968, max: 8000}
  5:
    min: 5000
    max: 7000
`

func TestLoadRanges(t *testing.T) {
	f, err := LoadRanges(strings.NewReader(rangesYAML))
	require.NoError(t, err)
	require.Equal(t, &Range{Min: 4400, Max: 7600}, f.Default)
	require.Equal(t, map[int]Range{
		0: {Min: 3968, Max: 8000},
		5: {Min: 5000, Max: 7000},
	}, f.Channels)

	c, _ := newTestController()
	require.NoError(t, f.Apply(c))
	require.Equal(t, Range{Min: 3968, Max: 8000}, c.Range(0))
	require.Equal(t, Range{Min: 4400, Max: 7600}, c.Range(1))
	require.Equal(t, Range{Min: 5000, Max: 7000}, c.Range(5))
}

func TestLoadRangesEmpty(t *testing.T) {
	f, err := LoadRanges(strings.NewReader(""))
	require.NoError(t, err)
	require.Nil(t, f.Default)
	require.Empty(t, f.Channels)
}

func TestLoadRangesInvalid(t *testing.T) {
	_, err := LoadRanges(strings.NewReader("defaults: {min: 1, max: 2}\n"))
	require.Error(t, err)

	f, err := LoadRanges(strings.NewReader("channels:\n  1: {min: 8000, max: 4000}\n"))
	require.NoError(t, err)
	c, _ := newTestController()
	err = f.Apply(c)
	require.True(t, errors.Is(err, ErrValueOutOfRange))
	require.Contains(t, err.Error(), "channel 1")

	f, err = LoadRanges(strings.NewReader("channels:\n  9: {min: 4000, max: 8000}\n"))
	require.NoError(t, err)
	require.True(t, errors.Is(f.Apply(c), ErrChannelOutOfRange))
}
