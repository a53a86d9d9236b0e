package maestro

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncoder(t *testing.T) {
	testCases := []struct {
		name     string
		encoder  Encoder
		op       Opcode
		operands []byte
		expect   []byte
	}{
		{"compact set target", Encoder{Variant: Compact}, OpSetTarget, []byte{2, 0x70, 0x2e}, []byte{0x84, 2, 0x70, 0x2e}},
		{"compact no operands", Encoder{Variant: Compact}, OpGetErrors, nil, []byte{0xa1}},
		{"compact ignores device", Encoder{Variant: Compact, DeviceID: 12}, OpGoHome, nil, []byte{0xa2}},
		{"addressed set target", Encoder{Variant: Addressed, DeviceID: 12}, OpSetTarget, []byte{2, 0x70, 0x2e}, []byte{0xaa, 12, 0x04, 2, 0x70, 0x2e}},
		{"addressed masks device", Encoder{Variant: Addressed, DeviceID: 0x8c}, OpGetPosition, []byte{1}, []byte{0xaa, 0x0c, 0x10, 1}},
		{"addressed no operands", Encoder{Variant: Addressed, DeviceID: 1}, OpGetScriptStatus, nil, []byte{0xaa, 1, 0x2e}},
		// operand count is not the encoder's business.
		{"compact unchecked operands", Encoder{Variant: Compact}, OpGoHome, []byte{1, 2}, []byte{0xa2, 1, 2}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expect, tc.encoder.Encode(tc.op, tc.operands...))
		})
	}
}

func TestParseVariant(t *testing.T) {
	for _, v := range []Variant{Compact, Addressed} {
		parsed, err := ParseVariant(v.String())
		require.NoError(t, err)
		require.Equal(t, v, parsed)
	}
	v, err := ParseVariant("Pololu")
	require.NoError(t, err)
	require.Equal(t, Addressed, v)
	_, err = ParseVariant("mini-ssc")
	require.Error(t, err)
}
