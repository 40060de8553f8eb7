package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayout_String(t *testing.T) {
	tests := []struct {
		layout   Layout
		expected string
		desc     string
	}{
		{SoA, "soa", "Structure of Arrays"},
		{AoS, "aos", "Array of Structures"},
		{Layout(99), "unknown", "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.layout.String())
			assert.Equal(t, tt.desc, tt.layout.Description())
		})
	}
}

func TestLayoutConstants(t *testing.T) {
	// Verify the iota ordering
	assert.Equal(t, Layout(0), SoA)
	assert.Equal(t, Layout(1), AoS)
}

func TestParse(t *testing.T) {
	for _, l := range []Layout{SoA, AoS} {
		got, err := Parse(l.String())
		require.NoError(t, err)
		assert.Equal(t, l, got)
	}

	got, err := Parse(" AoS ")
	require.NoError(t, err)
	assert.Equal(t, AoS, got)

	_, err = Parse("columnar")
	assert.ErrorIs(t, err, ErrUnknownLayout)
}
