package frame

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scheerer/sunrise-leds/internal/rgbw"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		factor float64
		band   Band
		local  float64
	}{
		{0, Inner, 0},
		{0.165, Inner, 0.5},
		{0.33, Middle, 0},
		{0.495, Middle, 0.5},
		{0.66, Outer, 0},
		{0.83, Outer, 0.5},
		{1, Outer, 1},
	}
	for _, tt := range tests {
		band, local := Classify(tt.factor)
		assert.Equal(t, tt.band, band, "factor %v", tt.factor)
		assert.InDelta(t, tt.local, local, 1e-9, "factor %v", tt.factor)
	}
}

func TestGeometryValidation(t *testing.T) {
	_, err := NewGeometry(10, 15)
	assert.ErrorIs(t, err, ErrInvalidGeometry)

	_, err = NewGeometry(10, -1)
	assert.ErrorIs(t, err, ErrInvalidGeometry)

	_, err = NewGeometry(0, 0)
	assert.ErrorIs(t, err, ErrInvalidGeometry)

	_, err = NewGenerator(Geometry{Length: 10, Center: 10}, Look{}, 0)
	assert.ErrorIs(t, err, ErrInvalidGeometry)

	g, err := NewGeometry(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, g.MaxDistance())
	assert.Equal(t, 0.0, g.Factor(0))
}

func TestParseBandSpec(t *testing.T) {
	p := rgbw.DefaultPalette()

	spec, err := ParseBandSpec("deep_blue:YELLOW", p)
	require.NoError(t, err)
	assert.Equal(t, BandSpec{From: p.DeepBlue, To: p.Yellow, Driver: Falloff}, spec)

	spec, err = ParseBandSpec("0x01020304:orange:ramp", p)
	require.NoError(t, err)
	assert.Equal(t, BandSpec{From: 0x01020304, To: p.Orange, Driver: Ramp}, spec)

	for _, bad := range []string{"YELLOW", "YELLOW:ORANGE:ramp:x", "SKY:ORANGE", "YELLOW:ORANGE:wobble"} {
		_, err := ParseBandSpec(bad, p)
		assert.ErrorIs(t, err, ErrInvalidBand, bad)
	}
}

func TestNewLook(t *testing.T) {
	for _, name := range LookNames {
		look, err := NewLook(name, rgbw.DefaultPalette())
		require.NoError(t, err)
		assert.Equal(t, name, look.Name)
	}

	_, err := NewLook("sunset", rgbw.DefaultPalette())
	assert.ErrorIs(t, err, ErrUnknownLook)
}

func TestStringers(t *testing.T) {
	assert.Equal(t, "middle", Middle.String())
	assert.Equal(t, "ramp", Ramp.String())
	assert.Equal(t, "band(7)", Band(7).String())
}

func TestStartingFrom(t *testing.T) {
	p := rgbw.DefaultPalette()
	look, err := NewLook("warm", p)
	require.NoError(t, err)

	moved := look.StartingFrom(p.Orange)
	for i, spec := range moved.Bands {
		assert.Equal(t, p.Orange, spec.From)
		assert.Equal(t, look.Bands[i].To, spec.To)
	}
	assert.Equal(t, p.DeepBlue, look.Bands[Inner].From)
}
