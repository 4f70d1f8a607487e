package rgbw

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaletteLookup(t *testing.T) {
	p := DefaultPalette()

	c, ok := p.Lookup("deep-blue")
	require.True(t, ok)
	assert.Equal(t, p.DeepBlue, c)

	c, ok = p.Lookup(" YELLOW ")
	require.True(t, ok)
	assert.Equal(t, p.Yellow, c)

	_, ok = p.Lookup("magenta")
	assert.False(t, ok)

	assert.Equal(t, []string{"DEEP_BLUE", "ORANGE", "PALE_BLUE", "WHITE", "YELLOW"}, p.Names())
}

func TestPaletteResolve(t *testing.T) {
	p := DefaultPalette()

	c, err := p.Resolve("orange")
	require.NoError(t, err)
	assert.Equal(t, p.Orange, c)

	c, err = p.Resolve("0x11223344")
	require.NoError(t, err)
	assert.Equal(t, Color(0x11223344), c)

	_, err = p.Resolve("sky")
	assert.ErrorIs(t, err, ErrInvalidColor)
}

func TestPaletteWithOverrides(t *testing.T) {
	p := DefaultPalette()

	out, err := p.WithOverrides(map[string]string{"PALE_BLUE": "0x0087CEEB", "YELLOW": ""})
	require.NoError(t, err)
	assert.Equal(t, Color(0x0087CEEB), out.PaleBlue)
	assert.Equal(t, p.Yellow, out.Yellow)
	assert.Equal(t, Color(0x87CEEB00), p.PaleBlue, "original palette must not change")

	_, err = p.WithOverrides(map[string]string{"MAUVE": "0x00000000"})
	assert.Error(t, err)

	_, err = p.WithOverrides(map[string]string{"WHITE": "bright"})
	assert.ErrorIs(t, err, ErrInvalidColor)
}
