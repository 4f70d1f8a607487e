package frame

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scheerer/sunrise-leds/internal/rgbw"
)

func classic(t *testing.T) Look {
	t.Helper()
	look, err := NewLook("classic", rgbw.DefaultPalette())
	require.NoError(t, err)
	return look
}

func newGenerator(t *testing.T, length, center int, look Look) *Generator {
	t.Helper()
	g, err := NewGenerator(Geometry{Length: length, Center: center}, look, rgbw.DefaultPalette().DeepBlue)
	require.NoError(t, err)
	return g
}

func distance(a, b rgbw.Color) float64 {
	r1, g1, b1, w1 := rgbw.Unpack(a)
	r2, g2, b2, w2 := rgbw.Unpack(b)
	sq := func(x, y uint8) float64 {
		d := float64(x) - float64(y)
		return d * d
	}
	return math.Sqrt(sq(r1, r2) + sq(g1, g2) + sq(b1, b2) + sq(w1, w2))
}

func TestNightFrameIsConstant(t *testing.T) {
	g := newGenerator(t, 60, 30, classic(t))
	f := g.Generate(Night())
	require.Len(t, f, 60)
	for i, c := range f {
		assert.Equal(t, rgbw.DefaultPalette().DeepBlue, c, "led %d", i)
	}
}

func TestRadialSymmetry(t *testing.T) {
	for _, name := range LookNames {
		look, err := NewLook(name, rgbw.DefaultPalette())
		require.NoError(t, err)
		g := newGenerator(t, 60, 30, look)

		for _, p := range []float64{0, 0.25, 0.5, 0.99, 1} {
			f := g.Generate(Sunrise(p))
			require.Len(t, f, 60)
			for k := 1; k <= 29; k++ {
				assert.Equal(t, f[30-k], f[30+k], "%s progress %v k %d", name, p, k)
			}
		}
	}
}

func TestSingleLED(t *testing.T) {
	p := rgbw.DefaultPalette()
	g := newGenerator(t, 1, 0, classic(t))

	for _, progress := range []float64{0, 0.5, 1} {
		f := g.Generate(Sunrise(progress))
		require.Len(t, f, 1)
		assert.Equal(t, rgbw.Lerp(p.DeepBlue, p.Yellow, progress), f[0])
	}
}

func TestCenterFollowsProgress(t *testing.T) {
	p := rgbw.DefaultPalette()
	g := newGenerator(t, 60, 30, classic(t))

	for _, progress := range []float64{0, 0.25, 0.5, 0.75, 1} {
		f := g.Generate(Sunrise(progress))
		assert.Equal(t, rgbw.Lerp(p.DeepBlue, p.Yellow, progress), f[30])
	}
	assert.Equal(t, p.Yellow, g.Generate(Sunrise(1))[30])
}

func TestMonotonicTransition(t *testing.T) {
	night := rgbw.DefaultPalette().DeepBlue
	for _, name := range []string{"classic", "warm"} {
		look, err := NewLook(name, rgbw.DefaultPalette())
		require.NoError(t, err)
		g := newGenerator(t, 60, 30, look)

		const steps = 100
		prev := make([]float64, 60)
		for step := 0; step < steps; step++ {
			f := g.Generate(Sunrise(float64(step) / steps))
			for i, c := range f {
				d := distance(night, c)
				assert.GreaterOrEqual(t, d, prev[i], "%s step %d led %d", name, step, i)
				prev[i] = d
			}
		}
	}
}

func TestOffCenterGeometryStaysInRange(t *testing.T) {
	p := rgbw.DefaultPalette()
	g := newGenerator(t, 60, 10, classic(t))

	assert.Equal(t, 49, g.Geometry().MaxDistance())
	for i := 0; i < 60; i++ {
		factor := g.Geometry().Factor(i)
		assert.GreaterOrEqual(t, factor, 0.0)
		assert.LessOrEqual(t, factor, 1.0)
	}

	// farthest LED sits at the outer edge of the outer band
	f := g.Generate(Sunrise(1))
	assert.Equal(t, p.DeepBlue, f[59])
	assert.Equal(t, p.Yellow, f[10])
}

func TestFreshFramePerCall(t *testing.T) {
	g := newGenerator(t, 10, 5, classic(t))
	a := g.Generate(Sunrise(0.5))
	b := g.Generate(Sunrise(0.5))
	a[0] = 0
	assert.NotEqual(t, a[0], b[0])
}

func TestUntimedLookIgnoresProgress(t *testing.T) {
	look, err := NewLook("horizon", rgbw.DefaultPalette())
	require.NoError(t, err)
	g := newGenerator(t, 31, 15, look)

	assert.Equal(t, g.Generate(Sunrise(0)), g.Generate(Sunrise(1)))
	f := g.Generate(Sunrise(0.3))
	assert.Equal(t, rgbw.DefaultPalette().Yellow, f[15])
	assert.Equal(t, rgbw.DefaultPalette().DeepBlue, f[0])
}

func TestCustomBandTable(t *testing.T) {
	p := rgbw.DefaultPalette()
	spec, err := ParseBandSpec("WHITE:ORANGE:ramp", p)
	require.NoError(t, err)

	look := classic(t).WithBand(Outer, spec)
	assert.Equal(t, BandSpec{From: p.DeepBlue, To: p.DeepBlue}, classic(t).Bands[Outer])

	g := newGenerator(t, 61, 30, look)
	f := g.Generate(Sunrise(1))
	assert.Equal(t, p.Orange, f[0])
	assert.Equal(t, p.Orange, f[60])
}
