package lifx

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pdf/golifx/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scheerer/sunrise-leds/internal/frame"
	"github.com/scheerer/sunrise-leds/internal/rgbw"
)

type fakeGroup struct {
	colors    []common.Color
	durations []time.Duration
	err       error
}

func (g *fakeGroup) GetLabel() string { return "SUNRISE" }

func (g *fakeGroup) SetColor(color common.Color, duration time.Duration) error {
	g.colors = append(g.colors, color)
	g.durations = append(g.durations, duration)
	return g.err
}

func newTestMirror(t *testing.T, config Config) *Mirror {
	t.Helper()
	reduce, err := reducer(config)
	require.NoError(t, err)
	return &Mirror{config: config, reduce: reduce}
}

func TestRenderSkipsUntilGroupFound(t *testing.T) {
	m := newTestMirror(t, Config{MaxBrightness: 1})
	assert.NoError(t, m.Render(context.Background(), frame.Constant(3, 0xFFA50000)))
}

func TestRenderMirrorsCenter(t *testing.T) {
	g := &fakeGroup{}
	m := newTestMirror(t, Config{Mirror: "CENTER", Center: 1, MaxBrightness: 1, Transition: 100 * time.Millisecond})
	m.setGroup(g)

	require.NoError(t, m.Render(context.Background(), frame.Frame{0, 0xFF000000, 0}))
	require.Len(t, g.colors, 1)
	assert.Equal(t, common.Color{Hue: 0, Saturation: 0xFFFF, Brightness: 0xFFFF, Kelvin: 3500}, g.colors[0])
	assert.Equal(t, 100*time.Millisecond, g.durations[0])
}

func TestRenderIgnoresBulbFailures(t *testing.T) {
	g := &fakeGroup{err: errors.New("bulb offline")}
	m := newTestMirror(t, Config{Mirror: "AVERAGE", MaxBrightness: 1})
	m.setGroup(g)

	assert.NoError(t, m.Render(context.Background(), frame.Constant(4, 0x00008B00)))
	assert.Len(t, g.colors, 1)
}

func TestReducer(t *testing.T) {
	_, err := reducer(Config{Mirror: "MODE"})
	assert.Error(t, err)

	reduce, err := reducer(Config{Mirror: "squared_average"})
	require.NoError(t, err)
	assert.Equal(t, rgbw.Pack(10, 0, 0, 0), reduce(frame.Frame{rgbw.Pack(10, 0, 0, 0), rgbw.Pack(10, 0, 0, 0)}))
}

func TestAdjustColor(t *testing.T) {
	config := Config{MinBrightness: 0.2, MaxBrightness: 0.5}

	off := adjustColor(newLifxColor(0), config)
	assert.Equal(t, uint16(0), off.Brightness)

	bright := adjustColor(newLifxColor(0xFFFF0000), config)
	assert.Equal(t, uint16(32767), bright.Brightness)

	dim := adjustColor(common.Color{Saturation: 0xFFFF, Brightness: 100, Kelvin: 3500}, config)
	assert.Equal(t, uint16(13107), dim.Brightness)
}
