package lifx

import (
	"context"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/pdf/golifx"
	"github.com/pdf/golifx/common"
	"github.com/pdf/golifx/protocol"
	"go.uber.org/zap"

	"github.com/scheerer/sunrise-leds/internal/frame"
	"github.com/scheerer/sunrise-leds/internal/logging"
	"github.com/scheerer/sunrise-leds/internal/rgbw"
	"github.com/scheerer/sunrise-leds/internal/util"
)

var logger = logging.New("lifx")

// Group is the part of a LIFX group the mirror drives.
type Group interface {
	GetLabel() string
	SetColor(color common.Color, duration time.Duration) error
}

type Config struct {
	GroupName     string
	MaxBrightness float64
	MinBrightness float64
	// Mirror selects how a frame is reduced to one colour: CENTER, AVERAGE or
	// SQUARED_AVERAGE.
	Mirror string
	Center int
	// Transition is how long the bulbs fade to each new colour, normally the
	// frame delay.
	Transition time.Duration
}

// Mirror makes a LIFX group follow the strip. Frames rendered before the group
// has been discovered are skipped.
type Mirror struct {
	config Config
	client *golifx.Client
	reduce func(frame.Frame) rgbw.Color

	groupMu sync.RWMutex
	group   Group

	cancel context.CancelFunc
	done   chan struct{}
}

func reducer(config Config) (func(frame.Frame) rgbw.Color, error) {
	switch strings.ToUpper(config.Mirror) {
	case "", "CENTER":
		return func(f frame.Frame) rgbw.Color { return util.CenterColor(f, config.Center) }, nil
	case "AVERAGE":
		return func(f frame.Frame) rgbw.Color { return util.AverageColor(f) }, nil
	case "SQUARED_AVERAGE":
		return func(f frame.Frame) rgbw.Color { return util.SquaredAverageColor(f) }, nil
	default:
		return nil, fmt.Errorf("unknown LIFX mirror mode %q, valid values are [CENTER, AVERAGE, SQUARED_AVERAGE]", config.Mirror)
	}
}

func NewMirror(ctx context.Context, config Config) (*Mirror, error) {
	reduce, err := reducer(config)
	if err != nil {
		return nil, err
	}

	client, err := golifx.NewClient(&protocol.V2{})
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(ctx)
	m := &Mirror{
		config: config,
		client: client,
		reduce: reduce,
		cancel: cancel,
		done:   make(chan struct{}),
	}
	go m.start(ctx)
	return m, nil
}

func (m *Mirror) start(ctx context.Context) {
	defer close(m.done)

	discoveryInterval := 15 * time.Second
	ticker := time.NewTicker(discoveryInterval)
	defer ticker.Stop()

	m.client.SetDiscoveryInterval(discoveryInterval)

	m.discover(ctx)
	for {
		select {
		case <-ticker.C:
			if m.currentGroup() == nil {
				m.discover(ctx)
			}
		case <-ctx.Done():
			return
		}
	}
}

func (m *Mirror) discover(ctx context.Context) {
	logger.With(zap.String("group", m.config.GroupName)).Info("LIFX discovery starting...")

	type result struct {
		group common.Group
		err   error
	}
	completed := make(chan result, 1)
	go func() {
		g, err := m.client.GetGroupByLabel(m.config.GroupName)
		completed <- result{group: g, err: err}
	}()

	ctxWithTimeout, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	select {
	case <-ctxWithTimeout.Done():
		logger.With(zap.Error(ctxWithTimeout.Err())).Warn("LIFX discovery timed out.")
	case res := <-completed:
		if res.err != nil || res.group == nil {
			logger.With(zap.Error(res.err)).Warn("Couldn't discover LIFX group.")
			return
		}
		logger.With(zap.String("group", res.group.GetLabel())).Info("LIFX group found")
		m.setGroup(res.group)
	}
}

func (m *Mirror) setGroup(g Group) {
	m.groupMu.Lock()
	m.group = g
	m.groupMu.Unlock()
}

func (m *Mirror) currentGroup() Group {
	m.groupMu.RLock()
	defer m.groupMu.RUnlock()
	return m.group
}

// Render sends the reduced frame colour to the group. A LIFX failure is logged
// and does not fail the frame; the bulbs are a side show to the strip.
func (m *Mirror) Render(ctx context.Context, f frame.Frame) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	g := m.currentGroup()
	if g == nil {
		return nil
	}

	c := m.reduce(f)
	lifxColor := adjustColor(newLifxColor(c), m.config)

	logger.With(zap.Stringer("color", c), zap.Any("lifxColor", lifxColor)).Debug("Setting LIFX group color")

	if err := g.SetColor(lifxColor, m.config.Transition); err != nil {
		logger.With(zap.String("group", g.GetLabel()), zap.Error(err)).Warn("Failed to set color for LIFX group")
	}
	return nil
}

func (m *Mirror) Close() error {
	m.cancel()
	<-m.done
	return m.client.Close()
}

func newLifxColor(c rgbw.Color) common.Color {
	hue, saturation, brightness := util.RgbToHsb(c.RGB())

	return common.Color{
		Hue:        hue,
		Saturation: saturation,
		Brightness: brightness,
		Kelvin:     3500,
	}
}

func adjustColor(color common.Color, config Config) common.Color {
	blackThreshold := 0.015 * 0xFFFF
	if color.Brightness <= uint16(blackThreshold) && color.Saturation <= uint16(blackThreshold) {
		// blackish color - turn off the light
		return common.Color{
			Hue:        0,
			Saturation: 0,
			Brightness: 0,
			Kelvin:     3500,
		}
	}

	color.Brightness = uint16(math.Min(config.MaxBrightness*0xFFFF, math.Max(config.MinBrightness*0xFFFF, float64(color.Brightness))))

	return color
}
