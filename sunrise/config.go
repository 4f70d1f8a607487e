package sunrise

import (
	"errors"
	"fmt"
	"time"

	"github.com/scheerer/sunrise-leds/internal/frame"
	"github.com/scheerer/sunrise-leds/internal/rgbw"
)

var ErrInvalidConfig = errors.New("invalid animation config")

type Config struct {
	Length int `env:"STRIP_LENGTH" envDefault:"60"`
	// Center below zero means the middle of the strip.
	Center       int           `env:"STRIP_CENTER" envDefault:"-1"`
	NightTicks   int           `env:"NIGHT_TICKS" envDefault:"50"`
	SunriseTicks int           `env:"SUNRISE_TICKS" envDefault:"100"`
	FrameDelay   time.Duration `env:"FRAME_DELAY" envDefault:"100ms"`

	Look       string `env:"LOOK" envDefault:"classic"`
	BandInner  string `env:"BAND_INNER"`
	BandMiddle string `env:"BAND_MIDDLE"`
	BandOuter  string `env:"BAND_OUTER"`
	NightColor string `env:"NIGHT_COLOR" envDefault:"DEEP_BLUE"`

	PaletteDeepBlue string `env:"PALETTE_DEEP_BLUE"`
	PalettePaleBlue string `env:"PALETTE_PALE_BLUE"`
	PaletteOrange   string `env:"PALETTE_ORANGE"`
	PaletteYellow   string `env:"PALETTE_YELLOW"`
	PaletteWhite    string `env:"PALETTE_WHITE"`
}

func (c Config) Geometry() (frame.Geometry, error) {
	center := c.Center
	if center < 0 {
		center = c.Length / 2
	}
	return frame.NewGeometry(c.Length, center)
}

func (c Config) Palette() (rgbw.Palette, error) {
	return rgbw.DefaultPalette().WithOverrides(map[string]string{
		"DEEP_BLUE": c.PaletteDeepBlue,
		"PALE_BLUE": c.PalettePaleBlue,
		"ORANGE":    c.PaletteOrange,
		"YELLOW":    c.PaletteYellow,
		"WHITE":     c.PaletteWhite,
	})
}

// BandTable resolves the named look and applies any per-band overrides. Timed
// looks grow out of the night colour, so every band of a timed look starts at
// night and an override starting anywhere else is rejected.
func (c Config) BandTable(p rgbw.Palette, night rgbw.Color) (frame.Look, error) {
	look, err := frame.NewLook(c.Look, p)
	if err != nil {
		return frame.Look{}, err
	}
	if look.Timed {
		look = look.StartingFrom(night)
	}
	for band, spec := range map[frame.Band]string{
		frame.Inner:  c.BandInner,
		frame.Middle: c.BandMiddle,
		frame.Outer:  c.BandOuter,
	} {
		if spec == "" {
			continue
		}
		bs, err := frame.ParseBandSpec(spec, p)
		if err != nil {
			return frame.Look{}, fmt.Errorf("%s band: %w", band, err)
		}
		if look.Timed && bs.From != night {
			return frame.Look{}, fmt.Errorf("%w: %s band starts at %s but the %s look starts at the night color %s",
				ErrInvalidConfig, band, bs.From, look.Name, night)
		}
		look = look.WithBand(band, bs)
	}
	return look, nil
}

// Duration is the wall time of a full run, ignoring time spent writing frames.
func (c Config) Duration() time.Duration {
	frames := c.NightTicks + c.SunriseTicks
	if frames == 0 {
		return 0
	}
	return time.Duration(frames-1) * c.FrameDelay
}

func (c Config) validateTiming() error {
	switch {
	case c.NightTicks < 0:
		return fmt.Errorf("%w: night ticks %d is negative", ErrInvalidConfig, c.NightTicks)
	case c.SunriseTicks < 0:
		return fmt.Errorf("%w: sunrise ticks %d is negative", ErrInvalidConfig, c.SunriseTicks)
	case c.FrameDelay < 0:
		return fmt.Errorf("%w: frame delay %s is negative", ErrInvalidConfig, c.FrameDelay)
	}
	return nil
}

// Validate checks everything New would, without building an animator.
func (c Config) Validate() error {
	if err := c.validateTiming(); err != nil {
		return err
	}
	_, _, err := c.NewGenerator()
	return err
}

// NewGenerator builds the frame generator and night colour described by c.
func (c Config) NewGenerator() (*frame.Generator, rgbw.Color, error) {
	geometry, err := c.Geometry()
	if err != nil {
		return nil, 0, err
	}
	palette, err := c.Palette()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	night, err := palette.Resolve(c.NightColor)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: night color: %w", ErrInvalidConfig, err)
	}
	look, err := c.BandTable(palette, night)
	if err != nil {
		if errors.Is(err, ErrInvalidConfig) {
			return nil, 0, err
		}
		return nil, 0, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	g, err := frame.NewGenerator(geometry, look, night)
	if err != nil {
		return nil, 0, err
	}
	return g, night, nil
}
