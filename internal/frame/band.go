package frame

import (
	"errors"
	"fmt"
	"strings"

	"github.com/scheerer/sunrise-leds/internal/rgbw"
)

var (
	ErrUnknownLook = errors.New("unknown look")
	ErrInvalidBand = errors.New("invalid band spec")
)

type Band int

const (
	Inner Band = iota
	Middle
	Outer
)

func (b Band) String() string {
	switch b {
	case Inner:
		return "inner"
	case Middle:
		return "middle"
	case Outer:
		return "outer"
	default:
		return fmt.Sprintf("band(%d)", int(b))
	}
}

// Band breakpoints. The outer band is 0.34 wide so that it ends exactly at 1.
const (
	innerEdge  = 0.33
	middleEdge = 0.66

	bandWidth  = 0.33
	outerWidth = 0.34
)

// Classify places a normalized radial factor in its band and returns the
// position within that band, 0 at the band's inner edge and 1 at its outer edge.
func Classify(factor float64) (Band, float64) {
	switch {
	case factor < innerEdge:
		return Inner, factor / bandWidth
	case factor < middleEdge:
		return Middle, (factor - innerEdge) / bandWidth
	case factor >= 1:
		return Outer, 1
	default:
		return Outer, (factor - middleEdge) / outerWidth
	}
}

// Driver turns a position within a band into an interpolation factor.
type Driver int

const (
	// Falloff is strongest at the band's inner edge: 1 - local.
	Falloff Driver = iota
	// Ramp grows toward the band's outer edge: local.
	Ramp
)

func (d Driver) String() string {
	switch d {
	case Falloff:
		return "falloff"
	case Ramp:
		return "ramp"
	default:
		return fmt.Sprintf("driver(%d)", int(d))
	}
}

func ParseDriver(s string) (Driver, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "falloff", "":
		return Falloff, nil
	case "ramp":
		return Ramp, nil
	default:
		return 0, fmt.Errorf("%w: unknown driver %q", ErrInvalidBand, s)
	}
}

func (d Driver) apply(local float64) float64 {
	if d == Ramp {
		return local
	}
	return 1 - local
}

// BandSpec is one row of the band table.
type BandSpec struct {
	From   rgbw.Color
	To     rgbw.Color
	Driver Driver
}

// ParseBandSpec reads FROM:TO[:DRIVER] where FROM and TO are palette names or
// literal colours, e.g. "DEEP_BLUE:YELLOW:falloff".
func ParseBandSpec(s string, palette rgbw.Palette) (BandSpec, error) {
	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return BandSpec{}, fmt.Errorf("%w: %q, want FROM:TO[:DRIVER]", ErrInvalidBand, s)
	}
	from, err := palette.Resolve(parts[0])
	if err != nil {
		return BandSpec{}, fmt.Errorf("%w: %v", ErrInvalidBand, err)
	}
	to, err := palette.Resolve(parts[1])
	if err != nil {
		return BandSpec{}, fmt.Errorf("%w: %v", ErrInvalidBand, err)
	}
	spec := BandSpec{From: from, To: to}
	if len(parts) == 3 {
		if spec.Driver, err = ParseDriver(parts[2]); err != nil {
			return BandSpec{}, err
		}
	}
	return spec, nil
}

// Look is the palette-to-band table. Timed looks scale every band's driver by
// the sunrise progress so the strip grows out of the From colours; untimed
// looks show the spatial gradient alone.
type Look struct {
	Name  string
	Bands [3]BandSpec
	Timed bool
}

// LookNames lists the looks understood by NewLook.
var LookNames = []string{"classic", "warm", "horizon"}

// NewLook builds a named look from the palette.
func NewLook(name string, p rgbw.Palette) (Look, error) {
	switch strings.ToLower(name) {
	case "classic":
		return Look{
			Name: "classic",
			Bands: [3]BandSpec{
				{From: p.DeepBlue, To: p.Yellow, Driver: Falloff},
				{From: p.DeepBlue, To: p.PaleBlue, Driver: Falloff},
				{From: p.DeepBlue, To: p.DeepBlue, Driver: Falloff},
			},
			Timed: true,
		}, nil
	case "warm":
		return Look{
			Name: "warm",
			Bands: [3]BandSpec{
				{From: p.DeepBlue, To: p.Orange, Driver: Falloff},
				{From: p.DeepBlue, To: p.Yellow, Driver: Falloff},
				{From: p.DeepBlue, To: p.White, Driver: Falloff},
			},
			Timed: true,
		}, nil
	case "horizon":
		return Look{
			Name: "horizon",
			Bands: [3]BandSpec{
				{From: p.Yellow, To: p.Orange, Driver: Ramp},
				{From: p.Orange, To: p.PaleBlue, Driver: Ramp},
				{From: p.PaleBlue, To: p.DeepBlue, Driver: Ramp},
			},
		}, nil
	default:
		return Look{}, fmt.Errorf("%w: %q, valid looks are %v", ErrUnknownLook, name, LookNames)
	}
}

// StartingFrom returns a copy of the look with every band starting at c.
func (l Look) StartingFrom(c rgbw.Color) Look {
	for i := range l.Bands {
		l.Bands[i].From = c
	}
	return l
}

// WithBand returns a copy of the look with one band replaced.
func (l Look) WithBand(b Band, spec BandSpec) Look {
	l.Bands[b] = spec
	return l
}
