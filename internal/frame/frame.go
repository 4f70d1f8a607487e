// Package frame computes the colour of every LED on the strip for one step of
// the sunrise.
package frame

import (
	"github.com/scheerer/sunrise-leds/internal/rgbw"
)

// Frame holds one colour per LED, index aligned with the strip.
type Frame []rgbw.Color

// Constant builds a frame with every LED set to c.
func Constant(length int, c rgbw.Color) Frame {
	f := make(Frame, length)
	for i := range f {
		f[i] = c
	}
	return f
}

// Phase is either the static night or a point in the sunrise.
type Phase struct {
	Sunrise  bool
	Progress float64
}

func Night() Phase {
	return Phase{}
}

// Sunrise is the phase at progress p, normally step/totalSteps.
func Sunrise(p float64) Phase {
	return Phase{Sunrise: true, Progress: p}
}

type Generator struct {
	geometry Geometry
	look     Look
	night    rgbw.Color
}

// NewGenerator validates the geometry once; frames generated afterwards cannot
// fail.
func NewGenerator(geometry Geometry, look Look, night rgbw.Color) (*Generator, error) {
	if err := geometry.Validate(); err != nil {
		return nil, err
	}
	return &Generator{geometry: geometry, look: look, night: night}, nil
}

func (g *Generator) Geometry() Geometry {
	return g.geometry
}

func (g *Generator) Look() Look {
	return g.look
}

// Generate returns a fresh frame for the phase.
func (g *Generator) Generate(phase Phase) Frame {
	if !phase.Sunrise {
		return Constant(g.geometry.Length, g.night)
	}

	f := make(Frame, g.geometry.Length)
	for i := range f {
		f[i] = g.color(g.geometry.Factor(i), phase.Progress)
	}
	return f
}

func (g *Generator) color(factor, progress float64) rgbw.Color {
	band, local := Classify(factor)
	spec := g.look.Bands[band]
	t := spec.Driver.apply(local)
	if g.look.Timed {
		t *= progress
	}
	return rgbw.Lerp(spec.From, spec.To, t)
}
