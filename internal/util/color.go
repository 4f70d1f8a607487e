package util

import (
	"math"

	"github.com/scheerer/sunrise-leds/internal/rgbw"
)

func RgbToHsb(r, g, b uint8) (uint16, uint16, uint16) {
	red := float64(r) / 255.0
	green := float64(g) / 255.0
	blue := float64(b) / 255.0

	max := math.Max(red, math.Max(green, blue))
	min := math.Min(red, math.Min(green, blue))
	delta := max - min

	var h, s, v float64
	v = max // Brightness is the max of RGB

	if delta == 0 {
		h = 0
		s = 0
	} else {
		s = delta / max

		deltaR := (((max - red) / 6) + (delta / 2)) / delta
		deltaG := (((max - green) / 6) + (delta / 2)) / delta
		deltaB := (((max - blue) / 6) + (delta / 2)) / delta

		if red == max {
			h = deltaB - deltaG
		} else if green == max {
			h = (1.0 / 3.0) + deltaR - deltaB
		} else if blue == max {
			h = (2.0 / 3.0) + deltaG - deltaR
		}

		if h < 0 {
			h += 1
		}
		if h > 1 {
			h -= 1
		}
	}

	hue := uint16(math.Round(h * 0xFFFF))
	saturation := uint16(math.Round(s * 0xFFFF))
	brightness := uint16(math.Round(v * 0xFFFF))

	return hue, saturation, brightness
}

// CenterColor picks the colour of one LED, clamped into the frame.
func CenterColor(colors []rgbw.Color, center int) rgbw.Color {
	if len(colors) == 0 {
		return 0
	}
	center = max(0, min(center, len(colors)-1))
	return colors[center]
}

// AverageColor averages every channel across the frame.
func AverageColor(colors []rgbw.Color) rgbw.Color {
	if len(colors) == 0 {
		return 0
	}
	var sumR, sumG, sumB, sumW uint64
	for _, c := range colors {
		r, g, b, w := rgbw.Unpack(c)
		sumR += uint64(r)
		sumG += uint64(g)
		sumB += uint64(b)
		sumW += uint64(w)
	}
	n := uint64(len(colors))
	return rgbw.Pack(uint8(sumR/n), uint8(sumG/n), uint8(sumB/n), uint8(sumW/n))
}

// SquaredAverageColor is the root mean square of every channel, which favours
// the bright part of the strip.
func SquaredAverageColor(colors []rgbw.Color) rgbw.Color {
	if len(colors) == 0 {
		return 0
	}
	var sumR, sumG, sumB, sumW uint64
	for _, c := range colors {
		r, g, b, w := rgbw.Unpack(c)
		sumR += uint64(r) * uint64(r)
		sumG += uint64(g) * uint64(g)
		sumB += uint64(b) * uint64(b)
		sumW += uint64(w) * uint64(w)
	}
	n := uint64(len(colors))
	return rgbw.Pack(
		uint8(math.Sqrt(float64(sumR/n))),
		uint8(math.Sqrt(float64(sumG/n))),
		uint8(math.Sqrt(float64(sumB/n))),
		uint8(math.Sqrt(float64(sumW/n))),
	)
}
