package rgbw

import (
	"fmt"
	"sort"
	"strings"
)

// Palette is the set of reference colours used as interpolation endpoints.
// It is passed by value and never mutated once loaded.
type Palette struct {
	DeepBlue Color
	PaleBlue Color
	Orange   Color
	Yellow   Color
	White    Color
}

// DefaultPalette returns the stock sunrise colours.
func DefaultPalette() Palette {
	return Palette{
		DeepBlue: 0x00008B00,
		PaleBlue: 0x87CEEB00,
		Orange:   0xFFA50000,
		Yellow:   0xFFFF0000,
		White:    0x00000030,
	}
}

func (p Palette) named() map[string]Color {
	return map[string]Color{
		"DEEP_BLUE": p.DeepBlue,
		"PALE_BLUE": p.PaleBlue,
		"ORANGE":    p.Orange,
		"YELLOW":    p.Yellow,
		"WHITE":     p.White,
	}
}

// Names lists the palette entries in sorted order.
func (p Palette) Names() []string {
	named := p.named()
	names := make([]string, 0, len(named))
	for n := range named {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Lookup resolves a palette name (case insensitive, "-" or "_" separated).
func (p Palette) Lookup(name string) (Color, bool) {
	key := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(name), "-", "_"))
	c, ok := p.named()[key]
	return c, ok
}

// Resolve accepts either a palette name or a literal colour.
func (p Palette) Resolve(s string) (Color, error) {
	if c, ok := p.Lookup(s); ok {
		return c, nil
	}
	c, err := Parse(s)
	if err != nil {
		return 0, fmt.Errorf("%q is neither a palette name %v nor a color: %w", s, p.Names(), err)
	}
	return c, nil
}

// WithOverrides returns a copy of p with every non-empty override parsed in.
// Keys are palette names.
func (p Palette) WithOverrides(overrides map[string]string) (Palette, error) {
	out := p
	targets := map[string]*Color{
		"DEEP_BLUE": &out.DeepBlue,
		"PALE_BLUE": &out.PaleBlue,
		"ORANGE":    &out.Orange,
		"YELLOW":    &out.Yellow,
		"WHITE":     &out.White,
	}
	for name, value := range overrides {
		if value == "" {
			continue
		}
		target, ok := targets[strings.ToUpper(name)]
		if !ok {
			return p, fmt.Errorf("unknown palette entry %q", name)
		}
		c, err := Parse(value)
		if err != nil {
			return p, fmt.Errorf("palette %s: %w", name, err)
		}
		*target = c
	}
	return out, nil
}
