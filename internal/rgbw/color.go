// Package rgbw holds the packed 32-bit RGBW colour used by the LED strip
// controller and the arithmetic done on it.
package rgbw

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/scheerer/sunrise-leds/internal/logging"
)

var logger = logging.New("rgbw")

var ErrInvalidColor = errors.New("invalid rgbw color")

// Color is packed as 0xRRGGBBWW.
type Color uint32

func Pack(r, g, b, w uint8) Color {
	return Color(uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | uint32(w))
}

func Unpack(c Color) (r, g, b, w uint8) {
	return uint8(c >> 24), uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// PackClamped packs channels computed in int arithmetic. Channels outside
// [0,255] are clamped and reported through overflow.
func PackClamped(r, g, b, w int) (c Color, overflow bool) {
	cr, o1 := clampChannel(r)
	cg, o2 := clampChannel(g)
	cb, o3 := clampChannel(b)
	cw, o4 := clampChannel(w)
	return Pack(cr, cg, cb, cw), o1 || o2 || o3 || o4
}

func clampChannel(v int) (uint8, bool) {
	switch {
	case v < 0:
		return 0, true
	case v > 255:
		return 255, true
	default:
		return uint8(v), false
	}
}

// LerpChecked interpolates each channel as a + (b-a)*factor, truncated toward
// zero. factor is not limited to [0,1]; channels pushed out of range are
// clamped and overflow is set.
func LerpChecked(a, b Color, factor float64) (Color, bool) {
	r1, g1, b1, w1 := Unpack(a)
	r2, g2, b2, w2 := Unpack(b)
	return PackClamped(
		lerpChannel(r1, r2, factor),
		lerpChannel(g1, g2, factor),
		lerpChannel(b1, b2, factor),
		lerpChannel(w1, w2, factor),
	)
}

func lerpChannel(from, to uint8, factor float64) int {
	return int(float64(from) + (float64(to)-float64(from))*factor)
}

// Lerp is LerpChecked with a rate limited warning on channel overflow.
func Lerp(a, b Color, factor float64) Color {
	c, overflow := LerpChecked(a, b, factor)
	if overflow {
		warnOverflow(a, b, factor)
	}
	return c
}

var (
	overflowMu   sync.Mutex
	lastOverflow time.Time
)

func warnOverflow(a, b Color, factor float64) {
	overflowMu.Lock()
	defer overflowMu.Unlock()

	if time.Since(lastOverflow) < 10*time.Second {
		return
	}
	lastOverflow = time.Now()
	logger.With(
		zap.Stringer("from", a),
		zap.Stringer("to", b),
		zap.Float64("factor", factor)).
		Warn("Color channel overflow during interpolation, clamping to [0,255]")
}

// String renders the wire form, e.g. 0xFFA50000.
func (c Color) String() string {
	r, g, b, w := Unpack(c)
	return fmt.Sprintf("0x%02X%02X%02X%02X", r, g, b, w)
}

// RGB folds the white channel into red, green and blue for devices without a
// dedicated white emitter.
func (c Color) RGB() (r, g, b uint8) {
	cr, cg, cb, cw := Unpack(c)
	add := func(v uint8) uint8 {
		out, _ := clampChannel(int(v) + int(cw))
		return out
	}
	return add(cr), add(cg), add(cb)
}

// Parse accepts 0xRRGGBBWW, #RRGGBBWW or RRGGBBWW. Six digit RGB values get a
// zero white channel.
func Parse(s string) (Color, error) {
	h := strings.TrimSpace(s)
	h = strings.TrimPrefix(h, "#")
	if len(h) > 2 && (h[:2] == "0x" || h[:2] == "0X") {
		h = h[2:]
	}
	switch len(h) {
	case 8:
	case 6:
		h += "00"
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrInvalidColor, s, err)
	}
	return Color(v), nil
}
