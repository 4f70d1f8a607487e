package lights

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/scheerer/sunrise-leds/internal/frame"
	"github.com/scheerer/sunrise-leds/internal/rgbw"
)

const previewCell = "█"

var white = colorful.Color{R: 1, G: 1, B: 1}

// PreviewStrip draws each frame as a row of coloured blocks on a terminal,
// redrawing the same line every frame.
type PreviewStrip struct {
	w     io.Writer
	frame int
}

func NewPreviewStrip(w io.Writer) *PreviewStrip {
	return &PreviewStrip{w: w}
}

// DisplayColor approximates how an RGBW LED looks on an RGB display: the white
// emitter washes the RGB colour toward white.
func DisplayColor(c rgbw.Color) colorful.Color {
	r, g, b, w := rgbw.Unpack(c)
	base := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	return base.BlendRgb(white, float64(w)/255).Clamped()
}

func (p *PreviewStrip) Line(f frame.Frame) string {
	var sb strings.Builder
	for _, c := range f {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(DisplayColor(c).Hex()))
		sb.WriteString(style.Render(previewCell))
	}
	return sb.String()
}

func (p *PreviewStrip) Render(ctx context.Context, f frame.Frame) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p.frame++
	if _, err := fmt.Fprintf(p.w, "\r%s %4d", p.Line(f), p.frame); err != nil {
		return fmt.Errorf("%w: preview: %w", ErrSinkWrite, err)
	}
	return nil
}

func (p *PreviewStrip) Close() error {
	_, err := fmt.Fprintln(p.w)
	return err
}
