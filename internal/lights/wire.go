package lights

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/scheerer/sunrise-leds/internal/frame"
)

// WireStrip writes each LED as an ASCII 0xRRGGBBWW command to w.
type WireStrip struct {
	w         io.Writer
	delimiter []byte
	buf       bytes.Buffer
}

// NewWireStrip writes commands back to back, or separated by a newline when
// newline is set.
func NewWireStrip(w io.Writer, newline bool) *WireStrip {
	s := &WireStrip{w: w}
	if newline {
		s.delimiter = []byte{'\n'}
	}
	return s
}

// Encode appends the wire form of f to dst.
func (s *WireStrip) Encode(dst *bytes.Buffer, f frame.Frame) {
	for _, c := range f {
		dst.WriteString(c.String())
		dst.Write(s.delimiter)
	}
}

// Render encodes the whole frame before issuing a single write.
func (s *WireStrip) Render(ctx context.Context, f frame.Frame) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.buf.Reset()
	s.Encode(&s.buf, f)

	n, err := s.w.Write(s.buf.Bytes())
	if err == nil && n < s.buf.Len() {
		err = io.ErrShortWrite
	}
	if err != nil {
		return fmt.Errorf("%w: wrote %d of %d bytes: %w", ErrSinkWrite, n, s.buf.Len(), err)
	}

	logger.With(zap.Int("leds", len(f)), zap.Int("bytes", n)).Debug("Frame written")
	return nil
}

// Close closes the underlying writer when it is an io.Closer.
func (s *WireStrip) Close() error {
	if c, ok := s.w.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
