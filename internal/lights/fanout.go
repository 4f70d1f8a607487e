package lights

import (
	"context"

	"go.uber.org/multierr"

	"github.com/scheerer/sunrise-leds/internal/frame"
)

// Fanout renders every frame to several strips in order. A failing strip does
// not stop the others from receiving the frame; all failures are returned
// together.
type Fanout []Strip

func (fo Fanout) Render(ctx context.Context, f frame.Frame) error {
	var err error
	for _, s := range fo {
		err = multierr.Append(err, s.Render(ctx, f))
	}
	return err
}

func (fo Fanout) Close() error {
	var err error
	for _, s := range fo {
		err = multierr.Append(err, s.Close())
	}
	return err
}
