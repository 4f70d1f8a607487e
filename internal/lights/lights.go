package lights

import (
	"context"
	"errors"

	"github.com/scheerer/sunrise-leds/internal/frame"
	"github.com/scheerer/sunrise-leds/internal/logging"
)

var logger = logging.New("lights")

// ErrSinkWrite marks a frame that could not be delivered to the controller.
var ErrSinkWrite = errors.New("strip write failed")

// Strip accepts whole frames, one at a time. Implementations own their
// connection and either deliver a frame completely or return an error.
type Strip interface {
	Render(ctx context.Context, f frame.Frame) error
	Close() error
}
