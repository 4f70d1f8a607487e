// Package schedule lines the animation up with the real sunrise.
package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nathan-osman/go-sunrise"
	"go.uber.org/zap"

	"github.com/scheerer/sunrise-leds/internal/logging"
)

var logger = logging.New("schedule")

var ErrNoSunrise = errors.New("no sunrise at this location")

// NextStart returns when an animation lasting lead must start so that it ends
// at the next sunrise after now. Locations without a sunrise in the coming
// days (polar night or midnight sun) return ErrNoSunrise.
func NextStart(now time.Time, lat, lng float64, lead time.Duration) (time.Time, error) {
	day := now.UTC()
	for i := 0; i < 3; i++ {
		rise, _ := sunrise.SunriseSunset(lat, lng, day.Year(), day.Month(), day.Day())
		if !rise.IsZero() {
			start := rise.Add(-lead)
			if !start.Before(now) {
				return start.In(now.Location()), nil
			}
		}
		day = day.AddDate(0, 0, 1)
	}
	return time.Time{}, fmt.Errorf("%w: lat %.4f lng %.4f", ErrNoSunrise, lat, lng)
}

// Wait blocks until the given time or until ctx is done.
func Wait(ctx context.Context, until time.Time) error {
	d := time.Until(until)
	if d <= 0 {
		return nil
	}
	logger.With(zap.Time("until", until), zap.Stringer("in", d)).Info("Waiting for scheduled start")

	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
