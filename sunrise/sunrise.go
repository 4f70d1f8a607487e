package sunrise

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/scheerer/sunrise-leds/internal/frame"
	"github.com/scheerer/sunrise-leds/internal/lights"
	"github.com/scheerer/sunrise-leds/internal/logging"
	"github.com/scheerer/sunrise-leds/internal/rgbw"
)

var logger = logging.New("sunrise")

type State int

const (
	NightPhase State = iota
	SunrisePhase
	Done
)

func (s State) String() string {
	switch s {
	case NightPhase:
		return "night"
	case SunrisePhase:
		return "sunrise"
	case Done:
		return "done"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Animator plays the night phase followed by one sunrise on a strip. It runs
// once; there is no way back from Done.
type Animator struct {
	config    Config
	generator *frame.Generator
	night     rgbw.Color
	strip     lights.Strip

	state       State
	sent        int
	lastWarning time.Time
	wait        func(ctx context.Context, d time.Duration) error
}

// New validates the whole configuration so that a bad geometry is rejected
// before anything reaches the strip.
func New(config Config, strip lights.Strip) (*Animator, error) {
	if err := config.validateTiming(); err != nil {
		return nil, err
	}
	generator, night, err := config.NewGenerator()
	if err != nil {
		return nil, err
	}
	return &Animator{
		config:    config,
		generator: generator,
		night:     night,
		strip:     strip,
		wait:      sleep,
	}, nil
}

func (a *Animator) State() State {
	return a.state
}

func (a *Animator) Generator() *frame.Generator {
	return a.generator
}

// Run sends every frame of the animation in order. Cancelling ctx stops the
// animation between frames and Run returns ctx.Err(). A strip failure ends the
// run; frames are never retried.
func (a *Animator) Run(ctx context.Context) error {
	if a.state == Done {
		return nil
	}

	geometry := a.generator.Geometry()
	logger.With(
		zap.Int("length", geometry.Length),
		zap.Int("center", geometry.Center),
		zap.String("look", a.generator.Look().Name),
		zap.Int("nightTicks", a.config.NightTicks),
		zap.Int("sunriseTicks", a.config.SunriseTicks),
		zap.Stringer("frameDelay", a.config.FrameDelay)).
		Info("Starting sunrise animation")

	a.enter(NightPhase)
	for step := 0; step < a.config.NightTicks; step++ {
		if err := a.tick(ctx, frame.Constant(geometry.Length, a.night)); err != nil {
			return err
		}
	}

	a.enter(SunrisePhase)
	for step := 0; step < a.config.SunriseTicks; step++ {
		progress := float64(step) / float64(a.config.SunriseTicks)
		if err := a.tick(ctx, a.generator.Generate(frame.Sunrise(progress))); err != nil {
			return err
		}
	}

	a.enter(Done)
	return nil
}

func (a *Animator) enter(s State) {
	a.state = s
	logger.With(zap.Stringer("phase", s), zap.Int("framesSent", a.sent)).Info("Entering phase")
}

func (a *Animator) tick(ctx context.Context, f frame.Frame) error {
	if a.sent > 0 {
		if err := a.wait(ctx, a.config.FrameDelay); err != nil {
			return err
		}
	}
	if err := ctx.Err(); err != nil {
		logger.With(zap.Stringer("phase", a.state), zap.Int("framesSent", a.sent)).Info("Animation cancelled")
		return err
	}

	start := time.Now()
	if err := a.strip.Render(ctx, f); err != nil {
		return fmt.Errorf("%s frame %d: %w", a.state, a.sent, err)
	}
	a.sent++

	renderDuration := time.Since(start)
	if a.config.FrameDelay > 0 && renderDuration > a.config.FrameDelay && time.Since(a.lastWarning) > 10*time.Second {
		logger.With(
			zap.Stringer("renderDuration", renderDuration),
			zap.Stringer("frameDelay", a.config.FrameDelay)).
			Warn("Strip is slower than FRAME_DELAY. Consider increasing FRAME_DELAY or the serial baud rate.")
		a.lastWarning = time.Now()
	}
	return nil
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
