package main

import (
	"context"
	"os"

	"go.uber.org/zap"

	"github.com/scheerer/sunrise-leds/internal/frame"
	"github.com/scheerer/sunrise-leds/internal/lights"
	"github.com/scheerer/sunrise-leds/internal/logging"
	"github.com/scheerer/sunrise-leds/internal/util"
	"github.com/scheerer/sunrise-leds/sunrise"
)

var logger = logging.New("framedump")

// Prints a single frame without touching the strip, for checking looks and
// geometry by eye.
func main() {
	defer logger.Sync()

	config := sunrise.Config{
		Length:     util.Getenv("STRIP_LENGTH", 60),
		Center:     util.Getenv("STRIP_CENTER", -1),
		Look:       util.Getenv("LOOK", "classic"),
		BandInner:  util.Getenv("BAND_INNER", ""),
		BandMiddle: util.Getenv("BAND_MIDDLE", ""),
		BandOuter:  util.Getenv("BAND_OUTER", ""),
		NightColor: util.Getenv("NIGHT_COLOR", "DEEP_BLUE"),
	}
	// PROGRESS below 0 dumps the night frame
	progress := util.Getenv("PROGRESS", 1.0)
	format := util.Getenv("FORMAT", "PREVIEW")

	logger.With(
		zap.Int("STRIP_LENGTH", config.Length),
		zap.Int("STRIP_CENTER", config.Center),
		zap.String("LOOK", config.Look),
		zap.Float64("PROGRESS", progress),
		zap.String("FORMAT", format)).
		Info("Dumping frame")

	generator, _, err := config.NewGenerator()
	if err != nil {
		logger.With(zap.Error(err)).Fatal("Invalid configuration")
	}

	phase := frame.Sunrise(progress)
	if progress < 0 {
		phase = frame.Night()
	}
	f := generator.Generate(phase)

	var strip lights.Strip
	switch format {
	case "WIRE":
		strip = lights.NewWireStrip(os.Stdout, true)
	case "PREVIEW":
		strip = lights.NewPreviewStrip(os.Stdout)
	default:
		logger.Fatalf("unknown format: %v", format)
	}

	if err := strip.Render(context.Background(), f); err != nil {
		logger.With(zap.Error(err)).Fatal("Failed to write frame")
	}
	if format == "PREVIEW" {
		_ = strip.Close()
	}
}
