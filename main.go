package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/caarlos0/env"
	"github.com/scheerer/sunrise-leds/internal/lights"
	"github.com/scheerer/sunrise-leds/internal/lights/lifx"
	"github.com/scheerer/sunrise-leds/internal/logging"
	"github.com/scheerer/sunrise-leds/internal/schedule"
	"github.com/scheerer/sunrise-leds/internal/util"
	"github.com/scheerer/sunrise-leds/sunrise"
)

var (
	logger     = logging.New("main")
	config     = AppConfig{}
	animConfig = sunrise.Config{}
)

type AppConfig struct {
	Outputs       string        `env:"OUTPUTS" envDefault:"SERIAL"`
	SerialPort    string        `env:"SERIAL_PORT" envDefault:"/dev/ttyUSB0"`
	SerialBaud    int           `env:"SERIAL_BAUD" envDefault:"115200"`
	SerialTimeout time.Duration `env:"SERIAL_TIMEOUT" envDefault:"1s"`
	LineDelimiter bool          `env:"LINE_DELIMITER" envDefault:"false"`
	LightGroup    string        `env:"LIFX_GROUP_NAME" envDefault:"SUNRISE"`
	LightMirror   string        `env:"LIFX_MIRROR" envDefault:"CENTER"`
	MaxBrightness float64       `env:"MAX_BRIGHTNESS" envDefault:"0.65"`
	MinBrightness float64       `env:"MIN_BRIGHTNESS" envDefault:"0"`
	StartAt       string        `env:"START_AT" envDefault:"NOW"`
	Latitude      float64       `env:"LATITUDE" envDefault:"0"`
	Longitude     float64       `env:"LONGITUDE" envDefault:"0"`
	LogLevel      string        `env:"LOG_LEVEL" envDefault:"info"`
}

func main() {
	defer logger.Sync()

	if err := env.Parse(&config); err != nil {
		logger.With(zap.Error(err)).Fatal("Failed to parse environment variables")
	}
	if err := env.Parse(&animConfig); err != nil {
		logger.With(zap.Error(err)).Fatal("Failed to parse environment variables")
	}
	if err := logging.SetAllLevels(config.LogLevel); err != nil {
		logger.With(zap.Error(err)).Fatal("Invalid LOG_LEVEL")
	}

	logger.With(zap.Any("config", config), zap.Any("animation", animConfig)).Info("Starting sunrise")

	logger.Info("Adjust STRIP_LENGTH and STRIP_CENTER to match the strip. STRIP_CENTER below 0 uses the middle LED.")
	logger.Info("Adjust NIGHT_TICKS, SUNRISE_TICKS and FRAME_DELAY to change how long each phase lasts.")
	logger.Info("Adjust LOOK to change the colours. Valid values are: [classic, warm, horizon]. BAND_INNER, BAND_MIDDLE and BAND_OUTER override single bands as FROM:TO[:falloff|ramp].")
	logger.Info("Adjust OUTPUTS to choose where frames go. Comma separated list of: [SERIAL, STDOUT, PREVIEW, LIFX]")
	logger.Info("Set START_AT=SUNRISE with LATITUDE and LONGITUDE to finish the animation at the local sunrise.")
	logger.Info("Press Ctrl+C to stop")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, config, animConfig)
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	var err error
	select {
	case <-shutdown:
		logger.Info("Shutting down")
		cancel()
		err = <-done
	case err = <-done:
	}

	if err != nil && !errors.Is(err, context.Canceled) {
		logger.With(zap.Error(err)).Fatal("Sunrise failed")
	}
	logger.Info("Sunrise finished")
}

// Run validates the animation, waits for the scheduled start, opens the
// outputs and plays the animation once.
func Run(ctx context.Context, config AppConfig, animConfig sunrise.Config) error {
	if err := animConfig.Validate(); err != nil {
		return err
	}
	geometry, err := animConfig.Geometry()
	if err != nil {
		return err
	}

	switch strings.ToUpper(config.StartAt) {
	case "NOW":
	case "SUNRISE":
		start, err := schedule.NextStart(time.Now(), config.Latitude, config.Longitude, animConfig.Duration())
		if err != nil {
			return err
		}
		if err := schedule.Wait(ctx, start); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown START_AT %q, valid values are [NOW, SUNRISE]", config.StartAt)
	}

	strip, err := openStrips(ctx, config, geometry.Center, animConfig.FrameDelay)
	if err != nil {
		return err
	}
	defer func() {
		if err := strip.Close(); err != nil {
			logger.With(zap.Error(err)).Warn("Failed to close outputs")
		}
	}()

	animator, err := sunrise.New(animConfig, strip)
	if err != nil {
		return err
	}
	return animator.Run(ctx)
}

// stdout must survive the strip being closed.
type nopCloser struct {
	io.Writer
}

func openStrips(ctx context.Context, config AppConfig, center int, frameDelay time.Duration) (lights.Strip, error) {
	outputs := util.SplitList(config.Outputs)
	if len(outputs) == 0 {
		return nil, errors.New("OUTPUTS is empty")
	}

	var strips lights.Fanout
	for _, output := range outputs {
		var strip lights.Strip
		var err error
		switch strings.ToUpper(output) {
		case "SERIAL":
			strip, err = lights.NewSerialStrip(lights.SerialConfig{
				Port:        config.SerialPort,
				Baud:        config.SerialBaud,
				ReadTimeout: config.SerialTimeout,
				Newline:     config.LineDelimiter,
			})
		case "STDOUT":
			strip = lights.NewWireStrip(nopCloser{os.Stdout}, config.LineDelimiter)
		case "PREVIEW":
			strip = lights.NewPreviewStrip(os.Stdout)
		case "LIFX":
			strip, err = lifx.NewMirror(ctx, lifx.Config{
				GroupName:     config.LightGroup,
				MaxBrightness: config.MaxBrightness,
				MinBrightness: config.MinBrightness,
				Mirror:        config.LightMirror,
				Center:        center,
				Transition:    frameDelay,
			})
		default:
			err = fmt.Errorf("unknown output: %v", output)
		}
		if err != nil {
			if closeErr := strips.Close(); closeErr != nil {
				logger.With(zap.Error(closeErr)).Warn("Failed to close outputs")
			}
			return nil, err
		}
		strips = append(strips, strip)
	}

	if len(strips) == 1 {
		return strips[0], nil
	}
	return strips, nil
}
