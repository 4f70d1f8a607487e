package lights

import (
	"context"
	"fmt"
	"time"

	"github.com/tarm/serial"
	"go.uber.org/zap"

	"github.com/scheerer/sunrise-leds/internal/frame"
)

type SerialConfig struct {
	Port        string
	Baud        int
	ReadTimeout time.Duration
	// Newline terminates every LED command with '\n'.
	Newline bool
}

// SerialStrip keeps one serial connection open for the whole animation.
type SerialStrip struct {
	config SerialConfig
	port   *serial.Port
	wire   *WireStrip
}

func NewSerialStrip(config SerialConfig) (*SerialStrip, error) {
	port, err := serial.OpenPort(&serial.Config{
		Name:        config.Port,
		Baud:        config.Baud,
		ReadTimeout: config.ReadTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", ErrSinkWrite, config.Port, err)
	}

	logger.With(zap.String("port", config.Port), zap.Int("baud", config.Baud)).Info("Serial port opened")

	return &SerialStrip{
		config: config,
		port:   port,
		wire:   NewWireStrip(port, config.Newline),
	}, nil
}

func (s *SerialStrip) Render(ctx context.Context, f frame.Frame) error {
	if err := s.wire.Render(ctx, f); err != nil {
		return fmt.Errorf("serial %s: %w", s.config.Port, err)
	}
	return nil
}

func (s *SerialStrip) Close() error {
	if s.port == nil {
		return nil
	}
	if err := s.port.Flush(); err != nil {
		logger.With(zap.String("port", s.config.Port), zap.Error(err)).Warn("Failed to flush serial port")
	}
	err := s.port.Close()
	s.port = nil
	logger.With(zap.String("port", s.config.Port)).Info("Serial port closed")
	return err
}
