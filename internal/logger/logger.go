package logger

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"request-logger/internal/config"
)

const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

func iso8601MicroTimeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.UTC().Format("2006-01-02T15:04:05.000000Z07:00"))
}

// EncoderConfig is the zap encoder configuration shared by every top-level logger.
var EncoderConfig = func() zapcore.EncoderConfig {
	ec := zap.NewProductionEncoderConfig()
	ec.EncodeTime = iso8601MicroTimeEncoder
	return ec
}()

// New builds the top-level logger. The caller owns it and must call Sync before exit.
func New(cfg config.LogConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	var development bool
	switch cfg.Format {
	case FormatJSON:
	case FormatConsole:
		development = true
	default:
		return nil, fmt.Errorf("unexpected log format: %q", cfg.Format)
	}

	zcfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Development:      development,
		Encoding:         cfg.Format,
		EncoderConfig:    EncoderConfig,
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}

	l, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	if cfg.Name != "" {
		l = l.Named(cfg.Name)
	}

	return l, nil
}
