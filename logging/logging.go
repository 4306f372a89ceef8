// Package logging builds the zap logger used across the controller.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options selects the logger's level, encoder and destination. Format is
// "console" or "json"; OutputPath is a file path or one of "stdout" and
// "stderr".
type Options struct {
	Level      string
	Format     string
	OutputPath string
}

// New builds a zap logger from the given options. Empty fields fall back to
// info level, console encoding and stderr.
func New(opts Options) (*zap.Logger, error) {
	if opts.Level == "" {
		opts.Level = "info"
	}

	if opts.Format == "" {
		opts.Format = "console"
	}

	if opts.OutputPath == "" {
		opts.OutputPath = "stderr"
	}

	level, err := zapcore.ParseLevel(opts.Level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoding string

	switch opts.Format {
	case "console":
		encoding = "console"
		encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	case "json":
		encoding = "json"
	default:
		return nil, fmt.Errorf("unknown log format %q", opts.Format)
	}

	cfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Encoding:         encoding,
		EncoderConfig:    encoderCfg,
		OutputPaths:      []string{opts.OutputPath},
		ErrorOutputPaths: []string{"stderr"},
	}

	return cfg.Build()
}
