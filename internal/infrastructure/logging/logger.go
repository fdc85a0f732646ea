// Package logging builds the zap logger and forwards game diagnostics to it.
package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/younwookim/tilequest/internal/domain/diag"
	"github.com/younwookim/tilequest/internal/infrastructure/config"
)

// New builds a logger from the logging section of settings.json.
// Encoding is "json" or "console"; anything else is an error.
func New(cfg config.LoggingConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	encoding := cfg.Encoding
	if encoding == "" {
		encoding = "console"
	}
	if encoding != "json" && encoding != "console" {
		return nil, fmt.Errorf("invalid log encoding %q", cfg.Encoding)
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if encoding == "console" {
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	output := cfg.Output
	if output == "" {
		output = "stderr"
	}

	zc := zap.Config{
		Level:       zap.NewAtomicLevelAt(level),
		Development: false,
		Sampling: &zap.SamplingConfig{
			Initial:    100,
			Thereafter: 100,
		},
		Encoding:         encoding,
		EncoderConfig:    encoderConfig,
		OutputPaths:      []string{output},
		ErrorOutputPaths: []string{"stderr"},
		DisableCaller:    true,
	}

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger, nil
}

// ZapChannel is a diag.Channel that writes each diagnostic as a log entry
type ZapChannel struct {
	logger *zap.Logger
}

var _ diag.Channel = (*ZapChannel)(nil)

// NewZapChannel creates a diagnostic sink on top of logger
func NewZapChannel(logger *zap.Logger) *ZapChannel {
	return &ZapChannel{logger: logger.Named("diag")}
}

// Emit implements diag.Channel
func (c *ZapChannel) Emit(d diag.Diagnostic) {
	fields := make([]zap.Field, 0, len(d.Fields)+1)
	fields = append(fields, zap.String("kind", string(d.Kind)))
	for _, f := range d.Fields {
		fields = append(fields, zap.Any(f.Key, f.Value))
	}
	c.logger.Log(toZapLevel(d.Severity), d.Message, fields...)
}

func toZapLevel(s diag.Severity) zapcore.Level {
	switch s {
	case diag.SeverityDebug:
		return zap.DebugLevel
	case diag.SeverityInfo:
		return zap.InfoLevel
	case diag.SeverityWarn:
		return zap.WarnLevel
	default:
		return zap.ErrorLevel
	}
}
