// Package logging builds the structured logger used throughout the service.
// It wraps zap's SugaredLogger so the rest of the codebase depends on one
// small type instead of importing zap everywhere.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the structured logger passed to every component at startup.
type Logger struct {
	*zap.SugaredLogger
}

// New creates a logger appropriate for the given runtime environment.
// "development" gets pretty colourised console output; anything else gets
// production JSON lines with ISO 8601 timestamps.
func New(env string) (*Logger, error) {
	var zapConfig zap.Config
	if env == "development" {
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		zapConfig = zap.NewProductionConfig()
		zapConfig.EncoderConfig.TimeKey = "timestamp"
		zapConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	zapLogger, err := zapConfig.Build(zap.AddStacktrace(zapcore.ErrorLevel))
	if err != nil {
		return nil, fmt.Errorf("failed to build zap logger: %w", err)
	}

	return &Logger{zapLogger.Sugar()}, nil
}

// NewNop returns a logger that discards everything. Used in tests so
// components under test don't spam the test output.
func NewNop() *Logger {
	return &Logger{zap.NewNop().Sugar()}
}

// WithField returns a logger with an extra key/value attached to every line.
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{l.With(key, value)}
}

// WithError returns a logger with an error field attached to every line.
func (l *Logger) WithError(err error) *Logger {
	return &Logger{l.With("error", err)}
}
