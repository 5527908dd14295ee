// Package logger defines the structured logging interface for the VeilScan
// risk service. The production implementation lives in
// internal/infrastructure/monitoring and is backed by zap.
package logger

import (
	"context"
	"time"
)

// Fields is an ordered-insensitive bag of structured log fields.
type Fields map[string]interface{}

// Logger defines the interface for structured, context-aware logging.
type Logger interface {
	// Debug logs a debug message
	Debug(ctx context.Context, msg string, fields ...Fields)

	// Info logs an informational message
	Info(ctx context.Context, msg string, fields ...Fields)

	// Warn logs a warning message
	Warn(ctx context.Context, msg string, fields ...Fields)

	// Error logs an error message
	Error(ctx context.Context, msg string, err error, fields ...Fields)

	// Fatal logs a fatal message and exits the application
	Fatal(ctx context.Context, msg string, err error, fields ...Fields)

	// WithFields creates a new logger carrying additional base fields
	WithFields(fields Fields) Logger

	// WithComponent creates a new logger scoped to a component name
	WithComponent(component string) Logger
}

type nopLogger struct{}

// NewNop returns a logger that discards everything. Used in tests and as a
// safe default before the real logger is configured.
func NewNop() Logger {
	return nopLogger{}
}

func (nopLogger) Debug(ctx context.Context, msg string, fields ...Fields)            {}
func (nopLogger) Info(ctx context.Context, msg string, fields ...Fields)             {}
func (nopLogger) Warn(ctx context.Context, msg string, fields ...Fields)             {}
func (nopLogger) Error(ctx context.Context, msg string, err error, fields ...Fields) {}
func (nopLogger) Fatal(ctx context.Context, msg string, err error, fields ...Fields) {}
func (nopLogger) WithFields(fields Fields) Logger                                    { return nopLogger{} }
func (nopLogger) WithComponent(component string) Logger                              { return nopLogger{} }

// Convenience constructors for single-field bags, mirroring the call sites'
// most common shapes.

func String(key, value string) Fields {
	return Fields{key: value}
}

func Int(key string, value int) Fields {
	return Fields{key: value}
}

func Float64(key string, value float64) Fields {
	return Fields{key: value}
}

func Bool(key string, value bool) Fields {
	return Fields{key: value}
}

func Duration(key string, value time.Duration) Fields {
	return Fields{key: value.String()}
}
