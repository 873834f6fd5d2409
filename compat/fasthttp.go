// FILE: compat/fasthttp.go
package compat

import (
	"fmt"
	"strings"

	"github.com/sid19991/rapidlog"
)

// FastHTTPAdapter wraps a rapidlog.Logger to implement fasthttp's Logger
// interface (a single Printf method).
type FastHTTPAdapter struct {
	logger        *rapidlog.Logger
	defaultLevel  int64
	levelDetector func(string) int64 // Function to detect log level from message
}

// NewFastHTTPAdapter creates a new fasthttp-compatible logger adapter.
func NewFastHTTPAdapter(logger *rapidlog.Logger, opts ...FastHTTPOption) *FastHTTPAdapter {
	adapter := &FastHTTPAdapter{
		logger:        logger,
		defaultLevel:  rapidlog.LevelInfo,
		levelDetector: DetectLogLevel, // Default level detection
	}

	for _, opt := range opts {
		opt(adapter)
	}

	return adapter
}

// FastHTTPOption allows customizing adapter behavior.
type FastHTTPOption func(*FastHTTPAdapter)

// WithDefaultLevel sets the default log level for Printf calls.
func WithDefaultLevel(level int64) FastHTTPOption {
	return func(a *FastHTTPAdapter) {
		a.defaultLevel = level
	}
}

// WithLevelDetector sets a custom function to detect log level from message content.
func WithLevelDetector(detector func(string) int64) FastHTTPOption {
	return func(a *FastHTTPAdapter) {
		a.levelDetector = detector
	}
}

// Printf implements fasthttp's Logger interface.
func (a *FastHTTPAdapter) Printf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)

	level := a.defaultLevel
	if a.levelDetector != nil {
		if detected := a.levelDetector(msg); detected != 0 {
			level = detected
		}
	}

	switch level {
	case rapidlog.LevelDebug:
		a.logger.Debug(msg, rapidlog.F("source", "fasthttp"))
	case rapidlog.LevelWarning:
		a.logger.Warning(msg, rapidlog.F("source", "fasthttp"))
	case rapidlog.LevelError:
		a.logger.Error(msg, rapidlog.F("source", "fasthttp"))
	case rapidlog.LevelCritical:
		a.logger.Critical(msg, rapidlog.F("source", "fasthttp"))
	default:
		a.logger.Info(msg, rapidlog.F("source", "fasthttp"))
	}
}

// DetectLogLevel attempts to detect log level from message content.
func DetectLogLevel(msg string) int64 {
	msgLower := strings.ToLower(msg)

	if strings.Contains(msgLower, "fatal") ||
		strings.Contains(msgLower, "panic") {
		return rapidlog.LevelCritical
	}

	if strings.Contains(msgLower, "error") ||
		strings.Contains(msgLower, "failed") {
		return rapidlog.LevelError
	}

	if strings.Contains(msgLower, "warn") ||
		strings.Contains(msgLower, "deprecated") {
		return rapidlog.LevelWarning
	}

	if strings.Contains(msgLower, "debug") ||
		strings.Contains(msgLower, "trace") {
		return rapidlog.LevelDebug
	}

	return rapidlog.LevelInfo
}
