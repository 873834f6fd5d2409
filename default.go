// FILE: default.go
package rapidlog

import (
	"sync/atomic"
)

// Process-wide default logger for applications that want package-level
// functions instead of passing a *Logger around.
var defaultLogger atomic.Pointer[Logger]

// Init creates the package default logger from cfg, replacing and closing
// any previous one.
func Init(cfg *Config) error {
	l, err := New(cfg)
	if err != nil {
		return err
	}
	if prev := defaultLogger.Swap(l); prev != nil {
		_ = prev.Close()
	}
	return nil
}

// InitWithPreset creates the package default logger from a named preset.
func InitWithPreset(presetName, level string) error {
	l, err := NewWithPreset(presetName, level)
	if err != nil {
		return err
	}
	if prev := defaultLogger.Swap(l); prev != nil {
		_ = prev.Close()
	}
	return nil
}

// Default returns the package default logger, or nil before Init.
func Default() *Logger {
	return defaultLogger.Load()
}

// Debug logs a message at debug level on the default logger.
func Debug(message string, fields ...Field) {
	if l := defaultLogger.Load(); l != nil {
		l.Debug(message, fields...)
	}
}

// Info logs a message at info level on the default logger.
func Info(message string, fields ...Field) {
	if l := defaultLogger.Load(); l != nil {
		l.Info(message, fields...)
	}
}

// Warning logs a message at warning level on the default logger.
func Warning(message string, fields ...Field) {
	if l := defaultLogger.Load(); l != nil {
		l.Warning(message, fields...)
	}
}

// Error logs a message at error level on the default logger.
func Error(message string, fields ...Field) {
	if l := defaultLogger.Load(); l != nil {
		l.Error(message, fields...)
	}
}

// Critical logs a message at critical level on the default logger.
func Critical(message string, fields ...Field) {
	if l := defaultLogger.Load(); l != nil {
		l.Critical(message, fields...)
	}
}

// Flush flushes the default logger's shared emitter buffer.
func Flush() {
	if l := defaultLogger.Load(); l != nil {
		l.Flush()
	}
}

// Close closes the default logger and forgets it.
func Close() error {
	if l := defaultLogger.Swap(nil); l != nil {
		return l.Close()
	}
	return nil
}
