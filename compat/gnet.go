// FILE: compat/gnet.go
package compat

import (
	"fmt"
	"os"

	"github.com/sid19991/rapidlog"
)

// GnetAdapter wraps a rapidlog.Logger to implement gnet's logging.Logger
// interface, so a gnet event loop logs through the asynchronous engine.
type GnetAdapter struct {
	logger       *rapidlog.Logger
	fatalHandler func(msg string) // Customizable fatal behavior
}

// NewGnetAdapter creates a new gnet-compatible logger adapter.
func NewGnetAdapter(logger *rapidlog.Logger, opts ...GnetOption) *GnetAdapter {
	adapter := &GnetAdapter{
		logger: logger,
		fatalHandler: func(msg string) {
			os.Exit(1) // Default behavior matches gnet expectations
		},
	}

	for _, opt := range opts {
		opt(adapter)
	}

	return adapter
}

// GnetOption allows customizing adapter behavior.
type GnetOption func(*GnetAdapter)

// WithFatalHandler sets a custom fatal handler.
func WithFatalHandler(handler func(string)) GnetOption {
	return func(a *GnetAdapter) {
		a.fatalHandler = handler
	}
}

// Debugf logs at debug level with printf-style formatting.
func (a *GnetAdapter) Debugf(format string, args ...any) {
	a.logger.Debug(fmt.Sprintf(format, args...), rapidlog.F("source", "gnet"))
}

// Infof logs at info level with printf-style formatting.
func (a *GnetAdapter) Infof(format string, args ...any) {
	a.logger.Info(fmt.Sprintf(format, args...), rapidlog.F("source", "gnet"))
}

// Warnf logs at warning level with printf-style formatting.
func (a *GnetAdapter) Warnf(format string, args ...any) {
	a.logger.Warning(fmt.Sprintf(format, args...), rapidlog.F("source", "gnet"))
}

// Errorf logs at error level with printf-style formatting.
func (a *GnetAdapter) Errorf(format string, args ...any) {
	a.logger.Error(fmt.Sprintf(format, args...), rapidlog.F("source", "gnet"))
}

// Fatalf logs at critical level, flushes, and triggers the fatal handler.
func (a *GnetAdapter) Fatalf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	a.logger.Critical(msg, rapidlog.F("source", "gnet"), rapidlog.F("fatal", true))

	// Ensure the record reaches the sink before exit
	a.logger.Flush()

	if a.fatalHandler != nil {
		a.fatalHandler(msg)
	}
}
