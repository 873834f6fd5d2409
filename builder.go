// FILE: builder.go
package rapidlog

import (
	"io"
	"time"
)

// Builder provides a fluent API for building logger configurations.
// It wraps a Config instance and provides chainable methods for setting values.
type Builder struct {
	cfg *Config
	err error // Accumulate errors for deferred handling
}

// NewBuilder creates a new configuration builder with default values.
func NewBuilder() *Builder {
	return &Builder{
		cfg: DefaultConfig(),
	}
}

// Build creates a running Logger from the built configuration.
func (b *Builder) Build() (*Logger, error) {
	if b.err != nil {
		return nil, b.err
	}
	return New(b.cfg)
}

// Config returns the configuration built so far, or an error if any
// chained call failed.
func (b *Builder) Config() (*Config, error) {
	if b.err != nil {
		return nil, b.err
	}
	cfg := b.cfg.Clone()
	if err := cfg.resolve(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Preset selects a named preset supplying the numeric defaults.
func (b *Builder) Preset(name string) *Builder {
	if b.err != nil {
		return b
	}
	if _, ok := presets[name]; !ok {
		b.err = fmtErrorf("unknown preset: '%s' (use %s, %s, or %s)",
			name, PresetLowMemory, PresetBalanced, PresetThroughput)
		return b
	}
	b.cfg.Preset = name
	b.cfg.applyPreset(presets[name])
	return b
}

// Level sets the minimum log level.
func (b *Builder) Level(level int64) *Builder {
	b.cfg.Level = level
	return b
}

// LevelString sets the minimum log level from a name.
func (b *Builder) LevelString(level string) *Builder {
	if b.err != nil {
		return b
	}
	levelVal, err := ParseLevel(level)
	if err != nil {
		b.err = err
		return b
	}
	b.cfg.Level = levelVal
	return b
}

// QueueSize sets the ring queue capacity.
func (b *Builder) QueueSize(size int64) *Builder {
	b.cfg.QueueSize = size
	return b
}

// BatchSize sets the maximum records per writer batch.
func (b *Builder) BatchSize(size int64) *Builder {
	b.cfg.BatchSize = size
	return b
}

// EmitterBufferSize sets the per-emitter staging buffer size.
func (b *Builder) EmitterBufferSize(size int64) *Builder {
	b.cfg.EmitterBufferSize = size
	return b
}

// FlushInterval sets the staging flush interval.
func (b *Builder) FlushInterval(d time.Duration) *Builder {
	b.cfg.FlushIntervalMs = d.Milliseconds()
	return b
}

// Sink sets the output writer. The logger writes and flushes it but does
// not own it.
func (b *Builder) Sink(w io.Writer) *Builder {
	b.cfg.Sink = w
	return b
}

// InternalErrorsToStderr enables reporting sink write failures on stderr.
func (b *Builder) InternalErrorsToStderr(enable bool) *Builder {
	b.cfg.InternalErrorsToStderr = enable
	return b
}

// Example usage:
//
//	logger, err := rapidlog.NewBuilder().
//		Preset("throughput").
//		LevelString("debug").
//		EmitterBufferSize(64).
//		Sink(os.Stdout).
//		Build()
//
//	if err == nil {
//		defer logger.Close()
//		logger.Info("logger initialized", rapidlog.F("pid", os.Getpid()))
//	}
