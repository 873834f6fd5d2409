// FILE: config.go
package rapidlog

import (
	"errors"
	"fmt"
	"io"
	"reflect"
	"time"

	"github.com/lixenwraith/config"
)

// Config holds all logger configuration values. A Config is resolved and
// validated once at construction; the running logger never mutates it.
type Config struct {
	// Minimum level a record must have to be queued
	Level int64 `toml:"level"`

	// Named preset supplying defaults for unset numeric knobs.
	// Empty means "balanced".
	Preset string `toml:"preset"`

	// QueueSize is the ring queue capacity shared by all emitters
	QueueSize int64 `toml:"queue_size"`
	// BatchSize is the maximum records drained per writer iteration
	BatchSize int64 `toml:"batch_size"`
	// EmitterBufferSize is the records staged per emitter before transfer
	EmitterBufferSize int64 `toml:"emitter_buffer_size"`
	// FlushIntervalMs bounds how long records stay staged or queued
	FlushIntervalMs int64 `toml:"flush_interval_ms"`

	// InternalErrorsToStderr reports sink write failures on stderr
	InternalErrorsToStderr bool `toml:"internal_errors_to_stderr"`

	// Sink receives the encoded wire lines. The logger does not own it:
	// it only writes and flushes. Defaults to os.Stdout. Not loadable
	// from a file.
	Sink io.Writer `toml:"-"`
}

// preset is one named bundle of numeric defaults
type preset struct {
	queueSize         int64
	batchSize         int64
	emitterBufferSize int64
	flushIntervalMs   int64
}

// presets is the closed set of named configuration presets
var presets = map[string]preset{
	PresetLowMemory:  {queueSize: 2048, batchSize: 64, emitterBufferSize: 8, flushIntervalMs: 100},
	PresetBalanced:   {queueSize: 32768, batchSize: 256, emitterBufferSize: 32, flushIntervalMs: 50},
	PresetThroughput: {queueSize: 131072, batchSize: 1024, emitterBufferSize: 128, flushIntervalMs: 10},
}

// DefaultConfig returns a configuration using the balanced preset.
func DefaultConfig() *Config {
	cfg := &Config{
		Level:  LevelInfo,
		Preset: PresetBalanced,
	}
	cfg.applyPreset(presets[PresetBalanced])
	return cfg
}

// PresetConfig returns a configuration from a named preset.
func PresetConfig(name string) (*Config, error) {
	p, ok := presets[name]
	if !ok {
		return nil, fmtErrorf("unknown preset: '%s' (use %s, %s, or %s)",
			name, PresetLowMemory, PresetBalanced, PresetThroughput)
	}
	cfg := &Config{
		Level:  LevelInfo,
		Preset: name,
	}
	cfg.applyPreset(p)
	return cfg, nil
}

// applyPreset fills every numeric knob from a preset.
func (c *Config) applyPreset(p preset) {
	c.QueueSize = p.queueSize
	c.BatchSize = p.batchSize
	c.EmitterBufferSize = p.emitterBufferSize
	c.FlushIntervalMs = p.flushIntervalMs
}

// resolve fills unset knobs from the named preset (balanced when none is
// named). Explicitly set values always win over preset defaults.
func (c *Config) resolve() error {
	name := c.Preset
	if name == "" {
		name = PresetBalanced
	}
	p, ok := presets[name]
	if !ok {
		return fmtErrorf("unknown preset: '%s' (use %s, %s, or %s)",
			name, PresetLowMemory, PresetBalanced, PresetThroughput)
	}
	c.Preset = name

	if c.Level == 0 {
		c.Level = LevelInfo
	}
	if c.QueueSize == 0 {
		c.QueueSize = p.queueSize
	}
	if c.BatchSize == 0 {
		c.BatchSize = p.batchSize
	}
	if c.EmitterBufferSize == 0 {
		c.EmitterBufferSize = p.emitterBufferSize
	}
	if c.FlushIntervalMs == 0 {
		c.FlushIntervalMs = p.flushIntervalMs
	}

	return c.validate()
}

// validate performs validation on the configuration.
func (c *Config) validate() error {
	switch c.Level {
	case LevelDebug, LevelInfo, LevelWarning, LevelError, LevelCritical:
	default:
		return fmtErrorf("invalid level: %d (use LevelDebug..LevelCritical)", c.Level)
	}

	if c.QueueSize <= 0 {
		return fmtErrorf("queue_size must be positive: %d", c.QueueSize)
	}
	if c.BatchSize <= 0 {
		return fmtErrorf("batch_size must be positive: %d", c.BatchSize)
	}
	if c.EmitterBufferSize <= 0 {
		return fmtErrorf("emitter_buffer_size must be positive: %d", c.EmitterBufferSize)
	}
	if c.FlushIntervalMs <= 0 {
		return fmtErrorf("flush_interval_ms must be positive: %d", c.FlushIntervalMs)
	}

	return nil
}

// FlushInterval returns the flush interval as a duration.
func (c *Config) FlushInterval() time.Duration {
	return time.Duration(c.FlushIntervalMs) * time.Millisecond
}

// Clone creates a copy of the configuration.
func (c *Config) Clone() *Config {
	copiedConfig := *c
	return &copiedConfig
}

// fileConfig mirrors the scalar knobs of Config for file loading. The
// sink cannot come from a file, so it is excluded from registration.
// Level is a string so the file accepts the same case-insensitive level
// names (or a numeric rank) as ApplyOverrides.
type fileConfig struct {
	Level                  string `toml:"level"`
	Preset                 string `toml:"preset"`
	QueueSize              int64  `toml:"queue_size"`
	BatchSize              int64  `toml:"batch_size"`
	EmitterBufferSize      int64  `toml:"emitter_buffer_size"`
	FlushIntervalMs        int64  `toml:"flush_interval_ms"`
	InternalErrorsToStderr bool   `toml:"internal_errors_to_stderr"`
}

// NewConfigFromFile loads configuration from a TOML file under the
// [rapidlog] table and returns a resolved, validated Config. Knobs the
// file does not set come from the file's named preset at resolve, so
// naming a preset is enough to get its numbers. A missing file yields
// the balanced defaults.
func NewConfigFromFile(path string) (*Config, error) {
	loader := config.New()

	// Registered defaults stay zero so only values actually present in
	// the file survive extraction; resolve fills the rest from the preset
	if err := loader.RegisterStruct("rapidlog.", fileConfig{}); err != nil {
		return nil, fmtErrorf("failed to register config struct: %w", err)
	}

	if err := loader.Load(path, nil); err != nil && !errors.Is(err, config.ErrConfigNotFound) {
		return nil, fmtErrorf("failed to load config from %s: %w", path, err)
	}

	var fc fileConfig
	if err := extractConfig(loader, "rapidlog.", &fc); err != nil {
		return nil, fmtErrorf("failed to extract config values: %w", err)
	}

	cfg := &Config{
		Preset:                 fc.Preset,
		QueueSize:              fc.QueueSize,
		BatchSize:              fc.BatchSize,
		EmitterBufferSize:      fc.EmitterBufferSize,
		FlushIntervalMs:        fc.FlushIntervalMs,
		InternalErrorsToStderr: fc.InternalErrorsToStderr,
	}
	if fc.Level != "" {
		if err := applyConfigField(cfg, "level", fc.Level); err != nil {
			return nil, err
		}
	}

	if err := cfg.resolve(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// extractConfig pulls loaded values into a struct by toml tag.
func extractConfig(loader *config.Config, prefix string, out any) error {
	v := reflect.ValueOf(out).Elem()
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		fieldValue := v.Field(i)

		tomlTag := field.Tag.Get("toml")
		if tomlTag == "" || tomlTag == "-" {
			continue
		}

		val, found := loader.Get(prefix + tomlTag)
		if !found {
			continue
		}

		if err := setFieldValue(fieldValue, val); err != nil {
			return fmt.Errorf("failed to set field %s: %w", field.Name, err)
		}
	}

	return nil
}

// setFieldValue sets a reflect.Value with type conversion.
func setFieldValue(field reflect.Value, value any) error {
	switch field.Kind() {
	case reflect.String:
		strVal, ok := value.(string)
		if !ok {
			return fmt.Errorf("expected string, got %T", value)
		}
		field.SetString(strVal)

	case reflect.Int64:
		switch v := value.(type) {
		case int64:
			field.SetInt(v)
		case int:
			field.SetInt(int64(v))
		default:
			return fmt.Errorf("expected int64, got %T", value)
		}

	case reflect.Bool:
		boolVal, ok := value.(bool)
		if !ok {
			return fmt.Errorf("expected bool, got %T", value)
		}
		field.SetBool(boolVal)

	default:
		return fmt.Errorf("unsupported field type: %v", field.Kind())
	}

	return nil
}
