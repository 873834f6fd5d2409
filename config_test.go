// FILE: config_test.go
package rapidlog

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, LevelInfo, cfg.Level)
	assert.Equal(t, PresetBalanced, cfg.Preset)
	assert.Equal(t, int64(32768), cfg.QueueSize)
	assert.Equal(t, int64(256), cfg.BatchSize)
	assert.Equal(t, int64(32), cfg.EmitterBufferSize)
	assert.Equal(t, int64(50), cfg.FlushIntervalMs)
	assert.NoError(t, cfg.validate())
}

func TestPresetConfig(t *testing.T) {
	tests := []struct {
		name              string
		queueSize         int64
		batchSize         int64
		emitterBufferSize int64
		flushIntervalMs   int64
	}{
		{PresetLowMemory, 2048, 64, 8, 100},
		{PresetBalanced, 32768, 256, 32, 50},
		{PresetThroughput, 131072, 1024, 128, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := PresetConfig(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.name, cfg.Preset)
			assert.Equal(t, tt.queueSize, cfg.QueueSize)
			assert.Equal(t, tt.batchSize, cfg.BatchSize)
			assert.Equal(t, tt.emitterBufferSize, cfg.EmitterBufferSize)
			assert.Equal(t, tt.flushIntervalMs, cfg.FlushIntervalMs)
		})
	}

	_, err := PresetConfig("extreme")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown preset")
}

func TestConfigResolve(t *testing.T) {
	// Unset knobs come from the named preset
	cfg := &Config{Preset: PresetThroughput}
	require.NoError(t, cfg.resolve())
	assert.Equal(t, LevelInfo, cfg.Level)
	assert.Equal(t, int64(131072), cfg.QueueSize)
	assert.Equal(t, int64(1024), cfg.BatchSize)

	// Explicit values win over the preset
	cfg = &Config{Preset: PresetLowMemory, QueueSize: 500, Level: LevelDebug}
	require.NoError(t, cfg.resolve())
	assert.Equal(t, int64(500), cfg.QueueSize)
	assert.Equal(t, int64(64), cfg.BatchSize)
	assert.Equal(t, LevelDebug, cfg.Level)

	// No preset named means balanced
	cfg = &Config{}
	require.NoError(t, cfg.resolve())
	assert.Equal(t, int64(32768), cfg.QueueSize)
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		wantError string
	}{
		{
			name:      "invalid level",
			mutate:    func(c *Config) { c.Level = 15 },
			wantError: "invalid level",
		},
		{
			name:      "negative queue size",
			mutate:    func(c *Config) { c.QueueSize = -1 },
			wantError: "queue_size must be positive",
		},
		{
			name:      "negative batch size",
			mutate:    func(c *Config) { c.BatchSize = -5 },
			wantError: "batch_size must be positive",
		},
		{
			name:      "negative emitter buffer size",
			mutate:    func(c *Config) { c.EmitterBufferSize = -2 },
			wantError: "emitter_buffer_size must be positive",
		},
		{
			name:      "negative flush interval",
			mutate:    func(c *Config) { c.FlushIntervalMs = -10 },
			wantError: "flush_interval_ms must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantError)
		})
	}
}

func TestConfigFlushInterval(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FlushIntervalMs = 75
	assert.Equal(t, 75*time.Millisecond, cfg.FlushInterval())
}

func TestConfigClone(t *testing.T) {
	cfg := DefaultConfig()
	clone := cfg.Clone()

	clone.Level = LevelCritical
	clone.QueueSize = 1

	assert.Equal(t, LevelInfo, cfg.Level)
	assert.Equal(t, int64(32768), cfg.QueueSize)
}

func TestConfigApplyOverrides(t *testing.T) {
	cfg := DefaultConfig()
	err := cfg.ApplyOverrides(
		"level=debug",
		"preset=throughput",
		"queue_size=4096",
		"batch_size=128",
		"emitter_buffer_size=16",
		"flush_interval_ms=25",
		"internal_errors_to_stderr=true",
	)
	require.NoError(t, err)

	assert.Equal(t, LevelDebug, cfg.Level)
	assert.Equal(t, PresetThroughput, cfg.Preset)
	assert.Equal(t, int64(4096), cfg.QueueSize)
	assert.Equal(t, int64(128), cfg.BatchSize)
	assert.Equal(t, int64(16), cfg.EmitterBufferSize)
	assert.Equal(t, int64(25), cfg.FlushIntervalMs)
	assert.True(t, cfg.InternalErrorsToStderr)
}

func TestConfigApplyOverridesNumericLevel(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.ApplyOverrides("level=40"))
	assert.Equal(t, LevelError, cfg.Level)
}

func TestConfigApplyOverridesErrors(t *testing.T) {
	cfg := DefaultConfig()

	err := cfg.ApplyOverrides("no_such_key=1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown configuration key")

	err = cfg.ApplyOverrides("queue_size=lots")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid integer value")

	err = cfg.ApplyOverrides("malformed")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected key=value")

	// Multiple failures are reported together
	err = cfg.ApplyOverrides("nope=1", "queue_size=x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "multiple configuration errors")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"debug", LevelDebug},
		{"INFO", LevelInfo},
		{" Warning ", LevelWarning},
		{"error", LevelError},
		{"CRITICAL", LevelCritical},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseLevel("verbose")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid level string")
}

func TestNewConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rapidlog.toml")

	content := `[rapidlog]
level = "debug"
preset = "low-memory"
queue_size = 1024
flush_interval_ms = 200
internal_errors_to_stderr = true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := NewConfigFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, LevelDebug, cfg.Level)
	assert.Equal(t, PresetLowMemory, cfg.Preset)
	// Explicit file values win over the preset
	assert.Equal(t, int64(1024), cfg.QueueSize)
	assert.Equal(t, int64(200), cfg.FlushIntervalMs)
	// Knobs the file leaves out come from the named preset
	assert.Equal(t, int64(64), cfg.BatchSize)
	assert.Equal(t, int64(8), cfg.EmitterBufferSize)
	assert.True(t, cfg.InternalErrorsToStderr)
}

// A file that only names a preset must get that preset's numbers, not
// the balanced defaults with a relabeled preset field.
func TestNewConfigFromFilePresetOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rapidlog.toml")
	require.NoError(t, os.WriteFile(path, []byte("[rapidlog]\npreset = \"low-memory\"\n"), 0644))

	cfg, err := NewConfigFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, PresetLowMemory, cfg.Preset)
	assert.Equal(t, int64(2048), cfg.QueueSize)
	assert.Equal(t, int64(64), cfg.BatchSize)
	assert.Equal(t, int64(8), cfg.EmitterBufferSize)
	assert.Equal(t, int64(100), cfg.FlushIntervalMs)
	assert.Equal(t, LevelInfo, cfg.Level)
}

func TestNewConfigFromFileLevelNames(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{`"ERROR"`, LevelError}, // case-insensitive name
		{`"warning"`, LevelWarning},
		{`"40"`, LevelError}, // numeric rank as a string
	}
	for _, tt := range tests {
		path := filepath.Join(t.TempDir(), "rapidlog.toml")
		require.NoError(t, os.WriteFile(path, []byte("[rapidlog]\nlevel = "+tt.in+"\n"), 0644))

		cfg, err := NewConfigFromFile(path)
		require.NoError(t, err, "level %s", tt.in)
		assert.Equal(t, tt.want, cfg.Level, "level %s", tt.in)
	}

	path := filepath.Join(t.TempDir(), "rapidlog.toml")
	require.NoError(t, os.WriteFile(path, []byte("[rapidlog]\nlevel = \"loudest\"\n"), 0644))
	_, err := NewConfigFromFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid level")
}

func TestNewConfigFromFileMissing(t *testing.T) {
	cfg, err := NewConfigFromFile(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, LevelInfo, cfg.Level)
	assert.Equal(t, PresetBalanced, cfg.Preset)
	assert.Equal(t, int64(32768), cfg.QueueSize)
}
