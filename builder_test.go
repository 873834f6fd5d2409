// FILE: builder_test.go
package rapidlog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderDefaults(t *testing.T) {
	cfg, err := NewBuilder().Config()
	require.NoError(t, err)

	assert.Equal(t, LevelInfo, cfg.Level)
	assert.Equal(t, PresetBalanced, cfg.Preset)
	assert.Equal(t, int64(32768), cfg.QueueSize)
}

func TestBuilderChaining(t *testing.T) {
	sink := &syncBuffer{}
	cfg, err := NewBuilder().
		Preset(PresetThroughput).
		LevelString("debug").
		QueueSize(8192).
		BatchSize(512).
		EmitterBufferSize(64).
		FlushInterval(25 * time.Millisecond).
		Sink(sink).
		InternalErrorsToStderr(true).
		Config()
	require.NoError(t, err)

	assert.Equal(t, LevelDebug, cfg.Level)
	assert.Equal(t, PresetThroughput, cfg.Preset)
	assert.Equal(t, int64(8192), cfg.QueueSize)
	assert.Equal(t, int64(512), cfg.BatchSize)
	assert.Equal(t, int64(64), cfg.EmitterBufferSize)
	assert.Equal(t, int64(25), cfg.FlushIntervalMs)
	assert.True(t, cfg.InternalErrorsToStderr)
	assert.Equal(t, sink, cfg.Sink)
}

func TestBuilderPresetError(t *testing.T) {
	_, err := NewBuilder().Preset("ludicrous").Config()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown preset")

	// A failed chain refuses to build
	_, err = NewBuilder().Preset("ludicrous").Level(LevelDebug).Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown preset")
}

func TestBuilderLevelStringError(t *testing.T) {
	_, err := NewBuilder().LevelString("shouty").Config()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid level string")
}

func TestBuilderFirstErrorSticks(t *testing.T) {
	_, err := NewBuilder().
		Preset("bogus").
		LevelString("also bogus").
		Config()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown preset")
}

func TestBuilderBuild(t *testing.T) {
	sink := &syncBuffer{}
	l, err := NewBuilder().
		Preset(PresetLowMemory).
		EmitterBufferSize(1).
		Sink(sink).
		Build()
	require.NoError(t, err)

	l.Info("built")
	entries := drainLines(t, l, sink)
	require.Len(t, entries, 1)
	assert.Equal(t, "built", entries[0]["msg"])
}
