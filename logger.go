// FILE: logger.go
package rapidlog

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"
)

// Logger is an asynchronous structured JSON logger. The hot path only
// stages records; serialization and I/O happen on a single background
// writer goroutine feeding the configured sink.
//
// The facade's own level methods share one internal emitter guarded by a
// mutex, which is convenient for casual use from any goroutine. Hot paths
// should give each worker goroutine its own Emitter: emitter buffers are
// lock-free on the caller side and preserve per-emitter FIFO order.
type Logger struct {
	cfg   *Config
	queue *RingQueue
	state State

	writerDone chan struct{}

	selfMu sync.Mutex
	self   *Emitter

	closeOnce sync.Once
}

// New creates a Logger from cfg, resolving unset knobs from the named
// preset (balanced when none is named), and starts the writer goroutine.
// A nil cfg means the balanced defaults with an os.Stdout sink.
//
// The returned logger is Running: records may be logged immediately.
func New(cfg *Config) (*Logger, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	} else {
		cfg = cfg.Clone()
	}
	if err := cfg.resolve(); err != nil {
		return nil, err
	}
	if cfg.Sink == nil {
		cfg.Sink = os.Stdout
	}

	queue, err := NewRingQueue(int(cfg.QueueSize))
	if err != nil {
		return nil, err
	}

	l := &Logger{
		cfg:        cfg,
		queue:      queue,
		writerDone: make(chan struct{}),
	}
	l.self = l.newEmitter()

	go l.processQueue()

	return l, nil
}

// NewWithPreset creates a Logger from a named preset at the given level.
func NewWithPreset(presetName, level string) (*Logger, error) {
	cfg, err := PresetConfig(presetName)
	if err != nil {
		return nil, err
	}
	levelVal, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	cfg.Level = levelVal
	return New(cfg)
}

// GetConfig returns a copy of the resolved configuration.
func (l *Logger) GetConfig() *Config {
	return l.cfg.Clone()
}

// Emitter creates a new per-goroutine logging context with a unique
// emitter id. The caller's goroutine owns it exclusively.
func (l *Logger) Emitter() *Emitter {
	return l.newEmitter()
}

// newEmitter mints an emitter bound to this logger.
func (l *Logger) newEmitter() *Emitter {
	return &Emitter{
		logger:    l,
		id:        l.state.EmitterSerial.Add(1),
		lastFlush: time.Now(),
	}
}

// IsEnabledFor reports whether records at level would pass the filter.
// Callers can use it to skip expensive field computation.
func (l *Logger) IsEnabledFor(level int64) bool {
	return level >= l.cfg.Level
}

// Debug logs a message at debug level.
func (l *Logger) Debug(message string, fields ...Field) {
	l.log(LevelDebug, message, fields)
}

// Info logs a message at info level.
func (l *Logger) Info(message string, fields ...Field) {
	l.log(LevelInfo, message, fields)
}

// Warning logs a message at warning level.
func (l *Logger) Warning(message string, fields ...Field) {
	l.log(LevelWarning, message, fields)
}

// Error logs a message at error level.
func (l *Logger) Error(message string, fields ...Field) {
	l.log(LevelError, message, fields)
}

// Critical logs a message at critical level.
func (l *Logger) Critical(message string, fields ...Field) {
	l.log(LevelCritical, message, fields)
}

// log routes a facade-level call through the shared emitter.
func (l *Logger) log(level int64, message string, fields []Field) {
	if level < l.cfg.Level {
		return
	}
	l.selfMu.Lock()
	l.self.log(level, message, fields)
	l.selfMu.Unlock()
}

// Flush transfers the facade's shared emitter buffer into the ring queue.
// It does not wait for the writer to drain it. Explicit Emitters flush
// themselves; this call has no effect on their buffers.
func (l *Logger) Flush() {
	l.selfMu.Lock()
	l.self.flush()
	l.selfMu.Unlock()
}

// Close flushes the shared emitter, signals shutdown, closes the queue,
// and waits for the writer goroutine to drain remaining records and exit.
// Idempotent: a second Close returns immediately with nil. Logging after
// Close is safe but best-effort: the writer has exited, so late records
// are counted as dropped rather than written.
func (l *Logger) Close() error {
	l.closeOnce.Do(func() {
		l.Flush()
		l.state.ShutdownCalled.Store(true)
		l.queue.Close()
		<-l.writerDone
	})
	return nil
}

// Stats returns a snapshot of the logger's operational counters.
func (l *Logger) Stats() Stats {
	return Stats{
		Enqueued:   l.state.Enqueued.Load(),
		Dropped:    l.state.Dropped.Load(),
		BatchesOut: l.state.BatchesOut.Load(),
		LinesOut:   l.state.LinesOut.Load(),
		Fallbacks:  l.state.Fallbacks.Load(),
		SinkErrors: l.state.SinkErrors.Load(),
	}
}

// internalLog reports engine-side faults on stderr when enabled.
func (l *Logger) internalLog(format string, args ...any) {
	if !l.cfg.InternalErrorsToStderr {
		return
	}
	if !strings.HasPrefix(format, "rapidlog: ") {
		format = "rapidlog: " + format
	}
	fmt.Fprintf(os.Stderr, format, args...)
}
