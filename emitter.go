// FILE: emitter.go
package rapidlog

import (
	"time"
)

// Emitter is the explicit per-goroutine logging context. It stages records
// in a private buffer and bulk-transfers them into the shared ring queue
// when the buffer fills or the flush interval has elapsed, so the hot path
// touches the queue lock only once per batch of records.
//
// An Emitter is owned by exactly one goroutine and is not safe for
// concurrent use. Create one per worker with Logger.Emitter.
type Emitter struct {
	logger    *Logger
	id        int64
	buf       []Record
	lastFlush time.Time
}

// ID returns the emitter identity carried in this emitter's records.
func (e *Emitter) ID() int64 {
	return e.id
}

// Debug logs a message at debug level.
func (e *Emitter) Debug(message string, fields ...Field) {
	e.log(LevelDebug, message, fields)
}

// Info logs a message at info level.
func (e *Emitter) Info(message string, fields ...Field) {
	e.log(LevelInfo, message, fields)
}

// Warning logs a message at warning level.
func (e *Emitter) Warning(message string, fields ...Field) {
	e.log(LevelWarning, message, fields)
}

// Error logs a message at error level.
func (e *Emitter) Error(message string, fields ...Field) {
	e.log(LevelError, message, fields)
}

// Critical logs a message at critical level.
func (e *Emitter) Critical(message string, fields ...Field) {
	e.log(LevelCritical, message, fields)
}

// Log logs a message at an arbitrary level.
func (e *Emitter) Log(level int64, message string, fields ...Field) {
	e.log(level, message, fields)
}

// log is the hot path: level filter, record construction, staging, and
// the two flush triggers. Records below the configured level allocate
// nothing.
func (e *Emitter) log(level int64, message string, fields []Field) {
	if level < e.logger.cfg.Level {
		return
	}

	e.buf = append(e.buf, Record{
		TimeNS:    time.Now().UnixNano(),
		Level:     level,
		Message:   message,
		Fields:    fields,
		EmitterID: e.id,
	})

	if int64(len(e.buf)) >= e.logger.cfg.EmitterBufferSize {
		e.flush()
		return
	}
	// Opportunistic time trigger: checked on each call, not via a timer,
	// so an idle emitter holds staged records until its next call or an
	// explicit Flush.
	if time.Since(e.lastFlush) >= e.logger.cfg.FlushInterval() {
		e.flush()
	}
}

// Flush transfers this emitter's staged records into the ring queue.
// It does not wait for the writer to drain them. Flushing an empty
// buffer is a no-op.
func (e *Emitter) Flush() {
	e.flush()
}

// flush hands the buffer to the queue record by record, preserving this
// emitter's FIFO order, then clears the buffer and resets the flush clock.
// Put blocks when the queue is full; once the queue is closed it refuses
// records, which are counted as dropped rather than raised.
func (e *Emitter) flush() {
	if len(e.buf) == 0 {
		return
	}
	for _, rec := range e.buf {
		if e.logger.queue.Put(rec) {
			e.logger.state.Enqueued.Add(1)
		} else {
			e.logger.state.Dropped.Add(1)
		}
	}
	e.buf = e.buf[:0]
	e.lastFlush = time.Now()
}
