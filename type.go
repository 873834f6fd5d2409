// FILE: type.go
package rapidlog

import (
	"sync/atomic"
)

// Record is one log event. Records are built by the facade at call time,
// staged in an Emitter buffer, moved through the RingQueue, and consumed
// by the writer goroutine. They are never mutated after creation.
type Record struct {
	TimeNS    int64
	Level     int64
	Message   string
	Fields    []Field
	EmitterID int64
}

// Field is a single key/value pair attached to a Record. A []Field
// preserves the caller's field order, unlike a map.
type Field struct {
	Key   string
	Value any
}

// F constructs a Field.
func F(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// flusher is implemented by sinks with explicit buffer flushing (bufio.Writer)
type flusher interface {
	Flush() error
}

// syncer is implemented by sinks backed by files (os.File)
type syncer interface {
	Sync() error
}

// State encapsulates the runtime state of the logger
type State struct {
	ShutdownCalled atomic.Bool
	WriterExited   atomic.Bool

	// Operational counters
	Enqueued      atomic.Uint64 // Records handed to the ring queue
	Dropped       atomic.Uint64 // Records refused by a closed queue
	BatchesOut    atomic.Uint64 // Batches written to the sink
	Fallbacks     atomic.Uint64 // Records emitted as fallback lines
	SinkErrors    atomic.Uint64 // Failed sink writes
	LinesOut      atomic.Uint64 // Records written to the sink
	EmitterSerial atomic.Int64  // Emitter id allocator
}

// Stats is a point-in-time snapshot of the logger's operational counters.
type Stats struct {
	Enqueued   uint64
	Dropped    uint64
	BatchesOut uint64
	LinesOut   uint64
	Fallbacks  uint64
	SinkErrors uint64
}
