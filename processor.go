// FILE: processor.go
package rapidlog

// processQueue is the writer loop, the single consumer of the ring queue.
// It runs on its own goroutine for the lifetime of the Logger. Each
// iteration drains up to BatchSize records, bounded by the flush interval
// so the loop also doubles as a periodic shutdown check.
func (l *Logger) processQueue() {
	defer func() {
		l.state.WriterExited.Store(true)
		close(l.writerDone)
	}()

	ser := newSerializer()
	interval := l.cfg.FlushInterval()

	for {
		batch := l.queue.GetMany(int(l.cfg.BatchSize), interval)
		if len(batch) == 0 {
			if l.state.ShutdownCalled.Load() {
				return
			}
			continue
		}
		l.writeBatch(ser, batch)
	}
}

// writeBatch encodes a batch to newline-delimited JSON and writes it to
// the sink in one call, then flushes the sink. Encoding faults are
// contained per record: a bad field set degrades that one record to a
// fallback line, never the batch and never the loop. Sink write failures
// are outside the core contract and are only reported via internalLog
// and the SinkErrors counter.
func (l *Logger) writeBatch(ser *serializer, batch []Record) {
	ser.reset()
	for _, rec := range batch {
		if ser.appendRecord(rec) {
			l.state.Fallbacks.Add(1)
		}
	}

	if _, err := l.cfg.Sink.Write(ser.buf); err != nil {
		l.state.SinkErrors.Add(1)
		l.internalLog("failed to write batch to sink: %v\n", err)
		return
	}
	l.state.BatchesOut.Add(1)
	l.state.LinesOut.Add(uint64(len(batch)))

	l.syncSink()
}

// syncSink flushes the sink when it supports it. bufio-style writers
// expose Flush, files expose Sync; a plain writer needs neither.
func (l *Logger) syncSink() {
	switch s := l.cfg.Sink.(type) {
	case flusher:
		if err := s.Flush(); err != nil {
			l.state.SinkErrors.Add(1)
			l.internalLog("failed to flush sink: %v\n", err)
		}
	case syncer:
		// stdout and terminals reject fsync on some platforms; best effort
		_ = s.Sync()
	}
}
