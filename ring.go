// FILE: ring.go
package rapidlog

import (
	"sync"
	"time"
)

// RingQueue is a bounded multi-producer/single-consumer circular buffer of
// Records. Producers block on Put while the queue is full, which is the
// backpressure mechanism bounding memory use. The single consumer drains
// with GetMany in batches.
//
// Internal state is guarded by one mutex with two condition variables
// (notFull for producers, notEmpty for the consumer).
type RingQueue struct {
	mu       sync.Mutex
	notFull  *sync.Cond
	notEmpty *sync.Cond

	buf      []Record
	capacity int
	head     int
	tail     int
	size     int
	closed   bool
}

// NewRingQueue creates a queue holding at most capacity records.
func NewRingQueue(capacity int) (*RingQueue, error) {
	if capacity <= 0 {
		return nil, fmtErrorf("queue capacity must be positive: %d", capacity)
	}
	q := &RingQueue{
		buf:      make([]Record, capacity),
		capacity: capacity,
	}
	q.notFull = sync.NewCond(&q.mu)
	q.notEmpty = sync.NewCond(&q.mu)
	return q, nil
}

// Put inserts a record, blocking while the queue is full and open.
// It returns false without inserting once the queue has been closed.
func (q *RingQueue) Put(rec Record) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	for q.size == q.capacity && !q.closed {
		q.notFull.Wait()
	}
	if q.closed {
		return false
	}

	q.buf[q.tail] = rec
	q.tail = (q.tail + 1) % q.capacity
	q.size++
	q.notEmpty.Signal()
	return true
}

// GetMany dequeues up to max records in FIFO order. If the queue is empty
// and open it waits up to timeout for a record to arrive; an empty result
// is not an error, it means "nothing ready, check shutdown and retry".
// On a closed empty queue it returns immediately.
func (q *RingQueue) GetMany(max int, timeout time.Duration) []Record {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.size == 0 && !q.closed && timeout > 0 {
		// sync.Cond has no timed wait; a timer broadcast bounds the wait.
		// The callback acquires the mutex, so it cannot fire between the
		// size check and the Wait releasing the lock.
		timer := time.AfterFunc(timeout, func() {
			q.mu.Lock()
			q.notEmpty.Broadcast()
			q.mu.Unlock()
		})
		q.notEmpty.Wait()
		timer.Stop()
	}
	if q.size == 0 {
		return nil
	}

	take := q.size
	if take > max {
		take = max
	}
	out := make([]Record, take)
	for i := 0; i < take; i++ {
		out[i] = q.buf[q.head]
		q.buf[q.head] = Record{} // release field references
		q.head = (q.head + 1) % q.capacity
	}
	q.size -= take
	q.notFull.Broadcast()
	return out
}

// Close marks the queue closed and wakes every blocked producer and the
// consumer. Idempotent. Records already queued remain drainable.
func (q *RingQueue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.closed = true
	q.notEmpty.Broadcast()
	q.notFull.Broadcast()
}

// Len returns the number of queued records.
func (q *RingQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.size
}

// Cap returns the queue capacity.
func (q *RingQueue) Cap() int {
	return q.capacity
}
