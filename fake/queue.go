// Package fake
// Author: momentics <momentics@gmail.com>
//
// Fake queue implementation for testing. MutexQueue satisfies api.Queue
// with a plain lock and a slice, so its flags are exact rather than
// relay-delayed. Differential tests and benchmarks use it as the
// behavioral reference.

package fake

import (
	"sync"

	"github.com/momentics/asyncfifo/api"
)

var _ api.Queue[any] = (*MutexQueue[any])(nil)

// MutexQueue is a locked bounded FIFO with the same refusal semantics as
// the lock-free queue but none of its visibility latency.
type MutexQueue[T any] struct {
	mu   sync.Mutex
	buf  []T
	cap  int
	out  T
	wDrops, rDrops uint64
	pResets, cResets uint64
	writes, reads uint64
}

// NewMutexQueue creates a reference queue with the given capacity, which
// does not have to be a power of two.
func NewMutexQueue[T any](capacity int) *MutexQueue[T] {
	if capacity < 1 {
		panic("fake: capacity must be positive")
	}
	return &MutexQueue[T]{buf: make([]T, 0, capacity), cap: capacity}
}

func (q *MutexQueue[T]) TryWrite(v T) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.buf) >= q.cap {
		q.wDrops++
		return false
	}
	q.buf = append(q.buf, v)
	q.writes++
	return true
}

func (q *MutexQueue[T]) TryRead() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.buf) == 0 {
		q.rDrops++
		var zero T
		return zero, false
	}
	q.out = q.buf[0]
	q.buf = q.buf[1:]
	q.reads++
	return q.out, true
}

func (q *MutexQueue[T]) Full() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.buf) >= q.cap
}

func (q *MutexQueue[T]) Empty() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.buf) == 0
}

// Output mirrors the registered-output accessor of the real queue.
func (q *MutexQueue[T]) Output() T {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.out
}

func (q *MutexQueue[T]) ResetProducerSide() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.buf = q.buf[:0]
	q.pResets++
}

func (q *MutexQueue[T]) ResetConsumerSide() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.buf = q.buf[:0]
	q.cResets++
}

func (q *MutexQueue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.buf)
}

func (q *MutexQueue[T]) Cap() int { return q.cap }

func (q *MutexQueue[T]) State() api.QueueState {
	q.mu.Lock()
	defer q.mu.Unlock()
	occ := len(q.buf)
	return api.QueueState{
		Capacity:       q.cap,
		PublishedWrite: uint32(q.writes),
		PublishedRead:  uint32(q.reads),
		Occupancy:      occ,
		Full:           occ >= q.cap,
		Empty:          occ == 0,
		WriteDrops:     q.wDrops,
		ReadDrops:      q.rDrops,
		ProducerResets: q.pResets,
		ConsumerResets: q.cResets,
	}
}
