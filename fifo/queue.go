// File: fifo/queue.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Generic SPSC queue assembled from the four core pieces: slot storage, the
// two pointer engines, and one relay per direction. The queue type itself
// only moves element values; admission, ordering, and cross-context
// visibility are entirely the engines' and relays' business.

package fifo

import "github.com/momentics/asyncfifo/api"

// Ensure compile-time interface compliance.
var _ api.Queue[any] = (*Queue[any])(nil)

// Queue is a fixed-capacity single-producer/single-consumer FIFO over typed
// elements. Producer-context methods and consumer-context methods may run
// concurrently with each other without any external synchronization, but
// each group must stay on its single goroutine.
type Queue[T any] struct {
	geo   geometry
	store storage[T]

	wRelay relay // write index: producer publishes, consumer clocks and reads
	rRelay relay // read index: consumer publishes, producer clocks and reads

	p producer // producer-context block
	c consumer // consumer-context block

	out T // consumer-owned output register; see TryRead
}

// New allocates a queue with capacity 2^capExp. The exponent must not
// exceed 30 so that carry-bit index arithmetic fits uint32; anything larger
// is a configuration bug, so it panics the way the rest of the library's
// ring constructors do.
func New[T any](capExp uint) *Queue[T] {
	if !validCapacityExponent(capExp) {
		panic("fifo: capacity exponent must be at most 30")
	}
	g := newGeometry(capExp)
	q := &Queue[T]{geo: g, store: newStorage[T](g.capacity)}

	// Wire the engines: each side's incoming relay is the one the opposite
	// side publishes into. Field-wise init keeps the atomics in place.
	q.p.geo = g
	q.p.in = &q.rRelay
	q.p.out = &q.wRelay
	q.c.geo = g
	q.c.in = &q.wRelay
	q.c.out = &q.rRelay
	return q
}

// TryWrite stores v iff the queue is not full, else it is a silent no-op
// returning false. Producer context only. Each call is one producer step.
func (q *Queue[T]) TryWrite(v T) bool {
	slot, ok := q.p.begin()
	if !ok {
		return false
	}
	q.store.write(slot, v)
	q.p.commit()
	return true
}

// Full reports the producer-side flag. Advisory: consult before TryWrite.
// Producer context only; each call is one producer step, so a change made
// by the consumer settles here within two calls.
func (q *Queue[T]) Full() bool {
	q.p.step()
	return q.p.full()
}

// TryRead removes the oldest unread element iff the queue is not empty,
// else it is a silent no-op returning the zero value and false. Consumer
// context only. The returned value is the output register content after the
// read step completed — registered output, never a pass-through of a slot
// the producer might still be filling.
func (q *Queue[T]) TryRead() (T, bool) {
	slot, ok := q.c.begin()
	if !ok {
		var zero T
		return zero, false
	}
	q.out = q.store.read(slot)
	q.c.commit()
	return q.out, true
}

// Empty reports the consumer-side flag. Advisory: consult before TryRead.
// Consumer context only; each call is one consumer step.
func (q *Queue[T]) Empty() bool {
	q.c.step()
	return q.c.empty()
}

// Output returns the output register: the value latched by the most recent
// accepted read. Consumer context only. Resets do not clear it.
func (q *Queue[T]) Output() T { return q.out }

// TryWriteBatch writes elements from vs in order until the queue refuses
// one, returning how many were accepted. Producer context only.
func (q *Queue[T]) TryWriteBatch(vs []T) int {
	for i, v := range vs {
		if !q.TryWrite(v) {
			return i
		}
	}
	return len(vs)
}

// TryReadBatch fills dst in order until the queue refuses a read, returning
// how many elements were delivered. Consumer context only.
func (q *Queue[T]) TryReadBatch(dst []T) int {
	for i := range dst {
		v, ok := q.TryRead()
		if !ok {
			return i
		}
		dst[i] = v
	}
	return len(dst)
}

// ResetProducerSide clears the write index and its outgoing published
// pointer, nothing else. Safe while the consumer is mid-settle; the
// consumer's view re-settles within its next two steps.
func (q *Queue[T]) ResetProducerSide() { q.p.reset() }

// ResetConsumerSide is the consumer-side mirror of ResetProducerSide.
func (q *Queue[T]) ResetConsumerSide() { q.c.reset() }

// Len estimates occupancy from the two published pointers. Callable from
// any goroutine; the estimate lags the owning contexts, never exceeding the
// capacity bound in either direction.
func (q *Queue[T]) Len() int {
	return int(q.geo.distance(q.wRelay.peek(), q.rRelay.peek()))
}

// Cap returns the fixed capacity.
func (q *Queue[T]) Cap() int { return int(q.geo.capacity) }

// State assembles a diagnostic snapshot from published cells and counters.
// Callable from any goroutine.
func (q *Queue[T]) State() api.QueueState {
	return snapshotState(q.geo, 0, &q.wRelay, &q.rRelay, &q.p, &q.c)
}
