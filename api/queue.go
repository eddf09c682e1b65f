// File: api/queue.go
// Package api defines the public contracts of the asyncfifo library.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Advisory-flag FIFO contracts. Callers consult Full/Empty before issuing
// TryWrite/TryRead; a write attempted while full and a read attempted while
// empty are defined, silent no-ops rather than errors.

package api

// Queue is the single-producer/single-consumer FIFO contract.
//
// Exactly one goroutine may act as the producer and exactly one as the
// consumer. The two sides need no common clock, scheduler, or progress
// guarantee: either may stall arbitrarily long without corrupting the
// other's view.
//
// Producer-context methods: TryWrite, Full, ResetProducerSide.
// Consumer-context methods: TryRead, Empty, ResetConsumerSide.
// Cap, Len and State are diagnostic and may be called from anywhere.
type Queue[T any] interface {
	// TryWrite stores v and consumes a free slot iff the queue is not full.
	// Returns false, changing nothing, otherwise.
	TryWrite(v T) bool

	// Full reports whether the producer-side view shows no free slot.
	// Advisory: consult before TryWrite.
	Full() bool

	// TryRead removes and returns the oldest unread value iff the queue is
	// not empty. The returned value is registered output: it is the state of
	// the consumer's output register after the read step completed.
	TryRead() (T, bool)

	// Empty reports whether the consumer-side view shows nothing unread.
	// Advisory: consult before TryRead.
	Empty() bool

	// ResetProducerSide clears the producer's own index and its outgoing
	// published pointer. Asynchronous and independent of the consumer side.
	ResetProducerSide()

	// ResetConsumerSide clears the consumer's own index and its outgoing
	// published pointer. Asynchronous and independent of the producer side.
	ResetConsumerSide()

	// Len estimates the number of stored-but-unread elements from the two
	// published pointers. May lag either side by a bounded settle window.
	Len() int

	// Cap returns the fixed capacity, always a power of two.
	Cap() int

	// State returns a diagnostic snapshot assembled from published state.
	State() QueueState
}
