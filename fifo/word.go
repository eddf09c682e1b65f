// File: fifo/word.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package fifo

import (
	"fmt"

	"github.com/momentics/asyncfifo/api"
)

// maxElementWidth bounds word size to keep slab allocation honest; widths
// beyond this are configuration typos, not workloads.
const maxElementWidth = 1 << 16

// WordQueue is the fixed-width flavor of Queue: every element is a byte
// word of the same configured width, stored in one contiguous slab. It is
// the shape used when element size is decided by configuration rather than
// by a Go type, e.g. when bridging framed records between goroutines.
//
// Same contract as Queue: one producer goroutine, one consumer goroutine,
// advisory flags, silent no-ops on refused operations.
type WordQueue struct {
	geo   geometry
	store wordStorage

	wRelay relay
	rRelay relay

	p producer
	c consumer

	reg []byte // consumer-owned output register, exactly width bytes
}

// NewWord allocates a word queue with capacity 2^capExp and the given
// element width in bytes. Unlike New, geometry here typically comes from
// loaded configuration, so violations surface as errors instead of panics.
func NewWord(capExp uint, width int) (*WordQueue, error) {
	if !validCapacityExponent(capExp) {
		return nil, fmt.Errorf("fifo: %w: exponent %d exceeds %d", api.ErrInvalidCapacity, capExp, maxCapacityExponent)
	}
	if width < 1 || width > maxElementWidth {
		return nil, fmt.Errorf("fifo: %w: %d bytes (want 1..%d)", api.ErrInvalidWidth, width, maxElementWidth)
	}
	g := newGeometry(capExp)
	q := &WordQueue{
		geo:   g,
		store: newWordStorage(g.capacity, width),
		reg:   make([]byte, width),
	}
	q.p.geo = g
	q.p.in = &q.rRelay
	q.p.out = &q.wRelay
	q.c.geo = g
	q.c.in = &q.wRelay
	q.c.out = &q.rRelay
	return q, nil
}

// Width returns the configured element width in bytes.
func (q *WordQueue) Width() int { return q.store.width }

// TryWrite stores one word iff the queue is not full. The word must be
// exactly Width bytes; a mismatch is a caller bug and panics. Producer
// context only.
func (q *WordQueue) TryWrite(word []byte) bool {
	if len(word) != q.store.width {
		panic(fmt.Sprintf("fifo: word length %d does not match queue width %d", len(word), q.store.width))
	}
	slot, ok := q.p.begin()
	if !ok {
		return false
	}
	q.store.write(slot, word)
	q.p.commit()
	return true
}

// Full reports the producer-side flag. Producer context only.
func (q *WordQueue) Full() bool {
	q.p.step()
	return q.p.full()
}

// TryRead removes the oldest unread word iff the queue is not empty. The
// returned slice aliases the output register and stays valid until the next
// accepted read; callers that need to hold the word longer use CopyRead.
// Consumer context only.
func (q *WordQueue) TryRead() ([]byte, bool) {
	slot, ok := q.c.begin()
	if !ok {
		return nil, false
	}
	q.store.readInto(slot, q.reg)
	q.c.commit()
	return q.reg, true
}

// CopyRead is TryRead with caller-owned destination memory. dst must hold
// at least Width bytes. The output register is latched as usual.
func (q *WordQueue) CopyRead(dst []byte) bool {
	if len(dst) < q.store.width {
		panic(fmt.Sprintf("fifo: destination length %d shorter than queue width %d", len(dst), q.store.width))
	}
	slot, ok := q.c.begin()
	if !ok {
		return false
	}
	q.store.readInto(slot, q.reg)
	q.c.commit()
	copy(dst, q.reg)
	return true
}

// Empty reports the consumer-side flag. Consumer context only.
func (q *WordQueue) Empty() bool {
	q.c.step()
	return q.c.empty()
}

// Output returns the output register: the word latched by the most recent
// accepted read. Consumer context only. Resets do not clear it.
func (q *WordQueue) Output() []byte { return q.reg }

// ResetProducerSide clears the write index and its published pointer.
func (q *WordQueue) ResetProducerSide() { q.p.reset() }

// ResetConsumerSide clears the read index and its published pointer.
func (q *WordQueue) ResetConsumerSide() { q.c.reset() }

// Len estimates occupancy from the published pointers; any goroutine.
func (q *WordQueue) Len() int {
	return int(q.geo.distance(q.wRelay.peek(), q.rRelay.peek()))
}

// Cap returns the fixed capacity in words.
func (q *WordQueue) Cap() int { return int(q.geo.capacity) }

// State assembles a diagnostic snapshot; any goroutine.
func (q *WordQueue) State() api.QueueState {
	return snapshotState(q.geo, q.store.width, &q.wRelay, &q.rRelay, &q.p, &q.c)
}
