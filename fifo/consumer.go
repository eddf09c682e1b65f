// File: fifo/consumer.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Consumer pointer engine, the mirror of the producer engine: owns the read
// index, decides whether a read is admitted. Queue types latch the slot into
// their output register between begin and commit, so the slot is vacated
// (index released) only after its value is safely registered.

package fifo

import "sync/atomic"

type consumer struct {
	geo geometry
	idx uint32 // read index, capacity bits + carry bit

	in  *relay // producer write index relayed into this context
	out *relay // this side's publication of the read index

	drops  atomic.Uint64 // reads refused while empty
	resets atomic.Uint64
	_      [40]byte
}

// step clocks the incoming relay once per consumer-context operation.
func (c *consumer) step() { c.in.clock() }

// empty evaluates the consumer-side flag: nothing unread when the local read
// index has caught up with the settled producer index.
func (c *consumer) empty() bool {
	return c.idx == c.in.synced()
}

// begin runs one read step. It returns the slot address holding the oldest
// unread element and true when the read may proceed; on an empty queue it
// counts the refusal and grants nothing.
func (c *consumer) begin() (uint32, bool) {
	c.step()
	if c.empty() {
		c.drops.Add(1)
		return 0, false
	}
	return c.geo.slot(c.idx), true
}

// commit advances the read index and releases it to the producer side.
// Must follow a granted begin, after the slot value has been latched.
func (c *consumer) commit() {
	c.idx = c.geo.next(c.idx)
	c.out.publish(c.idx)
}

// reset clears the consumer's owned index and its outgoing published
// pointer. The output register of the owning queue is deliberately not
// touched: reset clears pointers, not data.
func (c *consumer) reset() {
	c.idx = 0
	c.out.publish(0)
	c.resets.Add(1)
}
