// File: fifo/producer.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Producer pointer engine. Owns the write index and decides whether a write
// is admitted. Carries no element data: queue types call begin, move the
// value into the granted slot themselves, then call commit so the index is
// released strictly after the slot is filled.

package fifo

import "sync/atomic"

// producer state is written only by the producer context, except for the
// diagnostic counters which are atomic so snapshots may read them from
// anywhere.
type producer struct {
	geo geometry
	idx uint32 // write index, capacity bits + carry bit

	in  *relay // consumer read index relayed into this context
	out *relay // this side's publication of the write index

	drops  atomic.Uint64 // writes refused while full
	resets atomic.Uint64
	_      [40]byte // pad the producer block away from neighbors
}

// step clocks the incoming relay once. Every producer-context operation
// counts as exactly one step, which is what bounds the settle window.
func (p *producer) step() { p.in.clock() }

// full evaluates the producer-side flag against the settled consumer index:
// the two indices differ by exactly capacity, carry bit accounted for by the
// modulo-2x-capacity distance.
func (p *producer) full() bool {
	return p.geo.distance(p.idx, p.in.synced()) == p.geo.capacity
}

// begin runs one write step. It returns the granted slot address and true
// when the write may proceed; on a full queue it counts the refusal and
// grants nothing. The index does not move until commit.
func (p *producer) begin() (uint32, bool) {
	p.step()
	if p.full() {
		p.drops.Add(1)
		return 0, false
	}
	return p.geo.slot(p.idx), true
}

// commit advances the write index and releases it to the consumer side.
// Must follow a granted begin, after the slot has been filled.
func (p *producer) commit() {
	p.idx = p.geo.next(p.idx)
	p.out.publish(p.idx)
}

// reset clears the producer's owned index and its outgoing published
// pointer, nothing else. The incoming relay stages are left to re-settle on
// subsequent steps; until then the local view may be stale, never torn.
func (p *producer) reset() {
	p.idx = 0
	p.out.publish(0)
	p.resets.Add(1)
}
