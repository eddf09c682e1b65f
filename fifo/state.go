// File: fifo/state.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package fifo

import "github.com/momentics/asyncfifo/api"

// snapshotState builds a diagnostic view from the published relay cells and
// the engines' atomic counters. It deliberately never touches stage or
// index fields, which belong to their owning contexts, so it is safe from
// any goroutine. The two cells are sampled one after the other, so the
// snapshot is approximate under load, and after a one-sided reset the raw
// pointer distance can transiently exceed capacity until the peer resets
// too. Full therefore tests >= rather than ==.
func snapshotState(g geometry, width int, w, r *relay, p *producer, c *consumer) api.QueueState {
	pw := w.peek()
	pr := r.peek()
	occ := g.distance(pw, pr)
	return api.QueueState{
		Capacity:       int(g.capacity),
		ElementWidth:   width,
		PublishedWrite: pw,
		PublishedRead:  pr,
		Occupancy:      int(occ),
		Full:           occ >= g.capacity,
		Empty:          occ == 0,
		WriteDrops:     p.drops.Load(),
		ReadDrops:      c.drops.Load(),
		ProducerResets: p.resets.Load(),
		ConsumerResets: c.resets.Load(),
	}
}
