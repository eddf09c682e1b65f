// File: fifo/relay.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Cross-context pointer relay. One instance per direction republishes the
// source side's index into the destination side without any shared timing
// reference. The hardware original guards against torn samples with a
// minimal-change pointer encoding; here a single atomically published word
// gives the same old-value-or-new-value guarantee, so plain binary indices
// can cross the boundary directly.

package fifo

import "sync/atomic"

// relay is a fixed-depth, two-stage pipeline between execution contexts.
//
// Ownership is split down the middle: cell is written only by the source
// context and read only by the destination's clock step, while stage1 and
// stage2 are plain fields touched exclusively by the destination. That
// single-writer/single-reader split is the whole synchronization story —
// no lock, no CAS, no retry loop.
//
// Evaluators must consume stage2 only. stage1 is the sampling stage and may
// trail the cell by one step; exposing it would leak an unsettled view.
// Worst-case propagation of a source update into stage2 is two destination
// steps after the release store lands.
type relay struct {
	cell atomic.Uint32 // source-published index; release store, acquire load
	_    [60]byte      // keep the shared cell off the destination's lines

	stage1 uint32 // destination-owned sampling stage
	stage2 uint32 // destination-owned settled stage; the published snapshot
}

// publish releases the source index into the shared cell. Called by the
// source context after its own state change; sync/atomic stores are
// sequentially consistent, a superset of the release ordering needed for
// slot data written before publish to be visible after an acquire load.
func (s *relay) publish(idx uint32) { s.cell.Store(idx) }

// clock advances the pipeline by one destination step: stage2 takes the
// previous sample, stage1 takes a fresh acquire load of the cell.
func (s *relay) clock() {
	s.stage2 = s.stage1
	s.stage1 = s.cell.Load()
}

// synced returns the settled remote index. Destination context only.
func (s *relay) synced() uint32 { return s.stage2 }

// peek returns the last published value without clocking the pipeline.
// Diagnostic use from any context; never feeds flag evaluation.
func (s *relay) peek() uint32 { return s.cell.Load() }
