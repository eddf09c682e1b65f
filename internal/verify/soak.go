// File: internal/verify/soak.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package verify

import (
	"fmt"
	"runtime"
	"time"

	"github.com/momentics/asyncfifo/affinity"
	"github.com/momentics/asyncfifo/fifo"
)

// SoakConfig parameterizes a two-goroutine soak: the queue in its real
// shape, one producer context against one consumer context, no coordination
// beyond the queue itself.
type SoakConfig struct {
	Elements         int
	CapacityExponent uint

	// Logical CPUs to pin the contexts to; negative leaves a side unpinned.
	// Pinning failures are tolerated — the soak's correctness claims do not
	// depend on placement, only its latency profile does.
	ProducerCPU int
	ConsumerCPU int
}

// DefaultSoak moves a million elements through a capacity-32 queue,
// unpinned.
func DefaultSoak() SoakConfig {
	return SoakConfig{
		Elements:         1_000_000,
		CapacityExponent: 5,
		ProducerCPU:      -1,
		ConsumerCPU:      -1,
	}
}

// sideTally is what each context reports when it finishes.
type sideTally struct {
	moved    uint64
	refusals uint64
}

// pin binds the calling goroutine's thread to a CPU and returns the release
// function. A negative CPU or a platform refusal degrades to unpinned.
func pin(cpuID int) func() {
	if cpuID < 0 {
		return func() {}
	}
	runtime.LockOSThread()
	if err := affinity.SetAffinity(cpuID); err != nil {
		runtime.UnlockOSThread()
		return func() {}
	}
	return func() {
		_ = affinity.ClearAffinity()
		runtime.UnlockOSThread()
	}
}

// RunSoak drives one queue from two free-running goroutines and verifies the
// FIFO contract end to end: every element arrives exactly once, in order,
// with nothing left behind. The producer writes the monotone sequence
// 0..Elements-1; the consumer checks it. Refused operations spin with the
// adaptive backoff, so a stalled peer costs sleep time, never correctness.
func RunSoak(cfg SoakConfig) (Report, error) {
	rep := newReport("soak", 0)
	if cfg.Elements <= 0 {
		return rep, fmt.Errorf("verify: elements must be positive, got %d", cfg.Elements)
	}

	q := fifo.New[uint64](cfg.CapacityExponent)
	total := uint64(cfg.Elements)

	defer func(start time.Time) { rep.Duration = time.Since(start) }(rep.StartedAt)

	// The producer needs an explicit stop signal: if the consumer bails out
	// on a mismatch, the queue fills and the producer would spin forever.
	// The channel is polled only on the refusal path, off the accept path.
	stop := make(chan struct{})
	prodDone := make(chan sideTally, 1)

	go func() {
		release := pin(cfg.ProducerCPU)
		defer release()
		var tally sideTally
		bo := newBackoff()
		for i := uint64(0); i < total; {
			if q.TryWrite(i) {
				i++
				tally.moved++
				bo.hit()
				continue
			}
			tally.refusals++
			select {
			case <-stop:
				prodDone <- tally
				return
			default:
			}
			bo.idle()
		}
		prodDone <- tally
	}()

	release := pin(cfg.ConsumerCPU)
	defer release()

	var cons sideTally
	bo := newBackoff()
	for want := uint64(0); want < total; {
		v, ok := q.TryRead()
		if !ok {
			cons.refusals++
			bo.idle()
			continue
		}
		if v != want {
			close(stop)
			prod := <-prodDone
			rep.Writes, rep.Reads = prod.moved, cons.moved
			rep.WriteRefusals, rep.ReadRefusals = prod.refusals, cons.refusals
			return rep, fmt.Errorf("verify: received %d, want %d after %d reads", v, want, cons.moved)
		}
		want++
		cons.moved++
		bo.hit()
	}

	prod := <-prodDone
	rep.Writes, rep.Reads = prod.moved, cons.moved
	rep.WriteRefusals, rep.ReadRefusals = prod.refusals, cons.refusals
	rep.Final = q.State()

	if rep.Writes != rep.Reads {
		return rep, fmt.Errorf("verify: moved counts diverge, wrote %d read %d", rep.Writes, rep.Reads)
	}
	if rep.Final.Occupancy != 0 {
		return rep, fmt.Errorf("verify: %d elements left after full drain", rep.Final.Occupancy)
	}
	return rep, nil
}
