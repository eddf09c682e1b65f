// File: internal/verify/script.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package verify

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/eapache/queue"

	"github.com/momentics/asyncfifo/fifo"
)

// ScriptConfig parameterizes a deterministic differential run. The same
// seed always produces the same operation schedule.
type ScriptConfig struct {
	Seed             int64
	Steps            int
	CapacityExponent uint
}

// DefaultScript is the regression schedule used by tests and the soak
// example.
func DefaultScript() ScriptConfig {
	return ScriptConfig{Seed: 1, Steps: 50000, CapacityExponent: 4}
}

// RunScript drives one queue from a single goroutine with a seeded random
// mix of writes, reads, flag audits, and full resets, mirroring every step
// against an exact FIFO oracle. Because both pointer publications happen
// inside the accepted operation itself, sequential occupancy must match the
// oracle after every single step; any difference is reported with the step
// number so the seed reproduces it.
func RunScript(cfg ScriptConfig) (Report, error) {
	rep := newReport("script", cfg.Seed)
	if cfg.Steps <= 0 {
		return rep, fmt.Errorf("verify: steps must be positive, got %d", cfg.Steps)
	}

	q := fifo.New[uint64](cfg.CapacityExponent)
	oracle := queue.New()
	capacity := q.Cap()
	rng := rand.New(rand.NewSource(cfg.Seed))
	var next uint64

	defer func(start time.Time) { rep.Duration = time.Since(start) }(rep.StartedAt)

	for step := 0; step < cfg.Steps; step++ {
		switch op := rng.Intn(100); {
		case op < 47:
			if q.TryWrite(next) {
				if oracle.Length() >= capacity {
					return rep, fmt.Errorf("verify: step %d: write accepted with oracle at %d/%d", step, oracle.Length(), capacity)
				}
				oracle.Add(next)
				next++
				rep.Writes++
				break
			}
			rep.WriteRefusals++
			// A refusal is only legitimate while the producer view is
			// stale. Two producer steps settle it; then the flag and the
			// retry must both agree with the oracle.
			q.Full()
			if full := q.Full(); full != (oracle.Length() == capacity) {
				return rep, fmt.Errorf("verify: step %d: settled full=%v, oracle %d/%d", step, full, oracle.Length(), capacity)
			}
			if oracle.Length() < capacity {
				if !q.TryWrite(next) {
					return rep, fmt.Errorf("verify: step %d: write refused after settling", step)
				}
				oracle.Add(next)
				next++
				rep.Writes++
			}
		case op < 94:
			if v, ok := q.TryRead(); ok {
				if oracle.Length() == 0 {
					return rep, fmt.Errorf("verify: step %d: read %d from empty oracle", step, v)
				}
				if want := oracle.Remove().(uint64); v != want {
					return rep, fmt.Errorf("verify: step %d: read %d, oracle front %d", step, v, want)
				}
				rep.Reads++
				break
			}
			rep.ReadRefusals++
			q.Empty()
			if empty := q.Empty(); empty != (oracle.Length() == 0) {
				return rep, fmt.Errorf("verify: step %d: settled empty=%v, oracle %d", step, empty, oracle.Length())
			}
			if oracle.Length() > 0 {
				v, ok := q.TryRead()
				if !ok {
					return rep, fmt.Errorf("verify: step %d: read refused after settling", step)
				}
				if want := oracle.Remove().(uint64); v != want {
					return rep, fmt.Errorf("verify: step %d: retry read %d, oracle front %d", step, v, want)
				}
				rep.Reads++
			}
		case op < 97:
			// Flag audit without moving data.
			q.Full()
			q.Empty()
			if full := q.Full(); full != (oracle.Length() == capacity) {
				return rep, fmt.Errorf("verify: step %d: audit full=%v, oracle %d/%d", step, full, oracle.Length(), capacity)
			}
			if empty := q.Empty(); empty != (oracle.Length() == 0) {
				return rep, fmt.Errorf("verify: step %d: audit empty=%v, oracle %d", step, empty, oracle.Length())
			}
		default:
			q.ResetProducerSide()
			q.ResetConsumerSide()
			// Settle both incoming relays before resuming traffic. Until
			// then each side's view still holds the pre-reset peer pointer,
			// and acting on it yields the documented stale-read behavior,
			// which the oracle cannot model. Flag polls clock the relays
			// without moving data.
			q.Full()
			q.Full()
			q.Empty()
			q.Empty()
			for oracle.Length() > 0 {
				oracle.Remove()
			}
			rep.Resets++
		}

		if got := q.Len(); got != oracle.Length() {
			return rep, fmt.Errorf("verify: step %d: Len()=%d, oracle %d", step, got, oracle.Length())
		}
	}

	rep.Final = q.State()
	return rep, nil
}
