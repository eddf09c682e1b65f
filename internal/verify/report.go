// File: internal/verify/report.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package verify

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/momentics/asyncfifo/api"
)

// Report summarizes one harness run. RunID ties a report to its log lines
// when many runs execute in one process.
type Report struct {
	RunID     string
	Mode      string
	Seed      int64
	StartedAt time.Time
	Duration  time.Duration

	Writes        uint64
	Reads         uint64
	WriteRefusals uint64
	ReadRefusals  uint64
	Resets        uint64

	Final api.QueueState
}

func newReport(mode string, seed int64) Report {
	return Report{
		RunID:     uuid.NewString(),
		Mode:      mode,
		Seed:      seed,
		StartedAt: time.Now(),
	}
}

// Throughput returns delivered elements per second, zero for an empty or
// instantaneous run.
func (r Report) Throughput() float64 {
	if r.Duration <= 0 {
		return 0
	}
	return float64(r.Reads) / r.Duration.Seconds()
}

// String renders a single log-friendly line.
func (r Report) String() string {
	return fmt.Sprintf("verify %s run=%s seed=%d writes=%d reads=%d refusals=%d/%d resets=%d dur=%s rate=%.0f/s",
		r.Mode, r.RunID, r.Seed, r.Writes, r.Reads, r.WriteRefusals, r.ReadRefusals, r.Resets, r.Duration, r.Throughput())
}
