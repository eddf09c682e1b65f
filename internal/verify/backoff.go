// File: internal/verify/backoff.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package verify

import (
	"runtime"
	"time"
)

// backoff paces a worker spinning on a refused queue operation. Short
// stalls cost a microsecond sleep, longer ones degrade to yielding the
// processor, and any successful operation snaps the window back to the
// minimum. Goroutine-local, so no atomics.
type backoff struct {
	ns int64
}

func newBackoff() backoff { return backoff{ns: 1} }

// idle burns one wait quantum and widens the window, capped at a
// millisecond.
func (b *backoff) idle() {
	if b.ns < 1000 {
		time.Sleep(time.Microsecond)
	} else {
		runtime.Gosched()
	}
	b.ns *= 2
	if b.ns > 1_000_000 {
		b.ns = 1_000_000
	}
}

// hit resets the window after a successful operation.
func (b *backoff) hit() { b.ns = 1 }
