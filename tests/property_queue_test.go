// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

// property_queue_test.go — Property-based tests for the SPSC queue.
package tests

import (
	"math/rand"
	"testing"

	"github.com/momentics/asyncfifo/fake"
	"github.com/momentics/asyncfifo/fifo"
)

// TestQueuePropertyBased performs randomized operations against a plain
// slice model. Sequential use settles every refusal within two flag polls,
// so after settling the queue must agree with the model exactly: same
// occupancy, same FIFO order, same flags.
func TestQueuePropertyBased(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		rnd := rand.New(rand.NewSource(seed))
		q := fifo.New[int](6)
		capacity := q.Cap()
		model := make([]int, 0, capacity)

		for i := 0; i < 5000; i++ {
			val := rnd.Intn(100000)
			switch op := rnd.Intn(100); {
			case op < 45: // write
				if q.TryWrite(val) {
					if len(model) >= capacity {
						t.Fatalf("seed %d step %d: write accepted with model at %d/%d", seed, i, len(model), capacity)
					}
					model = append(model, val)
					break
				}
				// Refusals are legal only while the producer view is stale.
				q.Full()
				if full := q.Full(); full != (len(model) == capacity) {
					t.Fatalf("seed %d step %d: settled full=%v, model %d/%d", seed, i, full, len(model), capacity)
				}
				if len(model) < capacity {
					if !q.TryWrite(val) {
						t.Fatalf("seed %d step %d: write refused after settling", seed, i)
					}
					model = append(model, val)
				}
			case op < 90: // read
				if v, ok := q.TryRead(); ok {
					if len(model) == 0 {
						t.Fatalf("seed %d step %d: read %d from empty model", seed, i, v)
					}
					if v != model[0] {
						t.Fatalf("seed %d step %d: read %d, model front %d", seed, i, v, model[0])
					}
					model = model[1:]
					break
				}
				q.Empty()
				if empty := q.Empty(); empty != (len(model) == 0) {
					t.Fatalf("seed %d step %d: settled empty=%v, model %d", seed, i, empty, len(model))
				}
				if len(model) > 0 {
					v, ok := q.TryRead()
					if !ok {
						t.Fatalf("seed %d step %d: read refused after settling", seed, i)
					}
					if v != model[0] {
						t.Fatalf("seed %d step %d: retry read %d, model front %d", seed, i, v, model[0])
					}
					model = model[1:]
				}
			case op < 97: // flag audit without moving data
				q.Full()
				q.Empty()
				if full := q.Full(); full != (len(model) == capacity) {
					t.Fatalf("seed %d step %d: audit full=%v, model %d/%d", seed, i, full, len(model), capacity)
				}
				if empty := q.Empty(); empty != (len(model) == 0) {
					t.Fatalf("seed %d step %d: audit empty=%v, model %d", seed, i, empty, len(model))
				}
			default: // paired reset, both sides back to zero
				q.ResetProducerSide()
				q.ResetConsumerSide()
				q.Full()
				q.Full()
				q.Empty()
				q.Empty()
				model = model[:0]
			}

			if got := q.Len(); got != len(model) {
				t.Fatalf("seed %d step %d: Len()=%d, model %d", seed, i, got, len(model))
			}
			if q.Len() < 0 || q.Len() > capacity {
				t.Fatalf("seed %d step %d: occupancy out of bounds: %d", seed, i, q.Len())
			}
		}
	}
}

// TestQueueDifferential drives the lock-free queue and the mutex reference
// through one op sequence. The reference has exact flags, so the lock-free
// side may refuse where the reference would not, but after settling both
// must agree on flags, values, occupancy and the output register.
func TestQueueDifferential(t *testing.T) {
	for seed := int64(100); seed < 106; seed++ {
		rnd := rand.New(rand.NewSource(seed))
		q := fifo.New[int](4)
		ref := fake.NewMutexQueue[int](q.Cap())

		for i := 0; i < 4000; i++ {
			val := rnd.Intn(100000)
			switch op := rnd.Intn(100); {
			case op < 47:
				if q.TryWrite(val) {
					if !ref.TryWrite(val) {
						t.Fatalf("seed %d step %d: queue accepted write, reference full", seed, i)
					}
					break
				}
				q.Full()
				if full := q.Full(); full != ref.Full() {
					t.Fatalf("seed %d step %d: settled full=%v, reference %v", seed, i, full, ref.Full())
				}
				if !ref.Full() {
					if !q.TryWrite(val) {
						t.Fatalf("seed %d step %d: write refused after settling", seed, i)
					}
					ref.TryWrite(val)
				}
			case op < 94:
				if v, ok := q.TryRead(); ok {
					rv, rok := ref.TryRead()
					if !rok {
						t.Fatalf("seed %d step %d: queue read %d, reference empty", seed, i, v)
					}
					if v != rv {
						t.Fatalf("seed %d step %d: queue read %d, reference %d", seed, i, v, rv)
					}
					if q.Output() != ref.Output() {
						t.Fatalf("seed %d step %d: output register %d, reference %d", seed, i, q.Output(), ref.Output())
					}
					break
				}
				q.Empty()
				if empty := q.Empty(); empty != ref.Empty() {
					t.Fatalf("seed %d step %d: settled empty=%v, reference %v", seed, i, empty, ref.Empty())
				}
				if !ref.Empty() {
					v, ok := q.TryRead()
					if !ok {
						t.Fatalf("seed %d step %d: read refused after settling", seed, i)
					}
					rv, _ := ref.TryRead()
					if v != rv {
						t.Fatalf("seed %d step %d: retry read %d, reference %d", seed, i, v, rv)
					}
				}
			default:
				q.ResetProducerSide()
				q.ResetConsumerSide()
				ref.ResetProducerSide()
				ref.ResetConsumerSide()
				q.Full()
				q.Full()
				q.Empty()
				q.Empty()
			}

			if q.Len() != ref.Len() {
				t.Fatalf("seed %d step %d: Len()=%d, reference %d", seed, i, q.Len(), ref.Len())
			}
		}
	}
}

// TestQueuePropertyBatch mirrors the element-wise property run with the
// batch entry points: a batch must move a prefix, in order, never more
// than the free space or the occupancy.
func TestQueuePropertyBatch(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	q := fifo.New[int](5)
	capacity := q.Cap()
	model := make([]int, 0, capacity)
	next := 0

	for i := 0; i < 3000; i++ {
		if rnd.Intn(2) == 0 {
			batch := make([]int, 1+rnd.Intn(capacity))
			for j := range batch {
				batch[j] = next
				next++
			}
			n := q.TryWriteBatch(batch)
			if n > capacity-len(model) {
				t.Fatalf("step %d: batch wrote %d with only %d free", i, n, capacity-len(model))
			}
			model = append(model, batch[:n]...)
			next -= len(batch) - n // unwritten tail is regenerated next round
		} else {
			dst := make([]int, 1+rnd.Intn(capacity))
			n := q.TryReadBatch(dst)
			if n > len(model) {
				t.Fatalf("step %d: batch read %d with model at %d", i, n, len(model))
			}
			for j := 0; j < n; j++ {
				if dst[j] != model[j] {
					t.Fatalf("step %d: batch read [%d]=%d, model %d", i, j, dst[j], model[j])
				}
			}
			model = model[n:]
		}

		if got := q.Len(); got != len(model) {
			t.Fatalf("step %d: Len()=%d, model %d", i, got, len(model))
		}
	}
}
