// Copyright 2025 momentics@gmail.com
// License: Apache 2.0

// property_queue_concurrent_test.go — Property-based two-goroutine queue test.
package tests

import (
	"testing"
	"time"

	"github.com/momentics/asyncfifo/fifo"
)

// TestQueue_PropertyConcurrent runs the queue in its intended shape: exactly
// one producer goroutine and one consumer goroutine. The consumer must see
// 0..N-1 in order with no loss and no duplication, whatever the interleaving.
func TestQueue_PropertyConcurrent(t *testing.T) {
	const N = 200000
	q := fifo.New[int](5)

	go func() {
		for i := 0; i < N; i++ {
			for !q.TryWrite(i) {
				// Full or stale view; either way the consumer will make room.
			}
		}
	}()

	want := 0
	deadline := time.Now().Add(30 * time.Second)
	for want < N {
		v, ok := q.TryRead()
		if !ok {
			if time.Now().After(deadline) {
				t.Fatalf("stalled at element %d of %d", want, N)
			}
			continue
		}
		if v != want {
			t.Fatalf("got %d, want %d: order broken", v, want)
		}
		want++
	}

	// Everything delivered; after the consumer's view settles the queue
	// must report empty and hold no occupancy.
	q.Empty()
	if !q.Empty() {
		t.Error("queue not empty after full drain")
	}
	if got := q.Len(); got != 0 {
		t.Errorf("Len()=%d after full drain", got)
	}
}

// TestWordQueue_PropertyConcurrent drives the fixed-width flavor the same
// way, with each word carrying its sequence number in the first byte region.
func TestWordQueue_PropertyConcurrent(t *testing.T) {
	const N = 100000
	q, err := fifo.NewWord(5, 4)
	if err != nil {
		t.Fatal(err)
	}

	go func() {
		word := make([]byte, 4)
		for i := 0; i < N; i++ {
			word[0] = byte(i)
			word[1] = byte(i >> 8)
			word[2] = byte(i >> 16)
			word[3] = byte(i >> 24)
			for !q.TryWrite(word) {
			}
		}
	}()

	dst := make([]byte, 4)
	want := 0
	deadline := time.Now().Add(30 * time.Second)
	for want < N {
		if !q.CopyRead(dst) {
			if time.Now().After(deadline) {
				t.Fatalf("stalled at word %d of %d", want, N)
			}
			continue
		}
		got := int(dst[0]) | int(dst[1])<<8 | int(dst[2])<<16 | int(dst[3])<<24
		if got != want {
			t.Fatalf("got word %d, want %d: order broken", got, want)
		}
		want++
	}
}
