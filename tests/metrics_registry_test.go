// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

// metrics_registry_test.go — Control.MetricsRegistry basic set/get coverage.
package tests

import (
	"testing"
	"time"

	"github.com/momentics/asyncfifo/control"
)

func TestMetricsRegistry_Basic(t *testing.T) {
	reg := control.NewMetricsRegistry()
	reg.Set("queue.occupancy", int64(42))
	reg.Set("queue.label", "soak")

	metrics := reg.GetSnapshot()
	if metrics["queue.occupancy"] != int64(42) {
		t.Error("MetricsRegistry: value mismatch")
	}
	if metrics["queue.label"] != "soak" {
		t.Error("MetricsRegistry: string value mismatch")
	}
}

func TestMetricsRegistry_AddAccumulates(t *testing.T) {
	reg := control.NewMetricsRegistry()
	reg.Add("driver.moves", 3)
	reg.Add("driver.moves", 4)
	if got := reg.GetSnapshot()["driver.moves"]; got != int64(7) {
		t.Errorf("Add did not accumulate: %v", got)
	}

	// Add over a non-integer value restarts the count rather than panicking.
	reg.Set("driver.moves", "broken")
	reg.Add("driver.moves", 2)
	if got := reg.GetSnapshot()["driver.moves"]; got != int64(2) {
		t.Errorf("Add over non-integer: %v", got)
	}
}

func TestMetricsRegistry_UpdatedAt(t *testing.T) {
	reg := control.NewMetricsRegistry()
	before := reg.UpdatedAt()
	time.Sleep(time.Millisecond)
	reg.Set("queue.full", true)
	if !reg.UpdatedAt().After(before) {
		t.Error("UpdatedAt did not advance on Set")
	}
}
