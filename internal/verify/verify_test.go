// File: internal/verify/verify_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package verify

import (
	"runtime"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunScriptDefault(t *testing.T) {
	rep, err := RunScript(DefaultScript())
	require.NoError(t, err)

	assert.Equal(t, "script", rep.Mode)
	assert.Positive(t, rep.Writes)
	assert.Positive(t, rep.Reads)
	// Reads can never outrun writes; resets may discard the difference.
	assert.LessOrEqual(t, rep.Reads, rep.Writes)
	assert.Positive(t, rep.Duration)

	_, err = uuid.Parse(rep.RunID)
	assert.NoError(t, err, "run id must be a uuid")
	assert.Contains(t, rep.String(), "verify script")
}

func TestRunScriptSeedsAreReproducible(t *testing.T) {
	cfg := ScriptConfig{Seed: 77, Steps: 5000, CapacityExponent: 2}
	a, err := RunScript(cfg)
	require.NoError(t, err)
	b, err := RunScript(cfg)
	require.NoError(t, err)

	assert.Equal(t, a.Writes, b.Writes)
	assert.Equal(t, a.Reads, b.Reads)
	assert.Equal(t, a.Resets, b.Resets)
	assert.NotEqual(t, a.RunID, b.RunID)
}

func TestRunScriptRejectsNonPositiveSteps(t *testing.T) {
	_, err := RunScript(ScriptConfig{Seed: 1, Steps: 0, CapacityExponent: 3})
	require.Error(t, err)
}

func TestRunSoakMovesEverythingOnce(t *testing.T) {
	cfg := SoakConfig{Elements: 200_000, CapacityExponent: 4, ProducerCPU: -1, ConsumerCPU: -1}
	rep, err := RunSoak(cfg)
	require.NoError(t, err)

	assert.Equal(t, uint64(cfg.Elements), rep.Writes)
	assert.Equal(t, uint64(cfg.Elements), rep.Reads)
	assert.Equal(t, 0, rep.Final.Occupancy)
	assert.Equal(t, "soak", rep.Mode)
	assert.Positive(t, rep.Throughput())
}

func TestRunSoakPinned(t *testing.T) {
	if runtime.NumCPU() < 2 {
		t.Skip("needs two CPUs to pin both contexts")
	}
	cfg := SoakConfig{Elements: 100_000, CapacityExponent: 5, ProducerCPU: 0, ConsumerCPU: 1}
	rep, err := RunSoak(cfg)
	require.NoError(t, err)
	assert.Equal(t, rep.Writes, rep.Reads)
}

func TestRunSoakRejectsNonPositiveElements(t *testing.T) {
	_, err := RunSoak(SoakConfig{Elements: 0, CapacityExponent: 3})
	require.Error(t, err)
}
