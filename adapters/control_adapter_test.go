package adapters_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/asyncfifo/adapters"
)

func TestControlAdapterBasic(t *testing.T) {
	ctrl := adapters.NewControlAdapter()
	require.Empty(t, ctrl.GetConfig(), "expected empty config on init")

	require.NoError(t, ctrl.SetConfig(map[string]any{"capacity_exponent": 4}))
	assert.Equal(t, 4, ctrl.GetConfig()["capacity_exponent"])

	ctrl.SetMetric("queue.occupancy", 2)
	ctrl.AddMetric("queue.write_drops", 3)
	stats := ctrl.Stats()
	assert.Equal(t, 2, stats["queue.occupancy"])
	assert.Equal(t, int64(3), stats["queue.write_drops"])

	// Platform probes land under the debug prefix.
	assert.Contains(t, stats, "debug.platform.cpus")

	called := false
	ctrl.OnReload(func() { called = true })
	require.NoError(t, ctrl.SetConfig(map[string]any{"telemetry_interval_ms": 25}))
	assert.True(t, called, "reload hook must fire on SetConfig")
}

func TestControlAdapterDebugProbe(t *testing.T) {
	ctrl := adapters.NewControlAdapter()
	ctrl.RegisterDebugProbe("queue.state", func() any { return map[string]any{"occupancy": 1} })

	stats := ctrl.Stats()
	probe, ok := stats["debug.queue.state"].(map[string]any)
	require.True(t, ok, "probe output missing or mistyped: %#v", stats["debug.queue.state"])
	assert.Equal(t, 1, probe["occupancy"])
}

func TestAffinityAdapterTracksBinding(t *testing.T) {
	aff := adapters.NewAffinityAdapter()
	cpu, pinned := aff.Get()
	assert.Equal(t, -1, cpu)
	assert.False(t, pinned)

	// Pinning may be unsupported on the build platform; state must only
	// change when the platform call succeeded.
	if err := aff.Pin(0); err == nil {
		cpu, pinned = aff.Get()
		assert.Equal(t, 0, cpu)
		assert.True(t, pinned)
		require.NoError(t, aff.Unpin())
		_, pinned = aff.Get()
		assert.False(t, pinned)
	} else {
		_, pinned = aff.Get()
		assert.False(t, pinned, "failed Pin must not record a binding")
	}
}
