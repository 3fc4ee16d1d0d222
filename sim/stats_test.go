package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crosslight"
)

func TestSummarize_FreeRun(t *testing.T) {
	ctrl := newReferenceController(t)
	// 10 full ring periods of 17 ticks
	trace := NewDriver(ctrl).Run(Script{{Units: 17 * 2 * 10}})
	summary := Summarize(trace)

	assert.Equal(t, uint64(170), summary.Ticks)

	// free-running durations are exact, so the deviation is zero
	expected := map[crosslight.Phase]float64{
		crosslight.PhaseNSGreen:  6,
		crosslight.PhaseNSYellow: 2,
		crosslight.PhaseAllRed1:  1,
		crosslight.PhaseEWGreen:  5,
		crosslight.PhaseEWYellow: 2,
		crosslight.PhaseAllRed2:  1,
	}
	for phase, mean := range expected {
		st, ok := summary.PerPhase[phase]
		require.True(t, ok, "missing stats for %s", phase)
		assert.InDelta(t, mean, st.MeanTicks, 1e-9, "phase %s", phase)
		assert.InDelta(t, 0, st.StdDevTicks, 1e-9, "phase %s", phase)
		assert.Greater(t, st.Entries, 0, "phase %s", phase)
	}
}

func TestSummarize_DutyCycles(t *testing.T) {
	ctrl := newReferenceController(t)
	trace := NewDriver(ctrl).Run(Script{{Units: 17 * 2 * 10}})
	summary := Summarize(trace)

	// over whole ring periods the duty cycles follow the durations
	assert.InDelta(t, 6.0/17.0, summary.DutyCycle["ns_green"], 0.02)
	assert.InDelta(t, 5.0/17.0, summary.DutyCycle["ew_green"], 0.02)
	assert.InDelta(t, 2.0/17.0, summary.DutyCycle["ns_yellow"], 0.02)
	assert.InDelta(t, 0, summary.DutyCycle["ped_walk"], 1e-9)

	var total float64
	for _, share := range summary.DutyCycle {
		total += share
	}
	assert.Less(t, total, 1.0, "all-red buffers keep every output off for part of the run")
}

func TestSummarize_ReferenceRun(t *testing.T) {
	ctrl := newReferenceController(t)
	trace := NewDriver(ctrl).Run(ReferenceScript())
	summary := Summarize(trace)

	// the single walk service runs its exact configured duration
	walk, ok := summary.PerPhase[crosslight.PhasePedWalk]
	require.True(t, ok)
	assert.Equal(t, 1, walk.Entries)
	assert.InDelta(t, 4, walk.MeanTicks, 1e-9)

	// the emergency all-red buffer is exact as well
	emgRed, ok := summary.PerPhase[crosslight.PhaseEmergencyAllRed]
	require.True(t, ok)
	assert.InDelta(t, 1, emgRed.MeanTicks, 1e-9)

	assert.Positive(t, summary.DutyCycle["ped_walk"])
}

func TestSummarize_EmptyTrace(t *testing.T) {
	summary := Summarize(&Trace{PhaseTicks: map[crosslight.Phase]uint64{}})

	assert.Empty(t, summary.PerPhase)
	for _, share := range summary.DutyCycle {
		assert.Zero(t, share)
	}
}
