package crosslight

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsObserver_NormalRing(t *testing.T) {
	c := newTestController(t)
	metrics := NewMetricsObserver()
	c.AddObserver(metrics)

	clockTicks(c, Inputs{}, 17)

	ticks := metrics.GetPhaseTickCounts()
	assert.Equal(t, uint64(6), ticks[PhaseNSGreen])
	assert.Equal(t, uint64(2), ticks[PhaseNSYellow])
	assert.Equal(t, uint64(1), ticks[PhaseAllRed1])
	assert.Equal(t, uint64(5), ticks[PhaseEWGreen])
	assert.Equal(t, uint64(2), ticks[PhaseEWYellow])
	assert.Equal(t, uint64(1), ticks[PhaseAllRed2])

	entries := metrics.GetPhaseEntryCounts()
	assert.Equal(t, 1, entries[PhaseNSYellow])
	assert.Equal(t, 1, entries[PhaseNSGreen], "ring closes back into NS_GREEN")

	transitions := metrics.GetTransitionCounts()
	assert.Equal(t, 1, transitions["NS_GREEN->NS_YELLOW"])
	assert.Equal(t, 1, transitions["ALL_RED_2->NS_GREEN"])
	assert.Equal(t, 0, transitions["ALL_RED_1->PED_WALK"])

	assert.Equal(t, 0, metrics.GetPreemptionCount())
	assert.Equal(t, 0, metrics.GetErrorCount())
}

func TestMetricsObserver_CountsPreemptionsAndResets(t *testing.T) {
	c := newTestController(t)
	metrics := NewMetricsObserver()
	c.AddObserver(metrics)

	clockTicks(c, Inputs{Emergency: true}, 2)
	require.Equal(t, PhaseEmergencyGreen, c.Phase())
	assert.Equal(t, 1, metrics.GetPreemptionCount())

	// held re-arms are not transitions
	clockTicks(c, Inputs{Emergency: true}, 20)
	assert.Equal(t, 1, metrics.GetPhaseEntryCounts()[PhaseEmergencyGreen])

	c.Reset()
	assert.Equal(t, 1, metrics.GetResetCount())

	clockTicks(c, Inputs{Emergency: true}, 1)
	assert.Equal(t, 2, metrics.GetPreemptionCount())
}

func TestMetricsObserver_TickAttributionAfterReset(t *testing.T) {
	c := newTestController(t)
	metrics := NewMetricsObserver()
	c.AddObserver(metrics)

	clockTicks(c, Inputs{}, 7)
	c.Reset()
	clockTicks(c, Inputs{}, 3)

	// ticks after the reset are attributed to the restored NS_GREEN
	assert.Equal(t, uint64(6+3), metrics.GetPhaseTickCounts()[PhaseNSGreen])
	assert.Equal(t, uint64(1), metrics.GetPhaseTickCounts()[PhaseNSYellow])
}
