package sim

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crosslight"
)

func newReferenceController(t *testing.T) *crosslight.Controller {
	t.Helper()
	c, err := crosslight.New(crosslight.DefaultConfig())
	require.NoError(t, err)
	return c
}

func TestDriver_ReferenceScript(t *testing.T) {
	ctrl := newReferenceController(t)
	trace := NewDriver(ctrl).Run(ReferenceScript())

	// 200+1+300+200+1+400 clocked units, reset units are not clocked
	assert.Equal(t, uint64(1102), trace.Cycles)
	assert.Equal(t, uint64(551), trace.Ticks)

	_, err := uuid.Parse(trace.RunID)
	assert.NoError(t, err, "run ID must be a valid UUID")

	require.NotEmpty(t, trace.Events)
	for i, ev := range trace.Events {
		_, err := uuid.Parse(ev.ID)
		assert.NoError(t, err, "event %d", i)
		assert.True(t, ev.To.Valid(), "event %d", i)
		assert.NotEqual(t, ev.From, ev.To, "trace records changes only")
		if i > 0 {
			assert.Greater(t, ev.Cycle, trace.Events[i-1].Cycle, "event %d", i)
			assert.GreaterOrEqual(t, ev.Tick, trace.Events[i-1].Tick, "event %d", i)
		}
	}
}

func TestDriver_ReferenceScriptMilestones(t *testing.T) {
	ctrl := newReferenceController(t)
	trace := NewDriver(ctrl).Run(ReferenceScript())

	walkEntries := 0
	preemptions := 0
	resumptions := 0
	for _, ev := range trace.Events {
		if ev.To == crosslight.PhasePedWalk {
			walkEntries++
		}
		if ev.To == crosslight.PhaseEmergencyAllRed {
			preemptions++
		}
		if ev.From == crosslight.PhaseEmergencyGreen && ev.To == crosslight.PhaseNSGreen {
			resumptions++
		}
	}

	assert.Equal(t, 1, walkEntries, "one pulse, one walk service")
	assert.Equal(t, 1, preemptions)
	assert.Equal(t, 1, resumptions)
	assert.False(t, ctrl.Phase().Emergency(), "the run ends back in the normal ring")
}

func TestDriver_SafetyThroughoutReferenceRun(t *testing.T) {
	ctrl := newReferenceController(t)
	trace := NewDriver(ctrl).Run(ReferenceScript())

	for _, ev := range trace.Events {
		assert.LessOrEqual(t, ev.Outputs.ActiveCount(), 1, "event at tick %d", ev.Tick)
		if ev.To.AllRed() {
			assert.Equal(t, 0, ev.Outputs.ActiveCount(), "event at tick %d", ev.Tick)
		}
		if ev.To == crosslight.PhaseEmergencyGreen {
			assert.Equal(t, crosslight.Outputs{NSGreen: true}, ev.Outputs)
		}
	}
}

func TestDriver_ResetSegmentRestoresInitialState(t *testing.T) {
	ctrl := newReferenceController(t)
	driver := NewDriver(ctrl)

	driver.Run(Script{
		{Units: 50},
		{Inputs: crosslight.Inputs{Emergency: true}, Units: 20},
		{Reset: true, Units: 5},
	})

	assert.Equal(t, crosslight.PhaseNSGreen, ctrl.Phase())
	assert.False(t, ctrl.EmergencyActive())
	assert.Equal(t, uint64(0), ctrl.TickCount())
}

func TestDriver_PhaseTicksSumToTotal(t *testing.T) {
	ctrl := newReferenceController(t)
	trace := NewDriver(ctrl).Run(Script{{Units: 340}})

	var sum uint64
	for _, ticks := range trace.PhaseTicks {
		sum += ticks
	}
	assert.Equal(t, trace.Ticks, sum)
	assert.Equal(t, uint64(170), trace.Ticks)
}
