// Package sim drives a crosslight controller through scripted input
// sequences and records its output transitions over time, the way a
// hardware test bench would stimulate the controller and capture a
// waveform.
package sim

import (
	"github.com/google/uuid"

	"crosslight"
)

// Segment is one stretch of a stimulus script: signal levels held for a
// number of base-clock units. Reset segments hold the controller in
// reset instead of clocking it.
type Segment struct {
	Reset  bool
	Inputs crosslight.Inputs
	Units  int
}

// Script is a stimulus sequence applied segment by segment
type Script []Segment

// ReferenceScript returns the reference stimulus used with the default
// configuration: reset held 20 units, 100 ticks of free-running cycle, a
// pedestrian button pulse, an emergency preemption with sustained hold,
// then a clear and resumption.
func ReferenceScript() Script {
	return Script{
		{Reset: true, Units: 20},
		{Units: 200},
		{Inputs: crosslight.Inputs{PedestrianButton: true}, Units: 1},
		{Units: 300},
		{Inputs: crosslight.Inputs{Emergency: true}, Units: 200},
		{Inputs: crosslight.Inputs{Emergency: true, EmergencyClear: true}, Units: 1},
		{Units: 400},
	}
}

// TraceEvent is one recorded phase transition
type TraceEvent struct {
	ID      string
	Cycle   uint64
	Tick    uint64
	From    crosslight.Phase
	To      crosslight.Phase
	Outputs crosslight.Outputs
}

// Trace is the recorded result of one driver run
type Trace struct {
	RunID  string
	Events []TraceEvent
	Cycles uint64
	Ticks  uint64

	// PhaseTicks counts, per phase, the ticks the run spent in it
	PhaseTicks map[crosslight.Phase]uint64
}

// Driver runs a controller over a script, one base-clock unit at a time
type Driver struct {
	ctrl *crosslight.Controller
}

// NewDriver creates a driver for the given controller
func NewDriver(ctrl *crosslight.Controller) *Driver {
	return &Driver{ctrl: ctrl}
}

// Run applies the script and returns the recorded trace. The controller
// is left in whatever state the script ends in.
func (d *Driver) Run(script Script) *Trace {
	trace := &Trace{
		RunID:      uuid.New().String(),
		Events:     make([]TraceEvent, 0),
		PhaseTicks: make(map[crosslight.Phase]uint64),
	}

	for _, seg := range script {
		for unit := 0; unit < seg.Units; unit++ {
			if seg.Reset {
				d.ctrl.Reset()
				continue
			}

			res := d.ctrl.Clock(seg.Inputs)
			trace.Cycles++
			if res.Tick {
				trace.Ticks++
				trace.PhaseTicks[res.CurrentPhase]++
			}
			if res.Changed() {
				trace.Events = append(trace.Events, TraceEvent{
					ID:      uuid.New().String(),
					Cycle:   trace.Cycles,
					Tick:    d.ctrl.TickCount(),
					From:    res.PreviousPhase,
					To:      res.CurrentPhase,
					Outputs: res.Outputs,
				})
			}
		}
	}

	return trace
}
