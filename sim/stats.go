package sim

import (
	"gonum.org/v1/gonum/stat"

	"crosslight"
)

// PhaseStats summarizes the observed occupancies of one phase
type PhaseStats struct {
	// Entries is how many times the phase was entered
	Entries int
	// MeanTicks is the mean observed duration in ticks
	MeanTicks float64
	// StdDevTicks is the sample standard deviation of the duration
	StdDevTicks float64
}

// Summary aggregates a trace into per-phase and per-output statistics
type Summary struct {
	Ticks    uint64
	PerPhase map[crosslight.Phase]PhaseStats

	// DutyCycle is the fraction of ticks each output spent asserted
	DutyCycle map[string]float64
}

// Summarize computes run statistics from a trace. Durations are measured
// between consecutive transition events, so the (possibly truncated)
// occupancy of the final phase is not counted as a completed duration.
func Summarize(trace *Trace) Summary {
	durations := make(map[crosslight.Phase][]float64)
	for i := 1; i < len(trace.Events); i++ {
		prev := trace.Events[i-1]
		cur := trace.Events[i]
		durations[prev.To] = append(durations[prev.To], float64(cur.Tick-prev.Tick))
	}

	perPhase := make(map[crosslight.Phase]PhaseStats)
	for phase, durs := range durations {
		perPhase[phase] = PhaseStats{
			Entries:     len(durs),
			MeanTicks:   stat.Mean(durs, nil),
			StdDevTicks: stat.StdDev(durs, nil),
		}
	}

	return Summary{
		Ticks:     trace.Ticks,
		PerPhase:  perPhase,
		DutyCycle: dutyCycles(trace),
	}
}

// dutyCycles folds per-phase tick occupancy through the output decoder
func dutyCycles(trace *Trace) map[string]float64 {
	duty := map[string]float64{
		"ns_green":  0,
		"ns_yellow": 0,
		"ew_green":  0,
		"ew_yellow": 0,
		"ped_walk":  0,
	}
	if trace.Ticks == 0 {
		return duty
	}

	total := float64(trace.Ticks)
	for phase, ticks := range trace.PhaseTicks {
		out := crosslight.DecodeOutputs(phase)
		share := float64(ticks) / total
		if out.NSGreen {
			duty["ns_green"] += share
		}
		if out.NSYellow {
			duty["ns_yellow"] += share
		}
		if out.EWGreen {
			duty["ew_green"] += share
		}
		if out.EWYellow {
			duty["ew_yellow"] += share
		}
		if out.PedWalk {
			duty["ped_walk"] += share
		}
	}
	return duty
}
