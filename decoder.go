package crosslight

import "strings"

// Outputs holds the five signal levels driving the physical lights.
// The levels are a pure function of the active phase and stay valid
// until the next phase change.
type Outputs struct {
	NSGreen  bool
	NSYellow bool
	EWGreen  bool
	EWYellow bool
	PedWalk  bool
}

// DecodeOutputs maps a phase to its output signal levels. All-red phases
// assert no signal. The emergency green drives the north-south green; the
// design does not select a direction for the emergency route.
func DecodeOutputs(p Phase) Outputs {
	switch p {
	case PhaseNSGreen, PhaseEmergencyGreen:
		return Outputs{NSGreen: true}
	case PhaseNSYellow:
		return Outputs{NSYellow: true}
	case PhaseEWGreen:
		return Outputs{EWGreen: true}
	case PhaseEWYellow:
		return Outputs{EWYellow: true}
	case PhasePedWalk:
		return Outputs{PedWalk: true}
	default:
		// ALL_RED_1, ALL_RED_2, EMG_ALL_RED and anything out of range
		return Outputs{}
	}
}

// ActiveCount returns how many output signals are asserted
func (o Outputs) ActiveCount() int {
	count := 0
	for _, on := range []bool{o.NSGreen, o.NSYellow, o.EWGreen, o.EWYellow, o.PedWalk} {
		if on {
			count++
		}
	}
	return count
}

// String returns the asserted signals, or "all_red" when none are asserted
func (o Outputs) String() string {
	names := make([]string, 0, 1)
	if o.NSGreen {
		names = append(names, "ns_green")
	}
	if o.NSYellow {
		names = append(names, "ns_yellow")
	}
	if o.EWGreen {
		names = append(names, "ew_green")
	}
	if o.EWYellow {
		names = append(names, "ew_yellow")
	}
	if o.PedWalk {
		names = append(names, "ped_walk")
	}
	if len(names) == 0 {
		return "all_red"
	}
	return strings.Join(names, "+")
}
