package crosslight

// Phase represents the currently active step of the controller's cycle.
// Exactly one phase is active at a time.
type Phase int

const (
	// North-south traffic has green
	PhaseNSGreen Phase = iota
	// North-south traffic has yellow, clearing the intersection
	PhaseNSYellow
	// All-red buffer between north-south and east-west service
	PhaseAllRed1
	// East-west traffic has green
	PhaseEWGreen
	// East-west traffic has yellow, clearing the intersection
	PhaseEWYellow
	// All-red buffer before resuming north-south service
	PhaseAllRed2
	// Pedestrian walk service, all vehicle lights red
	PhasePedWalk
	// All-red buffer entered on emergency preemption
	PhaseEmergencyAllRed
	// Emergency vehicle green, held until the emergency is cleared
	PhaseEmergencyGreen
)

var phaseNames = map[Phase]string{
	PhaseNSGreen:         "NS_GREEN",
	PhaseNSYellow:        "NS_YELLOW",
	PhaseAllRed1:         "ALL_RED_1",
	PhaseEWGreen:         "EW_GREEN",
	PhaseEWYellow:        "EW_YELLOW",
	PhaseAllRed2:         "ALL_RED_2",
	PhasePedWalk:         "PED_WALK",
	PhaseEmergencyAllRed: "EMG_ALL_RED",
	PhaseEmergencyGreen:  "EMG_GREEN",
}

// String returns the canonical name of the phase
func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return "UNKNOWN"
}

// Valid reports whether p is one of the defined phases
func (p Phase) Valid() bool {
	_, ok := phaseNames[p]
	return ok
}

// Emergency reports whether p belongs to the emergency branch
func (p Phase) Emergency() bool {
	return p == PhaseEmergencyAllRed || p == PhaseEmergencyGreen
}

// AllRed reports whether p shows red in every direction
func (p Phase) AllRed() bool {
	return p == PhaseAllRed1 || p == PhaseAllRed2 || p == PhaseEmergencyAllRed
}

// Green reports whether p grants a green to any road
func (p Phase) Green() bool {
	return p == PhaseNSGreen || p == PhaseEWGreen || p == PhaseEmergencyGreen
}
