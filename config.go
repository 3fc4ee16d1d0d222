package crosslight

import "fmt"

// Durations maps each phase family to its length in ticks. The single
// AllRed value covers ALL_RED_1, ALL_RED_2 and the emergency all-red
// buffer. All values are positive tick counts; the mapping is immutable
// for the controller's lifetime.
type Durations struct {
	NSGreen        int
	NSYellow       int
	EWGreen        int
	EWYellow       int
	PedWalk        int
	AllRed         int
	EmergencyGreen int
}

// of returns the duration of the entering phase. Phases the table does
// not cover get zero, which the validated configurations never produce.
func (d Durations) of(p Phase) int {
	switch p {
	case PhaseNSGreen:
		return d.NSGreen
	case PhaseNSYellow:
		return d.NSYellow
	case PhaseEWGreen:
		return d.EWGreen
	case PhaseEWYellow:
		return d.EWYellow
	case PhasePedWalk:
		return d.PedWalk
	case PhaseAllRed1, PhaseAllRed2, PhaseEmergencyAllRed:
		return d.AllRed
	case PhaseEmergencyGreen:
		return d.EmergencyGreen
	default:
		return 0
	}
}

// Config holds the construction-time parameters of a controller
type Config struct {
	// PrescaleMax divides the base clock down to the logical tick;
	// exactly one tick fires per PrescaleMax base-clock cycles
	PrescaleMax int

	// Durations gives each phase its length in ticks
	Durations Durations
}

// DefaultConfig returns the reference timing used by the simulation harness
func DefaultConfig() Config {
	return Config{
		PrescaleMax: 2,
		Durations: Durations{
			NSGreen:        6,
			NSYellow:       2,
			EWGreen:        5,
			EWYellow:       2,
			PedWalk:        4,
			AllRed:         1,
			EmergencyGreen: 8,
		},
	}
}

// Validate checks the configuration, returning a *ConfigurationError on
// the first invalid value
func (c Config) Validate() error {
	if c.PrescaleMax < 1 {
		return NewConfigurationError("TickGenerator",
			fmt.Sprintf("prescale max must be at least 1, got %d", c.PrescaleMax))
	}

	durations := []struct {
		name  string
		value int
	}{
		{"NSGreen", c.Durations.NSGreen},
		{"NSYellow", c.Durations.NSYellow},
		{"EWGreen", c.Durations.EWGreen},
		{"EWYellow", c.Durations.EWYellow},
		{"PedWalk", c.Durations.PedWalk},
		{"AllRed", c.Durations.AllRed},
		{"EmergencyGreen", c.Durations.EmergencyGreen},
	}
	for _, d := range durations {
		if d.value < 1 {
			return NewConfigurationError("Durations",
				fmt.Sprintf("%s must be a positive tick count, got %d", d.name, d.value))
		}
	}

	return nil
}
