package crosslight

import "fmt"

// TickGenerator divides the base clock down to the logical tick the
// sequencer advances on. The internal counter increments once per
// base-clock cycle and wraps after PrescaleMax cycles; the tick fires on
// the cycle where the counter holds its maximum value, so exactly one
// tick fires per PrescaleMax cycles and the first tick after a reset
// fires on the PrescaleMax-th cycle.
type TickGenerator struct {
	max   int
	count int
}

// NewTickGenerator creates a tick generator with the given prescale
// factor. A factor below 1 is rejected.
func NewTickGenerator(prescaleMax int) (*TickGenerator, error) {
	if prescaleMax < 1 {
		return nil, NewConfigurationError("TickGenerator",
			fmt.Sprintf("prescale max must be at least 1, got %d", prescaleMax))
	}
	return &TickGenerator{max: prescaleMax}, nil
}

// Clock advances the generator by one base-clock cycle and reports
// whether the tick fires on this cycle
func (g *TickGenerator) Clock() bool {
	fire := g.count == g.max-1
	if fire {
		g.count = 0
	} else {
		g.count++
	}
	return fire
}

// Reset restarts the counter at zero, realigning the tick so the next
// one fires PrescaleMax cycles from now
func (g *TickGenerator) Reset() {
	g.count = 0
}

// Count returns the current counter value, in [0, PrescaleMax-1]
func (g *TickGenerator) Count() int {
	return g.count
}

// PrescaleMax returns the configured prescale factor
func (g *TickGenerator) PrescaleMax() int {
	return g.max
}
