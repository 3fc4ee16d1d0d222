package crosslight

// Latch is a reset-dominant set/reset flag. It remembers an asserted
// condition until the reset input clears it; when set and reset assert on
// the same cycle the reset wins. Both request latches of the controller
// use this dominance: the emergency clear always overrides the emergency
// signal, and a pedestrian press is dropped while the walk phase is
// already serving.
type Latch struct {
	active bool
}

// Update applies one cycle of the set/reset inputs and returns the new
// value
func (l *Latch) Update(set, reset bool) bool {
	if reset {
		l.active = false
	} else if set {
		l.active = true
	}
	return l.active
}

// Active returns the latched value
func (l *Latch) Active() bool {
	return l.active
}

// Clear forces the latch low, independent of the inputs
func (l *Latch) Clear() {
	l.active = false
}
