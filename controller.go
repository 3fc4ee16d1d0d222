// Package crosslight implements a fixed-cycle traffic-intersection
// controller: a deterministic sequencer driving four vehicle light
// outputs and one pedestrian-walk output through a repeating phase cycle,
// with asynchronous pedestrian crossing requests and an overriding
// emergency-vehicle preemption mode.
//
// The controller advances on two rates driven by one external loop: every
// call to Clock is one base-clock cycle, on which the request latches
// sample their inputs, while the phase and its countdown timer mutate
// only on the logical ticks the TickGenerator derives from the base
// clock. Between ticks the phase is held and the decoded outputs stay
// valid.
package crosslight

import "sync"

// Inputs holds the external signal levels sampled on each base-clock
// cycle. All three are asynchronous to the logical tick. The pedestrian
// button is treated as already debounced.
type Inputs struct {
	PedestrianButton bool
	Emergency        bool
	EmergencyClear   bool
}

// TickResult reports what one base-clock cycle did
type TickResult struct {
	// Tick is true when the logical tick fired on this cycle
	Tick bool
	// PreviousPhase is the phase before this cycle
	PreviousPhase Phase
	// CurrentPhase is the phase after this cycle
	CurrentPhase Phase
	// Outputs holds the signal levels decoded from CurrentPhase
	Outputs Outputs
}

// Changed returns true if this cycle fired a transition to a different phase
func (r TickResult) Changed() bool {
	return r.PreviousPhase != r.CurrentPhase
}

// Controller is the intersection controller instance. It owns the tick
// generator, the two request latches, the phase register and the phase
// timer; all of them reset together and live for the process lifetime.
type Controller struct {
	cfg        Config
	ticks      *TickGenerator
	pedestrian Latch
	emergency  Latch

	phase Phase
	timer int

	cycleCount uint64
	tickCount  uint64

	observers *ObserverManager
	mutex     sync.RWMutex
}

// New creates a controller from the given configuration. Invalid
// configuration is the only error condition; at runtime the controller
// has no failure states.
func New(cfg Config) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	ticks, err := NewTickGenerator(cfg.PrescaleMax)
	if err != nil {
		return nil, err
	}

	c := &Controller{
		cfg:       cfg,
		ticks:     ticks,
		observers: NewObserverManager(),
	}
	c.resetState()
	return c, nil
}

// resetState forces every owned register back to its initial value.
// Callers hold the mutex.
func (c *Controller) resetState() {
	c.ticks.Reset()
	c.pedestrian.Clear()
	c.emergency.Clear()
	c.phase = PhaseNSGreen
	c.timer = c.cfg.Durations.NSGreen
	c.cycleCount = 0
	c.tickCount = 0
}

// Reset asynchronously forces the controller back to its initial state:
// phase NS_GREEN with a full timer, both latches clear, tick counter at
// zero. Reset takes priority over every other transition rule; ticking
// resumes from the realigned counter once the caller clocks again.
func (c *Controller) Reset() {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	previous := c.phase
	c.resetState()

	c.observers.NotifyReset()
	if previous != c.phase {
		c.observers.NotifyPhaseChange(previous, c.phase, c.tickCount)
	}
}

// Clock advances the controller by one base-clock cycle: the request
// latches sample the inputs, and if the logical tick fires on this cycle
// the phase state machine evaluates its transition rules.
func (c *Controller) Clock(in Inputs) TickResult {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	previous := c.phase
	c.cycleCount++

	c.updateLatches(in)

	tick := c.ticks.Clock()
	if tick {
		c.tickCount++
		c.observers.NotifyTick(c.tickCount)
		c.step()
	}

	return TickResult{
		Tick:          tick,
		PreviousPhase: previous,
		CurrentPhase:  c.phase,
		Outputs:       DecodeOutputs(c.phase),
	}
}

// updateLatches runs the fast, level-sensitive half of the cycle. The
// pedestrian latch clears while the walk phase is serving, so a request
// captured between ticks survives until service and presses during the
// service are dropped. The emergency clear wins over a simultaneous
// emergency assert.
func (c *Controller) updateLatches(in Inputs) {
	pedWas := c.pedestrian.Active()
	pedNow := c.pedestrian.Update(in.PedestrianButton, c.phase == PhasePedWalk)
	if pedNow && !pedWas {
		c.observers.NotifyPedestrianRequest(c.cycleCount)
	}

	emgWas := c.emergency.Active()
	emgNow := c.emergency.Update(in.Emergency, in.EmergencyClear)
	if emgNow != emgWas {
		c.observers.NotifyEmergencyChange(emgNow, c.cycleCount)
	}
}

// step evaluates one tick of the phase state machine. The rules apply in
// priority order: emergency preemption first, then the timer hold, then
// the timer-expiry successor. Preemption is the one transition not gated
// by timer expiry.
func (c *Controller) step() {
	if c.emergency.Active() && !c.phase.Emergency() {
		c.enter(PhaseEmergencyAllRed)
		return
	}

	if c.timer > 0 {
		c.timer--
	}
	if c.timer > 0 {
		return
	}

	next, ok := c.successor()
	if !ok {
		c.observers.NotifyError(NewInvalidStateError(c.phase, "no successor in transition table"))
		return
	}
	c.enter(next)
}

// successor returns the phase entered when the current phase's timer
// expires. The false return marks a phase the table does not cover,
// which no reachable state produces.
func (c *Controller) successor() (Phase, bool) {
	switch c.phase {
	case PhaseNSGreen:
		return PhaseNSYellow, true
	case PhaseNSYellow:
		return PhaseAllRed1, true
	case PhaseAllRed1:
		if c.pedestrian.Active() {
			return PhasePedWalk, true
		}
		return PhaseEWGreen, true
	case PhaseEWGreen:
		return PhaseEWYellow, true
	case PhaseEWYellow:
		return PhaseAllRed2, true
	case PhaseAllRed2:
		if c.pedestrian.Active() {
			return PhasePedWalk, true
		}
		return PhaseNSGreen, true
	case PhasePedWalk:
		// Walk is always followed by the all-red buffer before the ring resumes
		return PhaseAllRed2, true
	case PhaseEmergencyAllRed:
		if c.emergency.Active() {
			return PhaseEmergencyGreen, true
		}
		return PhaseNSGreen, true
	case PhaseEmergencyGreen:
		if c.emergency.Active() {
			// Held: the reload only prevents timer underflow, the phase
			// ends on the external clear, not on its own
			return PhaseEmergencyGreen, true
		}
		return PhaseNSGreen, true
	default:
		return c.phase, false
	}
}

// enter fires a transition into next, reloading the timer with the
// entering phase's duration. Entering the walk phase consumes the
// pedestrian request.
func (c *Controller) enter(next Phase) {
	from := c.phase
	c.phase = next
	c.timer = c.cfg.Durations.of(next)

	if next == PhasePedWalk {
		c.pedestrian.Clear()
	}

	c.observers.NotifyPhaseChange(from, next, c.tickCount)
}

// AddObserver registers an observer for controller notifications
func (c *Controller) AddObserver(observer Observer) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.observers.AddObserver(observer)
}

// RemoveObserver unregisters an observer
func (c *Controller) RemoveObserver(observer Observer) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.observers.RemoveObserver(observer)
}

// Phase returns the active phase
func (c *Controller) Phase() Phase {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return c.phase
}

// Outputs returns the signal levels decoded from the active phase
func (c *Controller) Outputs() Outputs {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return DecodeOutputs(c.phase)
}

// TicksRemaining returns how many ticks are left before the current
// phase's timer expires
func (c *Controller) TicksRemaining() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return c.timer
}

// PedestrianPending returns the pedestrian request latch
func (c *Controller) PedestrianPending() bool {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return c.pedestrian.Active()
}

// EmergencyActive returns the emergency latch
func (c *Controller) EmergencyActive() bool {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return c.emergency.Active()
}

// CycleCount returns the number of base-clock cycles since reset
func (c *Controller) CycleCount() uint64 {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return c.cycleCount
}

// TickCount returns the number of logical ticks since reset
func (c *Controller) TickCount() uint64 {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return c.tickCount
}

// Config returns the controller's immutable configuration
func (c *Controller) Config() Config {
	return c.cfg
}
