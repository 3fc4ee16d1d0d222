package crosslight

import (
	"sync"
	"testing"
)

// TestObserver is a mock observer for testing that captures all observer events
type TestObserver struct {
	mutex        sync.RWMutex
	PhaseChanges []PhaseChangeEvent
	Ticks        []uint64
	Resets       int
	PedRequests  []uint64
	EmgChanges   []EmergencyChangeEvent
	Errors       []error
}

type PhaseChangeEvent struct {
	From Phase
	To   Phase
	Tick uint64
}

type EmergencyChangeEvent struct {
	Active bool
	Cycle  uint64
}

// NewTestObserver creates a new test observer
func NewTestObserver() *TestObserver {
	return &TestObserver{
		PhaseChanges: make([]PhaseChangeEvent, 0),
		Ticks:        make([]uint64, 0),
		PedRequests:  make([]uint64, 0),
		EmgChanges:   make([]EmergencyChangeEvent, 0),
		Errors:       make([]error, 0),
	}
}

// Observer interface implementations
func (o *TestObserver) OnPhaseChange(from Phase, to Phase, tick uint64) {
	o.mutex.Lock()
	defer o.mutex.Unlock()
	o.PhaseChanges = append(o.PhaseChanges, PhaseChangeEvent{From: from, To: to, Tick: tick})
}

func (o *TestObserver) OnTick(tick uint64) {
	o.mutex.Lock()
	defer o.mutex.Unlock()
	o.Ticks = append(o.Ticks, tick)
}

// ExtendedObserver interface implementations
func (o *TestObserver) OnReset() {
	o.mutex.Lock()
	defer o.mutex.Unlock()
	o.Resets++
}

func (o *TestObserver) OnPedestrianRequest(cycle uint64) {
	o.mutex.Lock()
	defer o.mutex.Unlock()
	o.PedRequests = append(o.PedRequests, cycle)
}

func (o *TestObserver) OnEmergencyChange(active bool, cycle uint64) {
	o.mutex.Lock()
	defer o.mutex.Unlock()
	o.EmgChanges = append(o.EmgChanges, EmergencyChangeEvent{Active: active, Cycle: cycle})
}

func (o *TestObserver) OnError(err error) {
	o.mutex.Lock()
	defer o.mutex.Unlock()
	o.Errors = append(o.Errors, err)
}

// ChangeCount returns the number of recorded transitions to a different phase
func (o *TestObserver) ChangeCount() int {
	o.mutex.RLock()
	defer o.mutex.RUnlock()
	count := 0
	for _, ev := range o.PhaseChanges {
		if ev.From != ev.To {
			count++
		}
	}
	return count
}

// Sequence returns the recorded phase sequence, starting with the first
// transition's source phase
func (o *TestObserver) Sequence() []Phase {
	o.mutex.RLock()
	defer o.mutex.RUnlock()

	seq := make([]Phase, 0, len(o.PhaseChanges)+1)
	for _, ev := range o.PhaseChanges {
		if ev.From == ev.To {
			continue
		}
		if len(seq) == 0 {
			seq = append(seq, ev.From)
		}
		seq = append(seq, ev.To)
	}
	return seq
}

// Reset clears all captured events
func (o *TestObserver) Reset() {
	o.mutex.Lock()
	defer o.mutex.Unlock()
	o.PhaseChanges = o.PhaseChanges[:0]
	o.Ticks = o.Ticks[:0]
	o.Resets = 0
	o.PedRequests = o.PedRequests[:0]
	o.EmgChanges = o.EmgChanges[:0]
	o.Errors = o.Errors[:0]
}

// Test helper functions

// newTestController creates a controller with the default reference
// configuration, failing the test on configuration errors
func newTestController(t *testing.T) *Controller {
	t.Helper()
	c, err := New(DefaultConfig())
	if err != nil {
		t.Fatalf("Expected no error creating controller, got: %v", err)
	}
	return c
}

// clockCycles advances the controller by n base-clock cycles with the
// given inputs held
func clockCycles(c *Controller, in Inputs, n int) {
	for i := 0; i < n; i++ {
		c.Clock(in)
	}
}

// clockTicks advances the controller by n logical ticks with the given
// inputs held
func clockTicks(c *Controller, in Inputs, n int) {
	fired := 0
	for fired < n {
		if c.Clock(in).Tick {
			fired++
		}
	}
}

// AssertPhase fails the test unless the controller is in the expected phase
func AssertPhase(t *testing.T, c *Controller, expected Phase) {
	t.Helper()
	if got := c.Phase(); got != expected {
		t.Errorf("Expected phase %s, got %s", expected, got)
	}
}

// AssertSafeOutputs fails the test if the decoded outputs violate the
// mutual-exclusion safety property
func AssertSafeOutputs(t *testing.T, c *Controller) {
	t.Helper()
	out := c.Outputs()
	if n := out.ActiveCount(); n > 1 {
		t.Errorf("Unsafe outputs in phase %s: %d signals asserted (%s)", c.Phase(), n, out)
	}
	if c.Phase().AllRed() && out.ActiveCount() != 0 {
		t.Errorf("Expected no asserted signal in all-red phase %s, got %s", c.Phase(), out)
	}
}
