package crosslight

import "sync"

// MetricsObserver collects metrics about controller execution
type MetricsObserver struct {
	phaseEntries     map[Phase]int
	phaseTicks       map[Phase]uint64
	transitionCounts map[string]int
	preemptionCount  int
	resetCount       int
	errorCount       int
	current          Phase
	mutex            sync.RWMutex
}

// NewMetricsObserver creates a new metrics observer
func NewMetricsObserver() *MetricsObserver {
	return &MetricsObserver{
		phaseEntries:     make(map[Phase]int),
		phaseTicks:       make(map[Phase]uint64),
		transitionCounts: make(map[string]int),
		current:          PhaseNSGreen,
	}
}

// OnTick attributes the tick to the phase it lands in
func (o *MetricsObserver) OnTick(tick uint64) {
	o.mutex.Lock()
	defer o.mutex.Unlock()

	o.phaseTicks[o.current]++
}

// OnPhaseChange records transition metrics
func (o *MetricsObserver) OnPhaseChange(from Phase, to Phase, tick uint64) {
	o.mutex.Lock()
	defer o.mutex.Unlock()

	o.current = to
	if from == to {
		return
	}

	o.phaseEntries[to]++
	o.transitionCounts[from.String()+"->"+to.String()]++
	if to == PhaseEmergencyAllRed && !from.Emergency() {
		o.preemptionCount++
	}
}

// OnReset records reset metrics
func (o *MetricsObserver) OnReset() {
	o.mutex.Lock()
	defer o.mutex.Unlock()

	o.resetCount++
	o.current = PhaseNSGreen
}

// OnPedestrianRequest implements the optional ExtendedObserver method
func (o *MetricsObserver) OnPedestrianRequest(cycle uint64) {
	// Latch events are already visible through transition counts
}

// OnEmergencyChange implements the optional ExtendedObserver method
func (o *MetricsObserver) OnEmergencyChange(active bool, cycle uint64) {
	// Preemptions are counted on the EMG_ALL_RED entry instead
}

// OnError records error metrics
func (o *MetricsObserver) OnError(err error) {
	o.mutex.Lock()
	defer o.mutex.Unlock()

	o.errorCount++
}

// GetPhaseEntryCounts returns the number of times each phase was entered
func (o *MetricsObserver) GetPhaseEntryCounts() map[Phase]int {
	o.mutex.RLock()
	defer o.mutex.RUnlock()

	result := make(map[Phase]int)
	for phase, count := range o.phaseEntries {
		result[phase] = count
	}
	return result
}

// GetPhaseTickCounts returns the number of ticks spent in each phase
func (o *MetricsObserver) GetPhaseTickCounts() map[Phase]uint64 {
	o.mutex.RLock()
	defer o.mutex.RUnlock()

	result := make(map[Phase]uint64)
	for phase, ticks := range o.phaseTicks {
		result[phase] = ticks
	}
	return result
}

// GetTransitionCounts returns the number of times each transition fired
func (o *MetricsObserver) GetTransitionCounts() map[string]int {
	o.mutex.RLock()
	defer o.mutex.RUnlock()

	result := make(map[string]int)
	for transition, count := range o.transitionCounts {
		result[transition] = count
	}
	return result
}

// GetPreemptionCount returns how many emergency preemptions fired
func (o *MetricsObserver) GetPreemptionCount() int {
	o.mutex.RLock()
	defer o.mutex.RUnlock()
	return o.preemptionCount
}

// GetResetCount returns how many resets occurred
func (o *MetricsObserver) GetResetCount() int {
	o.mutex.RLock()
	defer o.mutex.RUnlock()
	return o.resetCount
}

// GetErrorCount returns how many errors were reported
func (o *MetricsObserver) GetErrorCount() int {
	o.mutex.RLock()
	defer o.mutex.RUnlock()
	return o.errorCount
}
