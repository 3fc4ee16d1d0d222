package crosslight

import "fmt"

// Observer represents an entity that observes the controller lifecycle
type Observer interface {
	// Required methods

	// OnPhaseChange is called when a transition fires. A re-arm of the
	// held emergency green reports from == to.
	OnPhaseChange(from Phase, to Phase, tick uint64)

	// OnTick is called once per logical tick, before the tick's
	// transition evaluation
	OnTick(tick uint64)
}

// ExtendedObserver provides additional optional observation methods
type ExtendedObserver interface {
	Observer

	// OnReset is called when the controller is forced back to its
	// initial state
	OnReset()

	// OnPedestrianRequest is called when the pedestrian latch rises
	OnPedestrianRequest(cycle uint64)

	// OnEmergencyChange is called when the emergency latch changes level
	OnEmergencyChange(active bool, cycle uint64)

	// OnError is called when an internal invariant violation is detected
	OnError(err error)
}

// BaseObserver provides a default implementation with no-op methods
type BaseObserver struct{}

// OnPhaseChange implements the required Observer method
func (o *BaseObserver) OnPhaseChange(from Phase, to Phase, tick uint64) {
	// Default implementation - no operation
}

// OnTick implements the required Observer method
func (o *BaseObserver) OnTick(tick uint64) {
	// Default implementation - no operation
}

// OnReset implements the optional ExtendedObserver method
func (o *BaseObserver) OnReset() {
	// Default implementation - no operation
}

// OnPedestrianRequest implements the optional ExtendedObserver method
func (o *BaseObserver) OnPedestrianRequest(cycle uint64) {
	// Default implementation - no operation
}

// OnEmergencyChange implements the optional ExtendedObserver method
func (o *BaseObserver) OnEmergencyChange(active bool, cycle uint64) {
	// Default implementation - no operation
}

// OnError implements the optional ExtendedObserver method
func (o *BaseObserver) OnError(err error) {
	// Default implementation - no operation
}

// ObserverManager manages a collection of observers
type ObserverManager struct {
	observers []Observer
}

// NewObserverManager creates a new observer manager
func NewObserverManager() *ObserverManager {
	return &ObserverManager{
		observers: make([]Observer, 0),
	}
}

// AddObserver adds an observer to the manager
func (om *ObserverManager) AddObserver(observer Observer) {
	om.observers = append(om.observers, observer)
}

// RemoveObserver removes an observer from the manager
func (om *ObserverManager) RemoveObserver(observer Observer) {
	for i, obs := range om.observers {
		if obs == observer {
			om.observers = append(om.observers[:i], om.observers[i+1:]...)
			break
		}
	}
}

// NotifyPhaseChange notifies all observers of a fired transition
func (om *ObserverManager) NotifyPhaseChange(from Phase, to Phase, tick uint64) {
	observers := make([]Observer, len(om.observers))
	copy(observers, om.observers)

	for _, observer := range observers {
		func() {
			defer func() {
				if r := recover(); r != nil {
					// Observer panicked - report it if there's an error observer but don't crash
					if extObs, ok := observer.(ExtendedObserver); ok {
						func() {
							defer func() { recover() }()
							extObs.OnError(fmt.Errorf("observer panic in OnPhaseChange: %v", r))
						}()
					}
				}
			}()
			observer.OnPhaseChange(from, to, tick)
		}()
	}
}

// NotifyTick notifies all observers of a logical tick
func (om *ObserverManager) NotifyTick(tick uint64) {
	observers := make([]Observer, len(om.observers))
	copy(observers, om.observers)

	for _, observer := range observers {
		func() {
			defer func() {
				if r := recover(); r != nil {
					if extObs, ok := observer.(ExtendedObserver); ok {
						func() {
							defer func() { recover() }()
							extObs.OnError(fmt.Errorf("observer panic in OnTick: %v", r))
						}()
					}
				}
			}()
			observer.OnTick(tick)
		}()
	}
}

// NotifyReset notifies all observers of a controller reset
func (om *ObserverManager) NotifyReset() {
	observers := make([]Observer, len(om.observers))
	copy(observers, om.observers)

	for _, observer := range observers {
		if extObs, ok := observer.(ExtendedObserver); ok {
			extObs.OnReset()
		}
	}
}

// NotifyPedestrianRequest notifies all observers of a latched pedestrian request
func (om *ObserverManager) NotifyPedestrianRequest(cycle uint64) {
	observers := make([]Observer, len(om.observers))
	copy(observers, om.observers)

	for _, observer := range observers {
		if extObs, ok := observer.(ExtendedObserver); ok {
			extObs.OnPedestrianRequest(cycle)
		}
	}
}

// NotifyEmergencyChange notifies all observers of an emergency latch level change
func (om *ObserverManager) NotifyEmergencyChange(active bool, cycle uint64) {
	observers := make([]Observer, len(om.observers))
	copy(observers, om.observers)

	for _, observer := range observers {
		if extObs, ok := observer.(ExtendedObserver); ok {
			extObs.OnEmergencyChange(active, cycle)
		}
	}
}

// NotifyError notifies all observers of errors
func (om *ObserverManager) NotifyError(err error) {
	observers := make([]Observer, len(om.observers))
	copy(observers, om.observers)

	for _, observer := range observers {
		if extObs, ok := observer.(ExtendedObserver); ok {
			extObs.OnError(err)
		}
	}
}
