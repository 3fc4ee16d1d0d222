package crosslight

import "fmt"

// ErrorCode represents specific error conditions in the controller
type ErrorCode int

const (
	// No error occurred
	ErrCodeNone ErrorCode = iota
	// Controller configuration is invalid
	ErrCodeInvalidConfiguration
	// Controller reached a phase the transition table does not cover
	ErrCodeInvalidState
)

// ConfigurationError represents construction-time configuration issues.
// Configuration is the only error channel of the controller; at runtime the
// transition function is total.
type ConfigurationError struct {
	Component string
	Issue     string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error in %s: %s", e.Component, e.Issue)
}

// NewConfigurationError creates a new configuration error
func NewConfigurationError(component, issue string) *ConfigurationError {
	return &ConfigurationError{
		Component: component,
		Issue:     issue,
	}
}

// MachineError represents controller invariant violations
type MachineError struct {
	Code    ErrorCode
	Phase   Phase
	Message string
}

func (e *MachineError) Error() string {
	return fmt.Sprintf("machine error in phase %s: %s", e.Phase, e.Message)
}

// NewInvalidStateError creates an error for a phase the transition table
// does not cover. Reaching one is an internal invariant violation; it is
// reported through observers rather than silently tolerated.
func NewInvalidStateError(phase Phase, message string) *MachineError {
	return &MachineError{
		Code:    ErrCodeInvalidState,
		Phase:   phase,
		Message: message,
	}
}

// IsConfigurationError checks if an error is a ConfigurationError
func IsConfigurationError(err error) bool {
	_, ok := err.(*ConfigurationError)
	return ok
}

// IsMachineError checks if an error is a MachineError
func IsMachineError(err error) bool {
	_, ok := err.(*MachineError)
	return ok
}

// GetErrorCode returns the error code for known error types
func GetErrorCode(err error) ErrorCode {
	switch e := err.(type) {
	case *ConfigurationError:
		return ErrCodeInvalidConfiguration
	case *MachineError:
		return e.Code
	default:
		return ErrCodeNone
	}
}
