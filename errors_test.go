package crosslight

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigurationError(t *testing.T) {
	err := NewConfigurationError("TickGenerator", "prescale max must be at least 1, got 0")

	assert.Equal(t, "configuration error in TickGenerator: prescale max must be at least 1, got 0", err.Error())
	assert.True(t, IsConfigurationError(err))
	assert.False(t, IsMachineError(err))
	assert.Equal(t, ErrCodeInvalidConfiguration, GetErrorCode(err))
}

func TestInvalidStateError(t *testing.T) {
	err := NewInvalidStateError(Phase(42), "no successor in transition table")

	assert.Equal(t, "machine error in phase UNKNOWN: no successor in transition table", err.Error())
	assert.True(t, IsMachineError(err))
	assert.False(t, IsConfigurationError(err))
	assert.Equal(t, ErrCodeInvalidState, GetErrorCode(err))
	assert.Equal(t, Phase(42), err.Phase)
}

func TestGetErrorCode_UnknownError(t *testing.T) {
	assert.Equal(t, ErrCodeNone, GetErrorCode(errors.New("plain error")))
	assert.Equal(t, ErrCodeNone, GetErrorCode(nil))
}
