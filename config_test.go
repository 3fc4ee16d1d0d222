package crosslight

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_DefaultIsValid(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
}

func TestConfig_RejectsInvalidPrescale(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PrescaleMax = 0

	err := cfg.Validate()
	require.Error(t, err)
	assert.True(t, IsConfigurationError(err))
	assert.Contains(t, err.Error(), "prescale")
}

func TestConfig_RejectsNonPositiveDurations(t *testing.T) {
	mutations := []struct {
		name   string
		mutate func(*Config)
	}{
		{"NSGreen", func(c *Config) { c.Durations.NSGreen = 0 }},
		{"NSYellow", func(c *Config) { c.Durations.NSYellow = -1 }},
		{"EWGreen", func(c *Config) { c.Durations.EWGreen = 0 }},
		{"EWYellow", func(c *Config) { c.Durations.EWYellow = 0 }},
		{"PedWalk", func(c *Config) { c.Durations.PedWalk = -3 }},
		{"AllRed", func(c *Config) { c.Durations.AllRed = 0 }},
		{"EmergencyGreen", func(c *Config) { c.Durations.EmergencyGreen = 0 }},
	}

	for _, m := range mutations {
		t.Run(m.name, func(t *testing.T) {
			cfg := DefaultConfig()
			m.mutate(&cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, IsConfigurationError(err))
			assert.Contains(t, err.Error(), m.name)
		})
	}
}

func TestConfig_IncompleteDurationsRejected(t *testing.T) {
	// a zero-value mapping is incomplete and must fail construction
	cfg := Config{PrescaleMax: 2}
	assert.Error(t, cfg.Validate())
}

func TestDurations_CoversEveryPhase(t *testing.T) {
	d := DefaultConfig().Durations

	for p := PhaseNSGreen; p <= PhaseEmergencyGreen; p++ {
		assert.Positive(t, d.of(p), "phase %s has no duration", p)
	}

	// the single all-red value covers all three all-red phases
	assert.Equal(t, d.AllRed, d.of(PhaseAllRed1))
	assert.Equal(t, d.AllRed, d.of(PhaseAllRed2))
	assert.Equal(t, d.AllRed, d.of(PhaseEmergencyAllRed))
}
