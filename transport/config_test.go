package transport

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultPhysicsOptions_Valid(t *testing.T) {
	opts := DefaultPhysicsOptions()
	assert.NoError(t, opts.Validate())
}

func TestPhysicsOptionsValidate_RejectsBadEprime(t *testing.T) {
	opts := DefaultPhysicsOptions()
	opts.MinEprimeOverE = 1.5
	err := opts.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "min_eprime_over_e")
}

func TestPhysicsOptionsValidate_RejectsZeroSplineOrder(t *testing.T) {
	opts := DefaultPhysicsOptions()
	opts.SplineElossOrder = 0
	assert.Error(t, opts.Validate())
}

func TestPhysicsOptionsValidate_RejectsNegativeFixedStepLimiter(t *testing.T) {
	opts := DefaultPhysicsOptions()
	opts.FixedStepLimiter = -1
	assert.Error(t, opts.Validate())
}

func TestParticleStepOptionsValidate_RejectsOutOfRangeAlpha(t *testing.T) {
	opts := ParticleStepOptions{MinRange: 1, MaxStepOverRange: 0, LowestEnergy: 0}
	assert.Error(t, opts.Validate("test"))

	opts.MaxStepOverRange = 1.5
	assert.Error(t, opts.Validate("test"))

	opts.MaxStepOverRange = 0.5
	assert.NoError(t, opts.Validate("test"))
}

func TestEffectiveMinEprimeOverE_DefaultsFromAlpha(t *testing.T) {
	opts := DefaultPhysicsOptions()
	opts.Light.MaxStepOverRange = 0.2
	got := opts.EffectiveMinEprimeOverE()
	assert.InDelta(t, 0.8, got, 1e-12)

	opts.MinEprimeOverE = 0.9
	assert.InDelta(t, 0.9, opts.EffectiveMinEprimeOverE(), 1e-12)
}
