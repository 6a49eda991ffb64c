package track

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/celeritas-go/transport"
	"github.com/celeritas-go/transport/selector"
)

func TestRunPreStep_InactiveSlotIsIdempotent(t *testing.T) {
	state := NewState(2)
	rng := NewSlotRng(1, 4)
	slot := transport.NewTrackSlotId(0)

	err := RunPreStep(&state, slot, rng, PreStepDeps{})
	assert.NoError(t, err)
	assert.Equal(t, 0.0, state.StepLimit)
	assert.False(t, state.PostStepAction.Valid())
	assert.False(t, state.AlongStepAction.Valid())

	// Calling again changes nothing further.
	err = RunPreStep(&state, slot, rng, PreStepDeps{})
	assert.NoError(t, err)
	assert.Equal(t, Inactive, state.Status)
}

func TestRunPreStep_AliveSlotSamplesMfpAndPicksAction(t *testing.T) {
	state := NewState(1)
	state.Status = Alive
	rng := NewSlotRng(7, 4)
	slot := transport.NewTrackSlotId(2)

	discrete := transport.NewActionId(10)
	neutral := transport.NewActionId(1)
	charged := transport.NewActionId(2)

	deps := PreStepDeps{
		Charge:    1,
		IsStopped: false,
		StepLimitInputs: selector.StepLimitInputs{
			Processes: []selector.ProcessEntry{
				{Xs: func(float64) float64 { return 2 }},
			},
			DiscreteAction: discrete,
		},
		AlongStep: AlongStepActions{Neutral: neutral, Charged: charged},
	}

	err := RunPreStep(&state, slot, rng, deps)
	assert.NoError(t, err)
	assert.Greater(t, state.Mfp, 0.0)
	assert.Greater(t, state.StepLimit, 0.0)
	assert.Equal(t, charged, state.AlongStepAction)
	assert.Equal(t, discrete, state.PostStepAction)
}

func TestRunPreStep_NeutralParticlePicksNeutralAction(t *testing.T) {
	state := NewState(1)
	state.Status = Alive
	state.Mfp = 1.5 // already sampled, should not resample
	rng := NewSlotRng(3, 1)
	slot := transport.NewTrackSlotId(0)

	neutral := transport.NewActionId(1)
	deps := PreStepDeps{
		Charge: 0,
		StepLimitInputs: selector.StepLimitInputs{
			Processes: []selector.ProcessEntry{
				{Xs: func(float64) float64 { return 1 }},
			},
		},
		AlongStep: AlongStepActions{Neutral: neutral, Charged: transport.NewActionId(2)},
	}

	err := RunPreStep(&state, slot, rng, deps)
	assert.NoError(t, err)
	assert.Equal(t, 1.5, state.Mfp)
	assert.Equal(t, neutral, state.AlongStepAction)
}
