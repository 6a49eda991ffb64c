package track

import (
	"github.com/celeritas-go/transport"
	"github.com/celeritas-go/transport/selector"
)

// AlongStepActions names the two along-step action ids the pre-step
// initializer chooses between by charge (§4.7): a neutral particle takes a
// straight-line along-step action, a charged one takes the user along-step
// action (which includes the field propagator when configured).
type AlongStepActions struct {
	Neutral transport.ActionId
	Charged transport.ActionId
}

// PreStepDeps bundles the per-slot inputs needed to compute one slot's step
// limit, independent of the pool and secondary-stack bookkeeping that the
// caller drives around this function (§4.7).
type PreStepDeps struct {
	Charge          float64
	IsStopped       bool
	StepLimitInputs selector.StepLimitInputs
	AlongStep       AlongStepActions
}

// RunPreStep implements §4.7 for one slot. It does not clear the shared
// secondary stack: the caller clears it once per step, outside the per-slot
// loop, via SecondaryStack.Clear.
func RunPreStep(state *State, slot transport.TrackSlotId, rng *SlotRng, deps PreStepDeps) error {
	if state.Status == Inactive {
		state.StepLimit = 0
		state.PostStepAction = transport.ActionId{}
		state.AlongStepAction = transport.ActionId{}
		return nil
	}
	if state.Status == Errored {
		return nil
	}

	state.EnergyDeposition = 0
	state.Secondaries = transport.ItemRange[selector.Secondary]{}
	state.SampledElement = transport.ElementComponentId{}

	if state.Status == Initializing {
		state.Status = Alive
	}

	if state.Mfp == 0 {
		state.Mfp = SampleExponential(rng.For(slot))
	}

	deps.StepLimitInputs.InteractionMfp = state.Mfp
	deps.StepLimitInputs.IsStopped = deps.IsStopped
	limit, perProcess, err := selector.CalcPhysicsStepLimit(deps.StepLimitInputs)
	if err != nil {
		state.Status = Errored
		return err
	}

	state.StepLimit = limit.Step
	state.PostStepAction = limit.Action
	state.MacroXs = perProcess.MacroXs
	copy(state.PerProcessXs, perProcess.PerProcess)
	state.DedxRange = perProcess.DedxRange

	if deps.Charge == 0 {
		state.AlongStepAction = deps.AlongStep.Neutral
	} else {
		state.AlongStepAction = deps.AlongStep.Charged
	}

	return nil
}
