package selector

import (
	"github.com/celeritas-go/transport"
	"github.com/celeritas-go/transport/physics"
)

// DiscreteSelectorInputs bundles the per-track state and registry data the
// selector needs (§4.5). PreStepXs is the per-process macro-XS scratch
// computed at pre-step energy by CalcPhysicsStepLimit.
type DiscreteSelectorInputs struct {
	IsStopped      bool
	AtRestProcess  transport.ProcessId // invalid if none
	Processes      []physics.Process
	PreStepXs      []float64 // parallel to Processes
	PreStepEnergy  float64
	PostStepEnergy float64
	Xi             float64 // min_eprime_over_e, for the integral method
	NumElements    int
	Sample01       func() float64 // draws u ~ U(0,1)
}

// DiscreteSelection is the outcome of §4.5: which process/model/element was
// chosen, or a rejection (step 4's "sentinel rejection action").
type DiscreteSelection struct {
	Rejected bool
	Process  transport.ProcessId
	Model    transport.ModelId
	Element  transport.ElementComponentId // invalid if not applicable
}

// FindProcess implements §4.5 steps 2-3: either the at-rest process for a
// stopped particle, or a process sampled proportional to its pre-step
// macro-XS. Kept separate from SelectDiscreteInteraction so the process
// search is independently testable from the model/element/rejection
// machinery that follows it.
func FindProcess(in DiscreteSelectorInputs) physics.Process {
	if in.IsStopped && in.AtRestProcess.Valid() {
		for _, p := range in.Processes {
			if p.ID == in.AtRestProcess {
				return p
			}
		}
	}
	idx := sampleProportional(in.PreStepXs, in.Sample01())
	return in.Processes[idx]
}

// SelectDiscreteInteraction implements §4.5. The caller has already reset
// the track's MFP to zero before invoking this (step 1 of the algorithm);
// it is not repeated here since MFP is not a field of these inputs.
func SelectDiscreteInteraction(in DiscreteSelectorInputs) DiscreteSelection {
	proc := FindProcess(in)

	if in.IsStopped && in.AtRestProcess.Valid() && proc.ID == in.AtRestProcess {
		model := proc.Models.FindModel(in.PostStepEnergy)
		return DiscreteSelection{Process: proc.ID, Model: model}
	}

	if proc.UsesIntegralXs && proc.IntegralXs != nil {
		sigmaMax := proc.IntegralXs.CalcMaxXs(in.PreStepEnergy, in.Xi)
		postXs := proc.IntegralXs.XsAt(in.PostStepEnergy)
		if sigmaMax <= 0 || in.Sample01()*sigmaMax > postXs {
			return DiscreteSelection{Rejected: true, Process: proc.ID}
		}
	}

	model := proc.Models.FindModel(in.PostStepEnergy)

	sel := DiscreteSelection{Process: proc.ID, Model: model}
	if in.NumElements > 1 && proc.ElementCDF != nil {
		sel.Element = proc.ElementCDF.Sample(in.PostStepEnergy, in.Sample01())
	}
	return sel
}

// sampleProportional returns the index of the bucket that a uniform draw u
// (rescaled into [0, total)) falls into, proportional to each weight.
func sampleProportional(weights []float64, u float64) int {
	var total float64
	for _, w := range weights {
		total += w
	}
	target := u * total
	var running float64
	for i, w := range weights {
		running += w
		if target < running {
			return i
		}
	}
	return len(weights) - 1
}
