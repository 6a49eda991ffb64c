// Package selector implements the step-limit calculator (§4.4), the
// discrete interaction selector (§4.5), and the interaction applier (§4.6):
// the per-step decision of how far a track may move and what happens when
// it stops early for a discrete interaction.
package selector

import (
	"fmt"

	"github.com/celeritas-go/transport"
	"github.com/celeritas-go/transport/grid"
	"github.com/celeritas-go/transport/physics"
)

// ProcessXsFunc computes the macroscopic cross section for one process at
// a given energy against a material.
type ProcessXsFunc func(energy float64) float64

// ProcessEntry is one applicable process's cross-section source for the
// step-limit calculation: either an IntegralXsProcess (for the integral
// method) or a plain XS function.
type ProcessEntry struct {
	Integral *physics.IntegralXsProcess
	Xs       ProcessXsFunc
}

// StepLimit is the outcome of §4.4: the step length and which action
// should handle it.
type StepLimit struct {
	Step   float64
	Action transport.ActionId
}

// StepLimitInputs bundles everything CalcPhysicsStepLimit needs for one
// track (§4.4's preconditions and data dependencies).
type StepLimitInputs struct {
	InteractionMfp   float64 // must be > 0
	Energy           float64
	IsStopped        bool
	Processes        []ProcessEntry
	RangeCalc        *grid.RangeCalculator // nil if the particle has no energy-loss process
	StepOptions      transport.ParticleStepOptions
	FixedStepLimiter float64 // <= 0 disables
	Xi               float64 // min_eprime_over_e, for the integral method

	DiscreteAction     transport.ActionId
	RangeAction        transport.ActionId
	FixedStepAction    transport.ActionId
}

// PerProcessXs is filled in by CalcPhysicsStepLimit with each process's
// computed cross section, for later use by the discrete selector (§4.5
// samples proportionally to these).
type PerProcessXs struct {
	MacroXs      float64
	PerProcess   []float64
	DedxRange    float64 // R(E0), populated only if a range grid exists
}

// CalcPhysicsStepLimit computes the combined step limit from discrete,
// continuous (range), and fixed-limiter constraints (§4.4).
func CalcPhysicsStepLimit(in StepLimitInputs) (StepLimit, PerProcessXs, error) {
	if in.InteractionMfp <= 0 {
		return StepLimit{}, PerProcessXs{}, fmt.Errorf("selector: CalcPhysicsStepLimit requires interaction_mfp > 0, got %g", in.InteractionMfp)
	}

	per := make([]float64, len(in.Processes))
	var total float64
	for i, p := range in.Processes {
		var xs float64
		if p.Integral != nil {
			xs = p.Integral.CalcMaxXs(in.Energy, in.Xi)
		} else {
			xs = p.Xs(in.Energy)
		}
		per[i] = xs
		total += xs
	}

	result := PerProcessXs{MacroXs: total, PerProcess: per}

	limit := StepLimit{Action: in.DiscreteAction}
	if in.IsStopped {
		limit.Step = 0
		return limit, result, nil
	}
	if total <= 0 {
		// No process applies: clear the action so the track advances freely.
		limit.Step = in.InteractionMfp
		limit.Action = transport.ActionId{}
		return limit, result, nil
	}

	limit.Step = in.InteractionMfp / total

	if in.RangeCalc != nil {
		rangeValue := in.RangeCalc.Calculate(in.Energy)
		result.DedxRange = rangeValue
		elossStep := physics.ScaledStepLimit(rangeValue, in.StepOptions)
		if elossStep <= limit.Step {
			limit.Step = elossStep
			limit.Action = in.RangeAction
		}
	}

	if in.FixedStepLimiter > 0 && in.FixedStepLimiter < limit.Step {
		limit.Step = in.FixedStepLimiter
		limit.Action = in.FixedStepAction
	}

	return limit, result, nil
}
