package field

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// FieldDriverOptions carries the tunables shared by the chord-finder and
// the accurate-advance driver (§4.2).
type FieldDriverOptions struct {
	DeltaChord         float64
	DeltaIntersection  float64
	EpsilonRelMax      float64
	EpsilonStep        float64
	MinimumStep        float64
	MinChordShrink     float64
	Safety             float64
	Pshrink            float64
	Pgrow              float64
	MaxSteppingDecrease float64
	MaxSteppingIncrease float64
	MaxNsteps          int
	MaxSubsteps        int
	InitialStepTol     float64
	DchordTol          float64
}

// DefaultFieldDriverOptions returns the conventional G4ChordFinder-derived
// defaults used throughout the teacher's own benchmarking-config pattern of
// shipping a documented "reasonable default" alongside the options struct.
func DefaultFieldDriverOptions() FieldDriverOptions {
	return FieldDriverOptions{
		DeltaChord:          0.25,
		DeltaIntersection:   1e-4,
		EpsilonRelMax:       1e-3,
		EpsilonStep:         1e-5,
		MinimumStep:         1e-5,
		MinChordShrink:      0.7,
		Safety:              0.9,
		Pshrink:             -0.25,
		Pgrow:               -0.2,
		MaxSteppingDecrease: 0.1,
		MaxSteppingIncrease: 5,
		MaxNsteps:           100,
		MaxSubsteps:         100,
		InitialStepTol:      1e-6,
		DchordTol:           1e-10,
	}
}

// Substep is the outcome of one accepted substep: the state reached and
// the curved-path length actually advanced (0 < length <= requested step).
type Substep struct {
	State  OdeState
	Length float64
}

// FieldSubstepper advances a track along a curved path by one
// sagitta-and-error-bounded substep, per §4.2's "Substepper contract".
// Mirrors the original FieldSubstepper's four named stages: find_next_chord,
// accurate_advance, integrate_step (folded into one_good_step's caller),
// and one_good_step/new_step_scale.
type FieldSubstepper struct {
	options    FieldDriverOptions
	integrator Integrator
	maxChord   float64 // cached chord-length bound from a previous call
}

// NewFieldSubstepper constructs a substepper over the given integrator.
func NewFieldSubstepper(options FieldDriverOptions, integrator Integrator) *FieldSubstepper {
	return &FieldSubstepper{options: options, integrator: integrator, maxChord: math.Inf(1)}
}

// Advance performs the substepper contract for one requested chord length.
func (fs *FieldSubstepper) Advance(step float64, state OdeState) Substep {
	if step <= fs.options.MinimumStep {
		return Substep{State: fs.integrator.Integrate(step, state).EndState, Length: step}
	}

	trial := math.Min(step, fs.maxChord)
	end, errSq := fs.findNextChord(trial, state)
	if end.Length < step {
		fs.maxChord = end.Length / fs.options.MinChordShrink
	}

	if errSq > 1 {
		nextStep := step * fs.newStepScale(errSq)
		end = fs.accurateAdvance(end.Length, state, nextStep)
	}
	return end
}

// findNextChord shrinks step until the sagitta from state's straight-line
// chord is within delta_chord + dchord_tol, or the attempt budget runs out.
func (fs *FieldSubstepper) findNextChord(step float64, state OdeState) (Substep, float64) {
	var integrated FieldIntegration
	remaining := fs.options.MaxNsteps
	for {
		integrated = fs.integrator.Integrate(step, state)
		dchord := distanceToChord(state.Pos, integrated.MidState.Pos, integrated.EndState.Pos)
		if dchord <= fs.options.DeltaChord+fs.options.DchordTol {
			break
		}
		remaining--
		if remaining <= 0 {
			break
		}
		scale := math.Max(math.Sqrt(fs.options.DeltaChord/dchord), fs.options.MinChordShrink)
		step *= scale
	}

	errSq := relErrSq(integrated.ErrState, step, state.Mom, fs.options.EpsilonRelMax)
	return Substep{State: integrated.EndState, Length: step}, errSq
}

// accurateAdvance integrates a fixed curved length as one or more
// error-controlled sub-substeps until the accumulated length reaches step.
func (fs *FieldSubstepper) accurateAdvance(step float64, state OdeState, hinitial float64) Substep {
	h := step
	if hinitial > fs.options.InitialStepTol*step && hinitial < step {
		h = hinitial
	}
	hThreshold := fs.options.EpsilonStep * step

	cur := state
	var curveLength float64
	remaining := fs.options.MaxNsteps
	var proposed float64

	for {
		sub, next := fs.integrateStep(h, cur)
		cur = sub.State
		curveLength += sub.Length
		proposed = next

		if h < hThreshold || curveLength >= step {
			break
		}
		remaining--
		if remaining <= 0 {
			break
		}
		h = math.Min(math.Max(proposed, fs.options.MinimumStep), step-curveLength)
	}

	return Substep{State: cur, Length: math.Min(curveLength, step)}
}

// integrateStep advances by one trial step, delegating to one_good_step
// above the minimum-step threshold, or doing a plain quick integration
// below it; it returns the substep taken and its proposed next step size.
func (fs *FieldSubstepper) integrateStep(step float64, state OdeState) (Substep, float64) {
	if step > fs.options.MinimumStep {
		return fs.oneGoodStep(step, state)
	}
	integrated := fs.integrator.Integrate(step, state)
	errSq := relErrSq(integrated.ErrState, step, state.Mom, fs.options.EpsilonRelMax)
	return Substep{State: integrated.EndState, Length: step}, step * fs.newStepScale(errSq)
}

// oneGoodStep shrinks step until the relative-error bound is met, then
// proposes a next step size scaled up within max_stepping_increase.
func (fs *FieldSubstepper) oneGoodStep(step float64, state OdeState) (Substep, float64) {
	var integrated FieldIntegration
	var errSq float64
	remaining := fs.options.MaxNsteps
	for {
		integrated = fs.integrator.Integrate(step, state)
		errSq = relErrSq(integrated.ErrState, step, state.Mom, fs.options.EpsilonRelMax)
		if errSq <= 1 {
			break
		}
		remaining--
		if remaining <= 0 {
			break
		}
		step *= math.Max(fs.newStepScale(errSq), fs.options.MaxSteppingDecrease)
	}

	proposed := step * math.Min(fs.newStepScale(errSq), fs.options.MaxSteppingIncrease)
	return Substep{State: integrated.EndState, Length: step}, proposed
}

// newStepScale proposes a step-size multiplier from a squared relative
// error, shrinking with Pshrink when the error exceeds tolerance and
// growing with Pgrow otherwise.
func (fs *FieldSubstepper) newStepScale(errSq float64) float64 {
	exponent := fs.options.Pgrow
	if errSq > 1 {
		exponent = fs.options.Pshrink
	}
	return fs.options.Safety * math.Pow(errSq, 0.5*exponent)
}

// distanceToChord returns the perpendicular distance from mid to the line
// through beg and end — the sagitta of the curved substep.
func distanceToChord(beg, mid, end [3]float64) float64 {
	chord := sub3(end, beg)
	chordLen := norm(chord)
	if chordLen < 1e-30 {
		return norm(sub3(mid, beg))
	}
	toMid := sub3(mid, beg)
	t := dotProduct(toMid, chord) / (chordLen * chordLen)
	proj := [3]float64{beg[0] + t*chord[0], beg[1] + t*chord[1], beg[2] + t*chord[2]}
	return norm(sub3(mid, proj))
}

func sub3(a, b [3]float64) [3]float64 {
	return [3]float64{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

// relErrSq computes epsilon^2 = sum_i ratio_i^2 / epsilon_rel_max^2 over the
// position and momentum components (§4.2). Each momentum error is divided by
// |p| of refMom and each position error by step*|p|; the per-component
// magnitudes |y_i| of the state are not used. The six per-component ratios
// are reduced with gonum's Euclidean vector norm rather than a hand-rolled
// accumulator.
func relErrSq(errState OdeState, step float64, refMom [3]float64, epsilonRelMax float64) float64 {
	scale := norm(refMom)
	if scale < 1e-30 {
		scale = 1
	}
	ratios := make([]float64, 0, 6)
	for i := 0; i < 3; i++ {
		denom := math.Max(math.Abs(refMom[i]), scale)
		ratios = append(ratios, errState.Mom[i]/denom)
	}
	for i := 0; i < 3; i++ {
		denom := math.Max(math.Abs(refMom[i])*step, scale*step)
		if denom < 1e-30 {
			denom = 1
		}
		ratios = append(ratios, errState.Pos[i]/denom)
	}
	norm2 := floats.Norm(ratios, 2)
	return (norm2 * norm2) / (epsilonRelMax * epsilonRelMax)
}
