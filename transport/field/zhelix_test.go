package field

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestZHelix_ClosesAfterFullCircumference exercises §8 Scenario 4: a charged
// particle in a uniform Z field returns close to its starting position after
// completing one full revolution, and the accumulated relative error after
// several revolutions stays small.
func TestZHelix_ClosesAfterFullCircumference(t *testing.T) {
	const radius = 3.8085386
	p := 10.498 // MeV/c, magnitude consistent with the given curvature radius
	charge := 1.0
	bz := p / (charge * radius)

	eq := LorentzEquation{Field: UniformZField{Bz: bz}, Charge: charge}
	integrator := ZHelix{Eq: eq}

	beg := OdeState{Pos: [3]float64{radius, 0, 0}, Mom: [3]float64{0, p, 0}}
	circumference := 2 * math.Pi * radius

	result := integrator.Integrate(circumference, beg)
	posErr := norm(sub3(result.EndState.Pos, beg.Pos))
	assert.Less(t, posErr, 1e-3)

	// Ten revolutions: accumulated relative position error squared stays
	// small, verifying the closed-form stepper doesn't drift.
	state := beg
	for i := 0; i < 10; i++ {
		state = integrator.Integrate(circumference, state).EndState
	}
	relErrSq := math.Pow(norm(sub3(state.Pos, beg.Pos))/radius, 2)
	assert.Less(t, relErrSq, 1e-5)
}

func TestZHelix_MomentumMagnitudePreserved(t *testing.T) {
	bz := 0.5
	eq := LorentzEquation{Field: UniformZField{Bz: bz}, Charge: -1}
	integrator := ZHelix{Eq: eq}

	beg := OdeState{Pos: [3]float64{0, 0, 0}, Mom: [3]float64{1, 2, 0.5}}
	end := integrator.Integrate(0.7, beg).EndState

	assert.InDelta(t, norm(beg.Mom), norm(end.Mom), 1e-9)
}

func TestClassicalRK4_MatchesZHelixForSmallStep(t *testing.T) {
	bz := 1.0
	eq := LorentzEquation{Field: UniformZField{Bz: bz}, Charge: 1}
	helix := ZHelix{Eq: eq}
	rk4 := ClassicalRK4{Eq: eq}

	beg := OdeState{Pos: [3]float64{1, 0, 0}, Mom: [3]float64{0, 1, 0.1}}
	step := 0.01

	wantEnd := helix.Integrate(step, beg).EndState
	gotEnd := rk4.Integrate(step, beg).EndState

	// RK4's local truncation error against the exact helical trajectory is
	// O(step^5), far below 1e-3 at step=0.01; the tolerance below is a loose
	// bound rather than a numerical-noise-scale one.
	assert.InDelta(t, wantEnd.Pos[0], gotEnd.Pos[0], 1e-3)
	assert.InDelta(t, wantEnd.Pos[1], gotEnd.Pos[1], 1e-3)
}
