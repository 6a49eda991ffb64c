// Package field implements the magnetic-field propagator and adaptive
// substepper from §4.2: ODE integration (classical RK4, Dormand-Prince
// 5(4), and an exact analytic Z-helix), chord-based step shrinking to meet
// a sagitta tolerance, and accurate-advance with relative-error control.
//
// Vector arithmetic on the six-component ODE state is hand-rolled here, but
// the adaptive substepper's relative-error norm borrows
// gonum.org/v1/gonum/floats rather than a hand-rolled reduction.
package field

import "math"

// OdeState is the six-real state of a charged-particle track along a
// curved path: position and momentum, both in native units (§4.2).
type OdeState struct {
	Pos [3]float64
	Mom [3]float64
}

// Scale returns a*s for every component, used by integrator stage
// combinations.
func (s OdeState) Scale(a float64) OdeState {
	return OdeState{
		Pos: [3]float64{s.Pos[0] * a, s.Pos[1] * a, s.Pos[2] * a},
		Mom: [3]float64{s.Mom[0] * a, s.Mom[1] * a, s.Mom[2] * a},
	}
}

// Add returns s + o componentwise.
func (s OdeState) Add(o OdeState) OdeState {
	return OdeState{
		Pos: [3]float64{s.Pos[0] + o.Pos[0], s.Pos[1] + o.Pos[1], s.Pos[2] + o.Pos[2]},
		Mom: [3]float64{s.Mom[0] + o.Mom[0], s.Mom[1] + o.Mom[1], s.Mom[2] + o.Mom[2]},
	}
}

// Sub returns s - o componentwise.
func (s OdeState) Sub(o OdeState) OdeState {
	return s.Add(o.Scale(-1))
}

func dotProduct(a, b [3]float64) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func norm(v [3]float64) float64 {
	return math.Sqrt(dotProduct(v, v))
}

func cross(a, b [3]float64) [3]float64 {
	return [3]float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

// Field evaluates the magnetic field vector at a position, in native units.
type Field interface {
	At(pos [3]float64) [3]float64
}

// UniformZField is a magnetic field with only a z component, constant
// everywhere — the field the analytic Z-helix integrator requires.
type UniformZField struct {
	Bz float64
}

// At implements Field.
func (f UniformZField) At([3]float64) [3]float64 { return [3]float64{0, 0, f.Bz} }

// LorentzEquation evaluates the right-hand side of the Lorentz-force ODE,
// dr/ds = p/|p|, dp/ds = (q/|p|)*(p x B(r)), for a charge q (§4.2).
type LorentzEquation struct {
	Field  Field
	Charge float64
}

// Eval returns the derivative of state with respect to path length s.
func (eq LorentzEquation) Eval(state OdeState) OdeState {
	p := norm(state.Mom)
	b := eq.Field.At(state.Pos)
	force := cross(state.Mom, b)
	var dp [3]float64
	for i := range dp {
		dp[i] = (eq.Charge / p) * force[i]
	}
	var dr [3]float64
	for i := range dr {
		dr[i] = state.Mom[i] / p
	}
	return OdeState{Pos: dr, Mom: dp}
}
