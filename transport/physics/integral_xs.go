package physics

import "math"

// IntegralXsProcess stores, per (process, material), the energy of the
// maximum tabulated cross section, used to estimate an over-the-step
// cross-section bound for the integral method (§4.3 "Integral-XS
// estimator").
type IntegralXsProcess struct {
	EnergyMaxXs float64
	XsAt        func(energy float64) float64 // the process's macro-XS calculator
}

// CalcMaxXs estimates sigma_max over a step starting at pre-step energy e0,
// using the peak-energy shortcut when the peak falls within the step's
// energy window, otherwise the larger of the two endpoint cross sections.
// xi defaults to min_eprime_over_e (1 - max_step_over_range) per §4.3.
func (p IntegralXsProcess) CalcMaxXs(e0, xi float64) float64 {
	windowLo := xi * e0
	if windowLo <= p.EnergyMaxXs && p.EnergyMaxXs < e0 {
		return p.XsAt(p.EnergyMaxXs)
	}
	return math.Max(p.XsAt(e0), p.XsAt(windowLo))
}
