package grid

import (
	"fmt"
	"math"
)

// rangeIntegrationSubsteps is the number of composite-midpoint-rule
// substeps used to integrate dE/dx into a range table between adjacent
// tabulated energies, matching Geant4's physics-table builder.
const rangeIntegrationSubsteps = 100

// RangeFromEnergyLoss integrates a tabulated dE/dx curve (energy in
// increasing order, loss in energy-per-length units, both indexed on the
// same UniformLogGridCalculator-compatible log-energy grid) into a range
// table R(E) = integral_0^E dE'/ (dE/dx)(E'), via composite midpoint rule
// with rangeIntegrationSubsteps substeps per tabulated interval.
//
// The first range value is computed analytically as R[0] = 2*E[0]/dEdx[0],
// treating dE/dx as proportional to sqrt(E) over [0, E[0]]. Every dE/dx entry must be
// strictly positive; a particle that cannot lose energy has no range table.
func RangeFromEnergyLoss(energy, dEdx []float64) ([]float64, error) {
	n := len(energy)
	if n < 2 || len(dEdx) != n {
		return nil, fmt.Errorf("grid: RangeFromEnergyLoss needs matching energy, dEdx of length >= 2")
	}
	for i, d := range dEdx {
		if d <= 0 {
			return nil, fmt.Errorf("grid: RangeFromEnergyLoss requires positive dE/dx, got %g at index %d", d, i)
		}
	}

	r := make([]float64, n)
	r[0] = 2 * energy[0] / dEdx[0]

	for i := 1; i < n; i++ {
		lo, hi := energy[i-1], energy[i]
		step := (hi - lo) / rangeIntegrationSubsteps
		var sum float64
		for k := 0; k < rangeIntegrationSubsteps; k++ {
			mid := lo + (float64(k)+0.5)*step
			sum += step / interpolateDEdx(energy, dEdx, mid)
		}
		r[i] = r[i-1] + sum
	}
	return r, nil
}

// interpolateDEdx linearly interpolates the dE/dx table at x, which is
// known to lie within [energy[0], energy[len-1]].
func interpolateDEdx(energy, dEdx []float64, x float64) float64 {
	n := len(energy)
	lo, hi := 0, n-1
	for lo+1 < hi {
		mid := (lo + hi) / 2
		if energy[mid] <= x {
			lo = mid
		} else {
			hi = mid
		}
	}
	return linearInterpolate(energy[lo], dEdx[lo], energy[hi], dEdx[hi], x)
}

// RangeCalculator evaluates a tabulated range-vs-energy grid, scaling
// below the lowest tabulated energy as range ~ sqrt(E/Emin)*R(Emin), per
// §4.1's off-end scaling for range grids (grounded in the teacher corpus's
// RangeCalculator: low-energy range falls off like the square root of
// energy, matching a particle slowing at roughly constant stopping power).
type RangeCalculator struct {
	logGrid UniformLogGridCalculator
}

// NewRangeCalculator constructs a calculator from a Record whose Grid axis
// holds log(E) and whose Values hold range.
func NewRangeCalculator(record Record) RangeCalculator {
	return RangeCalculator{logGrid: NewUniformLogGridCalculator(record)}
}

// Calculate returns the range at the given energy. Above the highest
// tabulated energy the result clamps to the top tabulated range, per §8's
// universal invariant; below the lowest it scales per the doc comment above.
func (c RangeCalculator) Calculate(energy float64) float64 {
	emin := c.logGrid.EnergyMin()
	if energy <= emin {
		rmin := c.logGrid.At(0)
		return rmin * math.Sqrt(energy/emin)
	}
	return c.logGrid.Calculate(energy)
}

// InverseRangeCalculator inverts a range grid: given a range, returns the
// energy a particle with that range would have, scaling below the lowest
// tabulated range as energy ~ (r/rmin)^2 * Emin, the inverse of
// RangeCalculator's off-end scaling. When the source record carries second
// derivatives, the energy-vs-range interior interpolation uses a cubic
// spline built against the swapped (R, E) axes, per §4.1's "apply the same
// algorithm to the swapped axes" — not the forward record's own derivatives,
// which are basis-dependent and built against (E, R).
type InverseRangeCalculator struct {
	record    Record
	useSpline bool
	invDeriv  []float64 // second derivatives of E against R, built once here
}

// NewInverseRangeCalculator constructs a calculator from the same Record a
// RangeCalculator uses (monotonically increasing range values required). If
// record.HasDerivatives(), the swapped-axis spline is built once here via
// the natural boundary condition: the forward record only records whether
// derivatives are present, not which boundary condition produced them, so
// there is no basis for recovering the original choice for the inverse fit.
// A record with fewer than 4 points cannot support a cubic fit regardless;
// Calculate falls back to linear interpolation for it.
func NewInverseRangeCalculator(record Record) (InverseRangeCalculator, error) {
	for i := 1; i < len(record.Values); i++ {
		if record.Values[i] <= record.Values[i-1] {
			return InverseRangeCalculator{}, fmt.Errorf("grid: InverseRangeCalculator requires a strictly increasing range table")
		}
	}
	calc := InverseRangeCalculator{record: record}
	if record.HasDerivatives() && record.Grid.Size >= 4 {
		n := record.Grid.Size
		energies := make([]float64, n)
		for i := 0; i < n; i++ {
			energies[i] = math.Exp(record.Grid.At(i))
		}
		calc.invDeriv = SplineSecondDerivatives(record.Values, energies, Natural)
		calc.useSpline = true
	}
	return calc, nil
}

// Calculate returns the energy corresponding to the given range.
func (c InverseRangeCalculator) Calculate(r float64) float64 {
	values := c.record.Values
	rmin, rmax := values[0], values[len(values)-1]
	emin := math.Exp(c.record.Grid.Front)
	emax := math.Exp(c.record.Grid.Back)

	if r <= rmin {
		ratio := r / rmin
		return emin * ratio * ratio
	}
	if r >= rmax {
		return emax
	}

	i := findBracket(values, r)
	loge0, loge1 := c.record.Grid.At(i), c.record.Grid.At(i+1)
	e0, e1 := math.Exp(loge0), math.Exp(loge1)
	if c.useSpline {
		return evalCubicSpline(values[i], e0, c.invDeriv[i], values[i+1], e1, c.invDeriv[i+1], r)
	}
	return linearInterpolate(values[i], e0, values[i+1], e1, r)
}

// findBracket returns i such that values[i] <= x < values[i+1], for a
// strictly increasing values slice.
func findBracket(values []float64, x float64) int {
	lo, hi := 0, len(values)-1
	for lo+1 < hi {
		mid := (lo + hi) / 2
		if values[mid] <= x {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo
}
