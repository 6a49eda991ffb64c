package grid

import "math"

// BoundaryCondition selects how the second-derivative tridiagonal system is
// closed at the two ends of the grid (§4.1 "Spline derivatives").
type BoundaryCondition int

const (
	// Natural sets both end second derivatives to zero.
	Natural BoundaryCondition = iota
	// NotAKnot enforces third-derivative continuity across the first and
	// last interior knots, folding the first two (and last two) pieces into
	// a single cubic.
	NotAKnot
	// Geant extrapolates a quadratic through the three interior points
	// nearest each end and uses its value there as the end second
	// derivative, matching the boundary convention used by Geant4's
	// physics-table builder.
	Geant
)

// evalCubicSpline evaluates the piecewise-cubic spline segment between
// (x0, y0, ddy0) and (x1, y1, ddy1) — where ddy is the second derivative at
// each endpoint — at x, per the standard natural-cubic-spline basis (the
// same basis as the teacher corpus's SplineInterpolator contract).
func evalCubicSpline(x0, y0, ddy0, x1, y1, ddy1, x float64) float64 {
	h := x1 - x0
	dx := x - x0
	a0 := y0
	a1 := (y1-y0)/h - h/6*(ddy1+2*ddy0)
	a2 := ddy0 / 2
	a3 := (ddy1 - ddy0) / (6 * h)
	return a0 + dx*(a1+dx*(a2+dx*a3))
}

// SplineSecondDerivatives solves the tridiagonal system for the second
// derivatives of a natural cubic spline through (x[i], y[i]), for the given
// boundary condition. x must be strictly increasing and len(x) == len(y) >= 4
// (NotAKnot needs at least two interior points to anchor its end
// conditions); Geant needs len(x) >= 5.
func SplineSecondDerivatives(x, y []float64, bc BoundaryCondition) []float64 {
	n := len(x)
	if n < 4 || len(y) != n {
		panic("grid: SplineSecondDerivatives requires matching x, y of length >= 4")
	}
	h := make([]float64, n-1)
	for i := 0; i < n-1; i++ {
		h[i] = x[i+1] - x[i]
		if h[i] <= 0 {
			panic("grid: SplineSecondDerivatives requires strictly increasing x")
		}
	}

	switch bc {
	case Natural:
		sub := make([]float64, n)
		diag := make([]float64, n)
		super := make([]float64, n)
		rhs := make([]float64, n)
		for i := 1; i < n-1; i++ {
			sub[i] = h[i-1]
			diag[i] = 2 * (h[i-1] + h[i])
			super[i] = h[i]
			rhs[i] = 6 * ((y[i+1]-y[i])/h[i] - (y[i]-y[i-1])/h[i-1])
		}
		diag[0], rhs[0] = 1, 0
		diag[n-1], rhs[n-1] = 1, 0
		return thomasSolve(sub, diag, super, rhs)
	case NotAKnot:
		return solveNotAKnot(h, x, y)
	case Geant:
		if n < 5 {
			panic("grid: Geant boundary condition requires at least 5 points")
		}
		return solveGeant(h, x, y)
	default:
		panic("grid: unknown BoundaryCondition")
	}
}

// thomasSolve solves a tridiagonal system via the Thomas algorithm.
func thomasSolve(sub, diag, super, rhs []float64) []float64 {
	n := len(diag)
	cp := make([]float64, n)
	dp := make([]float64, n)
	cp[0] = super[0] / diag[0]
	dp[0] = rhs[0] / diag[0]
	for i := 1; i < n; i++ {
		m := diag[i] - sub[i]*cp[i-1]
		if i < n-1 {
			cp[i] = super[i] / m
		}
		dp[i] = (rhs[i] - sub[i]*dp[i-1]) / m
	}
	x := make([]float64, n)
	x[n-1] = dp[n-1]
	for i := n - 2; i >= 0; i-- {
		x[i] = dp[i] - cp[i]*x[i+1]
	}
	return x
}

// solveNotAKnot eliminates M[0] and M[n-1] from the interior equations using
// the third-derivative-continuity relations, then solves the reduced
// (n-2)x(n-2) tridiagonal system for M[1..n-2].
func solveNotAKnot(h, x, y []float64) []float64 {
	n := len(x)
	isub := make([]float64, n-2)
	idiag := make([]float64, n-2)
	isuper := make([]float64, n-2)
	irhs := make([]float64, n-2)
	for k := 0; k < n-2; k++ {
		i := k + 1
		isub[k] = h[i-1]
		idiag[k] = 2 * (h[i-1] + h[i])
		isuper[k] = h[i]
		irhs[k] = 6 * ((y[i+1]-y[i])/h[i] - (y[i]-y[i-1])/h[i-1])
	}
	// M0 = ((h0+h1)*M1 - h0*M2) / h1 ; M(n-1) analogous at the right end.
	// Fold these into the i=1 and i=n-2 interior rows.
	// Row for i=1 (k=0): coefficient of M0 is h[0]; substitute
	// M0 = ((h0+h1)*M1 - h0*M2)/h1.
	h0, h1 := h[0], h[1]
	idiag[0] += h0 * (h0 + h1) / h1
	isuper[0] += -h0 * h0 / h1
	// Row for i=n-2 (k=n-3): coefficient of M[n-1] is h[n-2]; substitute
	// M[n-1] = ((h[n-2]+h[n-3])*M[n-2] - h[n-2]*M[n-3]) / h[n-3].
	hA, hB := h[n-3], h[n-2]
	idiag[n-3] += hB * (hA + hB) / hA
	isub[n-3] += -hB * hB / hA

	interior := thomasSolve(isub, idiag, isuper, irhs)

	m := make([]float64, n)
	copy(m[1:n-1], interior)
	m[0] = ((h0+h1)*m[1] - h0*m[2]) / h1
	m[n-1] = ((hA+hB)*m[n-2] - hB*m[n-3]) / hA
	return m
}

// solveGeant resolves the interior second derivatives with natural boundary
// conditions, then overrides the two end values with the curvature of a
// quadratic fit through the three interior points nearest each boundary.
//
// The Celeritas "geant" boundary-condition implementation was not present in
// the retrieved source (only its test vectors were); this is a documented
// best-effort rendition of the textual description in the spec rather than a
// byte-exact port. See DESIGN.md.
func solveGeant(h []float64, x, y []float64) []float64 {
	n := len(x)
	sub := make([]float64, n)
	diag := make([]float64, n)
	super := make([]float64, n)
	rhs := make([]float64, n)
	for i := 1; i < n-1; i++ {
		sub[i] = h[i-1]
		diag[i] = 2 * (h[i-1] + h[i])
		super[i] = h[i]
		rhs[i] = 6 * ((y[i+1]-y[i])/h[i] - (y[i]-y[i-1])/h[i-1])
	}
	diag[0], rhs[0] = 1, 0
	diag[n-1], rhs[n-1] = 1, 0
	m := thomasSolve(sub, diag, super, rhs)

	m[0] = quadraticCurvatureAt(x[1], m[1], x[2], m[2], x[3], m[3], x[0])
	m[n-1] = quadraticCurvatureAt(x[n-4], m[n-4], x[n-3], m[n-3], x[n-2], m[n-2], x[n-1])
	return m
}

// quadraticCurvatureAt fits a quadratic through three (x, y) points and
// returns its value at x0, used to extrapolate a boundary second derivative.
func quadraticCurvatureAt(x1, y1, x2, y2, x3, y3, x0 float64) float64 {
	l1 := ((x0 - x2) * (x0 - x3)) / ((x1 - x2) * (x1 - x3))
	l2 := ((x0 - x1) * (x0 - x3)) / ((x2 - x1) * (x2 - x3))
	l3 := ((x0 - x1) * (x0 - x2)) / ((x3 - x1) * (x3 - x2))
	return y1*l1 + y2*l2 + y3*l3
}

// SplineCalculator interpolates a value using an order-k piecewise Lagrange
// polynomial over a window of up to k+1 grid points (§4.1 "Spline
// calculator"). Order 1 degenerates to linear interpolation.
type SplineCalculator struct {
	logGrid     UniformGrid
	record      Record
	splineOrder int
}

// NewSplineCalculator constructs a calculator from a Record whose grid axis
// holds log(E) and whose SplineOrder selects the Lagrange window width.
func NewSplineCalculator(record Record) SplineCalculator {
	return SplineCalculator{logGrid: record.Grid, record: record, splineOrder: record.SplineOrder}
}

// Calculate interpolates the value at the given energy, returning a
// nonnegative result per §4.1's postcondition.
func (c SplineCalculator) Calculate(energy float64) float64 {
	loge := math.Log(energy)
	if loge <= c.logGrid.Front {
		return c.record.Values[0]
	}
	if loge >= c.logGrid.Back {
		return c.record.Values[c.logGrid.Size-1]
	}

	lower := c.logGrid.Find(loge)
	orderSteps := c.splineOrder/2 + 1

	lo := lower - orderSteps + 1
	if lo < 0 {
		lo = 0
	}
	hi := lower + orderSteps + 1
	if hi > c.logGrid.Size {
		hi = c.logGrid.Size
	}
	if c.splineOrder%2 == 0 && hi-lo > c.splineOrder+1 {
		lowDist := math.Abs(loge - c.logGrid.At(lower))
		highDist := math.Abs(c.logGrid.At(lower+1) - loge)
		if lowDist > highDist {
			lo++
		} else {
			hi--
		}
	}
	return math.Max(c.lagrange(energy, lo, hi), 0)
}

func (c SplineCalculator) lagrange(energy float64, lo, hi int) float64 {
	var result float64
	for outer := lo; outer < hi; outer++ {
		outerE := math.Exp(c.logGrid.At(outer))
		num, denom := 1.0, 1.0
		for inner := lo; inner < hi; inner++ {
			if inner == outer {
				continue
			}
			innerE := math.Exp(c.logGrid.At(inner))
			num *= energy - innerE
			denom *= outerE - innerE
		}
		result += (num / denom) * c.record.Values[outer]
	}
	return result
}
