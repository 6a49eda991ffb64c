package grid

import (
	"fmt"
	"math"
)

// CrossSectionGrid is a piecewise-scaled cross-section table (§4.1
// "Cross-section grid"): a lower-energy grid whose values store cross
// section directly, and an upper-energy grid whose values store
// cross-section*energy ("XS*E"), the two meeting at a shared breakpoint
// energy. Above the breakpoint, values scale as 1/E between tabulated
// points, matching the standard EM-physics cross-section parametrization
// where the raw cross section falls off roughly as 1/E at high energy.
//
// Lower is nil when the entire grid is scaled from its front point onward
// (the "prime_index = 0" case): there is no unscaled segment at all, and
// Upper's stored values are XS*E over the whole domain, including its
// first point.
type CrossSectionGrid struct {
	Lower *Record // energies below breakpoint; Values are XS directly; nil if fully scaled
	Upper Record  // energies at/above breakpoint; Values are XS*E
}

// NewCrossSectionGrid validates that, when lower is supplied, lower and
// upper are contiguous: the last lower grid point must equal the first
// upper grid point (the shared breakpoint energy). Pass a nil lower to
// build a fully scaled grid with no unscaled segment.
func NewCrossSectionGrid(lower *Record, upper Record) (CrossSectionGrid, error) {
	if lower == nil {
		return CrossSectionGrid{Upper: upper}, nil
	}
	lowerBack := lower.Grid.At(lower.Grid.Size - 1)
	upperFront := upper.Grid.At(0)
	if math.Abs(lowerBack-upperFront) > 1e-9*math.Max(1, math.Abs(lowerBack)) {
		return CrossSectionGrid{}, fmt.Errorf(
			"grid: cross-section grid lower back %g must equal upper front %g", lowerBack, upperFront)
	}
	return CrossSectionGrid{Lower: lower, Upper: upper}, nil
}

// XsCalculator evaluates a CrossSectionGrid at a given energy (§4.1).
type XsCalculator struct {
	grid CrossSectionGrid
}

// NewXsCalculator constructs a calculator over the given grid.
func NewXsCalculator(grid CrossSectionGrid) XsCalculator {
	return XsCalculator{grid: grid}
}

// Calculate returns the cross section at the given energy, scaling the
// upper grid's stored XS*E values back down by 1/E. Above the grid's back,
// the last scaled value is divided by the query energy (preserving the 1/E
// falloff the scaled segment represents). Below the grid's front, a fully
// scaled grid (Lower == nil) likewise divides its first scaled value by the
// query energy, matching §8's scaled-grid extrapolation scenario, while a
// grid with a Lower segment returns Lower's first value unchanged.
func (c XsCalculator) Calculate(energy float64) float64 {
	if c.grid.Lower == nil {
		front := math.Exp(c.grid.Upper.Grid.Front)
		if energy <= front {
			return c.grid.Upper.Values[0] / energy
		}
		scaledXsE := NewUniformLogGridCalculator(c.grid.Upper).Calculate(energy)
		return scaledXsE / energy
	}

	breakpoint := math.Exp(c.grid.Lower.Grid.At(c.grid.Lower.Grid.Size - 1))
	if energy < breakpoint {
		return NewUniformLogGridCalculator(*c.grid.Lower).Calculate(energy)
	}
	scaledXsE := NewUniformLogGridCalculator(c.grid.Upper).Calculate(energy)
	return scaledXsE / energy
}
