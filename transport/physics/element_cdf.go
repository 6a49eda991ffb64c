package physics

import (
	"fmt"

	"github.com/celeritas-go/transport"
)

// ElementCDF holds, per energy bin, a cumulative distribution over a
// material's element components, normalized to 1 (§4.3 "Element CDF").
type ElementCDF struct {
	Energy []float64              // length N, the energy grid the CDF is tabulated at
	CDF    [][]float64            // CDF[i] has one entry per element component, nondecreasing, CDF[i][last]==1
	Elems  []transport.ElementComponentId
}

// NewElementCDF builds a normalized CDF from raw per-element microscopic
// cross sections (unnormalized weights), one row per energy bin.
func NewElementCDF(energy []float64, elems []transport.ElementComponentId, rawWeights [][]float64) (ElementCDF, error) {
	if len(energy) != len(rawWeights) {
		return ElementCDF{}, fmt.Errorf("physics: ElementCDF energy/weights length mismatch (%d vs %d)", len(energy), len(rawWeights))
	}
	cdf := make([][]float64, len(rawWeights))
	for i, row := range rawWeights {
		if len(row) != len(elems) {
			return ElementCDF{}, fmt.Errorf("physics: ElementCDF row %d length %d does not match %d elements", i, len(row), len(elems))
		}
		var sum float64
		for _, w := range row {
			sum += w
		}
		if sum <= 0 {
			return ElementCDF{}, fmt.Errorf("physics: ElementCDF row %d has nonpositive total weight", i)
		}
		acc := make([]float64, len(row))
		var running float64
		for j, w := range row {
			running += w
			acc[j] = running / sum
		}
		cdf[i] = acc
	}
	return ElementCDF{Energy: energy, CDF: cdf, Elems: elems}, nil
}

// Sample draws an element component at the given energy using a uniform
// draw u in [0,1): the bracketing energy row's CDF is searched for the
// first entry exceeding u (§4.3).
func (c ElementCDF) Sample(energy float64, u float64) transport.ElementComponentId {
	row := c.rowAt(energy)
	for i, v := range row {
		if u < v {
			return c.Elems[i]
		}
	}
	return c.Elems[len(c.Elems)-1]
}

// rowAt returns the CDF row for the bracketing energy bin, clamping at
// the grid ends.
func (c ElementCDF) rowAt(energy float64) []float64 {
	if energy <= c.Energy[0] {
		return c.CDF[0]
	}
	n := len(c.Energy)
	if energy >= c.Energy[n-1] {
		return c.CDF[n-1]
	}
	lo, hi := 0, n-1
	for lo+1 < hi {
		mid := (lo + hi) / 2
		if c.Energy[mid] <= energy {
			lo = mid
		} else {
			hi = mid
		}
	}
	return c.CDF[lo]
}
