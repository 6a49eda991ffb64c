package grid

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestXsCalculator_FullyScaled pins §8 Scenario 2: a grid of 6 uniform-log
// points over [0.1, 10000] with constant physical cross section 1, scaled
// from the front (the "prime_index = 0" case, Lower == nil). Both the
// extrapolated endpoints and the genuinely out-of-range queries carry the
// literal expected values from the scenario.
func TestXsCalculator_FullyScaled(t *testing.T) {
	front, back := math.Log(0.1), math.Log(10000)
	g, err := NewUniformGrid(6, front, back)
	assert.NoError(t, err)

	// Physical xs is constant at 1; the stored (scaled) representation for
	// a fully-scaled grid is xs(E_i)*E_i, i.e. the grid's own energies.
	values := make([]float64, 6)
	for i := range values {
		values[i] = math.Exp(g.At(i))
	}
	record, err := NewRecord(g, values, nil, 1)
	assert.NoError(t, err)

	xsGrid, err := NewCrossSectionGrid(nil, record)
	assert.NoError(t, err)
	calc := NewXsCalculator(xsGrid)

	assert.InDelta(t, 1.0, calc.Calculate(0.1), 1e-9)
	assert.InDelta(t, 1.0, calc.Calculate(10000), 1e-9)
	assert.InDelta(t, 1000.0, calc.Calculate(0.0001), 1e-9)
	assert.InDelta(t, 0.1, calc.Calculate(1e5), 1e-9)
}

// TestXsCalculator_PartiallyScaled exercises a grid with a genuine unscaled
// lower segment and a scaled upper segment meeting at a shared breakpoint
// (constant physical xs = 1 throughout), checking the asymmetric
// out-of-range behavior: below the unscaled front, the value snaps flat;
// above the scaled back, it decays as 1/E.
func TestXsCalculator_PartiallyScaled(t *testing.T) {
	lowerGrid, err := NewUniformGrid(2, math.Log(1), math.Log(10))
	assert.NoError(t, err)
	lowerRecord, err := NewRecord(lowerGrid, []float64{1, 1}, nil, 1)
	assert.NoError(t, err)

	upperGrid, err := NewUniformGrid(3, math.Log(10), math.Log(1000))
	assert.NoError(t, err)
	// xs*E at E=10,100,1000 with xs constant at 1.
	upperRecord, err := NewRecord(upperGrid, []float64{10, 100, 1000}, nil, 1)
	assert.NoError(t, err)

	xsGrid, err := NewCrossSectionGrid(&lowerRecord, upperRecord)
	assert.NoError(t, err)
	calc := NewXsCalculator(xsGrid)

	assert.InDelta(t, 1.0, calc.Calculate(1), 1e-9)
	assert.InDelta(t, 1.0, calc.Calculate(5), 1e-9)
	assert.InDelta(t, 1.0, calc.Calculate(10), 1e-9)
	assert.InDelta(t, 1.0, calc.Calculate(50), 1e-9)
	assert.InDelta(t, 1.0, calc.Calculate(1000), 1e-9)

	// Below the unscaled front: flat snap, no 1/E decay.
	assert.InDelta(t, 1.0, calc.Calculate(0.1), 1e-9)
	// Above the scaled back: decays as upper[N-1]/E.
	assert.InDelta(t, 0.1, calc.Calculate(10000), 1e-9)
}
