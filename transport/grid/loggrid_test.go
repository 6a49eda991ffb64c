package grid

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestUniformLogGridCalculator_Linear pins §8 Scenario 1: a log-uniform
// grid over [1, 1e5] with values equal to their own energy, exercising
// exact grid points, a genuinely interpolated point, and both out-of-range
// clamps with their literal expected values.
func TestUniformLogGridCalculator_Linear(t *testing.T) {
	front, back := 0.0, math.Log(1e5)
	g, err := NewUniformGrid(6, front, back)
	assert.NoError(t, err)
	values := []float64{1, 10, 100, 1000, 10000, 100000}
	record, err := NewRecord(g, values, nil, 1)
	assert.NoError(t, err)

	calc := NewUniformLogGridCalculator(record)

	assert.InDelta(t, 1.0, calc.Calculate(1), 1e-9)
	assert.InDelta(t, 100.0, calc.Calculate(100), 1e-9)
	assert.InDelta(t, 5.0, calc.Calculate(5), 1e-9)
	assert.InDelta(t, 1.0, calc.Calculate(0.0001), 1e-9)
	assert.InDelta(t, 100000.0, calc.Calculate(1e7), 1e-9)
}
