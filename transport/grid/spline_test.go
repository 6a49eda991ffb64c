package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplineSecondDerivatives_Natural(t *testing.T) {
	x := []float64{0, 1, 2, 3, 4}
	y := []float64{0, 2, 1, 2, 0}
	got := SplineSecondDerivatives(x, y, Natural)
	want := []float64{0, -6, 6, -6, 0}
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-9)
	}
}

func TestSplineSecondDerivatives_NotAKnot(t *testing.T) {
	x := []float64{0, 1, 2, 3, 4}
	y := []float64{0, 2, 1, 2, 0}
	got := SplineSecondDerivatives(x, y, NotAKnot)
	want := []float64{-10.5, -3, 4.5, -3, -10.5}
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-9)
	}
}

func TestEvalCubicSpline_MatchesKnots(t *testing.T) {
	x := []float64{0, 1, 2, 3, 4}
	y := []float64{0, 2, 1, 2, 0}
	m := SplineSecondDerivatives(x, y, Natural)
	for i := range x {
		var got float64
		if i == len(x)-1 {
			got = evalCubicSpline(x[i-1], y[i-1], m[i-1], x[i], y[i], m[i], x[i])
		} else {
			got = evalCubicSpline(x[i], y[i], m[i], x[i+1], y[i+1], m[i+1], x[i])
		}
		assert.InDelta(t, y[i], got, 1e-9)
	}
}

func TestSplineCalculator_OrderOneMatchesLinear(t *testing.T) {
	g, err := NewUniformGrid(5, 0, 4)
	assert.NoError(t, err)
	values := []float64{1, 2, 4, 8, 16}
	record, err := NewRecord(g, values, nil, 1)
	assert.NoError(t, err)
	calc := NewSplineCalculator(record)

	loggrid, err := NewUniformGrid(5, 0, 4)
	assert.NoError(t, err)
	logRecord, err := NewRecord(loggrid, values, nil, 1)
	assert.NoError(t, err)
	lin := NewUniformLogGridCalculator(logRecord)

	// At a log-energy of 2 (energy = e^2), order-1 Lagrange should match
	// the same linear bracket-and-lerp the log-grid calculator uses.
	got := calc.Calculate(7.389056099) // e^2
	want := lin.Calculate(7.389056099)
	assert.InDelta(t, want, got, 1e-6)
}

func TestSplineCalculator_ClampsAtEnds(t *testing.T) {
	g, err := NewUniformGrid(4, 0, 3)
	assert.NoError(t, err)
	values := []float64{10, 20, 30, 40}
	record, err := NewRecord(g, values, nil, 1)
	assert.NoError(t, err)
	calc := NewSplineCalculator(record)

	assert.Equal(t, values[0], calc.Calculate(0.5))
	assert.Equal(t, values[len(values)-1], calc.Calculate(1e6))
}
