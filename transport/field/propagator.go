package field

import (
	"fmt"
	"math"
)

// GeometryView is the subset of the external geometry collaborator (§6)
// the propagator needs: current position/direction, the distance to the
// next boundary, and the ability to move and cross it.
type GeometryView interface {
	Pos() [3]float64
	Dir() [3]float64
	SetDir(d [3]float64)
	FindNextStep() (distance float64, boundary bool)
	MoveInternal(p [3]float64)
	MoveToBoundary()
	IsOnBoundary() bool
	CrossBoundary()
}

// PropagationResult reports the outcome of one propagate(s) call (§4.2).
type PropagationResult struct {
	Distance float64
	Boundary bool
	Looping  bool
}

// Propagator wraps a FieldSubstepper, advancing a charged track through
// geometry over repeated substeps and coupling boundary detection (§4.2).
type Propagator struct {
	substepper *FieldSubstepper
	geo        GeometryView
	charge     float64
	options    FieldDriverOptions
}

// NewPropagator constructs a propagator. Charge must be nonzero: neutral
// particles use a separate straight-line along-step action (§4.2 "Gammas").
func NewPropagator(substepper *FieldSubstepper, geo GeometryView, charge float64, options FieldDriverOptions) (*Propagator, error) {
	if charge == 0 {
		return nil, fmt.Errorf("field: Propagator requires a nonzero charge; use the straight-line along-step action for neutrals")
	}
	return &Propagator{substepper: substepper, geo: geo, charge: charge, options: options}, nil
}

// Propagate advances the track up to arc length s, stopping early at a
// geometry boundary, and reports the outcome per §4.2's propagator contract.
func (p *Propagator) Propagate(s float64, mom [3]float64) PropagationResult {
	state := OdeState{Pos: p.geo.Pos(), Mom: mom}
	remaining := s
	var traveled float64

	for i := 0; i < p.options.MaxSubsteps && remaining > 0; i++ {
		sub := p.substepper.Advance(remaining, state)

		straightLine := norm(sub3(sub.State.Pos, state.Pos))
		boundaryDist, hasBoundary := p.geo.FindNextStep()

		if hasBoundary && straightLine > boundaryDist+p.options.DeltaIntersection {
			// The substep overshoots the boundary: shrink to intersect it.
			shrink := boundaryDist / straightLine
			sub.Length *= shrink
			// Re-integrate the shrunk chord for a consistent end state.
			sub = p.substepper.Advance(sub.Length, state)
			p.geo.MoveToBoundary()
			p.geo.CrossBoundary()
			traveled += sub.Length
			p.geo.SetDir(normalize(sub.State.Mom))
			return PropagationResult{Distance: traveled, Boundary: true}
		}

		if hasBoundary && math.Abs(straightLine-boundaryDist) <= p.options.DeltaIntersection {
			// Landed right on the boundary.
			p.geo.MoveInternal(sub.State.Pos)
			p.geo.SetDir(normalize(sub.State.Mom))
			p.geo.CrossBoundary()
			traveled += sub.Length
			return PropagationResult{Distance: traveled, Boundary: true}
		}

		p.geo.MoveInternal(sub.State.Pos)
		p.geo.SetDir(normalize(sub.State.Mom))
		state = sub.State
		traveled += sub.Length
		remaining -= sub.Length

		if sub.Length <= 0 {
			break
		}
	}

	if remaining > 1e-12*s && traveled <= 1e-12*s {
		return PropagationResult{Distance: math.Max(traveled, 1e-300), Boundary: false, Looping: true}
	}
	return PropagationResult{Distance: traveled, Boundary: false}
}

func normalize(v [3]float64) [3]float64 {
	n := norm(v)
	if n < 1e-300 {
		return v
	}
	return [3]float64{v[0] / n, v[1] / n, v[2] / n}
}
