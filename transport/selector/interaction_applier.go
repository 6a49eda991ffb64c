package selector

import (
	"math"

	"github.com/celeritas-go/transport"
)

// InteractionAction classifies what a model's step produced (§4.6).
type InteractionAction int

const (
	Unchanged InteractionAction = iota
	Scattered
	Absorbed
	Failed
)

// Secondary is one emitted particle, produced into the per-state stack
// allocator (§5) and folded back into the parent's energy deposition when
// it falls below cutoff.
type Secondary struct {
	Particle      transport.ParticleId
	Energy        float64
	Direction     [3]float64
	Weight        float64
	Antiparticle  bool
	Valid         bool // false once nulled out by cutoff folding
}

// Interaction is the record a model produces for one track (§4.6).
type Interaction struct {
	Action           InteractionAction
	Energy           float64
	Direction        [3]float64
	EnergyDeposition float64
	Secondaries      []Secondary
}

// CutoffFunc reports the kinetic-energy cutoff for a secondary's particle
// type in the current material, and the secondary's rest mass.
type CutoffFunc func(transport.ParticleId) (cutoff, mass float64)

// StepView is the subset of per-track state the applier mutates.
type StepView interface {
	SetEnergy(e float64)
	SetDirection(d [3]float64)
	Kill()
	SetStepLimit(step float64, action transport.ActionId)
	DepositEnergy(d float64)
	PublishSecondaries(s []Secondary)
}

// ApplyInteraction implements §4.6. failureAction is the action id a
// failed interaction should retry with; cutoffActive disables the folding
// pass entirely when false; parentWeight is copied onto every secondary
// before the cutoff fold, per §4.6's "secondaries that survive have weight
// equal to the parent's."
func ApplyInteraction(view StepView, in Interaction, failureAction transport.ActionId, cutoffActive bool, cutoff CutoffFunc, parentWeight float64) {
	switch in.Action {
	case Failed:
		view.SetStepLimit(0, failureAction)
		return
	case Unchanged:
		return
	}

	view.SetEnergy(in.Energy)
	if in.Action == Scattered {
		view.SetDirection(normalizeDirection(in.Direction))
	} else if in.Action == Absorbed {
		view.Kill()
	}

	deposition := in.EnergyDeposition
	secondaries := in.Secondaries
	for i := range secondaries {
		secondaries[i].Weight = parentWeight
	}
	if cutoffActive {
		for i := range secondaries {
			s := &secondaries[i]
			if !s.Valid {
				continue
			}
			threshold, mass := cutoff(s.Particle)
			if s.Energy < threshold {
				deposition += s.Energy * s.Weight
				if s.Antiparticle {
					deposition += 2 * mass * s.Weight
				}
				s.Valid = false
			}
		}
	}

	surviving := secondaries[:0]
	for _, s := range secondaries {
		if s.Valid {
			surviving = append(surviving, s)
		}
	}

	view.DepositEnergy(deposition)
	view.PublishSecondaries(surviving)
}

func normalizeDirection(d [3]float64) [3]float64 {
	n := math.Sqrt(d[0]*d[0] + d[1]*d[1] + d[2]*d[2])
	if n == 0 {
		return d
	}
	return [3]float64{d[0] / n, d[1] / n, d[2] / n}
}
