package selector

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/celeritas-go/transport"
)

type fakeStepView struct {
	energy      float64
	direction   [3]float64
	killed      bool
	stepLimit   float64
	stepAction  transport.ActionId
	deposition  float64
	secondaries []Secondary
}

func (v *fakeStepView) SetEnergy(e float64)        { v.energy = e }
func (v *fakeStepView) SetDirection(d [3]float64)  { v.direction = d }
func (v *fakeStepView) Kill()                      { v.killed = true }
func (v *fakeStepView) SetStepLimit(s float64, a transport.ActionId) {
	v.stepLimit, v.stepAction = s, a
}
func (v *fakeStepView) DepositEnergy(d float64)          { v.deposition = d }
func (v *fakeStepView) PublishSecondaries(s []Secondary) { v.secondaries = s }

// TestApplyInteraction_SecondaryCutoffFolding grounds on §8 Scenario 6: a
// 10 MeV mu- ionization interaction with a 1 keV electron cutoff and a
// secondary electron at 0.5 keV.
func TestApplyInteraction_SecondaryCutoffFolding(t *testing.T) {
	electron := transport.NewParticleId(1)
	view := &fakeStepView{}

	interaction := Interaction{
		Action:           Scattered,
		Energy:           9.9995, // 10 MeV - 0.5 keV
		Direction:        [3]float64{3, 4, 0},
		EnergyDeposition: 0,
		Secondaries: []Secondary{
			{Particle: electron, Energy: 0.0005, Weight: 1, Valid: true},
		},
	}

	cutoff := func(p transport.ParticleId) (float64, float64) {
		if p == electron {
			return 0.001, 0.511
		}
		return 0, 0
	}

	ApplyInteraction(view, interaction, transport.ActionId{}, true, cutoff, 1)

	assert.Equal(t, 9.9995, view.energy)
	assert.InDelta(t, 1.0, view.direction[0]*view.direction[0]+view.direction[1]*view.direction[1]+view.direction[2]*view.direction[2], 1e-9)
	assert.InDelta(t, 0.0005, view.deposition, 1e-12)
	assert.Empty(t, view.secondaries)
	assert.False(t, view.killed)
}

func TestApplyInteraction_PairAnnihilationAddsRestMass(t *testing.T) {
	positron := transport.NewParticleId(2)
	view := &fakeStepView{}

	interaction := Interaction{
		Action: Absorbed,
		Energy: 0,
		Secondaries: []Secondary{
			{Particle: positron, Energy: 0.0001, Weight: 1, Valid: true, Antiparticle: true},
		},
	}
	cutoff := func(transport.ParticleId) (float64, float64) { return 0.001, 0.511 }

	ApplyInteraction(view, interaction, transport.ActionId{}, true, cutoff, 1)

	assert.True(t, view.killed)
	assert.InDelta(t, 0.0001+2*0.511, view.deposition, 1e-9)
	assert.Empty(t, view.secondaries)
}

func TestApplyInteraction_Failed(t *testing.T) {
	view := &fakeStepView{energy: 5}
	failAction := transport.NewActionId(7)

	ApplyInteraction(view, Interaction{Action: Failed}, failAction, true, nil, 1)

	assert.Equal(t, 0.0, view.stepLimit)
	assert.Equal(t, failAction, view.stepAction)
	assert.Equal(t, 5.0, view.energy) // unchanged
}

// TestApplyInteraction_SecondariesInheritParentWeight checks §4.6's
// invariant that every surviving secondary's weight is overwritten with
// the parent's, regardless of what the model populated it with.
func TestApplyInteraction_SecondariesInheritParentWeight(t *testing.T) {
	electron := transport.NewParticleId(1)
	view := &fakeStepView{}

	interaction := Interaction{
		Action: Scattered,
		Energy: 5,
		Secondaries: []Secondary{
			{Particle: electron, Energy: 1, Weight: 99, Valid: true},
		},
	}
	cutoff := func(transport.ParticleId) (float64, float64) { return 0, 0 } // no cutoff applies

	ApplyInteraction(view, interaction, transport.ActionId{}, true, cutoff, 2.5)

	assert.Len(t, view.secondaries, 1)
	assert.Equal(t, 2.5, view.secondaries[0].Weight)
}

func TestApplyInteraction_Unchanged(t *testing.T) {
	view := &fakeStepView{energy: 5}
	ApplyInteraction(view, Interaction{Action: Unchanged}, transport.ActionId{}, true, nil, 1)
	assert.Equal(t, 5.0, view.energy)
	assert.False(t, view.killed)
}
