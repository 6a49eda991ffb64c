package track

import (
	"github.com/celeritas-go/transport"
	"github.com/celeritas-go/transport/selector"
)

// Status is a track slot's lifecycle state (§3 "Lifecycle").
type Status int

const (
	Inactive Status = iota
	Initializing
	Alive
	Killed
	Errored
)

// State is one track slot's per-step and persistent-across-steps scratch
// (§3 "Track state"). Persistent fields survive a pre-step reset;
// RunPreStep clears or overwrites the reset-every-step fields of a live
// slot, except MscStepScratch, which it does not touch.
type State struct {
	Status Status

	// Persistent across steps.
	Mfp         float64 // remaining mean free paths to the next discrete interaction
	MscRange    float64 // cached multiple-scattering range

	// Reset every step.
	MacroXs          float64
	PerProcessXs     []float64 // scratch sized to the particle's max process count
	EnergyDeposition float64
	DedxRange        float64
	Secondaries      transport.ItemRange[selector.Secondary]
	SampledElement   transport.ElementComponentId
	MscStepScratch   float64
	StepLimit        float64
	PostStepAction   transport.ActionId
	AlongStepAction  transport.ActionId
}

// NewState returns a fresh Inactive slot with per-process scratch sized to
// maxProcesses.
func NewState(maxProcesses int) State {
	return State{Status: Inactive, PerProcessXs: make([]float64, maxProcesses)}
}

// Pool is the fixed-size set of track slots the transport loop iterates
// over (§5 "Scheduling").
type Pool struct {
	slots []State
}

// NewPool allocates size slots, each with scratch sized to maxProcesses.
func NewPool(size, maxProcesses int) *Pool {
	slots := make([]State, size)
	for i := range slots {
		slots[i] = NewState(maxProcesses)
	}
	return &Pool{slots: slots}
}

// Size returns the number of slots in the pool.
func (p *Pool) Size() int { return len(p.slots) }

// At returns a pointer to the slot's state for in-place mutation.
func (p *Pool) At(slot transport.TrackSlotId) *State {
	return &p.slots[slot.Get()]
}
