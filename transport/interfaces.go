package transport

// This file declares the five external collaborators the transport core
// consumes (§6). Geometry navigation, material/element property building,
// data import, diagnostics output, and the RNG engine implementation are all
// out of scope for the core; only these contracts are.

// GeometryView exposes the navigation state of one track slot.
type GeometryView interface {
	Pos() [3]float64
	Dir() [3]float64
	SetDir(d [3]float64)
	// FindNextStep returns the straight-line distance to the next boundary
	// along the current direction, and whether that distance limits the step.
	FindNextStep() (distance float64, boundary bool)
	MoveInternal(pos [3]float64)
	MoveToBoundary()
	IsOnBoundary() bool
	CrossBoundary()
}

// NormalGeometryView is implemented by geometry views that can also report
// the surface normal at the current boundary crossing.
type NormalGeometryView interface {
	GeometryView
	Normal() [3]float64
}

// ParticleView exposes the kinematic state of one track slot's particle.
type ParticleView interface {
	ParticleId() ParticleId
	Energy() Energy
	SetEnergy(e Energy)
	Mass() Mass
	Charge() float64
	IsStopped() bool
	IsAntiparticle() bool
	IsHeavy() bool
	TotalEnergy() Energy
}

// MaterialView exposes the element composition of one track slot's current
// material.
type MaterialView interface {
	NumElements() int
	ElementId(ElementComponentId) ElementId
	ElementRecord(ElementComponentId) ElementRecord
	ElectronDensity() float64
	RadiationLength() float64
	ElementFractions() []float64
}

// ElementRecord is the minimal per-element data the core needs: atomic
// number and mass number, used by on-the-fly cross-section models.
type ElementRecord struct {
	AtomicNumber int
	MassNumber   float64
}

// RngEngine is a bare uniform-bits generator. The per-slot streams in the
// track package (track.SlotRng, track.SampleExponential) use math/rand
// directly rather than this interface.
type RngEngine interface {
	Uint32() uint32
}

// ActionDispatcher allocates sequential ActionIds and invokes the
// corresponding action with (params, state) when the dispatcher runs a
// scheduled action. The transport core produces ActionIds (§4.3); the
// dispatcher consumes them.
type ActionDispatcher interface {
	NextActionId() ActionId
	Dispatch(id ActionId, slot TrackSlotId)
}
