package transport

import "fmt"

// Every opaque id in this file stores index+1 internally so the Go zero
// value is the null handle (matching §3's "a null handle compares false"
// without requiring callers to remember to construct one explicitly).
// NewXxxId(index) requires index >= 0; Get() returns the original index
// and panics on the null handle, matching the teacher corpus's
// panic-on-invalid-handle convention for programmer errors.

// ParticleId identifies a particle type in the params' particle table.
type ParticleId struct{ value int }

// NewParticleId constructs a valid ParticleId from a dense index.
func NewParticleId(index int) ParticleId { return ParticleId{value: index + 1} }

// Valid reports whether the id refers to a real particle.
func (id ParticleId) Valid() bool { return id.value != 0 }

// Get returns the underlying index. Panics if the id is invalid.
func (id ParticleId) Get() int {
	if !id.Valid() {
		panic("transport: Get on invalid ParticleId")
	}
	return id.value - 1
}

// MaterialId identifies a material in the params' material table.
type MaterialId struct{ value int }

func NewMaterialId(index int) MaterialId { return MaterialId{value: index + 1} }
func (id MaterialId) Valid() bool        { return id.value != 0 }
func (id MaterialId) Get() int {
	if !id.Valid() {
		panic("transport: Get on invalid MaterialId")
	}
	return id.value - 1
}

// ElementId identifies a chemical element shared across materials.
type ElementId struct{ value int }

func NewElementId(index int) ElementId { return ElementId{value: index + 1} }
func (id ElementId) Valid() bool       { return id.value != 0 }
func (id ElementId) Get() int {
	if !id.Valid() {
		panic("transport: Get on invalid ElementId")
	}
	return id.value - 1
}

// ElementComponentId indexes one element within a single material's element
// list (not the same as ElementId, which is global across all materials).
type ElementComponentId struct{ value int }

func NewElementComponentId(index int) ElementComponentId {
	return ElementComponentId{value: index + 1}
}
func (id ElementComponentId) Valid() bool { return id.value != 0 }
func (id ElementComponentId) Get() int {
	if !id.Valid() {
		panic("transport: Get on invalid ElementComponentId")
	}
	return id.value - 1
}

// ProcessId identifies a physics process shared across all particles.
type ProcessId struct{ value int }

func NewProcessId(index int) ProcessId { return ProcessId{value: index + 1} }
func (id ProcessId) Valid() bool       { return id.value != 0 }
func (id ProcessId) Get() int {
	if !id.Valid() {
		panic("transport: Get on invalid ProcessId")
	}
	return id.value - 1
}

// ModelId identifies a physics model, dense across every particle and
// process in the registry. See ParticleModelId for the per-particle id used
// to build the action layout in §4.3.
type ModelId struct{ value int }

func NewModelId(index int) ModelId { return ModelId{value: index + 1} }
func (id ModelId) Valid() bool     { return id.value != 0 }
func (id ModelId) Get() int {
	if !id.Valid() {
		panic("transport: Get on invalid ModelId")
	}
	return id.value - 1
}

// ParticleProcessId indexes a process within a single particle's
// ProcessGroup (dense within one particle).
type ParticleProcessId struct{ value int }

func NewParticleProcessId(index int) ParticleProcessId {
	return ParticleProcessId{value: index + 1}
}
func (id ParticleProcessId) Valid() bool { return id.value != 0 }
func (id ParticleProcessId) Get() int {
	if !id.Valid() {
		panic("transport: Get on invalid ParticleProcessId")
	}
	return id.value - 1
}

// ParticleModelId indexes a model within a single particle's set of models,
// dense across all of that particle's processes (used for the action-id
// arithmetic in §4.3).
type ParticleModelId struct{ value int }

func NewParticleModelId(index int) ParticleModelId {
	return ParticleModelId{value: index + 1}
}
func (id ParticleModelId) Valid() bool { return id.value != 0 }
func (id ParticleModelId) Get() int {
	if !id.Valid() {
		panic("transport: Get on invalid ParticleModelId")
	}
	return id.value - 1
}

// ActionId unifies every schedulable operation: the built-in pre-model
// actions (msc-range, eloss-range, discrete-select, integral-rejection), one
// per registered model, and the trailing failure action. The zero value
// ActionId{} is the null handle, used to mean "no action selected" (for
// instance the cleared post-step action of §4.4).
type ActionId struct{ value int }

func NewActionId(index int) ActionId { return ActionId{value: index + 1} }
func (id ActionId) Valid() bool      { return id.value != 0 }
func (id ActionId) Get() int {
	if !id.Valid() {
		panic("transport: Get on invalid ActionId")
	}
	return id.value - 1
}

// TrackSlotId indexes one slot in the fixed-size track pool (§5).
type TrackSlotId struct{ value int }

func NewTrackSlotId(index int) TrackSlotId { return TrackSlotId{value: index + 1} }
func (id TrackSlotId) Valid() bool         { return id.value != 0 }
func (id TrackSlotId) Get() int {
	if !id.Valid() {
		panic("transport: Get on invalid TrackSlotId")
	}
	return id.value - 1
}

// ItemId is a generic opaque index into a packed array of T, used for the
// indirection between table records and the flat real-number/grid-record
// arrays owned by Params.
type ItemId[T any] struct{ value int }

func NewItemId[T any](index int) ItemId[T] { return ItemId[T]{value: index + 1} }
func (id ItemId[T]) Valid() bool           { return id.value != 0 }
func (id ItemId[T]) Get() int {
	if !id.Valid() {
		panic(fmt.Sprintf("transport: Get on invalid ItemId[%T]", *new(T)))
	}
	return id.value - 1
}

// ItemRange is a contiguous span [Start, Stop) of ItemId[T] into a packed
// array, mirroring the teacher corpus's "start/count" index pattern used for
// per-material and per-process table rows.
type ItemRange[T any] struct {
	Start int
	Stop  int
}

// Empty reports whether the range contains no items ("not applicable here"
// per §3's ValueTable convention).
func (r ItemRange[T]) Empty() bool { return r.Stop <= r.Start }

// Size returns the number of items spanned by the range.
func (r ItemRange[T]) Size() int { return r.Stop - r.Start }

// At returns the ItemId[T] for the i'th element of the range.
func (r ItemRange[T]) At(i int) ItemId[T] {
	if i < 0 || r.Start+i >= r.Stop {
		panic("transport: ItemRange index out of bounds")
	}
	return NewItemId[T](r.Start + i)
}
