package track

import (
	"sync/atomic"

	"github.com/celeritas-go/transport"
	"github.com/celeritas-go/transport/selector"
)

// SecondaryStack is the shared per-state bump allocator for secondaries
// (§5 "the only writable shared structure is the per-state secondary stack
// allocator; it must support concurrent allocate(n) from all slots with the
// semantics of a bump allocator, returning a null span on exhaustion").
type SecondaryStack struct {
	storage []selector.Secondary
	offset  atomic.Int64
}

// NewSecondaryStack allocates backing storage sized capacity, per
// PhysicsOptions.SecondaryStackFactor times the pool size (§6).
func NewSecondaryStack(capacity int) *SecondaryStack {
	return &SecondaryStack{storage: make([]selector.Secondary, capacity)}
}

// Allocate reserves n contiguous secondary slots, returning an empty,
// Empty() span on exhaustion; callers must map that to Action::failed (§5).
func (s *SecondaryStack) Allocate(n int) transport.ItemRange[selector.Secondary] {
	if n <= 0 {
		return transport.ItemRange[selector.Secondary]{}
	}
	start := s.offset.Add(int64(n)) - int64(n)
	if int(start)+n > len(s.storage) {
		return transport.ItemRange[selector.Secondary]{}
	}
	return transport.ItemRange[selector.Secondary]{Start: int(start), Stop: int(start) + n}
}

// Clear resets the bump pointer to zero. Per §5, only thread zero may call
// this, and only at pre-step before any other slot calls Allocate.
func (s *SecondaryStack) Clear() {
	s.offset.Store(0)
}

// At returns the secondary stored at the given stack index.
func (s *SecondaryStack) At(i int) *selector.Secondary {
	return &s.storage[i]
}
