// Package trace provides optional per-step decision recording for the
// transport core: discrete-interaction selections, integral-XS rejections,
// and field-substepper looping outcomes. Recording is opt-in and gated by a
// Level so a production run pays nothing beyond comparing a level
// field.
package trace

import "github.com/celeritas-go/transport"

// SelectionRecord captures one discrete-interaction selection (§4.5),
// including rejections, for post-hoc determinism checks and debugging.
type SelectionRecord struct {
	Slot     transport.TrackSlotId
	Step     int64
	Process  transport.ProcessId
	Model    transport.ModelId
	Rejected bool
}

// LoopingRecord captures one field-substepper budget exhaustion (§4.2
// "max_nsteps", §5 "looping outcome").
type LoopingRecord struct {
	Slot     transport.TrackSlotId
	Step     int64
	Attempts int
}

// FailureRecord captures one secondary-allocator exhaustion (§5 "the only
// recoverable failure").
type FailureRecord struct {
	Slot      transport.TrackSlotId
	Step      int64
	Requested int
}
