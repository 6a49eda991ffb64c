package trace

import "sync"

// Level controls the verbosity of step tracing.
type Level string

const (
	// LevelNone disables tracing entirely (zero overhead beyond a level check).
	LevelNone Level = "none"
	// LevelRecoverable records only runtime-recoverable states (§7): discrete
	// rejections, substepper looping, and secondary-allocator exhaustion.
	LevelRecoverable Level = "recoverable"
	// LevelAll additionally records every accepted discrete selection.
	LevelAll Level = "all"
)

var validLevels = map[Level]bool{
	LevelNone:        true,
	LevelRecoverable: true,
	LevelAll:         true,
	"":                true, // empty defaults to none
}

// IsValidLevel reports whether the given string names a recognized level.
func IsValidLevel(level string) bool {
	return validLevels[Level(level)]
}

// StepTrace collects decision and recoverable-outcome records across a
// run. Concurrent-safe: multiple track slots may report into the same
// trace from parallel workers (§5 "Slots may be executed in parallel").
type StepTrace struct {
	Level Level

	mu         sync.Mutex
	Selections []SelectionRecord
	Loopings   []LoopingRecord
	Failures   []FailureRecord
}

// NewStepTrace creates a StepTrace at the given level; the empty level is
// stored as LevelNone.
func NewStepTrace(level Level) *StepTrace {
	if level == "" {
		level = LevelNone
	}
	return &StepTrace{Level: level}
}

// RecordSelection appends a discrete-selection record: every selection at
// LevelAll, and only rejections at LevelRecoverable.
func (t *StepTrace) RecordSelection(r SelectionRecord) {
	if t == nil || !(t.Level == LevelAll || (t.Level == LevelRecoverable && r.Rejected)) {
		return
	}
	t.mu.Lock()
	t.Selections = append(t.Selections, r)
	t.mu.Unlock()
}

// RecordLooping appends a looping record if the level enables recoverable
// tracking.
func (t *StepTrace) RecordLooping(r LoopingRecord) {
	if t == nil || t.Level == LevelNone {
		return
	}
	t.mu.Lock()
	t.Loopings = append(t.Loopings, r)
	t.mu.Unlock()
}

// RecordFailure appends a secondary-allocator exhaustion record if the
// level enables recoverable tracking.
func (t *StepTrace) RecordFailure(r FailureRecord) {
	if t == nil || t.Level == LevelNone {
		return
	}
	t.mu.Lock()
	t.Failures = append(t.Failures, r)
	t.mu.Unlock()
}

// ConsecutiveLoopingSlots counts, per slot, how many looping records were
// reported back to back (by trace insertion order) so a caller can apply
// §5's "the caller may treat as a kill-condition after several consecutive
// steps" rule.
func (t *StepTrace) ConsecutiveLoopingSlots(threshold int) map[int]int {
	t.mu.Lock()
	defer t.mu.Unlock()

	flagged := make(map[int]int)
	lastSlot, run := -1, 0
	for _, r := range t.Loopings {
		slot := r.Slot.Get()
		if slot == lastSlot {
			run++
		} else {
			run = 1
			lastSlot = slot
		}
		if run >= threshold {
			flagged[slot] = run
		}
	}
	return flagged
}
