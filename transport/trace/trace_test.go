package trace

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/celeritas-go/transport"
)

func TestStepTrace_LevelGatesRecording(t *testing.T) {
	tr := NewStepTrace(LevelNone)
	tr.RecordSelection(SelectionRecord{Slot: transport.NewTrackSlotId(0)})
	tr.RecordLooping(LoopingRecord{Slot: transport.NewTrackSlotId(0)})
	assert.Empty(t, tr.Selections)
	assert.Empty(t, tr.Loopings)

	tr = NewStepTrace(LevelRecoverable)
	tr.RecordSelection(SelectionRecord{Slot: transport.NewTrackSlotId(0)})
	tr.RecordLooping(LoopingRecord{Slot: transport.NewTrackSlotId(0)})
	assert.Empty(t, tr.Selections, "recoverable level should not record plain selections")
	assert.Len(t, tr.Loopings, 1)

	tr = NewStepTrace(LevelAll)
	tr.RecordSelection(SelectionRecord{Slot: transport.NewTrackSlotId(0)})
	assert.Len(t, tr.Selections, 1)
}

func TestStepTrace_ConsecutiveLoopingSlots(t *testing.T) {
	tr := NewStepTrace(LevelRecoverable)
	slot := transport.NewTrackSlotId(3)
	other := transport.NewTrackSlotId(4)
	for i := 0; i < 3; i++ {
		tr.RecordLooping(LoopingRecord{Slot: slot})
	}
	tr.RecordLooping(LoopingRecord{Slot: other})

	flagged := tr.ConsecutiveLoopingSlots(3)
	assert.Equal(t, 3, flagged[3])
	_, ok := flagged[4]
	assert.False(t, ok)
}

func TestIsValidLevel(t *testing.T) {
	assert.True(t, IsValidLevel(""))
	assert.True(t, IsValidLevel("all"))
	assert.False(t, IsValidLevel("verbose"))
}
