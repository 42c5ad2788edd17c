package model

// Ticks is fixed-point musical time: 960 ticks per quarter note.
// Every standard duration is an exact integer in this domain, so
// offset arithmetic never drifts the way float quarter-lengths do.
type Ticks int64

const TicksPerQuarter Ticks = 960

// Quarters converts back to float quarter-lengths for display only.
// Never use the float form for comparisons or accumulation.
func (t Ticks) Quarters() float64 {
	return float64(t) / float64(TicksPerQuarter)
}

// RawEvent is one melodic note as extracted from the source score.
// May overlap its neighbors and carry any duration.
type RawEvent struct {
	Offset   Ticks
	Duration Ticks
	Pitch    uint8
}

// CleanEvent is a note or rest on the quantized timeline.
// Pitch is meaningful only when IsRest is false.
type CleanEvent struct {
	Offset   Ticks `json:"offset"`
	Duration Ticks `json:"duration"`
	Pitch    uint8 `json:"pitch,omitempty"`
	IsRest   bool  `json:"is_rest"`
}

func (e CleanEvent) EndOffset() Ticks {
	return e.Offset + e.Duration
}

// Timeline is one tier's fully covered, non-overlapping event sequence.
type Timeline = []CleanEvent
