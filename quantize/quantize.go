package quantize

import (
	"sort"

	"github.com/trumpetlab/arranger/constants"
	"github.com/trumpetlab/arranger/model"
)

// OffsetGridFor returns the grid used for note onsets. Onsets snap to a
// coarser lattice than durations so bar-relative positions stay legible:
// quarter notes for any tier whose grid is a sixteenth or coarser,
// eighth notes for the thirty-second-note tier.
func OffsetGridFor(grid model.Ticks) model.Ticks {
	if grid >= constants.Sixteenth {
		return constants.Quarter
	}
	return constants.Eighth
}

// SnapToGrid rounds to the nearest multiple of grid. Exact midpoints
// round up, not half-to-even.
func SnapToGrid(v, grid model.Ticks) model.Ticks {
	return (v + grid/2) / grid * grid
}

// SnapDuration picks the closest dot-free standard duration that is at
// least the tier grid. Never snaps below the grid floor.
func SnapDuration(dur, grid model.Ticks) model.Ticks {
	if dur < grid {
		dur = grid
	}
	best := grid
	bestDiff := model.Ticks(-1)
	for _, std := range constants.FillDurations {
		if std < grid {
			continue
		}
		diff := std - dur
		if diff < 0 {
			diff = -diff
		}
		if bestDiff < 0 || diff < bestDiff {
			best = std
			bestDiff = diff
		}
	}
	return best
}

// snapDurationDown picks the largest standard duration that fits inside
// span without dropping under the grid floor. ok is false when the span
// itself is narrower than the grid.
func snapDurationDown(span, grid model.Ticks) (model.Ticks, bool) {
	for _, std := range constants.FillDurations {
		if std >= grid && std <= span {
			return std, true
		}
	}
	return 0, false
}

// ClampPitch transposes into range by whole octaves. If the range spans
// less than an octave that can overshoot, so the nearest bound is the
// final backstop.
func ClampPitch(pitch int, low, high uint8) uint8 {
	for pitch > int(high) {
		pitch -= 12
	}
	for pitch < int(low) {
		pitch += 12
	}
	if pitch > int(high) {
		pitch = int(high)
	}
	return uint8(pitch)
}

// Events snaps, transposes and deduplicates the raw events for one tier.
// The result is offset-sorted with one event per snapped onset but may
// still contain overlapping spans.
func Events(events []model.RawEvent, cfg model.TierConfig, shift int) []model.CleanEvent {
	offsetGrid := OffsetGridFor(cfg.Grid)

	clean := make([]model.CleanEvent, 0, len(events))
	for _, ev := range events {
		clean = append(clean, model.CleanEvent{
			Offset:   SnapToGrid(ev.Offset, offsetGrid),
			Duration: SnapDuration(ev.Duration, cfg.Grid),
			Pitch:    ClampPitch(int(ev.Pitch)+shift, cfg.RangeLow, cfg.RangeHigh),
		})
	}

	// Stable sort keeps input order at equal onsets, and the extractor
	// already ordered each onset highest pitch first.
	sort.SliceStable(clean, func(i, j int) bool {
		return clean[i].Offset < clean[j].Offset
	})

	unique := make([]model.CleanEvent, 0, len(clean))
	lastOffset := model.Ticks(-1)
	for _, n := range clean {
		if n.Offset == lastOffset {
			continue
		}
		unique = append(unique, n)
		lastOffset = n.Offset
	}
	return unique
}

// ResolveOverlaps truncates every note that runs into its successor's
// onset. A truncated note whose remaining span cannot hold any standard
// duration at or above the grid is dropped. The last note is never cut.
func ResolveOverlaps(notes []model.CleanEvent, grid model.Ticks) []model.CleanEvent {
	if len(notes) <= 1 {
		return notes
	}

	result := make([]model.CleanEvent, 0, len(notes))
	for i, n := range notes {
		if i == len(notes)-1 {
			result = append(result, n)
			continue
		}
		nextOffset := notes[i+1].Offset
		if n.EndOffset() <= nextOffset {
			result = append(result, n)
			continue
		}
		dur, ok := snapDurationDown(nextOffset-n.Offset, grid)
		if !ok {
			// unrepresentable without reintroducing overlap
			continue
		}
		n.Duration = dur
		result = append(result, n)
	}
	return result
}
