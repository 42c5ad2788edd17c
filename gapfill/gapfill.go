package gapfill

import (
	"errors"
	"fmt"

	"github.com/trumpetlab/arranger/constants"
	"github.com/trumpetlab/arranger/model"
)

// ErrMisalignedGap means an upstream stage produced a gap that is not a
// whole multiple of the tier grid. Quantized input can never do this, so
// it is an invariant violation, not a degradable condition.
var ErrMisalignedGap = errors.New("gap is not a grid multiple")

// ErrIterationCap means the greedy tiling failed to close a gap within
// the defensive iteration limit. Same story: fatal, never expected.
var ErrIterationCap = errors.New("rest tiling exceeded iteration cap")

// Fill inserts explicit rests into every uncovered interval, including a
// leading gap before the first note, so the timeline runs contiguously
// from offset 0 to the last note's end.
func Fill(notes []model.CleanEvent, grid model.Ticks) (model.Timeline, error) {
	if len(notes) == 0 {
		return model.Timeline{}, nil
	}

	result := make(model.Timeline, 0, len(notes)*2)
	currentTime := model.Ticks(0)

	for _, n := range notes {
		gap := n.Offset - currentTime
		if gap < 0 || gap%grid != 0 {
			return nil, fmt.Errorf("%w: %d ticks before offset %d", ErrMisalignedGap, gap, n.Offset)
		}
		if gap >= grid {
			rests, err := restsFor(currentTime, gap, grid)
			if err != nil {
				return nil, err
			}
			result = append(result, rests...)
			currentTime = rests[len(rests)-1].EndOffset()
		}
		result = append(result, n)
		currentTime = n.EndOffset()
	}
	return result, nil
}

// restsFor tiles exactly total ticks with rests, always taking the
// largest standard duration that still fits. Because total is a grid
// multiple and every usable standard duration is too, the remainder
// reaches zero; the cap only guards against broken inputs.
func restsFor(start, total, grid model.Ticks) ([]model.CleanEvent, error) {
	var rests []model.CleanEvent
	remaining := total
	offset := start

	// every iteration consumes at least one grid unit, so a well-formed
	// gap can never need more than total/grid rests, however long the
	// silence is
	iterationCap := int(total/grid) + 1

	for iter := 0; remaining >= grid; iter++ {
		if iter >= iterationCap {
			return nil, fmt.Errorf("%w: %d ticks left at offset %d", ErrIterationCap, remaining, offset)
		}
		dur := grid
		for _, std := range constants.FillDurations {
			if std <= remaining && std >= grid {
				dur = std
				break
			}
		}
		rests = append(rests, model.CleanEvent{
			Offset:   offset,
			Duration: dur,
			IsRest:   true,
		})
		offset += dur
		remaining -= dur
	}
	return rests, nil
}
