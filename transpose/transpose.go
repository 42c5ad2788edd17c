package transpose

import (
	"math"

	"github.com/trumpetlab/arranger/constants"
	"github.com/trumpetlab/arranger/model"
)

var octaves = []int{-24, -12, 0, 12, 24}

// Calculate picks one semitone shift for the whole piece. The mean pitch
// is centered on the target, then octave perturbations are scored by how
// well the shifted extremes fit the reference range. Ties keep the
// lowest-octave candidate because only a strictly better score wins.
func Calculate(events []model.RawEvent) int {
	if len(events) == 0 {
		return 0
	}

	var sum int
	low := int(events[0].Pitch)
	high := int(events[0].Pitch)
	for _, ev := range events {
		p := int(ev.Pitch)
		sum += p
		if p < low {
			low = p
		}
		if p > high {
			high = p
		}
	}
	center := float64(sum) / float64(len(events))
	// half-semitone centers round away from zero, not half-to-even
	baseShift := int(math.Round(constants.TargetCenter - center))

	bestShift := baseShift
	bestScore := -1000
	for _, octave := range octaves {
		shift := baseShift + octave
		score := scoreShift(low+shift, high+shift)
		if score > bestScore {
			bestScore = score
			bestShift = shift
		}
	}
	return bestShift
}

func scoreShift(low, high int) int {
	var score int
	if low >= constants.RefRangeLow {
		score += constants.RangeSatisfied
	} else {
		score -= (constants.RefRangeLow - low) * constants.RangePenalty
	}
	if high <= constants.RefRangeHigh {
		score += constants.RangeSatisfied
	} else {
		score -= (high - constants.RefRangeHigh) * constants.RangePenalty
	}
	return score
}
