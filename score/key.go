package score

import (
	"math"

	"github.com/trumpetlab/arranger/model"
)

// Krumhansl-Schmuckler key profiles (empirically derived listener ratings).
var majorProfile = []float64{6.35, 2.23, 3.48, 2.33, 4.38, 4.09, 2.52, 5.19, 2.39, 3.66, 2.29, 2.88}
var minorProfile = []float64{6.33, 2.68, 3.52, 5.38, 2.60, 3.53, 2.54, 4.75, 3.98, 2.69, 3.34, 3.17}

var noteNames = []string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// EstimateKey guesses the tonic by correlating a duration-weighted
// pitch-class histogram against the major and minor profiles in all
// twelve rotations. Only the tonic name is reported, matching what the
// rest of the metadata carries.
func EstimateKey(events []model.RawEvent) string {
	if len(events) == 0 {
		return "C"
	}

	var hist [12]float64
	for _, ev := range events {
		hist[ev.Pitch%12] += ev.Duration.Quarters()
	}

	bestTonic := 0
	bestScore := math.Inf(-1)
	for tonic := 0; tonic < 12; tonic++ {
		var rotated [12]float64
		for pc := 0; pc < 12; pc++ {
			rotated[pc] = hist[(pc+tonic)%12]
		}
		for _, profile := range [][]float64{majorProfile, minorProfile} {
			score := correlate(rotated[:], profile)
			if score > bestScore {
				bestScore = score
				bestTonic = tonic
			}
		}
	}
	return noteNames[bestTonic]
}

// correlate is the Pearson correlation of two equal-length vectors.
func correlate(xs, ys []float64) float64 {
	n := float64(len(xs))
	var sumX, sumY float64
	for i := range xs {
		sumX += xs[i]
		sumY += ys[i]
	}
	meanX := sumX / n
	meanY := sumY / n

	var cov, varX, varY float64
	for i := range xs {
		dx := xs[i] - meanX
		dy := ys[i] - meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}
	if varX == 0 || varY == 0 {
		return 0
	}
	return cov / math.Sqrt(varX*varY)
}
