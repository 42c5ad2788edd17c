package constants

import (
	"os"

	"github.com/trumpetlab/arranger/model"
)

func GetOutDir() string {
	path := os.Getenv("OUT_PATH")
	if path != "" {
		return path
	}
	return "./out"
}

func GetSongsDir() string {
	path := os.Getenv("SONGS_PATH")
	if path != "" {
		return path
	}

	panic("SONGS_PATH environment variable is not set!")
}

// GetDynamoEndpoint returns "" when the metadata store is not wired up,
// which disables the DynamoDB writes entirely.
func GetDynamoEndpoint() string {
	return os.Getenv("DYNAMO_ENDPOINT")
}

const (
	Whole     = 4 * model.TicksPerQuarter
	Half      = 2 * model.TicksPerQuarter
	Quarter   = model.TicksPerQuarter
	Eighth    = model.TicksPerQuarter / 2
	Sixteenth = model.TicksPerQuarter / 4
	ThirtySec = model.TicksPerQuarter / 8
)

// StandardDurations are the only durations a clean timeline may carry,
// largest first. The dotted values (dotted half, dotted quarter, dotted
// eighth) are legal when they arrive from input but are never synthesized.
var StandardDurations = []model.Ticks{
	Whole,
	3 * Half / 2,
	Half,
	3 * Quarter / 2,
	Quarter,
	3 * Eighth / 2,
	Eighth,
	Sixteenth,
	ThirtySec,
}

// FillDurations is the dot-free subset used for snapping note durations
// and for tiling rests, largest first so greedy fills stay minimal.
var FillDurations = []model.Ticks{
	Whole,
	Half,
	Quarter,
	Eighth,
	Sixteenth,
	ThirtySec,
}

// DefaultDuration substitutes for missing or non-positive source durations.
const DefaultDuration = Sixteenth

// OffsetEpsilon is how close two raw offsets must be to count as the
// same moment (about 0.01 quarter-lengths).
const OffsetEpsilon model.Ticks = 10

// Transposition targets a comfortable trumpet center and scores octave
// candidates against the intermediate reference range.
const (
	TargetCenter   = 67 // G4
	RefRangeLow    = 57 // A3
	RefRangeHigh   = 79 // G5
	DefaultTempo   = 120
	RangeSatisfied = 20
	RangePenalty   = 3
)

var Tiers = []model.Tier{model.TierBeginner, model.TierIntermediate, model.TierAdvanced}

var TierConfigs = map[model.Tier]model.TierConfig{
	model.TierBeginner:     {Grid: Eighth, RangeLow: 60, RangeHigh: 74, TempoMult: 0.70},
	model.TierIntermediate: {Grid: Sixteenth, RangeLow: 57, RangeHigh: 79, TempoMult: 0.85},
	model.TierAdvanced:     {Grid: ThirtySec, RangeLow: 54, RangeHigh: 84, TempoMult: 1.0},
}
