package model

type Tier = string

const (
	TierBeginner     Tier = "beginner"
	TierIntermediate Tier = "intermediate"
	TierAdvanced     Tier = "advanced"
)

type TierConfig struct {
	Grid      Ticks
	RangeLow  uint8
	RangeHigh uint8
	TempoMult float64
}

// Arrangement is one tier's finished output: the clean timeline plus
// the tempo the tier should be played at.
type Arrangement struct {
	Tier   Tier     `json:"tier"`
	Tempo  int      `json:"tempo"`
	Events Timeline `json:"events"`
}
