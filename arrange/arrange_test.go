package arrange

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/trumpetlab/arranger/constants"
	"github.com/trumpetlab/arranger/gapfill"
	"github.com/trumpetlab/arranger/model"
	"github.com/trumpetlab/arranger/quantize"
)

func TestEmptyInputArrangesToEmptyTiers(t *testing.T) {
	shift, tiers, err := Song(nil, constants.DefaultTempo)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(0, shift)
	assert.Len(tiers, 3)
	assert.Empty(tiers[model.TierBeginner].Events)
	assert.Empty(tiers[model.TierIntermediate].Events)
	assert.Empty(tiers[model.TierAdvanced].Events)
}

func TestTierTemposRoundFromBaseTempo(t *testing.T) {
	_, tiers, err := Song(nil, 120)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(84, tiers[model.TierBeginner].Tempo)
	assert.Equal(102, tiers[model.TierIntermediate].Tempo)
	assert.Equal(120, tiers[model.TierAdvanced].Tempo)
}

func TestUnknownTierIsRejected(t *testing.T) {
	_, err := Tier(nil, "virtuoso", 0, 120)
	assert.Error(t, err)
}

func TestAllTiersSatisfyTimelineInvariants(t *testing.T) {
	// deliberately messy: overlaps, odd durations, simultaneities, an
	// out-of-range pitch and a long trailing note
	raw := []model.RawEvent{
		{Offset: 0, Duration: 1000, Pitch: 60},
		{Offset: 950, Duration: 500, Pitch: 72},
		{Offset: 2400, Duration: 333, Pitch: 65},
		{Offset: 2410, Duration: 100, Pitch: 50},
		{Offset: 4800, Duration: 5000, Pitch: 67},
	}

	_, tiers, err := Song(raw, constants.DefaultTempo)
	assert.NoError(t, err)
	assert.Len(t, tiers, 3)

	for tier, arr := range tiers {
		tier, arr := tier, arr
		t.Run(fmt.Sprintf("tier %v", tier), func(t *testing.T) {
			cfg := constants.TierConfigs[tier]
			assert := assert.New(t)
			assert.NotEmpty(arr.Events)
			assert.Equal(model.Ticks(0), arr.Events[0].Offset)

			for i, ev := range arr.Events {
				if i < len(arr.Events)-1 {
					assert.Equal(ev.EndOffset(), arr.Events[i+1].Offset)
				}
				assert.Contains(constants.FillDurations, ev.Duration)
				assert.True(ev.Duration >= cfg.Grid)
				if !ev.IsRest {
					assert.True(ev.Pitch >= cfg.RangeLow)
					assert.True(ev.Pitch <= cfg.RangeHigh)
				}
			}
		})
	}
}

func TestQuantizationIsIdempotent(t *testing.T) {
	raw := []model.RawEvent{
		{Offset: 0, Duration: 1000, Pitch: 62},
		{Offset: 1900, Duration: 700, Pitch: 65},
		{Offset: 3840, Duration: 960, Pitch: 69},
	}
	cfg := constants.TierConfigs[model.TierBeginner]

	first, err := gapfill.Fill(quantize.ResolveOverlaps(quantize.Events(raw, cfg, 0), cfg.Grid), cfg.Grid)
	assert.NoError(t, err)

	// feed the clean notes back through with the same config
	var again []model.RawEvent
	for _, ev := range first {
		if ev.IsRest {
			continue
		}
		again = append(again, model.RawEvent{Offset: ev.Offset, Duration: ev.Duration, Pitch: ev.Pitch})
	}
	second, err := gapfill.Fill(quantize.ResolveOverlaps(quantize.Events(again, cfg, 0), cfg.Grid), cfg.Grid)

	assert.NoError(t, err)
	assert.Equal(t, first, second)
}
