package arrange

import (
	"fmt"
	"math"
	"sync"

	"github.com/trumpetlab/arranger/constants"
	"github.com/trumpetlab/arranger/gapfill"
	"github.com/trumpetlab/arranger/model"
	"github.com/trumpetlab/arranger/quantize"
	"github.com/trumpetlab/arranger/transpose"
)

// Tier runs the quantize → resolve → fill pipeline for one tier over the
// shared raw events and transposition.
func Tier(events []model.RawEvent, tier model.Tier, shift int, baseTempo int) (model.Arrangement, error) {
	cfg, ok := constants.TierConfigs[tier]
	if !ok {
		return model.Arrangement{}, fmt.Errorf("unknown tier: %v", tier)
	}

	quantized := quantize.Events(events, cfg, shift)
	resolved := quantize.ResolveOverlaps(quantized, cfg.Grid)
	timeline, err := gapfill.Fill(resolved, cfg.Grid)
	if err != nil {
		return model.Arrangement{}, fmt.Errorf("tier %v: %w", tier, err)
	}

	return model.Arrangement{
		Tier:   tier,
		Tempo:  int(math.Round(float64(baseTempo) * cfg.TempoMult)),
		Events: timeline,
	}, nil
}

// Song arranges all three tiers from one raw event set. The tiers are
// independent pure computations over the same read-only input, so they
// run in parallel. A failing tier never blocks the others; the first
// failure is reported alongside whatever tiers succeeded.
func Song(events []model.RawEvent, baseTempo int) (int, map[model.Tier]model.Arrangement, error) {
	shift := transpose.Calculate(events)

	var wg sync.WaitGroup
	var mu sync.Mutex
	tiers := make(map[model.Tier]model.Arrangement)
	var firstErr error

	for _, tier := range constants.Tiers {
		wg.Add(1)
		go func(tier model.Tier) {
			defer wg.Done()
			arr, err := Tier(events, tier, shift, baseTempo)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if firstErr == nil {
					firstErr = err
				}
				return
			}
			tiers[tier] = arr
		}(tier)
	}
	wg.Wait()

	return shift, tiers, firstErr
}
