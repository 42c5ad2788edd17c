package gapfill

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/trumpetlab/arranger/constants"
	"github.com/trumpetlab/arranger/model"
)

func assertContiguous(t *testing.T, timeline model.Timeline) {
	t.Helper()
	if len(timeline) == 0 {
		return
	}
	assert.Equal(t, model.Ticks(0), timeline[0].Offset)
	for i := 0; i < len(timeline)-1; i++ {
		assert.Equal(t, timeline[i].EndOffset(), timeline[i+1].Offset)
	}
}

func TestEmptyInputYieldsEmptyTimeline(t *testing.T) {
	timeline, err := Fill(nil, constants.Eighth)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Empty(timeline)
}

func TestSingleGapGetsExactlyOneRest(t *testing.T) {
	notes := []model.CleanEvent{
		{Offset: 0, Duration: 960, Pitch: 63},
		{Offset: 960, Duration: 960, Pitch: 67},
		{Offset: 2880, Duration: 960, Pitch: 70},
	}

	timeline, err := Fill(notes, constants.Quarter)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Len(timeline, 4)
	assert.True(timeline[2].IsRest)
	assert.Equal(model.Ticks(1920), timeline[2].Offset)
	assert.Equal(model.Ticks(960), timeline[2].Duration)
	assert.Equal(model.Ticks(3840), timeline[3].EndOffset())
	assertContiguous(t, timeline)
}

func TestLeadingGapIsCovered(t *testing.T) {
	notes := []model.CleanEvent{{Offset: 1920, Duration: 960, Pitch: 60}}

	timeline, err := Fill(notes, constants.Eighth)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Len(timeline, 2)
	assert.True(timeline[0].IsRest)
	assert.Equal(model.Ticks(0), timeline[0].Offset)
	assert.Equal(model.Ticks(1920), timeline[0].Duration)
	assertContiguous(t, timeline)
}

func TestGreedyTilingTakesLargestFirst(t *testing.T) {
	// 3.5 quarters of gap tiles as half + quarter + eighth
	notes := []model.CleanEvent{{Offset: 3360, Duration: 480, Pitch: 60}}

	timeline, err := Fill(notes, constants.Eighth)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Len(timeline, 4)
	assert.Equal(model.Ticks(1920), timeline[0].Duration)
	assert.Equal(model.Ticks(960), timeline[1].Duration)
	assert.Equal(model.Ticks(480), timeline[2].Duration)
	for _, rest := range timeline[:3] {
		assert.True(rest.IsRest)
	}
	assertContiguous(t, timeline)
}

func TestRestsComeFromTheFillSetOnly(t *testing.T) {
	notes := []model.CleanEvent{
		{Offset: 7680, Duration: 480, Pitch: 60},
		{Offset: 9120, Duration: 480, Pitch: 62},
	}

	timeline, err := Fill(notes, constants.Eighth)
	assert.NoError(t, err)

	for _, ev := range timeline {
		if !ev.IsRest {
			continue
		}
		assert.Contains(t, constants.FillDurations, ev.Duration)
	}
	assertContiguous(t, timeline)
}

func TestLongSilenceIsTiled(t *testing.T) {
	// a minute's worth of leading silence is still a valid aligned gap
	notes := []model.CleanEvent{{Offset: 60 * constants.Whole, Duration: 960, Pitch: 60}}

	timeline, err := Fill(notes, constants.Eighth)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Len(timeline, 61)
	for _, rest := range timeline[:60] {
		assert.True(rest.IsRest)
		assert.Equal(constants.Whole, rest.Duration)
	}
	assertContiguous(t, timeline)
}

func TestMisalignedGapIsFatal(t *testing.T) {
	notes := []model.CleanEvent{{Offset: 100, Duration: 960, Pitch: 60}}

	_, err := Fill(notes, constants.Eighth)

	assert.ErrorIs(t, err, ErrMisalignedGap)
}

func TestOverlappingInputIsFatal(t *testing.T) {
	notes := []model.CleanEvent{
		{Offset: 960, Duration: 960, Pitch: 60},
		{Offset: 480, Duration: 480, Pitch: 62},
	}

	_, err := Fill(notes, constants.Eighth)

	assert.ErrorIs(t, err, ErrMisalignedGap)
}
