package score

import (
	"fmt"
	"math"
	"sort"

	"github.com/trumpetlab/arranger/constants"
	"github.com/trumpetlab/arranger/model"
	"gitlab.com/gomidi/midi/v2/smf"
)

// resolution returns the source file's ticks-per-quarter, falling back
// to our own when the file uses SMPTE timing.
func resolution(s *smf.SMF) int64 {
	if mt, ok := s.TimeFormat.(smf.MetricTicks); ok && mt.Resolution() > 0 {
		return int64(mt.Resolution())
	}
	return int64(model.TicksPerQuarter)
}

// allNotes pairs note-on/note-off messages across every track and
// returns each sounded note in our tick domain. Non-positive durations
// get the default sixteenth the same way the arranger expects missing
// durations to be patched by the reader.
func allNotes(s *smf.SMF) []model.RawEvent {
	res := resolution(s)
	convert := func(src int64) model.Ticks {
		return model.Ticks(src * int64(model.TicksPerQuarter) / res)
	}

	var events []model.RawEvent
	for _, track := range s.Tracks {
		var absTicks int64
		pressed := make(map[uint8]int64)
		for _, event := range track {
			absTicks += int64(event.Delta)
			var channel uint8
			var key uint8
			var velocity uint8
			switch {
			case event.Message.GetNoteStart(&channel, &key, &velocity):
				pressed[key] = absTicks
			case event.Message.GetNoteEnd(&channel, &key):
				start, ok := pressed[key]
				if !ok {
					continue
				}
				delete(pressed, key)
				dur := convert(absTicks) - convert(start)
				if dur <= 0 {
					dur = constants.DefaultDuration
				}
				events = append(events, model.RawEvent{
					Offset:   convert(start),
					Duration: dur,
					Pitch:    key,
				})
			}
		}
	}
	return events
}

// ExtractRawEvents reduces a score to a single melodic voice: events
// sorted by offset with the highest pitch first, and only one event kept
// per onset. Chords collapse to their top note.
func ExtractRawEvents(s *smf.SMF) []model.RawEvent {
	events := allNotes(s)

	sort.SliceStable(events, func(i, j int) bool {
		if events[i].Offset != events[j].Offset {
			return events[i].Offset < events[j].Offset
		}
		return events[i].Pitch > events[j].Pitch
	})

	var unique []model.RawEvent
	lastOffset := model.Ticks(-1)
	for _, ev := range events {
		diff := ev.Offset - lastOffset
		if lastOffset >= 0 && diff < constants.OffsetEpsilon {
			continue
		}
		unique = append(unique, ev)
		lastOffset = ev.Offset
	}
	return unique
}

// ExtractMetadata pulls tempo, meter, range and a key estimate out of
// the source score.
func ExtractMetadata(s *smf.SMF) model.SongMetadata {
	meta := model.SongMetadata{
		Tempo:         constants.DefaultTempo,
		KeySignature:  "C",
		TimeSignature: "4/4",
	}

	tempoFound := false
	meterFound := false
	for _, track := range s.Tracks {
		for _, event := range track {
			var bpm float64
			var num, denom uint8
			switch {
			case event.Message.GetMetaTempo(&bpm):
				// tempo is stored as microseconds per quarter, so the
				// bpm comes back as 89.99996 for 90
				if !tempoFound && bpm > 0 {
					meta.Tempo = int(math.Round(bpm))
					tempoFound = true
				}
			case event.Message.GetMetaMeter(&num, &denom):
				if !meterFound {
					meta.TimeSignature = fmt.Sprintf("%d/%d", num, denom)
					meterFound = true
				}
			}
		}
	}

	notes := allNotes(s)
	if len(notes) == 0 {
		return meta
	}

	meta.TotalNotes = len(notes)
	meta.PitchLow = notes[0].Pitch
	meta.PitchHigh = notes[0].Pitch
	var lastEnd model.Ticks
	for _, n := range notes {
		if n.Pitch < meta.PitchLow {
			meta.PitchLow = n.Pitch
		}
		if n.Pitch > meta.PitchHigh {
			meta.PitchHigh = n.Pitch
		}
		if end := n.Offset + n.Duration; end > lastEnd {
			lastEnd = end
		}
	}
	meta.DurationSeconds = int(lastEnd.Quarters() * 60 / float64(meta.Tempo))
	meta.KeySignature = EstimateKey(notes)

	return meta
}
