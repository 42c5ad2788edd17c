package score

import (
	"github.com/trumpetlab/arranger/model"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const (
	bassProgram  = 32
	bassVelocity = 70
	bassLow      = 36
	bassHigh     = 60
)

// BackingTrack builds the play-along accompaniment. Multi-part sources
// keep everything except the melody part (the track with the highest
// average pitch). Single-part sources get a synthesized bass line
// instead, two octaves down and folded into a bass register.
func BackingTrack(s *smf.SMF) *smf.SMF {
	melodyIdx := -1
	tracksWithNotes := 0
	bestAvg := -1.0

	for i, track := range s.Tracks {
		var sum, count int
		for _, event := range track {
			var channel, key, velocity uint8
			if event.Message.GetNoteStart(&channel, &key, &velocity) {
				sum += int(key)
				count++
			}
		}
		if count == 0 {
			continue
		}
		tracksWithNotes++
		avg := float64(sum) / float64(count)
		if avg > bestAvg {
			bestAvg = avg
			melodyIdx = i
		}
	}

	if tracksWithNotes <= 1 {
		return bassLine(s)
	}

	var res smf.SMF
	res.TimeFormat = s.TimeFormat
	for i, track := range s.Tracks {
		if i == melodyIdx {
			continue
		}
		res.Tracks = append(res.Tracks, track)
	}
	return &res
}

func bassLine(s *smf.SMF) *smf.SMF {
	events := ExtractRawEvents(s)

	var res smf.SMF
	res.TimeFormat = smf.MetricTicks(model.TicksPerQuarter)

	var track smf.Track
	track.Add(0, midi.ProgramChange(0, bassProgram))

	var lastTick model.Ticks
	for i, ev := range events {
		dur := ev.Duration
		// the bass plays one voice, so clip each note at the next onset
		if i < len(events)-1 {
			if next := events[i+1].Offset - ev.Offset; next < dur {
				dur = next
			}
		}
		if dur <= 0 {
			continue
		}
		track.Add(uint32(ev.Offset-lastTick), midi.NoteOn(0, bassPitch(ev.Pitch), bassVelocity))
		track.Add(uint32(dur), midi.NoteOff(0, bassPitch(ev.Pitch)))
		lastTick = ev.Offset + dur
	}
	track.Close(0)

	res.Tracks = append(res.Tracks, track)
	return &res
}

func bassPitch(pitch uint8) uint8 {
	p := int(pitch) - 24
	for p < bassLow {
		p += 12
	}
	for p > bassHigh {
		p -= 12
	}
	return uint8(p)
}
