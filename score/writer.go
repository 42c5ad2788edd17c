package score

import (
	"os"
	"strconv"
	"strings"

	"github.com/trumpetlab/arranger/model"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const (
	trumpetProgram = 56
	noteVelocity   = 90
)

// WriteTimeline renders one tier's clean timeline as a fresh single-track
// SMF at our native resolution. Rests carry no messages; they simply
// stretch the delta in front of the next note, which works because the
// timeline is contiguous by construction.
func WriteTimeline(timeline model.Timeline, tempo int, meta model.SongMetadata, title string) *smf.SMF {
	var res smf.SMF
	res.TimeFormat = smf.MetricTicks(model.TicksPerQuarter)

	num, denom := parseMeter(meta.TimeSignature)

	var track smf.Track
	track.Add(0, smf.MetaTrackSequenceName(title))
	track.Add(0, smf.MetaTempo(float64(tempo)))
	track.Add(0, smf.MetaMeter(num, denom))
	track.Add(0, midi.ProgramChange(0, trumpetProgram))

	var lastTick model.Ticks
	for _, ev := range timeline {
		if ev.IsRest {
			continue
		}
		track.Add(uint32(ev.Offset-lastTick), midi.NoteOn(0, ev.Pitch, noteVelocity))
		track.Add(uint32(ev.Duration), midi.NoteOff(0, ev.Pitch))
		lastTick = ev.EndOffset()
	}
	track.Close(0)

	res.Tracks = append(res.Tracks, track)
	return &res
}

func parseMeter(ts string) (uint8, uint8) {
	parts := strings.Split(ts, "/")
	if len(parts) != 2 {
		return 4, 4
	}
	num, err1 := strconv.Atoi(parts[0])
	denom, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil || num <= 0 || denom <= 0 {
		return 4, 4
	}
	return uint8(num), uint8(denom)
}

func SaveSMF(s *smf.SMF, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = s.WriteTo(f)
	return err
}
