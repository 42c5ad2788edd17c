package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/trumpetlab/arranger/arrange"
	"github.com/trumpetlab/arranger/catalog"
	"github.com/trumpetlab/arranger/model"
	"github.com/trumpetlab/arranger/score"
	"github.com/trumpetlab/arranger/util"
	"gitlab.com/gomidi/midi/v2/smf"
)

// processSong runs the whole pipeline for one source score: metadata,
// raw-event extraction, the three tier arrangements, and the MIDI +
// backing-track files on disk.
func processSong(s *smf.SMF, title string) (model.ArrangementEntry, map[model.Tier]model.Arrangement, error) {
	meta := score.ExtractMetadata(s)
	events := score.ExtractRawEvents(s)

	shift, tiers, err := arrange.Song(events, meta.Tempo)
	if err != nil {
		return model.ArrangementEntry{}, nil, err
	}
	fmt.Printf("%v: %v raw events, transposition %+d semitones\n", title, len(events), shift)

	safe := util.SanitizeFilename(title)
	entry := model.ArrangementEntry{
		Id:       catalog.NewId(),
		Title:    title,
		TierMidi: make(map[model.Tier]string),
		Metadata: meta,
	}

	for tier, arr := range tiers {
		path := filepath.Join(util.GetMidiDir(), fmt.Sprintf("%v_%v.mid", safe, tier))
		out := score.WriteTimeline(arr.Events, arr.Tempo, meta, fmt.Sprintf("%v (%v)", title, tier))
		if err := score.SaveSMF(out, path); err != nil {
			return model.ArrangementEntry{}, nil, err
		}
		entry.TierMidi[tier] = path
	}

	backingPath := filepath.Join(util.GetBackingDir(), safe+"_backing.mid")
	if err := score.SaveSMF(score.BackingTrack(s), backingPath); err != nil {
		return model.ArrangementEntry{}, nil, err
	}
	entry.BackingTrack = backingPath

	return entry, tiers, nil
}
