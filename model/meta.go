package model

type SongMetadata struct {
	Tempo           int    `json:"tempo"`
	KeySignature    string `json:"key_signature"`
	TimeSignature   string `json:"time_signature"`
	DurationSeconds int    `json:"duration_seconds"`
	TotalNotes      int    `json:"total_notes"`
	PitchLow        uint8  `json:"pitch_low"`
	PitchHigh       uint8  `json:"pitch_high"`
}

// ArrangementEntry is what the catalog remembers about one processed song.
type ArrangementEntry struct {
	Id           string          `json:"id"`
	Title        string          `json:"title"`
	TierMidi     map[Tier]string `json:"tier_midi"`
	BackingTrack string          `json:"backing_track"`
	Metadata     SongMetadata    `json:"metadata"`
}

type Catalog = map[string]ArrangementEntry
