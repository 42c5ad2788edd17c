package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/trumpetlab/arranger/model"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("OUT_PATH", t.TempDir())

	entry := model.ArrangementEntry{
		Id:    NewId(),
		Title: "Test Song",
		TierMidi: map[model.Tier]string{
			model.TierBeginner: "out/midi/Test_Song_beginner.mid",
		},
		Metadata: model.SongMetadata{Tempo: 120, KeySignature: "C", TimeSignature: "4/4"},
	}
	cat := model.Catalog{entry.Id: entry}

	Save(cat)
	loaded := Load()

	assert.Equal(t, cat, loaded)
}

func TestLoadOrEmptyWithNoCatalog(t *testing.T) {
	t.Setenv("OUT_PATH", t.TempDir())

	assert.Empty(t, LoadOrEmpty())
}

func TestEntriesSortByTitle(t *testing.T) {
	cat := model.Catalog{
		"1": {Id: "1", Title: "Zebra Song"},
		"2": {Id: "2", Title: "Aardvark Song"},
	}

	entries := Entries(cat)

	assert := assert.New(t)
	assert.Len(entries, 2)
	assert.Equal("Aardvark Song", entries[0].Title)
	assert.Equal("Zebra Song", entries[1].Title)
}
