package db

import (
	"testing"

	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/stretchr/testify/assert"
	"github.com/trumpetlab/arranger/model"
)

func TestItemRoundTrip(t *testing.T) {
	entry := model.ArrangementEntry{
		Id:    "abc-123",
		Title: "Test Song",
		TierMidi: map[model.Tier]string{
			model.TierBeginner:     "out/midi/Test_Song_beginner.mid",
			model.TierIntermediate: "out/midi/Test_Song_intermediate.mid",
			model.TierAdvanced:     "out/midi/Test_Song_advanced.mid",
		},
		BackingTrack: "out/backing_tracks/Test_Song_backing.mid",
		Metadata: model.SongMetadata{
			Tempo:           96,
			KeySignature:    "F",
			TimeSignature:   "3/4",
			DurationSeconds: 84,
			TotalNotes:      312,
			PitchLow:        55,
			PitchHigh:       81,
		},
	}

	assert.Equal(t, entry, entryFromItem(itemFromEntry(entry)))
}

func TestEntryFromSparseItem(t *testing.T) {
	// items written by older versions may miss attributes entirely
	item := map[string]*dynamodb.AttributeValue{
		"PK": strAttr("abc-123"),
	}

	entry := entryFromItem(item)

	assert := assert.New(t)
	assert.Equal("abc-123", entry.Id)
	assert.Equal("", entry.Title)
	assert.Equal(0, entry.Metadata.Tempo)
	assert.Empty(entry.TierMidi)
}
