package midi

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

func writeTestSMF(t *testing.T, withNotes bool) []byte {
	t.Helper()

	var s smf.SMF
	s.TimeFormat = smf.MetricTicks(960)

	var track smf.Track
	if withNotes {
		track.Add(0, gomidi.NoteOn(0, 60, 90))
		track.Add(960, gomidi.NoteOff(0, 60))
	}
	track.Close(0)
	s.Tracks = append(s.Tracks, track)

	var buf bytes.Buffer
	_, err := s.WriteTo(&buf)
	assert.NoError(t, err)
	return buf.Bytes()
}

func TestReadMidiRoundTrip(t *testing.T) {
	dat := writeTestSMF(t, true)

	s, err := ReadMidi(bytes.NewReader(dat))

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(1, CountNotes(s))
}

func TestReadMidiGarbageIsAnErrorNotAPanic(t *testing.T) {
	garbage := []byte("this is not a midi file at all, not even close")

	s, err := ReadMidi(bytes.NewReader(garbage))

	assert := assert.New(t)
	assert.Error(err)
	assert.NotNil(s)
}

func TestValidateMidiFile(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "good.mid")
	assert.NoError(t, os.WriteFile(good, writeTestSMF(t, true), 0644))

	empty := filepath.Join(dir, "empty.mid")
	assert.NoError(t, os.WriteFile(empty, writeTestSMF(t, false), 0644))

	wrongExt := filepath.Join(dir, "song.wav")
	assert.NoError(t, os.WriteFile(wrongExt, writeTestSMF(t, true), 0644))

	cases := []struct {
		name string
		path string
		ok   bool
	}{
		{"valid file", good, true},
		{"no notes", empty, false},
		{"wrong extension", wrongExt, false},
		{"missing file", filepath.Join(dir, "nope.mid"), false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ok, msg := ValidateMidiFile(c.path)
			assert.Equal(t, c.ok, ok, msg)
		})
	}
}
