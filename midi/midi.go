package midi

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gitlab.com/gomidi/midi/v2/smf"
)

// ReadMidi parses an SMF from an in-memory payload, e.g. an HTTP upload.
func ReadMidi(r io.Reader) (s *smf.SMF, e error) {
	var blank smf.SMF

	// the smf parser panics on some malformed files
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if msg, ok := r.(string); ok {
			s = &blank
			e = errors.New(msg)
			return
		}
		panic(r)
	}()

	res, err := smf.ReadFrom(r)
	if err != nil {
		errText := fmt.Sprintf("Error parsing midi data... %s", err.Error())
		return &blank, errors.New(errText)
	}

	return res, nil
}

func ReadMidiFile(filepath string) (*smf.SMF, error) {
	var blank smf.SMF

	dat, err := os.ReadFile(filepath)
	if err != nil {
		errText := fmt.Sprintf("Error reading midi file... %s", err.Error())
		return &blank, errors.New(errText)
	}

	return ReadMidi(bytes.NewReader(dat))
}

// ValidateMidiFile checks a path before processing: it must exist, look
// like a MIDI file and contain at least one note-on.
func ValidateMidiFile(path string) (bool, string) {
	if _, err := os.Stat(path); err != nil {
		return false, fmt.Sprintf("Not found: %v", path)
	}
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".mid" && ext != ".midi" {
		return false, fmt.Sprintf("Invalid extension: %v", ext)
	}

	s, err := ReadMidiFile(path)
	if err != nil {
		return false, fmt.Sprintf("Parse error: %v", err.Error())
	}

	numNotes := CountNotes(s)
	if numNotes < 1 {
		return false, "No notes found"
	}
	return true, fmt.Sprintf("Valid: %v notes", numNotes)
}

func CountNotes(s *smf.SMF) int {
	var count int
	for _, track := range s.Tracks {
		for _, event := range track {
			var channel, key, velocity uint8
			if event.Message.GetNoteStart(&channel, &key, &velocity) {
				count++
			}
		}
	}
	return count
}
