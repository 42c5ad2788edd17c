package util

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeFilename(t *testing.T) {
	cases := []struct {
		title    string
		expected string
	}{
		{"My Song (Live)!", "My_Song_Live"},
		{"already_safe-1", "already_safe-1"},
		{"???", "untitled"},
		{"", "untitled"},
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("sanitize %q", c.title), func(t *testing.T) {
			assert.Equal(t, c.expected, SanitizeFilename(c.title))
		})
	}
}

func TestBinaryRoundTrip(t *testing.T) {
	path := t.TempDir() + "/roundtrip.dat"
	data := map[string]int{"a": 1, "b": 2}

	CreateBinary(path, data)
	decoded := ReadBinaryOrPanic[map[string]int](path)

	assert.Equal(t, data, decoded)
}
