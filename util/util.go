package util

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/trumpetlab/arranger/constants"
	"golang.org/x/exp/constraints"
)

func GetMidiDir() string {
	return filepath.Join(constants.GetOutDir(), "midi")
}

func GetBackingDir() string {
	return filepath.Join(constants.GetOutDir(), "backing_tracks")
}

func GetCatalogPath() string {
	return filepath.Join(constants.GetOutDir(), "catalog.dat")
}

func RecreateOutputDir() {
	dir := constants.GetOutDir()
	os.RemoveAll(dir)
	for _, d := range []string{dir, GetMidiDir(), GetBackingDir()} {
		if err := os.MkdirAll(d, 0777); err != nil {
			panic("Could not RecreateOutputDir: " + err.Error())
		}
	}
}

func GatherAllMidiPaths(path string, maxNum int) []string {
	var res []string
	walk := func(s string, d fs.DirEntry, err error) error {
		if err != nil {
			panic("Error walking: " + err.Error())
		}
		if !d.IsDir() {
			if strings.HasSuffix(s, ".mid") || strings.HasSuffix(s, ".midi") {
				if maxNum == 0 || len(res) < maxNum {
					res = append(res, s)
				}
			}
		}
		return nil
	}
	filepath.WalkDir(path, walk)
	return res
}

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// SanitizeFilename turns a song title into something safe to write to disk.
func SanitizeFilename(title string) string {
	safe := unsafeFilenameChars.ReplaceAllString(title, "_")
	safe = strings.Trim(safe, "_")
	if safe == "" {
		return "untitled"
	}
	return safe
}

func GetKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := make([]A, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

func CreateBinary(filename string, data any) {
	buf := new(bytes.Buffer)
	encoder := gob.NewEncoder(buf)

	err := encoder.Encode(data)
	if err != nil {
		panic(err)
	}
	f, err := os.Create(filename)
	if err != nil {
		fmt.Println("Couldn't open file: "+filename, err)
	}
	defer f.Close()

	_, err = f.Write(buf.Bytes())
	if err != nil {
		fmt.Println("Write failed for file: "+filename, err)
	}
}

func OpenFileOrPanic(path string) *os.File {
	f, err := os.Open(path)
	if err != nil {
		panic("Couldn't read file: " + err.Error())
	}
	return f
}

func ReadBinaryOrPanic[A any](path string) A {
	f := OpenFileOrPanic(path)
	defer f.Close()

	var data A
	decoder := gob.NewDecoder(f)
	err := decoder.Decode(&data)
	if err != nil {
		panic("Could not decode binary file: " + err.Error())
	}

	return data
}
