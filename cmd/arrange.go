package cmd

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/trumpetlab/arranger/catalog"
	"github.com/trumpetlab/arranger/constants"
	"github.com/trumpetlab/arranger/db"
	"github.com/trumpetlab/arranger/midi"
	"github.com/trumpetlab/arranger/model"
	"github.com/trumpetlab/arranger/util"
)

func init() {
	rootCmd.AddCommand(arrangeCmd)
}

var arrangeCmd = &cobra.Command{
	Use:   "arrange",
	Short: "Arranges all songs",
	Long:  `Arranges every MIDI file in the songs dir into tiered versions plus backing tracks`,
	Run: func(cmd *cobra.Command, args []string) {
		var maxNum int
		if len(args) == 1 {
			arg1, err := strconv.Atoi(args[0])
			if err != nil {
				panic(err)
			}
			maxNum = arg1
		}

		runArrange(maxNum)
	},
}

func runArrange(maxNum int) {
	util.RecreateOutputDir()
	paths := util.GatherAllMidiPaths(constants.GetSongsDir(), maxNum)
	cat := make(model.Catalog)

	for _, path := range paths {
		ok, msg := midi.ValidateMidiFile(path)
		if !ok {
			fmt.Printf("Skipping %v: %v\n", path, msg)
			continue
		}

		s, err := midi.ReadMidiFile(path)
		if err != nil {
			fmt.Printf("Skipping %v: %v\n", path, err.Error())
			continue
		}

		title := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		entry, _, err := processSong(s, title)
		if err != nil {
			fmt.Printf("Failed to arrange %v: %v\n", path, err.Error())
			continue
		}

		cat[entry.Id] = entry
		if db.Enabled() {
			db.PutArrangement(entry)
		}
	}

	catalog.Save(cat)
	fmt.Printf("Arranged %v of %v songs\n", len(cat), len(paths))
}
