package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/trumpetlab/arranger/arrange"
	"github.com/trumpetlab/arranger/constants"
	"github.com/trumpetlab/arranger/midi"
	"github.com/trumpetlab/arranger/score"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Inspects a song's tier timelines",
	Long:  `Inspects a song's tier timelines`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need 1 arg...")
		}
		inspect(args[0])
	},
}

func inspect(path string) {
	s, err := midi.ReadMidiFile(path)
	if err != nil {
		panic("Could not read midi file: " + err.Error())
	}

	meta := score.ExtractMetadata(s)
	events := score.ExtractRawEvents(s)
	fmt.Printf("meta: %+v\n", meta)

	_, tiers, err := arrange.Song(events, meta.Tempo)
	if err != nil {
		panic("Could not arrange: " + err.Error())
	}

	for _, tier := range constants.Tiers {
		arr, ok := tiers[tier]
		if !ok {
			continue
		}
		fmt.Printf("\n[%v] tempo=%v events=%v\n", tier, arr.Tempo, len(arr.Events))
		for _, ev := range arr.Events {
			if ev.IsRest {
				fmt.Printf("  %7.3f  %6.3f  rest\n", ev.Offset.Quarters(), ev.Duration.Quarters())
			} else {
				fmt.Printf("  %7.3f  %6.3f  pitch=%v\n", ev.Offset.Quarters(), ev.Duration.Quarters(), ev.Pitch)
			}
		}
	}
}
