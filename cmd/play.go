package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/trumpetlab/arranger/arrange"
	"github.com/trumpetlab/arranger/midi"
	"github.com/trumpetlab/arranger/model"
	"github.com/trumpetlab/arranger/score"
	"github.com/trumpetlab/arranger/transpose"
	gomidi "gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver
)

func init() {
	rootCmd.AddCommand(playCmd)
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Plays one tier of a song live",
	Long:  `Plays one tier of a song through the first MIDI out port`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 2 {
			panic("Need 2 args: <midifile> <tier>")
		}
		play(args[0], args[1])
	},
}

func play(path string, tier model.Tier) {
	defer gomidi.CloseDriver()

	s, err := midi.ReadMidiFile(path)
	if err != nil {
		panic("Could not read midi file: " + err.Error())
	}

	events := score.ExtractRawEvents(s)
	meta := score.ExtractMetadata(s)
	arr, err := arrange.Tier(events, tier, transpose.Calculate(events), meta.Tempo)
	if err != nil {
		panic("Could not arrange: " + err.Error())
	}

	out, err := gomidi.OutPort(0)
	if err != nil {
		fmt.Println("can't find a MIDI out port")
		return
	}
	send, err := gomidi.SendTo(out)
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		return
	}

	sleep := func(t model.Ticks) {
		time.Sleep(time.Duration(int64(t) * int64(time.Minute) / (int64(arr.Tempo) * int64(model.TicksPerQuarter))))
	}

	fmt.Printf("playing %v (%v) at %v bpm, %v events\n", path, tier, arr.Tempo, len(arr.Events))
	for _, ev := range arr.Events {
		if ev.IsRest {
			sleep(ev.Duration)
			continue
		}
		send(gomidi.NoteOn(0, ev.Pitch, 90))
		sleep(ev.Duration)
		send(gomidi.NoteOff(0, ev.Pitch))
	}
}
