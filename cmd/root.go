package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "arranger",
	Short: "Tiered trumpet arranger",
	Long:  `Turns MIDI songs into render-safe beginner/intermediate/advanced arrangements.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
