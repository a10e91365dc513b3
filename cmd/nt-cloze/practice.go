package main

import (
	"github.com/spf13/cobra"
)

func init() {
	addNoteFlags(practiceCmd)
	rootCmd.AddCommand(practiceCmd)
}

var practiceCmd = &cobra.Command{
	Use:   "practice [<section> <topic>]",
	Short: "Practice in the terminal",
	Long:  `Fill the blanks interactively. Inputs turn green when correct.`,
	Run: func(cmd *cobra.Command, args []string) {
		source := mustReadNoteSource(args)
		Practice(source.Title, source.newSession())
	},
}
