package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/julien-sobczak/the-clozewriter/internal/core"
)

var verboseInfo bool
var verboseDebug bool
var verboseTrace bool

// Commands working without a .nt directory
var noConfigCommands = map[string]bool{
	"init":  true,
	"check": true,
}

var rootCmd = &cobra.Command{
	Use:   "nt-cloze",
	Short: "Practice your notes with fill-in-the-blank exercises",
	Long:  `Turn rich-text notes into cloze exercises, practice them in the terminal or in a browser.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Enable verbose output. The most verbose level wins when multiple flags are passsed.
		if verboseInfo {
			core.CurrentLogger().SetVerboseLevel(core.VerboseInfo)
		}
		if verboseDebug {
			core.CurrentLogger().SetVerboseLevel(core.VerboseDebug)
		}
		if verboseTrace {
			core.CurrentLogger().SetVerboseLevel(core.VerboseTrace)
		}

		if !noConfigCommands[cmd.Name()] {
			CheckConfig()
		}
	},
}

func init() {
	// Use PersistentFlags to make flags accessible to sub-commands
	rootCmd.PersistentFlags().BoolVarP(&verboseInfo, "v", "", false, "enable verbose info output")
	rootCmd.PersistentFlags().BoolVarP(&verboseDebug, "vv", "", false, "enable verbose debug output")
	rootCmd.PersistentFlags().BoolVarP(&verboseTrace, "vvv", "", false, "enable verbose trace output")
}

func Execute() {
	err := rootCmd.Execute()
	core.Reset() // Close the database
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func main() {
	Execute()
}
