package main

import (
	"fmt"
	"os"

	"github.com/julien-sobczak/the-clozewriter/internal/core"
	"github.com/pkg/browser"
	"github.com/spf13/cobra"
)

var worksheetOutput string
var worksheetNoOpen bool

func init() {
	addNoteFlags(worksheetCmd)
	worksheetCmd.Flags().StringVarP(&worksheetOutput, "output", "o", "", "path of the HTML file (default to .nt/worksheets/<title>.html)")
	worksheetCmd.Flags().BoolVarP(&worksheetNoOpen, "no-open", "", false, "do not open the worksheet in the browser")
	rootCmd.AddCommand(worksheetCmd)
}

var worksheetCmd = &cobra.Command{
	Use:   "worksheet [<section> <topic>]",
	Short: "Practice in the browser",
	Long:  `Generate a standalone HTML page checking answers as you type.`,
	Run: func(cmd *cobra.Command, args []string) {
		source := mustReadNoteSource(args)
		session := source.newSession()

		path, err := core.WriteWorksheet(worksheetOutput, source.Title, session.Exercise)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Unable to write worksheet: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(path)

		if worksheetNoOpen {
			return
		}
		err = browser.OpenFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Unable to open %s: %v\n", path, err)
			os.Exit(1)
		}
	},
}
