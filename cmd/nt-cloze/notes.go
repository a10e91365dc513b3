package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/julien-sobczak/the-clozewriter/internal/core"
	"github.com/spf13/cobra"
)

var markdownInput bool

func init() {
	addNoteFlags(notesSetCmd)
	notesSetCmd.Flags().BoolVarP(&markdownInput, "markdown", "m", false, "convert the standard input from Markdown")
	notesGetCmd.Flags().StringVarP(&noteTab, "tab", "", "", "tab of the note (default to notes.default-tab)")
	notesRmCmd.Flags().StringVarP(&noteTab, "tab", "", "", "tab of the note (default to notes.default-tab)")

	notesCmd.AddCommand(notesSetCmd)
	notesCmd.AddCommand(notesGetCmd)
	notesCmd.AddCommand(notesRmCmd)
	notesCmd.AddCommand(notesLsCmd)
	rootCmd.AddCommand(notesCmd)
}

var notesCmd = &cobra.Command{
	Use:   "notes",
	Short: "Manage notes",
}

var notesSetCmd = &cobra.Command{
	Use:   "set <section> <topic>",
	Short: "Save a note",
	Long:  `Save the content of a note from a file or from the standard input.`,
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		html, err := readNoteInput(cmd.InOrStdin())
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		note, err := core.SaveNote(args[0], args[1], noteTab, html)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Unable to save note: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Saved %s\n", note.Key)
	},
}

func readNoteInput(stdin io.Reader) (string, error) {
	if noteFile != "" {
		return core.ReadNoteFile(noteFile)
	}
	content, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("unable to read standard input: %w", err)
	}
	if markdownInput {
		return core.ConvertNote(".md", string(content))
	}
	return string(content), nil
}

var notesGetCmd = &cobra.Command{
	Use:   "get <section> <topic>",
	Short: "Print the HTML content of a note",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		note, err := core.LoadNote(args[0], args[1], noteTab)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Println(note.HTML)
	},
}

var notesRmCmd = &cobra.Command{
	Use:   "rm <section> <topic>",
	Short: "Delete a note",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		err := core.DeleteNote(args[0], args[1], noteTab)
		if errors.Is(err, core.ErrNoteNotFound) {
			fmt.Fprintf(os.Stderr, "No note found for %s/%s\n", args[0], args[1])
			os.Exit(1)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Unable to delete note: %v\n", err)
			os.Exit(1)
		}
	},
}

var notesLsCmd = &cobra.Command{
	Use:   "ls [section]",
	Short: "List notes",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var notes []*core.Note
		var err error
		if len(args) == 1 {
			notes, err = core.ListNotesBySection(args[0])
		} else {
			notes, err = core.ListNotes()
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Unable to list notes: %v\n", err)
			os.Exit(1)
		}
		printNotes(cmd.OutOrStdout(), notes)
	},
}

func printNotes(w io.Writer, notes []*core.Note) {
	for _, note := range notes {
		fmt.Fprintf(w, "%-20s %-30s %-10s %s\n", note.Section, note.Topic, note.Tab, note.UpdatedAt.Local().Format("2006-01-02 15:04"))
	}
}
