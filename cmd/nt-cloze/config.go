package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/julien-sobczak/the-clozewriter/internal/core"
	"github.com/spf13/cobra"
)

func CheckConfig() {
	err := core.CurrentConfig().Check()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// Flags shared by commands working on a note
var noteFile string
var noteTab string

func addNoteFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&noteFile, "file", "f", "", "read the note from a HTML or Markdown file instead of the database")
	cmd.Flags().StringVarP(&noteTab, "tab", "", "", "tab of the note (default to notes.default-tab)")
}

// NoteSource is the content to practice.
type NoteSource struct {
	Title string
	HTML  string
	// Nil when read from a file
	Note *core.Note
}

// readNoteSource loads the content from --file or from the database using <section> <topic>.
func readNoteSource(args []string) (*NoteSource, error) {
	if noteFile != "" {
		if len(args) > 0 {
			return nil, fmt.Errorf("unexpected arguments with --file: %s", strings.Join(args, " "))
		}
		html, err := core.ReadNoteFile(noteFile)
		if err != nil {
			return nil, err
		}
		title := strings.TrimSuffix(filepath.Base(noteFile), filepath.Ext(noteFile))
		return &NoteSource{Title: title, HTML: html}, nil
	}

	if len(args) != 2 {
		return nil, fmt.Errorf("expected <section> <topic> or --file, got %d argument(s)", len(args))
	}
	note, err := core.LoadNote(args[0], args[1], noteTab)
	if err != nil {
		return nil, err
	}
	return &NoteSource{
		Title: fmt.Sprintf("%s / %s", note.Section, note.Topic),
		HTML:  note.HTML,
		Note:  note,
	}, nil
}

// newSession starts a practice session using the configured ratios.
func (s *NoteSource) newSession(options ...core.SessionOption) *core.Session {
	if s.Note != nil {
		return core.NewNoteSession(s.Note, options...)
	}
	return core.NewConfiguredSession(s.HTML, options...)
}

func mustReadNoteSource(args []string) *NoteSource {
	source, err := readNoteSource(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	return source
}
