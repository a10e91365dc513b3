package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/julien-sobczak/the-clozewriter/pkg/cloze"
	"github.com/julien-sobczak/the-clozewriter/pkg/console"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func init() {
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check <exercise.yaml> <answers.yaml>",
	Short: "Grade answers",
	Long: `Grade the answers of an exercise previously generated with --format yaml (or json).

The answers file maps blank indices to inputs:

  0: memory
  1: cache
`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		var exercise cloze.Exercise
		if err := readYAMLFile(args[0], &exercise); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		var answers cloze.Answers
		if err := readYAMLFile(args[1], &answers); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		w := cmd.OutOrStdout()
		if !exercise.Ready() {
			fmt.Fprintln(w, exercise.Status.Message())
			return
		}
		correct, total := printGrades(w, &exercise, answers)
		message := ""
		if correct == total {
			message = "Well done!"
		}
		console.NewScoreBar(console.ToWriter(w), console.Width(20)).Print(correct, total, message)
	},
}

func readYAMLFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("invalid file %s: %w", path, err)
	}
	return nil
}

var (
	correctColor = color.New(color.FgGreen)
	wrongColor   = color.New(color.FgRed)
)

// printGrades prints the result of every blank and returns the score.
func printGrades(w io.Writer, exercise *cloze.Exercise, answers cloze.Answers) (correct int, total int) {
	for _, blank := range exercise.Blanks() {
		user := answers[blank.Index]
		if cloze.IsCorrect(answers, blank.Index, blank.Answer) {
			correctColor.Fprintf(w, "  ✔ #%d %s\n", blank.Index, user)
			continue
		}
		if user == "" {
			user = "(empty)"
		}
		wrongColor.Fprintf(w, "  ✘ #%d %s (expected: %s)\n", blank.Index, user, blank.Answer)
	}
	return exercise.Score(answers)
}
