package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/itchyny/gojq"
	"github.com/julien-sobczak/the-clozewriter/internal/core"
	"github.com/julien-sobczak/the-clozewriter/pkg/cloze"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var generateRatio float64
var generateFormat string
var generateReveal bool
var generateQuery string

func init() {
	addNoteFlags(generateCmd)
	generateCmd.Flags().Float64VarP(&generateRatio, "ratio", "r", 0, "share of candidate words to blank (default to cloze.ratio)")
	generateCmd.Flags().StringVarP(&generateFormat, "format", "", "text", "output format: text, json, or yaml")
	generateCmd.Flags().BoolVarP(&generateReveal, "reveal", "", false, "show the answers in text format")
	generateCmd.Flags().StringVarP(&generateQuery, "query", "q", "", "jq expression to filter the JSON output")
	rootCmd.AddCommand(generateCmd)
}

var generateCmd = &cobra.Command{
	Use:   "generate [<section> <topic>]",
	Short: "Generate a cloze exercise",
	Long:  `Generate a fill-in-the-blank exercise from a saved note or a file.`,
	Run: func(cmd *cobra.Command, args []string) {
		source := mustReadNoteSource(args)

		var options []core.SessionOption
		if cmd.Flags().Changed("ratio") {
			options = append(options, core.WithRatio(generateRatio))
		}
		session := source.newSession(options...)

		if generateQuery != "" {
			generateFormat = "json"
		}
		if err := printExercise(cmd.OutOrStdout(), session.Exercise); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

func printExercise(w io.Writer, exercise *cloze.Exercise) error {
	switch generateFormat {
	case "text":
		fmt.Fprint(w, formatExercise(exercise, generateReveal))
		return nil
	case "yaml":
		data, err := yaml.Marshal(exercise)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	case "json":
		data, err := json.Marshal(exercise)
		if err != nil {
			return err
		}
		if generateQuery != "" {
			values, err := runQuery(generateQuery, data)
			if err != nil {
				return err
			}
			for _, value := range values {
				if err := printJSON(w, value); err != nil {
					return err
				}
			}
			return nil
		}
		return printJSON(w, exercise)
	}
	return fmt.Errorf("unsupported format %q", generateFormat)
}

func printJSON(w io.Writer, value any) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(w, string(data))
	return nil
}

// runQuery evaluates a jq expression on a JSON document.
func runQuery(expr string, data []byte) ([]any, error) {
	query, err := gojq.Parse(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid query %q: %w", expr, err)
	}

	var input any
	if err := json.Unmarshal(data, &input); err != nil {
		return nil, err
	}

	var values []any
	iter := query.Run(input)
	for {
		v, ok := iter.Next()
		if !ok {
			break
		}
		if err, ok := v.(error); ok {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

/* Text Rendering */

var (
	blankColor = color.New(color.FgYellow)
	imageColor = color.New(color.FgCyan)
)

// formatExercise renders an exercise for the terminal.
// Ex: "Main [0:______] is slow [image]"
func formatExercise(exercise *cloze.Exercise, reveal bool) string {
	if !exercise.Ready() {
		return exercise.Status.Message() + "\n"
	}

	var sb strings.Builder
	for _, parts := range exercise.Blocks {
		for _, part := range parts {
			switch {
			case part.IsBlank():
				sb.WriteString(blankColor.Sprint(formatBlank(*part.Blank, reveal)))
			case part.IsImage():
				sb.WriteString(imageColor.Sprint("[image]"))
			default:
				sb.WriteString(part.Text)
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func formatBlank(blank cloze.Blank, reveal bool) string {
	if reveal {
		return fmt.Sprintf("[%d:%s]", blank.Index, blank.Answer)
	}
	return fmt.Sprintf("[%d:%s]", blank.Index, strings.Repeat("_", max(3, utf8.RuneCountInString(blank.Answer))))
}
