package cloze

import (
	"strings"

	"golang.org/x/text/cases"
)

// Answers contains the user input for each blank index.
type Answers map[int]string

// IsCorrect checks the user input for a blank against the expected answer.
// Comparison ignores surrounding whitespace and case. An empty input is never correct.
func IsCorrect(answers Answers, index int, original string) bool {
	user := Fold(answers[index]) // Missing = ""
	if user == "" {
		return false
	}
	return user == Fold(original)
}

// Fold returns the form of an answer used for comparison:
// surrounding whitespace removed and Unicode full case folding applied (ex: "Straße" => "strasse").
func Fold(answer string) string {
	// A Caser is stateful and cannot be shared
	return cases.Fold().String(strings.TrimSpace(answer))
}
