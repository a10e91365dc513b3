// Package cloze turns rich-text notes into fill-in-the-blank exercises.
package cloze

import (
	"fmt"
)

const (
	// DefaultRatio is the share of candidates to blank.
	DefaultRatio = 0.15
	// FallbackRatio is the minimum ratio used to retry when no blank was generated.
	FallbackRatio = 0.18
)

// Status distinguishes a practicable exercise from the empty cases.
type Status int

const (
	StatusReady Status = iota
	// No text at all
	StatusNoNotes
	// Text was found but no word could be blanked, even after a retry
	StatusNoBlanks
)

var statusNames = map[Status]string{
	StatusReady:    "ready",
	StatusNoNotes:  "no-notes",
	StatusNoBlanks: "no-blanks",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("status(%d)", int(s))
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Status) UnmarshalText(b []byte) error {
	for status, name := range statusNames {
		if name == string(b) {
			*s = status
			return nil
		}
	}
	return fmt.Errorf("unknown exercise status %q", string(b))
}

// Message returns a message to display when there is nothing to practice.
func (s Status) Message() string {
	switch s {
	case StatusNoNotes:
		return "No notes found yet. Add notes first, then come back."
	case StatusNoBlanks:
		return "Couldn't generate blanks from these notes. Add a bit more normal text (words), then regenerate."
	}
	return ""
}

// Exercise is a fill-in-the-blank exercise generated from a note.
type Exercise struct {
	// One list of parts per line of the note
	Blocks [][]Part `json:"blocks" yaml:"blocks"`
	// Blank indices are in [0, TotalBlanks)
	TotalBlanks int `json:"total_blanks" yaml:"total_blanks"`
	// Ratio used by the last attempt
	Ratio float64 `json:"ratio" yaml:"ratio"`
	// Number of passes (2 when the fallback ratio was tried)
	Attempts int    `json:"attempts" yaml:"attempts"`
	Status   Status `json:"status" yaml:"status"`
}

// Ready returns if the exercise contains at least one blank.
func (e *Exercise) Ready() bool {
	return e.Status == StatusReady
}

// Blanks returns all blanks ordered by index.
func (e *Exercise) Blanks() []Blank {
	var result []Blank
	for _, parts := range e.Blocks {
		for _, part := range parts {
			if part.IsBlank() {
				result = append(result, *part.Blank)
			}
		}
	}
	return result
}

// Blank returns the blank for a given index.
func (e *Exercise) Blank(index int) (Blank, bool) {
	for _, blank := range e.Blanks() {
		if blank.Index == index {
			return blank, true
		}
	}
	return Blank{}, false
}

// Score returns how many blanks are correctly answered.
func (e *Exercise) Score(answers Answers) (correct int, total int) {
	for _, blank := range e.Blanks() {
		if IsCorrect(answers, blank.Index, blank.Answer) {
			correct++
		}
	}
	return correct, e.TotalBlanks
}

// Lines returns the text of each block, blanks revealed.
func (e *Exercise) Lines() []string {
	var result []string
	for _, parts := range e.Blocks {
		var line string
		for _, part := range parts {
			line += part.String()
		}
		result = append(result, line)
	}
	return result
}

func (e Exercise) String() string {
	return fmt.Sprintf("exercise [%s] %d blanks in %d blocks (ratio %.2f)", e.Status, e.TotalBlanks, len(e.Blocks), e.Ratio)
}

/* Generation */

// Generate builds an exercise from normalized blocks using the current package source.
func Generate(blocks []string, ratio float64) *Exercise {
	return NewPicker(source).Generate(blocks, ratio)
}

// GenerateFromHTML normalizes the markup before generating the exercise.
func GenerateFromHTML(markup string, ratio float64) *Exercise {
	return Generate(Normalize(markup), ratio)
}

// Regenerate builds a new exercise with the default ratio.
// Answers of a previous exercise must be discarded.
func Regenerate(markup string) *Exercise {
	return GenerateFromHTML(markup, DefaultRatio)
}

// Generate builds an exercise from normalized blocks.
// When no blank is generated, a second and last pass is tried with a higher ratio.
func (p *Picker) Generate(blocks []string, ratio float64) *Exercise {
	if len(blocks) == 0 {
		return &Exercise{
			Ratio:  ratio,
			Status: StatusNoNotes,
		}
	}

	exercise := p.generate(blocks, ratio)
	exercise.Attempts = 1
	if exercise.TotalBlanks == 0 {
		exercise = p.generate(blocks, max(ratio, p.fallbackRatio()))
		exercise.Attempts = 2
	}
	if exercise.TotalBlanks == 0 {
		exercise.Status = StatusNoBlanks
	}
	return exercise
}

func (p *Picker) fallbackRatio() float64 {
	if p.FallbackRatio > 0 {
		return p.FallbackRatio
	}
	return FallbackRatio
}

func (p *Picker) generate(blocks []string, ratio float64) *Exercise {
	parts := make([][]Part, len(blocks))
	for i, block := range blocks {
		parts[i] = p.PickBlanks(Tokenize(block), ratio).Parts
	}
	allocated, total := Allocate(parts)
	return &Exercise{
		Blocks:      allocated,
		TotalBlanks: total,
		Ratio:       ratio,
		Status:      StatusReady,
	}
}
