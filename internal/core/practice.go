package core

import (
	"fmt"
	"maps"
	"time"

	"github.com/google/uuid"
	"github.com/julien-sobczak/the-clozewriter/internal/helpers"
	"github.com/julien-sobczak/the-clozewriter/pkg/clock"
	"github.com/julien-sobczak/the-clozewriter/pkg/cloze"
)

type SessionState int

const (
	// No answer was typed since the last generation
	StateUnanswered SessionState = iota
	StateAnswered
)

func (s SessionState) String() string {
	switch s {
	case StateUnanswered:
		return "unanswered"
	case StateAnswered:
		return "answered"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Session is a practice session on a single note.
// The exercise is recomputed whenever the note content changes.
type Session struct {
	ID        string
	StartedAt time.Time

	Exercise *cloze.Exercise

	ratio   float64
	picker  *cloze.Picker
	html    string
	hash    string
	answers cloze.Answers
	state   SessionState
}

type SessionOption func(*Session)

// WithRatio overrides the share of candidates to blank.
func WithRatio(ratio float64) SessionOption {
	return func(s *Session) {
		s.ratio = ratio
	}
}

// WithFallbackRatio overrides the minimum ratio used when no blank was generated.
func WithFallbackRatio(ratio float64) SessionOption {
	return func(s *Session) {
		s.picker.FallbackRatio = ratio
	}
}

// WithSource overrides the random source used to pick blanks.
func WithSource(source cloze.Source) SessionOption {
	return func(s *Session) {
		s.picker.Source = source
	}
}

// NewSession starts a session on the given HTML content.
func NewSession(html string, options ...SessionOption) *Session {
	s := &Session{
		ID:        uuid.New().String(),
		StartedAt: clock.Now(),
		ratio:     cloze.DefaultRatio,
		picker:    cloze.NewPicker(nil),
	}
	for _, option := range options {
		option(s)
	}
	s.load(html)
	return s
}

// NewConfiguredSession starts a session using the ratios of the current configuration.
// Options take precedence over the configuration.
func NewConfiguredSession(html string, options ...SessionOption) *Session {
	return NewSession(html, append(CurrentConfig().SessionOptions(), options...)...)
}

// NewNoteSession starts a session on a note using the ratios of the current configuration.
func NewNoteSession(note *Note, options ...SessionOption) *Session {
	return NewConfiguredSession(note.HTML, options...)
}

func (s *Session) load(html string) {
	s.html = html
	s.hash = helpers.HashText(html)
	s.Regenerate()
}

// Regenerate discards the answers and picks new blanks.
func (s *Session) Regenerate() {
	s.Exercise = s.picker.Generate(cloze.Normalize(s.html), s.ratio)
	s.answers = make(cloze.Answers)
	s.state = StateUnanswered
	CurrentLogger().Debugf("Session %s: generated %s", s.ID, s.Exercise)
	CurrentLogger().Dump(s.Exercise)
}

// Refresh regenerates the exercise only when the content has changed.
// It returns if a new exercise was generated.
func (s *Session) Refresh(html string) bool {
	if helpers.HashText(html) == s.hash {
		return false
	}
	CurrentLogger().Infof("Session %s: note content changed", s.ID)
	s.load(html)
	return true
}

// Answer records the user input for a blank.
func (s *Session) Answer(index int, value string) error {
	if index < 0 || index >= s.Exercise.TotalBlanks {
		return fmt.Errorf("no blank #%d in exercise with %d blanks", index, s.Exercise.TotalBlanks)
	}
	s.answers[index] = value
	s.state = StateAnswered
	return nil
}

// Answers returns a copy of the recorded inputs.
func (s *Session) Answers() cloze.Answers {
	return maps.Clone(s.answers)
}

func (s *Session) State() SessionState {
	return s.state
}

// IsCorrect checks the current input of a blank.
func (s *Session) IsCorrect(index int) bool {
	blank, ok := s.Exercise.Blank(index)
	if !ok {
		return false
	}
	return cloze.IsCorrect(s.answers, index, blank.Answer)
}

func (s *Session) Score() (correct int, total int) {
	return s.Exercise.Score(s.answers)
}

// Completed returns if every blank is correctly filled.
func (s *Session) Completed() bool {
	if !s.Exercise.Ready() {
		return false
	}
	correct, total := s.Score()
	return correct == total
}

// Message returns the text to display instead of the exercise, if any.
func (s *Session) Message() string {
	return s.Exercise.Status.Message()
}
