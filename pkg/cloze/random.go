package cloze

import (
	"math/rand/v2"
)

var source Source = &RandomSource{}

/* Source */

// Source decides which candidates are blanked.
type Source interface {
	// Intn returns an integer in [0, n). n is always > 0.
	Intn(n int) int
}

// CurrentSource returns the source used by package-level functions.
func CurrentSource() Source {
	return source
}

// Reset restores the original random source.
// Useful in tests with a defer after overriding the default source.
func Reset() {
	source = &RandomSource{}
}

/*
 * RandomSource
 */

// RandomSource is a production-grade Source returning non-reproducible values.
// Two exercises generated from the same note will generally differ.
type RandomSource struct{}

func NewRandomSource() *RandomSource {
	return &RandomSource{}
}

func (s *RandomSource) Intn(n int) int {
	return rand.IntN(n)
}

/*
 * SequenceSource
 */

// SequenceSource returns a predefined suite of values (modulo n).
// This source is useful for tests when the exact blanks are relevant for the test case.
type SequenceSource struct {
	nextValues []int
}

func NewSequenceSource(nextValues ...int) *SequenceSource {
	return &SequenceSource{nextValues: nextValues}
}

func (s *SequenceSource) Intn(n int) int {
	if len(s.nextValues) == 0 {
		panic("No more values")
	}
	value, nextValues := s.nextValues[0], s.nextValues[1:]
	s.nextValues = nextValues
	return value % n
}

/*
 * FixedSource
 */

// FixedSource returns always the same value (modulo n).
// With 0, the first candidates of a block are always blanked.
type FixedSource struct {
	value int
}

func NewFixedSource(value int) *FixedSource {
	return &FixedSource{value: value}
}

func (s *FixedSource) Intn(n int) int {
	return s.value % n
}
