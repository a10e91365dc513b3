package cloze

import "testing"

// UseSequence configures a predefined list of random values.
func UseSequence(t *testing.T, values ...int) {
	source = NewSequenceSource(values...)
	t.Cleanup(Reset)
}

// UseFixed configures a fixed random value.
func UseFixed(t *testing.T, value int) {
	source = NewFixedSource(value)
	t.Cleanup(Reset)
}
