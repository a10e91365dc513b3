package main

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/julien-sobczak/the-clozewriter/internal/core"
	"github.com/julien-sobczak/the-clozewriter/pkg/cloze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typeText(t *testing.T, m PracticeModel, text string) PracticeModel {
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return updated.(PracticeModel)
}

func pressKey(t *testing.T, m PracticeModel, key tea.KeyType) (PracticeModel, tea.Cmd) {
	updated, cmd := m.Update(tea.KeyMsg{Type: key})
	return updated.(PracticeModel), cmd
}

func TestPracticeModel(t *testing.T) {
	// 5 candidates per block, 1 blank per block
	session := core.NewSession(
		"<p>alpha bravo charlie delta echo</p><p>foxtrot golf hotel india juliett</p>",
		core.WithRatio(0.3),
		core.WithSource(cloze.NewFixedSource(0)))
	m := NewPracticeModel("NATO", session)
	require.Len(t, m.inputs, 2)
	assert.Contains(t, m.View(), "0/2 correct")

	m = typeText(t, m, "ALPHA")
	assert.True(t, session.IsCorrect(0))
	assert.Equal(t, core.StateAnswered, session.State())
	assert.Contains(t, m.View(), "1/2 correct")

	m, _ = pressKey(t, m, tea.KeyTab)
	assert.Equal(t, 1, m.focus)
	m = typeText(t, m, "foxtrot")
	assert.True(t, session.Completed())
	assert.Contains(t, m.View(), "Well done!")

	// Cycle
	m, _ = pressKey(t, m, tea.KeyTab)
	assert.Equal(t, 0, m.focus)
	m, _ = pressKey(t, m, tea.KeyShiftTab)
	assert.Equal(t, 1, m.focus)

	// Regenerate
	m, _ = pressKey(t, m, tea.KeyCtrlR)
	assert.Equal(t, 0, m.focus)
	assert.Equal(t, core.StateUnanswered, session.State())
	assert.Empty(t, m.inputs[0].Value())
	assert.Contains(t, m.View(), "0/2 correct")

	// Quit
	_, cmd := pressKey(t, m, tea.KeyEsc)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestPracticeModelWithoutBlanks(t *testing.T) {
	session := core.NewSession("<p>42</p>")
	m := NewPracticeModel("Numbers", session)
	assert.Empty(t, m.inputs)
	assert.Contains(t, m.View(), "Couldn't generate blanks")

	m = typeText(t, m, "x")
	m, cmd := pressKey(t, m, tea.KeyTab)
	assert.Nil(t, cmd)
	assert.Equal(t, 0, m.focus)
}
