package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/julien-sobczak/the-clozewriter/internal/core"
	"github.com/julien-sobczak/the-clozewriter/pkg/cloze"
)

/*
 * The command practice uses Bubble Tea under the hood to provide an interactive CLI.
 * All BubbleTea-related code is present in this file to make easy to refactor or switch to another library someday.
 */

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	imageStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Border(lipgloss.RoundedBorder(), false, true)
	blankStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("170"))
	correctStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	messageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).MarginTop(1)
)

func Practice(title string, session *core.Session) {
	/* Inspired by https://github.com/charmbracelet/bubbletea/blob/master/examples/textinputs/ */
	res, err := tea.NewProgram(NewPracticeModel(title, session)).Run()
	if err != nil {
		log.Fatal(err)
	}
	model := res.(PracticeModel)
	correct, total := model.session.Score()
	if total > 0 {
		fmt.Printf("%d/%d correct\n", correct, total)
	}
}

type PracticeModel struct {
	title   string
	session *core.Session
	inputs  []textinput.Model
	focus   int
}

func NewPracticeModel(title string, session *core.Session) PracticeModel {
	m := PracticeModel{
		title:   title,
		session: session,
	}
	m.resetInputs()
	return m
}

// resetInputs creates an empty input per blank.
func (m *PracticeModel) resetInputs() {
	blanks := m.session.Exercise.Blanks()
	m.inputs = make([]textinput.Model, len(blanks))
	m.focus = 0
	for i, blank := range blanks {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = strings.Repeat("_", 3)
		ti.CharLimit = 64
		ti.Width = core.InputWidth(blank.Answer) / 10
		if i == 0 {
			ti.Focus()
		}
		m.inputs[i] = ti
	}
}

func (m PracticeModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m PracticeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "ctrl+r":
			m.session.Regenerate()
			m.resetInputs()
			return m, textinput.Blink

		case "tab", "enter", "down":
			return m, m.moveFocus(1)

		case "shift+tab", "up":
			return m, m.moveFocus(-1)
		}
	}

	if len(m.inputs) == 0 {
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	if _, ok := msg.(tea.KeyMsg); ok {
		// Indices are contiguous and follow the display order
		if err := m.session.Answer(m.focus, m.inputs[m.focus].Value()); err != nil {
			core.CurrentLogger().Warnf("Unable to record answer: %v", err)
		}
	}
	return m, cmd
}

func (m *PracticeModel) moveFocus(delta int) tea.Cmd {
	if len(m.inputs) == 0 {
		return nil
	}
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + len(m.inputs)) % len(m.inputs)
	return m.inputs[m.focus].Focus()
}

func (m PracticeModel) View() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render(m.title))
	sb.WriteString("\n")

	exercise := m.session.Exercise
	if !exercise.Ready() {
		sb.WriteString(messageStyle.Render(exercise.Status.Message()))
		sb.WriteString("\n")
		sb.WriteString(helpStyle.Render("ctrl+r: regenerate • esc: quit"))
		return sb.String() + "\n"
	}

	for _, parts := range exercise.Blocks {
		for _, part := range parts {
			sb.WriteString(m.renderPart(part))
		}
		sb.WriteString("\n")
	}

	correct, total := m.session.Score()
	status := fmt.Sprintf("%d/%d correct", correct, total)
	if m.session.Completed() {
		status = correctStyle.Render(status + " Well done!")
	}
	sb.WriteString("\n")
	sb.WriteString(status)
	sb.WriteString("\n")
	sb.WriteString(helpStyle.Render(fmt.Sprintf("tab/shift+tab: move • ctrl+r: regenerate (%.0f%%) • esc: quit", exercise.Ratio*100)))
	return sb.String() + "\n"
}

func (m PracticeModel) renderPart(part cloze.Part) string {
	switch {
	case part.IsBlank():
		index := part.Blank.Index
		if index >= len(m.inputs) {
			return ""
		}
		if m.session.IsCorrect(index) {
			return correctStyle.Render("[" + m.inputs[index].Value() + "]")
		}
		return blankStyle.Render("[") + m.inputs[index].View() + blankStyle.Render("]")
	case part.IsImage():
		return imageStyle.Render("image")
	}
	return part.Text
}
