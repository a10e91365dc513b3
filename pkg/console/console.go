package console

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// ScoreBar prints a score as a bar of '#' followed by the ratio.
//
// Ex: "######     (3/5) Well done"
type ScoreBar struct {
	output      io.Writer
	showPercent bool
	width       int
}

func NewScoreBar(options ...func(*ScoreBar)) *ScoreBar {
	result := &ScoreBar{
		output:      os.Stdout,
		showPercent: false,
		width:       10,
	}
	for _, option := range options {
		option(result)
	}
	return result
}

func ToWriter(w io.Writer) func(*ScoreBar) {
	return func(s *ScoreBar) {
		s.output = w
	}
}

func ShowPercent() func(*ScoreBar) {
	return func(s *ScoreBar) {
		s.showPercent = true
	}
}

// Width changes the number of characters of the bar.
func Width(characters int) func(*ScoreBar) {
	return func(s *ScoreBar) {
		s.width = characters
	}
}

// Render returns the bar without printing it.
func (b *ScoreBar) Render(correct, total int) string {
	i100 := 0
	if total > 0 {
		i100 = correct * 100 / total
	}
	filled := i100 * b.width / 100

	var sb strings.Builder
	sb.WriteString(strings.Repeat("#", filled))
	sb.WriteString(strings.Repeat(" ", b.width-filled))
	sb.WriteRune(' ')
	if b.showPercent {
		sb.WriteString(fmt.Sprintf("(%3d%%)", i100))
	} else {
		sb.WriteString(fmt.Sprintf("(%d/%d)", correct, total))
	}
	return sb.String()
}

// Print writes the bar followed by a message on a single line.
func (b *ScoreBar) Print(correct, total int, message string) {
	line := b.Render(correct, total)
	if message != "" {
		line += " " + message
	}
	fmt.Fprintln(b.output, line)
}
