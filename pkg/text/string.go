package text

import (
	"strings"
	"unicode"
)

// IsBlank returns if a text is blank.
func IsBlank(text string) bool {
	return len(strings.TrimSpace(text)) == 0
}

// IsHorizontalSpace reports whether r is a whitespace that does not end a line.
func IsHorizontalSpace(r rune) bool {
	return r != '\n' && unicode.IsSpace(r)
}

// SquashSpaces replaces every run of horizontal whitespace by a single space.
// Newlines are preserved.
func SquashSpaces(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))

	inSpace := false
	for _, r := range text {
		if IsHorizontalSpace(r) {
			if !inSpace {
				sb.WriteRune(' ')
			}
			inSpace = true
			continue
		}
		inSpace = false
		sb.WriteRune(r)
	}
	return sb.String()
}

// NonBlankLines splits a text into lines, squashes spaces inside each line,
// trims them and drops the blank ones. Order is preserved.
func NonBlankLines(text string) []string {
	var result []string
	for _, line := range strings.Split(SquashSpaces(text), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		result = append(result, line)
	}
	return result
}
