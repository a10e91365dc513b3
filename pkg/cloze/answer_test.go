package cloze

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsCorrect(t *testing.T) {
	var tests = []struct {
		name     string  // name
		answers  Answers // user input
		index    int     // blank index
		original string  // expected answer
		expected bool    // expected result
	}{
		{"Exact", Answers{0: "CPU"}, 0, "CPU", true},
		{"Case and spaces", Answers{0: "  Cpu "}, 0, "CPU", true},
		{"Empty", Answers{0: ""}, 0, "CPU", false},
		{"Blank", Answers{0: "   "}, 0, "CPU", false},
		{"Missing", Answers{1: "CPU"}, 0, "CPU", false},
		{"Nil map", nil, 0, "CPU", false},
		{"Wrong", Answers{0: "GPU"}, 0, "CPU", false},
		{"Partial", Answers{0: "CP"}, 0, "CPU", false},
		{"Original with spaces", Answers{3: "cache"}, 3, " Cache\t", true},
		{"Unicode", Answers{0: "ÉTÉ"}, 0, "été", true},
		{"Greek sigma", Answers{0: "ΣΊΣΥΦΟΣ"}, 0, "σίσυφος", true},
		{"Empty original", Answers{0: "x"}, 0, "", false},
		{"Sharp s", Answers{0: "STRASSE"}, 0, "Straße", true},
		{"Ligature", Answers{0: "file"}, 0, "ﬁle", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsCorrect(tt.answers, tt.index, tt.original))
		})
	}
}

func TestFold(t *testing.T) {
	var tests = []struct {
		name     string // name
		input    string // answer
		expected string // folded answer
	}{
		{"Empty", "", ""},
		{"Spaces", " \t Memory \n", "memory"},
		{"Sharp s", "Straße", "strasse"},
		{"Ligature", "ﬁle", "file"},
		{"Final sigma", "ΛΌΓΟΣ", "λόγοσ"},
		{"Unicode", "ÉTÉ", "été"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Fold(tt.input))
		})
	}
}
