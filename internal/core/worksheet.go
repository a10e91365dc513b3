package core

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/gosimple/slug"
	"github.com/julien-sobczak/the-clozewriter/pkg/cloze"
)

const (
	minInputWidth = 110
	maxInputWidth = 320
)

// InputWidth returns the width in pixels of the input for a blank.
func InputWidth(answer string) int {
	return min(maxInputWidth, max(minInputWidth, (utf8.RuneCountInString(answer)+4)*10))
}

// Answers are folded with cloze.Fold when rendering (data-folded).
// The script folds the input with upper then lower casing, the closest JavaScript equivalent.
const worksheetTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{ .Title }}</title>
<style>
body { font-family: sans-serif; max-width: 48rem; margin: 2rem auto; line-height: 2rem; }
.message { color: #666; font-size: .9rem; }
.image { display: inline-block; padding: 0 .5rem; margin: 0 .25rem; border: 1px solid #ccc; border-radius: .5rem; color: #666; font-size: .75rem; line-height: 1.25rem; }
input.blank { margin: 0 .25rem; padding: .1rem .5rem; border: 1px solid #999; border-radius: .5rem; }
input.blank.correct { background: rgba(34,197,94,0.15); border-color: rgba(34,197,94,0.75); }
</style>
</head>
<body>
<h1>{{ .Title }}</h1>
{{- if .Exercise.Ready }}
<p class="message">{{ .Exercise.TotalBlanks }} blanks</p>
{{- range .Exercise.Blocks }}
<p>
{{- range . }}
{{- if .IsBlank }}<input class="blank" data-answer="{{ .Blank.Answer }}" data-folded="{{ fold .Blank.Answer }}" data-index="{{ .Blank.Index }}" style="width: {{ width .Blank.Answer }}px" autocomplete="off" spellcheck="false">
{{- else if .IsImage }}<span class="image">image</span>
{{- else }}{{ .Text }}
{{- end }}
{{- end }}
</p>
{{- end }}
{{- else }}
<p class="message">{{ .Exercise.Status.Message }}</p>
{{- end }}
<script>
function fold(value) {
  return value.trim().toUpperCase().toLowerCase().replace(/ς/g, "σ");
}
document.querySelectorAll("input.blank").forEach(function (input) {
  input.addEventListener("input", function () {
    var user = fold(input.value);
    input.classList.toggle("correct", user !== "" && user === input.dataset.folded);
  });
});
</script>
</body>
</html>
`

var worksheet = template.Must(template.New("worksheet").Funcs(template.FuncMap{
	"width": InputWidth,
	"fold":  cloze.Fold,
}).Parse(worksheetTemplate))

// RenderWorksheet writes a standalone HTML page to practice the exercise in a browser.
func RenderWorksheet(w io.Writer, title string, exercise *cloze.Exercise) error {
	return worksheet.Execute(w, map[string]any{
		"Title":    title,
		"Exercise": exercise,
	})
}

// WriteWorksheet saves the worksheet on disk and returns its path.
// The file is created under .nt/worksheets/ when no path is given.
func WriteWorksheet(path string, title string, exercise *cloze.Exercise) (string, error) {
	if path == "" {
		path = filepath.Join(CurrentConfig().WorksheetDir(), slug.Make(title)+".html")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := RenderWorksheet(&buf, title, exercise); err != nil {
		return "", fmt.Errorf("unable to render worksheet: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return "", err
	}
	CurrentLogger().Infof("Worksheet written to %s", path)
	return path, nil
}
