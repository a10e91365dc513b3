package markdown

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"
)

// Engine is the library used to convert Markdown to HTML.
type Engine string

const (
	EngineGomarkdown Engine = "gomarkdown"
	EngineGoldmark   Engine = "goldmark"
)

// Engines lists the supported engines.
var Engines = []Engine{EngineGomarkdown, EngineGoldmark}

// ParseEngine validates an engine name. The empty string selects the default engine.
func ParseEngine(name string) (Engine, error) {
	if name == "" {
		return EngineGomarkdown, nil
	}
	for _, engine := range Engines {
		if strings.EqualFold(string(engine), name) {
			return engine, nil
		}
	}
	return "", fmt.Errorf("unsupported markdown engine %q", name)
}

// ToHTML converts Markdown to HTML using the default engine.
func ToHTML(md string) string {
	extensions := parser.CommonExtensions | parser.AutoHeadingIDs
	p := parser.NewWithExtensions(extensions)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	result := markdown.ToHTML([]byte(md), p, renderer)
	return strings.TrimSpace(string(result))
}

// ToHTMLWithGoldmark converts Markdown to HTML using the CommonMark-compliant goldmark.
// Raw HTML present in notes is kept.
func ToHTMLWithGoldmark(md string) (string, error) {
	converter := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(goldmarkhtml.WithUnsafe()),
	)
	var buf bytes.Buffer
	if err := converter.Convert([]byte(md), &buf); err != nil {
		return "", err
	}
	return strings.TrimSpace(buf.String()), nil
}

// Convert converts Markdown to HTML using the given engine.
func (e Engine) Convert(md string) (string, error) {
	switch e {
	case EngineGomarkdown, "":
		return ToHTML(md), nil
	case EngineGoldmark:
		return ToHTMLWithGoldmark(md)
	}
	return "", fmt.Errorf("unsupported markdown engine %q", string(e))
}
