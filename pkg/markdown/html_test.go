package markdown_test

import (
	"testing"

	"github.com/julien-sobczak/the-clozewriter/pkg/markdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const note = `# Memory

The **processor** reads ![diagram](cpu.png) registers.

* Caches
* RAM
`

func TestToHTML(t *testing.T) {
	html := markdown.ToHTML(note)
	assert.Contains(t, html, "<h1")
	assert.Contains(t, html, "<strong>processor</strong>")
	assert.Contains(t, html, `<img src="cpu.png" alt="diagram"`)
	assert.Contains(t, html, "<li>Caches</li>")
}

func TestToHTMLWithGoldmark(t *testing.T) {
	html, err := markdown.ToHTMLWithGoldmark(note + "\n<p>raw</p>\n")
	require.NoError(t, err)
	assert.Contains(t, html, "<h1>Memory</h1>")
	assert.Contains(t, html, "<strong>processor</strong>")
	assert.Contains(t, html, `<img src="cpu.png" alt="diagram"`)
	assert.Contains(t, html, "<li>Caches</li>")
	assert.Contains(t, html, "<p>raw</p>")
}

func TestParseEngine(t *testing.T) {
	engine, err := markdown.ParseEngine("")
	require.NoError(t, err)
	assert.Equal(t, markdown.EngineGomarkdown, engine)

	engine, err = markdown.ParseEngine("GoldMark")
	require.NoError(t, err)
	assert.Equal(t, markdown.EngineGoldmark, engine)

	_, err = markdown.ParseEngine("pandoc")
	assert.Error(t, err)
}

func TestEngineConvert(t *testing.T) {
	for _, engine := range markdown.Engines {
		t.Run(string(engine), func(t *testing.T) {
			html, err := engine.Convert("Hello *world*")
			require.NoError(t, err)
			assert.Equal(t, "<p>Hello <em>world</em></p>", html)
		})
	}

	_, err := markdown.Engine("pandoc").Convert("Hello")
	assert.Error(t, err)
}
