package cloze

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/julien-sobczak/the-clozewriter/pkg/text"
)

// ImageToken replaces every embedded image so that images survive as a single atomic token.
// The value is a valid word for the tokenizer but is never selected as a blank.
const ImageToken = "IMAGETOKEN"

// Closing one of these elements starts a new line.
var lineBreakingElements = map[atom.Atom]bool{
	atom.P:          true,
	atom.Div:        true,
	atom.H1:         true,
	atom.H2:         true,
	atom.H3:         true,
	atom.H4:         true,
	atom.H5:         true,
	atom.H6:         true,
	atom.Li:         true,
	atom.Blockquote: true,
	atom.Pre:        true,
	atom.Ul:         true,
	atom.Ol:         true,
}

// Normalize converts rich-text markup into an ordered list of plain-text lines (= blocks).
//
// Block-level elements and line breaks end the current line, images are replaced by
// ImageToken and any other tag is replaced by a single space to never glue two words.
// Lines are trimmed, their whitespace squashed and blank lines are dropped.
// Malformed markup never fails and never swallows the text that follows it:
// a '<' that does not start a complete tag is kept as text, an unterminated comment
// stops at the next tag, and raw-text elements (ex: <plaintext>) are still read as markup.
func Normalize(markup string) []string {
	var sb strings.Builder
	for rest := markup; rest != ""; {
		rest = normalizeUntilBroken(&sb, rest)
	}
	return text.NonBlankLines(sb.String())
}

// normalizeUntilBroken writes the text of the markup until a malformed construct
// is found and returns the markup remaining to read after it.
func normalizeUntilBroken(sb *strings.Builder, markup string) string {
	offset := 0 // Bytes of markup already consumed
	z := html.NewTokenizer(strings.NewReader(markup))
	for {
		tt := z.Next()
		// Must be read before TagName() that lowercases the buffer
		raw := z.Raw()

		switch tt {
		case html.ErrorToken:
			if len(raw) == 0 {
				// io.EOF
				return ""
			}
			// Tag truncated by the end of the input
			if i := bytes.IndexByte(raw, '>'); i >= 0 {
				sb.WriteRune(' ')
				return markup[offset+i+1:]
			}
			if i := bytes.IndexByte(raw[1:], '<'); i >= 0 {
				sb.WriteString(html.UnescapeString(string(raw[:i+1])))
				return markup[offset+i+1:]
			}
			sb.WriteString(html.UnescapeString(string(raw)))
			return ""
		case html.TextToken:
			sb.Write(z.Text())
		case html.StartTagToken, html.SelfClosingTagToken, html.EndTagToken:
			if i := strayTagStart(raw); i >= 0 {
				// The '>' closes another tag: what we read was text
				sb.WriteString(html.UnescapeString(string(raw[:i])))
				return markup[offset+i:]
			}
			name, _ := z.TagName()
			if tt == html.EndTagToken {
				writeEndTag(sb, atom.Lookup(name))
				break
			}
			writeStartTag(sb, atom.Lookup(name))
			z.NextIsNotRawText()
		case html.CommentToken, html.DoctypeToken:
			if n := brokenCommentEnd(raw); n > 0 {
				return markup[offset+n:]
			}
			// Comments and doctypes are ignored
		}
		offset += len(raw)
	}
}

func writeStartTag(sb *strings.Builder, tag atom.Atom) {
	switch tag {
	case atom.Img:
		sb.WriteString(" " + ImageToken + " ")
	case atom.Br:
		sb.WriteRune('\n')
	default:
		sb.WriteRune(' ')
	}
}

func writeEndTag(sb *strings.Builder, tag atom.Atom) {
	if lineBreakingElements[tag] || tag == atom.Br {
		sb.WriteRune('\n')
	} else {
		sb.WriteRune(' ')
	}
}

// strayTagStart returns the position of a '<' found inside a tag outside quoted
// attribute values, or -1. Such a tag was missing its own '>'.
func strayTagStart(raw []byte) int {
	var quote byte
	afterEquals := false
	for i := 1; i < len(raw); i++ {
		c := raw[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '<':
			return i
		case afterEquals && (c == '"' || c == '\''):
			quote = c
			afterEquals = false
		case c == '=':
			afterEquals = true
		case c != ' ' && c != '\t' && c != '\n' && c != '\r' && c != '\f':
			afterEquals = false
		}
	}
	return -1
}

// brokenCommentEnd returns where a comment-like token that was never closed ends:
// before the next '<' or after the next '>' following its opening marker
// ("<!--", "<!", "<?" or "</"). It returns 0 when the token is properly closed.
func brokenCommentEnd(raw []byte) int {
	if len(raw) < 2 {
		return 0
	}
	if !bytes.HasPrefix(raw, []byte("<!--")) {
		// Bogus comments and doctypes end at the first '>'
		if i := bytes.IndexByte(raw[2:], '<'); i >= 0 {
			return 2 + i
		}
		if bytes.HasSuffix(raw, []byte(">")) {
			return 0
		}
		return len(raw)
	}

	if bytes.HasSuffix(raw, []byte("-->")) || bytes.HasSuffix(raw, []byte("--!>")) {
		return 0
	}
	marker := len("<!--")
	i := bytes.IndexAny(raw[marker:], "<>")
	if i < 0 {
		return len(raw)
	}
	if raw[marker+i] == '>' {
		return marker + i + 1
	}
	return marker + i
}
