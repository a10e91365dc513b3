package cloze

import (
	"unicode"
	"unicode/utf8"
)

// MinCandidateLength is the number of characters a word must exceed to be a preferred candidate.
const MinCandidateLength = 3

// Kind classifies a token.
type Kind int

const (
	KindWord Kind = iota
	KindWhitespace
	KindPunctuation
	KindImage
)

func (k Kind) String() string {
	switch k {
	case KindWord:
		return "word"
	case KindWhitespace:
		return "whitespace"
	case KindPunctuation:
		return "punctuation"
	case KindImage:
		return "image"
	}
	return "unknown"
}

// Token is a maximal substring of a block classified as exactly one kind.
type Token struct {
	Kind Kind
	Text string
}

// IsWord returns if the token can be hidden (= a word that is not an image).
func (t Token) IsWord() bool {
	return t.Kind == KindWord
}

// Candidate returns if the token is a preferred blank candidate.
func (t Token) Candidate() bool {
	return t.IsWord() && utf8.RuneCountInString(t.Text) > MinCandidateLength
}

func (t Token) String() string {
	return t.Kind.String() + "(" + t.Text + ")"
}

// A rule returns how many bytes it matches at the start of the string, 0 if none.
type rule struct {
	kind  Kind
	match func(s string) int
}

// Rules are evaluated in order. The first one matching wins.
// Every non-empty string is matched by at least one rule.
var rules = []rule{
	{KindWord, matchWord},
	{KindWhitespace, matchWhitespace},
	{KindPunctuation, matchPunctuation},
}

// Tokenize splits a block into words, whitespace runs and punctuation runs.
// Concatenating the token texts always gives back the original block.
func Tokenize(block string) []Token {
	var tokens []Token
	for rest := block; rest != ""; {
		for _, r := range rules {
			n := r.match(rest)
			if n == 0 {
				continue
			}
			tok := Token{Kind: r.kind, Text: rest[:n]}
			if tok.Kind == KindWord && tok.Text == ImageToken {
				tok.Kind = KindImage
			}
			tokens = append(tokens, tok)
			rest = rest[n:]
			break
		}
	}
	return tokens
}

// matchWord matches a letter followed by letters or digits, optionally extended
// by groups made of a hyphen or an apostrophe followed by letters or digits.
// Ex: "state-of-the-art", "don't", "l’été"
func matchWord(s string) int {
	r, size := utf8.DecodeRuneInString(s)
	if !unicode.IsLetter(r) {
		return 0
	}
	end := size + spanWordRunes(s[size:])
	for end < len(s) {
		r, size := utf8.DecodeRuneInString(s[end:])
		if !isJoiner(r) {
			break
		}
		n := spanWordRunes(s[end+size:])
		if n == 0 {
			// A trailing hyphen/apostrophe is punctuation
			break
		}
		end += size + n
	}
	return end
}

func matchWhitespace(s string) int {
	return span(s, unicode.IsSpace)
}

func matchPunctuation(s string) int {
	return span(s, func(r rune) bool {
		return !unicode.IsSpace(r) && !unicode.IsLetter(r)
	})
}

// spanWordRunes matches letters, digits and combining marks.
// Marks are needed for scripts like Devanagari where vowel signs are not letters.
func spanWordRunes(s string) int {
	return span(s, func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.IsMark(r)
	})
}

func isJoiner(r rune) bool {
	return r == '-' || r == '\'' || r == '’'
}

// span returns the length in bytes of the longest prefix whose runes satisfy f.
// Invalid UTF-8 bytes are seen as utf8.RuneError.
func span(s string, f func(rune) bool) int {
	i := 0
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if !f(r) {
			break
		}
		i += size
	}
	return i
}
