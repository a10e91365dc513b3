package cloze

import (
	"math"
	"slices"
)

// MaxBlankShare is the maximum percentage of candidates blanked in a single block,
// whatever the requested ratio.
const MaxBlankShare = 35

// Blank is a hidden word waiting for the user answer.
type Blank struct {
	// The original word
	Answer string `json:"answer" yaml:"answer"`
	// Unique index inside the exercise (or inside the block before allocation)
	Index int `json:"index" yaml:"index"`
}

// Part is either a literal text or a blank.
type Part struct {
	Text  string `json:"text,omitempty" yaml:"text,omitempty"`
	Blank *Blank `json:"blank,omitempty" yaml:"blank,omitempty"`
}

// Literal creates a part rendered verbatim.
func Literal(text string) Part {
	return Part{Text: text}
}

// IsBlank returns if the part must be rendered as an input.
func (p Part) IsBlank() bool {
	return p.Blank != nil
}

// IsImage returns if the part stands for an image.
func (p Part) IsImage() bool {
	return !p.IsBlank() && p.Text == ImageToken
}

// String returns the text of the part, revealing the answer of blanks.
func (p Part) String() string {
	if p.IsBlank() {
		return p.Blank.Answer
	}
	return p.Text
}

// BlockCloze is the result of blanking a single block.
type BlockCloze struct {
	Parts   []Part
	Answers []string
}

// Picker selects the blanks using a given source.
type Picker struct {
	// The package source is used when nil
	Source Source
	// Minimum ratio of the second pass. FallbackRatio when zero.
	FallbackRatio float64
}

func NewPicker(source Source) *Picker {
	return &Picker{Source: source}
}

// PickBlanks blanks a block using the current package source.
func PickBlanks(tokens []Token, ratio float64) BlockCloze {
	return NewPicker(source).PickBlanks(tokens, ratio)
}

// PickBlanks replaces a random subset of the candidate words by blanks.
// Blanks are numbered from 0 inside the block, in token order.
func (p *Picker) PickBlanks(tokens []Token, ratio float64) BlockCloze {
	positions := candidates(tokens)
	picks := p.sample(positions, blankTarget(len(positions), ratio))

	var result BlockCloze
	for i, tok := range tokens {
		if !slices.Contains(picks, i) {
			result.Parts = append(result.Parts, Literal(tok.Text))
			continue
		}
		result.Parts = append(result.Parts, Part{
			Blank: &Blank{
				Answer: tok.Text,
				Index:  len(result.Answers),
			},
		})
		result.Answers = append(result.Answers, tok.Text)
	}
	return result
}

// candidates returns the positions of words longer than MinCandidateLength,
// or of all words when no word is long enough. Images are never candidates.
func candidates(tokens []Token) []int {
	var preferred, all []int
	for i, tok := range tokens {
		if !tok.IsWord() {
			continue
		}
		all = append(all, i)
		if tok.Candidate() {
			preferred = append(preferred, i)
		}
	}
	if len(preferred) > 0 {
		return preferred
	}
	return all
}

// blankTarget returns how many candidates to blank.
// Short blocks may legitimately get 0 blanks.
//
// NB: a block with a single candidate is capped at floor(0.35) = 0 blank.
func blankTarget(candidateCount int, ratio float64) int {
	if math.IsNaN(ratio) || ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	target := int(math.Round(float64(candidateCount) * ratio))
	// Integer arithmetic to avoid 60*0.35 = 20.999...
	limit := candidateCount * MaxBlankShare / 100
	return min(target, limit)
}

// sample draws k distinct positions uniformly (partial Fisher-Yates shuffle).
func (p *Picker) sample(positions []int, k int) []int {
	if k <= 0 {
		return nil
	}
	src := p.Source
	if src == nil {
		src = source
	}
	pool := slices.Clone(positions)
	for i := 0; i < k; i++ {
		j := i + src.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k]
}
