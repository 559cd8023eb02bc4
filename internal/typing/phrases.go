package typing

import "github.com/rivo/uniseg"

// Phrases is an immutable, non-empty, cyclic list of phrases. Each phrase
// keeps the byte offset of every grapheme cluster boundary so prefixes never
// split a character.
type Phrases struct {
	texts  []string
	bounds [][]int // bounds[i][n] is the byte length of the first n clusters
}

// NewPhrases segments texts and returns ErrNoPhrases when it is empty.
func NewPhrases(texts []string) (Phrases, error) {
	if len(texts) == 0 {
		return Phrases{}, ErrNoPhrases
	}
	p := Phrases{
		texts:  make([]string, len(texts)),
		bounds: make([][]int, len(texts)),
	}
	copy(p.texts, texts)
	for i, s := range p.texts {
		p.bounds[i] = clusterBounds(s)
	}
	return p, nil
}

// MustPhrases is NewPhrases for literals known to be non-empty.
func MustPhrases(texts ...string) Phrases {
	p, err := NewPhrases(texts)
	if err != nil {
		panic(err)
	}
	return p
}

func clusterBounds(s string) []int {
	bounds := []int{0}
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		_, to := g.Positions()
		bounds = append(bounds, to)
	}
	return bounds
}

// Len returns the number of phrases.
func (p Phrases) Len() int { return len(p.texts) }

// Validate reports whether p can drive an animation.
func (p Phrases) Validate() error {
	if len(p.texts) == 0 {
		return ErrNoPhrases
	}
	return nil
}

// Index wraps i into [0, Len()).
func (p Phrases) Index(i int) int {
	n := len(p.texts)
	if n == 0 {
		return 0
	}
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

// At returns phrase i, wrapping the index.
func (p Phrases) At(i int) string {
	if len(p.texts) == 0 {
		return ""
	}
	return p.texts[p.Index(i)]
}

// Length returns the number of grapheme clusters in phrase i.
func (p Phrases) Length(i int) int {
	if len(p.texts) == 0 {
		return 0
	}
	return len(p.bounds[p.Index(i)]) - 1
}

// Prefix returns the first n clusters of phrase i. n is clamped to the
// phrase length.
func (p Phrases) Prefix(i, n int) string {
	if len(p.texts) == 0 || n <= 0 {
		return ""
	}
	i = p.Index(i)
	b := p.bounds[i]
	if n >= len(b) {
		n = len(b) - 1
	}
	return p.texts[i][:b[n]]
}

// Texts returns a copy of the raw phrases.
func (p Phrases) Texts() []string {
	out := make([]string, len(p.texts))
	copy(out, p.texts)
	return out
}

// Equal reports whether both lists hold the same phrases in the same order.
func (p Phrases) Equal(o Phrases) bool {
	if len(p.texts) != len(o.texts) {
		return false
	}
	for i := range p.texts {
		if p.texts[i] != o.texts[i] {
			return false
		}
	}
	return true
}
