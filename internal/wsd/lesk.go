// Package wsd implements word-sense disambiguation over the lexicon.
package wsd

import (
	"strings"

	"github.com/heartmarshall/lexcore/internal/lexicon"
)

// SenseLookup returns the candidate senses of a word, most frequent first.
type SenseLookup interface {
	Synsets(word string) []*lexicon.Synset
}

// Lesk disambiguates words with the simplified Lesk heuristic: the chosen
// sense is the candidate whose definition shares the most words with the
// context. Ties go to the earlier candidate.
type Lesk struct {
	lookup SenseLookup
}

// NewLesk creates a Lesk disambiguator over lookup.
func NewLesk(lookup SenseLookup) *Lesk {
	return &Lesk{lookup: lookup}
}

// Context is a set of context words built once per gloss.
type Context map[string]struct{}

// NewContext builds a Context from tokens.
func NewContext(tokens []string) Context {
	c := make(Context, len(tokens))
	for _, t := range tokens {
		c[t] = struct{}{}
	}
	return c
}

// Disambiguate returns the best sense of word in ctx, or nil when the word
// has no candidate senses.
func (l *Lesk) Disambiguate(ctx Context, word string) *lexicon.Synset {
	candidates := l.lookup.Synsets(word)
	if len(candidates) == 0 {
		return nil
	}

	best, bestScore := candidates[0], -1
	for _, s := range candidates {
		if score := ctx.overlap(s.Definition); score > bestScore {
			best, bestScore = s, score
		}
	}
	return best
}

// overlap counts the distinct definition words present in the context.
func (c Context) overlap(definition string) int {
	seen := make(map[string]struct{})
	for _, w := range strings.Fields(definition) {
		if _, ok := c[w]; !ok {
			continue
		}
		seen[w] = struct{}{}
	}
	return len(seen)
}
