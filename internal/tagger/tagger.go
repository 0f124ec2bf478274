// Package tagger rewrites WordNet glosses into sense-tagged templates: every
// gloss token whose disambiguated sense has exactly that token as its lemma
// is replaced by a placeholder and linked to the sense identifier.
package tagger

import (
	"slices"
	"strings"

	"github.com/heartmarshall/lexcore/internal/domain"
	"github.com/heartmarshall/lexcore/internal/lexicon"
	"github.com/heartmarshall/lexcore/internal/tokenize"
	"github.com/heartmarshall/lexcore/internal/wsd"
)

// Tagger builds sense records for single synsets.
type Tagger struct {
	tok  tokenize.Tokenizer
	lesk *wsd.Lesk
}

// New creates a Tagger that tokenizes with tok and disambiguates against lookup.
func New(tok tokenize.Tokenizer, lookup wsd.SenseLookup) *Tagger {
	return &Tagger{tok: tok, lesk: wsd.NewLesk(lookup)}
}

// Tag returns the sense record of s. Synsets named by a multi-word lemma
// are recorded without substitutions.
func (t *Tagger) Tag(s *lexicon.Synset) domain.SenseRecord {
	tokens := t.tok.Tokenize(s.Definition)
	template := slices.Clone(tokens)

	rec := domain.SenseRecord{
		Lemma:  s.ID.Lemma(),
		Gloss:  s.Definition,
		Words:  []string{},
		Senses: []string{},
	}

	if !s.ID.IsMultiWord() {
		glossCtx := wsd.NewContext(tokens)
		for i, token := range tokens {
			sense := t.lesk.Disambiguate(glossCtx, token)
			if sense == nil || sense.ID.IsMultiWord() || sense.ID.Lemma() != token {
				continue
			}
			template[i] = domain.Placeholder
			rec.Words = append(rec.Words, token)
			rec.Senses = append(rec.Senses, string(sense.ID))
		}
	}

	rec.Template = strings.Join(template, " ")
	return rec
}
