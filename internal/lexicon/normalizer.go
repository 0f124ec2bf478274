package lexicon

import (
	"fmt"

	"github.com/kljensen/snowball/english"

	"github.com/heartmarshall/lexcore/internal/cleaner"
)

// Normalizer modes accepted by NewNormalizer.
const (
	ModeLemma = "lemma"
	ModeStem  = "stem"
)

// NounLemmatizer reduces tokens to their WordNet noun lemma.
type NounLemmatizer struct {
	lex *Lexicon
}

// NewNounLemmatizer creates a NounLemmatizer backed by lex.
func NewNounLemmatizer(lex *Lexicon) *NounLemmatizer {
	return &NounLemmatizer{lex: lex}
}

func (n *NounLemmatizer) Normalize(token string) string {
	return n.lex.Lemmatize(token, Noun)
}

// Stemmer reduces tokens with the Snowball English stemmer.
type Stemmer struct{}

func (Stemmer) Normalize(token string) string {
	return english.Stem(token, true)
}

// NewNormalizer returns the normalizer for mode. The lemma mode needs a
// loaded lexicon.
func NewNormalizer(mode string, lex *Lexicon) (cleaner.Normalizer, error) {
	switch mode {
	case ModeLemma:
		if lex == nil {
			return nil, fmt.Errorf("normalizer %q: lexicon required", mode)
		}
		return NewNounLemmatizer(lex), nil
	case ModeStem:
		return Stemmer{}, nil
	default:
		return nil, fmt.Errorf("unknown normalizer %q", mode)
	}
}
