// Package tokenize splits glosses into word tokens.
package tokenize

import (
	"fmt"
	"strings"

	"github.com/jdkato/prose/tokenize"
)

// Tokenizer names accepted by New.
const (
	NameTreebank   = "treebank"
	NameWhitespace = "whitespace"
)

// Tokenizer splits text into word tokens.
type Tokenizer interface {
	Tokenize(text string) []string
}

// Treebank splits text into sentences with the punkt model and each
// sentence into Penn Treebank word tokens. It is safe for concurrent use.
type Treebank struct {
	sentences *tokenize.PunktSentenceTokenizer
	words     *tokenize.TreebankWordTokenizer
}

// NewTreebank loads the punkt model once; reuse the returned tokenizer.
func NewTreebank() *Treebank {
	return &Treebank{
		sentences: tokenize.NewPunktSentenceTokenizer(),
		words:     tokenize.NewTreebankWordTokenizer(),
	}
}

func (t *Treebank) Tokenize(text string) []string {
	var tokens []string
	for _, sentence := range t.sentences.Tokenize(text) {
		for _, w := range t.words.Tokenize(sentence) {
			if w = strings.TrimSpace(w); w != "" {
				tokens = append(tokens, w)
			}
		}
	}
	return tokens
}

// Whitespace splits text on runs of Unicode whitespace.
type Whitespace struct{}

func (Whitespace) Tokenize(text string) []string {
	return strings.Fields(text)
}

// New returns the tokenizer registered under name.
func New(name string) (Tokenizer, error) {
	switch name {
	case NameTreebank:
		return NewTreebank(), nil
	case NameWhitespace:
		return Whitespace{}, nil
	default:
		return nil, fmt.Errorf("unknown tokenizer %q", name)
	}
}
