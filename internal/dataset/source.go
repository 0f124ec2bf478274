package dataset

import "github.com/heartmarshall/lexcore/internal/domain"

// Source is a dictionary viewed as a definition graph.
type Source interface {
	// Names returns the defined words in ascending order.
	Names() []string
	// Definition returns the stored definition of word, or "" if undefined.
	Definition(word string) string
	// Edges calls fn once per (definer, defined) pair, self-loops excluded.
	Edges(fn func(from, to string))
	// Expand rewrites the definition of word, replacing every defined word
	// outside core by its own expanded definition.
	Expand(core domain.WordSet, word string) string
}

var (
	_ Source = (*Dictionary)(nil)
	_ Source = (*SenseDictionary)(nil)
)
