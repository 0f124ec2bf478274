package domain

import "sort"

// WordSet is a set of words, used for core and free word lists.
type WordSet map[string]struct{}

// NewWordSet builds a set from words.
func NewWordSet(words ...string) WordSet {
	s := make(WordSet, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}

// Has reports whether w is in the set. A nil set is empty.
func (s WordSet) Has(w string) bool {
	_, ok := s[w]
	return ok
}

func (s WordSet) Add(w string) { s[w] = struct{}{} }

func (s WordSet) Remove(w string) { delete(s, w) }

// Sorted returns the members in ascending order.
func (s WordSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for w := range s {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}
