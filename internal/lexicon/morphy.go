package lexicon

import "strings"

// detachment is one inflectional suffix rule: a word ending in suffix may be
// an inflection of the word ending in ending.
type detachment struct {
	suffix string
	ending string
}

var detachments = map[string][]detachment{
	Noun: {
		{"s", ""}, {"ses", "s"}, {"ves", "f"}, {"xes", "x"}, {"zes", "z"},
		{"ches", "ch"}, {"shes", "sh"}, {"men", "man"}, {"ies", "y"},
	},
	Verb: {
		{"s", ""}, {"ies", "y"}, {"es", "e"}, {"es", ""},
		{"ed", "e"}, {"ed", ""}, {"ing", "e"}, {"ing", ""},
	},
	Adj: {
		{"er", ""}, {"est", ""}, {"er", "e"}, {"est", "e"},
	},
	Adv: nil,
}

// morphy returns the base forms of form that exist in the index for pos.
// Irregular forms are checked first. Otherwise the detachment rules are
// applied once (the form itself also counts), then repeatedly until a base
// form is found or no candidates remain.
func (l *Lexicon) morphy(form, pos string) []string {
	pos = indexPOS(pos)

	if lemmas, ok := l.exceptions[pos][form]; ok {
		return l.filterForms(append([]string{form}, lemmas...), pos)
	}

	forms := detach([]string{form}, pos)
	if result := l.filterForms(append([]string{form}, forms...), pos); len(result) > 0 {
		return result
	}
	for len(forms) > 0 {
		forms = detach(forms, pos)
		if result := l.filterForms(forms, pos); len(result) > 0 {
			return result
		}
	}
	return nil
}

func detach(forms []string, pos string) []string {
	var out []string
	for _, f := range forms {
		for _, d := range detachments[pos] {
			if strings.HasSuffix(f, d.suffix) {
				out = append(out, f[:len(f)-len(d.suffix)]+d.ending)
			}
		}
	}
	return out
}

// filterForms keeps the forms indexed under pos, without duplicates, in order.
func (l *Lexicon) filterForms(forms []string, pos string) []string {
	var result []string
	seen := make(map[string]bool, len(forms))
	for _, f := range forms {
		if seen[f] || len(l.index[f][pos]) == 0 {
			continue
		}
		seen[f] = true
		result = append(result, f)
	}
	return result
}

// Lemmatize returns the shortest base form of word for pos, or word itself
// when none is known.
func (l *Lexicon) Lemmatize(word, pos string) string {
	lemmas := l.morphy(word, pos)
	if len(lemmas) == 0 {
		return word
	}
	best := lemmas[0]
	for _, lm := range lemmas[1:] {
		if len(lm) < len(best) {
			best = lm
		}
	}
	return best
}
