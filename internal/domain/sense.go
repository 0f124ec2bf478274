package domain

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"
)

// Placeholder replaces a disambiguated token inside a templated gloss.
const Placeholder = "%s"

// SenseID identifies one WordNet sense as lemma.pos.NN (e.g. "dog.n.01").
type SenseID string

// Lemma returns everything before the first dot. Lemmas may contain dots
// themselves ("st._louis.n.01"), in which case only the part before the
// first one is returned ("st").
func (id SenseID) Lemma() string {
	s := string(id)
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return s[:i]
	}
	return s
}

// IsMultiWord reports whether the lemma is a collocation such as "hot_dog".
func (id SenseID) IsMultiWord() bool {
	return strings.Contains(id.Lemma(), "_")
}

// SenseRecord is the tagged form of one sense. It serializes as the
// five-element array [lemma, gloss, template, words, senses].
type SenseRecord struct {
	Lemma    string
	Gloss    string
	Template string
	Words    []string
	Senses   []string
}

// Validate checks the parallel-list invariant.
func (r SenseRecord) Validate() error {
	if len(r.Words) != len(r.Senses) {
		return fmt.Errorf("%w: %d words vs %d senses", ErrInvalidRecord, len(r.Words), len(r.Senses))
	}
	if n := strings.Count(r.Template, Placeholder); n != len(r.Words) {
		return fmt.Errorf("%w: %d placeholders vs %d words", ErrInvalidRecord, n, len(r.Words))
	}
	return nil
}

// Fill substitutes replacements into the template placeholders in order.
// Placeholders without a replacement are left as they are.
func (r SenseRecord) Fill(replacements []string) string {
	out := r.Template
	for _, s := range replacements {
		out = strings.Replace(out, Placeholder, s, 1)
	}
	return out
}

// Values returns the five array elements with nil lists replaced by empty
// ones.
func (r SenseRecord) Values() []any {
	words, senses := r.Words, r.Senses
	if words == nil {
		words = []string{}
	}
	if senses == nil {
		senses = []string{}
	}
	return []any{r.Lemma, r.Gloss, r.Template, words, senses}
}

// MarshalJSON implements json.Marshaler. Encoders may HTML-escape the
// returned bytes; write Values when the text must stay literal.
func (r SenseRecord) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Values())
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *SenseRecord) UnmarshalJSON(data []byte) error {
	var parts []json.RawMessage
	if err := json.Unmarshal(data, &parts); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}
	if len(parts) != 5 {
		return fmt.Errorf("%w: want 5 elements, got %d", ErrInvalidRecord, len(parts))
	}

	var rec SenseRecord
	targets := []any{&rec.Lemma, &rec.Gloss, &rec.Template, &rec.Words, &rec.Senses}
	for i, target := range targets {
		if err := json.Unmarshal(parts[i], target); err != nil {
			return fmt.Errorf("%w: element %d: %v", ErrInvalidRecord, i, err)
		}
	}
	if len(rec.Words) != len(rec.Senses) {
		return fmt.Errorf("%w: %d words vs %d senses", ErrInvalidRecord, len(rec.Words), len(rec.Senses))
	}

	*r = rec
	return nil
}
