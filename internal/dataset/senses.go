package dataset

import (
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"github.com/heartmarshall/lexcore/internal/domain"
)

// SenseDictionary is the tagged WordNet dataset: identifier -> sense record,
// with each lemma's senses in identifier order.
type SenseDictionary struct {
	byID    map[domain.SenseID]domain.SenseRecord
	ids     []domain.SenseID
	byLemma map[string][]domain.SenseID
	names   []string
}

// NewSenseDictionary indexes records. Records with an empty lemma are dropped.
func NewSenseDictionary(records map[domain.SenseID]domain.SenseRecord) *SenseDictionary {
	s := &SenseDictionary{
		byID:    make(map[domain.SenseID]domain.SenseRecord, len(records)),
		byLemma: make(map[string][]domain.SenseID),
	}
	for id, rec := range records {
		if rec.Lemma == "" {
			continue
		}
		s.byID[id] = rec
		s.ids = append(s.ids, id)
	}
	sort.Slice(s.ids, func(i, j int) bool { return s.ids[i] < s.ids[j] })

	for _, id := range s.ids {
		lemma := s.byID[id].Lemma
		if _, ok := s.byLemma[lemma]; !ok {
			s.names = append(s.names, lemma)
		}
		s.byLemma[lemma] = append(s.byLemma[lemma], id)
	}
	sort.Strings(s.names)
	return s
}

// LoadSenses reads a wn.json mapping.
func LoadSenses(path string, log *slog.Logger) (*SenseDictionary, error) {
	var records map[domain.SenseID]domain.SenseRecord
	if err := ReadJSON(path, &records); err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	s := NewSenseDictionary(records)
	log.Info("senses loaded",
		slog.String("path", path),
		slog.Int("senses", len(s.ids)),
		slog.Int("lemmas", len(s.names)),
	)
	if problems := s.Check(); len(problems) > 0 {
		log.Warn("inconsistent sense records",
			slog.Int("count", len(problems)),
			slog.String("first", problems[0].Error()),
		)
	}
	return s, nil
}

// WriteSenses writes records to path as a wn.json mapping of identifier to
// five-element array. Glosses are written as plain strings so that they are
// not HTML-escaped.
func WriteSenses(path string, records map[domain.SenseID]domain.SenseRecord) error {
	out := make(map[domain.SenseID][]any, len(records))
	for id, rec := range records {
		out[id] = rec.Values()
	}
	return WriteJSON(path, out)
}

// Check validates every record and reports references to identifiers that
// are not in the dictionary. Expansion keeps such words as they are.
func (s *SenseDictionary) Check() []error {
	var problems []error
	for _, id := range s.ids {
		rec := s.byID[id]
		if err := rec.Validate(); err != nil {
			problems = append(problems, fmt.Errorf("%s: %w", id, err))
		}
		for _, ref := range rec.Senses {
			if _, ok := s.byID[domain.SenseID(ref)]; !ok {
				problems = append(problems, fmt.Errorf("%s: %w %q", id, domain.ErrUnknownSense, ref))
			}
		}
	}
	return problems
}

// Len returns the number of senses.
func (s *SenseDictionary) Len() int { return len(s.ids) }

// Record returns the record stored under id.
func (s *SenseDictionary) Record(id domain.SenseID) (domain.SenseRecord, bool) {
	rec, ok := s.byID[id]
	return rec, ok
}

// Senses returns the identifiers of lemma's senses in order.
func (s *SenseDictionary) Senses(lemma string) []domain.SenseID { return s.byLemma[lemma] }

func (s *SenseDictionary) Names() []string { return s.names }

// Definition numbers the glosses of word's senses, one per line.
func (s *SenseDictionary) Definition(word string) string {
	var b strings.Builder
	for i, id := range s.byLemma[word] {
		writeNumbered(&b, i, s.byID[id].Gloss)
	}
	return b.String()
}

func (s *SenseDictionary) Edges(fn func(from, to string)) {
	for _, id := range s.ids {
		rec := s.byID[id]
		for _, w := range rec.Words {
			if w != rec.Lemma {
				fn(w, rec.Lemma)
			}
		}
	}
}

// Expand numbers the expanded senses of word. In each template, a
// substituted word is replaced by the expansion of its resolved sense unless
// it is word itself, a core word, a sense already on the expansion path, or
// a sense with no record.
func (s *SenseDictionary) Expand(core domain.WordSet, word string) string {
	var b strings.Builder
	for i, id := range s.byLemma[word] {
		onPath := map[domain.SenseID]bool{id: true}
		writeNumbered(&b, i, s.fill(core, word, s.byID[id], onPath))
	}
	return b.String()
}

func (s *SenseDictionary) fill(core domain.WordSet, owner string, rec domain.SenseRecord, onPath map[domain.SenseID]bool) string {
	replacements := make([]string, len(rec.Words))
	for i, w := range rec.Words {
		replacements[i] = s.expandSense(core, owner, w, domain.SenseID(rec.Senses[i]), onPath)
	}
	return rec.Fill(replacements)
}

func (s *SenseDictionary) expandSense(core domain.WordSet, owner, w string, id domain.SenseID, onPath map[domain.SenseID]bool) string {
	if w == owner || core.Has(w) || onPath[id] {
		return w
	}
	rec, ok := s.byID[id]
	if !ok {
		return w
	}

	onPath[id] = true
	out := s.fill(core, w, rec, onPath)
	delete(onPath, id)

	if out == "" {
		return w
	}
	return out
}

func writeNumbered(b *strings.Builder, i int, text string) {
	b.WriteString(strconv.Itoa(i + 1))
	b.WriteString(". ")
	b.WriteString(text)
	b.WriteByte('\n')
}
