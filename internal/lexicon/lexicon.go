// Package lexicon loads an Open English WordNet (OEWN 2025) JSON directory
// into an in-memory lexical knowledge base: synsets with WordNet-style sense
// identifiers, morphological lookup, and noun lemmatization.
//
// Expected directory structure (as distributed by https://github.com/globalwordnet/english-wordnet):
//
//	entries-a.json … entries-z.json   lemma entries keyed by word
//	noun.*.json, verb.*.json, …       synsets keyed by synset ID
package lexicon

import (
	"cmp"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/goccy/go-json"

	"github.com/heartmarshall/lexcore/internal/domain"
)

// Parts of speech. Adjective satellites share the adjective sense list.
const (
	Noun   = "n"
	Verb   = "v"
	Adj    = "a"
	AdjSat = "s"
	Adv    = "r"
)

// LookupOrder is the order in which Synsets searches the parts of speech.
var LookupOrder = []string{Noun, Verb, Adj, Adv}

// entryPOSOrder fixes the order sense lists are built in, so that an
// adjective's head senses precede its satellite senses.
var entryPOSOrder = []string{Noun, Verb, Adj, AdjSat, Adv}

// Synset is one WordNet concept.
type Synset struct {
	ID         domain.SenseID
	Key        string // OEWN synset key, e.g. "02084071-n"
	POS        string
	Members    []string
	Definition string
}

// Stats holds loader statistics for logging.
type Stats struct {
	Entries  int
	Synsets  int
	Senses   int
	Forms    int
	Dangling int // senses pointing at an unknown synset
	Orphans  int // synsets missing from their head lemma's sense list
}

// Lexicon is a read-only WordNet view. Safe for concurrent reads.
type Lexicon struct {
	synsets    []*Synset
	byID       map[domain.SenseID]*Synset
	index      map[string]map[string][]*Synset // lemma -> index POS -> senses in order
	exceptions map[string]map[string][]string  // index POS -> irregular form -> lemmas
	stats      Stats
}

// Load reads an OEWN JSON directory.
func Load(dirPath string) (*Lexicon, error) {
	info, err := os.Stat(dirPath)
	if err != nil {
		return nil, fmt.Errorf("open directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dirPath)
	}

	lex := &Lexicon{
		byID:       make(map[domain.SenseID]*Synset),
		index:      make(map[string]map[string][]*Synset),
		exceptions: make(map[string]map[string][]string),
	}

	// Step 1: synsets by OEWN key.
	synsetFiles, err := globSynsetFiles(dirPath)
	if err != nil {
		return nil, fmt.Errorf("glob synset files: %w", err)
	}
	if len(synsetFiles) == 0 {
		return nil, fmt.Errorf("%s: no synset files", dirPath)
	}

	byKey := make(map[string]*Synset)
	for _, path := range synsetFiles {
		synsets, err := readSynsetFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", filepath.Base(path), err)
		}
		for key, raw := range synsets {
			if len(raw.Members) == 0 {
				continue
			}
			byKey[key] = &Synset{
				Key:        key,
				POS:        synsetPOS(key, raw.PartOfSpeech),
				Members:    raw.Members,
				Definition: strings.Join(raw.Definition, "; "),
			}
		}
	}

	// Step 2: per-lemma sense lists and irregular forms.
	entryFiles, err := filepath.Glob(filepath.Join(dirPath, "entries-*.json"))
	if err != nil {
		return nil, fmt.Errorf("glob entry files: %w", err)
	}
	for _, path := range entryFiles {
		entries, err := readEntryFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", filepath.Base(path), err)
		}
		if err := lex.addEntries(entries, byKey); err != nil {
			return nil, fmt.Errorf("read %s: %w", filepath.Base(path), err)
		}
	}

	// Step 3: identifiers.
	keys := make([]string, 0, len(byKey))
	for k := range byKey {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		s := byKey[key]
		head := LemmaKey(s.Members[0])
		ip := indexPOS(s.POS)
		senses := lex.senses(head, ip)
		pos := slices.Index(senses, s)
		if pos < 0 {
			lex.stats.Orphans++
			lex.index[head][ip] = append(senses, s)
			pos = len(senses)
		}
		s.ID = domain.SenseID(fmt.Sprintf("%s.%s.%02d", head, s.POS, pos+1))
		lex.byID[s.ID] = s
		lex.synsets = append(lex.synsets, s)
	}

	slices.SortFunc(lex.synsets, func(a, b *Synset) int {
		return cmp.Compare(a.ID, b.ID)
	})
	lex.stats.Synsets = len(lex.synsets)

	return lex, nil
}

func (l *Lexicon) addEntries(entries oewnEntryFile, byKey map[string]*Synset) error {
	words := make([]string, 0, len(entries))
	for w := range entries {
		words = append(words, w)
	}
	sort.Strings(words)

	for _, word := range words {
		l.stats.Entries++
		lemma := LemmaKey(word)
		posMap := entries[word]

		for _, p := range entryPOSOrder {
			raw, ok := posMap[p]
			if !ok {
				continue
			}
			var posEntry oewnPOSEntry
			if err := json.Unmarshal(raw, &posEntry); err != nil {
				return fmt.Errorf("entry %q (%s): %w", word, p, err)
			}

			ip := indexPOS(p)
			for _, sense := range posEntry.Sense {
				s, ok := byKey[sense.Synset]
				if !ok {
					l.stats.Dangling++
					continue
				}
				senses := l.senses(lemma, ip)
				if !slices.Contains(senses, s) {
					l.index[lemma][ip] = append(senses, s)
					l.stats.Senses++
				}
			}
			for _, form := range posEntry.Form {
				l.addException(ip, LemmaKey(form), lemma)
			}
		}
	}
	return nil
}

// senses returns the sense list of lemma for an index POS, creating the
// lemma's map on first use.
func (l *Lexicon) senses(lemma, ip string) []*Synset {
	m, ok := l.index[lemma]
	if !ok {
		m = make(map[string][]*Synset)
		l.index[lemma] = m
	}
	return m[ip]
}

func (l *Lexicon) addException(ip, form, lemma string) {
	if form == lemma {
		return
	}
	m, ok := l.exceptions[ip]
	if !ok {
		m = make(map[string][]string)
		l.exceptions[ip] = m
	}
	if !slices.Contains(m[form], lemma) {
		m[form] = append(m[form], lemma)
		l.stats.Forms++
	}
}

// AllSynsets returns every synset in identifier order.
func (l *Lexicon) AllSynsets() []*Synset {
	return l.synsets
}

// Synset looks a synset up by its identifier.
func (l *Lexicon) Synset(id domain.SenseID) (*Synset, bool) {
	s, ok := l.byID[id]
	return s, ok
}

// Synsets returns the candidate synsets of word: every base form morphy
// finds for noun, verb, adjective, and adverb, in that order, each with its
// senses in sense-number order.
func (l *Lexicon) Synsets(word string) []*Synset {
	w := LemmaKey(word)
	if w == "" {
		return nil
	}

	var result []*Synset
	seen := make(map[*Synset]bool)
	for _, p := range LookupOrder {
		for _, form := range l.morphy(w, p) {
			for _, s := range l.index[form][p] {
				if seen[s] {
					continue
				}
				seen[s] = true
				result = append(result, s)
			}
		}
	}
	return result
}

// Len returns the number of synsets.
func (l *Lexicon) Len() int { return len(l.synsets) }

// Stats returns loader statistics.
func (l *Lexicon) Stats() Stats { return l.stats }

// LemmaKey converts a written form to its index key: lowercase, spaces as
// underscores.
func LemmaKey(word string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(word)), " ", "_")
}

// indexPOS maps satellites onto the adjective index.
func indexPOS(pos string) string {
	if pos == AdjSat {
		return Adj
	}
	return pos
}

// synsetPOS takes partOfSpeech when present and falls back to the key suffix.
func synsetPOS(key, partOfSpeech string) string {
	if partOfSpeech != "" {
		return partOfSpeech
	}
	if i := strings.LastIndexByte(key, '-'); i >= 0 && i < len(key)-1 {
		return key[i+1:]
	}
	return Noun
}
