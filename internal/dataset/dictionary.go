package dataset

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"

	"github.com/heartmarshall/lexcore/internal/domain"
)

var letters = []string{
	"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L", "M",
	"N", "O", "P", "Q", "R", "S", "T", "U", "V", "W", "X", "Y", "Z",
}

// Dictionary is the cleaned dictionary: headword -> definition tokens.
type Dictionary struct {
	defs  map[string][]string
	names []string
}

// NewDictionary wraps an in-memory bucket.
func NewDictionary(defs domain.Bucket) *Dictionary {
	d := &Dictionary{defs: make(map[string][]string, len(defs))}
	for name, tokens := range defs {
		if name == "" {
			continue
		}
		d.defs[name] = tokens
	}
	d.names = make([]string, 0, len(d.defs))
	for name := range d.defs {
		d.names = append(d.names, name)
	}
	sort.Strings(d.names)
	return d
}

// LoadDictionary reads every <dir>/<A-Z>.json. Missing letter files are
// skipped with a warning.
func LoadDictionary(dir string, log *slog.Logger) (*Dictionary, error) {
	all := make(domain.Bucket)
	for _, letter := range letters {
		path := filepath.Join(dir, letter+".json")

		var bucket domain.Bucket
		if err := ReadJSON(path, &bucket); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				log.Warn("letter file missing", slog.String("path", path))
				continue
			}
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
		for name, tokens := range bucket {
			all[name] = tokens
		}
	}

	d := NewDictionary(all)
	log.Info("dictionary loaded", slog.String("dir", dir), slog.Int("entries", d.Len()))
	return d, nil
}

// Len returns the number of defined words.
func (d *Dictionary) Len() int { return len(d.defs) }

func (d *Dictionary) Names() []string { return d.names }

// Tokens returns the definition tokens of word.
func (d *Dictionary) Tokens(word string) []string { return d.defs[word] }

func (d *Dictionary) Definition(word string) string {
	return strings.Join(d.defs[word], " ")
}

func (d *Dictionary) Edges(fn func(from, to string)) {
	for _, name := range d.names {
		for _, tok := range d.defs[name] {
			if tok != name {
				fn(tok, name)
			}
		}
	}
}

// Expand keeps core words, undefined words, and words already being
// expanded on the current path; every other word is replaced by its own
// expansion.
func (d *Dictionary) Expand(core domain.WordSet, word string) string {
	tokens, ok := d.defs[word]
	if !ok {
		return ""
	}
	onPath := map[string]bool{word: true}
	return strings.Join(d.expandTokens(core, tokens, onPath), " ")
}

func (d *Dictionary) expandTokens(core domain.WordSet, tokens []string, onPath map[string]bool) []string {
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		def := d.defs[tok]
		if len(def) == 0 || core.Has(tok) || onPath[tok] {
			out = append(out, tok)
			continue
		}
		onPath[tok] = true
		out = append(out, d.expandTokens(core, def, onPath)...)
		delete(onPath, tok)
	}
	return out
}
