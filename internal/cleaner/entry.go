package cleaner

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/heartmarshall/lexcore/internal/domain"
)

// Normalizer maps a definition token to its normalized form.
type Normalizer interface {
	Normalize(token string) string
}

// Row is the first field of one delimited-file record and the line it
// starts on.
type Row struct {
	Line int
	Raw  string
}

var parenRemover = strings.NewReplacer("(", "", ")", "")

// ParseEntry turns one raw row into a cleaned entry:
//  1. denylisted characters are removed and the text lowercased;
//  2. the text is split at its first whitespace run into headword and definition;
//  3. the definition loses everything up to and including its first ')'
//     and any remaining parentheses;
//  4. the definition is split into tokens, each normalized when norm is non-nil.
//
// Only leading whitespace is trimmed, so a headword followed by an empty or
// fully denylisted definition yields an entry with no tokens. Text without
// whitespace after the headword returns ErrMalformedEntry.
func ParseEntry(raw string, norm Normalizer) (domain.Entry, error) {
	text := strings.TrimLeftFunc(domain.CleanText(raw), unicode.IsSpace)

	i := strings.IndexFunc(text, unicode.IsSpace)
	if i < 0 {
		return domain.Entry{}, domain.ErrMalformedEntry
	}
	name := text[:i]
	defn := strings.TrimLeftFunc(text[i:], unicode.IsSpace)

	if j := strings.IndexByte(defn, ')'); j >= 0 {
		defn = defn[j+1:]
	}
	defn = parenRemover.Replace(defn)

	tokens := strings.Fields(defn)
	if norm != nil {
		for k, tok := range tokens {
			tokens[k] = norm.Normalize(tok)
		}
	}
	if tokens == nil {
		tokens = []string{}
	}

	return domain.Entry{Name: name, Tokens: tokens}, nil
}

// ReadRows reads the first field of every record. Quoted fields, stray
// quotes, and records of any width are accepted; blank lines are skipped.
func ReadRows(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1
	reader.ReuseRecord = true

	var rows []Row
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return rows, nil
		}
		if err != nil {
			return rows, fmt.Errorf("read csv: %w", err)
		}
		if len(record) == 0 {
			continue
		}
		line, _ := reader.FieldPos(0)
		rows = append(rows, Row{Line: line, Raw: record[0]})
	}
}
