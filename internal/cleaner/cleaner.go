// Package cleaner turns the raw per-letter dictionary files (dict/<A-Z>.csv)
// into cleaned headword -> definition-token JSON files (cleaned/<A-Z>.json).
package cleaner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/heartmarshall/lexcore/internal/config"
	"github.com/heartmarshall/lexcore/internal/dataset"
	"github.com/heartmarshall/lexcore/internal/domain"
)

// AllLetters is the canonical processing order.
var AllLetters = []string{
	"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L", "M",
	"N", "O", "P", "Q", "R", "S", "T", "U", "V", "W", "X", "Y", "Z",
}

// LetterResult holds the outcome of one letter file.
type LetterResult struct {
	Letter     string
	Rows       int
	Entries    int
	Duplicates int
	Duration   time.Duration
	Err        error
}

// Result holds the outcome of a cleaning run, one LetterResult per letter
// attempted, in processing order.
type Result struct {
	Letters []LetterResult
}

// HasErrors returns true if any letter failed.
func (r Result) HasErrors() bool {
	return r.Errors() > 0
}

// Errors returns the number of failed letters.
func (r Result) Errors() int {
	n := 0
	for _, lr := range r.Letters {
		if lr.Err != nil {
			n++
		}
	}
	return n
}

// Entries returns the number of entries written over all letters.
func (r Result) Entries() int {
	n := 0
	for _, lr := range r.Letters {
		if lr.Err == nil {
			n += lr.Entries
		}
	}
	return n
}

// Cleaner runs the dictionary cleaning job.
type Cleaner struct {
	log  *slog.Logger
	cfg  config.CleanerConfig
	norm Normalizer
}

// New creates a Cleaner. norm is used only when cfg.Lemmatize is set and
// may be nil otherwise.
func New(log *slog.Logger, cfg config.CleanerConfig, norm Normalizer) (*Cleaner, error) {
	if cfg.Lemmatize && norm == nil {
		return nil, fmt.Errorf("lemmatize enabled without a normalizer")
	}
	if !cfg.Lemmatize {
		norm = nil
	}
	return &Cleaner{log: log, cfg: cfg, norm: norm}, nil
}

// Run cleans every selected letter in A-Z order.
//
// A missing input file stops the run with ErrMissingInput. A letter with
// a malformed row is not written; the run stops with that error unless
// ContinueOnError is set, in which case the failure is only recorded in the
// result. Letters written before a stop keep their output.
func (c *Cleaner) Run(ctx context.Context) (Result, error) {
	var result Result

	if err := os.MkdirAll(c.cfg.OutputDir, 0o755); err != nil {
		return result, fmt.Errorf("create output dir: %w", err)
	}

	letters := selectLetters(c.cfg.Letters)
	for _, letter := range letters {
		if err := ctx.Err(); err != nil {
			return result, fmt.Errorf("cleaning interrupted before %s: %w", letter, err)
		}

		c.log.Info("starting letter", slog.String("letter", letter))
		lr := c.CleanLetter(letter)
		result.Letters = append(result.Letters, lr)

		if lr.Err != nil {
			c.log.Warn("letter failed",
				slog.String("letter", letter),
				slog.String("error", lr.Err.Error()),
				slog.Duration("duration", lr.Duration),
			)
			if errors.Is(lr.Err, domain.ErrMissingInput) || !c.cfg.ContinueOnError {
				return result, lr.Err
			}
			continue
		}

		c.log.Info("letter completed",
			slog.String("letter", letter),
			slog.Int("rows", lr.Rows),
			slog.Int("entries", lr.Entries),
			slog.Int("duplicates", lr.Duplicates),
			slog.Duration("duration", lr.Duration),
		)
	}

	c.log.Info("cleaning completed",
		slog.Int("letters", len(result.Letters)),
		slog.Int("entries", result.Entries()),
		slog.Int("errors", result.Errors()),
	)
	return result, nil
}

// CleanLetter reads <input_dir>/<letter>.csv and, when every row parses,
// writes <output_dir>/<letter>.json.
func (c *Cleaner) CleanLetter(letter string) LetterResult {
	start := time.Now()
	lr := c.cleanLetter(letter)
	lr.Letter = letter
	lr.Duration = time.Since(start)
	return lr
}

func (c *Cleaner) cleanLetter(letter string) LetterResult {
	inPath := filepath.Join(c.cfg.InputDir, letter+".csv")
	f, err := os.Open(inPath)
	if err != nil {
		return LetterResult{Err: fmt.Errorf("%w: %s: %v", domain.ErrMissingInput, inPath, err)}
	}
	defer f.Close()

	rows, err := ReadRows(f)
	if err != nil {
		return LetterResult{Rows: len(rows), Err: fmt.Errorf("%s: %w", inPath, err)}
	}

	var lr LetterResult
	lr.Rows = len(rows)
	bucket := make(domain.Bucket, len(rows))

	for _, row := range rows {
		entry, err := ParseEntry(row.Raw, c.norm)
		if err != nil {
			lr.Err = &domain.EntryError{Letter: letter, Line: row.Line, Raw: row.Raw, Err: err}
			return lr
		}
		if bucket.Put(entry) {
			lr.Duplicates++
			c.log.Debug("duplicate headword",
				slog.String("letter", letter),
				slog.String("name", entry.Name),
				slog.Int("line", row.Line),
			)
		}
	}
	lr.Entries = len(bucket)

	outPath := filepath.Join(c.cfg.OutputDir, letter+".json")
	if err := dataset.WriteJSON(outPath, bucket); err != nil {
		lr.Err = fmt.Errorf("write %s: %w", outPath, err)
	}
	return lr
}

// selectLetters keeps AllLetters order; an empty filter selects every letter.
func selectLetters(filter []string) []string {
	if len(filter) == 0 {
		return AllLetters
	}
	var letters []string
	for _, l := range AllLetters {
		if slices.Contains(filter, l) {
			letters = append(letters, l)
		}
	}
	return letters
}
