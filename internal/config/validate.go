package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/heartmarshall/lexcore/internal/domain"
)

var (
	logLevels     = []string{"debug", "info", "warn", "error"}
	logFormats    = []string{"json", "text"}
	normalizers   = []string{"lemma", "stem"}
	tokenizers    = []string{"treebank", "whitespace"}
	partsOfSpeech = []string{"n", "v", "a", "r", "s"}
	coreSources   = []string{"cleaned", "senses"}
)

// Validate performs rule validation on the loaded configuration and
// canonicalizes list values (letters upper-cased, POS lower-cased).
// Load calls it automatically.
func (c *Config) Validate() error {
	var errs []domain.FieldError
	add := func(field, format string, args ...any) {
		errs = append(errs, domain.FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	if !slices.Contains(logLevels, strings.ToLower(c.Log.Level)) {
		add("log.level", "unknown level %q", c.Log.Level)
	}
	if !slices.Contains(logFormats, strings.ToLower(c.Log.Format)) {
		add("log.format", "unknown format %q", c.Log.Format)
	}

	if c.Cleaner.InputDir == "" {
		add("cleaner.input_dir", "required")
	}
	if c.Cleaner.OutputDir == "" {
		add("cleaner.output_dir", "required")
	}
	for i, l := range c.Cleaner.Letters {
		l = strings.ToUpper(strings.TrimSpace(l))
		if len(l) != 1 || l[0] < 'A' || l[0] > 'Z' {
			add("cleaner.letters", "%q is not a letter A-Z", c.Cleaner.Letters[i])
			continue
		}
		c.Cleaner.Letters[i] = l
	}
	if !slices.Contains(normalizers, c.Cleaner.Normalizer) {
		add("cleaner.normalizer", "unknown normalizer %q", c.Cleaner.Normalizer)
	}
	if c.Cleaner.Lemmatize && c.Cleaner.Normalizer == "lemma" && c.Cleaner.WordNetDir == "" {
		add("cleaner.wordnet_dir", "required when lemmatizing with the lemma normalizer")
	}

	if c.Tagger.WordNetDir == "" {
		add("tagger.wordnet_dir", "required")
	}
	if c.Tagger.Output == "" {
		add("tagger.output", "required")
	}
	if !slices.Contains(tokenizers, c.Tagger.Tokenizer) {
		add("tagger.tokenizer", "unknown tokenizer %q", c.Tagger.Tokenizer)
	}
	for i, p := range c.Tagger.POS {
		p = strings.ToLower(strings.TrimSpace(p))
		if !slices.Contains(partsOfSpeech, p) {
			add("tagger.pos", "unknown part of speech %q", c.Tagger.POS[i])
			continue
		}
		c.Tagger.POS[i] = p
	}
	if c.Tagger.Limit < 0 {
		add("tagger.limit", "must be >= 0 (got %d)", c.Tagger.Limit)
	}
	if c.Tagger.ProgressEvery < 0 {
		add("tagger.progress_every", "must be >= 0 (got %d)", c.Tagger.ProgressEvery)
	}

	if !slices.Contains(coreSources, c.Core.Source) {
		add("core.source", "unknown source %q", c.Core.Source)
	}
	if c.Core.WorkDir == "" {
		add("core.work_dir", "required")
	}
	if c.Core.AnnealT0 <= 0 {
		add("core.anneal_t0", "must be > 0 (got %v)", c.Core.AnnealT0)
	}
	if c.Core.AnnealCooling <= 0 {
		add("core.anneal_cooling", "must be > 0 (got %v)", c.Core.AnnealCooling)
	}
	if c.Core.AnnealBias < 1 {
		add("core.anneal_bias", "must be >= 1 (got %d)", c.Core.AnnealBias)
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
