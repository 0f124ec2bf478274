package tagger

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/heartmarshall/lexcore/internal/config"
	"github.com/heartmarshall/lexcore/internal/dataset"
	"github.com/heartmarshall/lexcore/internal/domain"
	"github.com/heartmarshall/lexcore/internal/lexicon"
	"github.com/heartmarshall/lexcore/internal/tokenize"
)

// Lexicon is the part of the knowledge base the tagging run needs.
type Lexicon interface {
	AllSynsets() []*lexicon.Synset
	Synsets(word string) []*lexicon.Synset
}

// Result holds tagging statistics.
type Result struct {
	Synsets     int // records written
	Tagged      int // records with at least one substitution
	Substituted int // substituted tokens over all records
	MultiWord   int // records named by a multi-word lemma
	Duration    time.Duration
}

// Run tags every selected synset of lex and writes the mapping
// identifier -> record to cfg.Output in one piece.
func Run(ctx context.Context, cfg config.TaggerConfig, lex Lexicon, tok tokenize.Tokenizer, log *slog.Logger) (Result, error) {
	var result Result
	start := time.Now()

	synsets := selectSynsets(lex.AllSynsets(), cfg.POS, cfg.Limit)
	log.Info("starting tagging",
		slog.Int("synsets", len(synsets)),
		slog.String("output", cfg.Output),
	)

	tagger := New(tok, lex)
	records := make(map[domain.SenseID]domain.SenseRecord, len(synsets))

	for i, s := range synsets {
		if err := ctx.Err(); err != nil {
			return result, fmt.Errorf("tagging interrupted after %d synsets: %w", i, err)
		}

		rec := tagger.Tag(s)
		records[s.ID] = rec

		result.Synsets++
		result.Substituted += len(rec.Words)
		if len(rec.Words) > 0 {
			result.Tagged++
		}
		if s.ID.IsMultiWord() {
			result.MultiWord++
		}

		if cfg.ProgressEvery > 0 && (i+1)%cfg.ProgressEvery == 0 {
			log.Info("tagging progress",
				slog.Int("processed", i+1),
				slog.Int("total", len(synsets)),
			)
		}
	}

	if err := dataset.WriteSenses(cfg.Output, records); err != nil {
		return result, fmt.Errorf("write %s: %w", cfg.Output, err)
	}

	result.Duration = time.Since(start)
	log.Info("tagging completed",
		slog.Int("synsets", result.Synsets),
		slog.Int("tagged", result.Tagged),
		slog.Int("substituted", result.Substituted),
		slog.Int("multi_word", result.MultiWord),
		slog.Duration("duration", result.Duration),
	)
	return result, nil
}

// selectSynsets keeps the synsets whose POS is listed (all when pos is
// empty), capped at limit when limit > 0.
func selectSynsets(all []*lexicon.Synset, pos []string, limit int) []*lexicon.Synset {
	selected := all
	if len(pos) > 0 {
		selected = make([]*lexicon.Synset, 0, len(all))
		for _, s := range all {
			if slices.Contains(pos, s.POS) {
				selected = append(selected, s)
			}
		}
	}
	if limit > 0 && len(selected) > limit {
		selected = selected[:limit]
	}
	return selected
}
