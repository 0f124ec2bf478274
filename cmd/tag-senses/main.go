// Command tag-senses disambiguates every WordNet gloss against WordNet
// itself and writes the tagged senses to wordnet/wn.json.
//
// Flags override the matching tagger settings of the config file:
//
//	--config     path to the YAML config file
//	--wordnet    OEWN JSON directory
//	--output     output file
//	--tokenizer  treebank or whitespace
//	--pos        comma-separated parts of speech to tag (default: all)
//	--limit      tag at most this many synsets (0 = all)
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/heartmarshall/lexcore/internal/app"
	"github.com/heartmarshall/lexcore/internal/config"
	"github.com/heartmarshall/lexcore/internal/lexicon"
	"github.com/heartmarshall/lexcore/internal/tagger"
	"github.com/heartmarshall/lexcore/internal/tokenize"
)

func main() {
	configPath := pflag.String("config", "", "path to YAML config file")
	wordnet := pflag.String("wordnet", "", "OEWN JSON directory")
	output := pflag.StringP("output", "o", "", "output JSON file")
	tokenizer := pflag.String("tokenizer", "", "gloss tokenizer: treebank or whitespace")
	pos := pflag.StringSlice("pos", nil, "comma-separated parts of speech (n,v,a,s,r)")
	limit := pflag.Int("limit", 0, "tag at most this many synsets (0 = all)")
	pflag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctx, rt, err := app.Bootstrap(ctx, "tag-senses", *configPath, func(cfg *config.Config) {
		t := &cfg.Tagger
		if pflag.CommandLine.Changed("wordnet") {
			t.WordNetDir = *wordnet
		}
		if pflag.CommandLine.Changed("output") {
			t.Output = *output
		}
		if pflag.CommandLine.Changed("tokenizer") {
			t.Tokenizer = *tokenizer
		}
		if pflag.CommandLine.Changed("pos") {
			t.POS = *pos
		}
		if pflag.CommandLine.Changed("limit") {
			t.Limit = *limit
		}
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "tag-senses: %v\n", err)
		os.Exit(1)
	}
	logger := rt.Logger
	cfg := rt.Config.Tagger

	tok, err := tokenize.New(cfg.Tokenizer)
	if err != nil {
		logger.Error("create tokenizer", slog.String("error", err.Error()))
		os.Exit(1)
	}

	lex, err := lexicon.Load(cfg.WordNetDir)
	if err != nil {
		logger.Error("load wordnet", slog.String("error", err.Error()))
		os.Exit(1)
	}
	st := lex.Stats()
	logger.Info("wordnet loaded",
		slog.String("dir", cfg.WordNetDir),
		slog.Int("entries", st.Entries),
		slog.Int("synsets", st.Synsets),
		slog.Int("senses", st.Senses),
		slog.Int("forms", st.Forms),
		slog.Int("dangling", st.Dangling),
		slog.Int("orphans", st.Orphans),
	)

	if _, err := tagger.Run(ctx, cfg, lex, tok, logger); err != nil {
		logger.Error("tagging failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
