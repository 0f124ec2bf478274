// Command clean-dict normalizes the raw dictionary files dict/<A-Z>.csv into
// cleaned/<A-Z>.json (headword -> definition tokens).
//
// Flags override the matching cleaner settings of the config file:
//
//	--config             path to the YAML config file
//	--input              directory holding the letter CSV files
//	--output             directory receiving the letter JSON files
//	--letters            comma-separated letters to process (default: A-Z)
//	--lemmatize          normalize definition tokens
//	--normalizer         lemma (WordNet noun lemma) or stem (Snowball)
//	--wordnet            OEWN JSON directory for the lemma normalizer
//	--continue-on-error  keep going after a malformed letter
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
	"github.com/heartmarshall/lexcore/internal/cleaner"
	"github.com/heartmarshall/lexcore/internal/config"
	"github.com/heartmarshall/lexcore/internal/lexicon"
)

func main() {
	configPath := pflag.String("config", "", "path to YAML config file")
	input := pflag.StringP("input", "i", "", "directory with <A-Z>.csv files")
	output := pflag.StringP("output", "o", "", "directory for <A-Z>.json files")
	letters := pflag.StringSlice("letters", nil, "comma-separated letters to process (default: all)")
	lemmatize := pflag.Bool("lemmatize", false, "normalize definition tokens")
	normalizer := pflag.String("normalizer", "", "token normalizer: lemma or stem")
	wordnet := pflag.String("wordnet", "", "OEWN JSON directory for the lemma normalizer")
	continueOnError := pflag.Bool("continue-on-error", false, "continue after a malformed letter")
	pflag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctx, rt, err := app.Bootstrap(ctx, "clean-dict", *configPath, func(cfg *config.Config) {
		c := &cfg.Cleaner
		if pflag.CommandLine.Changed("input") {
			c.InputDir = *input
		}
		if pflag.CommandLine.Changed("output") {
			c.OutputDir = *output
		}
		if pflag.CommandLine.Changed("letters") {
			c.Letters = *letters
		}
		if pflag.CommandLine.Changed("lemmatize") {
			c.Lemmatize = *lemmatize
		}
		if pflag.CommandLine.Changed("normalizer") {
			c.Normalizer = *normalizer
		}
		if pflag.CommandLine.Changed("wordnet") {
			c.WordNetDir = *wordnet
		}
		if pflag.CommandLine.Changed("continue-on-error") {
			c.ContinueOnError = *continueOnError
		}
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "clean-dict: %v\n", err)
		os.Exit(1)
	}
	logger := rt.Logger
	cfg := rt.Config.Cleaner

	var norm cleaner.Normalizer
	if cfg.Lemmatize {
		norm, err = buildNormalizer(cfg, logger)
		if err != nil {
			logger.Error("build normalizer", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	c, err := cleaner.New(logger, cfg, norm)
	if err != nil {
		logger.Error("create cleaner", slog.String("error", err.Error()))
		os.Exit(1)
	}

	result, err := c.Run(ctx)
	if err != nil {
		logger.Error("cleaning failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if result.HasErrors() {
		logger.Warn("cleaning completed with errors", slog.Int("failed_letters", result.Errors()))
		os.Exit(1)
	}
}

func buildNormalizer(cfg config.CleanerConfig, logger *slog.Logger) (cleaner.Normalizer, error) {
	var lex *lexicon.Lexicon
	if cfg.Normalizer == lexicon.ModeLemma {
		var err error
		lex, err = lexicon.Load(cfg.WordNetDir)
		if err != nil {
			return nil, fmt.Errorf("load wordnet: %w", err)
		}
		st := lex.Stats()
		logger.Info("wordnet loaded",
			slog.String("dir", cfg.WordNetDir),
			slog.Int("synsets", st.Synsets),
			slog.Int("senses", st.Senses),
		)
	}
	return lexicon.NewNormalizer(cfg.Normalizer, lex)
}
