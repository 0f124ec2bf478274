package cleaner

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/lexcore/internal/config"
	"github.com/heartmarshall/lexcore/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

// setup writes the given letter files into a fresh input dir and returns a
// config pointing at it.
func setup(t *testing.T, files map[string]string, letters ...string) config.CleanerConfig {
	t.Helper()
	root := t.TempDir()
	in := filepath.Join(root, "dict")
	require.NoError(t, os.MkdirAll(in, 0o755))
	for letter, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(in, letter+".csv"), []byte(content), 0o644))
	}
	return config.CleanerConfig{
		InputDir:   in,
		OutputDir:  filepath.Join(root, "cleaned"),
		Letters:    letters,
		Normalizer: "lemma",
	}
}

func newCleaner(t *testing.T, cfg config.CleanerConfig, norm Normalizer) *Cleaner {
	t.Helper()
	c, err := New(testLogger(), cfg, norm)
	require.NoError(t, err)
	return c
}

func readOutput(t *testing.T, cfg config.CleanerConfig, letter string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(cfg.OutputDir, letter+".json"))
	require.NoError(t, err)
	return string(data)
}

func outputExists(cfg config.CleanerConfig, letter string) bool {
	_, err := os.Stat(filepath.Join(cfg.OutputDir, letter+".json"))
	return err == nil
}

func TestRun_DogScenario(t *testing.T) {
	cfg := setup(t, map[string]string{
		"D": "Dog; (n) A domesticated carnivorous mammal.\n",
	}, "D")

	result, err := newCleaner(t, cfg, nil).Run(context.Background())
	require.NoError(t, err)
	require.Len(t, result.Letters, 1)
	assert.False(t, result.HasErrors())
	assert.Equal(t, 1, result.Letters[0].Rows)
	assert.Equal(t, 1, result.Letters[0].Entries)

	want := `{
  "dog": [
    "a",
    "domesticated",
    "carnivorous",
    "mammal"
  ]
}
`
	assert.Equal(t, want, readOutput(t, cfg, "D"))
}

func TestRun_MalformedRowLeavesLetterUnwritten(t *testing.T) {
	cfg := setup(t, map[string]string{
		"M": "Mouse (n.) A rodent\nmalformed\nMole (n.) A burrower\n",
	}, "M")

	result, err := newCleaner(t, cfg, nil).Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMalformedEntry)

	var entryErr *domain.EntryError
	require.True(t, errors.As(err, &entryErr))
	assert.Equal(t, "M", entryErr.Letter)
	assert.Equal(t, 2, entryErr.Line)
	assert.Equal(t, "malformed", entryErr.Raw)

	assert.True(t, result.HasErrors())
	assert.False(t, outputExists(cfg, "M"))
}

func TestRun_EmptyDefinitionKeepsHeadword(t *testing.T) {
	cfg := setup(t, map[string]string{
		"Z": "Zebra (n) A striped horse\nZzz .\n",
	}, "Z")

	result, err := newCleaner(t, cfg, nil).Run(context.Background())
	require.NoError(t, err)
	assert.False(t, result.HasErrors())
	require.Len(t, result.Letters, 1)
	assert.Equal(t, 2, result.Letters[0].Entries)

	want := `{
  "zebra": [
    "a",
    "striped",
    "horse"
  ],
  "zzz": []
}
`
	assert.Equal(t, want, readOutput(t, cfg, "Z"))
}

func TestRun_MalformedAbortsByDefault(t *testing.T) {
	cfg := setup(t, map[string]string{
		"A": "Apple (n.) A fruit\n",
		"B": "broken\n",
		"C": "Cat (n.) A feline\n",
	}, "A", "B", "C")

	result, err := newCleaner(t, cfg, nil).Run(context.Background())
	require.ErrorIs(t, err, domain.ErrMalformedEntry)

	assert.Len(t, result.Letters, 2)
	assert.True(t, outputExists(cfg, "A"))
	assert.False(t, outputExists(cfg, "B"))
	assert.False(t, outputExists(cfg, "C"))
}

func TestRun_ContinueOnError(t *testing.T) {
	cfg := setup(t, map[string]string{
		"A": "Apple (n.) A fruit\n",
		"B": "broken\n",
		"C": "Cat (n.) A feline\n",
	}, "A", "B", "C")
	cfg.ContinueOnError = true

	result, err := newCleaner(t, cfg, nil).Run(context.Background())
	require.NoError(t, err)

	assert.Len(t, result.Letters, 3)
	assert.Equal(t, 1, result.Errors())
	assert.Equal(t, 2, result.Entries())
	assert.True(t, result.HasErrors())
	assert.True(t, outputExists(cfg, "A"))
	assert.False(t, outputExists(cfg, "B"))
	assert.True(t, outputExists(cfg, "C"))
}

func TestRun_MissingInputIsFatal(t *testing.T) {
	for _, continueOnError := range []bool{false, true} {
		cfg := setup(t, map[string]string{
			"A": "Apple (n.) A fruit\n",
			"C": "Cat (n.) A feline\n",
		}, "A", "B", "C")
		cfg.ContinueOnError = continueOnError

		result, err := newCleaner(t, cfg, nil).Run(context.Background())
		require.ErrorIs(t, err, domain.ErrMissingInput)

		assert.Len(t, result.Letters, 2)
		assert.True(t, outputExists(cfg, "A"), "earlier letters keep their output")
		assert.False(t, outputExists(cfg, "C"))
	}
}

func TestRun_Idempotent(t *testing.T) {
	cfg := setup(t, map[string]string{
		"Z": "Zebra (n.) A striped equine\nZest (n.) Peel; flavour & \"zing\"\nZero (n.) Nothing\n",
	}, "Z")

	c := newCleaner(t, cfg, nil)
	_, err := c.Run(context.Background())
	require.NoError(t, err)
	first := readOutput(t, cfg, "Z")

	_, err = c.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, readOutput(t, cfg, "Z"))
}

func TestRun_DuplicateHeadwordLastWriteWins(t *testing.T) {
	cfg := setup(t, map[string]string{
		"D": "Dog (n.) first\nDog (v.) second\n",
	}, "D")

	result, err := newCleaner(t, cfg, nil).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, result.Letters[0].Rows)
	assert.Equal(t, 1, result.Letters[0].Entries)
	assert.Equal(t, 1, result.Letters[0].Duplicates)

	assert.Equal(t, "{\n  \"dog\": [\n    \"second\"\n  ]\n}\n", readOutput(t, cfg, "D"))
}

func TestRun_Lemmatize(t *testing.T) {
	cfg := setup(t, map[string]string{
		"D": "Dogs (n.) Mammals kept as pets\n",
	}, "D")
	cfg.Lemmatize = true

	norm := mapNormalizer{"mammals": "mammal", "pets": "pet", "dogs": "dog"}
	_, err := newCleaner(t, cfg, norm).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "{\n  \"dogs\": [\n    \"mammal\",\n    \"kept\",\n    \"as\",\n    \"pet\"\n  ]\n}\n", readOutput(t, cfg, "D"))
}

func TestRun_NormalizerIgnoredWhenLemmatizeOff(t *testing.T) {
	cfg := setup(t, map[string]string{
		"D": "Dogs (n.) Mammals\n",
	}, "D")

	_, err := newCleaner(t, cfg, mapNormalizer{"mammals": "mammal"}).Run(context.Background())
	require.NoError(t, err)
	assert.Contains(t, readOutput(t, cfg, "D"), `"mammals"`)
}

func TestRun_Cancelled(t *testing.T) {
	cfg := setup(t, map[string]string{"A": "Apple (n.) A fruit\n"}, "A")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newCleaner(t, cfg, nil).Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, outputExists(cfg, "A"))
}

func TestNew_LemmatizeNeedsNormalizer(t *testing.T) {
	_, err := New(testLogger(), config.CleanerConfig{Lemmatize: true}, nil)
	assert.Error(t, err)
}

func TestSelectLetters(t *testing.T) {
	assert.Equal(t, AllLetters, selectLetters(nil))
	assert.Equal(t, []string{"A", "M", "Z"}, selectLetters([]string{"Z", "A", "M"}))
	assert.Empty(t, selectLetters([]string{"?"}))
}
