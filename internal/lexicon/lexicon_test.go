package lexicon

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/lexcore/internal/domain"
)

func testdataPath(t *testing.T, name string) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot determine test file path")
	}
	return filepath.Join(filepath.Dir(file), "testdata", name)
}

// writeFile is a test helper that creates a file with given content.
func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o644)
}

func loadSample(t *testing.T) *Lexicon {
	t.Helper()
	lex, err := Load(testdataPath(t, "oewn"))
	require.NoError(t, err)
	return lex
}

func ids(synsets []*Synset) []domain.SenseID {
	out := make([]domain.SenseID, 0, len(synsets))
	for _, s := range synsets {
		out = append(out, s.ID)
	}
	return out
}

func TestLoad_DirectoryNotFound(t *testing.T) {
	_, err := Load("/nonexistent/oewn")
	assert.Error(t, err)
}

func TestLoad_NotADirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file.json")
	require.NoError(t, writeFile(path, "{}"))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_NoSynsetFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, writeFile(filepath.Join(dir, "entries-a.json"), "{}"))

	_, err := Load(dir)
	assert.Error(t, err)
}

func TestLoad_InvalidJSON(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, writeFile(filepath.Join(dir, "noun.animal.json"), "not json"))

	_, err := Load(dir)
	assert.Error(t, err)
}

func TestLoad_Identifiers(t *testing.T) {
	lex := loadSample(t)

	want := []domain.SenseID{
		"carnivorous.a.01",
		"dog.n.01",
		"dog.n.02",
		"dog.v.01",
		"domesticated.s.01",
		"hot_dog.n.01",
		"mammal.n.01",
		"mouse.n.01",
		"quickly.r.01",
		"run.v.01",
		"tame.a.01",
		"tame.s.02",
	}
	assert.Equal(t, want, ids(lex.AllSynsets()))
	assert.Equal(t, len(want), lex.Len())
}

func TestLoad_SynsetFields(t *testing.T) {
	lex := loadSample(t)

	dog, ok := lex.Synset("dog.n.01")
	require.True(t, ok)
	assert.Equal(t, "02084071-n", dog.Key)
	assert.Equal(t, Noun, dog.POS)
	assert.Equal(t, []string{"dog", "domestic dog"}, dog.Members)
	assert.Equal(t, "a member of the genus Canis that has been domesticated by man since prehistoric times", dog.Definition)

	quickly, ok := lex.Synset("quickly.r.01")
	require.True(t, ok)
	assert.Equal(t, Adv, quickly.POS, "POS falls back to the key suffix")

	_, ok = lex.Synset("cat.n.01")
	assert.False(t, ok)
}

func TestLoad_Stats(t *testing.T) {
	lex := loadSample(t)

	assert.Equal(t, Stats{
		Entries: 11,
		Synsets: 12,
		Senses:  14,
		Forms:   2,
	}, lex.Stats())
}

func TestLoad_DanglingAndOrphan(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, writeFile(filepath.Join(dir, "noun.tops.json"), `{
		"00001740-n": {"members": ["entity"], "definition": ["that which is perceived"]},
		"00002137-n": {"members": ["abstraction"], "definition": ["a general concept"]}
	}`))
	require.NoError(t, writeFile(filepath.Join(dir, "entries-e.json"), `{
		"entity": {"n": {"sense": [
			{"id": "entity%1:03:00::", "synset": "00001740-n"},
			{"id": "entity%1:03:01::", "synset": "99999999-n"}
		]}}
	}`))

	lex, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, 1, lex.Stats().Dangling)
	assert.Equal(t, 1, lex.Stats().Orphans)
	assert.Equal(t, []domain.SenseID{"abstraction.n.01", "entity.n.01"}, ids(lex.AllSynsets()))
}

func TestSynsets(t *testing.T) {
	lex := loadSample(t)

	tests := []struct {
		word string
		want []domain.SenseID
	}{
		{"dog", []domain.SenseID{"dog.n.01", "dog.n.02", "dog.v.01"}},
		{"Dog", []domain.SenseID{"dog.n.01", "dog.n.02", "dog.v.01"}},
		{"dogs", []domain.SenseID{"dog.n.01", "dog.n.02", "dog.v.01"}},
		{"mice", []domain.SenseID{"mouse.n.01"}},
		{"ran", []domain.SenseID{"run.v.01"}},
		{"runs", []domain.SenseID{"run.v.01"}},
		{"hot dog", []domain.SenseID{"hot_dog.n.01"}},
		{"hot_dog", []domain.SenseID{"hot_dog.n.01"}},
		{"frank", []domain.SenseID{"hot_dog.n.01"}},
		{"tame", []domain.SenseID{"tame.a.01", "tame.s.02"}},
		{"tamer", []domain.SenseID{"tame.a.01", "tame.s.02"}},
		{"domesticated", []domain.SenseID{"domesticated.s.01"}},
		{"quickly", []domain.SenseID{"quickly.r.01"}},
		{"mammals", []domain.SenseID{"mammal.n.01"}},
		{"zebra", nil},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			got := lex.Synsets(tt.word)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestLemmatize(t *testing.T) {
	lex := loadSample(t)

	tests := []struct {
		word string
		pos  string
		want string
	}{
		{"dogs", Noun, "dog"},
		{"mice", Noun, "mouse"},
		{"mammals", Noun, "mammal"},
		{"mammal", Noun, "mammal"},
		{"boxes", Noun, "boxes"},
		{"quickly", Noun, "quickly"},
		{"ran", Verb, "run"},
		{"dogs", Verb, "dog"},
		{"dogged", Verb, "dogged"},
		{"tamest", Adj, "tame"},
		{"tamest", AdjSat, "tame"},
		{"ran", Noun, "ran"},
	}

	for _, tt := range tests {
		t.Run(tt.word+"/"+tt.pos, func(t *testing.T) {
			assert.Equal(t, tt.want, lex.Lemmatize(tt.word, tt.pos))
		})
	}
}

func TestMorphy_ExceptionsWin(t *testing.T) {
	lex := loadSample(t)

	// "mice" has an irregular form entry, so the detachment rules never run.
	assert.Equal(t, []string{"mouse"}, lex.morphy("mice", Noun))
	assert.Nil(t, lex.morphy("mice", Verb))
}

func TestLemmaKey(t *testing.T) {
	assert.Equal(t, "hot_dog", LemmaKey(" Hot Dog "))
	assert.Equal(t, "dog", LemmaKey("dog"))
	assert.Equal(t, "", LemmaKey("  "))
}
