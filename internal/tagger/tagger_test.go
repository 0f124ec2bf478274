package tagger

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/heartmarshall/lexcore/internal/domain"
	"github.com/heartmarshall/lexcore/internal/lexicon"
	"github.com/heartmarshall/lexcore/internal/tokenize"
)

type mockLookup map[string][]*lexicon.Synset

func (m mockLookup) Synsets(word string) []*lexicon.Synset { return m[word] }

func synset(id, definition string) *lexicon.Synset {
	return &lexicon.Synset{ID: domain.SenseID(id), Definition: definition}
}

func TestTag_MammalGloss(t *testing.T) {
	mammal := synset("mammal.n.01", "any warm-blooded vertebrate having hair")
	dog := synset("dog.n.01", "a domesticated carnivorous mammal")

	tg := New(tokenize.Whitespace{}, mockLookup{"mammal": {mammal}})
	rec := tg.Tag(dog)

	assert.Equal(t, "dog", rec.Lemma)
	assert.Equal(t, "a domesticated carnivorous mammal", rec.Gloss)
	assert.Equal(t, "a domesticated carnivorous %s", rec.Template)
	assert.Equal(t, []string{"mammal"}, rec.Words)
	assert.Equal(t, []string{"mammal.n.01"}, rec.Senses)
}

func TestTag_KeepRules(t *testing.T) {
	mammal := synset("mammal.n.01", "any warm-blooded vertebrate")
	hotDog := synset("hot_dog.n.01", "a smooth-textured sausage")

	lookup := mockLookup{
		"mammal":  {mammal},
		"mammals": {mammal},
		"Mammal":  {mammal},
		"frank":   {hotDog},
	}
	tg := New(tokenize.Whitespace{}, lookup)

	tests := []struct {
		name     string
		gloss    string
		template string
		words    []string
		senses   []string
	}{
		{"no sense", "a zebra", "a zebra", []string{}, []string{}},
		{"lemma differs from token", "many mammals", "many mammals", []string{}, []string{}},
		{"case-sensitive match", "Mammal here", "Mammal here", []string{}, []string{}},
		{"multi-word sense", "a frank", "a frank", []string{}, []string{}},
		{"repeated token", "mammal eats mammal", "%s eats %s", []string{"mammal", "mammal"}, []string{"mammal.n.01", "mammal.n.01"}},
		{"empty gloss", "", "", []string{}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := tg.Tag(synset("test.n.01", tt.gloss))
			assert.Equal(t, tt.template, rec.Template)
			assert.Equal(t, tt.words, rec.Words)
			assert.Equal(t, tt.senses, rec.Senses)
			assert.NoError(t, rec.Validate())
		})
	}
}

func TestTag_MultiWordSynsetNotSubstituted(t *testing.T) {
	mammal := synset("mammal.n.01", "any warm-blooded vertebrate")
	hotDog := synset("hot_dog.n.01", "a sausage of mammal meat")

	tg := New(tokenize.Whitespace{}, mockLookup{"mammal": {mammal}})
	rec := tg.Tag(hotDog)

	assert.Equal(t, "hot_dog", rec.Lemma)
	assert.Equal(t, "a sausage of mammal meat", rec.Template)
	assert.Empty(t, rec.Words)
	assert.Empty(t, rec.Senses)
}

func TestTag_Reconstruction(t *testing.T) {
	a := synset("a.n.01", "x")
	b := synset("b.n.01", "x")

	tg := New(tokenize.Whitespace{}, mockLookup{"a": {a}, "b": {b}})

	glosses := []string{
		"a  b c",
		"c b a b",
		"\tb\n",
		"no known tokens here",
	}
	for _, g := range glosses {
		rec := tg.Tag(synset("test.n.01", g))
		assert.Len(t, rec.Senses, len(rec.Words))
		assert.Equal(t, strings.Fields(g), strings.Fields(rec.Fill(rec.Words)), "gloss %q", g)
	}
}
