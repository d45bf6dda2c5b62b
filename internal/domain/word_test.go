package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnrichment_Apply(t *testing.T) {
	full := Enrichment{
		Definition:      "a greeting",
		Pronunciation:   "/həˈloʊ/",
		ExampleSentence: "Hello there.",
		Synonyms:        []string{"hi"},
		Antonyms:        []string{"goodbye"},
	}

	t.Run("fills empty fields", func(t *testing.T) {
		word := full.Apply(WordEntry{SurfaceForm: "hello", Level: LevelA1})

		assert.Equal(t, "a greeting", word.Definition)
		assert.Equal(t, "/həˈloʊ/", word.Pronunciation)
		assert.Equal(t, "Hello there.", word.ExampleSentence)
		assert.Equal(t, []string{"hi"}, word.Synonyms)
		assert.Equal(t, []string{"goodbye"}, word.Antonyms)
	})

	t.Run("never overwrites populated fields", func(t *testing.T) {
		word := WordEntry{
			SurfaceForm: "hello",
			Definition:  "the original definition",
			Synonyms:    []string{"hey"},
		}

		result := full.Apply(word)

		assert.Equal(t, "the original definition", result.Definition)
		assert.Equal(t, []string{"hey"}, result.Synonyms)
		// Empty fields still get filled.
		assert.Equal(t, "/həˈloʊ/", result.Pronunciation)
	})

	t.Run("applying twice is idempotent", func(t *testing.T) {
		once := full.Apply(WordEntry{SurfaceForm: "hello"})
		twice := full.Apply(once)
		assert.Equal(t, once, twice)
	})
}

func TestEnrichment_IsEmpty(t *testing.T) {
	assert.True(t, Enrichment{}.IsEmpty())
	assert.False(t, Enrichment{Definition: "x"}.IsEmpty())
	assert.False(t, Enrichment{Synonyms: []string{"x"}}.IsEmpty())
}

func TestWordEntry_HasDefinition(t *testing.T) {
	assert.False(t, WordEntry{SurfaceForm: "cat"}.HasDefinition())
	assert.True(t, WordEntry{SurfaceForm: "cat", Definition: "a small animal"}.HasDefinition())
}
