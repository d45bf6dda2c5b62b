package domain

import "time"

// WordEntry represents a leveled vocabulary item with optional enrichment
type WordEntry struct {
	ID              int64
	SurfaceForm     string
	PartOfSpeech    string
	Level           Level
	Definition      string
	Pronunciation   string
	ExampleSentence string
	Synonyms        []string
	Antonyms        []string
	CreatedAt       time.Time
}

// HasDefinition reports whether the entry already carries a definition and
// therefore never needs another provider lookup.
func (w WordEntry) HasDefinition() bool {
	return w.Definition != ""
}

// Enrichment holds provider-supplied word detail. Empty fields mean the
// provider had no data for them.
type Enrichment struct {
	Definition      string
	Pronunciation   string
	ExampleSentence string
	Synonyms        []string
	Antonyms        []string
}

// IsEmpty reports whether the lookup produced nothing worth persisting.
func (e Enrichment) IsEmpty() bool {
	return e.Definition == "" && e.Pronunciation == "" && e.ExampleSentence == "" &&
		len(e.Synonyms) == 0 && len(e.Antonyms) == 0
}

// Apply returns a copy of w with previously-empty fields filled from e.
// Populated fields on w are never overwritten.
func (e Enrichment) Apply(w WordEntry) WordEntry {
	if w.Definition == "" {
		w.Definition = e.Definition
	}
	if w.Pronunciation == "" {
		w.Pronunciation = e.Pronunciation
	}
	if w.ExampleSentence == "" {
		w.ExampleSentence = e.ExampleSentence
	}
	if len(w.Synonyms) == 0 {
		w.Synonyms = e.Synonyms
	}
	if len(w.Antonyms) == 0 {
		w.Antonyms = e.Antonyms
	}
	return w
}
