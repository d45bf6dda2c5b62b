package testutil

import (
	"fmt"
	"math/rand"

	"go.uber.org/zap"

	"lexitrain/internal/domain"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestRand creates a seeded rand source for deterministic tests
func NewTestRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// NewTestWord creates a test word entry with a definition
func NewTestWord(id int64, surfaceForm string, level domain.Level) domain.WordEntry {
	return domain.WordEntry{
		ID:           id,
		SurfaceForm:  surfaceForm,
		PartOfSpeech: "noun",
		Level:        level,
		Definition:   fmt.Sprintf("the meaning of %s", surfaceForm),
	}
}

// NewBareWord creates a test word entry with no enrichment at all
func NewBareWord(id int64, surfaceForm string, level domain.Level) domain.WordEntry {
	return domain.WordEntry{
		ID:           id,
		SurfaceForm:  surfaceForm,
		PartOfSpeech: "noun",
		Level:        level,
	}
}

// WordList builds n test words named by prefix and index, all at one level
func WordList(level domain.Level, prefix string, n int) []domain.WordEntry {
	words := make([]domain.WordEntry, n)
	for i := range words {
		words[i] = NewTestWord(int64(i+1), fmt.Sprintf("%s%03d", prefix, i), level)
	}
	return words
}
