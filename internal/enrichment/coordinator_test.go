package enrichment

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"lexitrain/internal/domain"
	"lexitrain/internal/testutil"
)

func TestCoordinator_Enrich_UnconfiguredShortCircuits(t *testing.T) {
	provider := new(testutil.MockProvider)
	provider.On("Configured").Return(false)
	words := new(testutil.MockWordRepository)

	c := NewCoordinator(provider, words, 0, 0, testutil.NewTestLogger())
	input := []domain.WordEntry{testutil.NewBareWord(1, "ephemeral", domain.LevelC1)}

	out := c.Enrich(context.Background(), input)

	assert.Equal(t, input, out)
	provider.AssertNotCalled(t, "Lookup")
	words.AssertNotCalled(t, "UpsertEnrichment")
}

func TestCoordinator_Enrich_SkipsWordsWithDefinitions(t *testing.T) {
	provider := new(testutil.MockProvider)
	provider.On("Configured").Return(true)
	words := new(testutil.MockWordRepository)

	c := NewCoordinator(provider, words, 0, 0, testutil.NewTestLogger())
	input := []domain.WordEntry{testutil.NewTestWord(1, "anchor", domain.LevelB1)}

	out := c.Enrich(context.Background(), input)

	assert.Equal(t, input, out)
	provider.AssertNotCalled(t, "Lookup")
}

func TestCoordinator_Enrich_FillsAndPersists(t *testing.T) {
	enriched := domain.Enrichment{
		Definition:      "lasting for a very short time",
		ExampleSentence: "Fame in this industry is ephemeral.",
		Synonyms:        []string{"fleeting", "transient"},
	}

	provider := new(testutil.MockProvider)
	provider.On("Configured").Return(true)
	provider.On("Lookup", mock.Anything, "ephemeral").Return(enriched, nil)

	words := new(testutil.MockWordRepository)
	words.On("UpsertEnrichment", mock.Anything, int64(1), enriched).Return(nil)

	c := NewCoordinator(provider, words, 0, 0, testutil.NewTestLogger())
	input := []domain.WordEntry{testutil.NewBareWord(1, "ephemeral", domain.LevelC1)}

	out := c.Enrich(context.Background(), input)

	require.Len(t, out, 1)
	assert.Equal(t, enriched.Definition, out[0].Definition)
	assert.Equal(t, enriched.ExampleSentence, out[0].ExampleSentence)
	assert.Equal(t, enriched.Synonyms, out[0].Synonyms)
	assert.Empty(t, input[0].Definition, "input slice must not be mutated")
	words.AssertExpectations(t)
}

func TestCoordinator_Enrich_LookupFailureIsIsolated(t *testing.T) {
	enriched := domain.Enrichment{Definition: "a strong dislike"}

	provider := new(testutil.MockProvider)
	provider.On("Configured").Return(true)
	provider.On("Lookup", mock.Anything, "aversion").Return(enriched, nil)
	provider.On("Lookup", mock.Anything, "broken").Return(domain.Enrichment{}, errors.New("provider timeout"))

	words := new(testutil.MockWordRepository)
	words.On("UpsertEnrichment", mock.Anything, int64(1), enriched).Return(nil)

	c := NewCoordinator(provider, words, 0, 0, testutil.NewTestLogger())
	input := []domain.WordEntry{
		testutil.NewBareWord(1, "aversion", domain.LevelB2),
		testutil.NewBareWord(2, "broken", domain.LevelB2),
	}

	out := c.Enrich(context.Background(), input)

	require.Len(t, out, 2)
	assert.Equal(t, "a strong dislike", out[0].Definition)
	assert.Empty(t, out[1].Definition, "a failed lookup leaves the entry untouched")
	words.AssertNumberOfCalls(t, "UpsertEnrichment", 1)
}

func TestCoordinator_Enrich_EmptyResultIsNotPersisted(t *testing.T) {
	provider := new(testutil.MockProvider)
	provider.On("Configured").Return(true)
	provider.On("Lookup", mock.Anything, "unknownism").Return(domain.Enrichment{}, nil)

	words := new(testutil.MockWordRepository)

	c := NewCoordinator(provider, words, 0, 0, testutil.NewTestLogger())
	input := []domain.WordEntry{testutil.NewBareWord(1, "unknownism", domain.LevelC2)}

	out := c.Enrich(context.Background(), input)

	assert.Equal(t, input, out)
	words.AssertNotCalled(t, "UpsertEnrichment")
}

func TestCoordinator_Enrich_PersistFailureStillEnrichesInMemory(t *testing.T) {
	enriched := domain.Enrichment{Definition: "capable of burning"}

	provider := new(testutil.MockProvider)
	provider.On("Configured").Return(true)
	provider.On("Lookup", mock.Anything, "caustic").Return(enriched, nil)

	words := new(testutil.MockWordRepository)
	words.On("UpsertEnrichment", mock.Anything, int64(1), enriched).Return(domain.ErrStoreUnavailable)

	c := NewCoordinator(provider, words, 0, 0, testutil.NewTestLogger())
	input := []domain.WordEntry{testutil.NewBareWord(1, "caustic", domain.LevelC1)}

	out := c.Enrich(context.Background(), input)

	require.Len(t, out, 1)
	assert.Equal(t, "capable of burning", out[0].Definition)
}

func TestCoordinator_Enrich_CancelledContextReturnsInput(t *testing.T) {
	provider := new(testutil.MockProvider)
	provider.On("Configured").Return(true)

	c := NewCoordinator(provider, new(testutil.MockWordRepository), 0, 0, testutil.NewTestLogger())
	input := []domain.WordEntry{testutil.NewBareWord(1, "halted", domain.LevelB1)}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out := c.Enrich(ctx, input)

	assert.Equal(t, input, out)
}
