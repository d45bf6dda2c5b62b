package importer

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"lexitrain/internal/domain"
	"lexitrain/internal/testutil"
)

func writeSheet(t *testing.T, rows [][]any) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	path := filepath.Join(t.TempDir(), "corpus.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestImporter_ImportFile(t *testing.T) {
	path := writeSheet(t, [][]any{
		{"word", "part of speech", "level", "definition", "example"},
		{"resilient", "adjective", "B2", "able to recover quickly", "She is resilient."},
		{"anchor", "noun", "b1", "a heavy object", ""},
	})

	store := testutil.NewFakeStore()
	imp := New(store, testutil.NewTestLogger())

	result, err := imp.ImportFile(context.Background(), path)

	require.NoError(t, err)
	assert.Equal(t, 2, result.Processed)
	assert.Equal(t, 2, result.Created)
	assert.Equal(t, 0, result.Skipped)
	assert.Empty(t, result.Errors)

	word, err := store.WordBySurfaceForm(context.Background(), "resilient")
	require.NoError(t, err)
	require.NotNil(t, word)
	assert.Equal(t, domain.LevelB2, word.Level)
	assert.Equal(t, "able to recover quickly", word.Definition)

	// Lowercase level cells are accepted.
	word, err = store.WordBySurfaceForm(context.Background(), "anchor")
	require.NoError(t, err)
	require.NotNil(t, word)
	assert.Equal(t, domain.LevelB1, word.Level)
}

func TestImporter_ImportFile_SkipsExistingWords(t *testing.T) {
	path := writeSheet(t, [][]any{
		{"word", "part of speech", "level", "definition", "example"},
		{"anchor", "noun", "B1", "a heavy object", ""},
		{"tide", "noun", "B1", "the rise and fall of the sea", ""},
	})

	store := testutil.NewFakeStore()
	store.AddWord(testutil.NewTestWord(0, "anchor", domain.LevelB1))
	imp := New(store, testutil.NewTestLogger())

	result, err := imp.ImportFile(context.Background(), path)

	require.NoError(t, err)
	assert.Equal(t, 2, result.Processed)
	assert.Equal(t, 1, result.Created)
	assert.Equal(t, 1, result.Skipped)
}

func TestImporter_ImportFile_CollectsRowErrors(t *testing.T) {
	path := writeSheet(t, [][]any{
		{"word", "part of speech", "level", "definition", "example"},
		{"", "noun", "B1", "missing surface form", ""},
		{"ghost", "noun", "Z9", "bad level", ""},
		{"tide", "noun", "B1", "the rise and fall of the sea", ""},
	})

	store := testutil.NewFakeStore()
	imp := New(store, testutil.NewTestLogger())

	result, err := imp.ImportFile(context.Background(), path)

	require.NoError(t, err)
	assert.Equal(t, 3, result.Processed)
	assert.Equal(t, 1, result.Created)
	require.Len(t, result.Errors, 2)
	assert.Contains(t, result.Errors[0], "row 2")
	assert.Contains(t, result.Errors[1], "row 3")
}

func TestImporter_ImportFile_MissingFile(t *testing.T) {
	imp := New(testutil.NewFakeStore(), testutil.NewTestLogger())

	result, err := imp.ImportFile(context.Background(), filepath.Join(t.TempDir(), "absent.xlsx"))

	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestImporter_ImportFile_LookupFailureAborts(t *testing.T) {
	path := writeSheet(t, [][]any{
		{"word", "part of speech", "level", "definition", "example"},
		{"anchor", "noun", "B1", "a heavy object", ""},
	})

	words := new(testutil.MockWordRepository)
	words.On("WordBySurfaceForm", context.Background(), "anchor").
		Return((*domain.WordEntry)(nil), domain.ErrStoreUnavailable)
	imp := New(words, testutil.NewTestLogger())

	_, err := imp.ImportFile(context.Background(), path)

	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}
