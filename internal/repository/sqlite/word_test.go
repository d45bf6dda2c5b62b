package sqlite

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lexitrain/internal/domain"
)

var wordColumns = []string{
	"id", "surface_form", "part_of_speech", "cefr_level", "definition",
	"pronunciation", "example_sentence", "synonyms", "antonyms", "created_at",
}

func newMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewWithDB(sqlx.NewDb(db, "sqlite3")), mock
}

func TestWordRepo_WordsByLevel(t *testing.T) {
	store, mock := newMockStore(t)
	repo := NewWordRepo(store)

	rows := sqlmock.NewRows(wordColumns).
		AddRow(1, "resilient", "adjective", "B2", "able to recover quickly",
			"/rɪˈzɪliənt/", "She is resilient.", `["tough","hardy"]`, `[]`, time.Now()).
		AddRow(2, "elusive", "adjective", "C1", "difficult to find",
			"", "", `[]`, `[]`, time.Now())

	mock.ExpectQuery("SELECT id, surface_form, part_of_speech, cefr_level").
		WithArgs("B2", 30).
		WillReturnRows(rows)

	words, err := repo.WordsByLevel(context.Background(), domain.LevelB2, 30)

	assert.NoError(t, err)
	assert.Len(t, words, 2)
	assert.Equal(t, "resilient", words[0].SurfaceForm)
	assert.Equal(t, domain.LevelB2, words[0].Level)
	assert.Equal(t, []string{"tough", "hardy"}, words[0].Synonyms)
	assert.Empty(t, words[1].Synonyms)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWordRepo_WordsByLevel_QueryError(t *testing.T) {
	store, mock := newMockStore(t)
	repo := NewWordRepo(store)

	mock.ExpectQuery("SELECT id, surface_form, part_of_speech, cefr_level").
		WithArgs("B2", 30).
		WillReturnError(fmt.Errorf("query error"))

	words, err := repo.WordsByLevel(context.Background(), domain.LevelB2, 30)

	assert.Error(t, err)
	assert.Nil(t, words)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWordRepo_WordsByLevel_BadSynonymsJSON(t *testing.T) {
	store, mock := newMockStore(t)
	repo := NewWordRepo(store)

	rows := sqlmock.NewRows(wordColumns).
		AddRow(1, "broken", "noun", "A1", "", "", "", "not json", `[]`, time.Now())

	mock.ExpectQuery("SELECT id, surface_form, part_of_speech, cefr_level").
		WithArgs("A1", 10).
		WillReturnRows(rows)

	words, err := repo.WordsByLevel(context.Background(), domain.LevelA1, 10)

	assert.Error(t, err)
	assert.Nil(t, words)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWordRepo_WordsByLevel_StoreUnavailable(t *testing.T) {
	repo := NewWordRepo(New())

	_, err := repo.WordsByLevel(context.Background(), domain.LevelB2, 30)

	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}

func TestWordRepo_WordByID(t *testing.T) {
	tests := []struct {
		name        string
		mockRows    *sqlmock.Rows
		expectedNil bool
	}{
		{
			name: "word found",
			mockRows: sqlmock.NewRows(wordColumns).
				AddRow(7, "anchor", "noun", "B1", "a heavy object", "", "", `[]`, `[]`, time.Now()),
			expectedNil: false,
		},
		{
			name:        "not found",
			mockRows:    sqlmock.NewRows(wordColumns),
			expectedNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, mock := newMockStore(t)
			repo := NewWordRepo(store)

			mock.ExpectQuery("SELECT id, surface_form, part_of_speech, cefr_level").
				WithArgs(int64(7)).
				WillReturnRows(tt.mockRows)

			word, err := repo.WordByID(context.Background(), 7)

			assert.NoError(t, err)
			if tt.expectedNil {
				assert.Nil(t, word)
			} else {
				require.NotNil(t, word)
				assert.Equal(t, "anchor", word.SurfaceForm)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestWordRepo_WordBySurfaceForm(t *testing.T) {
	store, mock := newMockStore(t)
	repo := NewWordRepo(store)

	rows := sqlmock.NewRows(wordColumns).
		AddRow(3, "anchor", "noun", "B1", "a heavy object", "", "", `[]`, `[]`, time.Now())

	mock.ExpectQuery("SELECT id, surface_form, part_of_speech, cefr_level").
		WithArgs("anchor").
		WillReturnRows(rows)

	word, err := repo.WordBySurfaceForm(context.Background(), "anchor")

	assert.NoError(t, err)
	require.NotNil(t, word)
	assert.Equal(t, int64(3), word.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWordRepo_CreateWord(t *testing.T) {
	store, mock := newMockStore(t)
	repo := NewWordRepo(store)

	word := domain.WordEntry{
		SurfaceForm:  "ephemeral",
		PartOfSpeech: "adjective",
		Level:        domain.LevelC1,
		Definition:   "lasting a very short time",
		Synonyms:     []string{"fleeting"},
	}

	mock.ExpectExec("INSERT INTO words").
		WithArgs("ephemeral", "adjective", "C1", "lasting a very short time",
			"", "", `["fleeting"]`, `[]`).
		WillReturnResult(sqlmock.NewResult(42, 1))

	err := repo.CreateWord(context.Background(), &word)

	assert.NoError(t, err)
	assert.Equal(t, int64(42), word.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWordRepo_CreateWord_ExecError(t *testing.T) {
	store, mock := newMockStore(t)
	repo := NewWordRepo(store)

	mock.ExpectExec("INSERT INTO words").
		WillReturnError(fmt.Errorf("constraint violation"))

	err := repo.CreateWord(context.Background(), &domain.WordEntry{SurfaceForm: "dup"})

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWordRepo_UpsertEnrichment(t *testing.T) {
	store, mock := newMockStore(t)
	repo := NewWordRepo(store)

	enrichment := domain.Enrichment{
		Definition:      "able to recover quickly",
		Pronunciation:   "/rɪˈzɪliənt/",
		ExampleSentence: "She is resilient.",
		Synonyms:        []string{"tough"},
	}

	mock.ExpectExec("UPDATE words SET").
		WithArgs("able to recover quickly", "/rɪˈzɪliənt/", "She is resilient.",
			`["tough"]`, `[]`, int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpsertEnrichment(context.Background(), 9, enrichment)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWordRepo_UpsertEnrichment_StoreUnavailable(t *testing.T) {
	repo := NewWordRepo(New())

	err := repo.UpsertEnrichment(context.Background(), 1, domain.Enrichment{})

	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}
