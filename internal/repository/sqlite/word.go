package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"lexitrain/internal/domain"
)

// WordRepo implements repository.WordRepository
type WordRepo struct {
	store *Store
}

// NewWordRepo creates a new word repository
func NewWordRepo(store *Store) *WordRepo {
	return &WordRepo{store: store}
}

type wordRow struct {
	ID              int64     `db:"id"`
	SurfaceForm     string    `db:"surface_form"`
	PartOfSpeech    string    `db:"part_of_speech"`
	Level           string    `db:"cefr_level"`
	Definition      string    `db:"definition"`
	Pronunciation   string    `db:"pronunciation"`
	ExampleSentence string    `db:"example_sentence"`
	Synonyms        string    `db:"synonyms"`
	Antonyms        string    `db:"antonyms"`
	CreatedAt       time.Time `db:"created_at"`
}

func (r wordRow) toEntry() (domain.WordEntry, error) {
	entry := domain.WordEntry{
		ID:              r.ID,
		SurfaceForm:     r.SurfaceForm,
		PartOfSpeech:    r.PartOfSpeech,
		Level:           domain.Level(r.Level),
		Definition:      r.Definition,
		Pronunciation:   r.Pronunciation,
		ExampleSentence: r.ExampleSentence,
		CreatedAt:       r.CreatedAt,
	}
	if err := json.Unmarshal([]byte(r.Synonyms), &entry.Synonyms); err != nil {
		return entry, fmt.Errorf("failed to decode synonyms for word %d: %w", r.ID, err)
	}
	if err := json.Unmarshal([]byte(r.Antonyms), &entry.Antonyms); err != nil {
		return entry, fmt.Errorf("failed to decode antonyms for word %d: %w", r.ID, err)
	}
	return entry, nil
}

func encodeList(values []string) string {
	if len(values) == 0 {
		return "[]"
	}
	data, err := json.Marshal(values)
	if err != nil {
		return "[]"
	}
	return string(data)
}

// WordsByLevel returns a random sample of up to limit entries at the level.
func (r *WordRepo) WordsByLevel(ctx context.Context, level domain.Level, limit int) ([]domain.WordEntry, error) {
	if !r.store.Ready() {
		return nil, domain.ErrStoreUnavailable
	}

	query := `
		SELECT id, surface_form, part_of_speech, cefr_level, definition,
		       pronunciation, example_sentence, synonyms, antonyms, created_at
		FROM words
		WHERE cefr_level = ?
		ORDER BY RANDOM()
		LIMIT ?
	`

	var rows []wordRow
	if err := r.store.db.SelectContext(ctx, &rows, query, string(level), limit); err != nil {
		return nil, fmt.Errorf("failed to get words by level: %w", err)
	}

	words := make([]domain.WordEntry, 0, len(rows))
	for _, row := range rows {
		entry, err := row.toEntry()
		if err != nil {
			return nil, err
		}
		words = append(words, entry)
	}
	return words, nil
}

// WordByID returns a word by ID, nil when not found.
func (r *WordRepo) WordByID(ctx context.Context, id int64) (*domain.WordEntry, error) {
	if !r.store.Ready() {
		return nil, domain.ErrStoreUnavailable
	}
	return r.getOne(ctx, "id = ?", id)
}

// WordBySurfaceForm returns a word by its unique surface form, nil when not found.
func (r *WordRepo) WordBySurfaceForm(ctx context.Context, surfaceForm string) (*domain.WordEntry, error) {
	if !r.store.Ready() {
		return nil, domain.ErrStoreUnavailable
	}
	return r.getOne(ctx, "surface_form = ?", surfaceForm)
}

func (r *WordRepo) getOne(ctx context.Context, where string, arg any) (*domain.WordEntry, error) {
	query := `
		SELECT id, surface_form, part_of_speech, cefr_level, definition,
		       pronunciation, example_sentence, synonyms, antonyms, created_at
		FROM words
		WHERE ` + where

	var row wordRow
	err := r.store.db.GetContext(ctx, &row, query, arg)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get word: %w", err)
	}

	entry, err := row.toEntry()
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// CreateWord inserts a new corpus entry and sets its generated ID.
func (r *WordRepo) CreateWord(ctx context.Context, word *domain.WordEntry) error {
	if !r.store.Ready() {
		return domain.ErrStoreUnavailable
	}

	query := `
		INSERT INTO words (surface_form, part_of_speech, cefr_level, definition,
		                   pronunciation, example_sentence, synonyms, antonyms)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.store.db.ExecContext(ctx, query,
		word.SurfaceForm,
		word.PartOfSpeech,
		string(word.Level),
		word.Definition,
		word.Pronunciation,
		word.ExampleSentence,
		encodeList(word.Synonyms),
		encodeList(word.Antonyms),
	)
	if err != nil {
		return fmt.Errorf("failed to create word: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert ID: %w", err)
	}
	word.ID = id
	return nil
}

// UpsertEnrichment fills previously-empty enrichment fields on a word.
// Fields that already hold data keep it, so repeating a payload is a no-op
// and a less complete lookup never erases an earlier one.
func (r *WordRepo) UpsertEnrichment(ctx context.Context, wordID int64, enrichment domain.Enrichment) error {
	if !r.store.Ready() {
		return domain.ErrStoreUnavailable
	}

	query := `
		UPDATE words SET
			definition = CASE WHEN definition = '' THEN ? ELSE definition END,
			pronunciation = CASE WHEN pronunciation = '' THEN ? ELSE pronunciation END,
			example_sentence = CASE WHEN example_sentence = '' THEN ? ELSE example_sentence END,
			synonyms = CASE WHEN synonyms = '[]' THEN ? ELSE synonyms END,
			antonyms = CASE WHEN antonyms = '[]' THEN ? ELSE antonyms END
		WHERE id = ?
	`

	_, err := r.store.db.ExecContext(ctx, query,
		enrichment.Definition,
		enrichment.Pronunciation,
		enrichment.ExampleSentence,
		encodeList(enrichment.Synonyms),
		encodeList(enrichment.Antonyms),
		wordID,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert enrichment: %w", err)
	}
	return nil
}
