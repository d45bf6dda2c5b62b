package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"lexitrain/internal/domain"
	"lexitrain/internal/repository"
)

// ProgressRepo implements repository.ProgressRepository
type ProgressRepo struct {
	store *Store
}

// NewProgressRepo creates a new progress repository
func NewProgressRepo(store *Store) *ProgressRepo {
	return &ProgressRepo{store: store}
}

type progressRow struct {
	WordID          int64        `db:"word_id"`
	Attempts        int          `db:"attempts"`
	CorrectAttempts int          `db:"correct_attempts"`
	MasteryLevel    int          `db:"mastery_level"`
	IsBookmarked    bool         `db:"is_bookmarked"`
	LastAttemptAt   sql.NullTime `db:"last_attempt_at"`
}

func (r progressRow) toRecord() domain.ProgressRecord {
	record := domain.ProgressRecord{
		WordID:          r.WordID,
		Attempts:        r.Attempts,
		CorrectAttempts: r.CorrectAttempts,
		MasteryLevel:    r.MasteryLevel,
		IsBookmarked:    r.IsBookmarked,
	}
	if r.LastAttemptAt.Valid {
		record.LastAttemptAt = r.LastAttemptAt.Time
	}
	return record
}

// Progress returns the record for a word, nil when none exists yet.
func (r *ProgressRepo) Progress(ctx context.Context, wordID int64) (*domain.ProgressRecord, error) {
	if !r.store.Ready() {
		return nil, domain.ErrStoreUnavailable
	}

	query := `
		SELECT word_id, attempts, correct_attempts, mastery_level, is_bookmarked, last_attempt_at
		FROM progress
		WHERE word_id = ?
	`

	var row progressRow
	err := r.store.db.GetContext(ctx, &row, query, wordID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get progress: %w", err)
	}

	record := row.toRecord()
	return &record, nil
}

// ApplyAnswerOutcome folds one answer into the word's mastery state. The
// derived mastery score is recomputed in the same statement so readers never
// observe counts and score out of sync.
func (r *ProgressRepo) ApplyAnswerOutcome(ctx context.Context, wordID int64, correct bool) error {
	if !r.store.Ready() {
		return domain.ErrStoreUnavailable
	}

	delta := 0
	if correct {
		delta = 1
	}

	query := `
		INSERT INTO progress (word_id, attempts, correct_attempts, mastery_level, last_attempt_at)
		VALUES (?, 1, ?, ? * 100, ?)
		ON CONFLICT(word_id) DO UPDATE SET
			attempts = attempts + 1,
			correct_attempts = correct_attempts + excluded.correct_attempts,
			mastery_level = CAST(ROUND((correct_attempts + excluded.correct_attempts) * 100.0 / (attempts + 1)) AS INTEGER),
			last_attempt_at = excluded.last_attempt_at
	`

	_, err := r.store.db.ExecContext(ctx, query, wordID, delta, delta, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to apply answer outcome: %w", err)
	}
	return nil
}

// ToggleBookmark flips the bookmark flag, creating the record lazily, and
// returns the new state.
func (r *ProgressRepo) ToggleBookmark(ctx context.Context, wordID int64) (bool, error) {
	if !r.store.Ready() {
		return false, domain.ErrStoreUnavailable
	}

	query := `
		INSERT INTO progress (word_id, is_bookmarked)
		VALUES (?, 1)
		ON CONFLICT(word_id) DO UPDATE SET
			is_bookmarked = NOT is_bookmarked
	`

	if _, err := r.store.db.ExecContext(ctx, query, wordID); err != nil {
		return false, fmt.Errorf("failed to toggle bookmark: %w", err)
	}

	var bookmarked bool
	if err := r.store.db.GetContext(ctx, &bookmarked,
		"SELECT is_bookmarked FROM progress WHERE word_id = ?", wordID); err != nil {
		return false, fmt.Errorf("failed to read bookmark state: %w", err)
	}
	return bookmarked, nil
}

// WeakWords returns low-mastery words with enough attempts to matter,
// weakest first, bounded by the review list limit.
func (r *ProgressRepo) WeakWords(ctx context.Context) ([]domain.WordEntry, error) {
	if !r.store.Ready() {
		return nil, domain.ErrStoreUnavailable
	}

	query := `
		SELECT w.id, w.surface_form, w.part_of_speech, w.cefr_level, w.definition,
		       w.pronunciation, w.example_sentence, w.synonyms, w.antonyms, w.created_at
		FROM words w
		JOIN progress p ON p.word_id = w.id
		WHERE p.mastery_level < ? AND p.attempts >= ?
		ORDER BY p.mastery_level ASC
		LIMIT ?
	`

	return r.selectWords(ctx, query,
		domain.WeakMasteryThreshold, domain.WeakMinAttempts, repository.ReviewListLimit)
}

// BookmarkedWords returns bookmarked words, weakest first, bounded by the
// review list limit.
func (r *ProgressRepo) BookmarkedWords(ctx context.Context) ([]domain.WordEntry, error) {
	if !r.store.Ready() {
		return nil, domain.ErrStoreUnavailable
	}

	query := `
		SELECT w.id, w.surface_form, w.part_of_speech, w.cefr_level, w.definition,
		       w.pronunciation, w.example_sentence, w.synonyms, w.antonyms, w.created_at
		FROM words w
		JOIN progress p ON p.word_id = w.id
		WHERE p.is_bookmarked = 1
		ORDER BY p.mastery_level ASC
		LIMIT ?
	`

	return r.selectWords(ctx, query, repository.ReviewListLimit)
}

// ClearProgress removes every progress record. Only reachable through the
// explicit user action.
func (r *ProgressRepo) ClearProgress(ctx context.Context) error {
	if !r.store.Ready() {
		return domain.ErrStoreUnavailable
	}

	if _, err := r.store.db.ExecContext(ctx, "DELETE FROM progress"); err != nil {
		return fmt.Errorf("failed to clear progress: %w", err)
	}
	return nil
}

func (r *ProgressRepo) selectWords(ctx context.Context, query string, args ...any) ([]domain.WordEntry, error) {
	var rows []wordRow
	if err := r.store.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select words: %w", err)
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
