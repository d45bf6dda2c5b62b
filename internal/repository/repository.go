package repository

import (
	"context"
	"time"

	"lexitrain/internal/domain"
)

// ReviewListLimit bounds the weak and bookmarked word reads.
const ReviewListLimit = 50

// WordRepository defines corpus data operations
type WordRepository interface {
	// WordsByLevel returns a random sample of up to limit entries at the
	// given level. Callers re-randomize, so returning storage order noise
	// is acceptable.
	WordsByLevel(ctx context.Context, level domain.Level, limit int) ([]domain.WordEntry, error)
	WordByID(ctx context.Context, id int64) (*domain.WordEntry, error)
	WordBySurfaceForm(ctx context.Context, surfaceForm string) (*domain.WordEntry, error)
	CreateWord(ctx context.Context, word *domain.WordEntry) error
	// UpsertEnrichment fills previously-empty enrichment fields on a word.
	// Populated fields are never overwritten; repeating the same payload is
	// a no-op.
	UpsertEnrichment(ctx context.Context, wordID int64, enrichment domain.Enrichment) error
}

// ProgressRepository defines per-word mastery state operations
type ProgressRepository interface {
	// Progress returns nil without error when no record exists yet.
	Progress(ctx context.Context, wordID int64) (*domain.ProgressRecord, error)
	// ApplyAnswerOutcome is the only write path for mastery: it increments
	// attempt counts and recomputes the derived mastery score in one upsert.
	ApplyAnswerOutcome(ctx context.Context, wordID int64, correct bool) error
	// ToggleBookmark flips the bookmark flag, creating the record lazily,
	// and returns the new state.
	ToggleBookmark(ctx context.Context, wordID int64) (bool, error)
	WeakWords(ctx context.Context) ([]domain.WordEntry, error)
	BookmarkedWords(ctx context.Context) ([]domain.WordEntry, error)
	ClearProgress(ctx context.Context) error
}

// SessionRepository defines the append-only study log
type SessionRepository interface {
	InsertStudySession(ctx context.Context, session *domain.DailyStudySession) error
	SessionsSince(ctx context.Context, from time.Time) ([]domain.DailyStudySession, error)
}

// ProfileRepository defines the single learner profile operations
type ProfileRepository interface {
	Profile(ctx context.Context) (*domain.UserProfile, error)
	SetLevels(ctx context.Context, current, target domain.Level) error
	// AddExperience adds xp and returns the new total.
	AddExperience(ctx context.Context, xp int) (int, error)
}
