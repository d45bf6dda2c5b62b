package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"lexitrain/internal/domain"
	"lexitrain/internal/repository"
)

// Tracker owns all durable progress writes: per-word mastery, the study
// session log, and experience points. It is the only component that mutates
// progress state.
type Tracker struct {
	progress repository.ProgressRepository
	sessions repository.SessionRepository
	profile  repository.ProfileRepository
	logger   *zap.Logger
	now      func() time.Time
}

// NewTracker creates a progress tracker. The clock is injected for
// deterministic stats tests.
func NewTracker(
	progress repository.ProgressRepository,
	sessions repository.SessionRepository,
	profile repository.ProfileRepository,
	logger *zap.Logger,
	now func() time.Time,
) *Tracker {
	if now == nil {
		now = time.Now
	}
	return &Tracker{
		progress: progress,
		sessions: sessions,
		profile:  profile,
		logger:   logger,
		now:      now,
	}
}

// ApplyAnswerOutcome folds one answer into the word's durable mastery state.
func (t *Tracker) ApplyAnswerOutcome(ctx context.Context, wordID int64, correct bool) error {
	return t.progress.ApplyAnswerOutcome(ctx, wordID, correct)
}

// Progress returns the word's mastery record, nil when none exists.
func (t *Tracker) Progress(ctx context.Context, wordID int64) (*domain.ProgressRecord, error) {
	return t.progress.Progress(ctx, wordID)
}

// ToggleBookmark flips the word's bookmark flag and returns the new state.
func (t *Tracker) ToggleBookmark(ctx context.Context, wordID int64) (bool, error) {
	return t.progress.ToggleBookmark(ctx, wordID)
}

// WeakWords returns the words most in need of review.
func (t *Tracker) WeakWords(ctx context.Context) ([]domain.WordEntry, error) {
	return t.progress.WeakWords(ctx)
}

// BookmarkedWords returns the learner's bookmarked words.
func (t *Tracker) BookmarkedWords(ctx context.Context) ([]domain.WordEntry, error) {
	return t.progress.BookmarkedWords(ctx)
}

// ClearProgress wipes all mastery records. Explicit user action only.
func (t *Tracker) ClearProgress(ctx context.Context) error {
	t.logger.Info("clearing all word progress")
	return t.progress.ClearProgress(ctx)
}

// FinishSession appends the study log row for a finished quiz and awards
// experience points: 10 per correct answer, 5 per incorrect.
func (t *Tracker) FinishSession(ctx context.Context, startedAt time.Time, correct, total int) (domain.SessionSummary, error) {
	now := t.now()

	session := &domain.DailyStudySession{
		Date:            now,
		DurationMinutes: int(now.Sub(startedAt).Round(time.Minute) / time.Minute),
		WordsStudied:    total,
		CorrectAnswers:  correct,
		TotalQuestions:  total,
	}
	if err := t.sessions.InsertStudySession(ctx, session); err != nil {
		return domain.SessionSummary{}, fmt.Errorf("failed to record study session: %w", err)
	}

	xp := correct*domain.XPPerCorrect + (total-correct)*domain.XPPerIncorrect
	totalXP, err := t.profile.AddExperience(ctx, xp)
	if err != nil {
		return domain.SessionSummary{}, fmt.Errorf("failed to award experience: %w", err)
	}

	t.logger.Info("session finished",
		zap.Int("correct", correct),
		zap.Int("total", total),
		zap.Int("xp_awarded", xp),
		zap.Int("display_level", domain.DisplayLevel(totalXP)),
	)

	return domain.SessionSummary{
		CorrectCount: correct,
		TotalCount:   total,
		Accuracy:     domain.ComputeMastery(total, correct),
		XPAwarded:    xp,
	}, nil
}

// TodayStats aggregates study sessions since local midnight.
func (t *Tracker) TodayStats(ctx context.Context) (domain.StudyStats, error) {
	now := t.now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return t.statsSince(ctx, midnight)
}

// WeeklyStats aggregates study sessions over the last seven days.
func (t *Tracker) WeeklyStats(ctx context.Context) (domain.StudyStats, error) {
	return t.statsSince(ctx, t.now().AddDate(0, 0, -7))
}

func (t *Tracker) statsSince(ctx context.Context, from time.Time) (domain.StudyStats, error) {
	sessions, err := t.sessions.SessionsSince(ctx, from)
	if err != nil {
		return domain.StudyStats{}, fmt.Errorf("failed to load study sessions: %w", err)
	}

	var stats domain.StudyStats
	for _, s := range sessions {
		stats.Sessions++
		stats.WordsStudied += s.WordsStudied
		stats.CorrectAnswers += s.CorrectAnswers
		stats.TotalQuestions += s.TotalQuestions
		stats.DurationMin += s.DurationMinutes
	}
	return stats, nil
}
